// Package resumedocx generates branded résumé .docx files from structured
// records.
//
// # Quick Start
//
// Create a service bound to the branded template and generate a document:
//
//	svc := resumedocx.New(resumedocx.WithTemplate("templates/vertekal_template.docx"))
//
//	rec, err := resumedocx.ParseRecord(jsonBytes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := svc.GenerateFile(ctx, rec, "out/resume.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// Use Generate to receive the document bytes without touching the
// filesystem.
//
// # Generation Pipeline
//
// Each invocation is a pure, stateless transform from (template, record) to
// document bytes:
//
//  1. Validation: all structural violations collected in one pass
//  2. Template binding: the branded .docx is loaded copy-on-bind
//  3. Section rendering in fixed order: contact, summary,
//     education/certifications (with badge images), experience
//  4. Assembly: style conformance check, container rebuild, atomic write
//
// Every paragraph is emitted through the template's named styles, so visual
// consistency with the brand holds regardless of content length. A failure
// at any stage aborts the run; no partial file is ever written.
//
// # Badges
//
// Certification and clearance badges are requested by key (csm, ts_sci,
// aws_cloud_practitioner, security_plus) and render as anchored images in
// the Education & Certifications section. Unknown keys fail validation.
// The registry is extensible through configuration; badge PNGs resolve
// through an AssetLoader with embedded defaults and optional filesystem
// overrides:
//
//	loader, err := resumedocx.NewAssetLoader("/path/to/badges")
//	reg := resumedocx.NewRegistry(loader)
//	svc := resumedocx.New(resumedocx.WithRegistry(reg))
//
// A registered key whose image cannot be loaded fails at resolution time
// with ErrMissingAsset, so the registry itself stays statically complete.
//
// # Authoring Rules
//
// Bullet-count minimums (10 for the two most recent roles, 5 earlier) and
// the military-exception company convention are editorial rules owned by
// the upstream content pipeline. Lint reports violations as advisory
// warnings; the renderer never enforces them.
package resumedocx
