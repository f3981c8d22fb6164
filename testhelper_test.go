package resumedocx

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// templateOpts tweaks the synthetic branded template written by
// writeTestTemplate, to exercise binder and assembler failure paths.
type templateOpts struct {
	omitParts    []string // part names left out of the container
	styleIDs     []string // paragraph styles defined by styles.xml
	numberingIDs []string // numbering definitions in numbering.xml
}

func defaultTemplateOpts() templateOpts {
	return templateOpts{
		styleIDs:     []string{"Normal", "NoSpacing", "ListParagraph"},
		numberingIDs: []string{"62"},
	}
}

// writeTestTemplate builds a minimal but structurally complete branded
// template .docx in a temp dir and returns its path.
func writeTestTemplate(t *testing.T, opts templateOpts) string {
	t.Helper()

	parts := map[string][]byte{
		"[Content_Types].xml": []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Default Extension="png" ContentType="image/png"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`),
		"_rels/.rels": []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`),
		"word/document.xml": []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
			`<w:body><w:p><w:r><w:t>placeholder</w:t></w:r></w:p>` +
			`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>` +
			`<w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720" w:header="0" w:footer="0" w:gutter="0"/>` +
			`</w:sectPr></w:body></w:document>`),
		"word/_rels/document.xml.rels": []byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
			`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
			`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/image1.png"/>` +
			`</Relationships>`),
		"word/styles.xml":      stylesXML(opts.styleIDs),
		"word/numbering.xml":   numberingXML(opts.numberingIDs),
		"word/media/image1.png": []byte("not-a-real-png"),
	}

	for _, omit := range opts.omitParts {
		delete(parts, omit)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	// Fixed emission order keeps fixtures deterministic.
	order := []string{
		"[Content_Types].xml", "_rels/.rels", "word/document.xml",
		"word/_rels/document.xml.rels", "word/styles.xml",
		"word/numbering.xml", "word/media/image1.png",
	}
	for _, name := range order {
		content, ok := parts[name]
		if !ok {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating template entry %s: %v", name, err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatalf("writing template entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing template: %v", err)
	}

	path := filepath.Join(t.TempDir(), "template.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing template file: %v", err)
	}
	return path
}

func stylesXML(styleIDs []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	buf.WriteString(`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	for _, id := range styleIDs {
		buf.WriteString(`<w:style w:type="paragraph" w:styleId="` + id + `">`)
		buf.WriteString(`<w:name w:val="` + id + `"/></w:style>`)
	}
	buf.WriteString(`</w:styles>`)
	return buf.Bytes()
}

func numberingXML(numIDs []string) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	buf.WriteString(`<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`)
	for _, id := range numIDs {
		buf.WriteString(`<w:num w:numId="` + id + `"><w:abstractNumId w:val="0"/></w:num>`)
	}
	buf.WriteString(`</w:numbering>`)
	return buf.Bytes()
}

// validRecord returns a record passing all structural checks.
func validRecord() *ResumeRecord {
	return &ResumeRecord{
		Name:    "Jordan Avery",
		Phone:   "555-0147",
		Email:   "jordan.avery@example.com",
		Summary: "Seasoned program manager with 12 years of delivery experience.",
		Education: Education{
			Degree:     "B.S. Computer Science",
			University: "George Mason University",
		},
		Badges: []string{"csm", "ts_sci"},
		Jobs: []Job{
			{
				Title:   "Senior Program Manager",
				Dates:   "June 2019 - Present",
				Bullets: []string{"Led delivery of a 14-person platform team.", "Cut release cycle time by 40%."},
			},
			{
				Title:   "Infantry Squad Leader",
				Dates:   "May 2012 - June 2019",
				Company: "U.S. Marine Corps",
				Bullets: []string{"Supervised and trained a 13-member squad."},
			},
		},
	}
}

// readOutputPart unzips one part from assembled document bytes.
func readOutputPart(t *testing.T, out []byte, name string) []byte {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("output is not a readable container: %v", err)
	}
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer func() { _ = rc.Close() }()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return buf.Bytes()
	}
	return nil
}
