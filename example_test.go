package resumedocx_test

import (
	"fmt"

	resumedocx "github.com/vertekal/go-resume-docx"
)

// Example demonstrates parsing and validating a resume record. Generation
// additionally needs a branded template .docx; see Service.GenerateFile.
func Example() {
	record, err := resumedocx.ParseRecord([]byte(`{
		"name": "Jordan Avery",
		"phone": "555-0147",
		"email": "jordan.avery@example.com",
		"summary": "Seasoned program manager.",
		"education": {"degree": "B.S. Computer Science", "university": "George Mason University"},
		"badges": ["csm", "security_plus"],
		"jobs": [
			{"title": "Senior Program Manager", "dates": "June 2019 - Present",
			 "bullets": ["Led delivery of a 14-person platform team."]}
		]
	}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	registry := resumedocx.NewRegistry(nil) // builtin badges, embedded assets
	if err := resumedocx.Validate(record, registry); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("record is ready for generation")
	// Output: record is ready for generation
}

// ExampleNewRegistry demonstrates the builtin badge set.
func ExampleNewRegistry() {
	registry := resumedocx.NewRegistry(nil)

	for _, key := range registry.Keys() {
		fmt.Println(key)
	}
	// Output:
	// aws_cloud_practitioner
	// csm
	// security_plus
	// ts_sci
}

// ExampleRegistry_Add demonstrates registering a custom badge. The PNG for
// a custom badge must exist in the asset loader's badge directory by the
// time the badge is resolved during generation.
func ExampleRegistry_Add() {
	registry := resumedocx.NewRegistry(nil)

	err := registry.Add(resumedocx.Badge{
		Key:         "cissp",
		AssetName:   "cissp.png",
		Description: "CISSP Certification",
		WidthEMU:    800000,
		HeightEMU:   800000,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(registry.Known("cissp"))
	// Output: true
}

// ExampleLint demonstrates advisory layout warnings. Lint never blocks
// generation; it flags bullet counts below the role-tier targets.
func ExampleLint() {
	record := &resumedocx.ResumeRecord{
		Jobs: []resumedocx.Job{
			{Title: "Senior Program Manager", Dates: "2019 - Present",
				Bullets: []string{"Led delivery of a platform team."}},
		},
	}

	for _, warning := range resumedocx.Lint(record) {
		fmt.Println(warning)
	}
	// Output: jobs[0] (Senior Program Manager): 1 bullet(s), expected at least 10 for this role tier
}
