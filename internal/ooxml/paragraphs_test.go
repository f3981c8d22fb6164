package ooxml

// Notes:
// - Paragraph builders are asserted on the markup fragments Word actually
//   reads: style references, shading, borders, run boldness, and text runs.
// - Full-serialization golden strings are avoided; they break on every
//   cosmetic attribute change without catching real regressions.

import (
	"strings"
	"testing"
)

func TestContactParagraph(t *testing.T) {
	t.Parallel()

	got := ContactParagraph("Jordan Avery", "(555) 123-4567", "jordan@example.com").String()

	for _, want := range []string{
		`<w:jc w:val="center"/>`,
		"<w:t>Jordan Avery | (555) 123-4567 | jordan@example.com</w:t>",
		"<w:b/>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %s", want, got)
		}
	}
}

func TestSectionHeading(t *testing.T) {
	t.Parallel()

	got := SectionHeading("Education & Certifications").String()

	for _, want := range []string{
		`<w:shd w:val="clear" w:color="auto" w:fill="D3E2F1"/>`,
		`<w:top w:val="nil"/>`,
		`<w:between w:val="nil"/>`,
		`<w:ind w:left="-720" w:right="-720" w:firstLine="864"/>`,
		`<w:jc w:val="center"/>`,
		"<w:t>Education &amp; Certifications</w:t>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %s", want, got)
		}
	}
}

func TestSummaryParagraph(t *testing.T) {
	t.Parallel()

	got := SummaryParagraph("Seasoned engineer.").String()

	for _, want := range []string{
		`<w:pStyle w:val="NoSpacing"/>`,
		`w:ascii="Times New Roman"`,
		`<w:sz w:val="22"/>`,
		"<w:t>Seasoned engineer.</w:t>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %s", want, got)
		}
	}
}

func TestEducationParagraph(t *testing.T) {
	t.Parallel()

	badges := []BadgeImage{
		{
			RID:         "rId4",
			DrawingID:   7,
			Description: "Certified ScrumMaster",
			WidthEMU:    962025,
			HeightEMU:   838200,
			OffsetX:     3219450,
			OffsetY:     57150,
		},
	}
	got := EducationParagraph("B.S. Computer Science", "George Mason University", badges).String()

	for _, want := range []string{
		`r:embed="rId4"`,
		`descr="Certified ScrumMaster"`,
		`<wp:extent cx="962025" cy="838200"/>`,
		"<wp:posOffset>3219450</wp:posOffset>",
		"<wp:posOffset>57150</wp:posOffset>",
		"<w:t>B.S. Computer Science</w:t>",
		"<w:br/>",
		"<w:t>George Mason University</w:t>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q", want)
		}
	}

	// Degree precedes the break, which precedes the university.
	degree := strings.Index(got, "B.S. Computer Science")
	br := strings.Index(got, "<w:br/>")
	univ := strings.Index(got, "George Mason University")
	if !(degree < br && br < univ) {
		t.Errorf("run order wrong: degree=%d br=%d university=%d", degree, br, univ)
	}
}

func TestEducationParagraph_NoBadges(t *testing.T) {
	t.Parallel()

	got := EducationParagraph("B.S.", "GMU", nil).String()
	if strings.Contains(got, "<w:drawing>") {
		t.Error("paragraph without badges must not carry drawings")
	}
}

func TestJobHeadingParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		hasCompany  bool
		wantBorders bool
	}{
		{name: "standalone heading carries nil borders", hasCompany: false, wantBorders: true},
		{name: "heading followed by company line has no borders", hasCompany: true, wantBorders: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := JobHeadingParagraph("Platform Engineer", "Jan '21 - Present", tt.hasCompany).String()

			if gotBorders := strings.Contains(got, "<w:pBdr>"); gotBorders != tt.wantBorders {
				t.Errorf("pBdr present = %v, want %v", gotBorders, tt.wantBorders)
			}
			if !strings.Contains(got, `<w:t xml:space="preserve">Platform Engineer - </w:t>`) {
				t.Errorf("missing preserved title run in %s", got)
			}
			if !strings.Contains(got, "<w:t>Jan &#39;21 - Present</w:t>") {
				t.Errorf("missing verbatim dates run in %s", got)
			}
		})
	}
}

func TestBulletParagraph(t *testing.T) {
	t.Parallel()

	got := BulletParagraph("Led migration of 40 services.").String()

	for _, want := range []string{
		`<w:pStyle w:val="ListParagraph"/>`,
		`<w:ilvl w:val="0"/>`,
		`<w:numId w:val="62"/>`,
		`<w:spacing w:before="240" w:after="240" w:line="300" w:lineRule="auto"/>`,
		`<w:sz w:val="20"/>`,
		"<w:t>Led migration of 40 services.</w:t>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %s", want, got)
		}
	}
}

func TestSpacerParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sz   string
		bold bool
		want string
	}{
		{name: "bare", sz: "", bold: false, want: "<w:p/>"},
		{name: "sized", sz: "22", bold: false, want: `<w:p><w:pPr><w:rPr><w:sz w:val="22"/></w:rPr></w:pPr></w:p>`},
		{name: "sized bold", sz: "22", bold: true, want: `<w:p><w:pPr><w:rPr><w:b/><w:bCs/><w:sz w:val="22"/></w:rPr></w:pPr></w:p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SpacerParagraph(tt.sz, tt.bold).String(); got != tt.want {
				t.Errorf("SpacerParagraph(%q, %v) = %q, want %q", tt.sz, tt.bold, got, tt.want)
			}
		})
	}
}

func TestCompanyParagraph(t *testing.T) {
	t.Parallel()

	got := CompanyParagraph("U.S. Marine Corps").String()

	if !strings.Contains(got, "<w:t>U.S. Marine Corps</w:t>") {
		t.Errorf("missing company text in %s", got)
	}
	if !strings.Contains(got, "<w:pBdr>") {
		t.Error("company line must carry nil borders")
	}
	if strings.Contains(got, "<w:b/>") {
		t.Error("company line must not be bold")
	}
}
