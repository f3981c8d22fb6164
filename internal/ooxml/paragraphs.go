package ooxml

// Named styles and numbering the résumé body relies on. These must resolve
// in the template's styles.xml / numbering.xml; the assembler enforces that.
const (
	StyleNoSpacing     = "NoSpacing"
	StyleListParagraph = "ListParagraph"
	BulletNumberingID  = "62"
)

// headingFill is the light blue shading behind section headings.
const headingFill = "D3E2F1"

// borderSides lists the w:pBdr children, in schema order.
var borderSides = []string{"top", "left", "bottom", "right", "between"}

// nilBorders builds a w:pBdr with every side set to nil, matching the
// template's heading and job paragraphs.
func nilBorders() *Element {
	pBdr := El("w:pBdr")
	for _, side := range borderSides {
		pBdr.Append(El("w:"+side, A("w:val", "nil")))
	}
	return pBdr
}

// boldRPr builds run properties with bold on.
func boldRPr() *Element {
	return El("w:rPr").Append(El("w:b"), El("w:bCs"))
}

// textRun builds a run holding escaped text with the given run properties.
// preserveSpace keeps leading/trailing whitespace significant.
func textRun(text string, rPr *Element, preserveSpace bool) *Element {
	run := El("w:r")
	if rPr != nil {
		run.Append(rPr)
	}
	t := El("w:t")
	if preserveSpace {
		t.Attrs = append(t.Attrs, A("xml:space", "preserve"))
	}
	run.Append(t.WithText(text))
	return run
}

// ContactParagraph renders the centered, bold "Name | Phone | Email" line.
func ContactParagraph(name, phone, email string) *Element {
	p := El("w:p")
	p.Append(El("w:pPr").Append(
		El("w:jc", A("w:val", "center")),
		boldRPr(),
	))
	p.Append(textRun(name+" | "+phone+" | "+email, boldRPr(), false))
	return p
}

// SectionHeading renders a blue-shaded, centered, bold section heading.
func SectionHeading(title string) *Element {
	pPr := El("w:pPr").Append(
		El("w:keepNext"),
		El("w:keepLines"),
		nilBorders(),
		El("w:shd", A("w:val", "clear"), A("w:color", "auto"), A("w:fill", headingFill)),
		El("w:spacing", A("w:before", "120"), A("w:after", "120")),
		El("w:ind", A("w:left", "-720"), A("w:right", "-720"), A("w:firstLine", "864")),
		El("w:jc", A("w:val", "center")),
		El("w:rPr").Append(El("w:b"), El("w:color", A("w:val", "000000"))),
	)

	rPr := El("w:rPr").Append(
		El("w:b"),
		El("w:bCs"),
		El("w:color", A("w:val", "000000"), A("w:themeColor", "text1")),
	)

	return El("w:p").Append(pPr, textRun(title, rPr, false))
}

// SummaryParagraph renders the summary as a centered NoSpacing paragraph in
// Times New Roman at 11pt (22 half-points).
func SummaryParagraph(text string) *Element {
	pPr := El("w:pPr").Append(
		El("w:pStyle", A("w:val", StyleNoSpacing)),
		El("w:jc", A("w:val", "center")),
	)

	rPr := El("w:rPr").Append(
		El("w:rFonts",
			A("w:ascii", "Times New Roman"),
			A("w:eastAsia", "Times New Roman"),
			A("w:hAnsi", "Times New Roman"),
			A("w:cs", "Times New Roman"),
		),
		El("w:sz", A("w:val", "22")),
	)

	return El("w:p").Append(pPr, textRun(text, rPr, false))
}

// EducationParagraph renders anchored badge drawings followed by the degree,
// a line break, and the university in bold, all in one paragraph.
func EducationParagraph(degree, university string, badges []BadgeImage) *Element {
	p := El("w:p")
	p.Append(El("w:pPr").Append(
		El("w:rPr").Append(El("w:sz", A("w:val", "22"))),
	))

	// Badge drawings, one run each.
	for _, badge := range badges {
		run := El("w:r").Append(
			El("w:rPr").Append(El("w:noProof"), El("w:sz", A("w:val", "22"))),
			badgeAnchor(badge),
		)
		p.Append(run)
	}

	degreeRPr := El("w:rPr").Append(
		El("w:sz", A("w:val", "22")),
		El("w:szCs", A("w:val", "22")),
	)
	p.Append(textRun(degree, degreeRPr, false))

	// Line break between degree and university.
	p.Append(El("w:r").Append(
		El("w:rPr").Append(El("w:sz", A("w:val", "22"))),
		El("w:br"),
	))

	universityRPr := El("w:rPr").Append(
		El("w:b"),
		El("w:bCs"),
		El("w:sz", A("w:val", "22")),
		El("w:szCs", A("w:val", "22")),
	)
	p.Append(textRun(university, universityRPr, false))

	return p
}

// SpacerParagraph renders an empty paragraph used to reserve vertical room.
func SpacerParagraph(sz string, bold bool) *Element {
	p := El("w:p")
	if sz == "" && !bold {
		return p
	}
	rPr := El("w:rPr")
	if bold {
		rPr.Append(El("w:b"), El("w:bCs"))
	}
	if sz != "" {
		rPr.Append(El("w:sz", A("w:val", sz)))
	}
	return p.Append(El("w:pPr").Append(rPr))
}

// JobHeadingParagraph renders "Title - " in bold followed by the dates
// string verbatim in regular weight. Jobs without a company line carry the
// template's nil borders on the heading.
func JobHeadingParagraph(title, dates string, hasCompany bool) *Element {
	pPr := El("w:pPr")
	if !hasCompany {
		pPr.Append(nilBorders())
	}
	pPr.Append(El("w:rPr").Append(
		El("w:b"),
		El("w:bCs"),
		El("w:color", A("w:val", "000000"), A("w:themeColor", "text1")),
		El("w:sz", A("w:val", "22")),
	))

	titleRPr := El("w:rPr").Append(
		El("w:b"),
		El("w:bCs"),
		El("w:color", A("w:val", "000000"), A("w:themeColor", "text1")),
		El("w:sz", A("w:val", "22")),
		El("w:szCs", A("w:val", "22")),
	)

	dateRPr := El("w:rPr").Append(
		El("w:color", A("w:val", "000000"), A("w:themeColor", "text1")),
		El("w:sz", A("w:val", "22")),
		El("w:szCs", A("w:val", "22")),
	)

	return El("w:p").Append(
		pPr,
		textRun(title+" - ", titleRPr, true),
		textRun(dates, dateRPr, false),
	)
}

// CompanyParagraph renders the employer line used for military roles.
func CompanyParagraph(company string) *Element {
	pPr := El("w:pPr").Append(
		nilBorders(),
		El("w:rPr").Append(
			El("w:color", A("w:val", "000000"), A("w:themeColor", "text1")),
			El("w:sz", A("w:val", "22")),
		),
	)

	rPr := El("w:rPr").Append(
		El("w:color", A("w:val", "000000"), A("w:themeColor", "text1")),
		El("w:sz", A("w:val", "22")),
		El("w:szCs", A("w:val", "22")),
	)

	return El("w:p").Append(pPr, textRun(company, rPr, false))
}

// BulletParagraph renders one list bullet in the ListParagraph style with
// the template's numbering definition and loose 300 line spacing.
func BulletParagraph(text string) *Element {
	pPr := El("w:pPr").Append(
		El("w:pStyle", A("w:val", StyleListParagraph)),
		El("w:numPr").Append(
			El("w:ilvl", A("w:val", "0")),
			El("w:numId", A("w:val", BulletNumberingID)),
		),
		El("w:spacing",
			A("w:before", "240"),
			A("w:after", "240"),
			A("w:line", "300"),
			A("w:lineRule", "auto"),
		),
		El("w:rPr").Append(
			El("w:sz", A("w:val", "20")),
			El("w:szCs", A("w:val", "20")),
		),
	)

	rPr := El("w:rPr").Append(
		El("w:sz", A("w:val", "20")),
		El("w:szCs", A("w:val", "20")),
	)

	return El("w:p").Append(pPr, textRun(text, rPr, false))
}
