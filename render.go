package resumedocx

import (
	"fmt"
	"strings"

	"github.com/vertekal/go-resume-docx/internal/ooxml"
)

// Fixed section headings from the branded template.
const (
	headingSummary    = "Professional Experience Summary"
	headingEducation  = "Education & Certifications"
	headingExperience = "Professional Experience"
)

// Badge row geometry, in EMUs. When the full builtin badge set is requested
// the template's exact offsets are used; any other count is distributed
// evenly around the row's center.
const (
	badgeAreaLeft   = 3219450
	badgeAreaRight  = 6572250
	badgeAreaCenter = (badgeAreaLeft + badgeAreaRight) / 2
	badgeVerticalY  = 57150
	badgeGap        = 100000
)

// sectionRenderer populates one résumé section into the bound template.
// Renderers run strictly in order; the first failure aborts assembly.
type sectionRenderer interface {
	render(h *DocumentHandle, rec *ResumeRecord) error
}

// contactRenderer renders the Header/Contact line. No conditional logic.
type contactRenderer struct{}

func (contactRenderer) render(h *DocumentHandle, rec *ResumeRecord) error {
	h.AppendParagraph(ooxml.ContactParagraph(rec.Name, rec.Phone, rec.Email))
	return nil
}

// summaryRenderer renders the summary heading and paragraph. The summary is
// rendered as-is; a blank summary is rejected because the template has no
// collapse behavior for an empty section.
type summaryRenderer struct{}

func (summaryRenderer) render(h *DocumentHandle, rec *ResumeRecord) error {
	if strings.TrimSpace(rec.Summary) == "" {
		return fmt.Errorf("%w: summary", ErrEmptyField)
	}
	h.AppendParagraph(ooxml.SectionHeading(headingSummary))
	h.AppendParagraph(ooxml.SummaryParagraph(rec.Summary))
	return nil
}

// educationRenderer renders degree/university text plus the badge image row.
// With no badges the section renders text only, with no placeholder gap.
type educationRenderer struct {
	registry *Registry
}

func (r educationRenderer) render(h *DocumentHandle, rec *ResumeRecord) error {
	badges := make([]Badge, 0, len(rec.Badges))
	images := make([]ooxml.BadgeImage, 0, len(rec.Badges))

	for _, key := range rec.Badges {
		badge, data, err := r.registry.Resolve(key)
		if err != nil {
			return err
		}
		rid := h.AddImage(badge.AssetName, data)
		badges = append(badges, badge)
		images = append(images, ooxml.BadgeImage{
			RID:         rid,
			DrawingID:   ooxml.DrawingID(badge.Key),
			Description: badge.Description,
			WidthEMU:    badge.WidthEMU,
			HeightEMU:   badge.HeightEMU,
		})
	}

	for i, pos := range badgePositions(badges) {
		images[i].OffsetX = pos[0]
		images[i].OffsetY = pos[1]
	}

	h.AppendParagraph(ooxml.SectionHeading(headingEducation))
	h.AppendParagraph(ooxml.EducationParagraph(
		rec.Education.Degree, rec.Education.University, images))

	// Spacers reserve vertical room for the anchored badge images.
	h.AppendParagraph(ooxml.SpacerParagraph("22", true))
	h.AppendParagraph(ooxml.SpacerParagraph("22", false))
	h.AppendParagraph(ooxml.SpacerParagraph("22", true))
	h.AppendParagraph(ooxml.SpacerParagraph("22", true))
	return nil
}

// badgePositions computes the X/Y offset for each badge, preserving input
// order. The template's exact offsets apply only when every requested badge
// carries one and the full row of four is present; otherwise the badges are
// centered as a group within the badge area.
func badgePositions(badges []Badge) [][2]int64 {
	positions := make([][2]int64, len(badges))

	if len(badges) == 4 && allHaveTemplatePos(badges) {
		for i, b := range badges {
			positions[i] = [2]int64{b.TemplateX, b.TemplateY}
		}
		return positions
	}

	var totalWidth int64
	for _, b := range badges {
		totalWidth += b.WidthEMU
	}
	span := totalWidth
	if len(badges) > 1 {
		span += badgeGap * int64(len(badges)-1)
	}

	x := int64(badgeAreaCenter) - span/2
	for i, b := range badges {
		positions[i] = [2]int64{x, badgeVerticalY}
		x += b.WidthEMU + badgeGap
	}
	return positions
}

func allHaveTemplatePos(badges []Badge) bool {
	for _, b := range badges {
		if !b.hasTemplatePos {
			return false
		}
	}
	return true
}

// experienceRenderer renders every job in input order: a title/date heading,
// an employer line only when the role names a company (military branches),
// then one bullet paragraph per bullet string, order preserved exactly.
type experienceRenderer struct{}

func (experienceRenderer) render(h *DocumentHandle, rec *ResumeRecord) error {
	h.AppendParagraph(ooxml.SectionHeading(headingExperience))

	for _, job := range rec.Jobs {
		hasCompany := job.Company != ""
		h.AppendParagraph(ooxml.JobHeadingParagraph(job.Title, job.Dates, hasCompany))
		if hasCompany {
			h.AppendParagraph(ooxml.CompanyParagraph(job.Company))
		}
		for _, bullet := range job.Bullets {
			h.AppendParagraph(ooxml.BulletParagraph(bullet))
		}
	}

	// Trailing spacers, matching the template's page flow.
	h.AppendParagraph(ooxml.SpacerParagraph("22", false))
	h.AppendParagraph(ooxml.SpacerParagraph("22", false))
	return nil
}
