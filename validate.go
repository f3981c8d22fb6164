package resumedocx

import (
	"fmt"
	"strings"
)

// FieldIssue is one validation violation, tied to the offending field.
type FieldIssue struct {
	Field string
	Err   error
}

func (i FieldIssue) String() string {
	return i.Field + ": " + i.Err.Error()
}

// ValidationError aggregates every violation found in one validation pass,
// so the caller can correct the input in a single iteration. It matches the
// underlying sentinels (ErrMissingField, ErrUnknownBadge, ErrNoBullets)
// through errors.Is.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid resume record (%d issue(s)): %s",
		len(e.Issues), strings.Join(msgs, "; "))
}

// Unwrap exposes each issue's error for errors.Is matching.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Issues))
	for i, issue := range e.Issues {
		errs[i] = issue.Err
	}
	return errs
}

// Validate checks the record against the structural schema: required scalar
// fields present, badges resolvable in reg, and every job carrying a title,
// a dates string, and at least one bullet. All violations are collected and
// returned together as a *ValidationError; nil means the record is valid.
func Validate(rec *ResumeRecord, reg *Registry) error {
	if rec == nil {
		return &ValidationError{Issues: []FieldIssue{
			{Field: "record", Err: fmt.Errorf("%w: record is nil", ErrMissingField)},
		}}
	}

	var issues []FieldIssue
	need := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			issues = append(issues, FieldIssue{
				Field: field,
				Err:   fmt.Errorf("%w: %s", ErrMissingField, field),
			})
		}
	}

	need("name", rec.Name)
	need("phone", rec.Phone)
	need("email", rec.Email)
	need("summary", rec.Summary)
	need("education.degree", rec.Education.Degree)
	need("education.university", rec.Education.University)

	for i, key := range rec.Badges {
		if !reg.Known(key) {
			issues = append(issues, FieldIssue{
				Field: fmt.Sprintf("badges[%d]", i),
				Err:   fmt.Errorf("%w: %q", ErrUnknownBadge, key),
			})
		}
	}

	for i, job := range rec.Jobs {
		need(fmt.Sprintf("jobs[%d].title", i), job.Title)
		need(fmt.Sprintf("jobs[%d].dates", i), job.Dates)
		if len(job.Bullets) == 0 {
			issues = append(issues, FieldIssue{
				Field: fmt.Sprintf("jobs[%d].bullets", i),
				Err:   fmt.Errorf("%w: jobs[%d]", ErrNoBullets, i),
			})
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Lint reports advisory layout warnings: bullet counts below the role-tier
// minimums (which materially affect row height and page flow). Warnings
// never block generation.
func Lint(rec *ResumeRecord) []string {
	if rec == nil {
		return nil
	}
	var warnings []string
	for i, job := range rec.Jobs {
		minBullets := EarlierRoleBulletMin
		if i < RecentRoleCount {
			minBullets = RecentRoleBulletMin
		}
		if n := len(job.Bullets); n > 0 && n < minBullets {
			warnings = append(warnings, fmt.Sprintf(
				"jobs[%d] (%s): %d bullet(s), expected at least %d for this role tier",
				i, job.Title, n, minBullets))
		}
	}
	return warnings
}
