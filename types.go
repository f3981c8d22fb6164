package resumedocx

import (
	"encoding/json"
	"fmt"
	"time"
)

// ResumeRecord is the structured input describing one candidate's résumé.
// It is constructed once per invocation, consumed synchronously by the
// rendering pipeline, and never mutated by the library.
type ResumeRecord struct {
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Summary   string    `json:"summary"`
	Education Education `json:"education"`
	Badges    []string  `json:"badges"`
	Jobs      []Job     `json:"jobs"`
}

// Education holds the degree line of the Education & Certifications section.
type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
}

// Job is one entry of the Professional Experience section. Company is set
// only for military roles; every other role renders without an employer
// line. Dates is a display string rendered verbatim, never parsed.
type Job struct {
	Title   string   `json:"title"`
	Dates   string   `json:"dates"`
	Company string   `json:"company,omitempty"`
	Bullets []string `json:"bullets"`
}

// Advisory bullet-count minimums. These are authoring rules applied by the
// upstream editor, reported by Lint, and never enforced as hard errors.
const (
	RecentRoleCount      = 2
	RecentRoleBulletMin  = 10
	EarlierRoleBulletMin = 5
)

// ParseRecord decodes a JSON résumé record.
func ParseRecord(data []byte) (*ResumeRecord, error) {
	var rec ResumeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing resume record: %w", err)
	}
	return &rec, nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	templatePath string
	timeout      time.Duration
}

// DefaultTemplatePath is where the branded template lives relative to the
// working directory when no explicit path is configured.
const DefaultTemplatePath = "templates/vertekal_template.docx"

// WithTemplate sets the branded template path.
// Panics on empty path (programmer error, similar to time.NewTicker).
func WithTemplate(path string) Option {
	if path == "" {
		panic("resumedocx: WithTemplate path must not be empty")
	}
	return func(s *Service) {
		s.cfg.templatePath = path
	}
}

// WithRegistry replaces the default badge registry.
func WithRegistry(reg *Registry) Option {
	if reg == nil {
		panic("resumedocx: WithRegistry registry must not be nil")
	}
	return func(s *Service) {
		s.registry = reg
	}
}

// WithAssetLoader builds the default badge registry over the given loader.
// Ignored when WithRegistry is also set; a custom registry already carries
// its own loader.
func WithAssetLoader(loader AssetLoader) Option {
	if loader == nil {
		panic("resumedocx: WithAssetLoader loader must not be nil")
	}
	return func(s *Service) {
		s.assetLoader = loader
	}
}

// WithTimeout bounds each Generate call. Zero (the default) means no bound;
// the caller's context still applies either way.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("resumedocx: WithTimeout duration must not be negative")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}
