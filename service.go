package resumedocx

import (
	"context"
	"fmt"

	"github.com/vertekal/go-resume-docx/internal/fileutil"
)

// outputPermissions for generated documents: rw-r--r--.
const outputPermissions = 0o644

// Service orchestrates the generation pipeline: validate, bind, render the
// sections in fixed order, assemble. A Service is stateless between calls
// and safe to reuse; the registry and template are read-only resources.
type Service struct {
	cfg         serviceConfig
	registry    *Registry
	assetLoader AssetLoader
}

// New creates a Service with default configuration: the builtin badge
// registry over embedded assets and the default template path. Use options
// to customize (WithTemplate, WithRegistry, WithAssetLoader, WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{templatePath: DefaultTemplatePath},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = NewRegistry(s.assetLoader)
	}
	return s
}

// Generate runs the full pipeline and returns the document as bytes.
// The context is checked between stages; generation itself has no
// suspension points and completes well under a second.
//
// Section order is fixed regardless of input field order:
// Header/Contact, Summary, Education/Certifications, Experience.
func (s *Service) Generate(ctx context.Context, rec *ResumeRecord) ([]byte, error) {
	if s.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.timeout)
		defer cancel()
	}

	if err := Validate(rec, s.registry); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	handle, err := Bind(s.cfg.templatePath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderers := []sectionRenderer{
		contactRenderer{},
		summaryRenderer{},
		educationRenderer{registry: s.registry},
		experienceRenderer{},
	}
	for _, r := range renderers {
		if err := r.render(handle, rec); err != nil {
			return nil, fmt.Errorf("rendering document: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	out, err := Assemble(handle)
	if err != nil {
		return nil, fmt.Errorf("assembling document: %w", err)
	}
	return out, nil
}

// GenerateFile runs Generate and writes the result to outputPath
// atomically: the file appears only after the document is fully assembled,
// so no failure can leave a truncated or partially branded document there.
func (s *Service) GenerateFile(ctx context.Context, rec *ResumeRecord, outputPath string) error {
	out, err := s.Generate(ctx, rec)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(outputPath, out, outputPermissions); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
