package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	resumedocx "github.com/vertekal/go-resume-docx"
	"github.com/vertekal/go-resume-docx/internal/config"
	"github.com/vertekal/go-resume-docx/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input specified (--input)")
	ErrNoOutput    = errors.New("no output specified (--output)")
	ErrReadInput   = errors.New("failed to read input record")
	ErrParseInput  = errors.New("failed to parse input record")
	ErrBadRegistry = errors.New("failed to build badge registry")
)

// run executes one generation from parsed flags.
func run(flags *cliFlags, stdout, stderr io.Writer) error {
	if flags.version {
		fmt.Fprintln(stdout, "resume-docx "+Version)
		return nil
	}

	if flags.input == "" {
		return ErrNoInput
	}
	if flags.output == "" {
		return ErrNoOutput
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	templatePath := firstNonEmpty(flags.template, cfg.Template.Path, resumedocx.DefaultTemplatePath)
	badgeDir := firstNonEmpty(flags.badgeDir, cfg.Assets.BadgeDir)
	outputPath := resolveOutput(flags.output, cfg.Output.DefaultDir)

	registry, err := buildRegistry(cfg, badgeDir)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(flags.input) // #nosec G304 -- operator-supplied input path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	rec, err := resumedocx.ParseRecord(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParseInput, err)
	}

	if flags.lint || flags.verbose {
		for _, warning := range resumedocx.Lint(rec) {
			fmt.Fprintln(stderr, "warning: "+warning)
		}
	}

	svc := resumedocx.New(
		resumedocx.WithTemplate(templatePath),
		resumedocx.WithRegistry(registry),
	)

	if flags.verbose {
		fmt.Fprintf(stderr, "Template: %s\n", templatePath)
		fmt.Fprintf(stderr, "Generating %s...\n", outputPath)
	}

	if err := svc.GenerateFile(context.Background(), rec, outputPath); err != nil {
		return decorate(err, templatePath, badgeDir)
	}

	if !flags.quiet {
		fmt.Fprintf(stdout, "Created %s\n", outputPath)
	}
	return nil
}

// loadConfig loads the optional YAML config. No --config flag means empty
// defaults; a flag pointing at a missing or invalid file is an error.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// buildRegistry assembles the badge registry: builtin set, asset loader
// with optional filesystem overrides, plus config-defined badges.
func buildRegistry(cfg *config.Config, badgeDir string) (*resumedocx.Registry, error) {
	loader, err := resumedocx.NewAssetLoader(badgeDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRegistry, err)
	}

	registry := resumedocx.NewRegistry(loader)
	for key, entry := range cfg.Badges {
		badge := resumedocx.Badge{
			Key:         key,
			AssetName:   entry.File,
			Description: entry.Description,
			WidthEMU:    entry.WidthEMU,
			HeightEMU:   entry.HeightEMU,
		}
		if err := registry.Add(badge); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadRegistry, err)
		}
	}
	return registry, nil
}

// decorate appends actionable hints to generation failures.
func decorate(err error, templatePath, badgeDir string) error {
	switch {
	case errors.Is(err, resumedocx.ErrTemplateLoad):
		if hint := hints.ForTemplateLoad(templatePath); hint != "" {
			return fmt.Errorf("%w%s", err, hint)
		}
	case errors.Is(err, resumedocx.ErrMissingAsset):
		if hint := hints.ForBadgeAsset(badgeDir); hint != "" {
			return fmt.Errorf("%w%s", err, hint)
		}
	}
	return err
}

// resolveOutput places relative output paths under the configured default
// output directory. Absolute paths and an empty default pass through.
func resolveOutput(output, defaultDir string) string {
	if defaultDir == "" || filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(defaultDir, output)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
