// Package config loads generator configuration from a YAML file.
//
// Everything in the file is optional: the config supplies defaults for the
// CLI (template path, badge asset directory, output directory) and may extend
// the badge registry with additional keys. It is loaded once at startup and
// read-only thereafter.
package config

import (
	"errors"
	"regexp"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigInvalid  = errors.New("invalid config")
)

// Field length limits. Badge descriptions end up in drawing alt text and
// registry keys in file names, so both are kept short.
const (
	MaxBadgeKeyLength         = 64
	MaxBadgeFileLength        = 128
	MaxBadgeDescriptionLength = 200
)

// badgeKeyPattern matches registry keys: lowercase snake_case identifiers.
var badgeKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Config holds all configuration for resume generation.
type Config struct {
	Template TemplateConfig        `yaml:"template"`
	Assets   AssetsConfig          `yaml:"assets"`
	Output   OutputConfig          `yaml:"output"`
	Badges   map[string]BadgeEntry `yaml:"badges"`
}

// TemplateConfig locates the branded template document.
type TemplateConfig struct {
	Path string `yaml:"path"` // Path to the template .docx (empty = CLI flag or built-in default)
}

// AssetsConfig locates badge image overrides.
type AssetsConfig struct {
	BadgeDir string `yaml:"badgeDir"` // Directory of badge PNGs overriding the embedded set
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// BadgeEntry extends the badge registry with one additional badge.
type BadgeEntry struct {
	File        string `yaml:"file"`        // PNG file name resolved through the asset loader
	WidthEMU    int64  `yaml:"widthEmu"`    // Rendered width in EMUs
	HeightEMU   int64  `yaml:"heightEmu"`   // Rendered height in EMUs
	Description string `yaml:"description"` // Alt text for the drawing
}

// Default returns an empty configuration.
func Default() *Config {
	return &Config{}
}
