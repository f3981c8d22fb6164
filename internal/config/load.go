package config

import (
	"fmt"
	"os"

	"github.com/vertekal/go-resume-docx/internal/yamlutil"
)

// Load reads and validates a config file.
// Returns ErrConfigNotFound if the path does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied configuration
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks structural limits on configured values.
func (c *Config) Validate() error {
	for key, entry := range c.Badges {
		if len(key) > MaxBadgeKeyLength || !badgeKeyPattern.MatchString(key) {
			return fmt.Errorf("%w: badge key %q must be lowercase snake_case (max %d chars)",
				ErrConfigInvalid, key, MaxBadgeKeyLength)
		}
		if entry.File == "" {
			return fmt.Errorf("%w: badge %q has no file", ErrConfigInvalid, key)
		}
		if len(entry.File) > MaxBadgeFileLength {
			return fmt.Errorf("%w: badge %q file name exceeds %d chars",
				ErrConfigInvalid, key, MaxBadgeFileLength)
		}
		if len(entry.Description) > MaxBadgeDescriptionLength {
			return fmt.Errorf("%w: badge %q description exceeds %d chars",
				ErrConfigInvalid, key, MaxBadgeDescriptionLength)
		}
		if entry.WidthEMU <= 0 || entry.HeightEMU <= 0 {
			return fmt.Errorf("%w: badge %q needs positive widthEmu and heightEmu",
				ErrConfigInvalid, key)
		}
	}
	return nil
}
