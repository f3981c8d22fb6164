package assets

import (
	"embed"
	"fmt"
)

//go:embed badges/*.png
var badges embed.FS

// EmbeddedLoader loads badge assets from the embedded filesystem.
// Implements Loader.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadBadge loads a badge PNG from embedded assets by file name.
func (e *EmbeddedLoader) LoadBadge(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := badges.ReadFile("badges/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
	}

	return content, nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
