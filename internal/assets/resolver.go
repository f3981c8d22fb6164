package assets

import "errors"

// Resolver loads badge assets with filesystem-first resolution.
// When a base directory is configured, files there take precedence;
// anything not found on disk falls back to the embedded defaults.
// With no base directory only the embedded set is consulted.
type Resolver struct {
	filesystem *FilesystemLoader // nil when no override directory configured
	embedded   *EmbeddedLoader
}

// NewResolver creates a Resolver. If baseDir is empty, only embedded assets
// are used. Returns ErrInvalidBaseDir if baseDir is set but unusable.
func NewResolver(baseDir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}

	if baseDir != "" {
		fsLoader, err := NewFilesystemLoader(baseDir)
		if err != nil {
			return nil, err
		}
		r.filesystem = fsLoader
	}

	return r, nil
}

// LoadBadge loads a badge PNG by file name.
func (r *Resolver) LoadBadge(name string) ([]byte, error) {
	if r.filesystem != nil {
		content, err := r.filesystem.LoadBadge(name)
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrAssetNotFound) {
			return nil, err
		}
		// Not on disk: fall through to embedded defaults.
	}
	return r.embedded.LoadBadge(name)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
