package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads badge assets from a directory on the filesystem.
// Implements Loader.
type FilesystemLoader struct {
	baseDir string
}

// NewFilesystemLoader creates a FilesystemLoader for the given directory.
// Returns ErrInvalidBaseDir if the path is not a valid, readable directory.
func NewFilesystemLoader(baseDir string) (*FilesystemLoader, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBaseDir)
	}

	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}

	// Resolve symlinks so the containment check below compares real paths.
	if realDir, err := filepath.EvalSymlinks(absDir); err == nil {
		absDir = realDir
	}

	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBaseDir, absDir)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBaseDir, absDir)
	}
	if _, err := os.ReadDir(absDir); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBaseDir, err)
	}

	return &FilesystemLoader{baseDir: absDir}, nil
}

// LoadBadge loads a badge PNG from {baseDir}/{name}.
func (f *FilesystemLoader) LoadBadge(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(f.baseDir, name)
	if err := f.verifyContainment(path); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- name validated and contained above
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return content, nil
}

// verifyContainment ensures the resolved path stays within baseDir.
func (f *FilesystemLoader) verifyContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPathTraversal, err)
	}
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}
	if absPath != f.baseDir && !strings.HasPrefix(absPath, f.baseDir+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s", ErrPathTraversal, path)
	}
	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
