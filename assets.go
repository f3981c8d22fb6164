package resumedocx

import (
	"errors"
	"fmt"

	"github.com/vertekal/go-resume-docx/internal/assets"
)

// AssetLoader defines the contract for loading badge PNG images by file
// name. Implementations may load from filesystem, embedded assets, object
// storage, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to the embedded badge set. Implement this interface for custom
// backends.
type AssetLoader interface {
	// LoadBadge loads a badge PNG by file name (e.g. "csm.png").
	// Returns an error matching ErrMissingAsset if the image doesn't exist.
	LoadBadge(name string) ([]byte, error)
}

// NewAssetLoader creates an AssetLoader for the given badge directory.
// If badgeDir is empty, the loader serves only the embedded badge set.
// If badgeDir is set, files there take precedence with fallback to embedded.
//
// Returns ErrInvalidAssetPath if badgeDir is set but not a valid, readable
// directory.
func NewAssetLoader(badgeDir string) (AssetLoader, error) {
	resolver, err := assets.NewResolver(badgeDir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps the internal resolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.Resolver
}

func (a *assetLoaderAdapter) LoadBadge(name string) ([]byte, error) {
	content, err := a.resolver.LoadBadge(name)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public sentinels.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrAssetNotFound):
		return fmt.Errorf("%w: %v", ErrMissingAsset, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return fmt.Errorf("%w: %v", ErrMissingAsset, err)
	case errors.Is(err, assets.ErrAssetRead):
		return fmt.Errorf("%w: %v", ErrMissingAsset, err)
	case errors.Is(err, assets.ErrInvalidBaseDir):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	default:
		return err
	}
}
