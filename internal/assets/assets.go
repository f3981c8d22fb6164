// Package assets loads badge image assets for document generation.
//
// Badges ship as embedded PNG defaults. A filesystem directory may be layered
// on top, in which case files in the directory take precedence and missing
// files fall back to the embedded set.
package assets

import (
	"errors"
	"regexp"
)

// Sentinel errors for asset operations.
var (
	ErrAssetNotFound    = errors.New("badge asset not found")
	ErrInvalidAssetName = errors.New("invalid badge asset name")
	ErrInvalidBaseDir   = errors.New("invalid badge asset directory")
	ErrAssetRead        = errors.New("failed to read badge asset")
	ErrPathTraversal    = errors.New("asset path escapes base directory")
)

// Loader loads a badge PNG by file name (e.g. "csm.png").
type Loader interface {
	LoadBadge(name string) ([]byte, error)
}

// assetNamePattern restricts asset names to flat, lowercase PNG file names.
// No separators, so names can never address files outside the asset dirs.
var assetNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*\.png$`)

// ValidateAssetName checks that name is a safe badge asset file name.
func ValidateAssetName(name string) error {
	if !assetNamePattern.MatchString(name) {
		return ErrInvalidAssetName
	}
	return nil
}
