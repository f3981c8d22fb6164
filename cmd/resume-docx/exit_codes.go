package main

import (
	"errors"
	"os"

	resumedocx "github.com/vertekal/go-resume-docx"
	"github.com/vertekal/go-resume-docx/internal/config"
)

// Exit codes for the resume-docx CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage/validation, 3=I/O.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or record validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, resumedocx.ErrTemplateLoad) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrParseInput) ||
		errors.Is(err, ErrQuietVerbose) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, resumedocx.ErrMissingField) ||
		errors.Is(err, resumedocx.ErrNoBullets) ||
		errors.Is(err, resumedocx.ErrEmptyField) ||
		errors.Is(err, resumedocx.ErrUnknownBadge) ||
		errors.Is(err, resumedocx.ErrInvalidBadge) ||
		errors.Is(err, resumedocx.ErrInvalidAssetPath) {
		return ExitUsage
	}

	return ExitGeneral
}
