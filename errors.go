package resumedocx

import "errors"

// Sentinel errors for library operations.
var (
	// Validation errors (recoverable: fix the record and retry).
	ErrMissingField = errors.New("required field is empty")
	ErrNoBullets    = errors.New("job has no bullets")
	ErrEmptyField   = errors.New("field is blank")

	// Badge errors (configuration defects).
	ErrUnknownBadge = errors.New("unknown badge key")
	ErrMissingAsset = errors.New("badge asset missing")

	// Template and assembly errors (environment defects).
	ErrTemplateLoad    = errors.New("failed to load template")
	ErrStyleUnresolved = errors.New("style not defined by template")
	ErrAssembleVerify  = errors.New("assembled document failed verification")

	// Asset loader errors.
	ErrInvalidAssetPath = errors.New("invalid badge asset path")

	// Registry extension errors.
	ErrInvalidBadge = errors.New("invalid badge definition")
)
