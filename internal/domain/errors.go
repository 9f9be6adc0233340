package domain

import "errors"

var (
	// ErrNotFound indicates a deal or needs item lookup by ID failed.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStage indicates a stage string outside the pipeline enum.
	ErrInvalidStage = errors.New("invalid stage")

	// ErrInvalidDealType indicates a deal type outside the accepted set.
	ErrInvalidDealType = errors.New("invalid deal type")

	// ErrEmptyName rejects deal creation or update with a blank name.
	ErrEmptyName = errors.New("deal name is required")

	// ErrEmptyText rejects a needs item with blank text.
	ErrEmptyText = errors.New("needs item text is required")
)
