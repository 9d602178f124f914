package models

import (
	"errors"
)

// Catalog-related errors
var (
	// ErrInvalidCatalog is returned when a catalog fails validation
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrDuplicateID is returned when two records in the same collection share an ID
	ErrDuplicateID = errors.New("duplicate id")
)

// Seed file errors
var (
	// ErrSeedNotFound is returned when a seed file does not exist
	ErrSeedNotFound = errors.New("seed file not found")
)
