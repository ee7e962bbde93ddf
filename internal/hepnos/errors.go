package hepnos

import "errors"

var (
	// ErrInvalidObjectKind is returned for an object kind other than the five HEPnOS kinds.
	ErrInvalidObjectKind = errors.New("hepnos: invalid object kind")

	// ErrMissingPathPrefix is returned when a disk-backed backend is selected without a path prefix.
	ErrMissingPathPrefix = errors.New("hepnos: disk-backed database type requires a path prefix")

	// ErrConstraintViolation is returned when the requested counts are inconsistent with each other.
	ErrConstraintViolation = errors.New("hepnos: constraint violation")

	// ErrMissingAddress is returned when no Mercury protocol or address is given.
	ErrMissingAddress = errors.New("hepnos: address is required")
)
