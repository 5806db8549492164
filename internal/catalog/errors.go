package catalog

import "errors"

var (
	// ErrEmptyCatalog indicates the catalog document lists no specimens.
	ErrEmptyCatalog = errors.New("catalog has no specimens")

	// ErrDuplicateSpecimen indicates two specimens share an identity.
	ErrDuplicateSpecimen = errors.New("duplicate specimen id")

	// ErrMissingDefault indicates the fallback diagnosis entry is absent.
	ErrMissingDefault = errors.New("default diagnosis missing")

	// ErrInvalidColor indicates a color token is not a #rrggbb hex value.
	ErrInvalidColor = errors.New("invalid color token")

	// ErrColorMismatch indicates a diagnosis is drawn in a different color
	// than the specimen it belongs to.
	ErrColorMismatch = errors.New("diagnosis color does not match specimen")
)
