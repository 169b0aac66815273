package schema

import "errors"

// Common schema errors.
var (
	// ErrMalformedInput is returned when construction input is not a
	// recognizable key/value mapping. It is raised before any field
	// validation runs.
	ErrMalformedInput = errors.New("malformed input: expected key/value map")

	// ErrDuplicateField is returned when a schema declares the same
	// attribute name twice.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrEmptyFieldName is returned when a schema declares a field with an
	// empty attribute name.
	ErrEmptyFieldName = errors.New("empty field name")

	// ErrInvalidTarget is returned by Bind when the target is not a non-nil
	// pointer to struct or a validated value cannot be assigned to its field.
	ErrInvalidTarget = errors.New("invalid bind target")
)
