package validator

import "errors"

var (
	// ErrValidationFailed matches any Violations value through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingContext is returned when a schema with context-aware record rules
	// is validated without a context.
	ErrMissingContext = errors.New("validator: schema requires a validation context")

	// ErrContextType is returned when the supplied context does not have the type
	// a context-aware rule was declared with.
	ErrContextType = errors.New("validator: unexpected validation context type")
)
