package cli

import "errors"

var (
	// ErrViolations is returned by commands that found invalid records after
	// printing the report.
	ErrViolations = errors.New("records failed validation")

	ErrUnknownKind   = errors.New("unknown record kind")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNoRecords     = errors.New("no records to validate")
	ErrDecodeRecords = errors.New("failed to decode records")
)
