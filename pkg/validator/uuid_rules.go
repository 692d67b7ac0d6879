package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID validates the canonical 36 character UUID form.
func UUID() Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			// Fast rejection: check length and hyphen positions before parsing
			if len(value) != 36 {
				return false
			}

			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}

			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: Violation{
			Code:           "uuid",
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
		},
	}
}

// OptionalUUID is UUID that accepts the empty string.
func OptionalUUID() Check[string] {
	inner := UUID()
	test := inner.Test
	inner.Test = func(value string) bool {
		return value == "" || test(value)
	}
	return inner
}

func NonNilUUID() Check[uuid.UUID] {
	return Check[uuid.UUID]{
		Test: func(value uuid.UUID) bool {
			return value != uuid.Nil
		},
		Error: Violation{
			Code:           "uuid_not_nil",
			Message:        "UUID cannot be nil",
			TranslationKey: "validation.uuid_not_nil",
		},
	}
}
