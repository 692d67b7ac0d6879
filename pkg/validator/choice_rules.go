package validator

import (
	"fmt"
	"slices"
	"strings"
)

func OneOf[T comparable](allowed ...T) Check[T] {
	return Check[T]{
		Test: func(value T) bool {
			return slices.Contains(allowed, value)
		},
		Error: Violation{
			Code:           "one_of",
			Message:        fmt.Sprintf("must be one of: %v", allowed),
			TranslationKey: "validation.in_list",
			Params: map[string]any{
				"allowed_values": allowed,
			},
		},
	}
}

func NoneOf[T comparable](forbidden ...T) Check[T] {
	return Check[T]{
		Test: func(value T) bool {
			return !slices.Contains(forbidden, value)
		},
		Error: Violation{
			Code:           "none_of",
			Message:        fmt.Sprintf("must not be one of: %v", forbidden),
			TranslationKey: "validation.not_in_list",
			Params: map[string]any{
				"forbidden_values": forbidden,
			},
		},
	}
}

func OneOfFold(allowed ...string) Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			return slices.ContainsFunc(allowed, func(a string) bool {
				return strings.EqualFold(a, value)
			})
		},
		Error: Violation{
			Code:           "one_of",
			Message:        fmt.Sprintf("must be one of: %v (case insensitive)", allowed),
			TranslationKey: "validation.in_list_case_insensitive",
			Params: map[string]any{
				"allowed_values": allowed,
			},
		},
	}
}
