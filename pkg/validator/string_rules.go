package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CharCount returns the number of characters in s: runes after NFC
// normalization, so "e" followed by a combining accent counts once.
func CharCount(s string) int {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return utf8.RuneCountInString(s)
}

// NotBlank validates that a string is not empty after trimming whitespace.
func NotBlank() Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
		Error: Violation{
			Code:           "not_blank",
			Message:        "must not be blank",
			TranslationKey: "validation.not_blank",
		},
	}
}

// Length validates that the character count lies in [min, max]. The value is
// measured as given, without trimming: combine with NotBlank to reject
// whitespace-only input.
func Length(min, max int) Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			n := CharCount(value)
			return n >= min && n <= max
		},
		Error: Violation{
			Code:           "length",
			Message:        fmt.Sprintf("length must be between %d and %d", min, max),
			TranslationKey: "validation.length",
			Params: map[string]any{
				"min": min,
				"max": max,
			},
		},
	}
}

func MinLength(min int) Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			return CharCount(value) >= min
		},
		Error: Violation{
			Code:           "min_length",
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			Params: map[string]any{
				"min": min,
			},
		},
	}
}

func MaxLength(max int) Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			return CharCount(value) <= max
		},
		Error: Violation{
			Code:           "max_length",
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			Params: map[string]any{
				"max": max,
			},
		},
	}
}
