package validator

import (
	"fmt"
	"regexp"
	"unicode"
)

// Matches validates a string against a compiled pattern. Empty input fails.
func Matches(re *regexp.Regexp, description string) Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			return value != "" && re.MatchString(value)
		},
		Error: Violation{
			Code:           "pattern",
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			Params: map[string]any{
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}

// NoWhitespace validates that a string contains no whitespace characters.
func NoWhitespace() Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			for _, char := range value {
				if unicode.IsSpace(char) {
					return false
				}
			}
			return true
		},
		Error: Violation{
			Code:           "no_whitespace",
			Message:        "must not contain whitespace characters",
			TranslationKey: "validation.no_whitespace",
		},
	}
}

// NoControlChars validates that a string contains no control characters other
// than tab and line breaks.
func NoControlChars() Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			for _, char := range value {
				if unicode.IsControl(char) && char != '\t' && char != '\n' && char != '\r' {
					return false
				}
			}
			return true
		},
		Error: Violation{
			Code:           "no_control_chars",
			Message:        "must not contain control characters",
			TranslationKey: "validation.no_control_chars",
		},
	}
}

func ASCIIOnly() Check[string] {
	return Check[string]{
		Test: func(value string) bool {
			for _, char := range value {
				if char > unicode.MaxASCII {
					return false
				}
			}
			return true
		},
		Error: Violation{
			Code:           "ascii_only",
			Message:        "must contain only ASCII characters",
			TranslationKey: "validation.ascii_only",
		},
	}
}
