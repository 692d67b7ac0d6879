package validator

import "fmt"

// Range validates that a numeric value lies in [min, max].
func Range[N Numeric](min, max N) Check[N] {
	return Check[N]{
		Test: func(value N) bool {
			return value >= min && value <= max
		},
		Error: Violation{
			Code:           "range",
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.range",
			Params: map[string]any{
				"min": min,
				"max": max,
			},
		},
	}
}

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[N Numeric](min N) Check[N] {
	return Check[N]{
		Test: func(value N) bool {
			return value >= min
		},
		Error: Violation{
			Code:           "min",
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			Params: map[string]any{
				"min": min,
			},
		},
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[N Numeric](max N) Check[N] {
	return Check[N]{
		Test: func(value N) bool {
			return value <= max
		},
		Error: Violation{
			Code:           "max",
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			Params: map[string]any{
				"max": max,
			},
		},
	}
}
