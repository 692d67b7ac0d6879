package validator

import "fmt"

func MinItems[E any](min int) Check[[]E] {
	return Check[[]E]{
		Test: func(value []E) bool {
			return len(value) >= min
		},
		Error: Violation{
			Code:           "min_items",
			Message:        fmt.Sprintf("must have at least %d items", min),
			TranslationKey: "validation.min_items",
			Params: map[string]any{
				"min": min,
			},
		},
	}
}

func MaxItems[E any](max int) Check[[]E] {
	return Check[[]E]{
		Test: func(value []E) bool {
			return len(value) <= max
		},
		Error: Violation{
			Code:           "max_items",
			Message:        fmt.Sprintf("must have at most %d items", max),
			TranslationKey: "validation.max_items",
			Params: map[string]any{
				"max": max,
			},
		},
	}
}

func ItemsRange[E any](min, max int) Check[[]E] {
	return Check[[]E]{
		Test: func(value []E) bool {
			return len(value) >= min && len(value) <= max
		},
		Error: Violation{
			Code:           "items_range",
			Message:        fmt.Sprintf("must have between %d and %d items", min, max),
			TranslationKey: "validation.items_range",
			Params: map[string]any{
				"min": min,
				"max": max,
			},
		},
	}
}
