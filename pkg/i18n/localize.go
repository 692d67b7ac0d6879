package i18n

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Localize returns a copy of vs with messages translated into lang.
// Violations without a translation key, or whose key is missing from the
// catalog, keep their original message. vs itself is not modified.
func Localize(tr *Translator, lang string, vs validator.Violations) validator.Violations {
	if vs == nil {
		return nil
	}

	out := make(validator.Violations, len(vs))
	copy(out, vs)
	if tr == nil {
		return out
	}

	for i := range out {
		if out[i].TranslationKey == "" {
			continue
		}
		out[i].Message = tr.Td(lang, out[i].TranslationKey, out[i].Message, paramArgs(out[i].Params)...)
	}
	return out
}

// LocalizeContext is Localize into the language of ctx. It falls back to the
// default language of tr when ctx has none or tr has no catalog for it.
func LocalizeContext(ctx context.Context, tr *Translator, vs validator.Violations) validator.Violations {
	if tr == nil {
		return Localize(nil, "", vs)
	}
	return Localize(tr, tr.ContextLanguage(ctx), vs)
}

func paramArgs(params map[string]any) []string {
	if len(params) == 0 {
		return nil
	}
	args := make([]string, 0, len(params)*2)
	for k, v := range params {
		args = append(args, k, paramString(v))
	}
	return args
}

func paramString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprint(val)
	}
}
