package i18n

import "context"

type languageKey struct{}

// WithLanguage returns a copy of ctx carrying the language messages should be
// localized into.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// LanguageFromContext returns the language stored by WithLanguage.
func LanguageFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(languageKey{}).(string)
	return lang, ok && lang != ""
}

// ContextLanguage returns the language stored in ctx when t has a catalog for
// it, and the default language of t otherwise.
func (t *Translator) ContextLanguage(ctx context.Context) string {
	if lang, ok := LanguageFromContext(ctx); ok && t.Require(lang) == nil {
		return lang
	}
	return t.defaultLang
}
