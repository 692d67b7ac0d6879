package i18n

import (
	"context"
	"embed"
)

//go:embed catalogs/*.yaml
var bundled embed.FS

// BundledCatalogs returns an adapter over the catalogs shipped with the
// package (en, id) covering every built-in rule.
func BundledCatalogs() TranslationAdapter {
	return NewFSAdapter(NewYAMLParser(), bundled, "catalogs")
}

// NewDefaultTranslator creates a Translator over the bundled catalogs.
func NewDefaultTranslator(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, BundledCatalogs(), options...)
}
