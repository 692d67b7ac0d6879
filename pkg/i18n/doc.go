// Package i18n translates validation messages.
//
// Catalogs are nested maps keyed by language code and loaded through a
// TranslationAdapter. MapAdapter serves in-memory data, FileAdapter reads a
// single JSON or YAML file and FSAdapter merges every catalog in a directory
// of any fs.FS. BundledCatalogs exposes the English and Indonesian catalogs
// compiled into the package; they cover the translation key of every
// built-in validator rule.
//
// Templates use named placeholders:
//
//	tr, err := i18n.NewDefaultTranslator(ctx)
//	if err != nil {
//		return err
//	}
//	tr.T("id", "validation.length", "min", "3", "max", "20")
//	// "panjang harus antara 3 dan 20"
//
// Localize rewrites the messages of a validator.Violations value using each
// violation's TranslationKey and Params, keeping the original message when
// the catalog has no entry:
//
//	vs := validator.ExtractViolations(err)
//	localized := i18n.Localize(tr, tr.Match("id-ID,en;q=0.5"), vs)
//
// Match and Negotiate pick a supported language from an Accept-Language
// style preference list using golang.org/x/text/language. WithLanguage stores
// the chosen language in a context for Tc and LocalizeContext.
//
// Catalog files may carry metadata next to the languages: only top-level keys
// that parse as language tags are loaded.
package i18n
