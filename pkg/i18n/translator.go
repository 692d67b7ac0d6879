package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// ErrLanguageNotSupported indicates that the requested language is not available
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}

// Translator looks up message templates loaded through a TranslationAdapter.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
	adapter        TranslationAdapter
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:    DefaultLanguage,
		fallbackToKey:  true,
		missingLogMode: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:        adapter,
	}

	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches the catalogs from the adapter again and swaps them in.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	if err := validateTranslations(translations); err != nil {
		return err
	}

	t.mu.Lock()
	t.translations = translations
	langs := t.supportedLanguages()
	t.mu.Unlock()

	if len(langs) == 0 {
		t.logger.WarnContext(ctx, "No translations provided")
	}
	t.logger.DebugContext(ctx, "Translations loaded", slog.Any("languages", langs))
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return ErrEmptyLanguageCode
		}
		if translations == nil {
			return fmt.Errorf("%w: %s", ErrNilTranslations, lang)
		}
	}
	return nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// SupportedLanguages returns the sorted language codes that have translations.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

// DefaultLanguage returns the language used when negotiation finds no match.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match negotiates the best supported language for a preference list such as
// "id-ID,id;q=0.9,en;q=0.5" or a single tag like "en-GB".
func (t *Translator) Match(preference string) string {
	return Negotiate(preference, t.SupportedLanguages(), t.defaultLang)
}

// Require returns *ErrLanguageNotSupported if lang has no catalog.
func (t *Translator) Require(lang string) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if _, ok := t.translations[lang]; !ok {
		return &ErrLanguageNotSupported{Lang: lang}
	}
	return nil
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.length" reads m["validation"]["length"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}

	_, ok = getTranslation(langMap, key)
	return ok
}

// buildParams converts key, value, key, value, ... into a map.
// An odd trailing argument is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format substitutes "%{name}" placeholders from params. Unknown
// placeholders are kept as they are.
func Format(tmpl string, params map[string]string) string {
	if !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}

// lookup returns the template stored under key for lang.
func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("Translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

// T translates a key for the given language, substituting "%{name}"
// placeholders from key-value argument pairs:
//
//	translator.T("en", "validation.length", "min", "3", "max", "20")
//
// A missing translation yields the key when fallback to key is enabled and
// an empty string otherwise.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.fallbackToKey {
			return Format(key, buildParams(args))
		}
		return ""
	}
	return Format(tmpl, buildParams(args))
}

// Td translates a key with an explicit fallback template.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return Format(tmpl, buildParams(args))
}

// Tc translates a key into the language of ctx (see ContextLanguage).
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(t.ContextLanguage(ctx), key, args...)
}
