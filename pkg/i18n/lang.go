package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is the default language code used when no language is detected
const DefaultLanguage = "en"

// maxPreferenceLength bounds the preference strings handed to the parser.
const maxPreferenceLength = 4096

// Negotiate picks the supported language that best fits preference, an
// Accept-Language style list ("id-ID,id;q=0.9,en;q=0.5") or a single tag.
// Regional variants fall back to their base language, so "en-GB" matches "en".
// defaultLang is returned when nothing matches.
func Negotiate(preference string, supported []string, defaultLang string) string {
	preference = strings.TrimSpace(preference)
	if preference == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(preference) > maxPreferenceLength {
		preference = preference[:maxPreferenceLength]
	}

	desired, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, code)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return defaultLang
	}
	return codes[idx]
}
