package artworks

import "strings"

type Locale string

const (
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
)

// DefaultLocale is used when nothing better can be negotiated.
const DefaultLocale = LocaleEN

// SupportedLocales keeps the order used for Accept-Language matching.
var SupportedLocales = []Locale{LocaleEN, LocaleDE}

// ParseLocale accepts "en"/"de" in any case.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleEN:
		return LocaleEN, true
	case LocaleDE:
		return LocaleDE, true
	}
	return "", false
}

// Bilingual holds one text per supported locale.
type Bilingual struct {
	EN string `json:"en"`
	DE string `json:"de"`
}

// For selects the text for locale, falling back to English when the
// requested translation is empty.
func (b Bilingual) For(locale Locale) string {
	if locale == LocaleDE && b.DE != "" {
		return b.DE
	}
	return b.EN
}
