package regions

import "strings"

// DefaultCountryForLocale is the store country a locale lands on when
// geo detection gives nothing usable.
func DefaultCountryForLocale(locale string) string {
	if strings.EqualFold(locale, "de") {
		return "de"
	}
	return "us"
}

// PickCountry chooses the redirect target for a store request whose URL
// carries no valid country. Priority: geo header, per-locale default,
// first known country, configured fallback.
func PickCountry(m *Map, geoCountry, locale, fallback string) string {
	if geo := strings.ToLower(strings.TrimSpace(geoCountry)); geo != "" && m.Has(geo) {
		return geo
	}
	if def := DefaultCountryForLocale(locale); m.Has(def) {
		return def
	}
	if first := m.First(); first != "" {
		return first
	}
	return strings.ToLower(fallback)
}
