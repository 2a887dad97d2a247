package regions

import "strings"

type Country struct {
	ISO2        string `json:"iso_2"`
	DisplayName string `json:"display_name,omitempty"`
}

// Region is a store region and the countries it serves.
type Region struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CurrencyCode string    `json:"currency_code"`
	Countries    []Country `json:"countries"`
}

// Map looks up regions by lower-case ISO-2 country code. Codes keep the
// order in which they were first seen so First is deterministic.
type Map struct {
	byCode map[string]Region
	codes  []string
}

// BuildMap inverts regions into a country lookup. Later regions never
// override a code already claimed by an earlier one.
func BuildMap(list []Region) *Map {
	m := &Map{byCode: map[string]Region{}}
	for _, r := range list {
		for _, c := range r.Countries {
			code := strings.ToLower(strings.TrimSpace(c.ISO2))
			if code == "" {
				continue
			}
			if _, seen := m.byCode[code]; seen {
				continue
			}
			m.byCode[code] = r
			m.codes = append(m.codes, code)
		}
	}
	return m
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.codes)
}

func (m *Map) Has(code string) bool {
	_, ok := m.Get(code)
	return ok
}

func (m *Map) Get(code string) (Region, bool) {
	if m == nil || code == "" {
		return Region{}, false
	}
	r, ok := m.byCode[strings.ToLower(code)]
	return r, ok
}

// First returns the first country code seen, or "".
func (m *Map) First() string {
	if m.Len() == 0 {
		return ""
	}
	return m.codes[0]
}

// Codes returns a copy of all known codes in insertion order.
func (m *Map) Codes() []string {
	if m == nil {
		return []string{}
	}
	return append([]string(nil), m.codes...)
}
