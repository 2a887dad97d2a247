package gallery

import (
	"sort"
	"time"

	"colorful-history/internal/domain/artworks"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate reads CMS dates; unparseable dates sort as the zero time.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Project drops artworks without an image and orders the rest.
// latest/oldest are stable; random reshuffles on every call.
func Project(original []artworks.Artwork, sorting Sorting, shuffle func(n int, swap func(i, j int))) []artworks.Artwork {
	out := make([]artworks.Artwork, 0, len(original))
	for _, a := range original {
		if a.HasImage() {
			out = append(out, a)
		}
	}

	switch sorting {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return parseDate(out[i].Date).Before(parseDate(out[j].Date))
		})
	case SortRandom:
		shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return parseDate(out[i].Date).After(parseDate(out[j].Date))
		})
	}
	return out
}
