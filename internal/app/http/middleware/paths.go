package middleware

import "strings"

// skipPrefixes are never locale-routed: API routes, health checks and
// static assets.
var skipPrefixes = []string{
	"api",
	"health",
	"_next/static",
	"_next/image",
	"favicon.ico",
	"images",
	"assets",
}

// ShouldRoute reports whether path is a page path handled by the
// locale/region middleware. Anything that looks like a file is skipped.
func ShouldRoute(path string) bool {
	trimmed := strings.TrimPrefix(path, "/")
	for _, p := range skipPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return false
		}
	}
	return !strings.Contains(path, ".")
}

func segments(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
