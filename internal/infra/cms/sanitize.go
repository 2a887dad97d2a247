package cms

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	ugcPolicy    = bluemonday.UGCPolicy()
)

// plainText turns a RENDERED WordPress title into display text:
// markup stripped, entities such as &#8217; decoded.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// safeHTML keeps user-generated formatting but drops scripts, styles and
// event handlers from rendered CMS content.
func safeHTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(ugcPolicy.Sanitize(s))
}
