package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"colorful-history/internal/domain/artworks"
)

// LocaleCookie remembers the last locale a visitor browsed in.
const LocaleCookie = "NEXT_LOCALE"

var localeMatcher = language.NewMatcher([]language.Tag{language.English, language.German})

// Locale enforces a locale prefix on every page path. Paths that start
// with a supported locale pass through with the locale stored on the
// context; all others are redirected (307) to the negotiated locale.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !ShouldRoute(path) {
			c.Next()
			return
		}

		if segs := segments(path); len(segs) > 0 {
			if locale, ok := artworks.ParseLocale(segs[0]); ok {
				if string(locale) != segs[0] {
					redirect(c, "/"+strings.Join(append([]string{string(locale)}, segs[1:]...), "/"))
					return
				}
				c.Set(localeKey, locale)
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(LocaleCookie, string(locale), 365*24*60*60, "/", "", false, false)
				c.Next()
				return
			}
		}

		target := "/" + string(negotiate(c))
		if path != "/" {
			target += path
		}
		redirect(c, target)
	}
}

func negotiate(c *gin.Context) artworks.Locale {
	if v, err := c.Cookie(LocaleCookie); err == nil {
		if l, ok := artworks.ParseLocale(v); ok {
			return l
		}
	}
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return artworks.DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return artworks.DefaultLocale
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return artworks.DefaultLocale
	}
	return artworks.SupportedLocales[idx]
}
