package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"colorful-history/internal/domain/artworks"
	"colorful-history/internal/domain/regions"
	"colorful-history/internal/platform/logging"
)

const storeSegment = "store"

// RegionLookup is satisfied by *regions.Cache.
type RegionLookup interface {
	Lookup(ctx context.Context) *regions.Map
}

// StoreRegion guards /{locale}/store/... paths. A path whose third
// segment is a known country passes through; any other store path is
// redirected (307) to the same path with a country inserted after
// /store. Non store paths are left to the locale middleware.
func StoreRegion(lookup RegionLookup, geoHeader, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ShouldRoute(c.Request.URL.Path) {
			c.Next()
			return
		}
		segs := segments(c.Request.URL.Path)
		if len(segs) < 2 || segs[1] != storeSegment {
			c.Next()
			return
		}
		locale, ok := artworks.ParseLocale(segs[0])
		if !ok {
			c.Next()
			return
		}

		m := lookup.Lookup(c.Request.Context())
		if len(segs) > 2 {
			country := strings.ToLower(segs[2])
			if region, ok := m.Get(country); ok {
				c.Set(localeKey, locale)
				c.Set(countryKey, country)
				c.Set(regionKey, region)
				c.Next()
				return
			}
		}

		target := regions.PickCountry(m, c.GetHeader(geoHeader), string(locale), fallback)
		rest := segs[2:]
		path := "/" + strings.Join(append([]string{segs[0], storeSegment, target}, rest...), "/")
		if strings.HasSuffix(c.Request.URL.Path, "/") && len(rest) > 0 {
			path += "/"
		}
		logging.FromContext(c).Debug("store region redirect",
			zap.String("country", target),
			zap.Int("known_countries", m.Len()),
		)
		redirect(c, path)
	}
}

func redirect(c *gin.Context, path string) {
	if q := c.Request.URL.RawQuery; q != "" {
		path += "?" + q
	}
	c.Redirect(http.StatusTemporaryRedirect, path)
	c.Abort()
}
