package middleware

import (
	"github.com/gin-gonic/gin"

	"colorful-history/internal/domain/artworks"
	"colorful-history/internal/domain/regions"
)

const (
	localeKey  = "locale"
	countryKey = "country"
	regionKey  = "region"
)

// LocaleFrom returns the locale resolved for the request, or the default
// locale when the middleware did not run.
func LocaleFrom(c *gin.Context) artworks.Locale {
	if v, ok := c.Get(localeKey); ok {
		if l, ok := v.(artworks.Locale); ok {
			return l
		}
	}
	return artworks.DefaultLocale
}

// StoreRegionFrom returns the store country and region for store paths.
func StoreRegionFrom(c *gin.Context) (string, regions.Region, bool) {
	country := c.GetString(countryKey)
	v, ok := c.Get(regionKey)
	if !ok || country == "" {
		return "", regions.Region{}, false
	}
	r, ok := v.(regions.Region)
	return country, r, ok
}
