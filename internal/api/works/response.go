package works

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"colorful-history/internal/domain/artworks"
)

// localeParam reads :locale; unknown locales are a 404 like any other
// unknown page.
func localeParam(c *gin.Context) (artworks.Locale, bool) {
	l, ok := artworks.ParseLocale(c.Param("locale"))
	if !ok || string(l) != c.Param("locale") {
		notFound(c, "Page not found")
		return "", false
	}
	return l, true
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

func (h *Handler) pageURL(locale artworks.Locale, slug string) string {
	return fmt.Sprintf("%s/%s/artwork/%s", h.siteURL, locale, slug)
}

func (h *Handler) buildMeta(a artworks.Artwork, locale artworks.Locale) PageMeta {
	alternates := make(map[string]string, len(artworks.SupportedLocales))
	for _, l := range artworks.SupportedLocales {
		alternates[string(l)] = h.pageURL(l, a.Slug)
	}
	images := []string{}
	if a.Image.SourceURL != "" {
		images = append(images, a.Image.SourceURL)
	}
	return PageMeta{
		Title:       a.Title,
		Description: a.MetaDescription,
		Keywords:    a.MetaKeywords,
		Canonical:   h.pageURL(locale, a.Slug),
		Alternates:  alternates,
		OGImages:    images,
	}
}
