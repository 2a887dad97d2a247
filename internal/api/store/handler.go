package store

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"colorful-history/internal/app/http/middleware"
	"colorful-history/internal/domain/artworks"
	"colorful-history/internal/domain/regions"
)

type Handler struct {
	lookup middleware.RegionLookup
}

func NewHandler(lookup middleware.RegionLookup) *Handler {
	return &Handler{lookup: lookup}
}

type RegionsResponse struct {
	Regions   []regions.Region `json:"regions"`
	Countries []string         `json:"countries"`
}

type StoreResponse struct {
	Locale  artworks.Locale `json:"locale"`
	Country string          `json:"country"`
	Region  regions.Region  `json:"region"`
	Path    string          `json:"path"`
}

// GET /api/store/regions
func (h *Handler) ListRegions(c *gin.Context) {
	m := h.lookup.Lookup(c.Request.Context())

	seen := map[string]bool{}
	list := []regions.Region{}
	for _, code := range m.Codes() {
		r, _ := m.Get(code)
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		list = append(list, r)
	}
	c.JSON(http.StatusOK, RegionsResponse{Regions: list, Countries: m.Codes()})
}

// GET /:locale/store/:country and /:locale/store/:country/*rest
func (h *Handler) StorePage(c *gin.Context) {
	locale, ok := artworks.ParseLocale(c.Param("locale"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	country, region, ok := middleware.StoreRegionFrom(c)
	if !ok {
		country = strings.ToLower(c.Param("country"))
		region, ok = h.lookup.Lookup(c.Request.Context()).Get(country)
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown store region"})
		return
	}

	path := c.Param("rest")
	if path == "" {
		path = "/"
	}
	c.JSON(http.StatusOK, StoreResponse{
		Locale:  locale,
		Country: country,
		Region:  region,
		Path:    path,
	})
}
