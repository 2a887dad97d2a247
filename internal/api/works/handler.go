package works

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"colorful-history/internal/domain/artworks"
	"colorful-history/internal/domain/gallery"
	payments "colorful-history/internal/infra/stripe"
	"colorful-history/internal/platform/logging"
)

// Catalog is the CMS read side. Failures surface as empty lists and nil
// artworks, so "upstream down" and "not found" look the same here.
type Catalog interface {
	ListArtworks(ctx context.Context) []artworks.Artwork
	ArtworkBySlug(ctx context.Context, slug string) *artworks.Artwork
	ARArtworkBySlug(ctx context.Context, slug string) *artworks.ARData
}

type Checkout interface {
	Enabled() bool
	NewArtworkSession(ctx context.Context, req payments.CheckoutRequest) (*payments.CheckoutSession, error)
}

type Handler struct {
	catalog   Catalog
	checkout  Checkout
	siteURL   string
	storeOpts []gallery.Option
}

func NewHandler(catalog Catalog, checkout Checkout, siteURL string, storeOpts ...gallery.Option) *Handler {
	return &Handler{
		catalog:   catalog,
		checkout:  checkout,
		siteURL:   strings.TrimRight(siteURL, "/"),
		storeOpts: storeOpts,
	}
}

// ------------------------------
// GET /:locale
// ------------------------------
func (h *Handler) Home(c *gin.Context) {
	locale, ok := localeParam(c)
	if !ok {
		return
	}
	list := h.catalog.ListArtworks(c.Request.Context())
	c.JSON(http.StatusOK, HomeResponse{
		Locale:   locale,
		Artworks: artworks.ListItems(list),
	})
}

// ------------------------------
// GET /:locale/artwork?sort=&city=&q=&view=&selected=
// ------------------------------
func (h *Handler) Gallery(c *gin.Context) {
	locale, ok := localeParam(c)
	if !ok {
		return
	}

	store := gallery.NewStore(nil, h.storeOpts...)
	state := store.SetOriginal(h.catalog.ListArtworks(c.Request.Context()))

	if sorting, ok := gallery.ParseSorting(c.Query("sort")); ok {
		state = store.SetSorting(sorting)
	}
	if cities := c.QueryArray("city"); len(cities) > 0 {
		state = store.SetChecked(cities)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		state = store.SetSearchTerm(q)
	}
	switch c.Query("view") {
	case "list":
		state = store.ShowList()
	case "map":
		state = store.ShowMap()
	}
	// selected is a map selection; the list view has no popup.
	if slug := c.Query("selected"); slug != "" && state.ViewMap {
		state = store.SelectMapArtwork(slug)
	}

	c.JSON(http.StatusOK, GalleryResponse{Locale: locale, State: state})
}

// ------------------------------
// GET /:locale/artwork/:slug
// ------------------------------
func (h *Handler) Detail(c *gin.Context) {
	locale, ok := localeParam(c)
	if !ok {
		return
	}
	a := h.catalog.ArtworkBySlug(c.Request.Context(), c.Param("slug"))
	if a == nil {
		notFound(c, "Artwork not found")
		return
	}

	resp := DetailResponse{
		Locale:   locale,
		Artwork:  *a,
		Story:    a.Story.For(locale),
		WikiLink: a.WikiLink.For(locale),
		Meta:     h.buildMeta(*a, locale),
		Buyable:  a.ForSale && a.Price > 0 && h.checkout != nil && h.checkout.Enabled(),
	}
	if a.AREnabled {
		resp.ARPath = "/" + string(locale) + "/artwork/" + a.Slug + "/ar"
	}
	c.JSON(http.StatusOK, resp)
}

// ------------------------------
// GET /:locale/artwork/:slug/ar
// ------------------------------
func (h *Handler) AR(c *gin.Context) {
	locale, ok := localeParam(c)
	if !ok {
		return
	}
	ar := h.catalog.ARArtworkBySlug(c.Request.Context(), c.Param("slug"))
	if ar == nil || !ar.AREnabled {
		notFound(c, "Artwork not found")
		return
	}
	c.JSON(http.StatusOK, ARResponse{Locale: locale, Artwork: *ar})
}

// ------------------------------
// POST /:locale/artwork/:slug/checkout
// ------------------------------
func (h *Handler) CreateCheckout(c *gin.Context) {
	locale, ok := localeParam(c)
	if !ok {
		return
	}
	if h.checkout == nil || !h.checkout.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Checkout not available"})
		return
	}

	var body CheckoutRequest
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout request"})
		return
	}

	a := h.catalog.ArtworkBySlug(c.Request.Context(), c.Param("slug"))
	if a == nil {
		notFound(c, "Artwork not found")
		return
	}

	session, err := h.checkout.NewArtworkSession(c.Request.Context(), payments.CheckoutRequest{
		Artwork: *a,
		Locale:  locale,
		Email:   body.Email,
	})
	switch {
	case errors.Is(err, payments.ErrNotForSale):
		c.JSON(http.StatusConflict, gin.H{"error": "Artwork is not for sale"})
		return
	case errors.Is(err, payments.ErrDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Checkout not available"})
		return
	case err != nil:
		logging.FromContext(c).Error("checkout session failed",
			zap.String("slug", a.Slug),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, CheckoutResponse{ID: session.ID, URL: session.URL})
}

// ------------------------------
// GET /api/artworks/paths?ar=true
// ------------------------------
func (h *Handler) PagePaths(c *gin.Context) {
	onlyAR, _ := strconv.ParseBool(c.DefaultQuery("ar", "false"))

	list := h.catalog.ListArtworks(c.Request.Context())
	paths := make([]PagePath, 0, len(list)*len(artworks.SupportedLocales))
	for _, l := range artworks.SupportedLocales {
		for _, a := range list {
			if onlyAR && !a.AREnabled {
				continue
			}
			paths = append(paths, PagePath{Locale: l, Slug: a.Slug})
		}
	}
	c.JSON(http.StatusOK, gin.H{"paths": paths})
}
