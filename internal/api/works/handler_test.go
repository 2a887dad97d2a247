package works

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"colorful-history/internal/domain/artworks"
	"colorful-history/internal/domain/gallery"
	payments "colorful-history/internal/infra/stripe"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCatalog struct {
	list   []artworks.Artwork
	detail map[string]artworks.Artwork
}

func (f *fakeCatalog) ListArtworks(context.Context) []artworks.Artwork {
	return append([]artworks.Artwork{}, f.list...)
}

func (f *fakeCatalog) ArtworkBySlug(_ context.Context, slug string) *artworks.Artwork {
	a, ok := f.detail[slug]
	if !ok {
		return nil
	}
	return &a
}

func (f *fakeCatalog) ARArtworkBySlug(_ context.Context, slug string) *artworks.ARData {
	a, ok := f.detail[slug]
	if !ok {
		return nil
	}
	ar := a.ARData()
	return &ar
}

type fakeCheckout struct {
	enabled bool
	err     error
	got     payments.CheckoutRequest
}

func (f *fakeCheckout) Enabled() bool { return f.enabled }

func (f *fakeCheckout) NewArtworkSession(_ context.Context, req payments.CheckoutRequest) (*payments.CheckoutSession, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &payments.CheckoutSession{ID: "cs_1", URL: "https://pay/cs_1"}, nil
}

func catalog() *fakeCatalog {
	tower := artworks.Artwork{
		DatabaseID: 1, Slug: "tv-tower", Title: "TV Tower", Date: "2023-01-01T00:00:00",
		Image:           artworks.ImageDetails{SourceURL: "https://cms/tv.jpg"},
		Story:           artworks.Bilingual{EN: "Built in 1969.", DE: "Erbaut 1969."},
		WikiLink:        artworks.Bilingual{EN: "https://en.wikipedia.org/wiki/Fernsehturm_Berlin"},
		MetaDescription: "Berlin TV tower",
		ForSale:         true, Price: 900, AREnabled: true,
	}
	gate := artworks.Artwork{
		DatabaseID: 2, Slug: "golden-gate", Title: "Golden Gate", Date: "2021-01-01T00:00:00",
		Image: artworks.ImageDetails{SourceURL: "https://cms/gate.jpg"},
	}
	sketch := artworks.Artwork{DatabaseID: 3, Slug: "sketch", Title: "Sketch", Date: "2024-01-01T00:00:00"}
	return &fakeCatalog{
		list:   []artworks.Artwork{gate, sketch, tower},
		detail: map[string]artworks.Artwork{"tv-tower": tower, "golden-gate": gate},
	}
}

func router(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/api/artworks/paths", h.PagePaths)
	r.GET("/:locale", h.Home)
	r.GET("/:locale/artwork", h.Gallery)
	r.GET("/:locale/artwork/:slug", h.Detail)
	r.GET("/:locale/artwork/:slug/ar", h.AR)
	r.POST("/:locale/artwork/:slug/checkout", h.CreateCheckout)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHome(t *testing.T) {
	w := get(router(NewHandler(catalog(), nil, "https://site")), "/de")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HomeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, artworks.LocaleDE, resp.Locale)
	require.Len(t, resp.Artworks, 3)
}

func TestHomeEmptyCatalogIsEmptyList(t *testing.T) {
	w := get(router(NewHandler(&fakeCatalog{}, nil, "https://site")), "/en")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"locale":"en","artworks":[]}`, w.Body.String())
}

func TestUnknownLocaleIs404(t *testing.T) {
	r := router(NewHandler(catalog(), nil, "https://site"))
	require.Equal(t, http.StatusNotFound, get(r, "/fr").Code)
	require.Equal(t, http.StatusNotFound, get(r, "/fr/artwork/tv-tower").Code)
}

func TestGalleryAppliesQuery(t *testing.T) {
	r := router(NewHandler(catalog(), nil, "https://site"))

	w := get(r, "/en/artwork?sort=oldest&city=Berlin&city=Hamburg&q=tower&view=list")
	require.Equal(t, http.StatusOK, w.Code)

	var resp GalleryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	st := resp.State
	require.Equal(t, gallery.SortOldest, st.Sorting)
	require.Equal(t, []string{"Berlin", "Hamburg"}, st.Checked)
	require.Equal(t, "tower", st.SearchTerm)
	require.False(t, st.ViewMap)
	require.True(t, st.Loaded)
	require.Len(t, st.Original, 3)
	require.Len(t, st.Filtered, 2)
	require.Equal(t, "golden-gate", st.Filtered[0].Slug)
	require.Equal(t, "tv-tower", st.Filtered[1].Slug)
}

func TestGalleryDefaultsAndSelection(t *testing.T) {
	r := router(NewHandler(catalog(), nil, "https://site"))

	var resp GalleryResponse
	w := get(r, "/de/artwork?sort=bogus&selected=golden-gate")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, gallery.SortLatest, resp.State.Sorting)
	require.True(t, resp.State.ViewMap)
	require.Equal(t, "golden-gate", resp.State.PopupOpen)
	require.NotNil(t, resp.State.CurrentMapArtwork)
	require.Equal(t, 1, resp.State.CurrentMapNavIndex)
}

func TestGallerySelectionIgnoredInListView(t *testing.T) {
	r := router(NewHandler(catalog(), nil, "https://site"))

	var resp GalleryResponse
	w := get(r, "/en/artwork?view=list&selected=golden-gate")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.State.ViewMap)
	require.Equal(t, "", resp.State.PopupOpen)
	require.Nil(t, resp.State.CurrentMapArtwork)
}

func TestDetailLocalizesStory(t *testing.T) {
	r := router(NewHandler(catalog(), &fakeCheckout{enabled: true}, "https://site/"))

	var resp DetailResponse
	w := get(r, "/de/artwork/tv-tower")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Equal(t, "Erbaut 1969.", resp.Story)
	require.Equal(t, "https://en.wikipedia.org/wiki/Fernsehturm_Berlin", resp.WikiLink, "falls back to English")
	require.Equal(t, "Built in 1969.", resp.Artwork.Story.EN)
	require.Equal(t, "https://site/de/artwork/tv-tower", resp.Meta.Canonical)
	require.Equal(t, "https://site/en/artwork/tv-tower", resp.Meta.Alternates["en"])
	require.Equal(t, []string{"https://cms/tv.jpg"}, resp.Meta.OGImages)
	require.Equal(t, "/de/artwork/tv-tower/ar", resp.ARPath)
	require.True(t, resp.Buyable)
}

func TestDetailNotFound(t *testing.T) {
	w := get(router(NewHandler(catalog(), nil, "https://site")), "/en/artwork/missing")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Artwork not found"}`, w.Body.String())
}

func TestAR(t *testing.T) {
	r := router(NewHandler(catalog(), nil, "https://site"))

	w := get(r, "/en/artwork/tv-tower/ar")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"arEnabled":true`)

	require.Equal(t, http.StatusNotFound, get(r, "/en/artwork/golden-gate/ar").Code, "AR disabled")
	require.Equal(t, http.StatusNotFound, get(r, "/en/artwork/missing/ar").Code)
}

func TestPagePaths(t *testing.T) {
	r := router(NewHandler(catalog(), nil, "https://site"))

	var all struct{ Paths []PagePath }
	require.NoError(t, json.Unmarshal(get(r, "/api/artworks/paths").Body.Bytes(), &all))
	require.Len(t, all.Paths, 6)

	var ar struct{ Paths []PagePath }
	require.NoError(t, json.Unmarshal(get(r, "/api/artworks/paths?ar=true").Body.Bytes(), &ar))
	require.Equal(t, []PagePath{{Locale: "en", Slug: "tv-tower"}, {Locale: "de", Slug: "tv-tower"}}, ar.Paths)
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckout(t *testing.T) {
	co := &fakeCheckout{enabled: true}
	r := router(NewHandler(catalog(), co, "https://site"))

	w := post(r, "/de/artwork/tv-tower/checkout", `{"email":"buyer@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"cs_1","url":"https://pay/cs_1"}`, w.Body.String())
	require.Equal(t, artworks.LocaleDE, co.got.Locale)
	require.Equal(t, "buyer@example.com", co.got.Email)
	require.Equal(t, "tv-tower", co.got.Artwork.Slug)

	require.Equal(t, http.StatusOK, post(r, "/en/artwork/tv-tower/checkout", ``).Code)
	require.Equal(t, http.StatusBadRequest, post(r, "/en/artwork/tv-tower/checkout", `{"email":"nope"}`).Code)
	require.Equal(t, http.StatusNotFound, post(r, "/en/artwork/missing/checkout", `{}`).Code)
}

func TestCheckoutErrors(t *testing.T) {
	disabled := router(NewHandler(catalog(), &fakeCheckout{}, "https://site"))
	require.Equal(t, http.StatusServiceUnavailable, post(disabled, "/en/artwork/tv-tower/checkout", `{}`).Code)

	notForSale := router(NewHandler(catalog(), &fakeCheckout{enabled: true, err: payments.ErrNotForSale}, "https://site"))
	require.Equal(t, http.StatusConflict, post(notForSale, "/en/artwork/golden-gate/checkout", `{}`).Code)

	failing := router(NewHandler(catalog(), &fakeCheckout{enabled: true, err: errors.New("stripe down")}, "https://site"))
	require.Equal(t, http.StatusBadGateway, post(failing, "/en/artwork/tv-tower/checkout", `{}`).Code)
}
