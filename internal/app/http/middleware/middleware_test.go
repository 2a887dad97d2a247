package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"colorful-history/internal/domain/regions"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticLookup struct {
	m     *regions.Map
	calls int
}

func (s *staticLookup) Lookup(context.Context) *regions.Map {
	s.calls++
	return s.m
}

func euAndUS() *regions.Map {
	return regions.BuildMap([]regions.Region{
		{ID: "reg_eu", Name: "Europe", Countries: []regions.Country{{ISO2: "DE"}, {ISO2: "fr"}}},
		{ID: "reg_us", Name: "North America", Countries: []regions.Country{{ISO2: "us"}}},
	})
}

func newRouter(lookup RegionLookup) *gin.Engine {
	r := gin.New()
	r.Use(StoreRegion(lookup, "X-Vercel-IP-Country", "de"), Locale())
	r.NoRoute(func(c *gin.Context) {
		country, region, ok := StoreRegionFrom(c)
		c.JSON(http.StatusOK, gin.H{
			"locale":  LocaleFrom(c),
			"country": country,
			"region":  region.ID,
			"store":   ok,
		})
	})
	return r
}

func do(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShouldRoute(t *testing.T) {
	for path, want := range map[string]bool{
		"/":                     true,
		"/en/artwork/tv-tower":  true,
		"/de/store/de/products": true,
		"/api/store/regions":    false,
		"/health":               false,
		"/_next/static/x":       false,
		"/images/logo":          false,
		"/favicon.ico":          false,
		"/en/robots.txt":        false,
	} {
		require.Equal(t, want, ShouldRoute(path), path)
	}
}

func TestStoreKnownCountryPassesThrough(t *testing.T) {
	r := newRouter(&staticLookup{m: euAndUS()})

	w := do(r, "/en/store/DE/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"country":"de"`)
	require.Contains(t, w.Body.String(), `"region":"reg_eu"`)
	require.Contains(t, w.Body.String(), `"store":true`)
}

func TestStoreRedirectPriority(t *testing.T) {
	lookup := &staticLookup{m: euAndUS()}
	r := newRouter(lookup)

	cases := []struct {
		name string
		path string
		geo  string
		want string
	}{
		{"geo wins", "/en/store", "FR", "/en/store/fr"},
		{"unknown geo uses locale default", "/de/store/cart", "jp", "/de/store/de/cart"},
		{"english defaults to us", "/en/store/products/shirt?x=1", "", "/en/store/us/products/shirt?x=1"},
		{"unknown country segment is kept", "/en/store/zz", "", "/en/store/us/zz"},
	}
	for _, tc := range cases {
		w := do(r, tc.path, map[string]string{"X-Vercel-IP-Country": tc.geo})
		require.Equal(t, http.StatusTemporaryRedirect, w.Code, tc.name)
		require.Equal(t, tc.want, w.Header().Get("Location"), tc.name)
	}
}

func TestStoreRedirectFallbacks(t *testing.T) {
	onlyFR := regions.BuildMap([]regions.Region{{ID: "r", Countries: []regions.Country{{ISO2: "fr"}}}})
	w := do(newRouter(&staticLookup{m: onlyFR}), "/de/store", nil)
	require.Equal(t, "/de/store/fr", w.Header().Get("Location"))

	w = do(newRouter(&staticLookup{m: regions.BuildMap(nil)}), "/en/store", nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, "/en/store/de", w.Header().Get("Location"))
}

func TestNonStorePathsSkipRegionLookup(t *testing.T) {
	lookup := &staticLookup{m: euAndUS()}
	r := newRouter(lookup)

	w := do(r, "/de/artwork/gate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"locale":"de"`)
	require.Contains(t, w.Body.String(), `"store":false`)
	require.Equal(t, 0, lookup.calls)
}

func TestLocaleRedirects(t *testing.T) {
	r := newRouter(&staticLookup{m: euAndUS()})

	w := do(r, "/", nil)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, "/en", w.Header().Get("Location"))

	w = do(r, "/artwork?sort=oldest", map[string]string{"Accept-Language": "de-DE,de;q=0.9,en;q=0.5"})
	require.Equal(t, "/de/artwork?sort=oldest", w.Header().Get("Location"))

	w = do(r, "/artwork", map[string]string{"Accept-Language": "fr-FR"})
	require.Equal(t, "/en/artwork", w.Header().Get("Location"))

	w = do(r, "/artwork", map[string]string{"Accept-Language": "en", "Cookie": LocaleCookie + "=de"})
	require.Equal(t, "/de/artwork", w.Header().Get("Location"))

	w = do(r, "/DE/artwork", nil)
	require.Equal(t, "/de/artwork", w.Header().Get("Location"))
}

func TestLocaleSetsCookie(t *testing.T) {
	w := do(newRouter(&staticLookup{m: euAndUS()}), "/de", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Set-Cookie"), LocaleCookie+"=de")
}

func TestSkippedPathsAreUntouched(t *testing.T) {
	lookup := &staticLookup{m: euAndUS()}
	w := do(newRouter(lookup), "/api/store/regions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, lookup.calls)
}

func TestSanitizeJSONBody(t *testing.T) {
	r := gin.New()
	r.POST("/echo", SanitizeJSONBody(), func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"email":"<b>me</b>@example.com","tags":["<i>x</i>"],"n":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"email":"me@example.com","tags":["x"],"n":2}`, w.Body.String())

	w = post(``)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{}`, w.Body.String())

	w = post(`{nope`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
