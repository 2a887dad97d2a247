package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"colorful-history/internal/api/store"
	stripewebhooks "colorful-history/internal/api/stripewebhook"
	"colorful-history/internal/api/works"
	"colorful-history/internal/app/http/middleware"
)

type Deps struct {
	Works   *works.Handler
	Store   *store.Handler
	Webhook *stripewebhooks.Handler

	Regions       middleware.RegionLookup
	GeoHeader     string
	DefaultRegion string
}

// RegisterRoutes installs the page routing middleware and every route.
// It must run before any other route is added to r.
func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(
		middleware.StoreRegion(d.Regions, d.GeoHeader, d.DefaultRegion),
		middleware.Locale(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/store/regions", d.Store.ListRegions)
	api.GET("/artworks/paths", d.Works.PagePaths)
	api.POST("/stripe/webhook", d.Webhook.StripeWebhook)

	r.GET("/:locale", d.Works.Home)
	r.GET("/:locale/artwork", d.Works.Gallery)
	r.GET("/:locale/artwork/:slug", d.Works.Detail)
	r.GET("/:locale/artwork/:slug/ar", d.Works.AR)
	r.POST("/:locale/artwork/:slug/checkout", middleware.SanitizeJSONBody(), d.Works.CreateCheckout)

	r.GET("/:locale/store/:country", d.Store.StorePage)
	r.GET("/:locale/store/:country/*rest", d.Store.StorePage)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})
}
