package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"colorful-history/config"
	"colorful-history/internal/api/store"
	stripewebhooks "colorful-history/internal/api/stripewebhook"
	"colorful-history/internal/api/works"
	routes "colorful-history/internal/app/http"
	"colorful-history/internal/domain/regions"
	"colorful-history/internal/infra/cache"
	"colorful-history/internal/infra/cms"
	"colorful-history/internal/infra/medusa"
	payments "colorful-history/internal/infra/stripe"
	"colorful-history/internal/platform/logging"
)

func main() {
	envErr := config.LoadEnv()

	logger, err := logging.NewLogger(config.LOG_LEVEL)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Fatal("invalid configuration", zap.Error(envErr))
	}

	upstream := &http.Client{Timeout: 15 * time.Second}

	cmsOpts := []cms.Option{cms.WithHTTPClient(upstream), cms.WithLogger(logger.Named("cms"))}
	if rdb := cache.NewRedisClient(config.REDIS_ADDR, config.REDIS_PASSWORD, config.REDIS_DB); rdb != nil {
		defer func() { _ = rdb.Close() }()
		cmsOpts = append(cmsOpts, cms.WithCache(cache.NewRedisCache(rdb, "cms", logger), config.CMS_CACHE_TTL))
		logger.Info("cms response cache enabled", zap.String("addr", config.REDIS_ADDR))
	} else if config.REDIS_ADDR != "" {
		logger.Warn("redis unreachable, running without response cache", zap.String("addr", config.REDIS_ADDR))
	}
	catalog := cms.NewClient(config.GRAPHQL_URL, cmsOpts...)

	regionCache := regions.NewCache(
		medusa.NewClient(config.MEDUSA_BACKEND_URL, config.MEDUSA_PUBLISHABLE_KEY, upstream),
		config.REGION_CACHE_TTL,
		regions.WithLogger(logger.Named("regions")),
	)

	checkout := payments.NewCheckoutService(config.STRIPE_SECRET_KEY, config.APP_URL)
	if !checkout.Enabled() {
		logger.Info("STRIPE_SECRET_KEY not set, checkout disabled")
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length", logging.RequestIDHeader},
		AllowCredentials: config.CORS_ORIGIN != "*",
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Works:         works.NewHandler(catalog, checkout, config.APP_URL),
		Store:         store.NewHandler(regionCache),
		Webhook:       stripewebhooks.NewHandler(config.STRIPE_WEBHOOK_SECRET),
		Regions:       regionCache,
		GeoHeader:     config.GEO_COUNTRY_HEADER,
		DefaultRegion: config.DEFAULT_REGION,
	})

	logger.Info("listening", zap.String("port", config.PORT))
	if err := r.Run(":" + config.PORT); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
