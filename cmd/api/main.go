package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"

	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"go.uber.org/zap"

	"github.com/richxcame/agency-site/internal/contact"
	"github.com/richxcame/agency-site/internal/currency"
	"github.com/richxcame/agency-site/internal/geoip"
	"github.com/richxcame/agency-site/internal/locale"
	"github.com/richxcame/agency-site/pkg/common"
	"github.com/richxcame/agency-site/pkg/config"
	"github.com/richxcame/agency-site/pkg/logger"
	"github.com/richxcame/agency-site/pkg/middleware"
	"github.com/richxcame/agency-site/pkg/resilience"
)

const serviceName = "agency-api"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Sentry.Enabled && cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Server.Environment,
		}); err != nil {
			logger.Warn("Sentry initialization failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	router := setupRouter(cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("service", serviceName),
			zap.String("port", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func setupRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics(serviceName))
	if cfg.Sentry.Enabled && cfg.Sentry.DSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins()
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept-Language"}
	router.Use(cors.New(corsConfig))

	// Per-request deadline so a slow geolocation chain cannot hold a
	// connection open indefinitely.
	router.Use(timeout.New(
		timeout.WithTimeout(time.Duration(cfg.Server.RequestTimeout)*time.Second),
		timeout.WithHandler(func(c *gin.Context) { c.Next() }),
		timeout.WithResponse(func(c *gin.Context) {
			common.ErrorResponse(c, http.StatusGatewayTimeout, "request timed out")
		}),
	))

	// Geolocation and locale
	geoTimeout := time.Duration(cfg.GeoIP.TimeoutSeconds) * time.Second
	resolver := geoip.NewResolver(geoip.DefaultProviders(geoTimeout)...)
	localeService := locale.NewService(resolver)
	localeHandler := locale.NewHandler(localeService)

	// Currency rates behind a circuit breaker; when the upstream keeps
	// failing the static table serves until it recovers.
	ratesBreaker := resilience.NewCircuitBreaker(
		resilience.BuildSettings("exchange-rates", 60, 30, 3, 1), nil)
	ratesProvider := currency.NewERAPIProvider(
		cfg.Rates.APIURL,
		time.Duration(cfg.Rates.TimeoutSeconds)*time.Second,
	)
	currencyService := currency.NewService(
		ratesProvider,
		ratesBreaker,
		time.Duration(cfg.Rates.CacheTTLMins)*time.Minute,
	)
	currencyHandler := currency.NewHandler(currencyService, localeService)

	// Contact relay
	mailer := contact.NewSMTPMailer(cfg.SMTP)
	contactService := contact.NewService(mailer, cfg.SMTP)
	contactHandler := contact.NewHandler(contactService, cfg.Contact)

	// Health check and metrics (outside the API group)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	api.GET("/health", common.HealthCheck(serviceName, "Agency API is running"))

	if cfg.RateLimit.Enabled {
		rate := limiter.Rate{
			Period: time.Minute,
			Limit:  int64(cfg.RateLimit.RequestsPerMin),
		}
		api.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	}

	localeHandler.RegisterRoutes(api)
	currencyHandler.RegisterRoutes(api)

	// The contact form gets its own, much stricter limit
	contactGroup := api.Group("")
	if cfg.Contact.RateLimitPerMin > 0 {
		contactRate := limiter.Rate{
			Period: time.Minute,
			Limit:  int64(cfg.Contact.RateLimitPerMin),
		}
		contactGroup.Use(middleware.RateLimit(limiter.New(memory.NewStore(), contactRate)))
	}
	contactHandler.RegisterRoutes(contactGroup)

	return router
}
