package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"portfolio-api/internal/api"
	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/metrics"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/services"
	"portfolio-api/internal/web"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logCloser, err := logger.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatal("Failed to set up logging: ", err)
	}
	defer logCloser.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Logger.WithError(err).Fatal("Failed to connect to database")
	}

	cache := initCache(cfg.Cache)

	router := api.SetupRoutes(database, cache, cfg)

	httpMetrics := metrics.New()
	router.Use(httpMetrics.Middleware)
	router.Handle("/metrics", httpMetrics.Handler()).Methods("GET")
	if cfg.FrontendDir != "" {
		frontend := web.FrontendHandler(cfg.FrontendDir)
		apiNotFound := router.NotFoundHandler
		router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
				apiNotFound.ServeHTTP(w, r)
				return
			}
			frontend.ServeHTTP(w, r)
		})
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowOriginFunc: func(origin string) bool {
			return cfg.OriginAllowed(origin)
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			middleware.RequestIDHeader,
		},
		ExposedHeaders: []string{
			middleware.RequestIDHeader,
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	var handler http.Handler = router
	handler = corsMiddleware.Handler(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RequestID(handler)
	handler = chimiddleware.Recoverer(handler)
	handler = middleware.ClientIP(cfg.TrustedProxies)(handler)

	// Create server with timeouts
	srv := &http.Server{
		Handler:      handler,
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.LogEvent(logrus.InfoLevel, "Server starting", logrus.Fields{"port": cfg.Port})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.WithError(err).Fatal("Server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.WithError(err).Error("Graceful shutdown failed")
	}
	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
	if closer, ok := cache.(interface{ Close() error }); ok {
		closer.Close()
	}
	logger.LogEvent(logrus.InfoLevel, "Server stopped", nil)
}

// initCache connects to Redis when configured. Without it reads go straight to the database.
func initCache(cfg *config.CacheConfig) services.CacheService {
	if !cfg.Enabled() {
		logger.LogEvent(logrus.InfoLevel, "Cache disabled", nil)
		return services.NopCacheService{}
	}

	cache, err := services.NewRedisCacheService(cfg)
	if err != nil {
		logger.LogEvent(logrus.WarnLevel, "Cache unavailable, continuing without it", logrus.Fields{"error": err.Error()})
		return services.NopCacheService{}
	}
	return cache
}
