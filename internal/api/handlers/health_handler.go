package handlers

import (
	"context"
	"net/http"
	"time"

	"portfolio-api/internal/services"

	"gorm.io/gorm"
)

type HealthCheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// HealthCheckHandler checks API health, the database connection and the cache
func HealthCheckHandler(db *gorm.DB, cache services.CacheService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		response := HealthCheckResponse{
			Status:   "ok",
			Database: "healthy",
			Cache:    "healthy",
		}
		code := http.StatusOK

		if err := pingDatabase(ctx, db); err != nil {
			response.Status = "degraded"
			response.Database = "unreachable"
			code = http.StatusServiceUnavailable
		}

		// A cache outage only slows reads down.
		if err := cache.Ping(ctx); err != nil {
			response.Cache = "unreachable"
		}

		respondWithJSON(w, code, response)
	}
}

func pingDatabase(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
