package api

import (
	"net/http"

	"portfolio-api/internal/api/handlers"
	"portfolio-api/internal/config"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/services"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers onto a router under /api.
func SetupRoutes(db *gorm.DB, cache services.CacheService, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusNotFound, "Cannot "+r.Method+" "+r.URL.Path)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	cacheTTL := cfg.Cache.DefaultTTL

	adminRepo := repository.NewAdminRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	authService := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	auditLogService := services.NewAuditLogService(auditLogRepo)
	skillService := services.NewSkillService(repository.NewSkillRepository(db), auditLogService, cache, cacheTTL)
	projectService := services.NewProjectService(repository.NewProjectRepository(db), auditLogService, cache, cacheTTL)
	experienceService := services.NewExperienceService(repository.NewExperienceRepository(db), auditLogService, cache, cacheTTL)
	profileService := services.NewProfileService(repository.NewProfileRepository(db), auditLogService, cache, cacheTTL)
	contactService := services.NewContactService(repository.NewContactRepository(db), auditLogService)

	authHandler := handlers.NewAuthHandler(authService, cfg.SecureCookies())
	skillHandler := handlers.NewSkillHandler(skillService)
	projectHandler := handlers.NewProjectHandler(projectService)
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	profileHandler := handlers.NewProfileHandler(profileService)
	contactHandler := handlers.NewContactHandler(contactService)
	auditLogHandler := handlers.NewAuditLogHandler(auditLogService)

	protect := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(authService)(h)
	}
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimit)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", handlers.HealthCheckHandler(db, cache)).Methods("GET")

	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.Handle("/auth/profile", protect(authHandler.Profile)).Methods("GET")

	api.HandleFunc("/profile", profileHandler.Get).Methods("GET")
	api.Handle("/profile", protect(profileHandler.Update)).Methods("PUT")

	api.HandleFunc("/skills", skillHandler.List).Methods("GET")
	api.HandleFunc("/skills/{id}", skillHandler.Get).Methods("GET")
	api.Handle("/skills", protect(skillHandler.Create)).Methods("POST")
	api.Handle("/skills/{id}", protect(skillHandler.Update)).Methods("PUT")
	api.Handle("/skills/{id}", protect(skillHandler.Delete)).Methods("DELETE")

	api.HandleFunc("/projects", projectHandler.List).Methods("GET")
	api.HandleFunc("/projects/featured", projectHandler.ListFeatured).Methods("GET")
	api.HandleFunc("/projects/{id}", projectHandler.Get).Methods("GET")
	api.Handle("/projects", protect(projectHandler.Create)).Methods("POST")
	api.Handle("/projects/{id}", protect(projectHandler.Update)).Methods("PUT")
	api.Handle("/projects/{id}", protect(projectHandler.Delete)).Methods("DELETE")

	api.HandleFunc("/experiences", experienceHandler.List).Methods("GET")
	api.HandleFunc("/experiences/{id}", experienceHandler.Get).Methods("GET")
	api.Handle("/experiences", protect(experienceHandler.Create)).Methods("POST")
	api.Handle("/experiences/{id}", protect(experienceHandler.Update)).Methods("PUT")
	api.Handle("/experiences/{id}", protect(experienceHandler.Delete)).Methods("DELETE")

	api.Handle("/contacts", contactLimiter.RateLimit(http.HandlerFunc(contactHandler.Create))).Methods("POST")
	api.Handle("/contacts", protect(contactHandler.List)).Methods("GET")
	api.Handle("/contacts/unread", protect(contactHandler.ListUnread)).Methods("GET")
	api.Handle("/contacts/{id}", protect(contactHandler.Get)).Methods("GET")
	api.Handle("/contacts/{id}/read", protect(contactHandler.MarkRead)).Methods("PATCH")
	api.Handle("/contacts/{id}", protect(contactHandler.Delete)).Methods("DELETE")

	api.Handle("/audit-logs", protect(auditLogHandler.ListAuditLogs)).Methods("GET")

	return router
}
