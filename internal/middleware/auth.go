package middleware

import (
	"net/http"
	"strings"

	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/services"
)

// AuthMiddleware admits requests carrying a valid bearer session token and
// attaches the admin identity to the request context.
func AuthMiddleware(authService services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractTokenFromHeader(r)
			if tokenString == "" {
				response.Error(w, http.StatusUnauthorized, services.UnauthorizedMessage)
				return
			}

			identity, err := authService.VerifyToken(tokenString)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, services.UnauthorizedMessage)
				return
			}

			ctx := services.WithAdmin(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractTokenFromHeader(r *http.Request) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
