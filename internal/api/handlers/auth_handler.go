package handlers

import (
	"net/http"

	"portfolio-api/internal/services"
	"portfolio-api/internal/web"
)

// AuthHandler handles administrator login and session introspection
type AuthHandler struct {
	authService   services.AuthService
	secureCookies bool
}

// NewAuthHandler returns the auth endpoints. secureCookies marks the session
// cookie Secure and should be set whenever the frontend is served over HTTPS.
func NewAuthHandler(authService services.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		secureCookies: secureCookies,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary Log in as administrator
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Email and password"
// @Success 200 {object} services.LoginResult
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := services.ValidateInput(req); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	web.SetSessionCookie(w, result.AccessToken, h.secureCookies)
	respondWithJSON(w, http.StatusOK, result)
}

// Logout drops the session cookie. Tokens are stateless, so nothing is revoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	web.ClearSessionCookie(w)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Profile returns the identity decoded from the session token.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := services.AdminFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, services.UnauthorizedMessage)
		return
	}
	respondWithJSON(w, http.StatusOK, identity)
}
