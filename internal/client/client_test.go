package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["email"] != "a@x.com" || req["password"] != "secret123" {
			response.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "admin_token", Value: "token-1", Path: "/", MaxAge: 86400})
		response.JSON(w, http.StatusOK, services.LoginResult{
			AccessToken: "token-1",
			Admin:       services.AdminIdentity{ID: 1, Email: "a@x.com"},
		})
	})
	mux.HandleFunc("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-1" {
			response.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		response.JSON(w, http.StatusOK, services.AdminIdentity{ID: 1, Email: "a@x.com"})
	})

	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "admin_token", Value: "", Path: "/", MaxAge: -1})
		response.JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginAndFetchProfile(t *testing.T) {
	srv := fakeAPI(t)
	c := New(srv.URL+"/api/", NewSession())
	ctx := context.Background()

	result, err := c.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "token-1", result.AccessToken)
	assert.True(t, c.Session().LoggedIn())
	assert.Equal(t, "a@x.com", c.Session().Admin().Email)

	cookies := c.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin_token", cookies[0].Name)
	assert.Equal(t, "token-1", cookies[0].Value)

	identity, err := c.FetchProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), identity.ID)

	require.NoError(t, c.Logout(ctx))
	assert.False(t, c.Session().LoggedIn())
	assert.Nil(t, c.Session().Admin())
	assert.Empty(t, c.Cookies())
}

func TestLogoutClearsSessionWhenAPIIsDown(t *testing.T) {
	srv := fakeAPI(t)
	c := New(srv.URL+"/api", NewSession())
	ctx := context.Background()

	_, err := c.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)

	srv.Close()
	assert.Error(t, c.Logout(ctx))
	assert.False(t, c.Session().LoggedIn())
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	srv := fakeAPI(t)
	c := New(srv.URL+"/api", NewSession())

	_, err := c.Login(context.Background(), "a@x.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.False(t, c.Session().LoggedIn())
}

func TestFetchProfileClearsSessionOnFailure(t *testing.T) {
	srv := fakeAPI(t)
	session := NewSession()
	session.set("stale-token", &services.AdminIdentity{ID: 1, Email: "a@x.com"})
	c := New(srv.URL+"/api", session)

	_, err := c.FetchProfile(context.Background())
	require.Error(t, err)
	assert.False(t, session.LoggedIn())
	assert.Nil(t, session.Admin())
}

func TestFetchProfileWithoutSession(t *testing.T) {
	c := New("http://127.0.0.1:0/api", NewSession())
	_, err := c.FetchProfile(context.Background())
	assert.Error(t, err)
}

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	session := NewSession()
	session.now = func() time.Time { return now }
	session.set("token-1", &services.AdminIdentity{ID: 1})

	now = now.Add(SessionTTL - time.Second)
	assert.Equal(t, "token-1", session.Token())

	now = now.Add(time.Second)
	assert.Empty(t, session.Token())
	assert.False(t, session.LoggedIn())
}

func TestGuard(t *testing.T) {
	session := NewSession()

	for path, blocked := range map[string]bool{
		"/admin":             true,
		"/admin/":            true,
		"/admin/projects":    true,
		"/admin/login":       false,
		"/admin/login/":      false,
		"/":                  false,
		"/projects":          false,
		"/administrator-bio": false,
	} {
		redirect, got := session.Guard(path)
		assert.Equal(t, blocked, got, path)
		if blocked {
			assert.Equal(t, LoginPath, redirect)
		}
	}

	session.set("token-1", nil)
	_, blocked := session.Guard("/admin/projects")
	assert.False(t, blocked)
}
