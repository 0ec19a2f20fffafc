package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/seed"
	"portfolio-api/internal/services"
	"portfolio-api/internal/testdb"
	"portfolio-api/internal/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	t      *testing.T
	router http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testdb.Open(t)
	_, err := seed.Run(context.Background(), db, seed.Options{
		AdminEmail:    "a@x.com",
		AdminPassword: "secret123",
		BcryptCost:    bcrypt.MinCost,
	})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret: "routes-test-secret-value",
		JWTTTL:    24 * time.Hour,
		Cache:     &config.CacheConfig{DefaultTTL: time.Minute},
		RateLimit: &config.RateLimitConfig{Limit: 2, Window: time.Hour},
	}
	return &testServer{t: t, router: SetupRoutes(db, services.NopCacheService{}, cfg)}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.1:12345"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) login() string {
	s.t.Helper()
	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret123"})
	require.Equal(s.t, http.StatusOK, rec.Code, rec.Body.String())

	var result services.LoginResult
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result.AccessToken
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestLoginAndProfile(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.NotEmpty(t, raw["access_token"])
	assert.Equal(t, map[string]interface{}{"id": float64(1), "email": "a@x.com"}, raw["admin"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, web.SessionCookieName, cookies[0].Name)
	assert.Equal(t, raw["access_token"], cookies[0].Value)
	assert.Equal(t, 86400, cookies[0].MaxAge)

	rec = s.do(http.MethodGet, "/api/auth/profile", raw["access_token"].(string), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"email":"a@x.com"}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, web.SessionCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestUnknownBodyFieldsRejected(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rec := s.do(http.MethodPost, "/api/projects", token, map[string]interface{}{
		"title": "Portfolio API", "description": "This service", "tech": []string{"Go"}, "category": "backend",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "property category should not exist", decode[response.ErrorBody](t, rec).Message)

	rec = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "secret123", "remember": "yes"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	s := newTestServer(t)

	wrong := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com", "password": "wrong"})
	unknown := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "nobody@x.com", "password": "whatever"})

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
	assert.Equal(t, "Invalid credentials", decode[response.ErrorBody](t, wrong).Message)

	bad := s.do(http.MethodPost, "/api/auth/login", "", "{not json")
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	missing := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, missing.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/auth/profile"},
		{http.MethodPut, "/api/profile"},
		{http.MethodPost, "/api/skills"},
		{http.MethodDelete, "/api/projects/1"},
		{http.MethodPut, "/api/experiences/1"},
		{http.MethodGet, "/api/contacts"},
		{http.MethodGet, "/api/contacts/unread"},
		{http.MethodPatch, "/api/contacts/1/read"},
		{http.MethodGet, "/api/audit-logs"},
	} {
		rec := s.do(tc.method, tc.path, "", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.method+" "+tc.path)
		assert.Equal(t, response.ErrorBody{StatusCode: 401, Message: "Unauthorized", Error: "Unauthorized"}, decode[response.ErrorBody](t, rec))

		rec = s.do(tc.method, tc.path, "forged.token.value", map[string]string{})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.method+" "+tc.path)
	}
}

func TestPublicContent(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/api/skills", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	categories := decode[[]map[string]interface{}](t, rec)
	require.Len(t, categories, 6)
	assert.Equal(t, "Frontend", categories[0]["name"])

	rec = s.do(http.MethodGet, "/api/projects/featured", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))

	rec = s.do(http.MethodGet, "/api/experiences?type=education", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	educations := decode[[]map[string]interface{}](t, rec)
	require.Len(t, educations, 3)
	assert.Equal(t, "Mobile Developer Bootcamp", educations[0]["title"])

	rec = s.do(http.MethodGet, "/api/experiences?type=hobby", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/projects/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed (numeric string is expected)", decode[response.ErrorBody](t, rec).Message)

	rec = s.do(http.MethodGet, "/api/projects/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Project #999 not found", decode[response.ErrorBody](t, rec).Message)

	rec = s.do(http.MethodGet, "/api/profile", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Syah Rizan", decode[map[string]interface{}](t, rec)["nameFirst"])

	rec = s.do(http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"healthy","cache":"healthy"}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminContentLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login()

	rec := s.do(http.MethodPost, "/api/projects", token, map[string]interface{}{
		"title": "Portfolio API", "description": "This service", "tech": []string{"Go"}, "featured": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	project := decode[map[string]interface{}](t, rec)
	id := int(project["id"].(float64))

	rec = s.do(http.MethodGet, "/api/projects/featured", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	path := fmt.Sprintf("/api/projects/%d", id)
	rec = s.do(http.MethodPut, path, token, map[string]interface{}{"featured": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]interface{}](t, rec)["featured"])

	rec = s.do(http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Portfolio API", decode[map[string]interface{}](t, rec)["title"])

	rec = s.do(http.MethodPost, "/api/skills", token, map[string]interface{}{"name": "Go", "icon": "Code", "color": "cyan", "skills": []string{"gorm", "mux"}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, decode[map[string]interface{}](t, rec)["skills"], 2)

	rec = s.do(http.MethodPut, "/api/experiences/1", token, `{"endDate": "2026-01-31"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotNil(t, decode[map[string]interface{}](t, rec)["endDate"])

	rec = s.do(http.MethodPut, "/api/experiences/1", token, `{"endDate": null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[map[string]interface{}](t, rec)["endDate"])

	rec = s.do(http.MethodPut, "/api/profile", token, map[string]interface{}{"openToWork": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decode[map[string]interface{}](t, rec)["openToWork"])

	rec = s.do(http.MethodGet, "/api/audit-logs?page=1&pageSize=2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	page := decode[map[string]interface{}](t, rec)
	assert.Equal(t, float64(7), page["total"])
	assert.Len(t, page["logs"], 2)
}

func TestContactFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodPost, "/api/contacts", "", map[string]string{"name": "Bob", "email": "bob", "message": "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/contacts", "", map[string]string{"name": "Bob", "email": "bob@x.com", "message": "hi"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, false, decode[map[string]interface{}](t, rec)["read"])

	rec = s.do(http.MethodPost, "/api/contacts", "", map[string]string{"name": "Bob", "email": "bob@x.com", "message": "again"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "limit of two per window")

	token := s.login()
	rec = s.do(http.MethodGet, "/api/contacts/unread", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, rec), 1)

	rec = s.do(http.MethodPatch, "/api/contacts/1/read", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]interface{}](t, rec)["read"])

	rec = s.do(http.MethodGet, "/api/contacts/unread", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]map[string]interface{}](t, rec))

	rec = s.do(http.MethodDelete, "/api/contacts/1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/contacts/1", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Message #1 not found", decode[response.ErrorBody](t, rec).Message)
}
