package client

import (
	"strings"
	"sync"
	"time"

	"portfolio-api/internal/services"
)

const (
	AdminPrefix = "/admin"
	LoginPath   = "/admin/login"

	// SessionTTL matches the lifetime of the admin_token cookie.
	SessionTTL = 24 * time.Hour
)

// Session is the caller-owned admin session: the bearer token, when it lapses,
// and the identity last confirmed by the API.
type Session struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
	admin     *services.AdminIdentity
	now       func() time.Time
}

func NewSession() *Session {
	return &Session{now: time.Now}
}

func (s *Session) set(token string, admin *services.AdminIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.expiresAt = s.now().Add(SessionTTL)
	s.admin = admin
}

func (s *Session) setAdmin(admin *services.AdminIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = admin
}

// Clear forgets the token and the identity.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
	s.admin = nil
}

// Token returns the stored token, or "" once it has lapsed.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || !s.now().Before(s.expiresAt) {
		return ""
	}
	return s.token
}

func (s *Session) Admin() *services.AdminIdentity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// Guard returns the login route when path is an admin page and there is no
// live token. The login page itself is never guarded.
func (s *Session) Guard(path string) (redirect string, blocked bool) {
	if !IsAdminPage(path) || s.LoggedIn() {
		return "", false
	}
	return LoginPath, true
}

// IsAdminPage reports whether path needs an admin session.
func IsAdminPage(path string) bool {
	path = strings.TrimRight(path, "/")
	if path == LoginPath {
		return false
	}
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}
