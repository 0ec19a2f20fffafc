// Package web serves the built frontend and guards its admin pages.
package web

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"portfolio-api/internal/client"
)

const SessionCookieName = "admin_token"

// AdminPageGuard redirects admin page requests that carry no session cookie to
// the login page. The cookie is only checked for presence; the API verifies it.
func AdminPageGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if client.IsAdminPage(r.URL.Path) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, client.LoginPath, http.StatusFound)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(client.SessionTTL / time.Second),
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   SessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

// FrontendHandler serves the static build in dir. Paths without a matching file
// fall back to index.html so client-side routes load.
func FrontendHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return AdminPageGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(path); err != nil || (info.IsDir() && !hasIndex(path)) {
			if !strings.HasPrefix(r.URL.Path, "/_nuxt/") {
				http.ServeFile(w, r, filepath.Join(dir, "index.html"))
				return
			}
		}
		files.ServeHTTP(w, r)
	}))
}

func hasIndex(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "index.html"))
	return err == nil
}
