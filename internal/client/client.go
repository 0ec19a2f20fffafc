// Package client is a Go client for the portfolio API that keeps the admin
// session the way the web frontend does.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"portfolio-api/internal/pkg/errors"
	"portfolio-api/internal/pkg/response"
	"portfolio-api/internal/services"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New returns a client for the API rooted at baseURL (for example
// "https://example.com/api"). The session is owned by the caller. The
// admin_token cookie the API sets on login is kept in a cookie jar so pages
// served behind the admin guard see the same session.
func New(baseURL string, session *Session) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
		session: session,
	}
}

func (c *Client) Session() *Session {
	return c.session
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) Login(ctx context.Context, email, password string) (*services.LoginResult, error) {
	var result services.LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}

	c.session.set(result.AccessToken, &result.Admin)
	return &result, nil
}

// Logout asks the API to drop the session cookie. The local session is cleared
// even when that request fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.session.Clear()
	return err
}

// Cookies returns the cookies the API has set for baseURL.
func (c *Client) Cookies() []*http.Cookie {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil
	}
	return c.httpClient.Jar.Cookies(u)
}

// FetchProfile confirms the session with the API. Any failure clears the session.
func (c *Client) FetchProfile(ctx context.Context) (*services.AdminIdentity, error) {
	if !c.session.LoggedIn() {
		c.session.Clear()
		return nil, errors.Unauthorized(services.UnauthorizedMessage)
	}

	var identity services.AdminIdentity
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &identity); err != nil {
		c.session.Clear()
		return nil, err
	}

	c.session.setAdmin(&identity)
	return &identity, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody response.ErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Message == "" {
			errBody.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
