package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"
)

const minJWTSecretLength = 16

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	FrontendURL      string
	CORSOriginSuffix string
	FrontendDir      string

	LogLevel string
	LogFile  string

	// TrustedProxies are the peers whose X-Forwarded-For header is believed.
	TrustedProxies []netip.Prefix

	AdminEmail    string
	AdminPassword string

	Cache     *CacheConfig
	RateLimit *RateLimitConfig
}

// Load reads the process environment. DATABASE_URL and JWT_SECRET are required.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "5050"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		FrontendURL:      strings.TrimRight(os.Getenv("FRONTEND_URL"), "/"),
		CORSOriginSuffix: getEnv("CORS_ORIGIN_SUFFIX", ".vercel.app"),
		FrontendDir:      os.Getenv("FRONTEND_DIR"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFile:          os.Getenv("LOG_FILE"),
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@portfolio.com"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", "admin123"),
	}

	var err error
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.TrustedProxies, err = getPrefixes("TRUSTED_PROXIES"); err != nil {
		return nil, err
	}
	if cfg.Cache, err = NewCacheConfig(); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = NewRateLimitConfig(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(c.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	return nil
}

// AllowedOrigins lists the exact origins CORS accepts. Origins ending in
// CORSOriginSuffix are accepted on top of these.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:3000"}
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	return origins
}

// SecureCookies reports whether the session cookie should carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return strings.HasPrefix(c.FrontendURL, "https://")
}

// OriginAllowed reports whether a browser origin may call the API.
func (c *Config) OriginAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins() {
		if origin == allowed {
			return true
		}
	}
	return c.CORSOriginSuffix != "" && strings.HasSuffix(origin, c.CORSOriginSuffix)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// getPrefixes parses a comma-separated list of CIDRs or bare addresses.
func getPrefixes(key string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, raw := range strings.Split(getEnv(key, ""), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.Contains(raw, "/") {
			prefix, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}
