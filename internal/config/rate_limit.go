package config

import "time"

// RateLimitConfig bounds how many contact messages one client IP may send per window.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

func NewRateLimitConfig() (*RateLimitConfig, error) {
	limit, err := getInt("CONTACT_RATE_LIMIT", 5)
	if err != nil {
		return nil, err
	}
	window, err := getDuration("CONTACT_RATE_WINDOW", time.Hour)
	if err != nil {
		return nil, err
	}
	return &RateLimitConfig{
		Limit:  limit,
		Window: window,
	}, nil
}
