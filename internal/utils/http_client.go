package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig describes how an [HTTPClient] talks to a remote API.
type HTTPClientConfig struct {
	// BaseURL is prepended to relative request paths. Trailing slashes are
	// trimmed.
	BaseURL string

	// Timeout bounds every request. Zero keeps the resty default.
	Timeout time.Duration

	// Username and Password enable HTTP basic authentication when Username is
	// not empty.
	Username string
	Password string

	// UserAgent is sent with every request when not empty.
	UserAgent string
}

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{BaseURL: "https://api.stormpath.com/v1"})
//	resp, err := client.R().Get("/tenants/current")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient configured from cfg.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. JSON is requested by default.
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	if cfg.BaseURL != "" {
		client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.Username != "" {
		client.SetBasicAuth(cfg.Username, cfg.Password)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &HTTPClient{Client: client}
}
