// Package kratos adapts Ory Kratos native self-service flows to the client's
// identity provider port. The Kratos session token is the bearer credential;
// its persistence is private to this package.
package kratos

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"
)

// Client wraps the Kratos public API client.
type Client struct {
	api       *kratosclient.APIClient
	publicURL string
	logger    *slog.Logger
}

// NewClient creates a new Kratos client against the public API.
func NewClient(publicURL string, logger *slog.Logger) (*Client, error) {
	if !isValidURL(publicURL) {
		return nil, fmt.Errorf("invalid Kratos public URL: %s", publicURL)
	}

	configuration := kratosclient.NewConfiguration()
	configuration.Servers = []kratosclient.ServerConfiguration{
		{URL: publicURL},
	}
	configuration.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}
	if configuration.DefaultHeader == nil {
		configuration.DefaultHeader = make(map[string]string)
	}
	configuration.DefaultHeader["Accept"] = "application/json"
	configuration.DefaultHeader["Content-Type"] = "application/json"

	logger.Info("Kratos client initialized", "public_url", publicURL)

	return &Client{
		api:       kratosclient.NewAPIClient(configuration),
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

// API returns the underlying Kratos API client.
func (c *Client) API() *kratosclient.APIClient {
	return c.api
}

// PublicURL returns the configured public URL.
func (c *Client) PublicURL() string {
	return c.publicURL
}

func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
