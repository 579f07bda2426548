// Package gfclient provides the main entry point for creating Gameflip API clients
package gfclient

import (
	"fmt"
	"strings"

	"github.com/baonguyenly/gfapi/internal/client"
	"github.com/baonguyenly/gfapi/pkg/gfapi"
)

// New creates a new Gameflip API client. The API endpoint is derived from the
// key's environment prefix unless config.BaseURL overrides it.
func New(config *gfapi.Config) (gfapi.Client, error) {
	if config == nil {
		return nil, gfapi.ErrConfigRequired
	}

	if config.BaseURL != "" {
		config.BaseURL = normalizeEndpoint(config.BaseURL)
	}

	if config.SteamBaseURL != "" {
		config.SteamBaseURL = normalizeEndpoint(config.SteamBaseURL)
	}

	gfClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return gfClient, nil
}

// NewWithCredentials creates a new client from a key/secret pair with all
// other settings at their defaults.
func NewWithCredentials(key, secret string) (gfapi.Client, error) {
	return New(&gfapi.Config{
		Key:    key,
		Secret: secret,
	})
}

// normalizeEndpoint trims the trailing slash and defaults the scheme to
// https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
