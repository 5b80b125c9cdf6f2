// Package nylasclient provides the main entry point for creating Nylas API clients
package nylasclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/nylas/internal/client"
	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// DefaultAPIEndpoint is used when the config does not name a server.
const DefaultAPIEndpoint = "https://api.nylas.com"

// New creates a new Nylas API client from the given configuration.
func New(_ context.Context, config *nylas.Config) (nylas.Client, error) {
	if config == nil {
		return nil, nylas.ErrConfigRequired
	}

	// Normalize API endpoint
	apiEndpoint := config.APIEndpoint
	if apiEndpoint == "" {
		apiEndpoint = DefaultAPIEndpoint
	}

	apiEndpoint = strings.TrimSuffix(apiEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	// Normalize on a copy so the caller's config is left untouched.
	cfg := *config
	cfg.APIEndpoint = apiEndpoint

	// Use the internal client implementation
	client, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a client bound to a single account access token.
// No application credentials are attached, so the management namespace
// and token exchange are unavailable.
func NewWithToken(ctx context.Context, apiEndpoint, accessToken string) (nylas.Client, error) {
	return New(ctx, &nylas.Config{
		APIEndpoint: apiEndpoint,
		AccessToken: accessToken,
	})
}

// NewWithApp creates a client with application credentials for the hosted
// authentication flow and the management namespace. Call TokenForCode or
// SetAccessToken before using per-account resources.
func NewWithApp(ctx context.Context, apiEndpoint, appID, appSecret string) (nylas.Client, error) {
	return New(ctx, &nylas.Config{
		APIEndpoint: apiEndpoint,
		AppID:       appID,
		AppSecret:   appSecret,
	})
}
