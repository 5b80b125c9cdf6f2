package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
	"github.com/fivetwenty-io/nylas/pkg/nylasclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAppCredentialsNeeded = errors.New("application credentials are required (use --app-id and --app-secret)")
	ErrMessageIDRequired    = errors.New("message ID is required")
	ErrThreadIDRequired     = errors.New("thread ID is required")
	ErrEventIDRequired      = errors.New("event ID is required")
	ErrAccountIDRequired    = errors.New("account ID is required")
	ErrCodeRequired         = errors.New("authorization code is required")
)

// createClient builds a client from the viper-resolved configuration.
func createClient() (nylas.Client, error) {
	config := &nylas.Config{
		APIEndpoint: viper.GetString("api"),
		AppID:       viper.GetString("app_id"),
		AppSecret:   viper.GetString("app_secret"),
		AccessToken: viper.GetString("token"),
	}

	if config.AccessToken == "" && config.AppID == "" && config.APIEndpoint == "" {
		return nil, fmt.Errorf("%w, use 'nylas login' first", ErrNotAuthenticated)
	}

	client, err := nylasclient.New(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// encodeOutput writes v to stdout in the requested structured format.
// It returns false when the format is not a structured one, in which case
// the caller should render a table.
func encodeOutput(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return true, encoder.Encode(v)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(v)
	default:
		return false, nil
	}
}

// buildQueryParams assembles list parameters from common list flags. An
// offset given on the command line is forwarded even when it is zero; the
// API treats "offset=0" and "no offset" differently.
func buildQueryParams(limit, offset int, offsetSet bool, filters map[string]string) *nylas.QueryParams {
	params := nylas.NewQueryParams()
	if limit > 0 {
		params.WithLimit(limit)
	}

	if offsetSet {
		params.WithOffset(offset)
	}

	for key, value := range filters {
		if value != "" {
			params.WithFilter(key, value)
		}
	}

	return params
}

// formatEpoch renders a Unix timestamp for table output.
func formatEpoch(ts int64) string {
	if ts == 0 {
		return NotAvailable
	}

	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")
}

// formatParticipants renders a participant list as "Name <email>, ...".
func formatParticipants(participants []nylas.Participant) string {
	parts := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.Name != "" {
			parts = append(parts, fmt.Sprintf("%s <%s>", p.Name, p.Email))
		} else {
			parts = append(parts, p.Email)
		}
	}

	return strings.Join(parts, ", ")
}

// truncate shortens s for table cells.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}

// persistToken stores the access token in the CLI config file so later
// invocations pick it up without the --token flag.
func persistToken(token string) error {
	viper.Set("token", token)

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		cfgFile = filepath.Join(home, ".nylas", "config.yml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
