// Package client implements the nylas.Client interface: it translates
// resource operations into HTTP calls against the standard and application
// management namespaces and decodes the responses.
package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/internal/auth"
	internalhttp "github.com/fivetwenty-io/nylas/internal/http"
	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// Client implements the nylas.Client interface.
type Client struct {
	baseURL   string
	appID     string
	appSecret string
	tokens    *auth.TokenStore
	exchanger *auth.Exchanger

	// Two signing sessions: bearer for standard resources, basic auth for
	// the management namespace.
	session      *internalhttp.Client
	adminSession *internalhttp.Client

	logger nylas.Logger

	threads   nylas.ThreadsClient
	messages  nylas.MessagesClient
	drafts    nylas.DraftsClient
	files     nylas.FilesClient
	contacts  nylas.ContactsClient
	events    nylas.EventsClient
	calendars nylas.CalendarsClient
	folders   nylas.FoldersClient
	labels    nylas.LabelsClient
	accounts  nylas.AccountsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *nylas.Config) ([]internalhttp.Option, error) {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Cache != nil {
		cache, err := nylas.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		ttl := config.Cache.TTL
		if ttl == 0 {
			ttl = nylas.DefaultCacheTTL
		}

		httpOpts = append(httpOpts, internalhttp.WithCache(cache, ttl))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, internalhttp.WithInterceptors(config.Interceptors))
	}

	return httpOpts, nil
}

// New creates a new API client. The endpoint in config must already be
// normalized (see nylasclient.New).
func New(config *nylas.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, nylas.ErrAPIEndpointRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewTokenStore(config.AccessToken)

	var adminProvider auth.HeaderProvider = &auth.NoneProvider{}
	if config.AppSecret != "" {
		adminProvider = auth.NewBasicProvider(config.AppSecret)
	}

	client := &Client{
		baseURL:      config.APIEndpoint,
		appID:        config.AppID,
		appSecret:    config.AppSecret,
		tokens:       tokens,
		session:      internalhttp.NewClient(config.APIEndpoint, auth.NewBearerProvider(tokens), httpOpts...),
		adminSession: internalhttp.NewClient(config.APIEndpoint, adminProvider, httpOpts...),
		logger:       config.Logger,
	}

	client.exchanger = auth.NewExchanger(config.AppID, config.AppSecret, config.APIEndpoint+"/oauth/token", tokens, nil)

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.threads = NewThreadsClient(c)
	c.messages = NewMessagesClient(c)
	c.drafts = NewDraftsClient(c)
	c.files = NewFilesClient(c)
	c.contacts = NewContactsClient(c)
	c.events = NewEventsClient(c)
	c.calendars = NewCalendarsClient(c)
	c.folders = NewFoldersClient(c)
	c.labels = NewLabelsClient(c)
	c.accounts = NewAccountsClient(c)
}

// Resource client accessors

// Threads implements nylas.Client.Threads.
func (c *Client) Threads() nylas.ThreadsClient {
	return c.threads
}

// Messages implements nylas.Client.Messages.
func (c *Client) Messages() nylas.MessagesClient {
	return c.messages
}

// Drafts implements nylas.Client.Drafts.
func (c *Client) Drafts() nylas.DraftsClient {
	return c.drafts
}

// Files implements nylas.Client.Files.
func (c *Client) Files() nylas.FilesClient {
	return c.files
}

// Contacts implements nylas.Client.Contacts.
func (c *Client) Contacts() nylas.ContactsClient {
	return c.contacts
}

// Events implements nylas.Client.Events.
func (c *Client) Events() nylas.EventsClient {
	return c.events
}

// Calendars implements nylas.Client.Calendars.
func (c *Client) Calendars() nylas.CalendarsClient {
	return c.calendars
}

// Folders implements nylas.Client.Folders.
func (c *Client) Folders() nylas.FoldersClient {
	return c.folders
}

// Labels implements nylas.Client.Labels.
func (c *Client) Labels() nylas.LabelsClient {
	return c.labels
}

// Accounts implements nylas.Client.Accounts.
func (c *Client) Accounts() nylas.AccountsClient {
	return c.accounts
}

// Auth operations

// AuthenticationURL implements nylas.AuthClient.AuthenticationURL.
func (c *Client) AuthenticationURL(redirectURI, loginHint string) string {
	return auth.AuthenticationURL(c.baseURL+"/oauth/authorize", c.appID, redirectURI, loginHint)
}

// TokenForCode implements nylas.AuthClient.TokenForCode.
func (c *Client) TokenForCode(ctx context.Context, code string) (string, error) {
	token, err := c.exchanger.TokenForCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchanging authorization code: %w", err)
	}

	return token, nil
}

// RevokeToken implements nylas.AuthClient.RevokeToken. The stored token is
// cleared only after the server confirms revocation.
func (c *Client) RevokeToken(ctx context.Context) error {
	if c.tokens.Get() == "" {
		return nylas.ErrNoAccessToken
	}

	_, err := c.session.Post(ctx, "/oauth/revoke", nil)
	if err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}

	c.tokens.Set("")

	return nil
}

// SetAccessToken implements nylas.AuthClient.SetAccessToken.
func (c *Client) SetAccessToken(token string) {
	c.tokens.Set(token)
}

// AccessToken implements nylas.AuthClient.AccessToken.
func (c *Client) AccessToken() string {
	return c.tokens.Get()
}

// OpenSourceAPI implements nylas.AuthClient.OpenSourceAPI.
func (c *Client) OpenSourceAPI() bool {
	return c.appID == "" && c.appSecret == ""
}

// CurrentAccount implements nylas.Client.CurrentAccount. The singleton
// /account endpoint describes the account behind the current access token.
func (c *Client) CurrentAccount(ctx context.Context) (*nylas.APIAccount, error) {
	resp, err := c.session.Get(ctx, "/account", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current account: %w", err)
	}

	account, err := decodeOne[nylas.APIAccount](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing account response: %w", err)
	}

	return account, nil
}
