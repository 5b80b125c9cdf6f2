package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrNoAccessTokenInResponse = errors.New("no access_token in token response")
	ErrTokenExchangeFailed     = errors.New("token exchange failed")
)

// Exchanger performs the OAuth authorization-code exchange against the
// fixed /oauth/token endpoint and rotates the bearer credential on success.
type Exchanger struct {
	appID      string
	appSecret  string
	tokenURL   string
	store      *TokenStore
	httpClient *http.Client
}

// NewExchanger creates an exchanger that writes new tokens into store.
func NewExchanger(appID, appSecret, tokenURL string, store *TokenStore, httpClient *http.Client) *Exchanger {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Exchanger{
		appID:      appID,
		appSecret:  appSecret,
		tokenURL:   tokenURL,
		store:      store,
		httpClient: httpClient,
	}
}

// tokenResponse is the JSON body returned by the token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// TokenForCode exchanges an authorization code for an access token and
// installs it in the token store.
func (e *Exchanger) TokenForCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", e.appID)
	form.Set("client_secret", e.appSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating token request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/plain")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("exchanging code for token: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", ErrTokenExchangeFailed, resp.StatusCode, string(body))
	}

	var token tokenResponse

	err = json.Unmarshal(body, &token)
	if err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}

	if token.AccessToken == "" {
		return "", ErrNoAccessTokenInResponse
	}

	e.store.Set(token.AccessToken)

	return token.AccessToken, nil
}

// AuthenticationURL builds the hosted-auth authorize URL. The scope is fixed
// to email; state is sent empty.
func AuthenticationURL(authorizeURL, appID, redirectURI, loginHint string) string {
	args := url.Values{}
	args.Set("redirect_uri", redirectURI)
	args.Set("client_id", appID)
	args.Set("response_type", "code")
	args.Set("scope", "email")
	args.Set("login_hint", loginHint)
	args.Set("state", "")

	return authorizeURL + "?" + args.Encode()
}
