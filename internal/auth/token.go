// Package auth holds the credential primitives for the two request-signing
// sessions: the bearer-token session for standard resources and the
// basic-auth session for the application management namespace.
package auth

import (
	"encoding/base64"
	"sync"
)

// HeaderProvider yields the Authorization header value for a request, or
// ok=false when the request should go out unauthenticated.
type HeaderProvider interface {
	AuthorizationHeader() (value string, ok bool)
}

// TokenStore holds the mutable access token. Reads see the latest value at
// request time; rotation is safe against concurrent requests.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// NewTokenStore creates a store with an initial token, which may be empty.
func NewTokenStore(token string) *TokenStore {
	return &TokenStore{token: token}
}

// Get returns the current token.
func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token. An empty token switches the bearer
// session back to unauthenticated requests.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// BearerProvider derives a Bearer header from the store's current token.
type BearerProvider struct {
	store *TokenStore
}

// NewBearerProvider creates a provider backed by the given store.
func NewBearerProvider(store *TokenStore) *BearerProvider {
	return &BearerProvider{store: store}
}

// AuthorizationHeader implements HeaderProvider. The token is read on every
// call so rotations take effect immediately.
func (p *BearerProvider) AuthorizationHeader() (string, bool) {
	token := p.store.Get()
	if token == "" {
		return "", false
	}

	return "Bearer " + token, true
}

// BasicProvider derives a fixed basic-auth header from the app secret,
// encoded as base64(secret + ":"). The secret is immutable per client, so
// the header is computed once.
type BasicProvider struct {
	header string
}

// NewBasicProvider creates a provider for the given app secret.
func NewBasicProvider(appSecret string) *BasicProvider {
	encoded := base64.StdEncoding.EncodeToString([]byte(appSecret + ":"))

	return &BasicProvider{header: "Basic " + encoded}
}

// AuthorizationHeader implements HeaderProvider.
func (p *BasicProvider) AuthorizationHeader() (string, bool) {
	return p.header, true
}

// NoneProvider sends no Authorization header; used for the admin session of
// an unauthenticated client.
type NoneProvider struct{}

// AuthorizationHeader implements HeaderProvider.
func (p *NoneProvider) AuthorizationHeader() (string, bool) {
	return "", false
}
