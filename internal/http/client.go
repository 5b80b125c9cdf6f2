// Package http implements the request/response mediation layer: URL
// assembly, header and credential injection, response validation against the
// error taxonomy, and optional GET response caching.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/nylas/internal/auth"
	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// WrapperName identifies this SDK in the X-Nylas-API-Wrapper header.
const WrapperName = "go"

// DefaultUserAgent is sent when the config does not override it.
const DefaultUserAgent = "Nylas Go SDK/" + nylas.Version

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string

	// Body is JSON-serialized when non-nil and RawBody is unset.
	Body interface{}

	// RawBody is sent verbatim with ContentType (multipart uploads).
	RawBody     []byte
	ContentType string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client dispatches requests against one base URL with one signing session.
type Client struct {
	baseURL      string
	provider     auth.HeaderProvider
	httpClient   *retryablehttp.Client
	userAgent    string
	logger       nylas.Logger
	debug        bool
	cache        nylas.Cache
	cacheTTL     time.Duration
	interceptors *nylas.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger nylas.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for transient failures. Without it the
// client makes exactly one attempt per request.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithCache caches successful GET response bodies for ttl.
func WithCache(cache nylas.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithInterceptors installs an interceptor chain around every request.
func WithInterceptors(chain *nylas.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for the given base URL. provider may be nil for
// unauthenticated requests.
func NewClient(baseURL string, provider auth.HeaderProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	client := &Client{
		baseURL:    baseURL,
		provider:   provider,
		httpClient: retryClient,
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the server base URL this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do dispatches a request, validates the response status, and returns the
// response body. A non-200 status is returned as a *nylas.APIError carrying
// the url, status, request body, and any server-provided message; a
// transport-level failure becomes a connection-failure APIError carrying
// the server base URL.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	if req.Method == http.MethodGet && c.cache != nil {
		if entry, err := c.cache.Get(ctx, fullURL); err == nil {
			return &Response{StatusCode: http.StatusOK, Body: entry.Data}, nil
		}
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req, contentType)

	interceptReq := &nylas.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
		Body:    body,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nylas.NewConnectionError(c.baseURL)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nylas.NewConnectionError(c.baseURL)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	var validationErr error
	if resp.StatusCode != http.StatusOK {
		validationErr = nylas.NewAPIError(fullURL, resp.StatusCode, respBody, req.Body)
	}

	if c.interceptors != nil {
		interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, &nylas.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       respBody,
			Error:      validationErr,
		})
		if interceptErr != nil {
			return resp, interceptErr
		}
	}

	if validationErr != nil {
		return resp, validationErr
	}

	if req.Method == http.MethodGet && c.cache != nil {
		_ = c.cache.Set(ctx, fullURL, &nylas.CacheEntry{
			Data:      respBody,
			ExpiresAt: time.Now().Add(c.cacheTTL),
			ETag:      resp.Headers.Get("Etag"),
		})
	}

	return resp, nil
}

// encodeBody serializes the request body, returning the bytes and the
// content type to send.
func encodeBody(req *Request) ([]byte, string, error) {
	if req.RawBody != nil {
		return req.RawBody, req.ContentType, nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling request body: %w", err)
	}

	return data, "application/json", nil
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request, contentType string) {
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Nylas-API-Wrapper", WrapperName)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// The auth header is derived per request so token rotation takes effect
	// immediately.
	if c.provider != nil {
		if header, ok := c.provider.AuthorizationHeader(); ok {
			httpReq.Header.Set("Authorization", header)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetWithHeaders performs a GET request with extra headers.
func (c *Client) GetWithHeaders(ctx context.Context, path string, query url.Values, headers map[string]string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query, Headers: headers})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostRaw performs a POST request with a preassembled body, used for
// multipart uploads.
func (c *Client) PostRaw(ctx context.Context, path string, rawBody []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, RawBody: rawBody, ContentType: contentType})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request. body may be nil.
func (c *Client) Delete(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Body: body})
}
