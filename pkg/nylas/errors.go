package nylas

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the closed set of error conditions the API can surface.
// Every non-200 response maps to exactly one kind; transport failures map
// to KindConnectionFailure.
type ErrorKind string

const (
	KindConnectionFailure    ErrorKind = "connection_failure"
	KindInvalidRequest       ErrorKind = "invalid_request"
	KindNotAuthorized        ErrorKind = "not_authorized"
	KindMessageRejected      ErrorKind = "message_rejected"
	KindNotFound             ErrorKind = "not_found"
	KindMethodNotSupported   ErrorKind = "method_not_supported"
	KindConflict             ErrorKind = "conflict"
	KindSendingQuotaExceeded ErrorKind = "sending_quota_exceeded"
	KindServer               ErrorKind = "server_error"
	KindServiceUnavailable   ErrorKind = "service_unavailable"
	KindServerTimeout        ErrorKind = "server_timeout"
	KindUnknownStatus        ErrorKind = "unknown_status"
)

// statusKinds maps HTTP status codes to error kinds. Unmapped non-200
// statuses become KindUnknownStatus.
var statusKinds = map[int]ErrorKind{
	http.StatusBadRequest:          KindInvalidRequest,
	http.StatusUnauthorized:        KindNotAuthorized,
	http.StatusPaymentRequired:     KindMessageRejected,
	http.StatusForbidden:           KindNotAuthorized,
	http.StatusNotFound:            KindNotFound,
	http.StatusMethodNotAllowed:    KindMethodNotSupported,
	http.StatusConflict:            KindConflict,
	http.StatusTooManyRequests:     KindSendingQuotaExceeded,
	http.StatusInternalServerError: KindServer,
	http.StatusServiceUnavailable:  KindServiceUnavailable,
	http.StatusGatewayTimeout:      KindServerTimeout,
}

// KindForStatus returns the error kind mapped to an HTTP status code.
func KindForStatus(statusCode int) ErrorKind {
	if kind, ok := statusKinds[statusCode]; ok {
		return kind
	}

	return KindUnknownStatus
}

// APIError represents a failed API call. It is constructed once at the
// validation boundary and carries enough context to debug without
// re-issuing the request.
type APIError struct {
	Kind        ErrorKind
	URL         string
	StatusCode  int
	RequestBody interface{}
	Message     string
	ServerError string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Kind == KindConnectionFailure {
		return fmt.Sprintf("connection failed: %s", e.URL)
	}

	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}

	if e.ServerError != "" {
		return fmt.Sprintf("%s (status: %d, url: %s, server error: %s)", msg, e.StatusCode, e.URL, e.ServerError)
	}

	return fmt.Sprintf("%s (status: %d, url: %s)", msg, e.StatusCode, e.URL)
}

// errorBody is the JSON body the API returns alongside an error status.
type errorBody struct {
	Message     string `json:"message"`
	ServerError string `json:"server_error"`
}

// NewAPIError classifies a non-200 response into an APIError. The response
// body is parsed for "message" and "server_error" fields; a body that fails
// to parse degrades to the generic "Malformed" message without losing the
// status-derived kind. requestBody is the request payload, already decoded
// from JSON when possible.
func NewAPIError(url string, statusCode int, responseBody []byte, requestBody interface{}) *APIError {
	apiErr := &APIError{
		Kind:        KindForStatus(statusCode),
		URL:         url,
		StatusCode:  statusCode,
		RequestBody: requestBody,
	}

	if apiErr.Kind == KindUnknownStatus {
		apiErr.Message = "Unknown status code."

		return apiErr
	}

	var body errorBody

	err := json.Unmarshal(responseBody, &body)
	if err != nil {
		apiErr.Message = "Malformed"

		return apiErr
	}

	apiErr.Message = body.Message
	apiErr.ServerError = body.ServerError

	return apiErr
}

// NewConnectionError reports a transport-level failure reaching the API
// server. It carries only the target server URL.
func NewConnectionError(serverURL string) *APIError {
	return &APIError{
		Kind: KindConnectionFailure,
		URL:  serverURL,
	}
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsNotAuthorized checks if the error is an authentication or authorization error.
func IsNotAuthorized(err error) bool {
	return hasKind(err, KindNotAuthorized)
}

// IsInvalidRequest checks if the error is a bad request error.
func IsInvalidRequest(err error) bool {
	return hasKind(err, KindInvalidRequest)
}

// IsConnectionFailure checks if the error is a transport-level failure.
func IsConnectionFailure(err error) bool {
	return hasKind(err, KindConnectionFailure)
}

// IsSendingQuotaExceeded checks if the error is a rate limit error.
func IsSendingQuotaExceeded(err error) bool {
	return hasKind(err, KindSendingQuotaExceeded)
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// Common static errors that can be wrapped with context.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrConfigRequired      = errors.New("config is required")
	ErrAppIDRequired       = errors.New("application ID is required")
	ErrAppSecretRequired   = errors.New("application secret is required")
	ErrNoAccessToken       = errors.New("no access token set")
	ErrEmptyResponse       = errors.New("empty response for single resource")
)
