package nylas_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

type capturingLogger struct {
	debugs []string
	errs   []string
}

func (l *capturingLogger) Debug(msg string, fields map[string]interface{}) { l.debugs = append(l.debugs, msg) }
func (l *capturingLogger) Info(msg string, fields map[string]interface{})  {}
func (l *capturingLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *capturingLogger) Error(msg string, fields map[string]interface{}) { l.errs = append(l.errs, msg) }

func TestInterceptorChain(t *testing.T) {
	t.Parallel()

	t.Run("request interceptors run in order", func(t *testing.T) {
		t.Parallel()

		chain := nylas.NewInterceptorChain()

		var order []string

		chain.AddRequestInterceptor(func(ctx context.Context, req *nylas.Request) error {
			order = append(order, "first")

			return nil
		})
		chain.AddRequestInterceptor(func(ctx context.Context, req *nylas.Request) error {
			order = append(order, "second")

			return nil
		})

		err := chain.ExecuteRequestInterceptors(context.Background(), &nylas.Request{Method: "GET", Path: "/messages"})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("a failing interceptor stops the chain", func(t *testing.T) {
		t.Parallel()

		chain := nylas.NewInterceptorChain()

		boom := errors.New("boom")
		called := false

		chain.AddRequestInterceptor(func(ctx context.Context, req *nylas.Request) error {
			return boom
		})
		chain.AddRequestInterceptor(func(ctx context.Context, req *nylas.Request) error {
			called = true

			return nil
		})

		err := chain.ExecuteRequestInterceptors(context.Background(), &nylas.Request{})
		require.ErrorIs(t, err, boom)
		assert.False(t, called)
	})
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := nylas.HeaderInterceptor("X-Custom", "value")

	req := &nylas.Request{Headers: make(http.Header)}
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "value", req.Headers.Get("X-Custom"))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &capturingLogger{}

	reqInterceptor := nylas.LoggingInterceptor(logger)
	require.NoError(t, reqInterceptor(context.Background(), &nylas.Request{Method: "GET", Path: "/messages"}))
	assert.Equal(t, []string{"API Request"}, logger.debugs)

	respInterceptor := nylas.LoggingResponseInterceptor(logger)
	require.NoError(t, respInterceptor(context.Background(),
		&nylas.Request{Method: "GET", Path: "/messages"},
		&nylas.Response{StatusCode: 200}))
	assert.Equal(t, []string{"API Request", "API Response"}, logger.debugs)

	require.NoError(t, respInterceptor(context.Background(),
		&nylas.Request{Method: "GET", Path: "/messages"},
		&nylas.Response{StatusCode: 404, Error: nylas.NewAPIError("url", 404, nil, nil)}))
	assert.Equal(t, []string{"API Response Error"}, logger.errs)
}

func TestRateLimitInterceptor(t *testing.T) {
	t.Parallel()

	t.Run("paces successive requests", func(t *testing.T) {
		t.Parallel()

		limiter := nylas.RateLimitInterceptor(100)

		start := time.Now()
		for range 3 {
			require.NoError(t, limiter(context.Background(), &nylas.Request{}))
		}

		// Requests beyond the first are spaced one interval apart.
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled wait", func(t *testing.T) {
		t.Parallel()

		limiter := nylas.RateLimitInterceptor(1)
		require.NoError(t, limiter(context.Background(), &nylas.Request{}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := limiter(ctx, &nylas.Request{})
		require.ErrorIs(t, err, context.Canceled)
	})
}
