package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// ThreadsClient implements the nylas.ThreadsClient interface.
type ThreadsClient struct {
	client *Client
}

// NewThreadsClient creates a new ThreadsClient.
func NewThreadsClient(client *Client) *ThreadsClient {
	return &ThreadsClient{client: client}
}

// List lists threads matching the given filters.
func (c *ThreadsClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Thread, error) {
	threads, err := listResources[nylas.Thread](ctx, c.client, threadsDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing threads: %w", err)
	}

	return threads, nil
}

// Get retrieves a specific thread.
func (c *ThreadsClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Thread, error) {
	thread, err := getResource[nylas.Thread](ctx, c.client, threadsDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting thread: %w", err)
	}

	return thread, nil
}

// Update updates mutable thread state (unread, starred, folder, labels).
func (c *ThreadsClient) Update(ctx context.Context, id string, update map[string]interface{}) (*nylas.Thread, error) {
	thread, err := updateResource[nylas.Thread](ctx, c.client, threadsDescriptor, id, update)
	if err != nil {
		return nil, fmt.Errorf("updating thread: %w", err)
	}

	return thread, nil
}

// Iterate lazily walks the thread collection.
func (c *ThreadsClient) Iterate(ctx context.Context, params *nylas.QueryParams) *nylas.Iterator[nylas.Thread] {
	return nylas.NewIterator(ctx, func(ctx context.Context, params *nylas.QueryParams) ([]nylas.Thread, error) {
		return c.List(ctx, params)
	}, params)
}
