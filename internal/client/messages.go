package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// MessagesClient implements the nylas.MessagesClient interface.
type MessagesClient struct {
	client *Client
}

// NewMessagesClient creates a new MessagesClient.
func NewMessagesClient(client *Client) *MessagesClient {
	return &MessagesClient{client: client}
}

// List lists messages matching the given filters.
func (c *MessagesClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Message, error) {
	messages, err := listResources[nylas.Message](ctx, c.client, messagesDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return messages, nil
}

// Get retrieves a specific message.
func (c *MessagesClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Message, error) {
	message, err := getResource[nylas.Message](ctx, c.client, messagesDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting message: %w", err)
	}

	return message, nil
}

// GetRaw returns the raw RFC 2822 content of a message.
func (c *MessagesClient) GetRaw(ctx context.Context, id string) ([]byte, error) {
	headers := map[string]string{"Accept": "message/rfc822"}

	content, err := getResourceRaw(ctx, c.client, messagesDescriptor, id, "", nil, headers)
	if err != nil {
		return nil, fmt.Errorf("getting raw message: %w", err)
	}

	return content, nil
}

// Update updates mutable message state (unread, starred, folder, labels).
func (c *MessagesClient) Update(ctx context.Context, id string, update map[string]interface{}) (*nylas.Message, error) {
	message, err := updateResource[nylas.Message](ctx, c.client, messagesDescriptor, id, update)
	if err != nil {
		return nil, fmt.Errorf("updating message: %w", err)
	}

	return message, nil
}

// Iterate lazily walks the message collection.
func (c *MessagesClient) Iterate(ctx context.Context, params *nylas.QueryParams) *nylas.Iterator[nylas.Message] {
	return nylas.NewIterator(ctx, func(ctx context.Context, params *nylas.QueryParams) ([]nylas.Message, error) {
		return c.List(ctx, params)
	}, params)
}
