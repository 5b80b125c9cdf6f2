package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// DraftsClient implements the nylas.DraftsClient interface.
type DraftsClient struct {
	client *Client
}

// NewDraftsClient creates a new DraftsClient.
func NewDraftsClient(client *Client) *DraftsClient {
	return &DraftsClient{client: client}
}

// List lists drafts matching the given filters.
func (c *DraftsClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Draft, error) {
	drafts, err := listResources[nylas.Draft](ctx, c.client, draftsDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}

	return drafts, nil
}

// Get retrieves a specific draft.
func (c *DraftsClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Draft, error) {
	draft, err := getResource[nylas.Draft](ctx, c.client, draftsDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting draft: %w", err)
	}

	return draft, nil
}

// Create creates a new draft.
func (c *DraftsClient) Create(ctx context.Context, request *nylas.DraftRequest) (*nylas.Draft, error) {
	draft, err := createResource[nylas.Draft](ctx, c.client, draftsDescriptor, request)
	if err != nil {
		return nil, fmt.Errorf("creating draft: %w", err)
	}

	return draft, nil
}

// Update updates a draft. The request version must match the stored draft.
func (c *DraftsClient) Update(ctx context.Context, id string, request *nylas.DraftRequest) (*nylas.Draft, error) {
	draft, err := updateResource[nylas.Draft](ctx, c.client, draftsDescriptor, id, request)
	if err != nil {
		return nil, fmt.Errorf("updating draft: %w", err)
	}

	return draft, nil
}

// Delete deletes a draft. The API requires the draft version in the body.
func (c *DraftsClient) Delete(ctx context.Context, id string, version *int) error {
	var body interface{}
	if version != nil {
		body = map[string]int{"version": *version}
	}

	err := deleteResource(ctx, c.client, draftsDescriptor, id, body)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}

	return nil
}

// Send sends a message through the send endpoint, which answers with the
// sent message object rather than a draft.
func (c *DraftsClient) Send(ctx context.Context, request *nylas.SendRequest) (*nylas.Message, error) {
	message, err := createResource[nylas.Message](ctx, c.client, sendDescriptor, request)
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}

	return message, nil
}
