package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// LabelsClient implements the nylas.LabelsClient interface.
type LabelsClient struct {
	client *Client
}

// NewLabelsClient creates a new LabelsClient.
func NewLabelsClient(client *Client) *LabelsClient {
	return &LabelsClient{client: client}
}

// List lists labels.
func (c *LabelsClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Label, error) {
	labels, err := listResources[nylas.Label](ctx, c.client, labelsDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}

	return labels, nil
}

// Get retrieves a specific label.
func (c *LabelsClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Label, error) {
	label, err := getResource[nylas.Label](ctx, c.client, labelsDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting label: %w", err)
	}

	return label, nil
}

// Create creates a new label.
func (c *LabelsClient) Create(ctx context.Context, label *nylas.Label) (*nylas.Label, error) {
	created, err := createResource[nylas.Label](ctx, c.client, labelsDescriptor, label)
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	return created, nil
}

// Update updates a label's display name.
func (c *LabelsClient) Update(ctx context.Context, id string, label *nylas.Label) (*nylas.Label, error) {
	updated, err := updateResource[nylas.Label](ctx, c.client, labelsDescriptor, id, label)
	if err != nil {
		return nil, fmt.Errorf("updating label: %w", err)
	}

	return updated, nil
}

// Delete deletes a label.
func (c *LabelsClient) Delete(ctx context.Context, id string) error {
	err := deleteResource(ctx, c.client, labelsDescriptor, id, nil)
	if err != nil {
		return fmt.Errorf("deleting label: %w", err)
	}

	return nil
}
