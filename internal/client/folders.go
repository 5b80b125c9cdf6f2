package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// FoldersClient implements the nylas.FoldersClient interface.
type FoldersClient struct {
	client *Client
}

// NewFoldersClient creates a new FoldersClient.
func NewFoldersClient(client *Client) *FoldersClient {
	return &FoldersClient{client: client}
}

// List lists folders.
func (c *FoldersClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Folder, error) {
	folders, err := listResources[nylas.Folder](ctx, c.client, foldersDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	return folders, nil
}

// Get retrieves a specific folder.
func (c *FoldersClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Folder, error) {
	folder, err := getResource[nylas.Folder](ctx, c.client, foldersDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting folder: %w", err)
	}

	return folder, nil
}

// Create creates a new folder.
func (c *FoldersClient) Create(ctx context.Context, folder *nylas.Folder) (*nylas.Folder, error) {
	created, err := createResource[nylas.Folder](ctx, c.client, foldersDescriptor, folder)
	if err != nil {
		return nil, fmt.Errorf("creating folder: %w", err)
	}

	return created, nil
}

// Update updates a folder's display name.
func (c *FoldersClient) Update(ctx context.Context, id string, folder *nylas.Folder) (*nylas.Folder, error) {
	updated, err := updateResource[nylas.Folder](ctx, c.client, foldersDescriptor, id, folder)
	if err != nil {
		return nil, fmt.Errorf("updating folder: %w", err)
	}

	return updated, nil
}

// Delete deletes a folder.
func (c *FoldersClient) Delete(ctx context.Context, id string) error {
	err := deleteResource(ctx, c.client, foldersDescriptor, id, nil)
	if err != nil {
		return fmt.Errorf("deleting folder: %w", err)
	}

	return nil
}
