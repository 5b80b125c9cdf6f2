package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// FilesClient implements the nylas.FilesClient interface.
type FilesClient struct {
	client *Client
}

// NewFilesClient creates a new FilesClient.
func NewFilesClient(client *Client) *FilesClient {
	return &FilesClient{client: client}
}

// List lists file attachments matching the given filters.
func (c *FilesClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.File, error) {
	files, err := listResources[nylas.File](ctx, c.client, filesDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	return files, nil
}

// Get retrieves a specific file's metadata.
func (c *FilesClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.File, error) {
	file, err := getResource[nylas.File](ctx, c.client, filesDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	return file, nil
}

// Upload posts file content as multipart form data.
func (c *FilesClient) Upload(ctx context.Context, filename, contentType string, content []byte) (*nylas.File, error) {
	file, err := uploadMultipart[nylas.File](ctx, c.client, filesDescriptor, filename, contentType, content)
	if err != nil {
		return nil, fmt.Errorf("uploading file: %w", err)
	}

	return file, nil
}

// Download returns the raw file content.
func (c *FilesClient) Download(ctx context.Context, id string) ([]byte, error) {
	content, err := getResourceRaw(ctx, c.client, filesDescriptor, id, "download", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading file: %w", err)
	}

	return content, nil
}

// Delete deletes a file.
func (c *FilesClient) Delete(ctx context.Context, id string) error {
	err := deleteResource(ctx, c.client, filesDescriptor, id, nil)
	if err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}

	return nil
}
