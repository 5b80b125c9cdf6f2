package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// ContactsClient implements the nylas.ContactsClient interface.
type ContactsClient struct {
	client *Client
}

// NewContactsClient creates a new ContactsClient.
func NewContactsClient(client *Client) *ContactsClient {
	return &ContactsClient{client: client}
}

// List lists contacts matching the given filters.
func (c *ContactsClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Contact, error) {
	contacts, err := listResources[nylas.Contact](ctx, c.client, contactsDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	return contacts, nil
}

// Get retrieves a specific contact.
func (c *ContactsClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Contact, error) {
	contact, err := getResource[nylas.Contact](ctx, c.client, contactsDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting contact: %w", err)
	}

	return contact, nil
}

// Create creates a new contact.
func (c *ContactsClient) Create(ctx context.Context, contact *nylas.Contact) (*nylas.Contact, error) {
	created, err := createResource[nylas.Contact](ctx, c.client, contactsDescriptor, contact)
	if err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}

	return created, nil
}

// Update updates a contact.
func (c *ContactsClient) Update(ctx context.Context, id string, contact *nylas.Contact) (*nylas.Contact, error) {
	updated, err := updateResource[nylas.Contact](ctx, c.client, contactsDescriptor, id, contact)
	if err != nil {
		return nil, fmt.Errorf("updating contact: %w", err)
	}

	return updated, nil
}

// Delete deletes a contact.
func (c *ContactsClient) Delete(ctx context.Context, id string) error {
	err := deleteResource(ctx, c.client, contactsDescriptor, id, nil)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	return nil
}

// Iterate lazily walks the contact collection.
func (c *ContactsClient) Iterate(ctx context.Context, params *nylas.QueryParams) *nylas.Iterator[nylas.Contact] {
	return nylas.NewIterator(ctx, func(ctx context.Context, params *nylas.QueryParams) ([]nylas.Contact, error) {
		return c.List(ctx, params)
	}, params)
}
