package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// EventsClient implements the nylas.EventsClient interface.
type EventsClient struct {
	client *Client
}

// NewEventsClient creates a new EventsClient.
func NewEventsClient(client *Client) *EventsClient {
	return &EventsClient{client: client}
}

// List lists events matching the given filters.
func (c *EventsClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Event, error) {
	events, err := listResources[nylas.Event](ctx, c.client, eventsDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	return events, nil
}

// Get retrieves a specific event.
func (c *EventsClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Event, error) {
	event, err := getResource[nylas.Event](ctx, c.client, eventsDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}

	return event, nil
}

// Create creates a new event.
func (c *EventsClient) Create(ctx context.Context, event *nylas.Event) (*nylas.Event, error) {
	created, err := createResource[nylas.Event](ctx, c.client, eventsDescriptor, event)
	if err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	return created, nil
}

// Update updates an event.
func (c *EventsClient) Update(ctx context.Context, id string, event *nylas.Event) (*nylas.Event, error) {
	updated, err := updateResource[nylas.Event](ctx, c.client, eventsDescriptor, id, event)
	if err != nil {
		return nil, fmt.Errorf("updating event: %w", err)
	}

	return updated, nil
}

// Delete deletes an event.
func (c *EventsClient) Delete(ctx context.Context, id string) error {
	err := deleteResource(ctx, c.client, eventsDescriptor, id, nil)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	return nil
}

// RSVP responds to an event invitation through the send-rsvp endpoint,
// which answers with the updated event.
func (c *EventsClient) RSVP(ctx context.Context, request *nylas.RSVPRequest) (*nylas.Event, error) {
	event, err := createResource[nylas.Event](ctx, c.client, rsvpDescriptor, request)
	if err != nil {
		return nil, fmt.Errorf("sending rsvp: %w", err)
	}

	return event, nil
}

// Iterate lazily walks the event collection.
func (c *EventsClient) Iterate(ctx context.Context, params *nylas.QueryParams) *nylas.Iterator[nylas.Event] {
	return nylas.NewIterator(ctx, func(ctx context.Context, params *nylas.QueryParams) ([]nylas.Event, error) {
		return c.List(ctx, params)
	}, params)
}
