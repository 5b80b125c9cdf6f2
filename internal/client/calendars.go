package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// CalendarsClient implements the nylas.CalendarsClient interface.
type CalendarsClient struct {
	client *Client
}

// NewCalendarsClient creates a new CalendarsClient.
func NewCalendarsClient(client *Client) *CalendarsClient {
	return &CalendarsClient{client: client}
}

// List lists calendars.
func (c *CalendarsClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Calendar, error) {
	calendars, err := listResources[nylas.Calendar](ctx, c.client, calendarsDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}

	return calendars, nil
}

// Get retrieves a specific calendar.
func (c *CalendarsClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Calendar, error) {
	calendar, err := getResource[nylas.Calendar](ctx, c.client, calendarsDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting calendar: %w", err)
	}

	return calendar, nil
}

// Iterate lazily walks the calendar collection.
func (c *CalendarsClient) Iterate(ctx context.Context, params *nylas.QueryParams) *nylas.Iterator[nylas.Calendar] {
	return nylas.NewIterator(ctx, func(ctx context.Context, params *nylas.QueryParams) ([]nylas.Calendar, error) {
		return c.List(ctx, params)
	}, params)
}
