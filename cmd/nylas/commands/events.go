package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewEventsCommand creates the events command group
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Manage calendar events",
		Long:    "List, inspect, and respond to calendar events",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())
	cmd.AddCommand(newEventsRSVPCommand())

	return cmd
}

// formatEventWhen renders the polymorphic when block for table cells.
func formatEventWhen(when *nylas.EventTime) string {
	if when == nil {
		return NotAvailable
	}

	switch {
	case when.Time != 0:
		return formatEpoch(when.Time)
	case when.StartTime != 0:
		return formatEpoch(when.StartTime) + " - " + formatEpoch(when.EndTime)
	case when.Date != "":
		return when.Date
	case when.StartDate != "":
		return when.StartDate + " - " + when.EndDate
	default:
		return NotAvailable
	}
}

func newEventsListCommand() *cobra.Command {
	var (
		limit      int
		offset     int
		calendarID string
		title      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List calendar events in the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := buildQueryParams(limit, offset, cmd.Flags().Changed("offset"), map[string]string{
				"calendar_id": calendarID,
				"title":       title,
			})

			events, err := client.Events().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			if done, err := encodeOutput(events); done {
				return err
			}

			if len(events) == 0 {
				fmt.Println("No events found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Title", "When", "Location", "Status")

			for _, event := range events {
				_ = table.Append(event.ID, truncate(event.Title, 40),
					formatEventWhen(event.When), truncate(event.Location, 30),
					event.Status)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of events to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of events to skip")
	cmd.Flags().StringVar(&calendarID, "calendar", "", "filter by calendar ID")
	cmd.Flags().StringVar(&title, "title", "", "filter by title")

	return cmd
}

func newEventsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Get event details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrEventIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get event: %w", err)
			}

			if done, err := encodeOutput(event); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", event.ID)
			_ = table.Append("Title", event.Title)
			_ = table.Append("Calendar", event.CalendarID)
			_ = table.Append("When", formatEventWhen(event.When))
			_ = table.Append("Location", event.Location)
			_ = table.Append("Status", event.Status)
			_ = table.Append("Description", truncate(event.Description, 80))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func newEventsRSVPCommand() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "rsvp EVENT_ID STATUS",
		Short: "Respond to an event invitation",
		Long:  "Send an RSVP (yes, no, or maybe) for an event received by email",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrEventIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			event, err := client.Events().RSVP(context.Background(), &nylas.RSVPRequest{
				EventID: args[0],
				Status:  args[1],
				Comment: comment,
			})
			if err != nil {
				return fmt.Errorf("failed to send RSVP: %w", err)
			}

			fmt.Printf("RSVP'd %s to %q\n", args[1], event.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "note to include with the response")

	return cmd
}
