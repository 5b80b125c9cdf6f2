package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCalendarsCommand creates the calendars command group
func NewCalendarsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendars",
		Aliases: []string{"calendar"},
		Short:   "Manage calendars",
		Long:    "List calendars in the current account",
	}

	cmd.AddCommand(newCalendarsListCommand())

	return cmd
}

func newCalendarsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List calendars",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := buildQueryParams(limit, offset, cmd.Flags().Changed("offset"), nil)

			calendars, err := client.Calendars().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list calendars: %w", err)
			}

			if done, err := encodeOutput(calendars); done {
				return err
			}

			if len(calendars) == 0 {
				fmt.Println("No calendars found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Description", "Read Only")

			for _, calendar := range calendars {
				readOnly := "no"
				if calendar.ReadOnly {
					readOnly = "yes"
				}

				_ = table.Append(calendar.ID, calendar.Name,
					truncate(calendar.Description, 40), readOnly)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of calendars to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of calendars to skip")

	return cmd
}
