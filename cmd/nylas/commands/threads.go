package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewThreadsCommand creates the threads command group
func NewThreadsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "threads",
		Aliases: []string{"thread"},
		Short:   "Manage threads",
		Long:    "List and inspect conversation threads",
	}

	cmd.AddCommand(newThreadsListCommand())
	cmd.AddCommand(newThreadsGetCommand())

	return cmd
}

func newThreadsListCommand() *cobra.Command {
	var (
		limit    int
		offset   int
		anyEmail string
		view     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List threads",
		Long:  "List conversation threads in the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := buildQueryParams(limit, offset, cmd.Flags().Changed("offset"), map[string]string{
				"any_email": anyEmail,
			})
			if view != "" {
				params.WithView(view)
			}

			threads, err := client.Threads().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list threads: %w", err)
			}

			if done, err := encodeOutput(threads); done {
				return err
			}

			if len(threads) == 0 {
				fmt.Println("No threads found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Last Message", "Subject", "Messages", "Unread")

			for _, thread := range threads {
				unreadCell := "no"
				if thread.Unread {
					unreadCell = "yes"
				}

				_ = table.Append(thread.ID, formatEpoch(thread.LastMessageTimestamp),
					truncate(thread.Subject, 50),
					fmt.Sprintf("%d", len(thread.MessageIDs)), unreadCell)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of threads to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of threads to skip")
	cmd.Flags().StringVar(&anyEmail, "any-email", "", "filter by any participant email")
	cmd.Flags().StringVar(&view, "view", "", "response view (ids, count, expanded)")

	return cmd
}

func newThreadsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get THREAD_ID",
		Short: "Get thread details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrThreadIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			thread, err := client.Threads().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get thread: %w", err)
			}

			if done, err := encodeOutput(thread); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", thread.ID)
			_ = table.Append("Subject", thread.Subject)
			_ = table.Append("Participants", truncate(formatParticipants(thread.Participants), 80))
			_ = table.Append("First Message", formatEpoch(thread.FirstMessageTimestamp))
			_ = table.Append("Last Message", formatEpoch(thread.LastMessageTimestamp))
			_ = table.Append("Messages", fmt.Sprintf("%d", len(thread.MessageIDs)))
			_ = table.Append("Snippet", truncate(thread.Snippet, 80))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	return cmd
}
