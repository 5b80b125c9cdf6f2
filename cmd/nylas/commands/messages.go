package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewMessagesCommand creates the messages command group
func NewMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"message"},
		Short:   "Manage messages",
		Long:    "List and inspect messages synced through Nylas",
	}

	cmd.AddCommand(newMessagesListCommand())
	cmd.AddCommand(newMessagesGetCommand())
	cmd.AddCommand(newMessagesRawCommand())

	return cmd
}

func newMessagesListCommand() *cobra.Command {
	var (
		limit    int
		offset   int
		threadID string
		from     string
		anyEmail string
		unread   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List messages",
		Long:  "List messages in the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := buildQueryParams(limit, offset, cmd.Flags().Changed("offset"), map[string]string{
				"thread_id": threadID,
				"from":      from,
				"any_email": anyEmail,
			})

			if cmd.Flags().Changed("unread") {
				if unread {
					params.WithFilter("unread", "true")
				} else {
					params.WithFilter("unread", "false")
				}
			}

			messages, err := client.Messages().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			if done, err := encodeOutput(messages); done {
				return err
			}

			if len(messages) == 0 {
				fmt.Println("No messages found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Date", "From", "Subject", "Unread")

			for _, msg := range messages {
				unreadCell := "no"
				if msg.Unread {
					unreadCell = "yes"
				}

				_ = table.Append(msg.ID, formatEpoch(msg.Date),
					truncate(formatParticipants(msg.From), 40),
					truncate(msg.Subject, 50), unreadCell)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of messages to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of messages to skip")
	cmd.Flags().StringVar(&threadID, "thread", "", "filter by thread ID")
	cmd.Flags().StringVar(&from, "from", "", "filter by sender email")
	cmd.Flags().StringVar(&anyEmail, "any-email", "", "filter by any participant email")
	cmd.Flags().BoolVar(&unread, "unread", false, "filter by unread state")

	return cmd
}

func newMessagesGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get MESSAGE_ID",
		Short: "Get message details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrMessageIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			message, err := client.Messages().Get(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get message: %w", err)
			}

			if done, err := encodeOutput(message); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", message.ID)
			_ = table.Append("Thread", message.ThreadID)
			_ = table.Append("Subject", message.Subject)
			_ = table.Append("From", formatParticipants(message.From))
			_ = table.Append("To", formatParticipants(message.To))
			_ = table.Append("Date", formatEpoch(message.Date))
			_ = table.Append("Snippet", truncate(message.Snippet, 80))

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	return cmd
}

func newMessagesRawCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw MESSAGE_ID",
		Short: "Print a message in RFC 2822 form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrMessageIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			raw, err := client.Messages().GetRaw(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get raw message: %w", err)
			}

			_, err = os.Stdout.Write(raw)

			return err
		},
	}

	return cmd
}
