package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAccountCommand creates the account command
func NewAccountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the current account",
		Long:  "Display the account bound to the current access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			account, err := client.CurrentAccount(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch account: %w", err)
			}

			if done, err := encodeOutput(account); done {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Property", "Value")
			_ = table.Append("ID", account.ID)
			_ = table.Append("Email", account.EmailAddress)
			_ = table.Append("Name", account.Name)
			_ = table.Append("Provider", account.Provider)
			_ = table.Append("Organization Unit", account.OrganizationUnit)
			_ = table.Append("Sync State", account.SyncState)

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}
