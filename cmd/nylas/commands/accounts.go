package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewAccountsCommand creates the accounts management command group
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage application accounts",
		Long: `List and manage the accounts connected to an application.

These commands use the management namespace and require --app-id and
--app-secret.`,
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsUpgradeCommand())
	cmd.AddCommand(newAccountsDowngradeCommand())
	cmd.AddCommand(newAccountsDeleteCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List application accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := buildQueryParams(limit, offset, cmd.Flags().Changed("offset"), nil)

			accounts, err := client.Accounts().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			if done, err := encodeOutput(accounts); done {
				return err
			}

			if len(accounts) == 0 {
				fmt.Println("No accounts found")

				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Email", "Provider", "Billing State", "Sync State", "Trial")

			for _, account := range accounts {
				trial := "no"
				if account.Trial {
					trial = "yes"
				}

				_ = table.Append(account.ID, account.Email, account.Provider,
					account.BillingState, account.SyncState, trial)
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of accounts to return")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of accounts to skip")

	return cmd
}

func newAccountsUpgradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade ACCOUNT_ID",
		Short: "Upgrade an account to paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrAccountIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			account, err := client.Accounts().Upgrade(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to upgrade account: %w", err)
			}

			fmt.Printf("Account %s is now %s\n", account.ID, account.BillingState)

			return nil
		},
	}
}

func newAccountsDowngradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "downgrade ACCOUNT_ID",
		Short: "Cancel an account's paid subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrAccountIDRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			account, err := client.Accounts().Downgrade(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to downgrade account: %w", err)
			}

			fmt.Printf("Account %s is now %s\n", account.ID, account.BillingState)

			return nil
		},
	}
}

func newAccountsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ACCOUNT_ID",
		Short: "Delete an account from the application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrAccountIDRequired
			}

			if !force {
				fmt.Printf("Really delete account %s? Re-run with --force to confirm\n", args[0])

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Accounts().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete account: %w", err)
			}

			fmt.Printf("Account %s deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")

	return cmd
}
