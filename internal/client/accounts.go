package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// AccountsClient implements the nylas.AccountsClient interface. Management
// operations go through the /a/{appID} namespace with basic-auth signing;
// ListSync reads the sync engine's standard accounts collection for
// unauthenticated clients.
type AccountsClient struct {
	client *Client
}

// NewAccountsClient creates a new AccountsClient.
func NewAccountsClient(client *Client) *AccountsClient {
	return &AccountsClient{client: client}
}

// List lists the application's accounts.
func (c *AccountsClient) List(ctx context.Context, params *nylas.QueryParams) ([]nylas.Account, error) {
	accounts, err := listResources[nylas.Account](ctx, c.client, accountsAdminDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	return accounts, nil
}

// Get retrieves a specific account.
func (c *AccountsClient) Get(ctx context.Context, id string, params *nylas.QueryParams) (*nylas.Account, error) {
	account, err := getResource[nylas.Account](ctx, c.client, accountsAdminDescriptor, id, params)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	return account, nil
}

// Delete cancels and removes an account from the application.
func (c *AccountsClient) Delete(ctx context.Context, id string) error {
	err := deleteResource(ctx, c.client, accountsAdminDescriptor, id, nil)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}

// Upgrade moves an account from trial to paid.
func (c *AccountsClient) Upgrade(ctx context.Context, id string) (*nylas.Account, error) {
	account, err := invokeAction[nylas.Account](ctx, c.client, accountsAdminDescriptor, id, "upgrade", nil)
	if err != nil {
		return nil, fmt.Errorf("upgrading account: %w", err)
	}

	return account, nil
}

// Downgrade cancels an account's paid subscription.
func (c *AccountsClient) Downgrade(ctx context.Context, id string) (*nylas.Account, error) {
	account, err := invokeAction[nylas.Account](ctx, c.client, accountsAdminDescriptor, id, "downgrade", nil)
	if err != nil {
		return nil, fmt.Errorf("downgrading account: %w", err)
	}

	return account, nil
}

// ListSync lists accounts from the open-source sync engine's standard
// collection, which exposes the alternate account shape.
func (c *AccountsClient) ListSync(ctx context.Context, params *nylas.QueryParams) ([]nylas.APIAccount, error) {
	accounts, err := listResources[nylas.APIAccount](ctx, c.client, accountsSyncDescriptor, params)
	if err != nil {
		return nil, fmt.Errorf("listing sync accounts: %w", err)
	}

	return accounts, nil
}
