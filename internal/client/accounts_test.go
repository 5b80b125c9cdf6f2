package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicHeader(appSecret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(appSecret+":"))
}

func TestAccountsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// Management requests go through the application namespace with
		// basic-auth signing
		assert.Equal(t, "/a/app-id/accounts", request.URL.Path)
		assert.Equal(t, basicHeader("app-secret"), request.Header.Get("Authorization"))

		_, _ = writer.Write([]byte(`[
			{"id": "acc-1", "email": "one@example.com", "billing_state": "paid", "sync_state": "running", "trial": false},
			{"id": "acc-2", "email": "two@example.com", "billing_state": "cancelled", "sync_state": "stopped", "trial": true}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	accounts, err := client.Accounts().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "one@example.com", accounts[0].Email)
	assert.Equal(t, "paid", accounts[0].BillingState)
	assert.True(t, accounts[1].Trial)
}

func TestAccountsClient_Get(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/a/app-id/accounts/acc-1", request.URL.Path)
		assert.Equal(t, basicHeader("app-secret"), request.Header.Get("Authorization"))

		_, _ = writer.Write([]byte(`{"id": "acc-1", "email": "one@example.com", "billing_state": "paid"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	account, err := client.Accounts().Get(context.Background(), "acc-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", account.ID)
}

func TestAccountsClient_Upgrade(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/a/app-id/accounts/acc-1/upgrade", request.URL.Path)
		assert.Equal(t, basicHeader("app-secret"), request.Header.Get("Authorization"))

		_, _ = writer.Write([]byte(`{"id": "acc-1", "billing_state": "paid"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	account, err := client.Accounts().Upgrade(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "paid", account.BillingState)
}

func TestAccountsClient_Downgrade(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/a/app-id/accounts/acc-1/downgrade", request.URL.Path)

		_, _ = writer.Write([]byte(`{"id": "acc-1", "billing_state": "cancelled"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	account, err := client.Accounts().Downgrade(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", account.BillingState)
}

func TestAccountsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/a/app-id/accounts/acc-1", request.URL.Path)

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	require.NoError(t, client.Accounts().Delete(context.Background(), "acc-1"))
}

func TestAccountsClient_ListSync(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// The sync-engine collection is a standard resource: bearer signed,
		// no application prefix
		assert.Equal(t, "/accounts", request.URL.Path)
		assert.Equal(t, "Bearer access-token", request.Header.Get("Authorization"))

		_, _ = writer.Write([]byte(`[
			{"id": "acc-1", "email_address": "one@example.com", "provider": "gmail", "sync_state": "running"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	accounts, err := client.Accounts().ListSync(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "one@example.com", accounts[0].EmailAddress)
	assert.Equal(t, "gmail", accounts[0].Provider)
}
