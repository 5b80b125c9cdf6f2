package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
	"github.com/fivetwenty-io/nylas/pkg/nylasclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		appID       string
		appSecret   string
		redirectURI string
		loginHint   string
		code        string
		accessToken string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Nylas",
		Long: `Authenticate an account against the Nylas platform.

With --token, the given access token is stored directly. Otherwise the
hosted authentication flow is used: the command prints the authorization
URL, waits for the code from the redirect, and exchanges it for a token.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Direct token: store and verify, no OAuth dance
			if accessToken != "" {
				client, err := nylasclient.NewWithToken(ctx, viper.GetString("api"), accessToken)
				if err != nil {
					return fmt.Errorf("failed to create client: %w", err)
				}

				account, err := client.CurrentAccount(ctx)
				if err != nil {
					return fmt.Errorf("failed to verify token: %w", err)
				}

				if err := persistToken(accessToken); err != nil {
					return err
				}

				fmt.Printf("Logged in as %s\n", account.EmailAddress)

				return nil
			}

			if appID == "" {
				appID = viper.GetString("app_id")
			}

			if appSecret == "" {
				appSecret = viper.GetString("app_secret")
			}

			if appID == "" {
				return ErrAppCredentialsNeeded
			}

			if appSecret == "" {
				fmt.Print("Application secret: ")
				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read application secret: %w", err)
				}
				appSecret = string(byteSecret)
				fmt.Println()
			}

			config := &nylas.Config{
				APIEndpoint: viper.GetString("api"),
				AppID:       appID,
				AppSecret:   appSecret,
			}

			client, err := nylasclient.New(ctx, config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Walk the user through hosted auth if no code was supplied
			if code == "" {
				fmt.Println("Open the following URL in a browser and authorize the application:")
				fmt.Println()
				fmt.Println("  " + client.AuthenticationURL(redirectURI, loginHint))
				fmt.Println()

				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Authorization code: ")
				code, _ = reader.ReadString('\n')
				code = strings.TrimSpace(code)
			}

			if code == "" {
				return ErrCodeRequired
			}

			token, err := client.TokenForCode(ctx, code)
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}

			account, err := client.CurrentAccount(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch account: %w", err)
			}

			if err := persistToken(token); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", account.EmailAddress, account.Provider)

			return nil
		},
	}

	cmd.Flags().StringVar(&appID, "app-id", "", "application ID")
	cmd.Flags().StringVar(&appSecret, "app-secret", "", "application secret")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "https://localhost", "redirect URI registered with the application")
	cmd.Flags().StringVar(&loginHint, "login-hint", "", "email address to pre-fill on the login page")
	cmd.Flags().StringVar(&code, "code", "", "authorization code from the redirect")
	cmd.Flags().StringVar(&accessToken, "token", "", "store an existing access token instead of running hosted auth")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from Nylas",
		Long:  "Revoke the stored access token and remove it from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := viper.GetString("token")
			if token == "" {
				fmt.Println("Not logged in")

				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.RevokeToken(context.Background()); err != nil {
				return fmt.Errorf("failed to revoke token: %w", err)
			}

			if err := persistToken(""); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}
