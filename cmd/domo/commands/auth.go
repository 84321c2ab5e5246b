package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// NewAuthCommand creates the auth command group
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long:  "Commands for authenticating with the Domo API and inspecting tokens",
	}

	cmd.AddCommand(newAuthLoginCommand())
	cmd.AddCommand(newAuthTokenCommand())

	return cmd
}

func newAuthLoginCommand() *cobra.Command {
	var (
		clientID       string
		clientSecret   string
		developerToken bool
		host           string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Domo",
		Long: `Authenticate with the Domo API and store credentials in the config file.

With --developer-token the CLI prompts for a long-lived developer token and
requires --host (the instance domain, e.g. acme.domo.com). Otherwise it
prompts for OAuth client credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			settings := map[string]string{}

			if developerToken {
				if host == "" {
					fmt.Print("Instance domain (e.g. acme.domo.com): ")
					host, _ = reader.ReadString('\n')
					host = strings.TrimSpace(host)
				}

				fmt.Print("Developer token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				fmt.Println()

				settings["developer_token"] = string(byteToken)
				settings["host"] = host
				viper.Set("developer_token", string(byteToken))
				viper.Set("host", host)
			} else {
				if clientID == "" {
					fmt.Print("Client ID: ")
					clientID, _ = reader.ReadString('\n')
					clientID = strings.TrimSpace(clientID)
				}

				if clientSecret == "" {
					fmt.Print("Client secret: ")

					byteSecret, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read secret: %w", err)
					}

					clientSecret = string(byteSecret)

					fmt.Println()
				}

				settings["client_id"] = clientID
				settings["client_secret"] = clientSecret
				viper.Set("client_id", clientID)
				viper.Set("client_secret", clientSecret)
			}

			// Verify the credentials before persisting them
			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.GetToken(context.Background())
			if err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}

			err = persistSettings(settings)
			if err != nil {
				return err
			}

			fmt.Println("Successfully authenticated")

			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth client ID")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth client secret")
	cmd.Flags().BoolVar(&developerToken, "developer-token", false, "authenticate with a developer token")
	cmd.Flags().StringVar(&host, "host", "", "instance domain for developer-token mode")

	return cmd
}

func newAuthTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the current access token",
		Long:  "Exchange the configured credentials for an access token and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			token, err := client.GetToken(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get token: %w", err)
			}

			fmt.Println(token)

			return nil
		},
	}
}

// persistSettings merges settings into ~/.domo/config.yml, creating the
// file when absent.
func persistSettings(settings map[string]string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".domo")

	err = os.MkdirAll(configDir, 0o700)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	existing := map[string]interface{}{}

	data, err := os.ReadFile(configPath)
	if err == nil {
		_ = yaml.Unmarshal(data, &existing)
	}

	for key, value := range settings {
		existing[key] = value
	}

	out, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(configPath, out, 0o600)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
