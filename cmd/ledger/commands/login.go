package commands

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify an API key against the platform and save it to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString(ConfigKeyAPIKey)
			}

			if apiKey == "" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), "API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.OutOrStdout())

				apiKey = strings.TrimSpace(string(byteKey))
			}

			if apiKey == "" {
				return constants.ErrAPIKeyRequired
			}

			config := loadConfig()
			config.APIKey = apiKey
			config.BearerToken = ""

			client, err := createClient(cmd.Context(), config, constants.DefaultHTTPTimeout)
			if err != nil {
				return err
			}

			env, err := client.Status().Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to connect to API: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			if !env.Value.LoggedIn {
				return fmt.Errorf("%w: %s", constants.ErrNotLoggedIn, env.Value.ErrorMessage)
			}

			err = updateConfigFile(func(persisted *Config) error {
				persisted.APIKey = apiKey
				persisted.BearerToken = ""

				if config.Environment != "" {
					persisted.Environment = config.Environment
				}

				if config.BaseURL != "" {
					persisted.BaseURL = config.BaseURL
				}

				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n",
				valueOrNA(env.Value.UserName), valueOrNA(env.Value.AccountName))

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted for when omitted)")

	return cmd
}
