package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/ledger-client/cmd/ledger/commands"
	"github.com/fivetwenty-io/ledger-client/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Accounting platform API CLI",
	Long: `A command-line interface for the accounting platform API.

Query companies and invoices, download invoice PDFs, manage attachments
and submit sync files from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.ledger/config.yml)")
	rootCmd.PersistentFlags().StringP("env", "e", "", "environment (sbx, prd)")
	rootCmd.PersistentFlags().String("base-url", "", "custom API base URL, overrides --env")
	rootCmd.PersistentFlags().String("api-key", "", "API key")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output, logs every request")

	// Bind flags to viper
	_ = viper.BindPFlag(commands.ConfigKeyEnvironment, rootCmd.PersistentFlags().Lookup("env"))
	_ = viper.BindPFlag(commands.ConfigKeyBaseURL, rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag(commands.ConfigKeyAPIKey, rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag(commands.ConfigKeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewStatusCommand())
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewCompaniesCommand())
	rootCmd.AddCommand(commands.NewInvoicesCommand())
	rootCmd.AddCommand(commands.NewAttachmentsCommand())
	rootCmd.AddCommand(commands.NewSyncCommand())
}

func initConfig() {
	// Credentials in a local .env file are picked up as LEDGER_* variables
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".ledger")

		// Search config in ~/.ledger/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("LEDGER")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	err = viper.ReadInConfig()
	if err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
