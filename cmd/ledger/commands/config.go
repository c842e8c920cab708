package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// Configuration keys shared by the config file, flags and LEDGER_*
// environment variables.
const (
	ConfigKeyEnvironment     = "environment"
	ConfigKeyBaseURL         = "base_url"
	ConfigKeyAPIKey          = "api_key"
	ConfigKeyBearerToken     = "bearer_token"
	ConfigKeyApplicationName = "application_name"
	ConfigKeyOutput          = "output"
)

const minimumSetArgs = 2

// Config represents the CLI configuration.
type Config struct {
	Environment     string `json:"environment,omitempty"      yaml:"environment,omitempty"`
	BaseURL         string `json:"base_url,omitempty"         yaml:"base_url,omitempty"`
	APIKey          string `json:"api_key,omitempty"          yaml:"api_key,omitempty"`
	BearerToken     string `json:"bearer_token,omitempty"     yaml:"bearer_token,omitempty"`
	ApplicationName string `json:"application_name,omitempty" yaml:"application_name,omitempty"`
	Output          string `json:"output,omitempty"           yaml:"output,omitempty"`
}

// field returns a pointer to the field stored under key.
func (c *Config) field(key string) (*string, error) {
	switch key {
	case ConfigKeyEnvironment:
		return &c.Environment, nil
	case ConfigKeyBaseURL:
		return &c.BaseURL, nil
	case ConfigKeyAPIKey:
		return &c.APIKey, nil
	case ConfigKeyBearerToken:
		return &c.BearerToken, nil
	case ConfigKeyApplicationName:
		return &c.ApplicationName, nil
	case ConfigKeyOutput:
		return &c.Output, nil
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}
}

// Masked returns a copy of the configuration with secrets replaced.
func (c *Config) Masked() *Config {
	masked := *c

	if masked.APIKey != "" {
		masked.APIKey = constants.MaskedSecret
	}

	if masked.BearerToken != "" {
		masked.BearerToken = constants.MaskedSecret
	}

	return &masked
}

// loadConfig returns the effective configuration: flags, then LEDGER_*
// environment variables, then the config file.
func loadConfig() *Config {
	return &Config{
		Environment:     viper.GetString(ConfigKeyEnvironment),
		BaseURL:         viper.GetString(ConfigKeyBaseURL),
		APIKey:          viper.GetString(ConfigKeyAPIKey),
		BearerToken:     viper.GetString(ConfigKeyBearerToken),
		ApplicationName: viper.GetString(ConfigKeyApplicationName),
		Output:          viper.GetString(ConfigKeyOutput),
	}
}

// configFilePath returns the config file in use, or the default location.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".ledger", "config.yml"), nil
}

// readConfigFile reads only what is persisted, so values from flags and the
// environment are never written back. A missing file yields an empty config.
func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	// path is the user's own config file
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigStruct(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// updateConfigFile applies update to the persisted configuration and keeps
// viper in sync for the rest of the process.
func updateConfigFile(update func(*Config) error) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	config, err := readConfigFile(path)
	if err != nil {
		return err
	}

	err = update(config)
	if err != nil {
		return err
	}

	err = saveConfigStruct(path, config)
	if err != nil {
		return err
	}

	viper.Set(ConfigKeyEnvironment, config.Environment)
	viper.Set(ConfigKeyBaseURL, config.BaseURL)
	viper.Set(ConfigKeyAPIKey, config.APIKey)
	viper.Set(ConfigKeyBearerToken, config.BearerToken)
	viper.Set(ConfigKeyApplicationName, config.ApplicationName)

	if config.Output != "" {
		viper.Set(ConfigKeyOutput, config.Output)
	}

	return nil
}

func validateConfigValue(key, value string) error {
	switch key {
	case ConfigKeyEnvironment:
		if value != ledger.EnvironmentSandbox && value != ledger.EnvironmentProduction {
			return constants.ErrInvalidEnvironment
		}
	case ConfigKeyOutput:
		if value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
			return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, value)
		}
	}

	return nil
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the ledger CLI config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().Masked()

			return renderOutput(cmd, config, func(w io.Writer) error {
				return displayConfigTable(w, config)
			})
		},
	}
}

func displayConfigTable(w io.Writer, config *Config) error {
	values := map[string]string{
		ConfigKeyEnvironment:     config.Environment,
		ConfigKeyBaseURL:         config.BaseURL,
		ConfigKeyAPIKey:          config.APIKey,
		ConfigKeyBearerToken:     config.BearerToken,
		ConfigKeyApplicationName: config.ApplicationName,
		ConfigKeyOutput:          config.Output,
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.Header("Key", "Value")

	for _, key := range keys {
		_ = table.Append(key, valueOrNA(values[key]))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

Keys: environment, base_url, api_key, bearer_token, application_name, output`,
		Args: cobra.ExactArgs(minimumSetArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			err := validateConfigValue(key, value)
			if err != nil {
				return err
			}

			err = updateConfigFile(func(config *Config) error {
				field, err := config.field(key)
				if err != nil {
					return err
				}

				*field = value

				return nil
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			err := updateConfigFile(func(config *Config) error {
				field, err := config.field(key)
				if err != nil {
					return err
				}

				*field = ""

				return nil
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}
