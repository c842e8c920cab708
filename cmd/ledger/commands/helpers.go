package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/internal/logging"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
	"github.com/fivetwenty-io/ledger-client/pkg/ledgerclient"
)

const (
	defaultJSONIndent = 2
	dateLayout        = "2006-01-02"
)

// StandardJSONRenderer writes data to w as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data to w as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// renderOutput writes data in the configured output format. renderTable is
// used for the table format.
func renderOutput[T any](cmd *cobra.Command, data T, renderTable func(io.Writer) error) error {
	w := cmd.OutOrStdout()

	output := viper.GetString(ConfigKeyOutput)
	switch output {
	case constants.FormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.FormatYAML:
		return StandardYAMLRenderer(w, data)
	case constants.FormatTable, "":
		return renderTable(w)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, output)
	}
}

// parseID parses a record id argument.
func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", constants.ErrInvalidID, arg)
	}

	return id, nil
}

// checkEnvelope turns an unsuccessful envelope into an error.
func checkEnvelope[T any](env *ledger.Envelope[T]) error {
	if env.Success {
		return nil
	}

	return fmt.Errorf("%w (status %d): %w", constants.ErrRequestFailed, env.StatusCode, env.Err())
}

// newLedgerClient creates an authenticated client from the effective
// configuration.
func newLedgerClient(ctx context.Context, timeout time.Duration) (ledger.Client, error) {
	config := loadConfig()
	if config.APIKey == "" && config.BearerToken == "" {
		return nil, constants.ErrNoCredentials
	}

	return createClient(ctx, config, timeout)
}

func createClient(ctx context.Context, config *Config, timeout time.Duration) (ledger.Client, error) {
	verbose := viper.GetBool("verbose")

	level := "warn"
	if verbose {
		level = "debug"
	}

	client, err := ledgerclient.New(ctx, &ledger.Config{
		Environment:     config.Environment,
		BaseURL:         config.BaseURL,
		APIKey:          config.APIKey,
		BearerToken:     config.BearerToken,
		ApplicationName: config.ApplicationName,
		HTTPTimeout:     timeout,
		Debug:           verbose,
		Logger:          logging.NewAdapter(logging.New(level, os.Stderr)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// valueOrNA returns NotAvailable for empty strings.
func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatDate(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return t.Format(dateLayout)
}

func formatBool(value bool) string {
	if value {
		return constants.BooleanTrue
	}

	return constants.BooleanFalse
}

// writeFile saves downloaded content to path.
func writeFile(path string, data []byte) error {
	err := os.WriteFile(path, data, constants.DownloadFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
