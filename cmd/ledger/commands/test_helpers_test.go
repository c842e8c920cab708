package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupViper resets the global configuration, points it at a config file in
// a temporary directory and applies settings. It returns the config path.
func setupViper(t *testing.T, settings map[string]string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)

	for key, value := range settings {
		viper.Set(key, value)
	}

	return configFile
}

// executeCommand runs cmd with args and returns everything written to its
// output.
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return buf.String(), err
}

// writeJSON writes payload with the given status.
func writeJSON(writer http.ResponseWriter, status int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if payload != nil {
		_ = json.NewEncoder(writer).Encode(payload)
	}
}
