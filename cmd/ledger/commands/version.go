package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
)

// VersionInfo describes the CLI build.
type VersionInfo struct {
	Version    string `json:"version"     yaml:"version"`
	Commit     string `json:"commit"      yaml:"commit"`
	Built      string `json:"built"       yaml:"built"`
	SDKVersion string `json:"sdk_version" yaml:"sdk_version"`
	GoVersion  string `json:"go_version"  yaml:"go_version"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the ledger CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := VersionInfo{
				Version:    version,
				Commit:     commit,
				Built:      date,
				SDKVersion: constants.SDKVersion,
				GoVersion:  runtime.Version(),
			}

			return renderOutput(cmd, versionInfo, func(w io.Writer) error {
				table := tablewriter.NewWriter(w)
				table.Header("Property", "Value")
				_ = table.Append("Version", versionInfo.Version)
				_ = table.Append("Commit", versionInfo.Commit)
				_ = table.Append("Built", versionInfo.Built)
				_ = table.Append("SDK Version", versionInfo.SDKVersion)
				_ = table.Append("Go Version", versionInfo.GoVersion)

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
