package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"ping"},
		Short:   "Check the connection and credentials",
		Long:    "Ping the API and display the account and user the credentials belong to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newLedgerClient(cmd.Context(), constants.DefaultHTTPTimeout)
			if err != nil {
				return err
			}

			env, err := client.Status().Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to ping API: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			return renderOutput(cmd, env.Value, func(w io.Writer) error {
				return renderStatusTable(w, env.Value)
			})
		},
	}
}

func renderStatusTable(w io.Writer, status *ledger.StatusModel) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	_ = table.Append("Logged In", formatBool(status.LoggedIn))
	_ = table.Append("User", valueOrNA(status.UserName))
	_ = table.Append("Account", valueOrNA(status.AccountName))
	_ = table.Append("Roles", valueOrNA(strings.Join(status.Roles, ", ")))
	_ = table.Append("Environment", valueOrNA(status.Environment))
	_ = table.Append("API Version", valueOrNA(status.Version))

	if status.ErrorMessage != "" {
		_ = table.Append("Error", status.ErrorMessage)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
