package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// NewSyncCommand creates the sync command group.
func NewSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage sync requests",
		Long:  "Submit sync files and track the resulting sync requests",
	}

	cmd.AddCommand(newSyncUploadCommand())
	cmd.AddCommand(newSyncGetCommand())

	return cmd
}

func newSyncUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload ZIP_FILE",
		Short: "Upload a sync file",
		Long:  "Upload a zip of CSV files for import and start a sync request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newLedgerClient(cmd.Context(), constants.ExtendedHTTPTimeout)
			if err != nil {
				return err
			}

			env, err := client.Sync().UploadSyncFile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to upload sync file: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			return renderOutput(cmd, env.Value, func(w io.Writer) error {
				return renderSyncRequest(w, env.Value)
			})
		},
	}
}

func newSyncGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SYNC_REQUEST_ID",
		Short: "Get sync request status",
		Long:  "Display the status and result message of a sync request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newLedgerClient(cmd.Context(), constants.DefaultHTTPTimeout)
			if err != nil {
				return err
			}

			env, err := client.Sync().Retrieve(cmd.Context(), id, nil)
			if err != nil {
				return fmt.Errorf("failed to get sync request: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			return renderOutput(cmd, env.Value, func(w io.Writer) error {
				return renderSyncRequest(w, env.Value)
			})
		},
	}
}

func renderSyncRequest(w io.Writer, request *ledger.SyncRequestModel) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	_ = table.Append("ID", request.SyncRequestID.String())
	_ = table.Append("Status", valueOrNA(request.StatusCode))
	_ = table.Append("Message", valueOrNA(request.ProcessResultMessage))
	_ = table.Append("Created", formatDate(request.Created))
	_ = table.Append("Modified", formatDate(request.Modified))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
