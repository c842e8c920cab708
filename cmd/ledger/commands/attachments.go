package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// NewAttachmentsCommand creates the attachments command group.
func NewAttachmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attachments",
		Aliases: []string{"attachment", "att"},
		Short:   "Manage attachments",
		Long:    "Upload files to records and download stored attachments",
	}

	cmd.AddCommand(newAttachmentsUploadCommand())
	cmd.AddCommand(newAttachmentsDownloadCommand())

	return cmd
}

func newAttachmentsUploadCommand() *cobra.Command {
	var (
		tableName string
		objectID  string
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload an attachment",
		Long:  "Attach a local file to a record, e.g. --table Invoices --object-id <invoice id>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableName == "" {
				return constants.ErrTableNameRequired
			}

			id, err := parseID(objectID)
			if err != nil {
				return err
			}

			client, err := newLedgerClient(cmd.Context(), constants.ExtendedHTTPTimeout)
			if err != nil {
				return err
			}

			env, err := client.Attachments().Upload(cmd.Context(), tableName, id, args[0])
			if err != nil {
				return fmt.Errorf("failed to upload attachment: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			attachments := *env.Value

			return renderOutput(cmd, attachments, func(w io.Writer) error {
				return renderAttachmentsTable(w, attachments)
			})
		},
	}

	cmd.Flags().StringVar(&tableName, "table", "", "table the record belongs to, e.g. Invoices")
	cmd.Flags().StringVar(&objectID, "object-id", "", "id of the record to attach to")

	return cmd
}

func renderAttachmentsTable(w io.Writer, attachments []ledger.AttachmentModel) error {
	if len(attachments) == 0 {
		_, _ = io.WriteString(w, "No attachments found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("File", "ID", "Table", "Object", "Type", "Created")

	for _, attachment := range attachments {
		objectKey := constants.NotAvailable
		if attachment.ObjectKey != uuid.Nil {
			objectKey = attachment.ObjectKey.String()
		}

		_ = table.Append(valueOrNA(attachment.FileName), attachment.AttachmentID.String(),
			valueOrNA(attachment.TableKey),
			objectKey,
			valueOrNA(attachment.AttachmentType),
			formatDate(attachment.Created))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newAttachmentsDownloadCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "download ATTACHMENT_ID",
		Short: "Download an attachment",
		Long:  "Download the file content of an attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := newLedgerClient(cmd.Context(), constants.ExtendedHTTPTimeout)
			if err != nil {
				return err
			}

			if outputFile == "" {
				outputFile, err = attachmentFileName(cmd, client, id)
				if err != nil {
					return err
				}
			}

			env, err := client.Attachments().Download(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to download attachment: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			err = writeFile(outputFile, env.Value.Data)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(env.Value.Data), outputFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "destination file (default is the stored file name)")

	return cmd
}

// attachmentFileName looks up the stored file name of an attachment.
func attachmentFileName(cmd *cobra.Command, client ledger.Client, id uuid.UUID) (string, error) {
	env, err := client.Attachments().Retrieve(cmd.Context(), id, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get attachment: %w", err)
	}

	err = checkEnvelope(env)
	if err != nil {
		return "", err
	}

	if env.Value.FileName == "" {
		return id.String(), nil
	}

	return filepath.Base(env.Value.FileName), nil
}
