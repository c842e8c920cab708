package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

const amountPlaces = 2

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage invoices",
		Long:    "List and inspect invoices and download them as PDF",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesPDFCommand())

	return cmd
}

func formatAmount(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(amountPlaces)
	}

	return amount.StringFixed(amountPlaces) + " " + currency
}

func newInvoicesListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long:  "List invoices matching an optional filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newLedgerClient(cmd.Context(), constants.DefaultHTTPTimeout)
			if err != nil {
				return err
			}

			invoices := client.Invoices()

			records, total, err := listRecords[ledger.InvoiceModel](cmd, flags, invoices.Query, func(opts *ledger.QueryOptions) ([]ledger.InvoiceModel, error) {
				return invoices.QueryAll(cmd.Context(), opts, ledger.DefaultPaginationOptions())
			})
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			return renderOutput(cmd, records, func(w io.Writer) error {
				return renderInvoicesTable(w, records, total, flags.allPages)
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func renderInvoicesTable(w io.Writer, invoices []ledger.InvoiceModel, total int, allPages bool) error {
	if len(invoices) == 0 {
		_, _ = io.WriteString(w, "No invoices found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Reference", "ID", "Status", "Invoice Date", "Due", "Total", "Outstanding")

	for _, invoice := range invoices {
		_ = table.Append(valueOrNA(invoice.ReferenceCode), invoice.InvoiceID.String(),
			valueOrNA(invoice.InvoiceStatusCode),
			valueOrNA(invoice.InvoiceDate),
			valueOrNA(invoice.PaymentDueDate),
			formatAmount(invoice.TotalAmount, invoice.CurrencyCode),
			formatAmount(invoice.OutstandingBalanceAmount, invoice.CurrencyCode))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	writePageHint(w, len(invoices), total, allPages)

	return nil
}

func newInvoicesGetCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Get invoice details",
		Long:  "Display detailed information about a specific invoice",
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

			env, err := client.Invoices().Retrieve(cmd.Context(), id, include)
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			return renderOutput(cmd, env.Value, func(w io.Writer) error {
				return renderInvoiceDetails(w, env.Value)
			})
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "related collections to include, e.g. Lines")

	return cmd
}

func renderInvoiceDetails(w io.Writer, invoice *ledger.InvoiceModel) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	_ = table.Append("ID", invoice.InvoiceID.String())
	_ = table.Append("Reference", valueOrNA(invoice.ReferenceCode))
	_ = table.Append("Type", valueOrNA(invoice.InvoiceTypeCode))
	_ = table.Append("Status", valueOrNA(invoice.InvoiceStatusCode))
	_ = table.Append("Customer", invoice.CustomerID.String())
	_ = table.Append("Invoice Date", valueOrNA(invoice.InvoiceDate))
	_ = table.Append("Due Date", valueOrNA(invoice.PaymentDueDate))
	_ = table.Append("Total", formatAmount(invoice.TotalAmount, invoice.CurrencyCode))
	_ = table.Append("Tax", formatAmount(invoice.SalesTaxAmount, invoice.CurrencyCode))
	_ = table.Append("Outstanding", formatAmount(invoice.OutstandingBalanceAmount, invoice.CurrencyCode))
	_ = table.Append("Voided", formatBool(invoice.IsVoided))
	_ = table.Append("In Dispute", formatBool(invoice.InDispute))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if len(invoice.Lines) == 0 {
		return nil
	}

	_, _ = io.WriteString(w, "\nLines:\n")

	lines := tablewriter.NewWriter(w)
	lines.Header("Line", "Product", "Description", "Quantity", "Unit Price", "Total")

	for _, line := range invoice.Lines {
		_ = lines.Append(valueOrNA(line.LineNumber), valueOrNA(line.ProductCode),
			valueOrNA(line.Description),
			line.Quantity.String(),
			line.UnitPrice.StringFixed(amountPlaces),
			line.TotalAmount.StringFixed(amountPlaces))
	}

	err = lines.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newInvoicesPDFCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "pdf INVOICE_ID",
		Short: "Download an invoice PDF",
		Long:  "Download the rendered PDF of an invoice to a local file",
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

			env, err := client.Invoices().RetrievePDF(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to download invoice PDF: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			if outputFile == "" {
				outputFile = "invoice-" + id.String() + ".pdf"
			}

			err = writeFile(outputFile, env.Value.Data)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(env.Value.Data), outputFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "file", "f", "", "destination file (default invoice-ID.pdf)")

	return cmd
}
