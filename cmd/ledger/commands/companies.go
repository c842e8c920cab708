package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// NewCompaniesCommand creates the companies command group.
func NewCompaniesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "companies",
		Aliases: []string{"company"},
		Short:   "Manage companies",
		Long:    "List and inspect companies, including customers and vendors",
	}

	cmd.AddCommand(newCompaniesListCommand())
	cmd.AddCommand(newCompaniesGetCommand())

	return cmd
}

// listFlags are the query flags shared by list commands.
type listFlags struct {
	filter   string
	order    string
	include  []string
	perPage  int
	page     int
	allPages bool
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.filter, "filter", "", "search filter, e.g. \"companyName eq 'Acme'\"")
	cmd.Flags().StringVar(&f.order, "order", "", "sort order, e.g. \"created desc\"")
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "related collections to include")
	cmd.Flags().IntVar(&f.perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&f.page, "page", 0, "page number, starting at 0")
	cmd.Flags().BoolVar(&f.allPages, "all", false, "fetch all pages")
}

func (f *listFlags) queryOptions() *ledger.QueryOptions {
	return ledger.NewQueryOptions().
		WithFilter(f.filter).
		WithOrder(f.order).
		WithInclude(f.include...).
		WithPageSize(f.perPage).
		WithPageNumber(f.page)
}

// listRecords fetches one page, or every page when --all is set.
func listRecords[T any](cmd *cobra.Command, flags *listFlags, query ledger.PageFunc[T],
	queryAll func(*ledger.QueryOptions) ([]T, error),
) ([]T, int, error) {
	opts := flags.queryOptions()

	if flags.allPages {
		records, err := queryAll(opts)
		if err != nil {
			return nil, 0, err
		}

		return records, len(records), nil
	}

	env, err := query(cmd.Context(), opts)
	if err != nil {
		return nil, 0, err
	}

	err = checkEnvelope(env)
	if err != nil {
		return nil, 0, err
	}

	return env.Value.Records, env.Value.TotalCount, nil
}

func writePageHint(w io.Writer, shown, total int, allPages bool) {
	if !allPages && total > shown {
		_, _ = fmt.Fprintf(w, "\nShowing %d of %d. Use --all to fetch all pages.\n", shown, total)
	}
}

func newCompaniesListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Long:  "List companies matching an optional filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newLedgerClient(cmd.Context(), constants.DefaultHTTPTimeout)
			if err != nil {
				return err
			}

			companies := client.Companies()

			records, total, err := listRecords[ledger.CompanyModel](cmd, flags, companies.Query, func(opts *ledger.QueryOptions) ([]ledger.CompanyModel, error) {
				return companies.QueryAll(cmd.Context(), opts, ledger.DefaultPaginationOptions())
			})
			if err != nil {
				return fmt.Errorf("failed to list companies: %w", err)
			}

			return renderOutput(cmd, records, func(w io.Writer) error {
				return renderCompaniesTable(w, records, total, flags.allPages)
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func renderCompaniesTable(w io.Writer, companies []ledger.CompanyModel, total int, allPages bool) error {
	if len(companies) == 0 {
		_, _ = io.WriteString(w, "No companies found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Name", "ID", "Type", "Status", "Country", "Created")

	for _, company := range companies {
		_ = table.Append(company.CompanyName, company.CompanyID.String(),
			valueOrNA(company.CompanyType),
			valueOrNA(company.CompanyStatus),
			valueOrNA(company.Country),
			formatDate(company.Created))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	writePageHint(w, len(companies), total, allPages)

	return nil
}

func newCompaniesGetCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "get COMPANY_ID",
		Short: "Get company details",
		Long:  "Display detailed information about a specific company",
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

			env, err := client.Companies().Retrieve(cmd.Context(), id, include)
			if err != nil {
				return fmt.Errorf("failed to get company: %w", err)
			}

			err = checkEnvelope(env)
			if err != nil {
				return err
			}

			return renderOutput(cmd, env.Value, func(w io.Writer) error {
				return renderCompanyDetails(w, env.Value)
			})
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "related collections to include, e.g. Contacts")

	return cmd
}

func renderCompanyDetails(w io.Writer, company *ledger.CompanyModel) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	_ = table.Append("Name", company.CompanyName)
	_ = table.Append("ID", company.CompanyID.String())
	_ = table.Append("Type", valueOrNA(company.CompanyType))
	_ = table.Append("Status", valueOrNA(company.CompanyStatus))
	_ = table.Append("Active", formatBool(company.IsActive))
	_ = table.Append("Currency", valueOrNA(company.DefaultCurrencyCode))
	_ = table.Append("City", valueOrNA(company.City))
	_ = table.Append("Country", valueOrNA(company.Country))
	_ = table.Append("Phone", valueOrNA(company.PhoneNumber))
	_ = table.Append("Contacts", fmt.Sprintf("%d", len(company.Contacts)))
	_ = table.Append("Created", formatDate(company.Created))
	_ = table.Append("Modified", formatDate(company.Modified))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
