package ledger

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryOptions holds the platform's list query conventions.
type QueryOptions struct {
	// Filter is a Searchlight filter expression, e.g. "companyName eq 'Acme'".
	Filter string
	// Include names related collections to embed, e.g. "Attachments".
	Include []string
	// Order is a sort expression, e.g. "invoiceDate desc".
	Order string
	// PageSize is the number of records per page. Zero uses the server default.
	PageSize int
	// PageNumber is the zero-based page index.
	PageNumber int
}

// NewQueryOptions creates empty query options.
func NewQueryOptions() *QueryOptions {
	return &QueryOptions{}
}

// WithFilter sets the filter expression.
func (q *QueryOptions) WithFilter(filter string) *QueryOptions {
	q.Filter = filter

	return q
}

// WithInclude appends include names.
func (q *QueryOptions) WithInclude(include ...string) *QueryOptions {
	q.Include = append(q.Include, include...)

	return q
}

// WithOrder sets the sort expression.
func (q *QueryOptions) WithOrder(order string) *QueryOptions {
	q.Order = order

	return q
}

// WithPageSize sets the page size.
func (q *QueryOptions) WithPageSize(size int) *QueryOptions {
	q.PageSize = size

	return q
}

// WithPageNumber sets the page index.
func (q *QueryOptions) WithPageNumber(page int) *QueryOptions {
	q.PageNumber = page

	return q
}

// ToValues converts the options to URL query values. Zero values are omitted.
func (q *QueryOptions) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Filter != "" {
		values.Set("filter", q.Filter)
	}

	if len(q.Include) > 0 {
		values.Set("include", strings.Join(q.Include, ","))
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}

	if q.PageNumber > 0 {
		values.Set("pageNumber", strconv.Itoa(q.PageNumber))
	}

	return values
}

// IncludeValues builds the query for single-record retrieval.
func IncludeValues(include []string) url.Values {
	values := url.Values{}
	if len(include) > 0 {
		values.Set("include", strings.Join(include, ","))
	}

	return values
}

// FetchResult is one page of a query.
type FetchResult[T any] struct {
	Records    []T `json:"records"    yaml:"records"`
	TotalCount int `json:"totalCount" yaml:"total_count"`
	PageSize   int `json:"pageSize"   yaml:"page_size"`
	PageNumber int `json:"pageNumber" yaml:"page_number"`
}
