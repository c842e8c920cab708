package ledger

import (
	"context"
	"fmt"
)

// DefaultPageSize is used by FetchAllPages when the query sets none.
const DefaultPageSize = 200

// PageFunc fetches one page of records.
type PageFunc[T any] func(ctx context.Context, opts *QueryOptions) (*Envelope[FetchResult[T]], error)

// PaginationOptions bounds FetchAllPages.
type PaginationOptions struct {
	// MaxPages stops the walk after this many pages. Zero means no limit.
	MaxPages int
}

// DefaultPaginationOptions returns options with no page limit.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// FetchAllPages walks pages starting at opts.PageNumber until every record
// the server reports in TotalCount has been seen or an empty page arrives.
// Without a TotalCount a page shorter than the page size also ends the walk;
// the server's reported PageSize is preferred over the requested one, so a
// server that caps page sizes is still walked to the end. A non-2xx page
// stops the walk and its ErrorResult is returned as the error, together with
// the records gathered so far. opts is not modified.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T], opts *QueryOptions, pagination *PaginationOptions) ([]T, error) {
	query := QueryOptions{}
	if opts != nil {
		query = *opts
		query.Include = append([]string(nil), opts.Include...)
	}

	if query.PageSize <= 0 {
		query.PageSize = DefaultPageSize
	}

	if pagination == nil {
		pagination = DefaultPaginationOptions()
	}

	var (
		all     []T
		skipped = -1
	)

	for pages := 0; ; pages++ {
		if pagination.MaxPages > 0 && pages >= pagination.MaxPages {
			return all, fmt.Errorf("%w: %d pages", ErrPageLimitReached, pagination.MaxPages)
		}

		err := ctx.Err()
		if err != nil {
			return all, fmt.Errorf("fetching page %d: %w", query.PageNumber, err)
		}

		env, err := fetch(ctx, &query)
		if err != nil {
			return all, fmt.Errorf("fetching page %d: %w", query.PageNumber, err)
		}

		if !env.Success {
			return all, env.Err()
		}

		page := env.Value
		all = append(all, page.Records...)

		if len(page.Records) == 0 {
			return all, nil
		}

		pageSize := query.PageSize
		if page.PageSize > 0 {
			pageSize = page.PageSize
		}

		// records before the starting page count towards TotalCount
		if skipped < 0 {
			skipped = query.PageNumber * pageSize
		}

		if page.TotalCount > 0 {
			if skipped+len(all) >= page.TotalCount {
				return all, nil
			}
		} else if len(page.Records) < pageSize {
			return all, nil
		}

		query.PageNumber++
	}
}
