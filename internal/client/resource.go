package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// ResourceClient provides the operations shared by every record collection
// on the platform. Resource-specific clients embed it and add their own
// endpoints.
type ResourceClient[T any] struct {
	transport    ledger.Transport
	resourcePath string
	resourceName string
}

// NewResourceClient creates a generic client for the collection at
// resourcePath. resourceName is used in error messages.
func NewResourceClient[T any](transport ledger.Transport, resourcePath, resourceName string) *ResourceClient[T] {
	return &ResourceClient[T]{
		transport:    transport,
		resourcePath: resourcePath,
		resourceName: resourceName,
	}
}

func (c *ResourceClient[T]) recordPath(id uuid.UUID) string {
	return c.resourcePath + "/" + id.String()
}

// Retrieve fetches a single record, optionally embedding related collections.
func (c *ResourceClient[T]) Retrieve(ctx context.Context, id uuid.UUID, include []string) (*ledger.Envelope[T], error) {
	env, err := ledger.Send[T](ctx, c.transport, http.MethodGet, c.recordPath(id), ledger.IncludeValues(include), nil)
	if err != nil {
		return nil, fmt.Errorf("retrieving %s: %w", c.resourceName, err)
	}

	return env, nil
}

// Update applies a partial update. Only the fields present in patch change.
func (c *ResourceClient[T]) Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*ledger.Envelope[T], error) {
	env, err := ledger.Send[T](ctx, c.transport, http.MethodPatch, c.recordPath(id), nil, patch)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", c.resourceName, err)
	}

	return env, nil
}

// Delete removes a record.
func (c *ResourceClient[T]) Delete(ctx context.Context, id uuid.UUID) (*ledger.Envelope[ledger.DeleteResult], error) {
	env, err := ledger.Send[ledger.DeleteResult](ctx, c.transport, http.MethodDelete, c.recordPath(id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting %s: %w", c.resourceName, err)
	}

	return env, nil
}

// Create posts one or more records and returns them as stored.
func (c *ResourceClient[T]) Create(ctx context.Context, records []T) (*ledger.Envelope[[]T], error) {
	if records == nil {
		records = []T{}
	}

	env, err := ledger.Send[[]T](ctx, c.transport, http.MethodPost, c.resourcePath, nil, records)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.resourceName, err)
	}

	return env, nil
}

// Query fetches one page of records matching opts.
func (c *ResourceClient[T]) Query(ctx context.Context, opts *ledger.QueryOptions) (*ledger.Envelope[ledger.FetchResult[T]], error) {
	env, err := ledger.Send[ledger.FetchResult[T]](ctx, c.transport, http.MethodGet, c.resourcePath+"/query", opts.ToValues(), nil)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", c.resourceName, err)
	}

	return env, nil
}

// QueryAll walks every page of a query.
func (c *ResourceClient[T]) QueryAll(ctx context.Context, opts *ledger.QueryOptions, pagination *ledger.PaginationOptions) ([]T, error) {
	records, err := ledger.FetchAllPages[T](ctx, c.Query, opts, pagination)
	if err != nil {
		return records, fmt.Errorf("querying all %s: %w", c.resourceName, err)
	}

	return records, nil
}
