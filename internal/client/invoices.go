package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// InvoicesClient implements ledger.InvoicesClient.
type InvoicesClient struct {
	*ResourceClient[ledger.InvoiceModel]
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(transport ledger.Transport) *InvoicesClient {
	return &InvoicesClient{
		ResourceClient: NewResourceClient[ledger.InvoiceModel](transport, constants.APIPathInvoices, "invoice"),
	}
}

// RetrievePDF implements ledger.InvoicesClient.RetrievePDF.
func (c *InvoicesClient) RetrievePDF(ctx context.Context, id uuid.UUID) (*ledger.Envelope[ledger.Blob], error) {
	env, err := ledger.Download(ctx, c.transport, http.MethodGet, c.recordPath(id)+"/pdf", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieving invoice PDF: %w", err)
	}

	return env, nil
}
