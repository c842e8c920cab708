package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// PaymentsClient implements ledger.PaymentsClient.
type PaymentsClient struct {
	*ResourceClient[ledger.PaymentModel]
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(transport ledger.Transport) *PaymentsClient {
	return &PaymentsClient{
		ResourceClient: NewResourceClient[ledger.PaymentModel](transport, constants.APIPathPayments, "payment"),
	}
}

// RetrievePDF implements ledger.PaymentsClient.RetrievePDF.
func (c *PaymentsClient) RetrievePDF(ctx context.Context, id uuid.UUID) (*ledger.Envelope[ledger.Blob], error) {
	env, err := ledger.Download(ctx, c.transport, http.MethodGet, c.recordPath(id)+"/pdf", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("retrieving payment PDF: %w", err)
	}

	return env, nil
}
