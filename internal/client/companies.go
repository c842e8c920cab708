package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// CompaniesClient implements ledger.CompaniesClient.
type CompaniesClient struct {
	*ResourceClient[ledger.CompanyModel]
}

// NewCompaniesClient creates a new companies client.
func NewCompaniesClient(transport ledger.Transport) *CompaniesClient {
	return &CompaniesClient{
		ResourceClient: NewResourceClient[ledger.CompanyModel](transport, constants.APIPathCompanies, "company"),
	}
}

// SetLogo implements ledger.CompaniesClient.SetLogo.
func (c *CompaniesClient) SetLogo(ctx context.Context, id uuid.UUID, filename string) (*ledger.Envelope[ledger.CompanyModel], error) {
	path := c.recordPath(id) + "/logo"

	env, err := ledger.Upload[ledger.CompanyModel](ctx, c.transport, http.MethodPost, path, nil, filename)
	if err != nil {
		return nil, fmt.Errorf("setting company logo: %w", err)
	}

	return env, nil
}
