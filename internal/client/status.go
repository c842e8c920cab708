package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// StatusClient implements ledger.StatusClient.
type StatusClient struct {
	transport ledger.Transport
}

// NewStatusClient creates a new status client.
func NewStatusClient(transport ledger.Transport) *StatusClient {
	return &StatusClient{
		transport: transport,
	}
}

// Ping implements ledger.StatusClient.Ping.
func (c *StatusClient) Ping(ctx context.Context) (*ledger.Envelope[ledger.StatusModel], error) {
	env, err := ledger.Send[ledger.StatusModel](ctx, c.transport, http.MethodGet, constants.APIPathStatus, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("pinging API: %w", err)
	}

	return env, nil
}
