package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// WebhooksClient implements ledger.WebhooksClient.
type WebhooksClient struct {
	*ResourceClient[ledger.WebhookModel]
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(transport ledger.Transport) *WebhooksClient {
	return &WebhooksClient{
		ResourceClient: NewResourceClient[ledger.WebhookModel](transport, constants.APIPathWebhooks, "webhook"),
	}
}

// Retrieve implements ledger.WebhooksClient.Retrieve. Webhooks have no
// related collections to include.
func (c *WebhooksClient) Retrieve(ctx context.Context, id uuid.UUID) (*ledger.Envelope[ledger.WebhookModel], error) {
	return c.ResourceClient.Retrieve(ctx, id, nil)
}

// RegenerateSecret implements ledger.WebhooksClient.RegenerateSecret. The new
// secret is only ever returned by this call.
func (c *WebhooksClient) RegenerateSecret(ctx context.Context, id uuid.UUID) (*ledger.Envelope[ledger.WebhookModel], error) {
	path := c.recordPath(id) + "/regenerateclientsecret"

	env, err := ledger.Send[ledger.WebhookModel](ctx, c.transport, http.MethodPatch, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("regenerating webhook secret: %w", err)
	}

	return env, nil
}
