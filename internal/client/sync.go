package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// SyncClient implements ledger.SyncClient.
type SyncClient struct {
	*ResourceClient[ledger.SyncRequestModel]
}

// NewSyncClient creates a new sync client.
func NewSyncClient(transport ledger.Transport) *SyncClient {
	return &SyncClient{
		ResourceClient: NewResourceClient[ledger.SyncRequestModel](transport, constants.APIPathSync, "sync request"),
	}
}

// Create implements ledger.SyncClient.Create.
func (c *SyncClient) Create(ctx context.Context, request *ledger.SyncSubmitModel) (*ledger.Envelope[ledger.SyncRequestModel], error) {
	env, err := ledger.Send[ledger.SyncRequestModel](ctx, c.transport, http.MethodPost, c.resourcePath, nil, request)
	if err != nil {
		return nil, fmt.Errorf("creating sync request: %w", err)
	}

	return env, nil
}

// UploadSyncFile implements ledger.SyncClient.UploadSyncFile. The file is a
// zip archive of CSV tables.
func (c *SyncClient) UploadSyncFile(ctx context.Context, filename string) (*ledger.Envelope[ledger.SyncRequestModel], error) {
	env, err := ledger.Upload[ledger.SyncRequestModel](ctx, c.transport, http.MethodPost, c.resourcePath+"/zip", nil, filename)
	if err != nil {
		return nil, fmt.Errorf("uploading sync file: %w", err)
	}

	return env, nil
}
