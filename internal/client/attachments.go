package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// AttachmentsClient implements ledger.AttachmentsClient.
type AttachmentsClient struct {
	*ResourceClient[ledger.AttachmentModel]
}

// NewAttachmentsClient creates a new attachments client.
func NewAttachmentsClient(transport ledger.Transport) *AttachmentsClient {
	return &AttachmentsClient{
		ResourceClient: NewResourceClient[ledger.AttachmentModel](transport, constants.APIPathAttachments, "attachment"),
	}
}

// Archive implements ledger.AttachmentsClient.Archive. The platform keeps
// archived attachments but hides them from queries.
func (c *AttachmentsClient) Archive(ctx context.Context, id uuid.UUID) (*ledger.Envelope[ledger.DeleteResult], error) {
	env, err := ledger.Send[ledger.DeleteResult](ctx, c.transport, http.MethodDelete, c.recordPath(id), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("archiving attachment: %w", err)
	}

	return env, nil
}

// Upload implements ledger.AttachmentsClient.Upload.
func (c *AttachmentsClient) Upload(ctx context.Context, tableName string, objectID uuid.UUID, filename string) (*ledger.Envelope[[]ledger.AttachmentModel], error) {
	query := url.Values{}
	query.Set("tableName", tableName)
	query.Set("objectId", objectID.String())

	env, err := ledger.Upload[[]ledger.AttachmentModel](ctx, c.transport, http.MethodPost, c.resourcePath, query, filename)
	if err != nil {
		return nil, fmt.Errorf("uploading attachment: %w", err)
	}

	return env, nil
}

// Download implements ledger.AttachmentsClient.Download.
func (c *AttachmentsClient) Download(ctx context.Context, id uuid.UUID) (*ledger.Envelope[ledger.Blob], error) {
	env, err := ledger.Download(ctx, c.transport, http.MethodGet, c.recordPath(id)+"/download-file", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading attachment: %w", err)
	}

	return env, nil
}
