package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Environment names accepted by ledgerclient.WithEnvironment.
const (
	EnvironmentSandbox    = "sbx"
	EnvironmentProduction = "prd"
)

// Base URLs for the known environments.
const (
	SandboxURL    = "https://api.sbx.lockstep.io/"
	ProductionURL = "https://api.lockstep.io/"
)

// Configurator holds the chainable credential and identity setters. Each
// returns the same client so calls can be chained.
type Configurator interface {
	// WithBearerToken authenticates with a JWT bearer token and clears any
	// API key.
	WithBearerToken(token string) Client
	// WithAPIKey authenticates with an API key and clears any bearer token.
	WithAPIKey(apiKey string) Client
	// WithApplicationName sends an ApplicationName header on every request.
	WithApplicationName(name string) Client
	// WithCustomHeaderFunc installs fn to rewrite headers before each
	// request. Nil removes it.
	WithCustomHeaderFunc(fn HeaderFunc) Client
}

// ResourceClients provides access to all resource-specific clients.
type ResourceClients interface {
	Status() StatusClient
	Companies() CompaniesClient
	Contacts() ContactsClient
	Invoices() InvoicesClient
	Payments() PaymentsClient
	Attachments() AttachmentsClient
	Webhooks() WebhooksClient
	Sync() SyncClient
}

// Client is the platform API client.
type Client interface {
	Configurator
	ResourceClients

	// BaseURL returns the URL all relative paths resolve against.
	BaseURL() string
	// Transport exposes the shared transport for calls that have no resource
	// client, via Send, Upload, and Download.
	Transport() Transport
}

// StatusClient reports on the API and the caller's credentials.
type StatusClient interface {
	Ping(ctx context.Context) (*Envelope[StatusModel], error)
}

// CompaniesClient manages companies.
type CompaniesClient interface {
	Retrieve(ctx context.Context, id uuid.UUID, include []string) (*Envelope[CompanyModel], error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*Envelope[CompanyModel], error)
	Delete(ctx context.Context, id uuid.UUID) (*Envelope[DeleteResult], error)
	Create(ctx context.Context, companies []CompanyModel) (*Envelope[[]CompanyModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Envelope[FetchResult[CompanyModel]], error)
	QueryAll(ctx context.Context, opts *QueryOptions, pagination *PaginationOptions) ([]CompanyModel, error)
	SetLogo(ctx context.Context, id uuid.UUID, filename string) (*Envelope[CompanyModel], error)
}

// ContactsClient manages contacts.
type ContactsClient interface {
	Retrieve(ctx context.Context, id uuid.UUID, include []string) (*Envelope[ContactModel], error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*Envelope[ContactModel], error)
	Delete(ctx context.Context, id uuid.UUID) (*Envelope[DeleteResult], error)
	Create(ctx context.Context, contacts []ContactModel) (*Envelope[[]ContactModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Envelope[FetchResult[ContactModel]], error)
	QueryAll(ctx context.Context, opts *QueryOptions, pagination *PaginationOptions) ([]ContactModel, error)
}

// InvoicesClient manages invoices.
type InvoicesClient interface {
	Retrieve(ctx context.Context, id uuid.UUID, include []string) (*Envelope[InvoiceModel], error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*Envelope[InvoiceModel], error)
	Delete(ctx context.Context, id uuid.UUID) (*Envelope[DeleteResult], error)
	Create(ctx context.Context, invoices []InvoiceModel) (*Envelope[[]InvoiceModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Envelope[FetchResult[InvoiceModel]], error)
	QueryAll(ctx context.Context, opts *QueryOptions, pagination *PaginationOptions) ([]InvoiceModel, error)
	RetrievePDF(ctx context.Context, id uuid.UUID) (*Envelope[Blob], error)
}

// PaymentsClient manages payments.
type PaymentsClient interface {
	Retrieve(ctx context.Context, id uuid.UUID, include []string) (*Envelope[PaymentModel], error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*Envelope[PaymentModel], error)
	Delete(ctx context.Context, id uuid.UUID) (*Envelope[DeleteResult], error)
	Create(ctx context.Context, payments []PaymentModel) (*Envelope[[]PaymentModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Envelope[FetchResult[PaymentModel]], error)
	QueryAll(ctx context.Context, opts *QueryOptions, pagination *PaginationOptions) ([]PaymentModel, error)
	RetrievePDF(ctx context.Context, id uuid.UUID) (*Envelope[Blob], error)
}

// AttachmentsClient manages file attachments.
type AttachmentsClient interface {
	Retrieve(ctx context.Context, id uuid.UUID, include []string) (*Envelope[AttachmentModel], error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*Envelope[AttachmentModel], error)
	Archive(ctx context.Context, id uuid.UUID) (*Envelope[DeleteResult], error)
	Query(ctx context.Context, opts *QueryOptions) (*Envelope[FetchResult[AttachmentModel]], error)
	QueryAll(ctx context.Context, opts *QueryOptions, pagination *PaginationOptions) ([]AttachmentModel, error)
	Upload(ctx context.Context, tableName string, objectID uuid.UUID, filename string) (*Envelope[[]AttachmentModel], error)
	Download(ctx context.Context, id uuid.UUID) (*Envelope[Blob], error)
}

// WebhooksClient manages webhook subscriptions.
type WebhooksClient interface {
	Retrieve(ctx context.Context, id uuid.UUID) (*Envelope[WebhookModel], error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*Envelope[WebhookModel], error)
	Delete(ctx context.Context, id uuid.UUID) (*Envelope[DeleteResult], error)
	Create(ctx context.Context, webhooks []WebhookModel) (*Envelope[[]WebhookModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Envelope[FetchResult[WebhookModel]], error)
	QueryAll(ctx context.Context, opts *QueryOptions, pagination *PaginationOptions) ([]WebhookModel, error)
	RegenerateSecret(ctx context.Context, id uuid.UUID) (*Envelope[WebhookModel], error)
}

// SyncClient starts and tracks data syncs.
type SyncClient interface {
	Create(ctx context.Context, request *SyncSubmitModel) (*Envelope[SyncRequestModel], error)
	UploadSyncFile(ctx context.Context, filename string) (*Envelope[SyncRequestModel], error)
	Update(ctx context.Context, id uuid.UUID, patch map[string]interface{}) (*Envelope[SyncRequestModel], error)
	Retrieve(ctx context.Context, id uuid.UUID, include []string) (*Envelope[SyncRequestModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Envelope[FetchResult[SyncRequestModel]], error)
	QueryAll(ctx context.Context, opts *QueryOptions, pagination *PaginationOptions) ([]SyncRequestModel, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for ledgerclient.New.
//
// # Base URL
//
// BaseURL, when set, is used as-is (see ledgerclient.WithCustomURL).
// Otherwise Environment selects the sandbox ("sbx") or production ("prd")
// deployment; any other value, including empty, selects production.
//
// # Authentication
//
// Provide BearerToken or APIKey. If both are set, BearerToken wins, exactly as
// if WithAPIKey had been called before WithBearerToken.
//
// # Timeouts
//
// Per-request deadlines should be set on the context passed to each call.
// HTTPTimeout additionally caps every exchange on the underlying HTTP client.
type Config struct {
	// Environment is "sbx" or "prd".
	Environment string
	// BaseURL overrides Environment. It is not validated.
	BaseURL string

	// BearerToken is a JWT sent as "Authorization: Bearer <token>".
	BearerToken string
	// APIKey is sent in the ApiKey header.
	APIKey string

	// ApplicationName identifies the calling application.
	ApplicationName string
	// HeaderFunc rewrites headers before each request.
	HeaderFunc HeaderFunc

	// HTTPTimeout caps each HTTP exchange. Zero means no cap.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives debug logging from the transport.
	Logger Logger
}
