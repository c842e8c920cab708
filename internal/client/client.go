package client

import (
	"github.com/fivetwenty-io/ledger-client/internal/http"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// Client implements the ledger.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Resource clients
	status      ledger.StatusClient
	companies   ledger.CompaniesClient
	contacts    ledger.ContactsClient
	invoices    ledger.InvoicesClient
	payments    ledger.PaymentsClient
	attachments ledger.AttachmentsClient
	webhooks    ledger.WebhooksClient
	sync        ledger.SyncClient
}

// BaseURLForEnvironment maps an environment name to its base URL. Unknown
// names, including the empty string, map to production.
func BaseURLForEnvironment(environment string) string {
	switch environment {
	case ledger.EnvironmentSandbox:
		return ledger.SandboxURL
	case ledger.EnvironmentProduction:
		return ledger.ProductionURL
	default:
		return ledger.ProductionURL
	}
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ledger.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a client from config. BaseURL takes precedence over
// Environment. When both credentials are given the bearer token wins.
func New(config *ledger.Config) (*Client, error) {
	if config == nil {
		return nil, ledger.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = BaseURLForEnvironment(config.Environment)
	}

	client := NewWithBaseURL(baseURL, createHTTPClientOptions(config)...)

	if config.APIKey != "" {
		client.httpClient.WithAPIKey(config.APIKey)
	}

	if config.BearerToken != "" {
		client.httpClient.WithBearerToken(config.BearerToken)
	}

	if config.ApplicationName != "" {
		client.httpClient.WithApplicationName(config.ApplicationName)
	}

	if config.HeaderFunc != nil {
		client.httpClient.WithCustomHeaderFunc(config.HeaderFunc)
	}

	return client, nil
}

// NewWithBaseURL creates an unauthenticated client for baseURL.
func NewWithBaseURL(baseURL string, opts ...http.Option) *Client {
	httpClient := http.NewClient(baseURL, opts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.status = NewStatusClient(c.httpClient)
	c.companies = NewCompaniesClient(c.httpClient)
	c.contacts = NewContactsClient(c.httpClient)
	c.invoices = NewInvoicesClient(c.httpClient)
	c.payments = NewPaymentsClient(c.httpClient)
	c.attachments = NewAttachmentsClient(c.httpClient)
	c.webhooks = NewWebhooksClient(c.httpClient)
	c.sync = NewSyncClient(c.httpClient)
}

// WithBearerToken implements ledger.Client.WithBearerToken.
func (c *Client) WithBearerToken(token string) ledger.Client {
	c.httpClient.WithBearerToken(token)

	return c
}

// WithAPIKey implements ledger.Client.WithAPIKey.
func (c *Client) WithAPIKey(apiKey string) ledger.Client {
	c.httpClient.WithAPIKey(apiKey)

	return c
}

// WithApplicationName implements ledger.Client.WithApplicationName.
func (c *Client) WithApplicationName(name string) ledger.Client {
	c.httpClient.WithApplicationName(name)

	return c
}

// WithCustomHeaderFunc implements ledger.Client.WithCustomHeaderFunc.
func (c *Client) WithCustomHeaderFunc(fn ledger.HeaderFunc) ledger.Client {
	c.httpClient.WithCustomHeaderFunc(fn)

	return c
}

// BaseURL implements ledger.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Transport implements ledger.Client.Transport.
func (c *Client) Transport() ledger.Transport {
	return c.httpClient
}

// Resource client accessors

// Status implements ledger.Client.Status.
func (c *Client) Status() ledger.StatusClient {
	return c.status
}

// Companies implements ledger.Client.Companies.
func (c *Client) Companies() ledger.CompaniesClient {
	return c.companies
}

// Contacts implements ledger.Client.Contacts.
func (c *Client) Contacts() ledger.ContactsClient {
	return c.contacts
}

// Invoices implements ledger.Client.Invoices.
func (c *Client) Invoices() ledger.InvoicesClient {
	return c.invoices
}

// Payments implements ledger.Client.Payments.
func (c *Client) Payments() ledger.PaymentsClient {
	return c.payments
}

// Attachments implements ledger.Client.Attachments.
func (c *Client) Attachments() ledger.AttachmentsClient {
	return c.attachments
}

// Webhooks implements ledger.Client.Webhooks.
func (c *Client) Webhooks() ledger.WebhooksClient {
	return c.webhooks
}

// Sync implements ledger.Client.Sync.
func (c *Client) Sync() ledger.SyncClient {
	return c.sync
}
