package constants

import "time"

// SDK identity sent with every request.
const (
	// SDKName identifies this client's language to the platform.
	SDKName = "Go"

	// SDKVersion is the version of this client.
	SDKVersion = "2024.1.0"

	// DefaultUserAgent is sent unless overridden.
	DefaultUserAgent = "ledger-client-go/" + SDKVersion

	// UnknownMachineName is sent when the host name cannot be determined.
	UnknownMachineName = "unknown"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// DownloadFilePerm is the permission for files written by downloads.
	DownloadFilePerm = 0640
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for CLI requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for uploads and downloads.
	ExtendedHTTPTimeout = 2 * time.Minute
)

// API paths.
const (
	APIPathStatus      = "/api/v1/Status"
	APIPathCompanies   = "/api/v1/Companies"
	APIPathContacts    = "/api/v1/Contacts"
	APIPathInvoices    = "/api/v1/Invoices"
	APIPathPayments    = "/api/v1/Payments"
	APIPathAttachments = "/api/v1/Attachments"
	APIPathWebhooks    = "/api/v1/Webhooks"
	APIPathSync        = "/api/v1/Sync"
)

// Pagination and display limits.
const (
	// StandardPageSize is the page size the CLI asks for.
	StandardPageSize = 50
)

// UI and display constants.
const (
	// NotAvailable is displayed for missing values.
	NotAvailable = "N/A"

	// MaskedSecret replaces secrets in displayed configuration.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatTable is the default CLI output format.
	FormatTable = "table"

	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"
)

// Boolean string constants.
const (
	// BooleanTrue represents the string "true".
	BooleanTrue = "true"

	// BooleanFalse represents the string "false".
	BooleanFalse = "false"
)
