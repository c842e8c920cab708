package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentials      = errors.New("no credentials configured, use 'ledger login' or set LEDGER_API_KEY")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrInvalidEnvironment = errors.New("environment must be 'sbx' or 'prd'")
	ErrNotLoggedIn        = errors.New("credentials were not accepted")
)

// Validation errors.
var (
	ErrInvalidID         = errors.New("invalid id, expected a UUID")
	ErrAPIKeyRequired    = errors.New("API key is required")
	ErrTableNameRequired = errors.New("--table flag is required")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// Request errors.
var (
	ErrRequestFailed = errors.New("request failed")
)
