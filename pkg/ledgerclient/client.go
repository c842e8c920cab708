// Package ledgerclient provides the main entry point for creating platform API clients
package ledgerclient

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/ledger-client/internal/client"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// WithEnvironment creates an unauthenticated client for a named environment:
// "sbx" for the sandbox, "prd" for production. Any other name silently
// selects production.
func WithEnvironment(env string) ledger.Client {
	return client.NewWithBaseURL(ResolveEnvironment(env))
}

// WithCustomURL creates an unauthenticated client for an arbitrary base URL.
// The URL is not validated; a malformed value surfaces as an error on the
// first request.
func WithCustomURL(rawURL string) ledger.Client {
	return client.NewWithBaseURL(rawURL)
}

// ResolveEnvironment returns the base URL for an environment name.
func ResolveEnvironment(env string) string {
	return client.BaseURLForEnvironment(env)
}

// New creates a client from config.
func New(ctx context.Context, config *ledger.Config) (ledger.Client, error) {
	if config == nil {
		return nil, ledger.ErrConfigRequired
	}

	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	if config.Logger != nil && config.Debug {
		config.Logger.Debug("Client created", map[string]interface{}{
			"base_url": c.BaseURL(),
		})
	}

	return c, nil
}
