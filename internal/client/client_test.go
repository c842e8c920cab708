package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

func TestBaseURLForEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		environment string
		want        string
	}{
		{ledger.EnvironmentSandbox, ledger.SandboxURL},
		{ledger.EnvironmentProduction, ledger.ProductionURL},
		{"", ledger.ProductionURL},
		{"staging", ledger.ProductionURL},
		{"SBX", ledger.ProductionURL},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, BaseURLForEnvironment(tt.environment))
		})
	}

	assert.NotEqual(t, BaseURLForEnvironment(ledger.EnvironmentSandbox), BaseURLForEnvironment(ledger.EnvironmentProduction))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := New(nil)
		require.ErrorIs(t, err, ledger.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("environment selects base URL", func(t *testing.T) {
		t.Parallel()

		client, err := New(&ledger.Config{Environment: ledger.EnvironmentSandbox})
		require.NoError(t, err)
		assert.Equal(t, ledger.SandboxURL, client.BaseURL())
	})

	t.Run("base URL overrides environment", func(t *testing.T) {
		t.Parallel()

		client, err := New(&ledger.Config{
			Environment: ledger.EnvironmentSandbox,
			BaseURL:     "https://ledger.internal.example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://ledger.internal.example.com/", client.BaseURL())
	})

	t.Run("bearer token wins over API key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Bearer jwt", request.Header.Get(ledger.HeaderAuthorization))
			assert.Empty(t, request.Header.Get(ledger.HeaderAPIKey))
			assert.Equal(t, "billing", request.Header.Get(ledger.HeaderApplicationName))
			assert.Equal(t, "custom", request.Header.Get("X-Custom"))

			writeJSON(writer, http.StatusOK, map[string]interface{}{"loggedIn": true})
		}))
		defer server.Close()

		client, err := New(&ledger.Config{
			BaseURL:         server.URL,
			APIKey:          "key",
			BearerToken:     "jwt",
			ApplicationName: "billing",
			HeaderFunc:      ledger.StaticHeaderFunc(map[string]string{"X-Custom": "custom"}),
		})
		require.NoError(t, err)

		env, err := client.Status().Ping(context.Background())
		require.NoError(t, err)
		require.True(t, env.Success)
		assert.True(t, env.Value.LoggedIn)
	})

	t.Run("resource clients initialized", func(t *testing.T) {
		t.Parallel()

		client, err := New(&ledger.Config{})
		require.NoError(t, err)

		assert.NotNil(t, client.Status())
		assert.NotNil(t, client.Companies())
		assert.NotNil(t, client.Contacts())
		assert.NotNil(t, client.Invoices())
		assert.NotNil(t, client.Payments())
		assert.NotNil(t, client.Attachments())
		assert.NotNil(t, client.Webhooks())
		assert.NotNil(t, client.Sync())
		assert.NotNil(t, client.Transport())
	})
}

func TestClient_Chaining(t *testing.T) {
	t.Parallel()

	client := NewTestClient("https://api.example.com/")

	var chained ledger.Client = client.
		WithAPIKey("key").
		WithBearerToken("jwt").
		WithApplicationName("app").
		WithCustomHeaderFunc(nil)

	assert.Same(t, client, chained)
}

func TestStatusClient_Ping(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v1/Status", request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)

		writeJSON(writer, http.StatusOK, map[string]interface{}{
			"userName":    "alice@example.com",
			"accountName": "Acme",
			"loggedIn":    true,
			"roles":       []string{"Admin"},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	env, err := client.Status().Ping(context.Background())
	require.NoError(t, err)
	require.True(t, env.Success)
	assert.Equal(t, "alice@example.com", env.Value.UserName)
	assert.Equal(t, []string{"Admin"}, env.Value.Roles)
}

func TestStatusClient_Unauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(writer, http.StatusUnauthorized, map[string]interface{}{
			"title":  "Unauthorized",
			"status": http.StatusUnauthorized,
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	env, err := client.Status().Ping(context.Background())
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.True(t, ledger.IsUnauthorized(env.Err()))
}
