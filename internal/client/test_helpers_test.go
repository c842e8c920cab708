package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/ledger-client/internal/http"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// NewTestClient creates a client for baseURL with a fixed machine name.
func NewTestClient(baseURL string) *Client {
	return NewWithBaseURL(baseURL, internalhttp.WithHostname(func() (string, error) {
		return "test-host", nil
	}))
}

// writeJSON writes payload with the given status.
func writeJSON(writer http.ResponseWriter, status int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if payload != nil {
		_ = json.NewEncoder(writer).Encode(payload)
	}
}

// TestRetrieveOperation represents a generic retrieve operation test case.
type TestRetrieveOperation[T any] struct {
	Name          string
	ID            uuid.UUID
	Include       []string
	ExpectedPath  string
	ExpectedQuery string
	StatusCode    int
	Response      interface{}
	WantSuccess   bool
}

// RunRetrieveTests runs a series of retrieve operation tests.
func RunRetrieveTests[T any](
	t *testing.T,
	tests []TestRetrieveOperation[T],
	retrieveFunc func(*Client) func(context.Context, uuid.UUID, []string) (*ledger.Envelope[T], error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			env, err := retrieveFunc(client)(context.Background(), testCase.ID, testCase.Include)
			require.NoError(t, err)
			require.NotNil(t, env)
			assert.Equal(t, testCase.StatusCode, env.StatusCode)
			assert.Equal(t, testCase.WantSuccess, env.Success)

			if testCase.WantSuccess {
				assert.NotNil(t, env.Value)
				assert.Nil(t, env.Error)
			} else {
				assert.Nil(t, env.Value)
				assert.NotNil(t, env.Error)
			}
		})
	}
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           uuid.UUID
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantSuccess  bool
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, uuid.UUID) (*ledger.Envelope[ledger.DeleteResult], error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodDelete, request.Method)

				writeJSON(writer, testCase.StatusCode, testCase.Response)
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			env, err := deleteFunc(client)(context.Background(), testCase.ID)
			require.NoError(t, err)
			require.NotNil(t, env)
			assert.Equal(t, testCase.WantSuccess, env.Success)
		})
	}
}
