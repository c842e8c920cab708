package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

const testAPIKey = "test-key"

// setupServer starts a server for handler and configures the CLI to use it.
func setupServer(t *testing.T, handler http.HandlerFunc, settings map[string]string) string {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	merged := map[string]string{
		ConfigKeyBaseURL: server.URL,
		ConfigKeyAPIKey:  testAPIKey,
	}
	for key, value := range settings {
		merged[key] = value
	}

	return setupViper(t, merged)
}

func TestNewVersionCommand(t *testing.T) {
	setupViper(t, map[string]string{ConfigKeyOutput: constants.FormatJSON})

	cmd := NewVersionCommand("1.2.3", "abc123", "2024-05-01")
	assert.Equal(t, "version", cmd.Use)

	out, err := executeCommand(cmd)
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "2024-05-01", info.Built)
	assert.Equal(t, constants.SDKVersion, info.SDKVersion)
}

func TestVersionCommand_Formats(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		setupViper(t, nil)

		out, err := executeCommand(NewVersionCommand("1.2.3", "abc123", "2024-05-01"))
		require.NoError(t, err)
		assert.Contains(t, out, "1.2.3")
		assert.Contains(t, out, "abc123")
	})

	t.Run("yaml", func(t *testing.T) {
		setupViper(t, map[string]string{ConfigKeyOutput: constants.FormatYAML})

		out, err := executeCommand(NewVersionCommand("1.2.3", "abc123", "2024-05-01"))
		require.NoError(t, err)
		assert.Contains(t, out, "version: 1.2.3")
	})

	t.Run("unsupported", func(t *testing.T) {
		setupViper(t, map[string]string{ConfigKeyOutput: "xml"})

		_, err := executeCommand(NewVersionCommand("1.2.3", "abc123", "2024-05-01"))
		require.ErrorIs(t, err, constants.ErrUnsupportedFormat)
	})
}

func TestStatusCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/Status", request.URL.Path)
			assert.Equal(t, testAPIKey, request.Header.Get(ledger.HeaderAPIKey))

			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"userName":    "alice@example.com",
				"accountName": "Acme",
				"loggedIn":    true,
				"roles":       []string{"Admin", "Viewer"},
			})
		}, nil)

		out, err := executeCommand(NewStatusCommand())
		require.NoError(t, err)
		assert.Contains(t, out, "alice@example.com")
		assert.Contains(t, out, "Admin, Viewer")
	})

	t.Run("unauthorized", func(t *testing.T) {
		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusUnauthorized, map[string]interface{}{
				"title":  "Unauthorized",
				"status": http.StatusUnauthorized,
			})
		}, nil)

		_, err := executeCommand(NewStatusCommand())
		require.ErrorIs(t, err, constants.ErrRequestFailed)
		assert.True(t, ledger.IsUnauthorized(err))
	})

	t.Run("no credentials", func(t *testing.T) {
		setupViper(t, nil)

		_, err := executeCommand(NewStatusCommand())
		require.ErrorIs(t, err, constants.ErrNoCredentials)
	})
}

func TestLoginCommand(t *testing.T) {
	t.Run("saves verified key", func(t *testing.T) {
		var keySeen atomic.Value

		configFile := setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			keySeen.Store(request.Header.Get(ledger.HeaderAPIKey))

			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"userName":    "alice@example.com",
				"accountName": "Acme",
				"loggedIn":    true,
			})
		}, map[string]string{ConfigKeyAPIKey: ""})

		out, err := executeCommand(NewLoginCommand(), "--key", "new-key")
		require.NoError(t, err)
		assert.Contains(t, out, "Logged in as alice@example.com (Acme)")
		assert.Equal(t, "new-key", keySeen.Load())

		saved, err := readConfigFile(configFile)
		require.NoError(t, err)
		assert.Equal(t, "new-key", saved.APIKey)
		assert.NotEmpty(t, saved.BaseURL)
	})

	t.Run("rejected key is not saved", func(t *testing.T) {
		configFile := setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"loggedIn":     false,
				"errorMessage": "API key revoked",
			})
		}, nil)

		_, err := executeCommand(NewLoginCommand(), "--key", "revoked-key")
		require.ErrorIs(t, err, constants.ErrNotLoggedIn)
		assert.Contains(t, err.Error(), "API key revoked")

		_, statErr := os.Stat(configFile)
		assert.True(t, os.IsNotExist(statErr))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCompaniesCommands(t *testing.T) {
	companyID := uuid.MustParse("8f6d4b6e-2b9f-4c1a-9a53-3c0c1f6b7a11")

	t.Run("list", func(t *testing.T) {
		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/Companies/query", request.URL.Path)
			assert.Equal(t, "companyType eq 'Customer'", request.URL.Query().Get("filter"))
			assert.Equal(t, "10", request.URL.Query().Get("pageSize"))

			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"records": []map[string]interface{}{
					{"companyId": companyID, "companyName": "Acme Corp", "companyType": "Customer"},
				},
				"totalCount": 25,
				"pageSize":   10,
				"pageNumber": 0,
			})
		}, nil)

		out, err := executeCommand(NewCompaniesCommand(), "list", "--filter", "companyType eq 'Customer'", "--per-page", "10")
		require.NoError(t, err)
		assert.Contains(t, out, "Acme Corp")
		assert.Contains(t, out, companyID.String())
		assert.Contains(t, out, "Showing 1 of 25")
	})

	t.Run("list all pages", func(t *testing.T) {
		var calls int32

		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&calls, 1)

			page, _ := strconv.Atoi(request.URL.Query().Get("pageNumber"))

			records := []map[string]interface{}{
				{"companyId": uuid.New(), "companyName": "Company " + strconv.Itoa(page*2)},
				{"companyId": uuid.New(), "companyName": "Company " + strconv.Itoa(page*2+1)},
			}
			if page == 1 {
				records = records[:1]
			}

			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"records":    records,
				"totalCount": 3,
				"pageSize":   2,
				"pageNumber": page,
			})
		}, map[string]string{ConfigKeyOutput: constants.FormatJSON})

		out, err := executeCommand(NewCompaniesCommand(), "list", "--all", "--per-page", "2")
		require.NoError(t, err)

		var companies []ledger.CompanyModel
		require.NoError(t, json.Unmarshal([]byte(out), &companies))
		assert.Len(t, companies, 3)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("list empty", func(t *testing.T) {
		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusOK, map[string]interface{}{"records": []interface{}{}})
		}, nil)

		out, err := executeCommand(NewCompaniesCommand(), "list")
		require.NoError(t, err)
		assert.Equal(t, "No companies found\n", out)
	})

	t.Run("get", func(t *testing.T) {
		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/Companies/"+companyID.String(), request.URL.Path)
			assert.Equal(t, "Contacts", request.URL.Query().Get("include"))

			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"companyId":   companyID,
				"companyName": "Acme Corp",
				"isActive":    true,
			})
		}, map[string]string{ConfigKeyOutput: constants.FormatYAML})

		out, err := executeCommand(NewCompaniesCommand(), "get", companyID.String(), "--include", "Contacts")
		require.NoError(t, err)
		assert.Contains(t, out, "company_name: Acme Corp")
	})

	t.Run("get invalid id", func(t *testing.T) {
		setupViper(t, map[string]string{ConfigKeyAPIKey: testAPIKey})

		_, err := executeCommand(NewCompaniesCommand(), "get", "not-a-uuid")
		require.ErrorIs(t, err, constants.ErrInvalidID)
	})

	t.Run("get not found", func(t *testing.T) {
		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusNotFound, map[string]interface{}{
				"title":  "Not Found",
				"status": http.StatusNotFound,
			})
		}, nil)

		_, err := executeCommand(NewCompaniesCommand(), "get", companyID.String())
		require.Error(t, err)
		assert.True(t, ledger.IsNotFound(err))
	})
}

func TestInvoicesCommands(t *testing.T) {
	invoiceID := uuid.MustParse("0c3b2f1e-5d4a-4e8b-8f7c-6a5b4c3d2e1f")

	t.Run("get", func(t *testing.T) {
		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"invoiceId":                invoiceID,
				"referenceCode":            "INV-1001",
				"currencyCode":             "USD",
				"totalAmount":              "1250.5",
				"outstandingBalanceAmount": "250",
				"lines": []map[string]interface{}{
					{"lineNumber": "1", "description": "Consulting", "quantity": "5", "unitPrice": "250.1", "totalAmount": "1250.5"},
				},
			})
		}, nil)

		out, err := executeCommand(NewInvoicesCommand(), "get", invoiceID.String())
		require.NoError(t, err)
		assert.Contains(t, out, "INV-1001")
		assert.Contains(t, out, "1250.50 USD")
		assert.Contains(t, out, "250.00 USD")
		assert.Contains(t, out, "Consulting")
	})

	t.Run("pdf", func(t *testing.T) {
		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/Invoices/"+invoiceID.String()+"/pdf", request.URL.Path)

			writer.Header().Set("Content-Type", "application/pdf")
			_, _ = writer.Write([]byte("%PDF-1.4 test"))
		}, nil)

		target := filepath.Join(t.TempDir(), "invoice.pdf")

		out, err := executeCommand(NewInvoicesCommand(), "pdf", invoiceID.String(), "--file", target)
		require.NoError(t, err)
		assert.Contains(t, out, "Saved 13 bytes")

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4 test", string(data))
	})
}

func TestAttachmentsCommands(t *testing.T) {
	objectID := uuid.MustParse("5a4b3c2d-1e0f-4a9b-8c7d-6e5f4a3b2c1d")

	t.Run("upload requires table", func(t *testing.T) {
		setupViper(t, map[string]string{ConfigKeyAPIKey: testAPIKey})

		_, err := executeCommand(NewAttachmentsCommand(), "upload", "receipt.txt", "--object-id", objectID.String())
		require.ErrorIs(t, err, constants.ErrTableNameRequired)
	})

	t.Run("upload", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "receipt.txt")
		require.NoError(t, os.WriteFile(file, []byte("paid"), 0o600))

		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "Invoices", request.URL.Query().Get("tableName"))
			assert.Equal(t, objectID.String(), request.URL.Query().Get("objectId"))

			_, header, err := request.FormFile("file")
			if assert.NoError(t, err) {
				assert.Equal(t, "receipt.txt", header.Filename)
			}

			writeJSON(writer, http.StatusOK, []map[string]interface{}{
				{"attachmentId": uuid.New(), "fileName": "receipt.txt", "tableKey": "Invoices", "objectKey": objectID},
			})
		}, nil)

		out, err := executeCommand(NewAttachmentsCommand(), "upload", file, "--table", "Invoices", "--object-id", objectID.String())
		require.NoError(t, err)
		assert.Contains(t, out, "receipt.txt")
		assert.Contains(t, out, objectID.String())
	})

	t.Run("download uses stored file name", func(t *testing.T) {
		attachmentID := uuid.New()

		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			switch request.URL.Path {
			case "/api/v1/Attachments/" + attachmentID.String():
				writeJSON(writer, http.StatusOK, map[string]interface{}{
					"attachmentId": attachmentID,
					"fileName":     "../statement.csv",
				})
			case "/api/v1/Attachments/" + attachmentID.String() + "/download-file":
				_, _ = writer.Write([]byte("a,b\n1,2\n"))
			default:
				http.NotFound(writer, request)
			}
		}, nil)

		t.Chdir(t.TempDir())

		out, err := executeCommand(NewAttachmentsCommand(), "download", attachmentID.String())
		require.NoError(t, err)
		assert.Contains(t, out, "statement.csv")

		data, err := os.ReadFile("statement.csv")
		require.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", string(data))
	})
}

func TestSyncCommands(t *testing.T) {
	t.Run("upload missing file", func(t *testing.T) {
		var calls int32

		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&calls, 1)
		}, nil)

		_, err := executeCommand(NewSyncCommand(), "upload", filepath.Join(t.TempDir(), "missing.zip"))
		require.ErrorIs(t, err, ledger.ErrReadUploadFile)
		assert.Zero(t, atomic.LoadInt32(&calls))
	})

	t.Run("upload", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "import.zip")
		require.NoError(t, os.WriteFile(file, []byte("PK\x03\x04"), 0o600))

		syncID := uuid.New()

		setupServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/Sync/zip", request.URL.Path)

			writeJSON(writer, http.StatusOK, map[string]interface{}{
				"syncRequestId": syncID,
				"statusCode":    "Ready",
			})
		}, map[string]string{ConfigKeyOutput: constants.FormatJSON})

		out, err := executeCommand(NewSyncCommand(), "upload", file)
		require.NoError(t, err)

		var request ledger.SyncRequestModel
		require.NoError(t, json.Unmarshal([]byte(out), &request))
		assert.Equal(t, syncID, request.SyncRequestID)
		assert.Equal(t, "Ready", request.StatusCode)
	})
}
