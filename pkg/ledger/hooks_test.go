package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

var errSigningFailed = errors.New("signing failed")

type recordingLogger struct {
	messages []string
	fields   []map[string]interface{}
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {}

func baseHeaders() ledger.Headers {
	return ledger.Headers{
		SdkName:       "Go",
		SdkVersion:    "1.0.0",
		MachineName:   "host",
		Authorization: "Bearer secret-token",
	}
}

func TestChainHeaderFuncs(t *testing.T) {
	t.Parallel()

	var order []string

	first := func(ctx context.Context, h ledger.Headers) (ledger.Headers, error) {
		order = append(order, "first")
		h.ApplicationName = "app"

		return h, nil
	}

	second := func(ctx context.Context, h ledger.Headers) (ledger.Headers, error) {
		order = append(order, "second")
		assert.Equal(t, "app", h.ApplicationName)
		h.Authorization = ""

		return h, nil
	}

	chain := ledger.ChainHeaderFuncs(first, nil, second)

	result, err := chain(context.Background(), baseHeaders())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, "app", result.ApplicationName)
	assert.False(t, result.Has(ledger.HeaderAuthorization))
}

func TestChainHeaderFuncs_StopsOnError(t *testing.T) {
	t.Parallel()

	called := false

	chain := ledger.ChainHeaderFuncs(
		func(ctx context.Context, h ledger.Headers) (ledger.Headers, error) {
			return h, errSigningFailed
		},
		func(ctx context.Context, h ledger.Headers) (ledger.Headers, error) {
			called = true

			return h, nil
		},
	)

	_, err := chain(context.Background(), baseHeaders())
	require.ErrorIs(t, err, errSigningFailed)
	assert.False(t, called)
}

func TestStaticHeaderFunc(t *testing.T) {
	t.Parallel()

	input := baseHeaders()

	result, err := ledger.StaticHeaderFunc(map[string]string{"X-Tenant": "acme"})(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "acme", result.Get("X-Tenant"))
	assert.Nil(t, input.Extra)

	dst := http.Header{}
	result.Apply(dst)
	assert.Equal(t, "acme", dst.Get("X-Tenant"))
	assert.Equal(t, []string{"Bearer secret-token"}, dst["Authorization"])
}

func TestRateLimitHeaderFunc(t *testing.T) {
	t.Parallel()

	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	fn := ledger.RateLimitHeaderFunc(limiter)

	_, err := fn(context.Background(), baseHeaders())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = fn(ctx, baseHeaders())
	require.Error(t, err)
}

func TestLoggingHeaderFunc(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}

	result, err := ledger.LoggingHeaderFunc(logger)(context.Background(), baseHeaders())
	require.NoError(t, err)
	assert.Equal(t, baseHeaders(), result)

	require.Equal(t, []string{"Request headers"}, logger.messages)
	assert.Equal(t, []string{"Authorization", "MachineName", "SdkName", "SdkVersion"}, logger.fields[0]["keys"])
	assert.NotContains(t, fmt.Sprint(logger.fields[0]), "secret-token")
}
