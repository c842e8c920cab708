package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrorResult is the problem-details payload the platform returns for any
// non-2xx response.
type ErrorResult struct {
	Type    string              `json:"type,omitempty"    yaml:"type,omitempty"`
	Title   string              `json:"title,omitempty"   yaml:"title,omitempty"`
	Status  int                 `json:"status,omitempty"  yaml:"status,omitempty"`
	Detail  string              `json:"detail,omitempty"  yaml:"detail,omitempty"`
	TraceID string              `json:"traceId,omitempty" yaml:"trace_id,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"  yaml:"errors,omitempty"`

	// Body is the raw response payload.
	Body []byte `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *ErrorResult) Error() string {
	title := e.Title
	if title == "" {
		title = http.StatusText(e.Status)
	}

	if title == "" {
		title = "unknown error"
	}

	if e.Detail == "" {
		return fmt.Sprintf("%s (status: %d)", title, e.Status)
	}

	return fmt.Sprintf("%s: %s (status: %d)", title, e.Detail, e.Status)
}

// ParseErrorResult decodes a non-2xx response body. It never fails: bodies
// that are not a JSON object are kept raw with the status filled in.
func ParseErrorResult(statusCode int, body []byte) *ErrorResult {
	result := &ErrorResult{}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, result); err != nil {
			result = &ErrorResult{}
		}
	}

	return fillErrorResult(result, statusCode, body)
}

// rawErrorResult wraps an error body without looking inside it.
func rawErrorResult(statusCode int, body []byte) *ErrorResult {
	return fillErrorResult(&ErrorResult{}, statusCode, body)
}

func fillErrorResult(result *ErrorResult, statusCode int, body []byte) *ErrorResult {
	if result.Status == 0 {
		result.Status = statusCode
	}

	if result.Title == "" {
		result.Title = http.StatusText(statusCode)
	}

	result.Body = body

	return result
}

// Static errors for err113 compliance. The first five are transport-level:
// they mean no HTTP response was obtained.
var (
	ErrReadUploadFile   = errors.New("reading upload file")
	ErrHeaderFunc       = errors.New("custom header function failed")
	ErrInvalidURL       = errors.New("invalid request URL")
	ErrEncodeRequest    = errors.New("encoding request body")
	ErrDecodeResponse   = errors.New("decoding response body")
	ErrConfigRequired   = errors.New("config is required")
	ErrPageLimitReached = errors.New("page limit reached")
)

// IsNotFound checks if the error is a 404 error result.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 error result.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 error result.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	result := &ErrorResult{}
	if errors.As(err, &result) {
		return result.Status == status
	}

	return false
}
