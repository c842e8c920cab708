package ledger

import (
	"net/http"
)

// Envelope is the normalized result of one completed HTTP exchange.
//
// Exactly one of Value and Error is non-nil, and which one is decided by
// StatusCode alone: Value for 2xx responses, Error for everything else.
type Envelope[T any] struct {
	StatusCode int
	Success    bool
	Value      *T
	Error      *ErrorResult

	// Header carries the response headers. It is informational and plays no
	// part in classification.
	Header http.Header
}

// IsSuccessStatus reports whether statusCode is in the 2xx range.
func IsSuccessStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// NewEnvelope classifies statusCode and the payload for that class into an
// envelope. It never fails: a nil payload on the selected side is replaced by
// a zero value, and the payload for the other side is discarded.
func NewEnvelope[T any](statusCode int, value *T, errPayload *ErrorResult) *Envelope[T] {
	env := &Envelope[T]{
		StatusCode: statusCode,
		Success:    IsSuccessStatus(statusCode),
	}

	if env.Success {
		if value == nil {
			value = new(T)
		}

		env.Value = value

		return env
	}

	if errPayload == nil {
		errPayload = &ErrorResult{}
	}

	env.Error = errPayload

	return env
}

// Err returns the error payload as an error, or nil for a successful envelope.
func (e *Envelope[T]) Err() error {
	if e == nil || e.Success || e.Error == nil {
		return nil
	}

	return e.Error
}

// Blob is an opaque binary response body.
type Blob struct {
	ContentType string
	Data        []byte
}
