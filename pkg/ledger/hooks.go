package ledger

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"golang.org/x/time/rate"
)

// ChainHeaderFuncs runs fns in order, feeding each the previous result. The
// first error stops the chain. Nil entries are skipped.
func ChainHeaderFuncs(fns ...HeaderFunc) HeaderFunc {
	return func(ctx context.Context, headers Headers) (Headers, error) {
		current := headers

		for i, fn := range fns {
			if fn == nil {
				continue
			}

			next, err := fn(ctx, current)
			if err != nil {
				return Headers{}, fmt.Errorf("header func %d: %w", i, err)
			}

			current = next
		}

		return current, nil
	}
}

// StaticHeaderFunc adds fixed headers to every request.
func StaticHeaderFunc(headers map[string]string) HeaderFunc {
	return func(ctx context.Context, current Headers) (Headers, error) {
		out := current.Clone()
		if out.Extra == nil {
			out.Extra = make(http.Header)
		}

		for key, value := range headers {
			out.Extra.Set(key, value)
		}

		return out, nil
	}
}

// RateLimitHeaderFunc holds each request until limiter grants a token or ctx
// ends.
func RateLimitHeaderFunc(limiter *rate.Limiter) HeaderFunc {
	return func(ctx context.Context, current Headers) (Headers, error) {
		err := limiter.Wait(ctx)
		if err != nil {
			return Headers{}, fmt.Errorf("waiting for rate limiter: %w", err)
		}

		return current, nil
	}
}

// LoggingHeaderFunc logs the names of the headers about to be sent. Values
// are never logged.
func LoggingHeaderFunc(logger Logger) HeaderFunc {
	return func(ctx context.Context, current Headers) (Headers, error) {
		keys := current.Keys()
		sort.Strings(keys)

		logger.Debug("Request headers", map[string]interface{}{
			"keys": keys,
		})

		return current, nil
	}
}
