package ledger

import (
	"context"
	"net/http"
	"strings"
)

// Header keys understood by the platform. They are sent exactly as written.
const (
	HeaderSdkName         = "SdkName"
	HeaderSdkVersion      = "SdkVersion"
	HeaderMachineName     = "MachineName"
	HeaderApplicationName = "ApplicationName"
	HeaderAuthorization   = "Authorization"
	HeaderAPIKey          = "ApiKey"
)

// Headers is the identity and credential header set computed for every
// request. An empty field is not sent.
type Headers struct {
	SdkName         string
	SdkVersion      string
	MachineName     string
	ApplicationName string
	Authorization   string
	APIKey          string

	// Extra holds any additional headers a HeaderFunc wants on the request.
	Extra http.Header
}

// HeaderFunc inspects the computed headers just before dispatch and returns
// the set that is actually sent. It may block; the request waits for it.
// Returning an error cancels the request before anything goes on the wire.
type HeaderFunc func(ctx context.Context, headers Headers) (Headers, error)

// Clone returns a copy that shares no maps with h.
func (h Headers) Clone() Headers {
	clone := h
	if h.Extra != nil {
		clone.Extra = h.Extra.Clone()
	}

	return clone
}

// Has reports whether the header named key would be sent.
func (h Headers) Has(key string) bool {
	return h.Get(key) != ""
}

// Get returns the value for a well-known key, or the first Extra value.
func (h Headers) Get(key string) string {
	switch key {
	case HeaderSdkName:
		return h.SdkName
	case HeaderSdkVersion:
		return h.SdkVersion
	case HeaderMachineName:
		return h.MachineName
	case HeaderApplicationName:
		return h.ApplicationName
	case HeaderAuthorization:
		return h.Authorization
	case HeaderAPIKey:
		return h.APIKey
	}

	if h.Extra == nil {
		return ""
	}

	if values, ok := h.Extra[key]; ok && len(values) > 0 {
		return values[0]
	}

	return h.Extra.Get(key)
}

// Apply writes h onto dst. Well-known keys are written verbatim so the wire
// names match what the platform expects. An Extra value replaces every
// existing value whose key matches ignoring case, and an Extra key naming a
// well-known header is sent under the well-known spelling.
func (h Headers) Apply(dst http.Header) {
	set := func(key, value string) {
		if value != "" {
			dst[key] = []string{value}
		}
	}

	set(HeaderSdkName, h.SdkName)
	set(HeaderSdkVersion, h.SdkVersion)
	set(HeaderMachineName, h.MachineName)
	set(HeaderApplicationName, h.ApplicationName)
	set(HeaderAuthorization, h.Authorization)
	set(HeaderAPIKey, h.APIKey)

	for key, values := range h.Extra {
		for existing := range dst {
			if strings.EqualFold(existing, key) {
				delete(dst, existing)
			}
		}

		dst[wireKey(key)] = append([]string(nil), values...)
	}
}

var wellKnownKeys = []string{
	HeaderSdkName, HeaderSdkVersion, HeaderMachineName,
	HeaderApplicationName, HeaderAuthorization, HeaderAPIKey,
}

// wireKey returns the well-known spelling of key, or key unchanged.
func wireKey(key string) string {
	for _, known := range wellKnownKeys {
		if strings.EqualFold(known, key) {
			return known
		}
	}

	return key
}

// Keys lists the names of all headers that would be sent, as spelled on the
// wire.
func (h Headers) Keys() []string {
	keys := make([]string, 0, len(wellKnownKeys)+len(h.Extra))
	seen := make(map[string]bool, cap(keys))

	add := func(key string) {
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	for _, key := range wellKnownKeys {
		if h.Get(key) != "" {
			add(key)
		}
	}

	for key := range h.Extra {
		add(wireKey(key))
	}

	return keys
}
