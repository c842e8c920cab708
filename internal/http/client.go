// Package http implements the shared transport behind every resource client:
// credential state, header construction, URL resolution, and dispatch.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// Client is the credential-aware transport. It implements ledger.Transport.
//
// Configuration setters may be called at any time; each request reads the
// configuration once, when it builds its headers.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	logger     ledger.Logger
	debug      bool
	userAgent  string
	hostname   func() (string, error)

	mu              sync.RWMutex
	bearerToken     string
	apiKey          string
	applicationName string
	headerFunc      ledger.HeaderFunc
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger ledger.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithTimeout caps every exchange. It sets the timeout on a copy of the
// underlying *http.Client, so a client passed to WithHTTPClient is left as
// it was.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		httpClient := *c.httpClient.HTTPClient
		httpClient.Timeout = timeout
		c.httpClient.HTTPClient = &httpClient
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithHostname replaces the host name lookup used for MachineName.
func WithHostname(hostname func() (string, error)) Option {
	return func(c *Client) {
		if hostname != nil {
			c.hostname = hostname
		}
	}
}

// NewClient creates a transport for baseURL with no credentials. The URL is
// not validated; a trailing slash is added when missing so relative paths
// resolve beneath it.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:    baseURL,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
		hostname:   os.Hostname,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// neverRetry hands every outcome straight back to the caller.
func neverRetry(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return false, err
}

// BaseURL returns the base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// WithBearerToken sets a bearer token and clears any API key.
func (c *Client) WithBearerToken(token string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.bearerToken = token
	c.apiKey = ""

	return c
}

// WithAPIKey sets an API key and clears any bearer token.
func (c *Client) WithAPIKey(apiKey string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.apiKey = apiKey
	c.bearerToken = ""

	return c
}

// WithApplicationName sets the ApplicationName header value.
func (c *Client) WithApplicationName(name string) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.applicationName = name

	return c
}

// WithCustomHeaderFunc installs fn as the final header rewrite. Nil removes it.
func (c *Client) WithCustomHeaderFunc(fn ledger.HeaderFunc) *Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.headerFunc = fn

	return c
}

// BuildHeaders computes the headers for one request from the configuration
// as it stands now. A configured HeaderFunc runs last and its result is
// final.
func (c *Client) BuildHeaders(ctx context.Context) (ledger.Headers, error) {
	c.mu.RLock()
	bearerToken := c.bearerToken
	apiKey := c.apiKey
	applicationName := c.applicationName
	headerFunc := c.headerFunc
	c.mu.RUnlock()

	headers := ledger.Headers{
		SdkName:         constants.SDKName,
		SdkVersion:      constants.SDKVersion,
		MachineName:     c.machineName(),
		ApplicationName: applicationName,
	}

	switch {
	case bearerToken != "":
		headers.Authorization = "Bearer " + bearerToken
	case apiKey != "":
		headers.APIKey = apiKey
	}

	if headerFunc == nil {
		return headers, nil
	}

	final, err := headerFunc(ctx, headers.Clone())
	if err != nil {
		return ledger.Headers{}, fmt.Errorf("%w: %w", ledger.ErrHeaderFunc, err)
	}

	return final, nil
}

func (c *Client) machineName() string {
	name, err := c.hostname()
	if err != nil || name == "" {
		return constants.UnknownMachineName
	}

	return name
}

// ResolveURL resolves path against the base URL using RFC 3986 reference
// resolution and merges query into the result:
//
//   - "Companies/123" joins beneath the base path;
//   - "/api/v1/Companies" replaces the base path and keeps the host;
//   - "https://other.example.com/x" replaces the base entirely.
func (c *Client) ResolveURL(path string, query url.Values) (*url.URL, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing base URL %q: %w", ledger.ErrInvalidURL, c.baseURL, err)
	}

	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing path %q: %w", ledger.ErrInvalidURL, path, err)
	}

	resolved := base.ResolveReference(ref)

	if len(query) > 0 {
		merged := resolved.Query()

		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}

		resolved.RawQuery = merged.Encode()
	}

	return resolved, nil
}

// Do implements ledger.Transport. Headers are computed first, so a failing
// HeaderFunc stops the request before anything is sent. Every completed
// exchange is returned as a Response regardless of status code.
func (c *Client) Do(ctx context.Context, req *ledger.Request) (*ledger.Response, error) {
	headers, err := c.BuildHeaders(ctx)
	if err != nil {
		return nil, err
	}

	target, err := c.ResolveURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var (
		payload     []byte
		contentType string
	)

	if req.Body != nil {
		payload, contentType, err = req.Body.Encode()
		if err != nil {
			return nil, err
		}
	}

	var rawBody interface{}
	if payload != nil {
		rawBody = payload
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target.String(), rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	accept := req.Accept
	if accept == "" {
		accept = "application/json"
	}

	httpReq.Header.Set("Accept", accept)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	headers.Apply(httpReq.Header)

	start := time.Now()

	c.logRequest(req.Method, target, headers)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, target.Redacted(), err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logResponse(req.Method, target, resp.StatusCode, len(body), time.Since(start))

	return &ledger.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func (c *Client) logRequest(method string, target *url.URL, headers ledger.Headers) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  method,
		"url":     target.Redacted(),
		"headers": headers.Keys(),
	})
}

func (c *Client) logResponse(method string, target *url.URL, status, size int, duration time.Duration) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":   method,
		"url":      target.Redacted(),
		"status":   status,
		"bytes":    size,
		"duration": duration.String(),
	})
}
