// Package http implements the transport under every resource client:
// request building, credential injection, retry with backoff, response
// caching, and mapping of HTTP failures onto the typed error taxonomy.
package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/domo-community/domo-go/internal/auth"
	"github.com/domo-community/domo-go/internal/constants"
	"github.com/domo-community/domo-go/pkg/domo"
)

// Request is a single API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// RawBody bypasses JSON encoding (CSV uploads). ContentType must be
	// set alongside it.
	RawBody     []byte
	ContentType string

	// Accept overrides the default application/json Accept header.
	Accept string
}

// Response is the outcome of a request.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests against one base URL.
type Client struct {
	baseURL      string
	tokenManager auth.TokenManager
	httpClient   *retryablehttp.Client
	logger       domo.Logger
	debug        bool
	userAgent    string
	devToken     bool
	interceptors *domo.InterceptorChain
	cacheManager *domo.CacheManager
	cachePolicy  *domo.CachingPolicy
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger domo.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response debug logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes the retry engine. A negative retryMax disables
// retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		if retryMax < 0 {
			retryMax = 0
		}

		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithDeveloperToken switches credential injection to the
// X-DOMO-Developer-Token header instead of Authorization: Bearer.
func WithDeveloperToken() Option {
	return func(c *Client) {
		c.devToken = true
	}
}

// WithHTTPTimeout sets the outer per-attempt timeout.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors installs an interceptor chain run around each request.
func WithInterceptors(chain *domo.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache installs a read-through response cache for GET requests.
func WithCache(manager *domo.CacheManager, policy *domo.CachingPolicy) Option {
	return func(c *Client) {
		if policy == nil {
			policy = domo.DefaultCachingPolicy()
		}

		c.cacheManager = manager
		c.cachePolicy = policy
	}
}

// NewClient creates a transport client for baseURL. tokenManager may be
// nil for unauthenticated requests (tests).
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	retryClient.ErrorHandler = func(resp *http.Response, err error, numTries int) (*http.Response, error) {
		return resp, err
	}

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		tokenManager: tokenManager,
		httpClient:   retryClient,
		userAgent:    "domo-go",
	}
	retryClient.CheckRetry = client.checkRetry

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// checkRetry decides which failures are worth another attempt: transport
// errors and 5xx responses on idempotent methods. Rate limits (429) and
// all other 4xx are surfaced to the caller immediately, as are 5xx on
// POST, whose body already reached the server.
func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		if resp.Request != nil && resp.Request.Method == http.MethodPost {
			return false, nil
		}

		return true, nil
	}

	return false, nil
}

// Do executes a request and maps failures onto the typed error taxonomy.
// The response is returned alongside the error when the server answered.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req)

	cacheKey, cached := c.cachedResponse(ctx, req, fullURL)
	if cached != nil {
		return cached, nil
	}

	httpReq, err := c.buildRequest(ctx, req, fullURL)
	if err != nil {
		return nil, err
	}

	intercepted := c.interceptRequest(ctx, req, httpReq)

	start := time.Now()

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		mapped := c.mapTransportError(fullURL, err)
		c.interceptResponse(ctx, intercepted, nil, mapped)

		return nil, mapped
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := readBody(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", fullURL, err)
	}

	elapsed := time.Since(start)
	if elapsed > constants.SlowRequestThreshold && c.logger != nil {
		c.logger.Warn("slow API request", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"duration_ms": elapsed.Milliseconds(),
		})
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
			"duration_ms": elapsed.Milliseconds(),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	mapped := mapStatusError(httpResp.StatusCode, fullURL, body, httpResp.Header)
	c.interceptResponse(ctx, intercepted, resp, mapped)

	if mapped != nil {
		return resp, mapped
	}

	c.storeResponse(ctx, req, cacheKey, resp)

	return resp, nil
}

func (c *Client) buildURL(req *Request) string {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	return fullURL
}

func (c *Client) buildRequest(ctx context.Context, req *Request, fullURL string) (*retryablehttp.Request, error) {
	var (
		bodyBytes   []byte
		contentType string
		err         error
	)

	switch {
	case req.RawBody != nil:
		bodyBytes = req.RawBody
		contentType = req.ContentType
	case req.Body != nil:
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		contentType = "application/json"
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
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

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get token: %w", err)
		}

		if c.devToken {
			httpReq.Header.Set("X-DOMO-Developer-Token", token)
		} else {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return httpReq, nil
}

func (c *Client) mapTransportError(fullURL string, err error) error {
	if isTimeout(err) {
		return &domo.TimeoutError{
			URL:     fullURL,
			Timeout: c.httpClient.HTTPClient.Timeout,
		}
	}

	return &domo.ConnectionError{URL: fullURL, Err: err}
}

func (c *Client) interceptRequest(ctx context.Context, req *Request, httpReq *retryablehttp.Request) *domo.InterceptedRequest {
	if c.interceptors == nil {
		return nil
	}

	intercepted := &domo.InterceptedRequest{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil && c.logger != nil {
		c.logger.Warn("request interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return intercepted
}

func (c *Client) interceptResponse(ctx context.Context, intercepted *domo.InterceptedRequest, resp *Response, respErr error) {
	if c.interceptors == nil || intercepted == nil {
		return
	}

	interceptedResp := &domo.InterceptedResponse{Error: respErr}
	if resp != nil {
		interceptedResp.StatusCode = resp.StatusCode
		interceptedResp.Headers = resp.Headers
		interceptedResp.Body = resp.Body
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (c *Client) cachedResponse(ctx context.Context, req *Request, fullURL string) (string, *Response) {
	if c.cacheManager == nil || req.Method != http.MethodGet {
		return "", nil
	}

	params := make(map[string]string, len(req.Query))
	for key := range req.Query {
		params[key] = req.Query.Get(key)
	}

	key := c.cacheManager.GetCacheKey(req.Method, req.Path, params)

	data, err := c.cacheManager.Get(ctx, key)
	if err != nil {
		return key, nil
	}

	return key, &Response{
		StatusCode: http.StatusOK,
		Body:       data,
	}
}

func (c *Client) storeResponse(ctx context.Context, req *Request, cacheKey string, resp *Response) {
	if c.cacheManager == nil || cacheKey == "" || c.cachePolicy == nil {
		return
	}

	if !c.cachePolicy.ShouldCache(req.Method, req.Path, resp.StatusCode) {
		return
	}

	_ = c.cacheManager.SetWithETag(ctx, cacheKey, resp.Body, resp.Headers.Get("ETag"), 0)
}

func readBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, constants.MaxResponseSize+1))
	if err != nil {
		return nil, err
	}

	if len(body) > constants.MaxResponseSize {
		return nil, domo.ErrResponseTooLarge
	}

	return body, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PutCSV uploads CSV data with a PUT request.
func (c *Client) PutCSV(ctx context.Context, path string, csvData []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPut,
		Path:        path,
		RawBody:     csvData,
		ContentType: "text/csv",
	})
}

// PutGzipCSV uploads CSV data gzip-compressed with a PUT request.
func (c *Client) PutGzipCSV(ctx context.Context, path string, csvData []byte) (*Response, error) {
	var buf bytes.Buffer

	gzWriter := gzip.NewWriter(&buf)

	_, err := gzWriter.Write(csvData)
	if err != nil {
		return nil, fmt.Errorf("failed to compress CSV data: %w", err)
	}

	err = gzWriter.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to compress CSV data: %w", err)
	}

	return c.Do(ctx, &Request{
		Method:      http.MethodPut,
		Path:        path,
		RawBody:     buf.Bytes(),
		ContentType: "text/csv",
		Headers:     map[string]string{"Content-Encoding": "gzip"},
	})
}

// GetCSV performs a GET request accepting CSV data.
func (c *Client) GetCSV(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
		Accept: "text/csv",
	})
}
