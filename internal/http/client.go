package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/rtb-client/internal/auth"
	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
	"github.com/hashicorp/go-retryablehttp"
	"google.golang.org/api/googleapi"
)

// Logger receives retry warnings and transport errors.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes a single API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response holds the raw result of an API call.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Client sends JSON requests to the API with authentication and retries.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	interceptors *rtb.InterceptorChain
	logger       Logger
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets the retry limits of the transport.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the timeout of a single attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors runs chain around every request. Request tracing is
// registered here rather than built into the transport.
func WithInterceptors(chain *rtb.InterceptorChain) Option {
	return func(c *Client) {
		if chain != nil {
			c.interceptors = chain
		}
	}
}

// NewClient creates a client for baseURL. A nil tokenManager sends requests
// without an Authorization header.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	// Hand the last response back instead of a "giving up" error so the
	// API error payload can be decoded.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		interceptors: rtb.NewInterceptorChain(),
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
		retryClient.RequestLogHook = client.logRetry
	}

	return client
}

// Do sends req. On an HTTP error status the response is returned together
// with a *googleapi.Error. A 401 triggers one token refresh and one retry.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.do(ctx, req)
	if err == nil || resp == nil || resp.StatusCode != http.StatusUnauthorized || c.tokenManager == nil {
		return resp, err
	}

	refreshErr := c.tokenManager.RefreshToken(ctx)
	if refreshErr != nil {
		return resp, err
	}

	return c.do(ctx, req)
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) do(ctx context.Context, req *Request) (*Response, error) {
	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	intercepted := &rtb.Request{
		Method:  req.Method,
		Path:    req.Path,
		Query:   cloneQuery(req.Query),
		Headers: make(http.Header),
		Body:    body,
	}
	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err = c.interceptors.BeforeSend(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.newHTTPRequest(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Headers:    httpResp.Header,
	}

	var apiErr error
	if httpResp.StatusCode >= constants.HTTPStatusBadRequest {
		apiErr = checkResponse(response)
	}

	err = c.interceptors.AfterReceive(ctx, intercepted, &rtb.Response{
		StatusCode: response.StatusCode,
		Headers:    response.Headers,
		Body:       response.Body,
		Error:      apiErr,
	})
	if err != nil {
		return response, err
	}

	return response, apiErr
}

func (c *Client) newHTTPRequest(ctx context.Context, req *rtb.Request) (*retryablehttp.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var rawBody interface{}
	if len(req.Body) > 0 {
		rawBody = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get access token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, values := range req.Headers {
		httpReq.Header[key] = values
	}

	return httpReq, nil
}

// cloneQuery copies query so interceptors cannot change the caller's values.
func cloneQuery(query url.Values) url.Values {
	clone := make(url.Values, len(query))
	for key, values := range query {
		clone[key] = append([]string(nil), values...)
	}

	return clone
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 {
		return
	}

	c.logger.Warn("Retrying HTTP request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

func encodeBody(body interface{}) ([]byte, error) {
	switch typed := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return typed, nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		return data, nil
	}
}

// checkResponse decodes the Google API error payload of a failed response.
func checkResponse(resp *Response) error {
	err := googleapi.CheckResponse(&http.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Headers,
		Body:       io.NopCloser(bytes.NewReader(resp.Body)),
	})
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}

	return nil
}
