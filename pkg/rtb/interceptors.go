package rtb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// QuotaProjectHeader names the Google Cloud project billed for API quota.
const QuotaProjectHeader = "X-Goog-User-Project"

// Request is an API call as seen by interceptors, before it is sent.
// Interceptors may change Headers and Query.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers http.Header
	Body    []byte

	// Started is set by the tracing interceptor.
	Started time.Time
}

// Resource returns the resource name the request targets, e.g.
// "bidders/1/endpoints" or "bidders/1/publisherConnections:batchReject".
func (r *Request) Resource() string {
	path := strings.TrimPrefix(r.Path, "/")

	_, resource, found := strings.Cut(path, "/")
	if !found {
		return path
	}

	return resource
}

// Response is the outcome of an API call. Error holds the decoded API error
// for HTTP error statuses.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor runs before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs after a response is read.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain holds the interceptors the transport runs around every
// call, in registration order.
type InterceptorChain struct {
	before []RequestInterceptor
	after  []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// OnRequest registers interceptor to run before each request.
func (c *InterceptorChain) OnRequest(interceptor RequestInterceptor) *InterceptorChain {
	c.before = append(c.before, interceptor)

	return c
}

// OnResponse registers interceptor to run after each response.
func (c *InterceptorChain) OnResponse(interceptor ResponseInterceptor) *InterceptorChain {
	c.after = append(c.after, interceptor)

	return c
}

// Empty reports whether no interceptor is registered.
func (c *InterceptorChain) Empty() bool {
	return c == nil || len(c.before)+len(c.after) == 0
}

// BeforeSend runs the request interceptors, stopping at the first error.
func (c *InterceptorChain) BeforeSend(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.before {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// AfterReceive runs the response interceptors, stopping at the first error.
func (c *InterceptorChain) AfterReceive(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	for _, interceptor := range c.after {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// QuotaProjectInterceptor bills API quota to project instead of the project
// that owns the credentials.
func QuotaProjectInterceptor(project string) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		req.Headers.Set(QuotaProjectHeader, project)

		return nil
	}
}

// TraceRequests logs every outgoing call at debug level. List calls carry
// their page size and token so a pagination walk can be followed in the log.
func TraceRequests(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		req.Started = time.Now()

		logger.Debug("Sending API request", traceFields(req))

		return nil
	}
}

// TraceResponses logs the status and latency of every call at debug level.
// Failed calls are logged with their error; reporting them is left to the
// caller.
func TraceResponses(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		fields := traceFields(req)
		fields["status"] = resp.StatusCode

		if !req.Started.IsZero() {
			fields["duration"] = time.Since(req.Started).String()
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()

			logger.Debug("API request failed", fields)

			return nil
		}

		logger.Debug("Received API response", fields)

		return nil
	}
}

func traceFields(req *Request) map[string]interface{} {
	fields := map[string]interface{}{
		"method":   req.Method,
		"resource": req.Resource(),
	}

	if size := req.Query.Get("pageSize"); size != "" {
		fields["page_size"] = size
	}

	if token := req.Query.Get("pageToken"); token != "" {
		fields["page_token"] = token
	}

	return fields
}
