package rtb

import (
	"time"
)

// Client provides access to the Real-time Bidding API resource clients.
type Client interface {
	Bidders() BiddersClient
	Endpoints() EndpointsClient
	PublisherConnections() PublisherConnectionsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a rtb.Client.
//
// # Authentication precedence
//
// The concrete client (see pkg/rtbclient and internal/client) applies:
//  1. AccessToken: if set, it is used directly as a static Bearer token.
//  2. KeyFile: a service account JSON key; tokens are minted with the
//     realtime-bidding scope (or Scopes, when set) and refreshed as needed.
//  3. No credentials: requests are sent without authentication. Useful
//     against local fakes only.
//
// # Timeouts and retries
//
// Per-request timeouts should be controlled via the context passed to client
// methods. Transient failures (>=500, 429 and connection errors) are retried
// by the transport according to RetryMax/RetryWaitMin/RetryWaitMax. Callers
// such as the pagination helpers never retry on their own.
type Config struct {
	// Endpoint: base URL of the API. Defaults to
	// https://realtimebidding.googleapis.com. rtbclient.New trims a trailing
	// slash and adds "https://" when no scheme is present.
	Endpoint string

	// KeyFile: path to a service account JSON key.
	KeyFile string
	// AccessToken: if set, used directly as a Bearer token.
	AccessToken string
	// Scopes overrides the OAuth2 scopes requested for KeyFile credentials.
	Scopes []string

	// HTTPTimeout: per-attempt timeout of the underlying HTTP client.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures. If 0, the
	// client default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: traces every request and response at debug level when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// QuotaProject bills API quota to this Google Cloud project, sent as the
	// X-Goog-User-Project header.
	QuotaProject string
}
