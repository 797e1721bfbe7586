package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API defaults.
const (
	// DefaultEndpoint is the base URL of the Real-time Bidding API.
	DefaultEndpoint = "https://realtimebidding.googleapis.com"

	// APIVersionPath prefixes every resource path.
	APIVersionPath = "/v1"

	// RealTimeBiddingScope is the OAuth2 scope required by the API.
	RealTimeBiddingScope = "https://www.googleapis.com/auth/realtime-bidding"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "rtb-client-go/1.0"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// LowRetryMax is used for operations that should retry fewer times.
	LowRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// HTTPStatusBadRequest is the lowest status treated as an error.
const HTTPStatusBadRequest = 400

// Pagination.
const (
	// MaximumPageSize is the largest page size the samples request by default.
	MaximumPageSize = 50

	// DefaultMaxPages means no page limit.
	DefaultMaxPages = 0
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 30 * time.Second
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MinColumnWidth is the narrowest a truncated table cell may get.
	MinColumnWidth = 12

	// Ellipsis marks truncated cell values.
	Ellipsis = "..."

	// DateTimeFormat is used for timestamps in tables.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatText for per-item detail output.
	FormatText = "text"
)

// Validation and limits.
const (
	// MinimumArgumentCount is the number of arguments for key/value commands.
	MinimumArgumentCount = 2
)
