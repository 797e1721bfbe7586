package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/fivetwenty-io/rtb-client/internal/http"
	"github.com/stretchr/testify/assert"
)

// NewTestClient creates an unauthenticated client for baseURL.
func NewTestClient(baseURL string) *Client {
	// Create HTTP client without token manager for testing
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// ExpectedRequest describes the request a test server should receive.
type ExpectedRequest struct {
	Method string
	Path   string
	Query  map[string]string
}

// NewJSONServer starts a server that checks each request against expected, in
// order, and answers with the matching response body.
func NewJSONServer(t *testing.T, expected []ExpectedRequest, responses []interface{}) (*httptest.Server, *int) {
	t.Helper()

	calls := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if calls >= len(expected) {
			t.Errorf("unexpected request %s %s", request.Method, request.URL.Path)
			writer.WriteHeader(http.StatusInternalServerError)

			return
		}

		want := expected[calls]
		assert.Equal(t, want.Method, request.Method)
		assert.Equal(t, want.Path, request.URL.Path)

		for key, value := range want.Query {
			assert.Equal(t, value, request.URL.Query().Get(key), "query parameter %s", key)
		}

		writer.Header().Set("Content-Type", "application/json")

		if raw, ok := responses[calls].(string); ok {
			_, _ = writer.Write([]byte(raw))
		} else {
			_ = json.NewEncoder(writer).Encode(responses[calls])
		}

		calls++
	}))
	t.Cleanup(server.Close)

	return server, &calls
}

// NewErrorServer starts a server that always fails with status and a Google
// API error payload.
func NewErrorServer(t *testing.T, status int, message string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"code":    status,
				"message": message,
			},
		})
	}))
	t.Cleanup(server.Close)

	return server
}
