package rtb_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRejected = errors.New("rejected")

type recordedLog struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// RecordingLogger keeps every log call for inspection.
type RecordingLogger struct {
	logs []recordedLog
}

func (l *RecordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, recordedLog{"debug", msg, fields})
}

func (l *RecordingLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, recordedLog{"info", msg, fields})
}

func (l *RecordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, recordedLog{"warn", msg, fields})
}

func (l *RecordingLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, recordedLog{"error", msg, fields})
}

func TestInterceptorChain_Order(t *testing.T) {
	t.Parallel()

	order := make([]string, 0)

	chain := rtb.NewInterceptorChain().
		OnRequest(func(ctx context.Context, req *rtb.Request) error {
			order = append(order, "request-1")

			return nil
		}).
		OnRequest(func(ctx context.Context, req *rtb.Request) error {
			order = append(order, "request-2")

			return nil
		}).
		OnResponse(func(ctx context.Context, req *rtb.Request, resp *rtb.Response) error {
			order = append(order, "response-1")

			return nil
		})

	assert.False(t, chain.Empty())

	req := &rtb.Request{Method: http.MethodGet, Path: "/v1/bidders"}
	require.NoError(t, chain.BeforeSend(context.Background(), req))
	require.NoError(t, chain.AfterReceive(context.Background(), req, &rtb.Response{StatusCode: http.StatusOK}))

	assert.Equal(t, []string{"request-1", "request-2", "response-1"}, order)
}

func TestInterceptorChain_Empty(t *testing.T) {
	t.Parallel()

	var nilChain *rtb.InterceptorChain

	assert.True(t, nilChain.Empty())
	assert.True(t, rtb.NewInterceptorChain().Empty())
	require.NoError(t, nilChain.BeforeSend(context.Background(), &rtb.Request{}))
	require.NoError(t, nilChain.AfterReceive(context.Background(), &rtb.Request{}, &rtb.Response{}))
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	called := false

	chain := rtb.NewInterceptorChain().
		OnRequest(func(ctx context.Context, req *rtb.Request) error {
			return errRejected
		}).
		OnRequest(func(ctx context.Context, req *rtb.Request) error {
			called = true

			return nil
		})

	err := chain.BeforeSend(context.Background(), &rtb.Request{})
	require.ErrorIs(t, err, errRejected)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestRequest_Resource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/v1/bidders", "bidders"},
		{"/v1/bidders/1/endpoints", "bidders/1/endpoints"},
		{"/v1/bidders/1/publisherConnections:batchReject", "bidders/1/publisherConnections:batchReject"},
		{"/bidders", "bidders"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, (&rtb.Request{Path: tt.path}).Resource())
		})
	}
}

func TestQuotaProjectInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := rtb.QuotaProjectInterceptor("billing-project")

	req := &rtb.Request{}
	require.NoError(t, interceptor(context.Background(), req))
	assert.Equal(t, "billing-project", req.Headers.Get("x-goog-user-project"))
}

//nolint:funlen
func TestTraceInterceptors(t *testing.T) {
	t.Parallel()

	t.Run("list page", func(t *testing.T) {
		t.Parallel()

		logger := &RecordingLogger{}
		req := &rtb.Request{
			Method: http.MethodGet,
			Path:   "/v1/bidders/1/endpoints",
			Query:  url.Values{"pageSize": {"50"}, "pageToken": {"t1"}},
		}

		require.NoError(t, rtb.TraceRequests(logger)(context.Background(), req))
		assert.False(t, req.Started.IsZero())
		require.NoError(t, rtb.TraceResponses(logger)(context.Background(), req, &rtb.Response{StatusCode: http.StatusOK}))

		require.Len(t, logger.logs, 2)

		sent := logger.logs[0]
		assert.Equal(t, "debug", sent.level)
		assert.Equal(t, "Sending API request", sent.msg)
		assert.Equal(t, "bidders/1/endpoints", sent.fields["resource"])
		assert.Equal(t, "50", sent.fields["page_size"])
		assert.Equal(t, "t1", sent.fields["page_token"])

		received := logger.logs[1]
		assert.Equal(t, "debug", received.level)
		assert.Equal(t, "Received API response", received.msg)
		assert.Equal(t, http.StatusOK, received.fields["status"])
		assert.Contains(t, received.fields, "duration")
	})

	t.Run("first page has no token", func(t *testing.T) {
		t.Parallel()

		logger := &RecordingLogger{}
		req := &rtb.Request{Method: http.MethodGet, Path: "/v1/bidders"}

		require.NoError(t, rtb.TraceRequests(logger)(context.Background(), req))
		require.Len(t, logger.logs, 1)
		assert.NotContains(t, logger.logs[0].fields, "page_token")
		assert.NotContains(t, logger.logs[0].fields, "page_size")
	})

	t.Run("failed call", func(t *testing.T) {
		t.Parallel()

		logger := &RecordingLogger{}
		req := &rtb.Request{Method: http.MethodGet, Path: "/v1/bidders/1"}

		require.NoError(t, rtb.TraceResponses(logger)(context.Background(), req, &rtb.Response{
			StatusCode: http.StatusNotFound,
			Error:      errRejected,
		}))

		require.Len(t, logger.logs, 1)
		assert.Equal(t, "debug", logger.logs[0].level)
		assert.Equal(t, "API request failed", logger.logs[0].msg)
		assert.Equal(t, "rejected", logger.logs[0].fields["error"])
		assert.NotContains(t, logger.logs[0].fields, "duration")
	})
}
