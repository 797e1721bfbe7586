package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/rtb-client/internal/http"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
)

// PublisherConnectionsClient implements rtb.PublisherConnectionsClient.
type PublisherConnectionsClient struct {
	httpClient *http.Client
}

// NewPublisherConnectionsClient creates a new publisher connections client.
func NewPublisherConnectionsClient(httpClient *http.Client) *PublisherConnectionsClient {
	return &PublisherConnectionsClient{
		httpClient: httpClient,
	}
}

// Get implements rtb.PublisherConnectionsClient.Get.
func (c *PublisherConnectionsClient) Get(ctx context.Context, name string) (*rtb.PublisherConnection, error) {
	connection, err := getResource[rtb.PublisherConnection](ctx, c.httpClient, name)
	if err != nil {
		return nil, fmt.Errorf("getting publisher connection: %w", err)
	}

	return connection, nil
}

// List implements rtb.PublisherConnectionsClient.List.
func (c *PublisherConnectionsClient) List(ctx context.Context, parent string, params *rtb.ListParams) (*rtb.PublisherConnectionsList, error) {
	if parent == "" {
		return nil, rtb.ErrParentRequired
	}

	path := resourcePath(parent, "/publisherConnections")

	list, err := listPage[rtb.PublisherConnection](ctx, c.httpClient, path, "publisherConnections", params)
	if err != nil {
		return nil, fmt.Errorf("listing publisher connections: %w", err)
	}

	return list, nil
}

// BatchApprove implements rtb.PublisherConnectionsClient.BatchApprove.
func (c *PublisherConnectionsClient) BatchApprove(ctx context.Context, parent string, names []string) (*rtb.BatchPublisherConnectionsResponse, error) {
	resp, err := c.batch(ctx, parent, ":batchApprove", names)
	if err != nil {
		return nil, fmt.Errorf("batch approving publisher connections: %w", err)
	}

	return resp, nil
}

// BatchReject implements rtb.PublisherConnectionsClient.BatchReject.
func (c *PublisherConnectionsClient) BatchReject(ctx context.Context, parent string, names []string) (*rtb.BatchPublisherConnectionsResponse, error) {
	resp, err := c.batch(ctx, parent, ":batchReject", names)
	if err != nil {
		return nil, fmt.Errorf("batch rejecting publisher connections: %w", err)
	}

	return resp, nil
}

func (c *PublisherConnectionsClient) batch(ctx context.Context, parent, action string, names []string) (*rtb.BatchPublisherConnectionsResponse, error) {
	if parent == "" {
		return nil, rtb.ErrParentRequired
	}

	if len(names) == 0 {
		return nil, rtb.ErrNamesRequired
	}

	path := resourcePath(parent, "/publisherConnections"+action)

	resp, err := c.httpClient.Post(ctx, path, &rtb.BatchPublisherConnectionsRequest{Names: names})
	if err != nil {
		return nil, err
	}

	var result rtb.BatchPublisherConnectionsResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing batch response: %w", err)
	}

	return &result, nil
}
