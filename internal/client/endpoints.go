package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/rtb-client/internal/http"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
)

// EndpointsClient implements rtb.EndpointsClient.
type EndpointsClient struct {
	httpClient *http.Client
}

// NewEndpointsClient creates a new endpoints client.
func NewEndpointsClient(httpClient *http.Client) *EndpointsClient {
	return &EndpointsClient{
		httpClient: httpClient,
	}
}

// Get implements rtb.EndpointsClient.Get.
func (c *EndpointsClient) Get(ctx context.Context, name string) (*rtb.Endpoint, error) {
	endpoint, err := getResource[rtb.Endpoint](ctx, c.httpClient, name)
	if err != nil {
		return nil, fmt.Errorf("getting endpoint: %w", err)
	}

	return endpoint, nil
}

// List implements rtb.EndpointsClient.List.
func (c *EndpointsClient) List(ctx context.Context, parent string, params *rtb.ListParams) (*rtb.EndpointsList, error) {
	if parent == "" {
		return nil, rtb.ErrParentRequired
	}

	list, err := listPage[rtb.Endpoint](ctx, c.httpClient, resourcePath(parent, "/endpoints"), "endpoints", params)
	if err != nil {
		return nil, fmt.Errorf("listing endpoints: %w", err)
	}

	return list, nil
}

// Patch implements rtb.EndpointsClient.Patch. Only the fields named in the
// update mask are changed.
func (c *EndpointsClient) Patch(ctx context.Context, name string, request *rtb.EndpointPatchRequest) (*rtb.Endpoint, error) {
	if name == "" {
		return nil, rtb.ErrNameRequired
	}

	if request == nil || len(request.UpdateMask) == 0 {
		return nil, rtb.ErrUpdateMaskRequired
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PATCH",
		Path:   resourcePath(name, ""),
		Query:  url.Values{"updateMask": []string{strings.Join(request.UpdateMask, ",")}},
		Body:   request.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("patching endpoint: %w", err)
	}

	var endpoint rtb.Endpoint

	err = json.Unmarshal(resp.Body, &endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing endpoint response: %w", err)
	}

	return &endpoint, nil
}
