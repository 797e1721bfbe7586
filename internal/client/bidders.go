package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/internal/http"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
)

// BiddersClient implements rtb.BiddersClient.
type BiddersClient struct {
	httpClient *http.Client
}

// NewBiddersClient creates a new bidders client.
func NewBiddersClient(httpClient *http.Client) *BiddersClient {
	return &BiddersClient{
		httpClient: httpClient,
	}
}

// Get implements rtb.BiddersClient.Get.
func (c *BiddersClient) Get(ctx context.Context, name string) (*rtb.Bidder, error) {
	bidder, err := getResource[rtb.Bidder](ctx, c.httpClient, name)
	if err != nil {
		return nil, fmt.Errorf("getting bidder: %w", err)
	}

	return bidder, nil
}

// List implements rtb.BiddersClient.List.
func (c *BiddersClient) List(ctx context.Context, params *rtb.ListParams) (*rtb.BiddersList, error) {
	list, err := listPage[rtb.Bidder](ctx, c.httpClient, constants.APIVersionPath+"/bidders", "bidders", params)
	if err != nil {
		return nil, fmt.Errorf("listing bidders: %w", err)
	}

	return list, nil
}
