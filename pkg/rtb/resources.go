package rtb

import (
	"context"
	"time"
)

// Trading locations an endpoint can be hosted in.
const (
	TradingLocationUnspecified = "TRADING_LOCATION_UNSPECIFIED"
	TradingLocationUSWest      = "US_WEST"
	TradingLocationUSEast      = "US_EAST"
	TradingLocationEurope      = "EUROPE"
	TradingLocationAsia        = "ASIA"
)

// Bid protocols an endpoint can speak.
const (
	BidProtocolUnspecified     = "BID_PROTOCOL_UNSPECIFIED"
	BidProtocolGoogleRTB       = "GOOGLE_RTB"
	BidProtocolOpenRTBJSON     = "OPENRTB_JSON"
	BidProtocolOpenRTBProtobuf = "OPENRTB_PROTOBUF"
)

// Bidding states of a publisher connection.
const (
	BiddingStateUnspecified = "STATE_UNSPECIFIED"
	BiddingStatePending     = "PENDING"
	BiddingStateRejected    = "REJECTED"
	BiddingStateApproved    = "APPROVED"
)

// Bidder is a bidder account.
type Bidder struct {
	Name                                 string `json:"name"                                           yaml:"name"`
	CookieMatchingURL                    string `json:"cookieMatchingUrl,omitempty"                    yaml:"cookie_matching_url,omitempty"`
	CookieMatchingNetworkID              string `json:"cookieMatchingNetworkId,omitempty"              yaml:"cookie_matching_network_id,omitempty"`
	BypassNonguaranteedDealsPretargeting bool   `json:"bypassNonguaranteedDealsPretargeting,omitempty" yaml:"bypass_nonguaranteed_deals_pretargeting,omitempty"`
	DealsBillingID                       string `json:"dealsBillingId,omitempty"                       yaml:"deals_billing_id,omitempty"`
}

// Endpoint is a bidder endpoint that receives bid requests.
type Endpoint struct {
	Name            string `json:"name,omitempty"              yaml:"name"`
	URL             string `json:"url,omitempty"               yaml:"url,omitempty"`
	MaximumQPS      int64  `json:"maximumQps,string,omitempty" yaml:"maximum_qps,omitempty"`
	TradingLocation string `json:"tradingLocation,omitempty"   yaml:"trading_location,omitempty"`
	BidProtocol     string `json:"bidProtocol,omitempty"       yaml:"bid_protocol,omitempty"`
}

// EndpointPatchRequest updates the fields of an endpoint named in UpdateMask.
type EndpointPatchRequest struct {
	Endpoint   Endpoint
	UpdateMask []string
}

// PublisherConnection is the connection between a bidder and a publisher.
type PublisherConnection struct {
	Name              string     `json:"name"                        yaml:"name"`
	PublisherPlatform string     `json:"publisherPlatform,omitempty" yaml:"publisher_platform,omitempty"`
	DisplayName       string     `json:"displayName,omitempty"       yaml:"display_name,omitempty"`
	BiddingState      string     `json:"biddingState,omitempty"      yaml:"bidding_state,omitempty"`
	CreateTime        *time.Time `json:"createTime,omitempty"        yaml:"create_time,omitempty"`
}

// BatchPublisherConnectionsRequest is the body of batchApprove and batchReject.
type BatchPublisherConnectionsRequest struct {
	Names []string `json:"names" yaml:"names"`
}

// BatchPublisherConnectionsResponse lists the connections a batch call changed.
type BatchPublisherConnectionsResponse struct {
	PublisherConnections []PublisherConnection `json:"publisherConnections,omitempty" yaml:"publisher_connections,omitempty"`
}

// BiddersClient defines operations on bidders.
type BiddersClient interface {
	Get(ctx context.Context, name string) (*Bidder, error)
	List(ctx context.Context, params *ListParams) (*BiddersList, error)
}

// EndpointsClient defines operations on bidders.endpoints.
type EndpointsClient interface {
	Get(ctx context.Context, name string) (*Endpoint, error)
	List(ctx context.Context, parent string, params *ListParams) (*EndpointsList, error)
	Patch(ctx context.Context, name string, request *EndpointPatchRequest) (*Endpoint, error)
}

// PublisherConnectionsClient defines operations on bidders.publisherConnections.
type PublisherConnectionsClient interface {
	Get(ctx context.Context, name string) (*PublisherConnection, error)
	List(ctx context.Context, parent string, params *ListParams) (*PublisherConnectionsList, error)
	BatchApprove(ctx context.Context, parent string, names []string) (*BatchPublisherConnectionsResponse, error)
	BatchReject(ctx context.Context, parent string, names []string) (*BatchPublisherConnectionsResponse, error)
}
