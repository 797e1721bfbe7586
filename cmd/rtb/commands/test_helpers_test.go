package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend unavailable")

// FakeClient is an in-memory rtb.Client. List pages are keyed by page token;
// a token present in errs fails instead.
type FakeClient struct {
	bidders     *FakeBidders
	endpoints   *FakeEndpoints
	connections *FakePublisherConnections
}

func NewFakeClient() *FakeClient {
	return &FakeClient{
		bidders:     &FakeBidders{pages: map[string]*rtb.BiddersList{}, errs: map[string]error{}},
		endpoints:   &FakeEndpoints{pages: map[string]*rtb.EndpointsList{}, errs: map[string]error{}},
		connections: &FakePublisherConnections{pages: map[string]*rtb.PublisherConnectionsList{}, errs: map[string]error{}},
	}
}

func (c *FakeClient) Bidders() rtb.BiddersClient { return c.bidders }

func (c *FakeClient) Endpoints() rtb.EndpointsClient { return c.endpoints }

func (c *FakeClient) PublisherConnections() rtb.PublisherConnectionsClient { return c.connections }

type FakeBidders struct {
	pages    map[string]*rtb.BiddersList
	errs     map[string]error
	requests []rtb.ListParams
}

func (f *FakeBidders) Get(_ context.Context, name string) (*rtb.Bidder, error) {
	return &rtb.Bidder{Name: name}, nil
}

func (f *FakeBidders) List(_ context.Context, params *rtb.ListParams) (*rtb.BiddersList, error) {
	f.requests = append(f.requests, *params)
	if err, ok := f.errs[params.PageToken]; ok {
		return nil, err
	}

	return f.pages[params.PageToken], nil
}

type FakeEndpoints struct {
	pages    map[string]*rtb.EndpointsList
	errs     map[string]error
	requests []rtb.ListParams
	parents  []string
	patched  *rtb.EndpointPatchRequest
}

func (f *FakeEndpoints) Get(_ context.Context, name string) (*rtb.Endpoint, error) {
	return &rtb.Endpoint{Name: name, URL: "https://bid.example.com", MaximumQPS: 1000}, nil
}

func (f *FakeEndpoints) List(_ context.Context, parent string, params *rtb.ListParams) (*rtb.EndpointsList, error) {
	f.parents = append(f.parents, parent)
	f.requests = append(f.requests, *params)

	if err, ok := f.errs[params.PageToken]; ok {
		return nil, err
	}

	return f.pages[params.PageToken], nil
}

func (f *FakeEndpoints) Patch(_ context.Context, name string, request *rtb.EndpointPatchRequest) (*rtb.Endpoint, error) {
	f.patched = request
	endpoint := request.Endpoint
	endpoint.Name = name

	return &endpoint, nil
}

type FakePublisherConnections struct {
	pages    map[string]*rtb.PublisherConnectionsList
	errs     map[string]error
	requests []rtb.ListParams
	approved []string
	rejected []string
	batchErr error
}

func (f *FakePublisherConnections) Get(_ context.Context, name string) (*rtb.PublisherConnection, error) {
	return &rtb.PublisherConnection{Name: name, BiddingState: rtb.BiddingStateApproved}, nil
}

func (f *FakePublisherConnections) List(_ context.Context, _ string, params *rtb.ListParams) (*rtb.PublisherConnectionsList, error) {
	f.requests = append(f.requests, *params)
	if err, ok := f.errs[params.PageToken]; ok {
		return nil, err
	}

	return f.pages[params.PageToken], nil
}

func (f *FakePublisherConnections) BatchApprove(_ context.Context, _ string, names []string) (*rtb.BatchPublisherConnectionsResponse, error) {
	f.approved = names

	return f.batchResponse(names, rtb.BiddingStateApproved)
}

func (f *FakePublisherConnections) BatchReject(_ context.Context, _ string, names []string) (*rtb.BatchPublisherConnectionsResponse, error) {
	f.rejected = names

	return f.batchResponse(names, rtb.BiddingStateRejected)
}

func (f *FakePublisherConnections) batchResponse(names []string, state string) (*rtb.BatchPublisherConnectionsResponse, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}

	resp := &rtb.BatchPublisherConnectionsResponse{}
	for _, name := range names {
		resp.PublisherConnections = append(resp.PublisherConnections, rtb.PublisherConnection{
			Name:         name,
			BiddingState: state,
		})
	}

	return resp, nil
}

// findSubcommand returns the direct subcommand of cmd with the given name.
func findSubcommand(t *testing.T, cmd *cobra.Command, name string) *cobra.Command {
	t.Helper()

	for _, sub := range cmd.Commands() {
		if sub.Name() == name {
			return sub
		}
	}

	require.Failf(t, "subcommand not found", "%s has no subcommand %q", cmd.Name(), name)

	return nil
}

func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	return names
}
