// Package rtb provides types, interfaces, and helpers for working with the
// Authorized Buyers Real-time Bidding API v1.
//
// # Overview
//
// The rtb package defines the resource types (Bidder, Endpoint,
// PublisherConnection) and the interfaces of the resource-oriented clients
// (BiddersClient, EndpointsClient, PublisherConnectionsClient). A concrete
// implementation is provided by the rtbclient package, which wires
// configuration, credentials, and transport.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/rtb-client/pkg/rtb"
//	  "github.com/fivetwenty-io/rtb-client/pkg/rtbclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := rtbclient.New(ctx, &rtb.Config{KeyFile: "/path/to/key.json"})
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := cli.Endpoints().List(ctx, rtb.BidderName(12345), rtb.NewListParams().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Pagination
//
// List operations return one page at a time together with an opaque
// continuation token. ListAll walks the token chain lazily:
//
//	for endpoint, err := range rtb.ListAll(ctx, cli.Endpoints(), rtb.BidderName(12345), nil) {
//	  if err != nil { /* enumeration stopped */ break }
//	  _ = endpoint
//	}
//
// NewPaginationIterator and FetchAllPages offer the same walk as an explicit
// iterator or a collected slice. None of them retry: retries of transient
// failures belong to the transport, and any error ends the walk unchanged.
//
// # Errors
//
// API errors are *googleapi.Error values. IsNotFound, IsUnauthorized, and
// IsForbidden branch on the common cases.
package rtb
