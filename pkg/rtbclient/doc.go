// Package rtbclient is the entry point for constructing a Real-time Bidding
// API client that implements the rtb.Client interface.
//
// It fills in configuration defaults, picks the credentials to use and wires
// the HTTP transport underneath the resource clients declared in package rtb.
//
// Quick start
//
//	cli, err := rtbclient.NewWithKeyFile(ctx, "/path/to/service-account.json")
//	if err != nil {
//	  log.Fatal(err)
//	}
//
//	params := rtb.NewListParams().WithPageSize(50)
//	for endpoint, err := range rtb.ListAll[rtb.Endpoint](ctx, cli.Endpoints(), rtb.BidderName(12345), params) {
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//	  fmt.Println(endpoint.Name)
//	}
//
// Credentials are chosen in this order: Config.AccessToken, then
// Config.KeyFile. Without either, requests are sent unauthenticated, which is
// only useful against local fakes.
package rtbclient
