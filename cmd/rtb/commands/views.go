package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
)

func endpointView() view[rtb.Endpoint] {
	return view[rtb.Endpoint]{
		empty:   "No endpoints found.",
		columns: []string{"Name", "URL", "Maximum QPS", "Trading Location", "Bid Protocol"},
		row: func(endpoint rtb.Endpoint) []string {
			return []string{
				endpoint.Name,
				orNotAvailable(endpoint.URL),
				strconv.FormatInt(endpoint.MaximumQPS, 10),
				orNotAvailable(endpoint.TradingLocation),
				orNotAvailable(endpoint.BidProtocol),
			}
		},
		detail: printEndpoint,
	}
}

func printEndpoint(out io.Writer, endpoint rtb.Endpoint) {
	_, _ = fmt.Fprintf(out, "* Endpoint name: %s\n", endpoint.Name)
	_, _ = fmt.Fprintf(out, "\t- URL: %s\n", endpoint.URL)
	_, _ = fmt.Fprintf(out, "\t- Maximum QPS: %d\n", endpoint.MaximumQPS)
	_, _ = fmt.Fprintf(out, "\t- Trading Location: %s\n", endpoint.TradingLocation)
	_, _ = fmt.Fprintf(out, "\t- Bid Protocol: %s\n", endpoint.BidProtocol)
}

func publisherConnectionView() view[rtb.PublisherConnection] {
	return view[rtb.PublisherConnection]{
		empty:   "No publisher connections found.",
		columns: []string{"Name", "Publisher Platform", "Display Name", "Bidding State", "Created"},
		row: func(connection rtb.PublisherConnection) []string {
			created := constants.NotAvailable
			if connection.CreateTime != nil {
				created = connection.CreateTime.Format(constants.DateTimeFormat)
			}

			return []string{
				connection.Name,
				orNotAvailable(connection.PublisherPlatform),
				orNotAvailable(connection.DisplayName),
				orNotAvailable(connection.BiddingState),
				created,
			}
		},
		detail: printPublisherConnection,
	}
}

func printPublisherConnection(out io.Writer, connection rtb.PublisherConnection) {
	_, _ = fmt.Fprintf(out, "* Publisher connection name: %s\n", connection.Name)
	_, _ = fmt.Fprintf(out, "\t- Publisher platform: %s\n", connection.PublisherPlatform)
	_, _ = fmt.Fprintf(out, "\t- Display name: %s\n", connection.DisplayName)
	_, _ = fmt.Fprintf(out, "\t- Bidding state: %s\n", connection.BiddingState)

	if connection.CreateTime != nil {
		_, _ = fmt.Fprintf(out, "\t- Create time: %s\n", connection.CreateTime.Format(time.RFC3339))
	}
}

func bidderView() view[rtb.Bidder] {
	return view[rtb.Bidder]{
		empty:   "No bidders found.",
		columns: []string{"Name", "Cookie Matching URL", "Network ID", "Bypass Pretargeting", "Deals Billing ID"},
		row: func(bidder rtb.Bidder) []string {
			return []string{
				bidder.Name,
				orNotAvailable(bidder.CookieMatchingURL),
				orNotAvailable(bidder.CookieMatchingNetworkID),
				strconv.FormatBool(bidder.BypassNonguaranteedDealsPretargeting),
				orNotAvailable(bidder.DealsBillingID),
			}
		},
		detail: printBidder,
	}
}

func printBidder(out io.Writer, bidder rtb.Bidder) {
	_, _ = fmt.Fprintf(out, "* Bidder name: %s\n", bidder.Name)
	_, _ = fmt.Fprintf(out, "\t- Cookie matching URL: %s\n", bidder.CookieMatchingURL)
	_, _ = fmt.Fprintf(out, "\t- Cookie matching network ID: %s\n", bidder.CookieMatchingNetworkID)
	_, _ = fmt.Fprintf(out, "\t- Bypass nonguaranteed deals pretargeting: %t\n", bidder.BypassNonguaranteedDealsPretargeting)
	_, _ = fmt.Fprintf(out, "\t- Deals billing ID: %s\n", bidder.DealsBillingID)
}
