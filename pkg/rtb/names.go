package rtb

import (
	"fmt"
	"strconv"
)

// BidderName returns the resource name of a bidder account.
func BidderName(accountID int64) string {
	return "bidders/" + strconv.FormatInt(accountID, 10)
}

// EndpointName returns the resource name of a bidder endpoint.
func EndpointName(accountID, endpointID int64) string {
	return fmt.Sprintf("bidders/%d/endpoints/%d", accountID, endpointID)
}

// PublisherConnectionName returns the resource name of a publisher connection.
// Publisher IDs are opaque strings, e.g. "pub-1234" or an app ID.
func PublisherConnectionName(accountID int64, publisherID string) string {
	return fmt.Sprintf("bidders/%d/publisherConnections/%s", accountID, publisherID)
}

// PublisherConnectionNames maps publisher IDs to connection resource names,
// preserving order.
func PublisherConnectionNames(accountID int64, publisherIDs []string) []string {
	names := make([]string, 0, len(publisherIDs))
	for _, id := range publisherIDs {
		names = append(names, PublisherConnectionName(accountID, id))
	}

	return names
}
