package rtb

// ListResponse is one page of a list operation.
//
// Resources is nil when the server omitted the collection field; that is a
// page with zero items, not an error. An empty NextPageToken marks the last
// page.
type ListResponse[T any] struct {
	Resources     []T    `json:"resources,omitempty"     yaml:"resources,omitempty"`
	NextPageToken string `json:"nextPageToken,omitempty" yaml:"nextPageToken,omitempty"`
}

// HasNextPage reports whether the server returned a continuation token.
func (r *ListResponse[T]) HasNextPage() bool {
	return r != nil && r.NextPageToken != ""
}

// EndpointsList represents a page of Endpoint resources.
type EndpointsList = ListResponse[Endpoint]

// PublisherConnectionsList represents a page of PublisherConnection resources.
type PublisherConnectionsList = ListResponse[PublisherConnection]

// BiddersList represents a page of Bidder resources.
type BiddersList = ListResponse[Bidder]
