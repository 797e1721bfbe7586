package rtbclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/rtb-client/internal/client"
	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
)

// New creates a new Real-time Bidding API client.
func New(ctx context.Context, config *rtb.Config) (rtb.Client, error) {
	if config == nil {
		return nil, rtb.ErrConfigRequired
	}

	config.Endpoint = normalizeEndpoint(config.Endpoint)

	client, err := client.New(ctx, config)
	if err != nil {
		if config.KeyFile != "" {
			return nil, fmt.Errorf("unable to create Real-time Bidding API client (check that %s is a service account JSON key): %w", config.KeyFile, err)
		}

		return nil, fmt.Errorf("unable to create Real-time Bidding API client: %w", err)
	}

	return client, nil
}

// NewWithKeyFile creates a client that authenticates with a service account
// JSON key.
func NewWithKeyFile(ctx context.Context, keyFile string) (rtb.Client, error) {
	return New(ctx, &rtb.Config{KeyFile: keyFile})
}

// NewWithToken creates a client that sends a fixed access token.
func NewWithToken(ctx context.Context, endpoint, token string) (rtb.Client, error) {
	return New(ctx, &rtb.Config{Endpoint: endpoint, AccessToken: token})
}

// normalizeEndpoint defaults an empty endpoint, adds a missing scheme and
// drops a trailing slash.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return constants.DefaultEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
