package client

import (
	"context"
	"fmt"
	"time"

	"github.com/fivetwenty-io/rtb-client/internal/auth"
	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/internal/http"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
)

var _ rtb.Client = (*Client)(nil)

// Client implements the rtb.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       rtb.Logger

	// Resource clients
	bidders              rtb.BiddersClient
	endpoints            rtb.EndpointsClient
	publisherConnections rtb.PublisherConnectionsClient
}

// createTokenManager picks the credentials named in config. A nil manager
// means requests are sent unauthenticated.
func createTokenManager(ctx context.Context, config *rtb.Config) (auth.TokenManager, error) {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken), nil
	}

	if config.KeyFile != "" {
		manager, err := auth.NewServiceAccountTokenManagerFromFile(ctx, config.KeyFile, config.Scopes...)
		if err != nil {
			return nil, fmt.Errorf("loading credentials from %s: %w", config.KeyFile, err)
		}

		return manager, nil
	}

	return nil, nil //nolint:nilnil // no credentials is a valid configuration
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rtb.Config) []http.Option {
	var httpOpts []http.Option

	chain := rtb.NewInterceptorChain()

	if config.QuotaProject != "" {
		chain.OnRequest(rtb.QuotaProjectInterceptor(config.QuotaProject))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))

		if config.Debug {
			chain.OnRequest(rtb.TraceRequests(config.Logger)).
				OnResponse(rtb.TraceResponses(config.Logger))
		}
	}

	if !chain.Empty() {
		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Real-time Bidding API client.
func New(ctx context.Context, config *rtb.Config) (*Client, error) {
	if config == nil {
		return nil, rtb.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, rtb.ErrEndpointRequired
	}

	tokenManager, err := createTokenManager(ctx, config)
	if err != nil {
		return nil, err
	}

	return newClient(config, tokenManager), nil
}

// NewWithTokenManager creates a new client that authenticates with tokenManager.
func NewWithTokenManager(config *rtb.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, rtb.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, rtb.ErrEndpointRequired
	}

	return newClient(config, tokenManager), nil
}

func newClient(config *rtb.Config, tokenManager auth.TokenManager) *Client {
	client := &Client{
		httpClient:   http.NewClient(config.Endpoint, tokenManager, createHTTPClientOptions(config)...),
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.bidders = NewBiddersClient(c.httpClient)
	c.endpoints = NewEndpointsClient(c.httpClient)
	c.publisherConnections = NewPublisherConnectionsClient(c.httpClient)
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// Bidders implements rtb.Client.Bidders.
func (c *Client) Bidders() rtb.BiddersClient {
	return c.bidders
}

// Endpoints implements rtb.Client.Endpoints.
func (c *Client) Endpoints() rtb.EndpointsClient {
	return c.endpoints
}

// PublisherConnections implements rtb.Client.PublisherConnections.
func (c *Client) PublisherConnections() rtb.PublisherConnectionsClient {
	return c.publisherConnections
}
