// Package transport is a client for the transport.opendata.ch REST API. It
// validates queries, builds request URLs and hands raw response payloads back
// to the caller; it never parses them.
package transport

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/transitkit/opendata-go/pkg/http/client"
)

const DefaultBaseURL = "http://transport.opendata.ch/v1/"

// Client is safe for concurrent use. Calls share no mutable state.
type Client struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient client.Interface
}

type Option func(*Client)

// WithBaseURL points the client at another API root
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the transport used for every GET
func WithHTTPClient(httpClient client.Interface) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent of the default HTTP client
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}

	if c.httpClient == nil {
		c.httpClient = client.New(client.Options{
			Timeout:   c.timeout,
			UserAgent: c.userAgent,
		})
	}

	return c
}

// FindLocations returns matching locations for a text query or coordinates.
// Validation and encoding errors are returned immediately; everything the
// network does is reported through the channel, which yields exactly one
// Result and is then closed.
func (c *Client) FindLocations(ctx context.Context, q LocationQuery) (<-chan Result, error) {
	reqURL, err := c.LocationsURL(q)
	if err != nil {
		log.Debug().Err(err).Str("resource", string(ResourceLocations)).Msg("Rejected query")
		return nil, err
	}
	return c.dispatch(ctx, ResourceLocations, reqURL), nil
}

// FindConnections returns the next connections from one location to another
func (c *Client) FindConnections(ctx context.Context, q ConnectionQuery) (<-chan Result, error) {
	reqURL, err := c.ConnectionsURL(q)
	if err != nil {
		log.Debug().Err(err).Str("resource", string(ResourceConnections)).Msg("Rejected query")
		return nil, err
	}
	return c.dispatch(ctx, ResourceConnections, reqURL), nil
}

// FindStationboard returns the next departures at a station
func (c *Client) FindStationboard(ctx context.Context, q StationboardQuery) (<-chan Result, error) {
	reqURL, err := c.StationboardURL(q)
	if err != nil {
		log.Debug().Err(err).Str("resource", string(ResourceStationboard)).Msg("Rejected query")
		return nil, err
	}
	return c.dispatch(ctx, ResourceStationboard, reqURL), nil
}

func (c *Client) LocationsForQuery(ctx context.Context, query string, locationType LocationType) (<-chan Result, error) {
	return c.FindLocations(ctx, LocationQuery{Query: query, Type: locationType})
}

func (c *Client) LocationsByCoordinates(ctx context.Context, x, y float64, modes ...TransportMode) (<-chan Result, error) {
	return c.FindLocations(ctx, LocationQuery{
		Coordinates:     &Coordinates{X: x, Y: y},
		Transportations: modes,
	})
}

func (c *Client) ConnectionsBetween(ctx context.Context, from, to string) (<-chan Result, error) {
	return c.FindConnections(ctx, ConnectionQuery{From: from, To: to})
}

func (c *Client) StationboardForStation(ctx context.Context, station string) (<-chan Result, error) {
	return c.FindStationboard(ctx, StationboardQuery{Station: station})
}

func (c *Client) StationboardForID(ctx context.Context, id string) (<-chan Result, error) {
	return c.FindStationboard(ctx, StationboardQuery{ID: id})
}

// dispatch runs one GET on its own goroutine. Cancelling ctx does not abort
// the request; callers that lose interest just drop the channel.
func (c *Client) dispatch(ctx context.Context, resource Resource, reqURL string) <-chan Result {
	results := make(chan Result, 1)
	ctx = context.WithoutCancel(ctx)

	log.Debug().Str("resource", string(resource)).Str("url", reqURL).Msg("Dispatching request")

	go func() {
		defer close(results)

		start := time.Now()
		resp, err := c.httpClient.Get(ctx, reqURL)
		result := classify(resource, reqURL, resp, err)

		event := log.Debug()
		if result.Err != nil {
			event = log.Warn().Err(result.Err)
		}
		event.Str("resource", string(resource)).
			Int("status", statusOf(resp)).
			Int("bytes", len(result.Body)).
			Dur("elapsed", time.Since(start)).
			Msg("Request finished")

		results <- result
	}()

	return results
}
