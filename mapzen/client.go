package mapzen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Cache preference values sent in the X-Cache request header. HIT lets the
// CDN answer common queries; MISS forces the request through to the
// application servers.
const (
	CacheHit  = "HIT"
	CacheMiss = "MISS"
)

// Client issues requests against the search, routing and libpostal APIs.
//
// Every call is a single synchronous request/response cycle with no retries.
// Callers must serialize the chainable configuration setters (UseAPIKey,
// UseHitCache, UseMissCache) against in-flight requests, or use a separate
// client per goroutine.
type Client struct {
	searchHost string
	routeHost  string
	postalHost string
	version    string
	apiKey     string
	xCache     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a client against the default public hosts. Hosts, the
// API version and transport behavior are adjustable through options.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	client := &Client{
		searchHost: DefaultSearchHost,
		routeHost:  DefaultRouteHost,
		postalHost: DefaultPostalHost,
		version:    DefaultVersion,
		apiKey:     apiKey,
		xCache:     CacheHit,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.searchHost = strings.TrimRight(client.searchHost, "/")
	client.routeHost = strings.TrimRight(client.routeHost, "/")
	client.postalHost = strings.TrimRight(client.postalHost, "/")

	return client
}

// UseAPIKey switches the client to another API key. Empty keys are ignored.
func (c *Client) UseAPIKey(apiKey string) *Client {
	if apiKey == "" {
		c.logger.Warn().Msg("Ignoring empty API key")
		return c
	}
	c.apiKey = apiKey
	return c
}

// UseHitCache marks requests as CDN-cacheable (X-Cache: HIT).
func (c *Client) UseHitCache() *Client {
	c.xCache = CacheHit
	return c
}

// UseMissCache bypasses the CDN cache (X-Cache: MISS).
func (c *Client) UseMissCache() *Client {
	c.xCache = CacheMiss
	return c
}

// Search finds the geographic coordinates of the location described by text.
func (c *Client) Search(ctx context.Context, text string, opts *SearchOptions) (*FeatureCollection, error) {
	if text == "" {
		return nil, &ValidationError{Message: "search text must not be empty"}
	}

	params := opts.values()
	params.Set("text", text)

	var collection FeatureCollection
	if err := c.request(ctx, opSearch, params, &collection); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("features", len(collection.Features)).Str("text", text).Msg("Search completed")
	return &collection, nil
}

// Autocomplete searches for locations matching a partial text input.
func (c *Client) Autocomplete(ctx context.Context, text string, opts *AutocompleteOptions) (*FeatureCollection, error) {
	if text == "" {
		return nil, &ValidationError{Message: "autocomplete text must not be empty"}
	}

	params := opts.values()
	params.Set("text", text)

	var collection FeatureCollection
	if err := c.request(ctx, opAutocomplete, params, &collection); err != nil {
		return nil, err
	}

	return &collection, nil
}

// Reverse finds places and addresses near the given latitude/longitude pair.
func (c *Client) Reverse(ctx context.Context, lat, lon float64, opts *ReverseOptions) (*FeatureCollection, error) {
	params := opts.values()
	params.Set("point_lat", formatCoord(lat))
	params.Set("point_lon", formatCoord(lon))

	var collection FeatureCollection
	if err := c.request(ctx, opReverse, params, &collection); err != nil {
		return nil, err
	}

	return &collection, nil
}

// Route computes a route between two points. Both points become "break"
// locations in the request payload, which is serialized into a single json
// parameter per the upstream convention.
func (c *Client) Route(ctx context.Context, a, b LatLon, opts *RouteOptions) (*RouteResponse, error) {
	costing := DefaultCosting
	if opts != nil && opts.Costing != "" {
		costing = opts.Costing
	}

	payload := routeRequest{
		Locations: []routeLocation{
			{Lat: a.Lat, Lon: a.Lon, Type: "break"},
			{Lat: b.Lat, Lon: b.Lon, Type: "break"},
		},
		Costing: costing,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, transportError("failed to encode route payload", "", err)
	}

	params := url.Values{}
	params.Set("json", string(encoded))

	var route RouteResponse
	if err := c.request(ctx, opRoute, params, &route); err != nil {
		return nil, err
	}

	return &route, nil
}

// Parse splits an address into labeled components.
func (c *Client) Parse(ctx context.Context, address string, opts *ParseOptions) ([]AddressComponent, error) {
	if address == "" {
		return nil, &ValidationError{Message: "address must not be empty"}
	}

	params := opts.values()
	params.Set("address", address)

	var components []AddressComponent
	if err := c.request(ctx, opParse, params, &components); err != nil {
		return nil, err
	}

	return components, nil
}

// Expand normalizes an address and removes abbreviations, returning the
// candidate expansions.
func (c *Client) Expand(ctx context.Context, address string) ([]string, error) {
	if address == "" {
		return nil, &ValidationError{Message: "address must not be empty"}
	}

	params := url.Values{}
	params.Set("address", address)

	var expansions []string
	if err := c.request(ctx, opExpand, params, &expansions); err != nil {
		return nil, err
	}

	return expansions, nil
}

// request runs the shared pipeline: whitelist filtering, dotted-key
// rewriting, API key injection, URL assembly, the HTTP call, and status
// classification. The decoded response body is stored in result.
func (c *Client) request(ctx context.Context, op operation, params url.Values, result any) error {
	spec := endpoints[op]
	prepared := prepareParams(params, spec.allowed, c.apiKey)

	requestURL := c.endpointURL(spec)
	if encoded := prepared.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, requestURL, nil)
	if err != nil {
		return transportError("failed to create request", requestURL, err)
	}
	req.Header.Set("X-Cache", c.xCache)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("method", spec.method).
		Str("url", requestURL).
		Str("x_cache", c.xCache).
		Msg("Making API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError("request failed", requestURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError("failed to read response body", requestURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp.StatusCode, requestURL)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to decode response: %v", err),
			URL:        requestURL,
			cause:      err,
		}
	}

	return nil
}

// endpointURL joins the service host, the optional version segment and the
// operation path.
func (c *Client) endpointURL(spec endpointSpec) string {
	host := c.searchHost
	switch spec.service {
	case serviceRoute:
		host = c.routeHost
	case servicePostal:
		host = c.postalHost
	}

	if spec.versioned {
		return fmt.Sprintf("%s/%s/%s", host, c.version, spec.path)
	}
	return fmt.Sprintf("%s/%s", host, spec.path)
}
