package mapzen

import (
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithVersion overrides the version segment of the geocoding endpoints.
func WithVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.version = version
		}
	}
}

// WithSearchHost overrides the geocoding service host.
func WithSearchHost(host string) Option {
	return func(c *Client) {
		if host != "" {
			c.searchHost = host
		}
	}
}

// WithRouteHost overrides the routing service host.
func WithRouteHost(host string) Option {
	return func(c *Client) {
		if host != "" {
			c.routeHost = host
		}
	}
}

// WithPostalHost overrides the address-normalization service host.
func WithPostalHost(host string) Option {
	return func(c *Client) {
		if host != "" {
			c.postalHost = host
		}
	}
}

// BoundaryRect restricts results to a rectangular region.
type BoundaryRect struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// BoundaryCircle restricts results to a circular region. Radius is in
// kilometers.
type BoundaryCircle struct {
	Lat    float64
	Lon    float64
	Radius float64
}

// SearchOptions narrows a forward geocoding search. Nil pointer fields and
// zero values are omitted from the request.
type SearchOptions struct {
	// Size limits the number of results returned. The API default is 10.
	Size int
	// BoundaryCountry is an alpha-2 or alpha-3 ISO country code.
	BoundaryCountry string
	BoundaryRect    *BoundaryRect
	BoundaryCircle  *BoundaryCircle
	// FocusPoint scores places near the given point higher in the results.
	FocusPoint *LatLon
	// Sources selects data sources, e.g. openstreetmap, openaddresses,
	// whosonfirst, geonames.
	Sources []string
	// Layers selects place types, e.g. venue, address, street, locality.
	Layers []string
}

func (o *SearchOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Size > 0 {
		v.Set("size", strconv.Itoa(o.Size))
	}
	if o.BoundaryCountry != "" {
		v.Set("boundary_country", o.BoundaryCountry)
	}
	if r := o.BoundaryRect; r != nil {
		v.Set("boundary_rect_min_lat", formatCoord(r.MinLat))
		v.Set("boundary_rect_min_lon", formatCoord(r.MinLon))
		v.Set("boundary_rect_max_lat", formatCoord(r.MaxLat))
		v.Set("boundary_rect_max_lon", formatCoord(r.MaxLon))
	}
	if c := o.BoundaryCircle; c != nil {
		v.Set("boundary_circle_lat", formatCoord(c.Lat))
		v.Set("boundary_circle_lon", formatCoord(c.Lon))
		v.Set("boundary_circle_radius", formatCoord(c.Radius))
	}
	setFocusPoint(v, o.FocusPoint)
	setSequence(v, "sources", o.Sources)
	setSequence(v, "layers", o.Layers)
	return v
}

// AutocompleteOptions narrows an autocomplete search. The autocomplete
// endpoint accepts a smaller option set than search: no result size and no
// boundary rectangle or circle.
type AutocompleteOptions struct {
	BoundaryCountry string
	FocusPoint      *LatLon
	Sources         []string
	Layers          []string
}

func (o *AutocompleteOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.BoundaryCountry != "" {
		v.Set("boundary_country", o.BoundaryCountry)
	}
	setFocusPoint(v, o.FocusPoint)
	setSequence(v, "sources", o.Sources)
	setSequence(v, "layers", o.Layers)
	return v
}

// ReverseOptions narrows a reverse geocoding lookup.
type ReverseOptions struct {
	Size            int
	BoundaryCountry string
	Sources         []string
	Layers          []string
}

func (o *ReverseOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Size > 0 {
		v.Set("size", strconv.Itoa(o.Size))
	}
	if o.BoundaryCountry != "" {
		v.Set("boundary_country", o.BoundaryCountry)
	}
	setSequence(v, "sources", o.Sources)
	setSequence(v, "layers", o.Layers)
	return v
}

// RouteOptions adjusts a routing request.
type RouteOptions struct {
	// Costing overrides the default auto_shorter costing strategy.
	Costing string
}

// ParseOptions adjusts an address parse request.
type ParseOptions struct {
	// Format selects the response shape. The API default is a list of
	// label/value pairs.
	Format string
}

func (o *ParseOptions) values() url.Values {
	v := url.Values{}
	if o == nil {
		return v
	}
	if o.Format != "" {
		v.Set("format", o.Format)
	}
	return v
}

func setFocusPoint(v url.Values, p *LatLon) {
	if p == nil {
		return
	}
	v.Set("focus_point_lat", formatCoord(p.Lat))
	v.Set("focus_point_lon", formatCoord(p.Lon))
}

func setSequence(v url.Values, key string, vals []string) {
	for _, val := range vals {
		v.Add(key, val)
	}
}
