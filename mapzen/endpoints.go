package mapzen

import "net/http"

// Default hosts for the three logical services.
const (
	DefaultSearchHost = "https://search.mapzen.com"
	DefaultRouteHost  = "https://valhalla.mapzen.com"
	DefaultPostalHost = "https://libpostal.mapzen.com"

	// DefaultVersion is the path segment used by the versioned geocoding
	// endpoints.
	DefaultVersion = "v1"
)

// service selects which configured base URL an operation targets.
type service int

const (
	serviceSearch service = iota
	serviceRoute
	servicePostal
)

// operation identifies one upstream API action.
type operation int

const (
	opSearch operation = iota
	opAutocomplete
	opReverse
	opRoute
	opParse
	opExpand
)

// endpointSpec is the static request shape of one operation: which service
// host it goes to, its path segment, whether the path is version-prefixed,
// the HTTP method, and the whitelist of accepted parameter names. The table
// below is built once and never mutated.
type endpointSpec struct {
	service   service
	path      string
	versioned bool
	method    string
	allowed   []string
}

var (
	baseParams = []string{"sources", "layers", "boundary_country"}

	autocompleteParams = append([]string{
		"text",
		"focus_point_lat",
		"focus_point_lon",
	}, baseParams...)

	searchParams = append([]string{
		"size",
		"boundary_rect_min_lat",
		"boundary_rect_min_lon",
		"boundary_rect_max_lat",
		"boundary_rect_max_lon",
		"boundary_circle_lat",
		"boundary_circle_lon",
		"boundary_circle_radius",
	}, autocompleteParams...)

	reverseParams = append([]string{
		"size",
		"point_lat",
		"point_lon",
	}, baseParams...)
)

var endpoints = map[operation]endpointSpec{
	opSearch: {
		service:   serviceSearch,
		path:      "search",
		versioned: true,
		method:    http.MethodGet,
		allowed:   searchParams,
	},
	opAutocomplete: {
		service:   serviceSearch,
		path:      "autocomplete",
		versioned: true,
		method:    http.MethodGet,
		allowed:   autocompleteParams,
	},
	opReverse: {
		service:   serviceSearch,
		path:      "reverse",
		versioned: true,
		method:    http.MethodGet,
		allowed:   reverseParams,
	},
	// The routing API carries its whole request in a single json parameter.
	opRoute: {
		service: serviceRoute,
		path:    "route",
		method:  http.MethodPost,
		allowed: []string{"json"},
	},
	// The libpostal endpoints are not versioned.
	opParse: {
		service: servicePostal,
		path:    "parse",
		method:  http.MethodGet,
		allowed: []string{"address", "format"},
	},
	opExpand: {
		service: servicePostal,
		path:    "expand",
		method:  http.MethodGet,
		allowed: []string{"address"},
	},
}
