package mapzen

// LatLon is a latitude/longitude pair in decimal degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// FeatureCollection is the GeoJSON document returned by the search,
// autocomplete and reverse endpoints.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
	BBox     []float64 `json:"bbox,omitempty"`
}

// Feature is a single geocoding result.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   Geometry          `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// Geometry holds the feature geometry. Coordinates are [lon, lat].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// FeatureProperties carries the descriptive fields of a geocoding result.
type FeatureProperties struct {
	ID         string  `json:"id"`
	GID        string  `json:"gid"`
	Layer      string  `json:"layer"`
	Source     string  `json:"source"`
	Name       string  `json:"name"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Distance   float64 `json:"distance"`
	Country    string  `json:"country"`
	CountryA   string  `json:"country_a"`
	Region     string  `json:"region"`
	County     string  `json:"county"`
	Locality   string  `json:"locality"`
	PostalCode string  `json:"postalcode"`
}

// Point returns the feature position as a lat/lon pair.
func (f *Feature) Point() LatLon {
	if len(f.Geometry.Coordinates) < 2 {
		return LatLon{}
	}
	return LatLon{Lat: f.Geometry.Coordinates[1], Lon: f.Geometry.Coordinates[0]}
}

// DefaultCosting is the costing strategy used for routing requests unless
// overridden through RouteOptions.
const DefaultCosting = "auto_shorter"

// routeRequest is the payload serialized into the routing endpoint's json
// parameter.
type routeRequest struct {
	Locations []routeLocation `json:"locations"`
	Costing   string          `json:"costing"`
}

type routeLocation struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Type string  `json:"type"`
}

// RouteResponse is the trip document returned by the routing endpoint.
type RouteResponse struct {
	Trip Trip `json:"trip"`
}

// Trip describes a computed route between the requested locations.
type Trip struct {
	Status        int            `json:"status"`
	StatusMessage string         `json:"status_message"`
	Units         string         `json:"units"`
	Language      string         `json:"language"`
	Summary       TripSummary    `json:"summary"`
	Legs          []TripLeg      `json:"legs"`
	Locations     []TripLocation `json:"locations"`
}

// TripSummary aggregates time (seconds) and length (in the trip units) over
// a trip or a single leg.
type TripSummary struct {
	Time   float64 `json:"time"`
	Length float64 `json:"length"`
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// TripLeg is one leg of the trip, with an encoded polyline shape.
type TripLeg struct {
	Summary   TripSummary `json:"summary"`
	Shape     string      `json:"shape"`
	Maneuvers []Maneuver  `json:"maneuvers"`
}

// Maneuver is a single turn-by-turn instruction.
type Maneuver struct {
	Type        int      `json:"type"`
	Instruction string   `json:"instruction"`
	StreetNames []string `json:"street_names"`
	Time        float64  `json:"time"`
	Length      float64  `json:"length"`
}

// TripLocation echoes one of the requested break points.
type TripLocation struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Type string  `json:"type"`
}

// AddressComponent is one labeled span of a parsed address.
type AddressComponent struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
