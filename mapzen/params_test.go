package mapzen

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareParams(t *testing.T) {
	params := url.Values{}
	params.Set("text", "berlin")
	params.Set("boundary_country", "DEU")
	params.Set("debug", "true") // not whitelisted anywhere

	prepared := prepareParams(params, searchParams, "secret")

	assert.Equal(t, "berlin", prepared.Get("text"))
	assert.Equal(t, "DEU", prepared.Get("boundary.country"))
	assert.Equal(t, "secret", prepared.Get("api_key"))

	// The unrecognized key is dropped, and nothing but whitelisted keys plus
	// the API key leaks through.
	assert.Empty(t, prepared.Get("debug"))
	assert.Len(t, prepared, 3)
}

func TestPrepareParamsWithoutKey(t *testing.T) {
	params := url.Values{}
	params.Set("address", "221B Baker Street")

	prepared := prepareParams(params, endpoints[opParse].allowed, "")

	_, present := prepared["api_key"]
	assert.False(t, present, "no api_key parameter when no key is configured")
}

func TestPrepareParamsKeepsSequenceOrder(t *testing.T) {
	params := url.Values{}
	params["sources"] = []string{"openstreetmap", "whosonfirst", "geonames"}

	prepared := prepareParams(params, baseParams, "")
	assert.Equal(t, []string{"openstreetmap", "whosonfirst", "geonames"}, prepared["sources"])
}

func TestParamKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"text", "text"},
		{"boundary_country", "boundary.country"},
		{"boundary_rect_min_lat", "boundary.rect.min.lat"},
		{"focus_point_lon", "focus.point.lon"},
		{"point_lat", "point.lat"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, paramKey(tt.in))
		})
	}
}

// Encoding then decoding a sequence-valued parameter keeps one key=value
// pair per element, in the original order.
func TestSequenceEncodingRoundTrip(t *testing.T) {
	params := url.Values{}
	params["layers"] = []string{"venue", "address", "street"}
	params.Set("text", "café münchen")

	decoded, err := url.ParseQuery(params.Encode())
	require.NoError(t, err)

	assert.Equal(t, []string{"venue", "address", "street"}, decoded["layers"])
	assert.Equal(t, "café münchen", decoded.Get("text"))
}

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "48.858", formatCoord(48.858))
	assert.Equal(t, "-74", formatCoord(-74))
	assert.Equal(t, "0", formatCoord(0))
}

func TestSearchOptionsValues(t *testing.T) {
	t.Run("nil options yield no parameters", func(t *testing.T) {
		var opts *SearchOptions
		assert.Empty(t, opts.values())
	})

	t.Run("zero size is omitted", func(t *testing.T) {
		v := (&SearchOptions{BoundaryCountry: "NZL"}).values()
		_, present := v["size"]
		assert.False(t, present)
		assert.Equal(t, "NZL", v.Get("boundary_country"))
	})

	t.Run("grouped boundaries expand to individual keys", func(t *testing.T) {
		v := (&SearchOptions{
			BoundaryRect: &BoundaryRect{MinLat: -1, MinLon: -2, MaxLat: 1, MaxLon: 2},
		}).values()
		assert.Equal(t, "-1", v.Get("boundary_rect_min_lat"))
		assert.Equal(t, "2", v.Get("boundary_rect_max_lon"))
	})
}

func TestEndpointTableWhitelists(t *testing.T) {
	// Autocomplete accepts a strict subset of the search parameters.
	searchSet := map[string]bool{}
	for _, p := range endpoints[opSearch].allowed {
		searchSet[p] = true
	}
	for _, p := range endpoints[opAutocomplete].allowed {
		assert.True(t, searchSet[p], "autocomplete param %q missing from search whitelist", p)
	}

	assert.NotContains(t, endpoints[opAutocomplete].allowed, "size")
	assert.NotContains(t, endpoints[opAutocomplete].allowed, "boundary_rect_min_lat")
	assert.Equal(t, []string{"address"}, endpoints[opExpand].allowed)
	assert.Equal(t, []string{"json"}, endpoints[opRoute].allowed)
}
