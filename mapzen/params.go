package mapzen

import (
	"net/url"
	"strconv"
	"strings"
)

// prepareParams filters caller parameters against an operation's whitelist,
// rewrites accepted keys to the API's dotted convention, and injects the
// configured API key. Keys outside the whitelist are dropped; values keep
// their order, so sequence-valued parameters encode as one key=value pair
// per element.
func prepareParams(params url.Values, allowed []string, apiKey string) url.Values {
	prepared := url.Values{}
	for _, key := range allowed {
		if vals, ok := params[key]; ok {
			prepared[paramKey(key)] = append([]string(nil), vals...)
		}
	}
	if apiKey != "" {
		prepared.Set("api_key", apiKey)
	}
	return prepared
}

// paramKey rewrites an option name to the upstream dotted form, e.g.
// boundary_country becomes boundary.country.
func paramKey(key string) string {
	return strings.ReplaceAll(key, "_", ".")
}

// formatCoord renders a coordinate or distance without trailing zeros.
func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
