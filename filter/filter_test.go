package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapq/mapq/mapzen"
)

func venue(name string, layer string, confidence float64) mapzen.Feature {
	return mapzen.Feature{
		Type: "Feature",
		Geometry: mapzen.Geometry{
			Type:        "Point",
			Coordinates: []float64{13.4, 52.5},
		},
		Properties: mapzen.FeatureProperties{
			Name:       name,
			Layer:      layer,
			Confidence: confidence,
			Country:    "Germany",
		},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"valid comparison", `Confidence > 0.5`, false},
		{"valid string match", `Layer == "venue" && Country == "Germany"`, false},
		{"empty expression", ``, true},
		{"whitespace only", `   `, true},
		{"unknown field", `Rating > 3`, true},
		{"non-boolean result", `Confidence + 1`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)

				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	f, err := Compile(`Confidence >= 0.8 && Layer == "venue"`)
	require.NoError(t, err)

	ok, err := f.Match(venue("Brandenburg Gate", "venue", 0.95))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Match(venue("Unter den Linden", "street", 0.95))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.Match(venue("Somewhere", "venue", 0.4))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchCoordinates(t *testing.T) {
	f, err := Compile(`Lat > 50 && Lon < 20`)
	require.NoError(t, err)

	ok, err := f.Match(venue("Brandenburg Gate", "venue", 0.9))
	require.NoError(t, err)
	assert.True(t, ok, "geometry coordinates are exposed as Lat/Lon")
}

func TestApply(t *testing.T) {
	collection := &mapzen.FeatureCollection{
		Type: "FeatureCollection",
		Features: []mapzen.Feature{
			venue("a", "venue", 0.9),
			venue("b", "street", 0.9),
			venue("c", "venue", 0.3),
			venue("d", "venue", 0.8),
		},
	}

	f, err := Compile(`Layer == "venue" && Confidence >= 0.8`)
	require.NoError(t, err)

	matched, err := f.Apply(collection)
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].Properties.Name)
	assert.Equal(t, "d", matched[1].Properties.Name)
}

func TestApplyNilCollection(t *testing.T) {
	f, err := Compile(`true`)
	require.NoError(t, err)

	matched, err := f.Apply(nil)
	require.NoError(t, err)
	assert.Nil(t, matched)
}
