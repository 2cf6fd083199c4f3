package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type fakeMapsClient struct {
	req     *maps.GeocodingRequest
	results []maps.GeocodingResult
	err     error
}

func (f *fakeMapsClient) ReverseGeocode(_ context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	f.req = r

	return f.results, f.err
}

func TestGoogleGeocoder_ReverseGeocode(t *testing.T) {
	fake := &fakeMapsClient{results: []maps.GeocodingResult{
		{FormattedAddress: "MG Road, Bengaluru, Karnataka 560001, India"},
		{FormattedAddress: "Bengaluru, Karnataka, India"},
	}}
	g := &googleGeocoder{client: fake, language: "en"}

	address, err := g.ReverseGeocode(context.Background(), 12.9716, 77.5946)
	require.NoError(t, err)
	assert.Equal(t, "MG Road, Bengaluru, Karnataka 560001, India", address)
	assert.Equal(t, 12.9716, fake.req.LatLng.Lat)
	assert.Equal(t, "en", fake.req.Language)
}

func TestGoogleGeocoder_NoResults(t *testing.T) {
	g := &googleGeocoder{client: &fakeMapsClient{}}

	address, err := g.ReverseGeocode(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, address)
}

func TestGoogleGeocoder_Error(t *testing.T) {
	g := &googleGeocoder{client: &fakeMapsClient{err: errors.New("REQUEST_DENIED")}}

	_, err := g.ReverseGeocode(context.Background(), 1, 2)
	assert.Error(t, err)
}
