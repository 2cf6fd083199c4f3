// Package geocode contains reverse geocoding adapters.
package geocode

import (
	"context"
	"log/slog"

	"sos/config"
	"sos/internal/domain/constants"
	"sos/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"googlemaps.github.io/maps"
)

// reverseGeocodeClient is the subset of the Google Maps client used here.
type reverseGeocodeClient interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

type googleGeocoder struct {
	client   reverseGeocodeClient
	language string
}

// NewGoogleGeocoder creates a geocoder backed by the Google Geocoding API.
func NewGoogleGeocoder(apiKey, language string) (service.Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Maps client")
	}

	return &googleGeocoder{client: client, language: language}, nil
}

// ReverseGeocode returns the formatted address of the best match, or "" when nothing matched.
func (g *googleGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: lat, Lng: lng},
		Language: g.language,
	})
	if err != nil {
		return "", errors.Wrap(err, "reverse geocoding failed")
	}
	if len(results) == 0 {
		return "", nil
	}

	return results[0].FormattedAddress, nil
}

// noopGeocoder is used when no geocoding provider is configured; positions keep coordinates only.
type noopGeocoder struct{}

func (noopGeocoder) ReverseGeocode(context.Context, float64, float64) (string, error) {
	return "", nil
}

// Params holds dependencies for the geocoder, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeocoder creates the Geocoder selected by geocoding.provider.
func NewGeocoder(params Params) (service.Geocoder, error) {
	cfg := params.Config.Geocoding

	switch cfg.Provider {
	case "", constants.GeocodingProviderNone:
		params.Logger.Info("Reverse geocoding disabled")

		return noopGeocoder{}, nil
	case constants.GeocodingProviderGoogle:
		if cfg.APIKey == "" {
			return nil, errors.New("api key is required for google geocoding")
		}
		params.Logger.Info("Using Google reverse geocoding")

		return NewGoogleGeocoder(cfg.APIKey, cfg.Language)
	default:
		return nil, errors.Errorf("unknown geocoding provider: %s", cfg.Provider)
	}
}

// Module provides the geocoding FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeocoder),
)
