package services

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"tripgenie/internal/models/response_models"
	"tripgenie/pkg/utils"
)

type MapsServiceInterface interface {
	Geocode(ctx context.Context, address string) (*response_models.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*response_models.GeocodeResult, error)
	SearchPlaces(ctx context.Context, query string, lat, lng *float64) ([]response_models.PlaceSummary, error)
	Directions(ctx context.Context, origin, destination, mode string) (*response_models.DirectionsResult, error)
}

type MapsService struct {
	client *maps.Client
}

func NewMapsService(apiKey string) (MapsServiceInterface, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MapsService{client: client}, nil
}

func (s *MapsService) Geocode(ctx context.Context, address string) (*response_models.GeocodeResult, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return nil, utils.ErrPlaceNotFound
	}

	first := results[0]
	return &response_models.GeocodeResult{
		Coordinates: response_models.Coordinates{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
		Address: first.FormattedAddress,
	}, nil
}

func (s *MapsService) ReverseGeocode(ctx context.Context, lat, lng float64) (*response_models.GeocodeResult, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return nil, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return nil, utils.ErrPlaceNotFound
	}

	first := results[0]
	return &response_models.GeocodeResult{
		Coordinates: response_models.Coordinates{
			Lat: first.Geometry.Location.Lat,
			Lng: first.Geometry.Location.Lng,
		},
		Address: first.FormattedAddress,
	}, nil
}

func (s *MapsService) SearchPlaces(ctx context.Context, query string, lat, lng *float64) ([]response_models.PlaceSummary, error) {
	r := &maps.TextSearchRequest{
		Query: query,
	}
	if lat != nil && lng != nil {
		r.Location = &maps.LatLng{Lat: *lat, Lng: *lng}
		r.Radius = 5000
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	results := make([]response_models.PlaceSummary, 0, len(resp.Results))
	for _, result := range resp.Results {
		results = append(results, response_models.PlaceSummary{
			PlaceID: result.PlaceID,
			Name:    result.Name,
			Address: result.FormattedAddress,
			Rating:  result.Rating,
		})
		if len(results) >= 20 {
			break
		}
	}
	return results, nil
}

func (s *MapsService) Directions(ctx context.Context, origin, destination, mode string) (*response_models.DirectionsResult, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        travelMode(mode),
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, utils.ErrPlaceNotFound
	}

	leg := routes[0].Legs[0]
	return &response_models.DirectionsResult{
		Distance: leg.Distance.HumanReadable,
		Duration: leg.Duration.String(),
		Summary:  routes[0].Summary,
	}, nil
}

func travelMode(mode string) maps.Mode {
	switch mode {
	case "walking":
		return maps.TravelModeWalking
	case "transit":
		return maps.TravelModeTransit
	case "bicycling":
		return maps.TravelModeBicycling
	default:
		return maps.TravelModeDriving
	}
}
