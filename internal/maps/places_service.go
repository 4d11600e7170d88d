// README: Google Places text search, exposed as a generation research tool.
package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// maxToolResults caps how many places one tool call reports to the model.
const maxToolResults = 5

// Place represents a simplified location result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchNearby searches for places matching the query near the given area.
func (s *PlacesService) SearchNearby(ctx context.Context, query, near string) ([]Place, error) {
	fullQuery := query
	if near != "" {
		fullQuery = fmt.Sprintf("%s near %s", query, near)
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: fullQuery})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		results = append(results, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(results) >= maxToolResults {
			break
		}
	}
	return results, nil
}

// Search implements the ai.PlaceSearcher tool contract: one line per place,
// readable by the model.
func (s *PlacesService) Search(ctx context.Context, query, near string) (string, error) {
	places, err := s.SearchNearby(ctx, query, near)
	if err != nil {
		return "", err
	}
	if len(places) == 0 {
		return "no places found", nil
	}

	var b strings.Builder
	for i, p := range places {
		fmt.Fprintf(&b, "%d. %s | %s | rating %.1f (%d reviews)\n", i+1, p.Name, p.Address, p.Rating, p.UserRatingsTotal)
	}
	return b.String(), nil
}
