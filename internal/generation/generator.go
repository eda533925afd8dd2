package generation

import (
	"context"

	"github.com/voyago/voyago-api/internal/domain"
)

// Request describes one location-generation call.
type Request struct {
	// CityName is the city to suggest locations for.
	CityName string

	// NumberOfLocations is how many locations to ask the provider for.
	NumberOfLocations int

	// OrganizedGeographically asks the provider to order the list from
	// one side of the city to the other to minimize travel time.
	OrganizedGeographically bool
}

// LocationGenerator defines the interface for generating itinerary locations
// from a city description. It is the seam between the itinerary service and
// the concrete provider implementation.
type LocationGenerator interface {
	// GenerateLocations asks the provider for req.NumberOfLocations
	// locations in req.CityName, each with a one-sentence description.
	// It is a single blocking call with no retry; cancellation comes from
	// ctx. A response that is not a JSON array of valid entries yields a
	// *ResponseFormatError carrying the raw provider text.
	GenerateLocations(ctx context.Context, req Request) ([]domain.Location, error)
}
