package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
)

// SingleCityItineraryStore defines persistence for single-city itineraries.
type SingleCityItineraryStore interface {
	// Create saves a new single-city itinerary.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, itinerary *domain.SingleCityItinerary) error

	// GetByID retrieves a single-city itinerary by its unique ID.
	// Returns ErrItineraryNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SingleCityItinerary, error)

	// FindByUser retrieves all single-city itineraries owned by userID,
	// newest first. Returns an empty slice when there are none.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SingleCityItinerary, error)

	// UpdateLocations replaces the itinerary's location sequence, stored
	// location count and generation status in a single write.
	// Returns ErrItineraryNotFound if the itinerary does not exist.
	UpdateLocations(
		ctx context.Context,
		id uuid.UUID,
		locations []domain.Location,
		status domain.GenerationStatus,
	) error

	// SetGenerationStatus updates only the generation status.
	// Returns ErrItineraryNotFound if the itinerary does not exist.
	SetGenerationStatus(ctx context.Context, id uuid.UUID, status domain.GenerationStatus) error
}

// MultiCityItineraryStore defines persistence for multi-city itineraries.
type MultiCityItineraryStore interface {
	// Create saves a new multi-city itinerary.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, itinerary *domain.MultiCityItinerary) error

	// GetByID retrieves a multi-city itinerary by its unique ID.
	// Returns ErrItineraryNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MultiCityItinerary, error)

	// FindByUser retrieves all multi-city itineraries owned by userID,
	// newest first. Returns an empty slice when there are none.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.MultiCityItinerary, error)
}
