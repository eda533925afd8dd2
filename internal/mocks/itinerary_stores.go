package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/store"
)

// MockSingleCityItineraryStore implements store.SingleCityItineraryStore
// for testing. The default implementation keeps records in a map.
type MockSingleCityItineraryStore struct {
	// Function fields for customizable behavior
	CreateFn              func(ctx context.Context, itinerary *domain.SingleCityItinerary) error
	GetByIDFn             func(ctx context.Context, id uuid.UUID) (*domain.SingleCityItinerary, error)
	FindByUserFn          func(ctx context.Context, userID uuid.UUID) ([]*domain.SingleCityItinerary, error)
	UpdateLocationsFn     func(ctx context.Context, id uuid.UUID, locations []domain.Location, status domain.GenerationStatus) error
	SetGenerationStatusFn func(ctx context.Context, id uuid.UUID, status domain.GenerationStatus) error

	// Itineraries backs the default implementation.
	Itineraries map[uuid.UUID]*domain.SingleCityItinerary
}

// Ensure the interface is implemented.
var _ store.SingleCityItineraryStore = (*MockSingleCityItineraryStore)(nil)

// NewMockSingleCityItineraryStore creates a new mock store with initialized
// defaults.
func NewMockSingleCityItineraryStore() *MockSingleCityItineraryStore {
	return &MockSingleCityItineraryStore{
		Itineraries: make(map[uuid.UUID]*domain.SingleCityItinerary),
	}
}

// Create implements the SingleCityItineraryStore interface
func (m *MockSingleCityItineraryStore) Create(
	ctx context.Context,
	itinerary *domain.SingleCityItinerary,
) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, itinerary)
	}

	copied := *itinerary
	m.Itineraries[itinerary.ID] = &copied
	return nil
}

// GetByID implements the SingleCityItineraryStore interface
func (m *MockSingleCityItineraryStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.SingleCityItinerary, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	itinerary, ok := m.Itineraries[id]
	if !ok {
		return nil, store.ErrItineraryNotFound
	}
	copied := *itinerary
	return &copied, nil
}

// FindByUser implements the SingleCityItineraryStore interface
func (m *MockSingleCityItineraryStore) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.SingleCityItinerary, error) {
	if m.FindByUserFn != nil {
		return m.FindByUserFn(ctx, userID)
	}

	results := []*domain.SingleCityItinerary{}
	for _, itinerary := range m.Itineraries {
		if itinerary.UserID == userID {
			copied := *itinerary
			results = append(results, &copied)
		}
	}
	return results, nil
}

// UpdateLocations implements the SingleCityItineraryStore interface
func (m *MockSingleCityItineraryStore) UpdateLocations(
	ctx context.Context,
	id uuid.UUID,
	locations []domain.Location,
	status domain.GenerationStatus,
) error {
	if m.UpdateLocationsFn != nil {
		return m.UpdateLocationsFn(ctx, id, locations, status)
	}

	itinerary, ok := m.Itineraries[id]
	if !ok {
		return store.ErrItineraryNotFound
	}
	itinerary.Locations = locations
	itinerary.NumberOfLocations = len(locations)
	itinerary.GenerationStatus = status
	itinerary.UpdatedAt = time.Now().UTC()
	return nil
}

// SetGenerationStatus implements the SingleCityItineraryStore interface
func (m *MockSingleCityItineraryStore) SetGenerationStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.GenerationStatus,
) error {
	if m.SetGenerationStatusFn != nil {
		return m.SetGenerationStatusFn(ctx, id, status)
	}

	itinerary, ok := m.Itineraries[id]
	if !ok {
		return store.ErrItineraryNotFound
	}
	itinerary.GenerationStatus = status
	itinerary.UpdatedAt = time.Now().UTC()
	return nil
}

// MockMultiCityItineraryStore implements store.MultiCityItineraryStore for
// testing.
type MockMultiCityItineraryStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, itinerary *domain.MultiCityItinerary) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.MultiCityItinerary, error)
	FindByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.MultiCityItinerary, error)

	// Itineraries backs the default implementation.
	Itineraries map[uuid.UUID]*domain.MultiCityItinerary
}

// Ensure the interface is implemented.
var _ store.MultiCityItineraryStore = (*MockMultiCityItineraryStore)(nil)

// NewMockMultiCityItineraryStore creates a new mock store with initialized
// defaults.
func NewMockMultiCityItineraryStore() *MockMultiCityItineraryStore {
	return &MockMultiCityItineraryStore{
		Itineraries: make(map[uuid.UUID]*domain.MultiCityItinerary),
	}
}

// Create implements the MultiCityItineraryStore interface
func (m *MockMultiCityItineraryStore) Create(
	ctx context.Context,
	itinerary *domain.MultiCityItinerary,
) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, itinerary)
	}

	copied := *itinerary
	m.Itineraries[itinerary.ID] = &copied
	return nil
}

// GetByID implements the MultiCityItineraryStore interface
func (m *MockMultiCityItineraryStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.MultiCityItinerary, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	itinerary, ok := m.Itineraries[id]
	if !ok {
		return nil, store.ErrItineraryNotFound
	}
	copied := *itinerary
	return &copied, nil
}

// FindByUser implements the MultiCityItineraryStore interface
func (m *MockMultiCityItineraryStore) FindByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.MultiCityItinerary, error) {
	if m.FindByUserFn != nil {
		return m.FindByUserFn(ctx, userID)
	}

	results := []*domain.MultiCityItinerary{}
	for _, itinerary := range m.Itineraries {
		if itinerary.UserID == userID {
			copied := *itinerary
			results = append(results, &copied)
		}
	}
	return results, nil
}
