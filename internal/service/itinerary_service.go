package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/generation"
	"github.com/voyago/voyago-api/internal/platform/logger"
	"github.com/voyago/voyago-api/internal/store"
)

// Itinerary kind tags used in lookup responses.
const (
	KindSingle = "single"
	KindMulti  = "multi"
)

// TaggedItinerary pairs an itinerary with its kind for endpoints that can
// return either. Exactly one of Single/Multi is set, matching Kind.
type TaggedItinerary struct {
	Kind   string
	Single *domain.SingleCityItinerary
	Multi  *domain.MultiCityItinerary
}

// ItineraryService implements the itinerary operations: lookup, listing,
// creation (including the synchronous generation flow for single-city
// itineraries) and owner-only location removal.
type ItineraryService struct {
	singleStore store.SingleCityItineraryStore
	multiStore  store.MultiCityItineraryStore
	generator   generation.LocationGenerator
	logger      *slog.Logger
}

// NewItineraryService creates a new ItineraryService with the given
// dependencies.
func NewItineraryService(
	singleStore store.SingleCityItineraryStore,
	multiStore store.MultiCityItineraryStore,
	generator generation.LocationGenerator,
	logger *slog.Logger,
) (*ItineraryService, error) {
	if singleStore == nil {
		return nil, errors.New("single-city itinerary store cannot be nil")
	}
	if multiStore == nil {
		return nil, errors.New("multi-city itinerary store cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("location generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ItineraryService{
		singleStore: singleStore,
		multiStore:  multiStore,
		generator:   generator,
		logger:      logger.With(slog.String("component", "itinerary_service")),
	}, nil
}

// GetByID looks up an itinerary by ID, checking single-city records first
// and falling back to multi-city. The result carries its kind tag.
// Returns store.ErrItineraryNotFound when the ID exists in neither
// collection. Any authenticated principal may fetch any itinerary by ID;
// ownership is only enforced on mutation.
func (s *ItineraryService) GetByID(ctx context.Context, id uuid.UUID) (*TaggedItinerary, error) {
	single, err := s.singleStore.GetByID(ctx, id)
	if err == nil {
		return &TaggedItinerary{Kind: KindSingle, Single: single}, nil
	}
	if !errors.Is(err, store.ErrItineraryNotFound) {
		return nil, err
	}

	multi, err := s.multiStore.GetByID(ctx, id)
	if err == nil {
		return &TaggedItinerary{Kind: KindMulti, Multi: multi}, nil
	}
	if !errors.Is(err, store.ErrItineraryNotFound) {
		return nil, err
	}

	return nil, store.ErrItineraryNotFound
}

// ListForUser returns every itinerary owned by userID, each tagged with its
// kind. Single-city records come first, then multi-city, both newest first.
func (s *ItineraryService) ListForUser(ctx context.Context, userID uuid.UUID) ([]TaggedItinerary, error) {
	singles, err := s.singleStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	multis, err := s.multiStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tagged := make([]TaggedItinerary, 0, len(singles)+len(multis))
	for _, itinerary := range singles {
		tagged = append(tagged, TaggedItinerary{Kind: KindSingle, Single: itinerary})
	}
	for _, itinerary := range multis {
		tagged = append(tagged, TaggedItinerary{Kind: KindMulti, Multi: itinerary})
	}

	return tagged, nil
}

// ListOwned returns the caller's single-city and multi-city itineraries as
// two separate sequences.
func (s *ItineraryService) ListOwned(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.SingleCityItinerary, []*domain.MultiCityItinerary, error) {
	singles, err := s.singleStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	multis, err := s.multiStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return singles, multis, nil
}

// CreateSingleCity persists a new single-city itinerary for userID and
// drives the generation flow synchronously before returning.
//
// The itinerary is inserted first with an empty location sequence and
// status pending. If generation succeeds, the locations and status ready
// are written in a second, atomic update. If generation fails, the record
// stays persisted without locations and is marked failed; the error is
// returned so the caller sees the failure (and, for format errors, the raw
// provider text). The initial insert is never rolled back.
//
// After a successful generation the stored numberOfLocations is set to the
// length of the generated sequence, not the requested count. The provider
// may return fewer or more entries than asked for, and the count must stay
// consistent with the locations actually on the record.
func (s *ItineraryService) CreateSingleCity(
	ctx context.Context,
	userID uuid.UUID,
	cityName string,
	numberOfLocations int,
	organizedGeographically bool,
) (*domain.SingleCityItinerary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	itinerary, err := domain.NewSingleCityItinerary(
		userID, cityName, numberOfLocations, organizedGeographically)
	if err != nil {
		return nil, err
	}

	if err := s.singleStore.Create(ctx, itinerary); err != nil {
		return nil, err
	}

	locations, err := s.generator.GenerateLocations(ctx, generation.Request{
		CityName:                cityName,
		NumberOfLocations:       numberOfLocations,
		OrganizedGeographically: organizedGeographically,
	})
	if err != nil {
		log.Error("location generation failed",
			slog.String("error", err.Error()),
			slog.String("itinerary_id", itinerary.ID.String()),
			slog.String("city", cityName))

		// Best effort; the generation error is the one worth surfacing.
		if statusErr := s.singleStore.SetGenerationStatus(
			ctx, itinerary.ID, domain.GenerationFailed); statusErr != nil {
			log.Error("failed to mark itinerary generation as failed",
				slog.String("error", statusErr.Error()),
				slog.String("itinerary_id", itinerary.ID.String()))
		}

		return nil, fmt.Errorf("generating locations for itinerary %s: %w", itinerary.ID, err)
	}

	if err := s.singleStore.UpdateLocations(
		ctx, itinerary.ID, locations, domain.GenerationReady); err != nil {
		return nil, err
	}

	itinerary.Locations = locations
	itinerary.NumberOfLocations = len(locations)
	itinerary.GenerationStatus = domain.GenerationReady

	log.Info("single-city itinerary created with generated locations",
		slog.String("itinerary_id", itinerary.ID.String()),
		slog.String("city", cityName),
		slog.Int("location_count", len(locations)))

	return itinerary, nil
}

// CreateMultiCity persists a new multi-city itinerary for userID.
// There is no generation step for this kind.
func (s *ItineraryService) CreateMultiCity(
	ctx context.Context,
	userID uuid.UUID,
	cities []domain.CityPlan,
) (*domain.MultiCityItinerary, error) {
	itinerary, err := domain.NewMultiCityItinerary(userID, cities)
	if err != nil {
		return nil, err
	}

	if err := s.multiStore.Create(ctx, itinerary); err != nil {
		return nil, err
	}

	return itinerary, nil
}

// DeleteLocation removes one location from a single-city itinerary owned by
// principalID, recomputing the stored count to the new sequence length.
//
// Returns store.ErrItineraryNotFound if the itinerary does not exist,
// ErrNotOwner if principalID does not own it, and store.ErrLocationNotFound
// if no location with that ID exists within the itinerary.
func (s *ItineraryService) DeleteLocation(
	ctx context.Context,
	principalID uuid.UUID,
	itineraryID uuid.UUID,
	locationID uuid.UUID,
) (*domain.SingleCityItinerary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	itinerary, err := s.singleStore.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	if itinerary.UserID != principalID {
		log.Warn("location deletion denied: principal does not own itinerary",
			slog.String("itinerary_id", itineraryID.String()),
			slog.String("principal_id", principalID.String()))
		return nil, ErrNotOwner
	}

	remaining := make([]domain.Location, 0, len(itinerary.Locations))
	for _, loc := range itinerary.Locations {
		if loc.ID != locationID {
			remaining = append(remaining, loc)
		}
	}

	if len(remaining) == len(itinerary.Locations) {
		return nil, store.ErrLocationNotFound
	}

	if err := s.singleStore.UpdateLocations(
		ctx, itineraryID, remaining, itinerary.GenerationStatus); err != nil {
		return nil, err
	}

	itinerary.Locations = remaining
	itinerary.NumberOfLocations = len(remaining)

	log.Info("location removed from itinerary",
		slog.String("itinerary_id", itineraryID.String()),
		slog.String("location_id", locationID.String()),
		slog.Int("remaining", len(remaining)))

	return itinerary, nil
}
