package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/generation"
	"github.com/voyago/voyago-api/internal/mocks"
	"github.com/voyago/voyago-api/internal/service"
	"github.com/voyago/voyago-api/internal/store"
)

func newTestService(
	t *testing.T,
	single *mocks.MockSingleCityItineraryStore,
	multi *mocks.MockMultiCityItineraryStore,
	gen *mocks.MockGenerator,
) *service.ItineraryService {
	t.Helper()

	svc, err := service.NewItineraryService(single, multi, gen, nil)
	require.NoError(t, err)
	return svc
}

func romeLocations() []domain.Location {
	return []domain.Location{
		{ID: uuid.New(), Name: "Colosseum", Description: "An ancient amphitheater at the heart of imperial Rome."},
		{ID: uuid.New(), Name: "Trevi Fountain", Description: "A baroque fountain famous for coin tosses."},
		{ID: uuid.New(), Name: "Pantheon", Description: "A remarkably preserved Roman temple with an open oculus."},
	}
}

func TestNewItineraryService(t *testing.T) {
	t.Parallel()

	single := mocks.NewMockSingleCityItineraryStore()
	multi := mocks.NewMockMultiCityItineraryStore()
	gen := &mocks.MockGenerator{}

	t.Run("rejects nil single-city store", func(t *testing.T) {
		t.Parallel()
		_, err := service.NewItineraryService(nil, multi, gen, nil)
		assert.Error(t, err)
	})

	t.Run("rejects nil multi-city store", func(t *testing.T) {
		t.Parallel()
		_, err := service.NewItineraryService(single, nil, gen, nil)
		assert.Error(t, err)
	})

	t.Run("rejects nil generator", func(t *testing.T) {
		t.Parallel()
		_, err := service.NewItineraryService(single, multi, nil, nil)
		assert.Error(t, err)
	})

	t.Run("accepts nil logger", func(t *testing.T) {
		t.Parallel()
		svc, err := service.NewItineraryService(single, multi, gen, nil)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestCreateSingleCity(t *testing.T) {
	t.Parallel()

	t.Run("persists itinerary with generated locations", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		locations := romeLocations()

		single := mocks.NewMockSingleCityItineraryStore()
		gen := &mocks.MockGenerator{Locations: locations}
		svc := newTestService(t, single, mocks.NewMockMultiCityItineraryStore(), gen)

		itinerary, err := svc.CreateSingleCity(context.Background(), userID, "Rome", 3, true)
		require.NoError(t, err)

		assert.Equal(t, userID, itinerary.UserID)
		assert.Equal(t, "Rome", itinerary.CityName)
		assert.Equal(t, 3, itinerary.NumberOfLocations)
		assert.True(t, itinerary.OrganizedGeographically)
		assert.Equal(t, domain.GenerationReady, itinerary.GenerationStatus)
		assert.Equal(t, locations, itinerary.Locations)

		stored, err := single.GetByID(context.Background(), itinerary.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.GenerationReady, stored.GenerationStatus)
		assert.Equal(t, locations, stored.Locations)
	})

	t.Run("stored count follows the generated sequence length", func(t *testing.T) {
		t.Parallel()

		// The provider may return fewer entries than requested.
		locations := romeLocations()[:2]

		single := mocks.NewMockSingleCityItineraryStore()
		gen := &mocks.MockGenerator{Locations: locations}
		svc := newTestService(t, single, mocks.NewMockMultiCityItineraryStore(), gen)

		itinerary, err := svc.CreateSingleCity(context.Background(), uuid.New(), "Rome", 5, true)
		require.NoError(t, err)

		assert.Equal(t, len(locations), itinerary.NumberOfLocations)
		assert.Equal(t, locations, itinerary.Locations)

		stored, err := single.GetByID(context.Background(), itinerary.ID)
		require.NoError(t, err)
		assert.Equal(t, len(locations), stored.NumberOfLocations)
		assert.Len(t, stored.Locations, stored.NumberOfLocations)
	})

	t.Run("passes the request parameters to the generator", func(t *testing.T) {
		t.Parallel()

		gen := &mocks.MockGenerator{Locations: romeLocations()}
		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), mocks.NewMockMultiCityItineraryStore(), gen)

		_, err := svc.CreateSingleCity(context.Background(), uuid.New(), "Kyoto", 5, false)
		require.NoError(t, err)

		require.Equal(t, 1, gen.Calls.Count)
		assert.Equal(t, generation.Request{
			CityName:                "Kyoto",
			NumberOfLocations:       5,
			OrganizedGeographically: false,
		}, gen.Calls.Requests[0])
	})

	t.Run("rejects invalid parameters before calling the generator", func(t *testing.T) {
		t.Parallel()

		gen := &mocks.MockGenerator{}
		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), mocks.NewMockMultiCityItineraryStore(), gen)

		_, err := svc.CreateSingleCity(context.Background(), uuid.New(), "", 3, true)
		assert.ErrorIs(t, err, domain.ErrEmptyCityName)

		_, err = svc.CreateSingleCity(context.Background(), uuid.New(), "Rome", -1, true)
		assert.ErrorIs(t, err, domain.ErrNegativeLocationCount)

		assert.Equal(t, 0, gen.Calls.Count)
	})

	t.Run("marks the persisted record failed when generation errors", func(t *testing.T) {
		t.Parallel()

		single := mocks.NewMockSingleCityItineraryStore()
		gen := &mocks.MockGenerator{Err: generation.ErrGenerationFailed}
		svc := newTestService(t, single, mocks.NewMockMultiCityItineraryStore(), gen)

		_, err := svc.CreateSingleCity(context.Background(), uuid.New(), "Rome", 3, true)
		require.ErrorIs(t, err, generation.ErrGenerationFailed)

		require.Len(t, single.Itineraries, 1)
		for _, stored := range single.Itineraries {
			assert.Equal(t, domain.GenerationFailed, stored.GenerationStatus)
			assert.Empty(t, stored.Locations)
		}
	})

	t.Run("surfaces the raw provider text on a format error", func(t *testing.T) {
		t.Parallel()

		formatErr := generation.NewResponseFormatError(
			"Sure! Here are some places to see in Rome...",
			errors.New("invalid character 'S' looking for beginning of value"))
		gen := &mocks.MockGenerator{Err: formatErr}
		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), mocks.NewMockMultiCityItineraryStore(), gen)

		_, err := svc.CreateSingleCity(context.Background(), uuid.New(), "Rome", 3, true)
		require.Error(t, err)

		var respErr *generation.ResponseFormatError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, "Sure! Here are some places to see in Rome...", respErr.RawResponse)
		assert.ErrorIs(t, err, generation.ErrInvalidResponse)
	})

	t.Run("returns the generation error even when the status update fails", func(t *testing.T) {
		t.Parallel()

		single := mocks.NewMockSingleCityItineraryStore()
		single.SetGenerationStatusFn = func(ctx context.Context, id uuid.UUID, status domain.GenerationStatus) error {
			return errors.New("connection reset")
		}
		gen := &mocks.MockGenerator{Err: generation.ErrGenerationFailed}
		svc := newTestService(t, single, mocks.NewMockMultiCityItineraryStore(), gen)

		_, err := svc.CreateSingleCity(context.Background(), uuid.New(), "Rome", 3, true)
		assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	})
}

func TestCreateMultiCity(t *testing.T) {
	t.Parallel()

	t.Run("persists a multi-city itinerary", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		multi := mocks.NewMockMultiCityItineraryStore()
		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), multi, &mocks.MockGenerator{})

		cities := []domain.CityPlan{
			{CityName: "Rome", NumberOfLocations: 4, OrganizedGeographically: true},
			{CityName: "Florence", NumberOfLocations: 2},
		}
		itinerary, err := svc.CreateMultiCity(context.Background(), userID, cities)
		require.NoError(t, err)

		assert.Equal(t, userID, itinerary.UserID)
		assert.Equal(t, cities, itinerary.Cities)
		assert.Contains(t, multi.Itineraries, itinerary.ID)
	})

	t.Run("rejects an empty city list", func(t *testing.T) {
		t.Parallel()

		multi := mocks.NewMockMultiCityItineraryStore()
		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), multi, &mocks.MockGenerator{})

		_, err := svc.CreateMultiCity(context.Background(), uuid.New(), nil)
		assert.ErrorIs(t, err, domain.ErrNoCities)
		assert.Empty(t, multi.Itineraries)
	})
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	t.Run("finds a single-city itinerary", func(t *testing.T) {
		t.Parallel()

		single := mocks.NewMockSingleCityItineraryStore()
		svc := newTestService(t, single, mocks.NewMockMultiCityItineraryStore(), &mocks.MockGenerator{})

		itinerary, err := domain.NewSingleCityItinerary(uuid.New(), "Rome", 3, true)
		require.NoError(t, err)
		require.NoError(t, single.Create(context.Background(), itinerary))

		tagged, err := svc.GetByID(context.Background(), itinerary.ID)
		require.NoError(t, err)
		assert.Equal(t, service.KindSingle, tagged.Kind)
		require.NotNil(t, tagged.Single)
		assert.Equal(t, itinerary.ID, tagged.Single.ID)
		assert.Nil(t, tagged.Multi)
	})

	t.Run("falls back to multi-city records", func(t *testing.T) {
		t.Parallel()

		multi := mocks.NewMockMultiCityItineraryStore()
		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), multi, &mocks.MockGenerator{})

		itinerary, err := domain.NewMultiCityItinerary(uuid.New(), []domain.CityPlan{{CityName: "Rome", NumberOfLocations: 2}})
		require.NoError(t, err)
		require.NoError(t, multi.Create(context.Background(), itinerary))

		tagged, err := svc.GetByID(context.Background(), itinerary.ID)
		require.NoError(t, err)
		assert.Equal(t, service.KindMulti, tagged.Kind)
		require.NotNil(t, tagged.Multi)
		assert.Equal(t, itinerary.ID, tagged.Multi.ID)
		assert.Nil(t, tagged.Single)
	})

	t.Run("reports unknown IDs as not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), mocks.NewMockMultiCityItineraryStore(), &mocks.MockGenerator{})

		_, err := svc.GetByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, store.ErrItineraryNotFound)
	})
}

func TestListForUser(t *testing.T) {
	t.Parallel()

	t.Run("returns both kinds tagged", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		single := mocks.NewMockSingleCityItineraryStore()
		multi := mocks.NewMockMultiCityItineraryStore()
		svc := newTestService(t, single, multi, &mocks.MockGenerator{})

		singleItinerary, err := domain.NewSingleCityItinerary(userID, "Rome", 3, true)
		require.NoError(t, err)
		require.NoError(t, single.Create(context.Background(), singleItinerary))

		multiItinerary, err := domain.NewMultiCityItinerary(userID, []domain.CityPlan{{CityName: "Lisbon", NumberOfLocations: 4}})
		require.NoError(t, err)
		require.NoError(t, multi.Create(context.Background(), multiItinerary))

		// Another user's record must not leak into the listing.
		other, err := domain.NewSingleCityItinerary(uuid.New(), "Oslo", 2, false)
		require.NoError(t, err)
		require.NoError(t, single.Create(context.Background(), other))

		tagged, err := svc.ListForUser(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, tagged, 2)

		kinds := []string{tagged[0].Kind, tagged[1].Kind}
		assert.Contains(t, kinds, service.KindSingle)
		assert.Contains(t, kinds, service.KindMulti)
	})

	t.Run("returns an empty slice for a user with no itineraries", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), mocks.NewMockMultiCityItineraryStore(), &mocks.MockGenerator{})

		tagged, err := svc.ListForUser(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, tagged)
	})
}

func TestListOwned(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	single := mocks.NewMockSingleCityItineraryStore()
	multi := mocks.NewMockMultiCityItineraryStore()
	svc := newTestService(t, single, multi, &mocks.MockGenerator{})

	singleItinerary, err := domain.NewSingleCityItinerary(userID, "Rome", 3, true)
	require.NoError(t, err)
	require.NoError(t, single.Create(context.Background(), singleItinerary))

	singles, multis, err := svc.ListOwned(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, singles, 1)
	assert.Equal(t, singleItinerary.ID, singles[0].ID)
	assert.Empty(t, multis)
}

func TestDeleteLocation(t *testing.T) {
	t.Parallel()

	seedItinerary := func(t *testing.T, single *mocks.MockSingleCityItineraryStore, userID uuid.UUID) *domain.SingleCityItinerary {
		t.Helper()

		itinerary, err := domain.NewSingleCityItinerary(userID, "Rome", 3, true)
		require.NoError(t, err)
		require.NoError(t, single.Create(context.Background(), itinerary))
		require.NoError(t, single.UpdateLocations(
			context.Background(), itinerary.ID, romeLocations(), domain.GenerationReady))

		stored, err := single.GetByID(context.Background(), itinerary.ID)
		require.NoError(t, err)
		return stored
	}

	t.Run("removes exactly the targeted location", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		single := mocks.NewMockSingleCityItineraryStore()
		svc := newTestService(t, single, mocks.NewMockMultiCityItineraryStore(), &mocks.MockGenerator{})
		itinerary := seedItinerary(t, single, userID)
		target := itinerary.Locations[1]

		updated, err := svc.DeleteLocation(context.Background(), userID, itinerary.ID, target.ID)
		require.NoError(t, err)

		assert.Len(t, updated.Locations, 2)
		assert.Equal(t, 2, updated.NumberOfLocations)
		for _, loc := range updated.Locations {
			assert.NotEqual(t, target.ID, loc.ID)
		}
		assert.Equal(t, domain.GenerationReady, updated.GenerationStatus)

		stored, err := single.GetByID(context.Background(), itinerary.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Locations, 2)
		assert.Equal(t, 2, stored.NumberOfLocations)
	})

	t.Run("denies deletion by a non-owner", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		single := mocks.NewMockSingleCityItineraryStore()
		svc := newTestService(t, single, mocks.NewMockMultiCityItineraryStore(), &mocks.MockGenerator{})
		itinerary := seedItinerary(t, single, userID)

		_, err := svc.DeleteLocation(context.Background(), uuid.New(), itinerary.ID, itinerary.Locations[0].ID)
		assert.ErrorIs(t, err, service.ErrNotOwner)

		stored, err := single.GetByID(context.Background(), itinerary.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Locations, 3)
	})

	t.Run("reports a missing location", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		single := mocks.NewMockSingleCityItineraryStore()
		svc := newTestService(t, single, mocks.NewMockMultiCityItineraryStore(), &mocks.MockGenerator{})
		itinerary := seedItinerary(t, single, userID)

		_, err := svc.DeleteLocation(context.Background(), userID, itinerary.ID, uuid.New())
		assert.ErrorIs(t, err, store.ErrLocationNotFound)
	})

	t.Run("reports a missing itinerary", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, mocks.NewMockSingleCityItineraryStore(), mocks.NewMockMultiCityItineraryStore(), &mocks.MockGenerator{})

		_, err := svc.DeleteLocation(context.Background(), uuid.New(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, store.ErrItineraryNotFound)
	})
}
