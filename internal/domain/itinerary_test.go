package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSingleCityItinerary(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	t.Run("valid itinerary", func(t *testing.T) {
		t.Parallel()
		itinerary, err := NewSingleCityItinerary(owner, "Rome", 3, true)
		require.NoError(t, err)

		assert.Equal(t, owner, itinerary.UserID)
		assert.Equal(t, "Rome", itinerary.CityName)
		assert.Equal(t, 3, itinerary.NumberOfLocations)
		assert.True(t, itinerary.OrganizedGeographically)
		assert.Equal(t, GenerationPending, itinerary.GenerationStatus)
		assert.Empty(t, itinerary.Locations)
	})

	tests := []struct {
		name    string
		owner   uuid.UUID
		city    string
		count   int
		wantErr error
	}{
		{"missing owner", uuid.Nil, "Rome", 3, ErrEmptyOwner},
		{"empty city", owner, "", 3, ErrEmptyCityName},
		{"blank city", owner, "  ", 3, ErrEmptyCityName},
		{"negative count", owner, "Rome", -1, ErrNegativeLocationCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			itinerary, err := NewSingleCityItinerary(tt.owner, tt.city, tt.count, false)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, itinerary)
		})
	}
}

func TestSingleCityItineraryValidateStatus(t *testing.T) {
	t.Parallel()

	itinerary, err := NewSingleCityItinerary(uuid.New(), "Rome", 3, false)
	require.NoError(t, err)

	for _, status := range []GenerationStatus{GenerationPending, GenerationReady, GenerationFailed} {
		itinerary.GenerationStatus = status
		assert.NoError(t, itinerary.Validate())
	}

	itinerary.GenerationStatus = GenerationStatus("done")
	assert.ErrorIs(t, itinerary.Validate(), ErrInvalidStatus)
}

func TestNewMultiCityItinerary(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	cities := []CityPlan{
		{CityName: "Rome", NumberOfLocations: 3, OrganizedGeographically: true},
		{CityName: "Florence", NumberOfLocations: 2},
	}

	t.Run("valid itinerary", func(t *testing.T) {
		t.Parallel()
		itinerary, err := NewMultiCityItinerary(owner, cities)
		require.NoError(t, err)

		assert.Equal(t, owner, itinerary.UserID)
		assert.Len(t, itinerary.Cities, 2)
	})

	t.Run("no cities", func(t *testing.T) {
		t.Parallel()
		itinerary, err := NewMultiCityItinerary(owner, nil)
		assert.ErrorIs(t, err, ErrNoCities)
		assert.Nil(t, itinerary)
	})

	t.Run("invalid city entry", func(t *testing.T) {
		t.Parallel()
		bad := []CityPlan{{CityName: "Rome", NumberOfLocations: 3}, {CityName: "", NumberOfLocations: 1}}
		itinerary, err := NewMultiCityItinerary(owner, bad)
		assert.ErrorIs(t, err, ErrEmptyCityName)
		assert.Nil(t, itinerary)
	})

	t.Run("negative count entry", func(t *testing.T) {
		t.Parallel()
		bad := []CityPlan{{CityName: "Rome", NumberOfLocations: -2}}
		itinerary, err := NewMultiCityItinerary(owner, bad)
		assert.ErrorIs(t, err, ErrNegativeLocationCount)
		assert.Nil(t, itinerary)
	})
}
