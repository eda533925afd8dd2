package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Itinerary validation errors.
var (
	ErrEmptyItineraryID      = errors.New("itinerary ID cannot be empty")
	ErrEmptyOwner            = errors.New("itinerary owner cannot be empty")
	ErrEmptyCityName         = errors.New("city name cannot be empty")
	ErrNegativeLocationCount = errors.New("location count cannot be negative")
	ErrNoCities              = errors.New("itinerary must contain at least one city")
	ErrInvalidStatus         = errors.New("invalid generation status")
)

// GenerationStatus tracks the lifecycle of a single-city itinerary's
// location generation. The initial insert happens before the provider call,
// so a record can be observed without locations; the status makes that
// partial state self-describing.
type GenerationStatus string

const (
	// GenerationPending means the itinerary is persisted but the provider
	// call has not completed yet.
	GenerationPending GenerationStatus = "pending"

	// GenerationReady means locations were generated and persisted.
	GenerationReady GenerationStatus = "ready"

	// GenerationFailed means the provider call or response parsing failed;
	// the itinerary exists without locations.
	GenerationFailed GenerationStatus = "failed"
)

// valid reports whether the status is one of the known values.
func (s GenerationStatus) valid() bool {
	switch s {
	case GenerationPending, GenerationReady, GenerationFailed:
		return true
	}
	return false
}

// Location is a single stop within a single-city itinerary. It has no
// lifecycle outside its parent; the ID exists so individual locations can
// be removed.
type Location struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// SingleCityItinerary is an itinerary for one city whose locations are
// populated by the generation flow.
type SingleCityItinerary struct {
	ID                      uuid.UUID        `json:"id"`
	UserID                  uuid.UUID        `json:"userId"`
	CityName                string           `json:"cityName"`
	NumberOfLocations       int              `json:"numberOfLocations"`
	OrganizedGeographically bool             `json:"organizedGeographically"`
	GenerationStatus        GenerationStatus `json:"generationStatus"`
	Locations               []Location       `json:"locations"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
}

// NewSingleCityItinerary creates a single-city itinerary owned by userID
// with an empty location sequence and pending generation status.
func NewSingleCityItinerary(
	userID uuid.UUID,
	cityName string,
	numberOfLocations int,
	organizedGeographically bool,
) (*SingleCityItinerary, error) {
	now := time.Now().UTC()
	itinerary := &SingleCityItinerary{
		ID:                      uuid.New(),
		UserID:                  userID,
		CityName:                cityName,
		NumberOfLocations:       numberOfLocations,
		OrganizedGeographically: organizedGeographically,
		GenerationStatus:        GenerationPending,
		Locations:               []Location{},
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	if err := itinerary.Validate(); err != nil {
		return nil, err
	}

	return itinerary, nil
}

// Validate checks if the SingleCityItinerary has valid data.
func (i *SingleCityItinerary) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyItineraryID
	}
	if i.UserID == uuid.Nil {
		return ErrEmptyOwner
	}
	if strings.TrimSpace(i.CityName) == "" {
		return ErrEmptyCityName
	}
	if i.NumberOfLocations < 0 {
		return ErrNegativeLocationCount
	}
	if !i.GenerationStatus.valid() {
		return ErrInvalidStatus
	}
	return nil
}

// CityPlan is one entry of a multi-city itinerary.
type CityPlan struct {
	CityName                string `json:"cityName"`
	NumberOfLocations       int    `json:"numberOfLocations"`
	OrganizedGeographically bool   `json:"organizedGeographically"`
}

// Validate checks if the CityPlan has valid data.
func (c *CityPlan) Validate() error {
	if strings.TrimSpace(c.CityName) == "" {
		return ErrEmptyCityName
	}
	if c.NumberOfLocations < 0 {
		return ErrNegativeLocationCount
	}
	return nil
}

// MultiCityItinerary is an itinerary spanning several cities. It has no
// location-generation step.
type MultiCityItinerary struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Cities    []CityPlan `json:"cities"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// NewMultiCityItinerary creates a multi-city itinerary owned by userID.
func NewMultiCityItinerary(userID uuid.UUID, cities []CityPlan) (*MultiCityItinerary, error) {
	now := time.Now().UTC()
	itinerary := &MultiCityItinerary{
		ID:        uuid.New(),
		UserID:    userID,
		Cities:    cities,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := itinerary.Validate(); err != nil {
		return nil, err
	}

	return itinerary, nil
}

// Validate checks if the MultiCityItinerary has valid data.
func (i *MultiCityItinerary) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyItineraryID
	}
	if i.UserID == uuid.Nil {
		return ErrEmptyOwner
	}
	if len(i.Cities) == 0 {
		return ErrNoCities
	}
	for idx := range i.Cities {
		if err := i.Cities[idx].Validate(); err != nil {
			return err
		}
	}
	return nil
}
