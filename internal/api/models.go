package api

import (
	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse is the public view of a user, safe for API responses.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// NewUserResponse builds the public view of a user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// AuthResponse defines the successful response for signup and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateSingleCityRequest defines the payload for creating a single-city
// itinerary. NumberOfLocations and OrganizedGeographically are pointers so
// that absent fields can be told apart from zero values.
type CreateSingleCityRequest struct {
	CityName                string `json:"cityName"                validate:"required"`
	NumberOfLocations       *int   `json:"numberOfLocations"       validate:"required,min=0"`
	OrganizedGeographically *bool  `json:"organizedGeographically" validate:"required"`
}

// CityPlanRequest is one entry of a multi-city itinerary payload. The
// pointer fields make absent values distinguishable from zero values, the
// same way CreateSingleCityRequest does.
type CityPlanRequest struct {
	CityName                string `json:"cityName"                validate:"required"`
	NumberOfLocations       *int   `json:"numberOfLocations"       validate:"required,min=0"`
	OrganizedGeographically *bool  `json:"organizedGeographically" validate:"required"`
}

// CreateMultiCityRequest defines the payload for creating a multi-city
// itinerary.
type CreateMultiCityRequest struct {
	Cities []CityPlanRequest `json:"cities" validate:"required,min=1,dive"`
}

// SingleCityItineraryResponse tags a single-city itinerary with its kind
// for endpoints that can return either kind.
type SingleCityItineraryResponse struct {
	*domain.SingleCityItinerary
	Type string `json:"type"`
}

// MultiCityItineraryResponse tags a multi-city itinerary with its kind.
type MultiCityItineraryResponse struct {
	*domain.MultiCityItinerary
	Type string `json:"type"`
}

// OwnedItinerariesResponse groups the caller's itineraries by kind.
type OwnedItinerariesResponse struct {
	SingleCityItineraries []*domain.SingleCityItinerary `json:"singleCityItineraries"`
	MultiCityItineraries  []*domain.MultiCityItinerary  `json:"multiCityItineraries"`
}

// DeleteLocationResponse confirms a location removal and returns the
// itinerary as it now stands.
type DeleteLocationResponse struct {
	Message          string                      `json:"message"`
	UpdatedItinerary *domain.SingleCityItinerary `json:"updatedItinerary"`
}
