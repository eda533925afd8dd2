package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/voyago/voyago-api/internal/api/shared"
	"github.com/voyago/voyago-api/internal/domain"
	"github.com/voyago/voyago-api/internal/service"
)

// ItineraryHandler handles the itinerary endpoints. All routes require an
// authenticated principal.
type ItineraryHandler struct {
	service *service.ItineraryService
	logger  *slog.Logger
}

// NewItineraryHandler creates a new ItineraryHandler with the given
// dependencies.
func NewItineraryHandler(svc *service.ItineraryService, logger *slog.Logger) *ItineraryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItineraryHandler{
		service: svc,
		logger:  logger.With(slog.String("component", "itinerary_handler")),
	}
}

// tagItinerary converts a service lookup result into its wire form.
func tagItinerary(tagged *service.TaggedItinerary) interface{} {
	if tagged.Kind == service.KindSingle {
		return SingleCityItineraryResponse{
			SingleCityItinerary: tagged.Single,
			Type:                service.KindSingle,
		}
	}
	return MultiCityItineraryResponse{
		MultiCityItinerary: tagged.Multi,
		Type:               service.KindMulti,
	}
}

// GetByID handles GET /api/itineraries/{id}. Any authenticated caller may
// fetch any itinerary; ownership is only enforced on mutation.
func (h *ItineraryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tagged, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tagItinerary(tagged))
}

// ListForUser handles GET /api/itineraries/getall?userId=.
func (h *ItineraryHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	rawUserID := r.URL.Query().Get("userId")
	if rawUserID == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "userId query parameter is required")
		return
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid userId format")
		return
	}

	tagged, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list itineraries")
		return
	}

	response := make([]interface{}, 0, len(tagged))
	for i := range tagged {
		response = append(response, tagItinerary(&tagged[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// ListOwned handles GET /api/itineraries/. It returns the caller's records
// grouped by kind.
func (h *ItineraryHandler) ListOwned(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	singles, multis, err := h.service.ListOwned(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list itineraries")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, OwnedItinerariesResponse{
		SingleCityItineraries: singles,
		MultiCityItineraries:  multis,
	})
}

// CreateSingleCity handles POST /api/itineraries/single-city. The locations
// are generated synchronously before the response is written; a generation
// failure leaves the record persisted with status failed and maps to a 500
// carrying rawResponse when the provider output could not be parsed.
func (h *ItineraryHandler) CreateSingleCity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateSingleCityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Validation error: cityName, numberOfLocations and organizedGeographically are required")
		return
	}

	itinerary, err := h.service.CreateSingleCity(
		r.Context(), userID, req.CityName, *req.NumberOfLocations, *req.OrganizedGeographically)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, itinerary)
}

// CreateMultiCity handles POST /api/itineraries/multi-city.
func (h *ItineraryHandler) CreateMultiCity(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CreateMultiCityRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Validation error: every city entry needs cityName, numberOfLocations and organizedGeographically")
		return
	}

	cities := make([]domain.CityPlan, 0, len(req.Cities))
	for _, c := range req.Cities {
		cities = append(cities, domain.CityPlan{
			CityName:                c.CityName,
			NumberOfLocations:       *c.NumberOfLocations,
			OrganizedGeographically: *c.OrganizedGeographically,
		})
	}

	itinerary, err := h.service.CreateMultiCity(r.Context(), userID, cities)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, itinerary)
}

// DeleteLocation handles DELETE /api/itineraries/{itineraryId}/locations/{locationId}.
func (h *ItineraryHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	itineraryID, err := getPathUUID(r, "itineraryId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	locationID, err := getPathUUID(r, "locationId")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	updated, err := h.service.DeleteLocation(r.Context(), userID, itineraryID, locationID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteLocationResponse{
		Message:          "Location deleted successfully",
		UpdatedItinerary: updated,
	})
}
