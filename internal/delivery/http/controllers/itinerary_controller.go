package controllers

import (
	"log/slog"
	"net/http"

	h "tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

// UpdateItineraryRequest is the request body for PUT /trips/me/itinerary
type UpdateItineraryRequest struct {
	Text string `json:"text"`
}

type ItineraryController struct {
	Logger *slog.Logger
	Trips  domain.TripService
}

func NewItineraryController(logger *slog.Logger, trips domain.TripService) *ItineraryController {
	return &ItineraryController{
		Logger: logger,
		Trips:  trips,
	}
}

// GetItinerary godoc
// @Summary Get the day-by-day plan for the authenticated trip
// @Tags itinerary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the list of day records"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me/itinerary [get]
func (c *ItineraryController) GetItinerary(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	trip, err := c.Trips.GetByCode(r.Context(), code)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, trip.Itinerary)
}

// UpdateItinerary godoc
// @Summary Replace the itinerary from free text
// @Description Re-parses the pasted text into day records. Blank text restores the generated default plan.
// @Tags itinerary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateItineraryRequest true "Free-text itinerary"
// @Success 200 {object} helpers.APIResponse "data contains the new list of day records"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me/itinerary [put]
func (c *ItineraryController) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	var req UpdateItineraryRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	days, err := c.Trips.UpdateItinerary(r.Context(), code, req.Text)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, days)
}
