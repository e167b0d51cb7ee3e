package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	h "tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/delivery/http/middleware"
	"tripplanner/internal/domain"
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	dateRegexp  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// CreateTripRequest is the request body for POST /trips
type CreateTripRequest struct {
	Destination   string `json:"destination"`
	PartySize     int    `json:"party_size"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	ItineraryText string `json:"itinerary_text"`
}

// Validate implements Validator.
func (c CreateTripRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Destination) == "" {
		errs = append(errs, "destination is required")
	}
	if c.PartySize < 1 {
		errs = append(errs, "party_size must be at least 1")
	}
	if !dateRegexp.MatchString(c.StartDate) {
		errs = append(errs, "start_date must be YYYY-MM-DD")
	}
	if !dateRegexp.MatchString(c.EndDate) {
		errs = append(errs, "end_date must be YYYY-MM-DD")
	}
	return errs
}

// CreateTripResponse is the response body for POST /trips
type CreateTripResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	Trip      *domain.Trip `json:"trip"`
}

// ShareRequest is the request body for POST /trips/me/share
type ShareRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (s ShareRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(s.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	return errs
}

type TripController struct {
	Logger  *slog.Logger
	Service domain.TripService
}

func NewTripController(logger *slog.Logger, svc domain.TripService) *TripController {
	return &TripController{
		Logger:  logger,
		Service: svc,
	}
}

// tripCode pulls the authenticated trip code out of the request context.
// Writes 401 and returns false when the middleware did not run.
func tripCode(w http.ResponseWriter, r *http.Request) (string, bool) {
	code, ok := middleware.TripCodeFromContext(r.Context())
	if !ok || code == "" {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	return code, true
}

// writeServiceError maps common service errors onto the response envelope.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "trip not found")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid input")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip with destination, party size, and dates. Free-text itinerary is parsed into a day-by-day plan; when omitted, a default plan is generated. Returns the trip, its shareable code, and a JWT.
// @Tags trips
// @Accept json
// @Produce json
// @Param body body CreateTripRequest true "Trip data"
// @Success 201 {object} helpers.APIResponse "data contains token, token_type, and trip"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips [post]
func (c *TripController) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	trip, token, err := c.Service.CreateTrip(r.Context(), req.Destination, req.PartySize, req.StartDate, req.EndDate, req.ItineraryText)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, CreateTripResponse{Token: token, TokenType: "Bearer", Trip: trip})
}

// GetMyTrip godoc
// @Summary Get the authenticated trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the trip"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me [get]
func (c *TripController) GetMyTrip(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	trip, err := c.Service.GetByCode(r.Context(), code)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, trip)
}

// DeleteMyTrip godoc
// @Summary Delete the authenticated trip
// @Description Remove the trip record entirely. The trip code stops working.
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains deleted: true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me [delete]
func (c *TripController) DeleteMyTrip(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteByCode(r.Context(), code); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Countdown godoc
// @Summary Days, hours, and minutes until the trip starts
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains days, hours, minutes, started"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /trips/me/countdown [get]
func (c *TripController) Countdown(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	cd, err := c.Service.Countdown(r.Context(), code, time.Now())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, cd)
}

// Share godoc
// @Summary Email the trip code to a travel companion
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ShareRequest true "Recipient email"
// @Success 200 {object} helpers.APIResponse "data contains sent: true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/me/share [post]
func (c *TripController) Share(w http.ResponseWriter, r *http.Request) {
	code, ok := tripCode(w, r)
	if !ok {
		return
	}
	var req ShareRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.ShareTripCode(r.Context(), code, req.Email); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"sent": true})
}
