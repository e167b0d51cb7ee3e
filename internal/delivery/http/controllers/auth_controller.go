package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

// LoginRequest is the request body for POST /auth/login
type LoginRequest struct {
	TripCode string `json:"trip_code"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	code := strings.TrimSpace(l.TripCode)
	if code == "" {
		errs = append(errs, "trip_code is required")
	} else if len(code) != 6 {
		errs = append(errs, "trip_code must be 6 characters")
	}
	return errs
}

// LoginResponse is the response body for POST /auth/login
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	Trip      *domain.Trip `json:"trip"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.TripService
}

func NewAuthController(logger *slog.Logger, svc domain.TripService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Login godoc
// @Summary Log in with a trip code
// @Description Present a 6-character trip code. Returns a JWT scoped to that trip plus the trip itself.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Trip code"
// @Success 200 {object} helpers.APIResponse "data contains token, token_type, and trip"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	trip, token, err := c.Service.LoginWithCode(r.Context(), req.TripCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			// An unknown code reads the same as a bad one.
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid trip code")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, err.Error())
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", Trip: trip})
}
