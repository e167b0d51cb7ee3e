package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"tripplanner/internal/delivery/http/controllers"
	"tripplanner/internal/delivery/http/middleware"
	"tripplanner/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	limiter *middleware.RateLimiter,
	tripController *controllers.TripController,
	authController *controllers.AuthController,
	itineraryController *controllers.ItineraryController,
	checklistController *controllers.ChecklistController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Public routes, throttled per client IP
	mux.HandleFunc("POST /trips", limiter.Limit(tripController.CreateTrip))
	mux.HandleFunc("POST /auth/login", limiter.Limit(authController.Login))

	// Trip
	mux.HandleFunc("GET /trips/me", auth(tripController.GetMyTrip))
	mux.HandleFunc("DELETE /trips/me", auth(tripController.DeleteMyTrip))
	mux.HandleFunc("GET /trips/me/countdown", auth(tripController.Countdown))
	mux.HandleFunc("POST /trips/me/share", auth(tripController.Share))

	// Itinerary
	mux.HandleFunc("GET /trips/me/itinerary", auth(itineraryController.GetItinerary))
	mux.HandleFunc("PUT /trips/me/itinerary", auth(itineraryController.UpdateItinerary))

	// Checklist
	mux.HandleFunc("GET /trips/me/checklist", auth(checklistController.List))
	mux.HandleFunc("POST /trips/me/checklist", auth(checklistController.AddItem))
	mux.HandleFunc("PATCH /trips/me/checklist/{itemID}", auth(checklistController.SetCompleted))
	mux.HandleFunc("DELETE /trips/me/checklist/{itemID}", auth(checklistController.DeleteItem))
	mux.HandleFunc("POST /trips/me/checklist/suggestions", auth(checklistController.AddSuggestions))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
