package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidInput is returned when a request fails domain validation.
var ErrInvalidInput = errors.New("invalid input")

// Trip represents one planned trip, keyed by its shareable trip code.
// The code doubles as the login credential: whoever knows it owns the trip.
type Trip struct {
	ID          string          `json:"id"`
	TripCode    string          `json:"trip_code"`
	Destination string          `json:"destination"`
	PartySize   int             `json:"party_size"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Checklist   []ChecklistItem `json:"checklist"`
	Itinerary   []DayRecord     `json:"itinerary"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewTrip returns a new Trip with the given fields. ID is typically set by the repository on create.
func NewTrip(tripCode, destination string, partySize int, startDate, endDate string, createdAt, updatedAt time.Time) *Trip {
	return &Trip{
		TripCode:    tripCode,
		Destination: destination,
		PartySize:   partySize,
		StartDate:   startDate,
		EndDate:     endDate,
		Checklist:   []ChecklistItem{},
		Itinerary:   []DayRecord{},
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// Countdown is the time remaining until a trip starts.
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Started bool `json:"started"`
}

// TripRepository defines the interface for trip storage. The trip code is
// the lookup key; checklist and itinerary travel with the record as opaque
// documents.
type TripRepository interface {
	Create(ctx context.Context, trip *Trip) error
	GetByCode(ctx context.Context, code string) (*Trip, error)
	Update(ctx context.Context, trip *Trip) error
	DeleteByCode(ctx context.Context, code string) error
}

// TripCache fronts the repository for trip reads. Get returns ok=false on a
// miss; a failing cache must never fail the request.
type TripCache interface {
	Get(ctx context.Context, code string) (trip *Trip, ok bool, err error)
	Set(ctx context.Context, trip *Trip) error
	Delete(ctx context.Context, code string) error
}

// TripService defines the business logic for the trip lifecycle.
type TripService interface {
	CreateTrip(ctx context.Context, destination string, partySize int, startDate, endDate, itineraryText string) (*Trip, string, error)
	LoginWithCode(ctx context.Context, code string) (*Trip, string, error)
	GetByCode(ctx context.Context, code string) (*Trip, error)
	DeleteByCode(ctx context.Context, code string) error
	UpdateItinerary(ctx context.Context, code, text string) ([]DayRecord, error)
	Countdown(ctx context.Context, code string, now time.Time) (*Countdown, error)
	ShareTripCode(ctx context.Context, code, email string) error
}
