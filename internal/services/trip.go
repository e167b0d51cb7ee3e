package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tripplanner/internal/checklist"
	"tripplanner/internal/domain"
	"tripplanner/internal/itinerary"
)

const maxCodeAttempts = 5

type tripService struct {
	tripRepo       domain.TripRepository
	cache          domain.TripCache
	codes          domain.CodeGenerator
	tokens         domain.TokenIssuer
	emailService   domain.EmailService
	logger         *slog.Logger
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewTripService wires the trip lifecycle. The cache may be nil, in which
// case every read goes to the repository.
func NewTripService(
	tripRepo domain.TripRepository,
	cache domain.TripCache,
	codes domain.CodeGenerator,
	tokens domain.TokenIssuer,
	emailService domain.EmailService,
	logger *slog.Logger,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.TripService {
	return &tripService{
		tripRepo:       tripRepo,
		cache:          cache,
		codes:          codes,
		tokens:         tokens,
		emailService:   emailService,
		logger:         logger,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

const dateLayout = "2006-01-02"

func (s *tripService) CreateTrip(ctx context.Context, destination string, partySize int, startDate, endDate, itineraryText string) (*domain.Trip, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	destination = strings.TrimSpace(destination)
	if destination == "" || partySize < 1 {
		return nil, "", domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, "", domain.ErrInvalidInput
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, "", domain.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, "", domain.ErrInvalidInput
	}

	code, err := s.freshCode(ctx)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	trip := domain.NewTrip(code, destination, partySize, startDate, endDate, now, now)
	trip.Checklist = checklist.DefaultItems(destination, partySize, startDate, endDate)
	if strings.TrimSpace(itineraryText) == "" {
		trip.Itinerary = itinerary.BuildDefault(startDate, endDate)
	} else {
		trip.Itinerary = itinerary.Parse(itineraryText, startDate, endDate)
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, "", fmt.Errorf("create trip: %w", err)
	}
	s.cacheSet(ctx, trip)

	token, err := s.tokens.Issue(trip.TripCode, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return trip, token, nil
}

// freshCode draws codes until one is not taken yet.
func (s *tripService) freshCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := s.codes.Generate()
		if err != nil {
			return "", fmt.Errorf("generate trip code: %w", err)
		}
		_, err = s.tripRepo.GetByCode(ctx, code)
		if errors.Is(err, domain.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("check trip code: %w", err)
		}
	}
	return "", fmt.Errorf("could not find a free trip code after %d attempts", maxCodeAttempts)
}

func (s *tripService) LoginWithCode(ctx context.Context, code string) (*domain.Trip, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, "", domain.ErrInvalidInput
	}
	trip, err := s.getTrip(ctx, code)
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(trip.TripCode, s.tokenExpiry)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return trip, token, nil
}

func (s *tripService) GetByCode(ctx context.Context, code string) (*domain.Trip, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.getTrip(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *tripService) DeleteByCode(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	code = strings.ToUpper(strings.TrimSpace(code))
	if err := s.tripRepo.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete trip: %w", err)
	}
	s.cacheDelete(ctx, code)
	return nil
}

func (s *tripService) UpdateItinerary(ctx context.Context, code, text string) ([]domain.DayRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.getTrip(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		trip.Itinerary = itinerary.BuildDefault(trip.StartDate, trip.EndDate)
	} else {
		trip.Itinerary = itinerary.Parse(text, trip.StartDate, trip.EndDate)
	}
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update itinerary: %w", err)
	}
	s.cacheSet(ctx, trip)
	return trip.Itinerary, nil
}

func (s *tripService) Countdown(ctx context.Context, code string, now time.Time) (*domain.Countdown, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.getTrip(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	start, err := time.Parse(dateLayout, trip.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}
	// Count down to midnight local time at the start of the trip.
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	remaining := start.Sub(now)
	if remaining <= 0 {
		return &domain.Countdown{Started: true}, nil
	}
	return &domain.Countdown{
		Days:    int(remaining.Hours()) / 24,
		Hours:   int(remaining.Hours()) % 24,
		Minutes: int(remaining.Minutes()) % 60,
	}, nil
}

func (s *tripService) ShareTripCode(ctx context.Context, code, email string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.ErrInvalidInput
	}
	trip, err := s.getTrip(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return err
	}
	data := &domain.TripCodeEmailData{
		Email:       email,
		TripCode:    trip.TripCode,
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		LengthDays:  checklist.TripLengthDays(trip.StartDate, trip.EndDate),
	}
	if err := s.emailService.SendTripCode(ctx, data); err != nil {
		return fmt.Errorf("share trip code: %w", err)
	}
	return nil
}

// getTrip reads through the cache. The code must already be normalized.
func (s *tripService) getTrip(ctx context.Context, code string) (*domain.Trip, error) {
	if s.cache != nil {
		trip, ok, err := s.cache.Get(ctx, code)
		if err != nil {
			s.logger.Warn("trip cache read failed", "trip_code", code, "error", err)
		} else if ok {
			return trip, nil
		}
	}
	trip, err := s.tripRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	s.cacheSet(ctx, trip)
	return trip, nil
}

func (s *tripService) cacheSet(ctx context.Context, trip *domain.Trip) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, trip); err != nil {
		s.logger.Warn("trip cache write failed", "trip_code", trip.TripCode, "error", err)
	}
}

func (s *tripService) cacheDelete(ctx context.Context, code string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, code); err != nil {
		s.logger.Warn("trip cache delete failed", "trip_code", code, "error", err)
	}
}
