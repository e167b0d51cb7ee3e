package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/checklist"
	"tripplanner/internal/domain"

	"github.com/google/uuid"
)

type checklistService struct {
	tripRepo       domain.TripRepository
	cache          domain.TripCache
	contextTimeout time.Duration
}

// NewChecklistService wires checklist operations on top of the trip store.
// The cache may be nil.
func NewChecklistService(tripRepo domain.TripRepository, cache domain.TripCache, timeout time.Duration) domain.ChecklistService {
	return &checklistService{
		tripRepo:       tripRepo,
		cache:          cache,
		contextTimeout: timeout,
	}
}

func (s *checklistService) List(ctx context.Context, code string) ([]domain.ChecklistItem, *domain.ChecklistProgress, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.loadTrip(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	progress := checklist.Progress(trip.Checklist)
	return trip.Checklist, &progress, nil
}

func (s *checklistService) AddItem(ctx context.Context, code, title, description, category string) (*domain.ChecklistItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}
	if category == "" {
		category = "Custom"
	}

	trip, err := s.loadTrip(ctx, code)
	if err != nil {
		return nil, err
	}
	item := domain.ChecklistItem{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Category:    category,
	}
	trip.Checklist = append(trip.Checklist, item)
	if err := s.saveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *checklistService) SetCompleted(ctx context.Context, code, itemID string, completed bool) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.loadTrip(ctx, code)
	if err != nil {
		return err
	}
	found := false
	for i := range trip.Checklist {
		if trip.Checklist[i].ID == itemID {
			trip.Checklist[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		return domain.ErrNotFound
	}
	return s.saveTrip(ctx, trip)
}

func (s *checklistService) DeleteItem(ctx context.Context, code, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.loadTrip(ctx, code)
	if err != nil {
		return err
	}
	kept := trip.Checklist[:0]
	found := false
	for _, item := range trip.Checklist {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return domain.ErrNotFound
	}
	trip.Checklist = kept
	return s.saveTrip(ctx, trip)
}

func (s *checklistService) AddSuggestions(ctx context.Context, code string) ([]domain.ChecklistItem, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	trip, err := s.loadTrip(ctx, code)
	if err != nil {
		return nil, err
	}
	missing := checklist.Missing(trip.Checklist)
	if len(missing) == 0 {
		return []domain.ChecklistItem{}, nil
	}
	trip.Checklist = append(trip.Checklist, missing...)
	if err := s.saveTrip(ctx, trip); err != nil {
		return nil, err
	}
	return missing, nil
}

func (s *checklistService) loadTrip(ctx context.Context, code string) (*domain.Trip, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	trip, err := s.tripRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

func (s *checklistService) saveTrip(ctx context.Context, trip *domain.Trip) error {
	if err := s.tripRepo.Update(ctx, trip); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update trip: %w", err)
	}
	if s.cache != nil {
		// Best effort refresh; a stale or missing entry reloads from Postgres.
		_ = s.cache.Set(ctx, trip)
	}
	return nil
}
