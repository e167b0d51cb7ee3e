package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripplanner/internal/domain"
)

const dateLayout = "2006-01-02"

type tripRepository struct {
	DB *sql.DB
}

func NewTripRepository(db *sql.DB) domain.TripRepository {
	return &tripRepository{
		DB: db,
	}
}

func (r *tripRepository) Create(ctx context.Context, t *domain.Trip) error {
	checklistJSON, err := json.Marshal(t.Checklist)
	if err != nil {
		return fmt.Errorf("encode checklist: %w", err)
	}
	itineraryJSON, err := json.Marshal(t.Itinerary)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	query := `
		INSERT INTO trips (trip_code, destination, party_size, start_date, end_date, checklist, itinerary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		t.TripCode, t.Destination, t.PartySize, t.StartDate, t.EndDate,
		checklistJSON, itineraryJSON, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
}

func (r *tripRepository) GetByCode(ctx context.Context, code string) (*domain.Trip, error) {
	tripCode := strings.ToUpper(strings.TrimSpace(code))
	query := `
		SELECT id, trip_code, destination, party_size, start_date, end_date, checklist, itinerary, created_at, updated_at
		FROM trips
		WHERE trip_code = $1
	`
	t := &domain.Trip{}
	var startDate, endDate time.Time
	var checklistJSON, itineraryJSON []byte
	err := r.DB.QueryRowContext(ctx, query, tripCode).Scan(
		&t.ID, &t.TripCode, &t.Destination, &t.PartySize, &startDate, &endDate,
		&checklistJSON, &itineraryJSON, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	t.StartDate = startDate.Format(dateLayout)
	t.EndDate = endDate.Format(dateLayout)
	if err := json.Unmarshal(checklistJSON, &t.Checklist); err != nil {
		return nil, fmt.Errorf("decode checklist: %w", err)
	}
	if err := json.Unmarshal(itineraryJSON, &t.Itinerary); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	return t, nil
}

func (r *tripRepository) Update(ctx context.Context, t *domain.Trip) error {
	checklistJSON, err := json.Marshal(t.Checklist)
	if err != nil {
		return fmt.Errorf("encode checklist: %w", err)
	}
	itineraryJSON, err := json.Marshal(t.Itinerary)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	query := `
		UPDATE trips
		SET destination = $1, party_size = $2, start_date = $3, end_date = $4,
		    checklist = $5, itinerary = $6, updated_at = NOW()
		WHERE trip_code = $7
		RETURNING updated_at
	`
	err = r.DB.QueryRowContext(ctx, query,
		t.Destination, t.PartySize, t.StartDate, t.EndDate,
		checklistJSON, itineraryJSON, t.TripCode,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *tripRepository) DeleteByCode(ctx context.Context, code string) error {
	query := `DELETE FROM trips WHERE trip_code = $1`
	result, err := r.DB.ExecContext(ctx, query, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
