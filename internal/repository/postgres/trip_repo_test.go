package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"tripplanner/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestTripRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		trip    *domain.Trip
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			trip: &domain.Trip{
				TripCode:    "JX4K9P",
				Destination: "Walt Disney World",
				PartySize:   4,
				StartDate:   "2025-12-06",
				EndDate:     "2025-12-12",
				Checklist:   []domain.ChecklistItem{},
				Itinerary:   []domain.DayRecord{},
				CreatedAt:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO trips \(trip_code, destination, party_size, start_date, end_date, checklist, itinerary, created_at, updated_at\)`).
					WithArgs("JX4K9P", "Walt Disney World", 4, "2025-12-06", "2025-12-12", []byte("[]"), []byte("[]"), time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("trip-uuid-1"))
			},
			wantID:  "trip-uuid-1",
			wantErr: false,
		},
		{
			name: "db error",
			trip: &domain.Trip{
				TripCode:    "AAAAAA",
				Destination: "Disneyland",
				PartySize:   2,
				StartDate:   "2026-01-01",
				EndDate:     "2026-01-03",
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO trips`).
					WillReturnError(sql.ErrConnDone)
			},
			wantID:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTripRepository(db)
			err = repo.Create(ctx, tt.trip)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.trip.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTripRepository_GetByCode(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "trip_code", "destination", "party_size", "start_date", "end_date", "checklist", "itinerary", "created_at", "updated_at"}

	tests := []struct {
		name    string
		code    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Trip
		wantErr error
	}{
		{
			name: "success normalizes code and formats dates",
			code: "  jx4k9p ",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, trip_code, destination, party_size, start_date, end_date`).
					WithArgs("JX4K9P").
					WillReturnRows(sqlmock.NewRows(cols).AddRow(
						"trip-1", "JX4K9P", "Walt Disney World", 4,
						time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC),
						time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC),
						[]byte(`[{"id":"item-1","title":"Book Flights","description":"","category":"Travel","days_before_trip":60,"completed":true}]`),
						[]byte(`[{"label":"Saturday, Dec 6","date_key":"2025-12-06","title":"Arrival Day","icon":"✈️","highlights":[]}]`),
						time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
						time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
					))
			},
			want: &domain.Trip{
				ID:          "trip-1",
				TripCode:    "JX4K9P",
				Destination: "Walt Disney World",
				PartySize:   4,
				StartDate:   "2025-12-06",
				EndDate:     "2025-12-12",
				Checklist: []domain.ChecklistItem{
					{ID: "item-1", Title: "Book Flights", Category: "Travel", DaysBeforeTrip: 60, Completed: true},
				},
				Itinerary: []domain.DayRecord{
					{Label: "Saturday, Dec 6", DateKey: "2025-12-06", Title: "Arrival Day", Icon: "✈️", Highlights: []domain.Highlight{}},
				},
				CreatedAt: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
				UpdatedAt: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "not found",
			code: "ZZZZZZ",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, trip_code, destination, party_size, start_date, end_date`).
					WithArgs("ZZZZZZ").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTripRepository(db)
			got, err := repo.GetByCode(ctx, tt.code)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTripRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		updated := time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`UPDATE trips`).
			WithArgs("Walt Disney World", 4, "2025-12-06", "2025-12-12", []byte("[]"), []byte("[]"), "JX4K9P").
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))

		trip := &domain.Trip{
			TripCode:    "JX4K9P",
			Destination: "Walt Disney World",
			PartySize:   4,
			StartDate:   "2025-12-06",
			EndDate:     "2025-12-12",
			Checklist:   []domain.ChecklistItem{},
			Itinerary:   []domain.DayRecord{},
		}
		repo := NewTripRepository(db)
		require.NoError(t, repo.Update(ctx, trip))
		require.Equal(t, updated, trip.UpdatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE trips`).WillReturnError(sql.ErrNoRows)

		repo := NewTripRepository(db)
		err = repo.Update(ctx, &domain.Trip{TripCode: "MISSIN"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTripRepository_DeleteByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM trips WHERE trip_code = \$1`).
			WithArgs("JX4K9P").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewTripRepository(db)
		require.NoError(t, repo.DeleteByCode(ctx, "jx4k9p"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM trips WHERE trip_code = \$1`).
			WithArgs("ZZZZZZ").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewTripRepository(db)
		require.ErrorIs(t, repo.DeleteByCode(ctx, "ZZZZZZ"), domain.ErrNotFound)
	})
}
