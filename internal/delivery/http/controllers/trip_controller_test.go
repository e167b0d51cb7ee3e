package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/delivery/http/middleware"
	"tripplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeTripService implements domain.TripService for handler tests.
type fakeTripService struct {
	createErr           error
	createResult        *domain.Trip
	loginErr            error
	loginResult         *domain.Trip
	getErr              error
	getResult           *domain.Trip
	deleteErr           error
	updateItineraryErr  error
	updateItineraryDays []domain.DayRecord
	countdownErr        error
	countdownResult     *domain.Countdown
	shareErr            error

	lastCreateDestination string
	lastCreatePartySize   int
	lastCreateText        string
	lastLoginCode         string
	lastGetCode           string
	lastDeleteCode        string
	lastUpdateCode        string
	lastUpdateText        string
	lastShareCode         string
	lastShareEmail        string
}

func (f *fakeTripService) CreateTrip(ctx context.Context, destination string, partySize int, startDate, endDate, itineraryText string) (*domain.Trip, string, error) {
	f.lastCreateDestination = destination
	f.lastCreatePartySize = partySize
	f.lastCreateText = itineraryText
	if f.createErr != nil {
		return nil, "", f.createErr
	}
	return f.createResult, "test-token", nil
}

func (f *fakeTripService) LoginWithCode(ctx context.Context, code string) (*domain.Trip, string, error) {
	f.lastLoginCode = code
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.loginResult, "test-token", nil
}

func (f *fakeTripService) GetByCode(ctx context.Context, code string) (*domain.Trip, error) {
	f.lastGetCode = code
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeTripService) DeleteByCode(ctx context.Context, code string) error {
	f.lastDeleteCode = code
	return f.deleteErr
}

func (f *fakeTripService) UpdateItinerary(ctx context.Context, code, text string) ([]domain.DayRecord, error) {
	f.lastUpdateCode = code
	f.lastUpdateText = text
	if f.updateItineraryErr != nil {
		return nil, f.updateItineraryErr
	}
	return f.updateItineraryDays, nil
}

func (f *fakeTripService) Countdown(ctx context.Context, code string, now time.Time) (*domain.Countdown, error) {
	if f.countdownErr != nil {
		return nil, f.countdownErr
	}
	return f.countdownResult, nil
}

func (f *fakeTripService) ShareTripCode(ctx context.Context, code, email string) error {
	f.lastShareCode = code
	f.lastShareEmail = email
	return f.shareErr
}

func sampleTrip() *domain.Trip {
	return &domain.Trip{
		ID:          "trip-1",
		TripCode:    "JX4K9P",
		Destination: "Walt Disney World",
		PartySize:   4,
		StartDate:   "2025-12-06",
		EndDate:     "2025-12-12",
		Checklist:   []domain.ChecklistItem{},
		Itinerary:   []domain.DayRecord{},
	}
}

func withTripCode(req *http.Request, code string) *http.Request {
	return req.WithContext(middleware.SetTripCode(req.Context(), code))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope), "response must be valid JSON envelope")
	return envelope
}

func TestTripController_CreateTrip(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"destination":"Walt Disney World","party_size":4,"start_date":"2025-12-06","end_date":"2025-12-12"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "success with itinerary text",
			body:       `{"destination":"Walt Disney World","party_size":2,"start_date":"2025-12-06","end_date":"2025-12-12","itinerary_text":"Saturday | December 6"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:           "bad request invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
		{
			name:           "missing destination",
			body:           `{"party_size":4,"start_date":"2025-12-06","end_date":"2025-12-12"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "destination is required",
		},
		{
			name:           "zero party size",
			body:           `{"destination":"Disneyland","party_size":0,"start_date":"2025-12-06","end_date":"2025-12-12"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "party_size",
		},
		{
			name:           "malformed date",
			body:           `{"destination":"Disneyland","party_size":2,"start_date":"12/06/2025","end_date":"2025-12-12"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "start_date",
		},
		{
			name:           "unknown field rejected",
			body:           `{"destination":"Disneyland","party_size":2,"start_date":"2025-12-06","end_date":"2025-12-12","trip_code":"HACKED"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "unknown field",
		},
		{
			name:           "dates inverted",
			body:           `{"destination":"Disneyland","party_size":2,"start_date":"2025-12-12","end_date":"2025-12-06"}`,
			fakeErr:        domain.ErrInvalidInput,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid input",
		},
		{
			name:           "service error",
			body:           `{"destination":"Disneyland","party_size":2,"start_date":"2025-12-06","end_date":"2025-12-12"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTripService{createErr: tt.fakeErr, createResult: sampleTrip()}
			ctrl := NewTripController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/trips", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateTrip(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var resp CreateTripResponse
				require.NoError(t, json.Unmarshal(dataBytes, &resp))
				assert.Equal(t, "test-token", resp.Token)
				assert.Equal(t, "Bearer", resp.TokenType)
				assert.Equal(t, "JX4K9P", resp.Trip.TripCode)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"trip_code":"JX4K9P"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing code",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "trip_code is required",
		},
		{
			name:           "wrong length",
			body:           `{"trip_code":"ABC"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "6 characters",
		},
		{
			name:           "unknown code",
			body:           `{"trip_code":"ZZZZZZ"}`,
			fakeErr:        domain.ErrNotFound,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "invalid trip code",
		},
		{
			name:           "service error",
			body:           `{"trip_code":"JX4K9P"}`,
			fakeErr:        errors.New("db error"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTripService{loginErr: tt.fakeErr, loginResult: sampleTrip()}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(dataBytes, &resp))
				assert.Equal(t, "test-token", resp.Token)
				assert.Equal(t, "JX4K9P", resp.Trip.TripCode)
			} else if tt.wantBodySubstr != "" {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestTripController_GetMyTrip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeTripService{getResult: sampleTrip()}
		ctrl := NewTripController(testLogger, fake)
		req := withTripCode(httptest.NewRequest(http.MethodGet, "/trips/me", nil), "JX4K9P")
		rr := httptest.NewRecorder()

		ctrl.GetMyTrip(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "JX4K9P", fake.lastGetCode)
	})

	t.Run("no trip code in context", func(t *testing.T) {
		ctrl := NewTripController(testLogger, &fakeTripService{})
		req := httptest.NewRequest(http.MethodGet, "/trips/me", nil)
		rr := httptest.NewRecorder()

		ctrl.GetMyTrip(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("trip deleted since login", func(t *testing.T) {
		fake := &fakeTripService{getErr: domain.ErrNotFound}
		ctrl := NewTripController(testLogger, fake)
		req := withTripCode(httptest.NewRequest(http.MethodGet, "/trips/me", nil), "JX4K9P")
		rr := httptest.NewRecorder()

		ctrl.GetMyTrip(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})
}

func TestTripController_DeleteMyTrip(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeTripService{}
		ctrl := NewTripController(testLogger, fake)
		req := withTripCode(httptest.NewRequest(http.MethodDelete, "/trips/me", nil), "JX4K9P")
		rr := httptest.NewRecorder()

		ctrl.DeleteMyTrip(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "JX4K9P", fake.lastDeleteCode)
	})

	t.Run("not found", func(t *testing.T) {
		fake := &fakeTripService{deleteErr: domain.ErrNotFound}
		ctrl := NewTripController(testLogger, fake)
		req := withTripCode(httptest.NewRequest(http.MethodDelete, "/trips/me", nil), "JX4K9P")
		rr := httptest.NewRecorder()

		ctrl.DeleteMyTrip(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTripController_Countdown(t *testing.T) {
	fake := &fakeTripService{countdownResult: &domain.Countdown{Days: 12, Hours: 5, Minutes: 30}}
	ctrl := NewTripController(testLogger, fake)
	req := withTripCode(httptest.NewRequest(http.MethodGet, "/trips/me/countdown", nil), "JX4K9P")
	rr := httptest.NewRecorder()

	ctrl.Countdown(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var cd domain.Countdown
	require.NoError(t, json.Unmarshal(dataBytes, &cd))
	assert.Equal(t, 12, cd.Days)
	assert.False(t, cd.Started)
}

func TestTripController_Share(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fakeErr        error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:       "success",
			body:       `{"email":"friend@example.com"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:           "missing email",
			body:           `{}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "email is required",
		},
		{
			name:           "bad email",
			body:           `{"email":"not-an-email"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid email format",
		},
		{
			name:           "mailer down",
			body:           `{"email":"friend@example.com"}`,
			fakeErr:        errors.New("ses unavailable"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "ses unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeTripService{shareErr: tt.fakeErr}
			ctrl := NewTripController(testLogger, fake)
			req := withTripCode(httptest.NewRequest(http.MethodPost, "/trips/me/share", bytes.NewBufferString(tt.body)), "JX4K9P")
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Share(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "JX4K9P", fake.lastShareCode)
				assert.Equal(t, "friend@example.com", fake.lastShareEmail)
			} else if tt.wantBodySubstr != "" {
				envelope := decodeEnvelope(t, rr)
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr)
			}
		})
	}
}

func TestItineraryController_UpdateItinerary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		days := []domain.DayRecord{
			{Label: "Saturday, Dec 6", DateKey: "2025-12-06", Title: "Arrival Day", Icon: "✈️", Highlights: []domain.Highlight{}},
		}
		fake := &fakeTripService{updateItineraryDays: days}
		ctrl := NewItineraryController(testLogger, fake)
		body := `{"text":"Saturday | December 6\nArrival Day"}`
		req := withTripCode(httptest.NewRequest(http.MethodPut, "/trips/me/itinerary", bytes.NewBufferString(body)), "JX4K9P")
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		ctrl.UpdateItinerary(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "JX4K9P", fake.lastUpdateCode)
		assert.Contains(t, fake.lastUpdateText, "December 6")
		envelope := decodeEnvelope(t, rr)
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var got []domain.DayRecord
		require.NoError(t, json.Unmarshal(dataBytes, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Arrival Day", got[0].Title)
	})

	t.Run("no auth", func(t *testing.T) {
		ctrl := NewItineraryController(testLogger, &fakeTripService{})
		req := httptest.NewRequest(http.MethodPut, "/trips/me/itinerary", bytes.NewBufferString(`{"text":""}`))
		rr := httptest.NewRecorder()

		ctrl.UpdateItinerary(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestItineraryController_GetItinerary(t *testing.T) {
	trip := sampleTrip()
	trip.Itinerary = []domain.DayRecord{
		{Label: "Saturday, Dec 6", DateKey: "2025-12-06", Title: "Free Day", Icon: "📅", Highlights: []domain.Highlight{}},
	}
	fake := &fakeTripService{getResult: trip}
	ctrl := NewItineraryController(testLogger, fake)
	req := withTripCode(httptest.NewRequest(http.MethodGet, "/trips/me/itinerary", nil), "JX4K9P")
	rr := httptest.NewRecorder()

	ctrl.GetItinerary(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	dataBytes, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var got []domain.DayRecord
	require.NoError(t, json.Unmarshal(dataBytes, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2025-12-06", got[0].DateKey)
}
