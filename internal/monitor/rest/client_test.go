package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/monitor"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testVenue = entity.Venue{
	ID:       "bar-1",
	Name:     "The Corner Tap",
	Location: entity.Coordinate{Latitude: 40.0, Longitude: -73.0},
}

func respond(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"success": status < 300,
		"code":    status,
		"message": http.StatusText(status),
		"data":    data,
	}))
}

func TestCreateCheckIn(t *testing.T) {
	userID := uuid.New()
	checkInID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/checkins", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, userID.String(), body["user_id"])
		require.Equal(t, "bar-1", body["venue_id"])

		respond(t, w, http.StatusCreated, entity.CheckIn{
			ID:        checkInID,
			UserID:    userID,
			VenueID:   testVenue.ID,
			VenueName: testVenue.Name,
			Location:  testVenue.Location,
			IsActive:  true,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithToken("test-token"))
	checkIn, err := client.CreateCheckIn(context.Background(), userID, testVenue)
	require.NoError(t, err)
	assert.Equal(t, checkInID, checkIn.ID)
	assert.True(t, checkIn.IsActive)
}

func TestCreateCheckInConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond(t, w, http.StatusConflict, nil)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.CreateCheckIn(context.Background(), uuid.New(), testVenue)
	assert.ErrorIs(t, err, monitor.ErrConflict)
}

func TestEndCheckInNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		respond(t, w, http.StatusNotFound, nil)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.EndCheckIn(context.Background(), uuid.New())
	assert.ErrorIs(t, err, monitor.ErrNotFound)
}

func TestGetCurrentCheckIn(t *testing.T) {
	userID := uuid.New()
	checkInID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/checkins/user/"+userID.String(), r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("active"))
		respond(t, w, http.StatusOK, []entity.CheckIn{{ID: checkInID, UserID: userID, IsActive: true}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	checkIn, err := client.GetCurrentCheckIn(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, checkIn)
	assert.Equal(t, checkInID, checkIn.ID)
}

func TestGetCurrentCheckInNone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond(t, w, http.StatusOK, []entity.CheckIn{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	checkIn, err := client.GetCurrentCheckIn(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, checkIn)
}

func TestGetActiveCheckInsRouting(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		respond(t, w, http.StatusOK, []entity.CheckIn{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.GetActiveCheckIns(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "/api/checkins/active", gotPath)

	_, err = client.GetActiveCheckIns(context.Background(), "bar-1")
	require.NoError(t, err)
	assert.Equal(t, "/api/checkins/bar/bar-1", gotPath)
}

func TestSubmitWaitTimeTooFar(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bartime", r.URL.Path)
		respond(t, w, http.StatusForbidden, nil)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.SubmitWaitTime(context.Background(), testVenue, 25, testVenue.Location)
	assert.ErrorIs(t, err, monitor.ErrTooFar)
}

func TestServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		respond(t, w, http.StatusInternalServerError, nil)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetActiveCheckIns(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
