package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyways/internal/config"
)

func newTestClient(upstream *httptest.Server) *FlightDataClient {
	return NewFlightDataClient(config.FlightDataConfig{
		BaseURL: upstream.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestDelhiMumbaiFlights(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/flights", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("access_key"))
		assert.Equal(t, "DEL", r.URL.Query().Get("dep_iata"))
		assert.Equal(t, "BOM", r.URL.Query().Get("arr_iata"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{
					"flight_status": "active",
					"departure": {"scheduled": "2026-09-15T06:00:00+00:00"},
					"arrival": {"scheduled": "2026-09-15T08:10:00+00:00"},
					"airline": {"name": "IndiGo"},
					"flight": {"iata": "6E2001"}
				}
			]
		}`))
	}))
	defer upstream.Close()

	statuses, err := newTestClient(upstream).DelhiMumbaiFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	assert.Equal(t, "IndiGo", statuses[0].Airline)
	assert.Equal(t, "6E2001", statuses[0].FlightNumber)
	assert.Equal(t, "active", statuses[0].Status)
	assert.Equal(t, "2026-09-15T06:00:00+00:00", statuses[0].DepartureTime)
}

func TestDelhiMumbaiFlightsEmpty(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer upstream.Close()

	_, err := newTestClient(upstream).DelhiMumbaiFlights(context.Background())
	assert.ErrorIs(t, err, ErrNoFlights)
}

func TestDelhiMumbaiFlightsUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	_, err := newTestClient(upstream).DelhiMumbaiFlights(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoFlights)
}
