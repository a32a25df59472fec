package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyways/internal/api"
	"skyways/internal/config"
	"skyways/internal/models"
	"skyways/internal/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Port:           "8080",
		GinMode:        gin.TestMode,
		StorePath:      filepath.Join(t.TempDir(), "store.json"),
		SessionBackend: "memory",
	}

	server, err := api.NewServer(cfg)
	require.NoError(t, err)
	return server.GetRouter()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signInDemo(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/auth/signin", "", models.SignInRequest{
		Email:    service.DemoEmail,
		Password: service.DemoPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionToken)
	return resp.SessionToken
}

func TestHealth(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMissingSessionToken(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "GET", "/api/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignInWrongPassword(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/auth/signin", "", models.SignInRequest{
		Email:    service.DemoEmail,
		Password: "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	router := setupRouter(t)

	req := models.SignUpRequest{
		Email:           service.DemoEmail,
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FirstName:       "Demo",
		LastName:        "Again",
		Phone:           "+91 90000 00000",
	}
	w := doJSON(t, router, "POST", "/api/auth/signup", "", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewTransitionGuard(t *testing.T) {
	router := setupRouter(t)
	token := signInDemo(t, router)

	// Results are unreachable before any search.
	w := doJSON(t, router, "POST", "/api/session/view", token, models.SetViewRequest{View: "results"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The search screen is always reachable.
	w = doJSON(t, router, "POST", "/api/session/view", token, models.SetViewRequest{View: "search"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFullBookingFlow(t *testing.T) {
	router := setupRouter(t)
	token := signInDemo(t, router)

	// Search.
	w := doJSON(t, router, "POST", "/api/flights/search", token, models.SearchRequest{
		Origin:        "DEL",
		Destination:   "BOM",
		DepartureDate: "2026-09-15",
		Passengers:    2,
		Infants:       1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var search models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &search))
	require.NotEmpty(t, search.Flights)
	assert.Equal(t, len(search.Flights), search.Count)
	for _, f := range search.Flights {
		assert.Equal(t, "DEL", f.Origin.Code)
		assert.Equal(t, "BOM", f.Destination.Code)
	}

	// Select a flight.
	flightID := search.Flights[0].ID
	w = doJSON(t, router, "POST", "/api/flights/select", token, models.SelectFlightRequest{FlightID: flightID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Seat map.
	w = doJSON(t, router, "GET", "/api/flights/"+flightID+"/seats", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var seatMap struct {
		Seats []models.Seat `json:"seats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seatMap))
	require.Len(t, seatMap.Seats, 210)

	var seatIDs []string
	for _, seat := range seatMap.Seats {
		if seat.IsAvailable {
			seatIDs = append(seatIDs, seat.ID)
		}
		if len(seatIDs) == 2 {
			break
		}
	}
	require.Len(t, seatIDs, 2)

	w = doJSON(t, router, "POST", "/api/seats/select", token, models.SelectSeatsRequest{SeatIDs: seatIDs})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Booking form.
	w = doJSON(t, router, "POST", "/api/bookings", token, models.CreateBookingRequest{
		Passengers: []models.PassengerInput{
			{Title: "Mr", FirstName: "Asha", LastName: "Rao", DateOfBirth: "1990-01-01", Email: "a@example.com", Phone: "1"},
			{Title: "Ms", FirstName: "Binu", LastName: "Rao", DateOfBirth: "1992-02-02", Email: "b@example.com", Phone: "2"},
		},
		Infants: []models.InfantInput{
			{FirstName: "Chiku", LastName: "Rao", DateOfBirth: "2025-05-05"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var pending models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Equal(t, models.StatusPending, pending.Status)
	assert.Regexp(t, `^SW[0-9A-Z]{6}$`, pending.BookingReference)

	// Payment.
	w = doJSON(t, router, "POST", "/api/payments", token, models.PaymentRequest{
		Method:     "card",
		CardNumber: "4111111111111111",
		CardHolder: "Asha Rao",
		Expiry:     "12/28",
		CVV:        "123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var confirmed models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)
	assert.Len(t, confirmed.Passengers, 2)
	assert.Len(t, confirmed.Infants, 1)
	assert.Len(t, confirmed.Seats, 2)

	// History now holds the confirmed booking.
	w = doJSON(t, router, "GET", "/api/bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Bookings []models.Booking `json:"bookings"`
		Count    int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Equal(t, 1, history.Count)
	assert.Equal(t, confirmed.BookingReference, history.Bookings[0].BookingReference)

	// E-ticket download.
	w = doJSON(t, router, "GET", "/api/bookings/"+confirmed.BookingReference+"/ticket", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")), "ticket should be a PDF document")

	// Ancillary: hotels in the destination city.
	w = doJSON(t, router, "GET", "/api/hotels?city=BOM", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var hotels struct {
		Hotels []models.Hotel `json:"hotels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hotels))
	require.NotEmpty(t, hotels.Hotels)

	w = doJSON(t, router, "POST", "/api/hotels/bookings", token, models.HotelBookingRequest{
		HotelID:      hotels.Hotels[0].ID,
		RoomID:       "standard",
		CheckInDate:  "2026-09-15",
		CheckOutDate: "2026-09-17",
		Guests:       2,
		GuestName:    "Demo User",
		GuestEmail:   service.DemoEmail,
		GuestPhone:   "+91 98765 43210",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Ancillary: cab.
	w = doJSON(t, router, "POST", "/api/cabs/bookings", token, models.CabBookingRequest{
		ServiceID:      "economy-sedan",
		PickupLocation: "Mumbai Airport",
		DropLocation:   hotels.Hotels[0].Name,
		PickupDateTime: "2026-09-15T10:00",
		PassengerName:  "Demo User",
		PassengerPhone: "+91 98765 43210",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Travel package folds in the real ancillary totals.
	w = doJSON(t, router, "GET", "/api/packages/current", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pkg models.TravelPackage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pkg))
	require.NotNil(t, pkg.Hotel)
	require.Len(t, pkg.Cabs, 1)
	assert.Equal(t,
		confirmed.TotalAmount+pkg.Hotel.TotalAmount+pkg.Cabs[0].TotalAmount-pkg.Savings,
		pkg.TotalAmount)

	w = doJSON(t, router, "POST", "/api/packages/complete", token, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestBookingWithoutSeatsRejected(t *testing.T) {
	router := setupRouter(t)
	token := signInDemo(t, router)

	w := doJSON(t, router, "POST", "/api/bookings", token, models.CreateBookingRequest{
		Passengers: []models.PassengerInput{
			{Title: "Mr", FirstName: "Asha", LastName: "Rao", DateOfBirth: "1990-01-01", Email: "a@example.com", Phone: "1"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketUnknownReference(t *testing.T) {
	router := setupRouter(t)
	token := signInDemo(t, router)

	w := doJSON(t, router, "GET", "/api/bookings/SWZZZZZZ/ticket", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
