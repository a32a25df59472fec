package ticket

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyways/internal/models"
)

func sampleBooking() *models.Booking {
	return &models.Booking{
		ID:               "booking-1",
		BookingReference: "SWAB12CD",
		Flight: models.Flight{
			ID:            "DEL-BOM-2026-09-15-1",
			FlightNumber:  "AI245",
			Airline:       "Air India",
			Origin:        models.Airport{Code: "DEL", City: "Delhi"},
			Destination:   models.Airport{Code: "BOM", City: "Mumbai"},
			DepartureTime: time.Date(2026, 9, 15, 7, 30, 0, 0, time.UTC),
			ArrivalTime:   time.Date(2026, 9, 15, 9, 45, 0, 0, time.UTC),
			Duration:      "2h 15m",
			Aircraft:      "Airbus A320",
		},
		Passengers: []models.Passenger{
			{ID: "p1", Title: "Mr", FirstName: "Asha", LastName: "Rao"},
			{ID: "p2", Title: "Ms", FirstName: "Binu", LastName: "Rao"},
		},
		Infants: []models.Infant{
			{ID: "i1", FirstName: "Chiku", LastName: "Rao", ParentID: "p1"},
		},
		Seats: []models.Seat{
			{ID: "s1", SeatNumber: "21A", Class: models.ClassEconomy, Price: 120},
			{ID: "s2", SeatNumber: "21B", Class: models.ClassEconomy, Price: 340},
		},
		TotalAmount: 10360,
		Status:      models.StatusConfirmed,
		CreatedAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerate(t *testing.T) {
	data, err := Generate(sampleBooking())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderPlainFallback(t *testing.T) {
	data, err := renderPlain(sampleBooking())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
