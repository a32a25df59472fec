package mockdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyways/internal/models"
)

func TestGenerateFlightsForRoute(t *testing.T) {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	flights := GenerateFlightsForRoute("DEL", "BOM", date)

	require.GreaterOrEqual(t, len(flights), 8)
	require.LessOrEqual(t, len(flights), 12)

	for _, f := range flights {
		assert.Equal(t, "DEL", f.Origin.Code)
		assert.Equal(t, "BOM", f.Destination.Code)
		assert.True(t, f.ArrivalTime.After(f.DepartureTime), "flight %s arrives before departing", f.FlightNumber)
		assert.Equal(t, date.Day(), f.DepartureTime.Day())

		hour := f.DepartureTime.Hour()
		assert.GreaterOrEqual(t, hour, 5)
		assert.LessOrEqual(t, hour, 22)

		assert.NotEmpty(t, f.ID)
		assert.NotEmpty(t, f.FlightNumber)
		assert.NotEmpty(t, f.Airline)
		assert.NotEmpty(t, f.Aircraft)
	}
}

func TestGenerateFlightsUnknownAirport(t *testing.T) {
	flights := GenerateFlightsForRoute("XXX", "BOM", time.Now())
	assert.Empty(t, flights)

	flights = GenerateFlightsForRoute("DEL", "ZZZ", time.Now())
	assert.Empty(t, flights)
}

func TestGenerateFlightsPriceOrdering(t *testing.T) {
	flights := GenerateFlightsForRoute("DEL", "DXB", time.Now())
	require.NotEmpty(t, flights)

	for _, f := range flights {
		assert.Less(t, f.Price.Economy, f.Price.Premium)
		assert.Less(t, f.Price.Premium, f.Price.Business)
		assert.Less(t, f.Price.Business, f.Price.First)
	}
}

func TestGenerateFlightsDomesticStops(t *testing.T) {
	flights := GenerateFlightsForRoute("DEL", "BOM", time.Now())
	require.NotEmpty(t, flights)

	for _, f := range flights {
		assert.LessOrEqual(t, f.Stops, 1, "domestic flights never have two stops")
	}
}

func TestFindAirport(t *testing.T) {
	airport := FindAirport("DEL")
	require.NotNil(t, airport)
	assert.Equal(t, "Delhi", airport.City)
	assert.Equal(t, "India", airport.Country)

	assert.Nil(t, FindAirport("XXX"))
}

func TestResolveBasePrices(t *testing.T) {
	prices, match := ResolveBasePrices("DEL", "BOM", false)
	assert.Equal(t, MatchExactRoute, match)
	assert.Equal(t, int64(4500), prices.Economy)

	// Reverse direction adds the flat markup per class.
	prices, match = ResolveBasePrices("DXB", "DEL", true)
	assert.Equal(t, MatchReverseRoute, match)
	assert.Equal(t, int64(19000), prices.Economy)
	assert.Equal(t, int64(98000), prices.First)

	// No table entry either way, but one endpoint is a region hub.
	_, match = ResolveBasePrices("MAA", "SIN", true)
	assert.Equal(t, MatchRegionDefault, match)

	// Nothing matches at all.
	prices, match = ResolveBasePrices("MAA", "CCU", false)
	assert.Equal(t, MatchGeneric, match)
	assert.Equal(t, int64(4000), prices.Economy)
}

func TestPriceByClassFor(t *testing.T) {
	prices := models.PriceByClass{Economy: 100, Premium: 200, Business: 300, First: 400}

	assert.Equal(t, int64(100), prices.For(models.ClassEconomy))
	assert.Equal(t, int64(200), prices.For(models.ClassPremium))
	assert.Equal(t, int64(300), prices.For(models.ClassBusiness))
	assert.Equal(t, int64(400), prices.For(models.ClassFirst))
	assert.Equal(t, int64(100), prices.For(models.TravelClass("unknown")))
}
