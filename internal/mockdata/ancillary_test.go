package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelsForCity(t *testing.T) {
	hotels := HotelsForCity("BOM")
	require.Len(t, hotels, 4)

	for _, hotel := range hotels {
		assert.Equal(t, "Mumbai", hotel.City)
		require.Len(t, hotel.Rooms, 4)

		// Room tiers scale off the hotel rating.
		base := hotel.Rating * 2000
		assert.Equal(t, int64(base*0.8), hotel.Rooms[0].PricePerNight)
		assert.Equal(t, int64(base*3), hotel.Rooms[3].PricePerNight)
	}
}

func TestHotelsForCityFallback(t *testing.T) {
	hotels := HotelsForCity("MAA")
	require.Len(t, hotels, 2)
	assert.Equal(t, "hotel-MAA-1", hotels[0].ID)
	assert.Equal(t, "Chennai", hotels[0].City)
}

func TestCityName(t *testing.T) {
	assert.Equal(t, "Mumbai", CityName("BOM"))
	assert.Equal(t, "City", CityName("XYZ"))
}

func TestFindCabService(t *testing.T) {
	require.Len(t, CabServices, 4)

	svc := FindCabService("economy-sedan")
	require.NotNil(t, svc)
	assert.Equal(t, "Economy Sedan", svc.Name)

	assert.Nil(t, FindCabService("rickshaw"))
}

func TestEstimateCabFare(t *testing.T) {
	svc := FindCabService("premium-sedan")
	require.NotNil(t, svc)

	// Airport trips draw from the 15-45 km range.
	for i := 0; i < 50; i++ {
		distance, duration, total := EstimateCabFare("Mumbai Airport", "The Taj Mahal Palace", *svc)
		assert.GreaterOrEqual(t, distance, 15)
		assert.LessOrEqual(t, distance, 45)
		assert.Equal(t, svc.BasePrice+int64(distance)*svc.PricePerKm, total)
		assert.Contains(t, duration, "mins")
	}

	// Hotel trips draw from the 5-25 km range.
	for i := 0; i < 50; i++ {
		distance, _, _ := EstimateCabFare("Hotel Sahara Star", "Gateway of India", *svc)
		assert.GreaterOrEqual(t, distance, 5)
		assert.LessOrEqual(t, distance, 25)
	}

	// Neither keyword fixes the distance at the default.
	distance, _, _ := EstimateCabFare("Bandra", "Colaba", *svc)
	assert.Equal(t, 15, distance)
}
