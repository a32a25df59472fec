package mockdata

import (
	"fmt"
	"math/rand"
	"strings"

	"skyways/internal/models"
)

// CabServices is the ground-transport catalog.
var CabServices = []models.CabService{
	{
		ID:          "economy-sedan",
		Name:        "Economy Sedan",
		Type:        "economy",
		Capacity:    4,
		Description: "Comfortable and affordable ride for city travel",
		Features:    []string{"Air Conditioning", "Music System", "Phone Charging"},
		PricePerKm:  12,
		BasePrice:   100,
		Rating:      4.2,
	},
	{
		ID:          "premium-sedan",
		Name:        "Premium Sedan",
		Type:        "premium",
		Capacity:    4,
		Description: "Premium comfort with professional drivers",
		Features:    []string{"Air Conditioning", "Premium Music System", "Phone Charging", "Bottled Water", "Newspapers"},
		PricePerKm:  18,
		BasePrice:   150,
		Rating:      4.5,
	},
	{
		ID:          "luxury-sedan",
		Name:        "Luxury Sedan",
		Type:        "luxury",
		Capacity:    4,
		Description: "Luxury travel experience with top-end vehicles",
		Features:    []string{"Climate Control", "Premium Sound System", "Phone Charging", "Refreshments", "WiFi", "Leather Seats"},
		PricePerKm:  25,
		BasePrice:   250,
		Rating:      4.8,
	},
	{
		ID:          "suv",
		Name:        "SUV",
		Type:        "suv",
		Capacity:    7,
		Description: "Spacious SUV perfect for groups and families",
		Features:    []string{"Air Conditioning", "Music System", "Phone Charging", "Extra Luggage Space", "Captain Seats"},
		PricePerKm:  22,
		BasePrice:   200,
		Rating:      4.4,
	},
}

// FindCabService looks a cab service up by id. Returns nil when unknown.
func FindCabService(id string) *models.CabService {
	for i := range CabServices {
		if CabServices[i].ID == id {
			return &CabServices[i]
		}
	}
	return nil
}

// EstimateCabFare simulates a distance from the location kinds, then prices
// the ride as base fare plus per-km rate. Duration assumes 30 km/h average.
func EstimateCabFare(pickupLocation, dropLocation string, service models.CabService) (distanceKm int, duration string, total int64) {
	distanceKm = 15

	switch {
	case containsFold(pickupLocation, "Airport") || containsFold(dropLocation, "Airport"):
		distanceKm = 15 + rand.Intn(31)
	case containsFold(pickupLocation, "Hotel") || containsFold(dropLocation, "Hotel"):
		distanceKm = 5 + rand.Intn(21)
	}

	total = service.BasePrice + int64(distanceKm)*service.PricePerKm
	minutes := (distanceKm*60 + 29) / 30
	duration = fmt.Sprintf("%d mins", minutes)
	return distanceKm, duration, total
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
