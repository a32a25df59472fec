package mockdata

import (
	"fmt"
	"math/rand"

	"skyways/internal/models"
)

type hotelSeed struct {
	name                string
	rating              float64
	description         string
	distanceFromAirport int
	distanceFromCity    int
}

var cityHotels = map[string][]hotelSeed{
	"BOM": {
		{"The Taj Mahal Palace", 5, "Iconic luxury hotel overlooking the Gateway of India", 25, 2},
		{"The Oberoi Mumbai", 5, "Contemporary luxury with stunning views of the Arabian Sea", 22, 3},
		{"ITC Grand Central", 4.5, "Modern business hotel in the heart of Mumbai", 18, 5},
		{"Hotel Sahara Star", 4, "Airport hotel with unique architecture and modern amenities", 3, 20},
	},
	"DEL": {
		{"The Imperial New Delhi", 5, "Historic luxury hotel in the heart of New Delhi", 15, 2},
		{"The Leela Palace New Delhi", 5, "Opulent palace-style hotel with world-class amenities", 12, 8},
		{"Radisson Blu Plaza Delhi Airport", 4.5, "Premium airport hotel with excellent connectivity", 2, 18},
		{"Hotel Diplomat", 4, "Comfortable business hotel in Karol Bagh", 20, 5},
	},
	"BLR": {
		{"The Ritz-Carlton Bangalore", 5, "Luxury hotel in the heart of Bangalore's business district", 35, 2},
		{"Taj West End", 5, "Heritage hotel with lush gardens and colonial charm", 40, 3},
		{"Hilton Bangalore Embassy GolfLinks", 4.5, "Modern hotel with golf course views", 30, 8},
		{"Fairfield by Marriott Bangalore Airport", 4, "Contemporary airport hotel with modern facilities", 5, 45},
	},
	"DXB": {
		{"Burj Al Arab Jumeirah", 5, "World's most luxurious hotel with iconic sail-shaped architecture", 20, 5},
		{"Atlantis The Palm", 5, "Spectacular resort on the iconic Palm Jumeirah", 25, 15},
		{"Emirates Palace Abu Dhabi", 5, "Opulent palace hotel with private beach", 45, 10},
		{"Le Meridien Dubai Airport", 4.5, "Convenient airport hotel with direct terminal access", 1, 25},
	},
	"SIN": {
		{"Marina Bay Sands", 5, "Iconic hotel with infinity pool and stunning city views", 20, 2},
		{"Raffles Singapore", 5, "Historic luxury hotel with colonial elegance", 18, 3},
		{"The Ritz-Carlton Millenia Singapore", 5, "Luxury hotel with panoramic harbor views", 22, 4},
		{"Crowne Plaza Changi Airport", 4.5, "Premium airport hotel connected to Terminal 3", 0, 25},
	},
}

var fallbackHotels = []hotelSeed{
	{"Grand Plaza Hotel", 4, "Comfortable hotel with modern amenities", 15, 5},
	{"Airport Inn", 3.5, "Convenient airport hotel for travelers", 3, 20},
}

var hotelAmenities = []string{
	"Free WiFi", "Swimming Pool", "Fitness Center", "Restaurant",
	"Room Service", "Concierge", "Business Center", "Spa",
}

var cityNames = map[string]string{
	"DEL": "Delhi", "BOM": "Mumbai", "BLR": "Bangalore", "MAA": "Chennai",
	"CCU": "Kolkata", "HYD": "Hyderabad", "GOI": "Goa", "COK": "Kochi",
	"DXB": "Dubai", "SIN": "Singapore", "LHR": "London", "JFK": "New York",
	"CDG": "Paris", "FRA": "Frankfurt",
}

// CityName resolves a city display name for a code, with a generic fallback.
func CityName(code string) string {
	if name, ok := cityNames[code]; ok {
		return name
	}
	return "City"
}

// HotelsForCity builds the hotel catalog for a destination city code.
// Cities without a dedicated catalog get a small generic one.
func HotelsForCity(cityCode string) []models.Hotel {
	seeds, ok := cityHotels[cityCode]
	if !ok {
		seeds = fallbackHotels
	}

	city := CityName(cityCode)
	hotels := make([]models.Hotel, 0, len(seeds))
	for i, seed := range seeds {
		hotels = append(hotels, models.Hotel{
			ID:                  fmt.Sprintf("hotel-%s-%d", cityCode, i+1),
			Name:                seed.name,
			Address:             fmt.Sprintf("%s Street, %s", seed.name, city),
			City:                city,
			Rating:              seed.rating,
			Amenities:           hotelAmenities,
			Description:         seed.description,
			DistanceFromAirport: seed.distanceFromAirport,
			DistanceFromCity:    seed.distanceFromCity,
			Rooms:               roomsForHotel(seed.rating),
			ReviewCount:         100 + rand.Intn(1000),
			ReviewRating:        seed.rating - 0.2 + rand.Float64()*0.4,
		})
	}
	return hotels
}

// roomsForHotel derives the four room tiers from the hotel's rating.
func roomsForHotel(rating float64) []models.HotelRoom {
	basePrice := rating * 2000

	return []models.HotelRoom{
		{
			ID:            "standard",
			Type:          "standard",
			Name:          "Standard Room",
			Description:   "Comfortable room with essential amenities",
			MaxOccupancy:  2,
			Amenities:     []string{"Free WiFi", "Air Conditioning", "TV", "Mini Fridge"},
			PricePerNight: int64(basePrice * 0.8),
			Available:     true,
			Size:          "25 sqm",
		},
		{
			ID:            "deluxe",
			Type:          "deluxe",
			Name:          "Deluxe Room",
			Description:   "Spacious room with city views and premium amenities",
			MaxOccupancy:  3,
			Amenities:     []string{"Free WiFi", "Air Conditioning", "TV", "Mini Bar", "City View", "Work Desk"},
			PricePerNight: int64(basePrice * 1.2),
			Available:     true,
			Size:          "35 sqm",
		},
		{
			ID:            "suite",
			Type:          "suite",
			Name:          "Executive Suite",
			Description:   "Luxurious suite with separate living area",
			MaxOccupancy:  4,
			Amenities:     []string{"Free WiFi", "Air Conditioning", "TV", "Mini Bar", "Living Area", "Kitchenette", "Balcony"},
			PricePerNight: int64(basePrice * 1.8),
			Available:     rand.Float64() > 0.3,
			Size:          "55 sqm",
		},
		{
			ID:            "luxury",
			Type:          "luxury",
			Name:          "Presidential Suite",
			Description:   "Ultimate luxury with panoramic views and premium services",
			MaxOccupancy:  6,
			Amenities:     []string{"Free WiFi", "Air Conditioning", "TV", "Full Bar", "Living Area", "Kitchen", "Balcony", "Butler Service"},
			PricePerNight: int64(basePrice * 3),
			Available:     rand.Float64() > 0.6,
			Size:          "85 sqm",
		},
	}
}
