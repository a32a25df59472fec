package mockdata

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"skyways/internal/models"
)

var domesticAirlines = []string{
	"Air India", "IndiGo", "SpiceJet", "Vistara", "GoAir", "AirAsia India",
}

var internationalAirlines = []string{
	"Air India", "Emirates", "Singapore Airlines", "British Airways", "Lufthansa",
	"Qatar Airways", "Thai Airways", "Malaysia Airlines", "Korean Air", "Cathay Pacific",
}

var aircraftTypes = []string{
	"Airbus A320", "Boeing 737", "Airbus A321", "Boeing 777",
	"Airbus A350", "Boeing 787", "Airbus A330",
}

var airlineCodes = map[string]string{
	"Air India":          "AI",
	"IndiGo":             "6E",
	"SpiceJet":           "SG",
	"Vistara":            "UK",
	"GoAir":              "G8",
	"AirAsia India":      "I5",
	"Emirates":           "EK",
	"Singapore Airlines": "SQ",
	"British Airways":    "BA",
	"Lufthansa":          "LH",
	"Qatar Airways":      "QR",
	"Thai Airways":       "TG",
	"Malaysia Airlines":  "MH",
	"Korean Air":         "KE",
	"Cathay Pacific":     "CX",
}

// GenerateFlightsForRoute produces 8-12 synthetic flights for the route on
// the given date. Unknown airport codes yield an empty list, which the API
// treats as "no flights found" rather than an error.
func GenerateFlightsForRoute(originCode, destinationCode string, searchDate time.Time) []models.Flight {
	origin := FindAirport(originCode)
	destination := FindAirport(destinationCode)
	if origin == nil || destination == nil {
		return nil
	}

	international := origin.Country != destination.Country

	airlines := domesticAirlines
	if international {
		airlines = internationalAirlines
	}

	basePrices, _ := ResolveBasePrices(originCode, destinationCode, international)

	flightCount := 8 + rand.Intn(5)
	flights := make([]models.Flight, 0, flightCount)

	day := time.Date(searchDate.Year(), searchDate.Month(), searchDate.Day(), 0, 0, 0, 0, searchDate.Location())

	for i := 0; i < flightCount; i++ {
		airline := airlines[i%len(airlines)]
		aircraft := aircraftTypes[i%len(aircraftTypes)]

		code := airlineCodes[airline]
		if code == "" {
			code = airline[:2]
		}
		flightNumber := fmt.Sprintf("%s%d", code, 100+rand.Intn(800))

		// Spread departures across the 5am-11pm window.
		hour := 5 + (i*2)%18
		minute := rand.Intn(60)
		departure := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)

		// 3-9h international, 1.5-4h domestic.
		var durationHours float64
		if international {
			durationHours = 3 + rand.Float64()*6
		} else {
			durationHours = 1.5 + rand.Float64()*2.5
		}
		wholeHours := int(durationHours)
		minutes := int(math.Round((durationHours - float64(wholeHours)) * 60))
		arrival := departure.Add(time.Duration(wholeHours)*time.Hour + time.Duration(minutes)*time.Minute)

		// 80-130% of the base table, applied uniformly per class so the
		// class ordering of the base table is preserved.
		multiplier := 0.8 + rand.Float64()*0.5

		flights = append(flights, models.Flight{
			ID:            fmt.Sprintf("%s-%s-%s-%d", originCode, destinationCode, day.Format("2006-01-02"), i+1),
			FlightNumber:  flightNumber,
			Airline:       airline,
			Origin:        *origin,
			Destination:   *destination,
			DepartureTime: departure,
			ArrivalTime:   arrival,
			Duration:      fmt.Sprintf("%dh %dm", wholeHours, minutes),
			Price: models.PriceByClass{
				Economy:  int64(math.Round(float64(basePrices.Economy) * multiplier)),
				Premium:  int64(math.Round(float64(basePrices.Premium) * multiplier)),
				Business: int64(math.Round(float64(basePrices.Business) * multiplier)),
				First:    int64(math.Round(float64(basePrices.First) * multiplier)),
			},
			Aircraft: aircraft,
			Stops:    sampleStops(international),
			AvailableSeats: models.SeatsByClass{
				Economy:  80 + rand.Intn(50),
				Premium:  15 + rand.Intn(15),
				Business: 10 + rand.Intn(10),
				First:    4 + rand.Intn(6),
			},
		})
	}

	return flights
}

// sampleStops draws from the weighted stop distribution: domestic routes
// skew heavily non-stop, international routes allow more multi-stop.
func sampleStops(international bool) int {
	r := rand.Float64()
	if international {
		switch {
		case r < 0.6:
			return 0
		case r < 0.9:
			return 1
		default:
			return 2
		}
	}
	if r < 0.8 {
		return 0
	}
	return 1
}
