package mockdata

import (
	"fmt"
	"math/rand"

	"skyways/internal/models"
)

const (
	seatRows = 35
)

var seatLetters = []string{"A", "B", "C", "D", "E", "F"}

// Seat fee per class on top of the ticket fare; a 0-499 random variation
// is added per seat.
var seatBaseFees = map[models.TravelClass]int64{
	models.ClassFirst:    2500,
	models.ClassBusiness: 1500,
	models.ClassPremium:  800,
	models.ClassEconomy:  0,
}

// GenerateSeats produces the fixed 35-row by 6-column seat map for a
// flight: rows 1-4 first, 5-12 business, 13-20 premium, 21-35 economy.
// Each seat is independently available with 75% probability; this is not
// correlated with the flight's aggregate per-class availability counts.
// The map is regenerated on every visit, so prior selections do not
// survive regeneration.
func GenerateSeats(flightID string) []models.Seat {
	seats := make([]models.Seat, 0, seatRows*len(seatLetters))

	for row := 1; row <= seatRows; row++ {
		class := classForRow(row)
		for _, letter := range seatLetters {
			seatNumber := fmt.Sprintf("%d%s", row, letter)
			seats = append(seats, models.Seat{
				ID:          fmt.Sprintf("%s-%s", flightID, seatNumber),
				SeatNumber:  seatNumber,
				Class:       class,
				IsAvailable: rand.Float64() > 0.25,
				Price:       seatBaseFees[class] + int64(rand.Intn(500)),
			})
		}
	}

	return seats
}

func classForRow(row int) models.TravelClass {
	switch {
	case row <= 4:
		return models.ClassFirst
	case row <= 12:
		return models.ClassBusiness
	case row <= 20:
		return models.ClassPremium
	default:
		return models.ClassEconomy
	}
}
