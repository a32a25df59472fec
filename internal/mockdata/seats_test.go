package mockdata

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyways/internal/models"
)

func TestGenerateSeats(t *testing.T) {
	seats := GenerateSeats("DEL-BOM-2026-09-15-1")

	require.Len(t, seats, 35*6)

	counts := map[models.TravelClass]int{}
	for _, seat := range seats {
		counts[seat.Class]++
		assert.Equal(t, "DEL-BOM-2026-09-15-1-"+seat.SeatNumber, seat.ID)
		assert.GreaterOrEqual(t, seat.Price, int64(0))
	}

	assert.Equal(t, 4*6, counts[models.ClassFirst])
	assert.Equal(t, 8*6, counts[models.ClassBusiness])
	assert.Equal(t, 8*6, counts[models.ClassPremium])
	assert.Equal(t, 15*6, counts[models.ClassEconomy])
}

func TestGenerateSeatsClassByRow(t *testing.T) {
	seats := GenerateSeats("f1")

	for _, seat := range seats {
		row, err := strconv.Atoi(seat.SeatNumber[:len(seat.SeatNumber)-1])
		require.NoError(t, err)

		switch {
		case row <= 4:
			assert.Equal(t, models.ClassFirst, seat.Class)
		case row <= 12:
			assert.Equal(t, models.ClassBusiness, seat.Class)
		case row <= 20:
			assert.Equal(t, models.ClassPremium, seat.Class)
		default:
			assert.Equal(t, models.ClassEconomy, seat.Class)
		}
	}
}

func TestGenerateSeatsFees(t *testing.T) {
	seats := GenerateSeats("f1")

	for _, seat := range seats {
		base := seatBaseFees[seat.Class]
		assert.GreaterOrEqual(t, seat.Price, base)
		assert.Less(t, seat.Price, base+500)
	}
}
