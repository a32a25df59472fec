package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"skyways/internal/mockdata"
	"skyways/internal/models"
	"skyways/internal/store"
)

// HotelService serves the destination hotel catalog and books rooms.
type HotelService struct {
	store *store.Store
}

func NewHotelService(st *store.Store) *HotelService {
	return &HotelService{store: st}
}

// ListByCity returns the hotel catalog for a city code.
func (s *HotelService) ListByCity(cityCode string) []models.Hotel {
	return mockdata.HotelsForCity(cityCode)
}

// Book reserves a room for the stay and advances the ancillary flow to
// cab booking. The hotel booking is confirmed immediately; there is no
// separate payment step for ancillary services.
func (s *HotelService) Book(ctx context.Context, sessionID string, req *models.HotelBookingRequest) (*models.HotelBooking, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, ErrUnauthenticated
	}

	hotel, room, err := findRoom(req.HotelID, req.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Available {
		return nil, fmt.Errorf("%w: %s is not available", ErrValidation, room.Name)
	}
	if req.Guests > room.MaxOccupancy {
		return nil, fmt.Errorf("%w: %s sleeps at most %d guests", ErrValidation, room.Name, room.MaxOccupancy)
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check-in date must be YYYY-MM-DD", ErrValidation)
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check-out date must be YYYY-MM-DD", ErrValidation)
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}

	booking := models.HotelBooking{
		ID:           "hotel-booking-" + uuid.New().String(),
		Hotel:        *hotel,
		Room:         *room,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Nights:       nights,
		Guests:       req.Guests,
		TotalAmount:  int64(nights) * room.PricePerNight,
		Status:       models.StatusConfirmed,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
	}

	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetHotelBooking, HotelBooking: &booking}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentView, View: store.ViewCabBooking}); err != nil {
		return nil, err
	}
	return &booking, nil
}

// findRoom resolves a hotel and room id pair. The hotel id carries its
// city code (hotel-<city>-<n>), so the catalog can be rebuilt for lookup.
func findRoom(hotelID, roomID string) (*models.Hotel, *models.HotelRoom, error) {
	var city string
	if n, _ := fmt.Sscanf(hotelID, "hotel-%3s-", &city); n != 1 {
		return nil, nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	for _, hotel := range mockdata.HotelsForCity(city) {
		if hotel.ID != hotelID {
			continue
		}
		for i := range hotel.Rooms {
			if hotel.Rooms[i].ID == roomID {
				return &hotel, &hotel.Rooms[i], nil
			}
		}
		return nil, nil, fmt.Errorf("%w: room %s at %s", ErrNotFound, roomID, hotel.Name)
	}
	return nil, nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
}
