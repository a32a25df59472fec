package repository

import (
	"fmt"

	"skyways/internal/localstore"
	"skyways/internal/models"
)

// BookingRepository manages the per-user booking lists.
type BookingRepository struct {
	store *localstore.Store
}

func NewBookingRepository(store *localstore.Store) *BookingRepository {
	return &BookingRepository{store: store}
}

// Append adds a booking to the user's list.
func (r *BookingRepository) Append(userID string, booking models.Booking) error {
	bookings, err := r.ListByUser(userID)
	if err != nil {
		return err
	}
	bookings = append(bookings, booking)
	if err := r.store.Set(localstore.BookingsKey(userID), bookings); err != nil {
		return fmt.Errorf("failed to save bookings for user %s: %w", userID, err)
	}
	return nil
}

// ListByUser returns the user's booking history, oldest first.
func (r *BookingRepository) ListByUser(userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if _, err := r.store.Get(localstore.BookingsKey(userID), &bookings); err != nil {
		return nil, fmt.Errorf("failed to load bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// HasReference reports whether the user already holds a booking with the
// given reference code.
func (r *BookingRepository) HasReference(userID, reference string) (bool, error) {
	bookings, err := r.ListByUser(userID)
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if b.BookingReference == reference {
			return true, nil
		}
	}
	return false, nil
}
