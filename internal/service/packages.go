package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skyways/internal/models"
	"skyways/internal/store"
)

// Placeholder ancillary amounts shown when the hotel or cab leg has not
// been booked yet, so the package summary can still quote a bundle.
const (
	placeholderHotelAmount int64 = 15000
	placeholderCabAmount   int64 = 2500
	packageSavings         int64 = 1500
)

// PackageService assembles the travel package summary for a trip.
type PackageService struct {
	store *store.Store
}

func NewPackageService(st *store.Store) *PackageService {
	return &PackageService{store: st}
}

// Current builds the package for the session's confirmed flight booking,
// folding in the hotel and cab bookings made so far. Missing legs are
// quoted at placeholder amounts.
func (s *PackageService) Current(ctx context.Context, sessionID string) (*models.TravelPackage, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, ErrUnauthenticated
	}
	if state.CurrentBooking == nil || state.CurrentBooking.Status != models.StatusConfirmed {
		return nil, ErrNotFound
	}

	return s.assemble(&state), nil
}

// Complete finalizes the package and moves the session to the package
// confirmation screen.
func (s *PackageService) Complete(ctx context.Context, sessionID string) (*models.TravelPackage, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, ErrUnauthenticated
	}
	if state.CurrentBooking == nil || state.CurrentBooking.Status != models.StatusConfirmed {
		return nil, ErrNotFound
	}

	pkg := s.assemble(&state)
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentView, View: store.ViewPackageConfirmation}); err != nil {
		return nil, err
	}
	return pkg, nil
}

func (s *PackageService) assemble(state *store.AppState) *models.TravelPackage {
	pkg := &models.TravelPackage{
		ID:        "package-" + uuid.New().String(),
		Flight:    *state.CurrentBooking,
		Status:    models.StatusConfirmed,
		CreatedAt: time.Now(),
	}

	hotelAmount := placeholderHotelAmount
	if state.HotelBooking != nil {
		pkg.Hotel = state.HotelBooking
		hotelAmount = state.HotelBooking.TotalAmount
	}
	cabAmount := placeholderCabAmount
	if state.CabBooking != nil {
		pkg.Cabs = []models.CabBooking{*state.CabBooking}
		cabAmount = state.CabBooking.TotalAmount
	}

	pkg.Savings = packageSavings
	pkg.TotalAmount = state.CurrentBooking.TotalAmount + hotelAmount + cabAmount - packageSavings
	return pkg
}
