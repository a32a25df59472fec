package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"skyways/internal/mockdata"
	"skyways/internal/models"
	"skyways/internal/store"
)

// CabService lists ground transport options, estimates fares and books rides.
type CabService struct {
	store *store.Store
}

func NewCabService(st *store.Store) *CabService {
	return &CabService{store: st}
}

// List returns the available cab service tiers.
func (s *CabService) List() []models.CabService {
	return mockdata.CabServices
}

// Estimate prices a ride between two locations for the chosen tier.
func (s *CabService) Estimate(req *models.CabEstimateRequest) (*models.CabEstimateResponse, error) {
	if req.PickupLocation == "" || req.DropLocation == "" {
		return nil, fmt.Errorf("%w: pickup and drop locations are required", ErrValidation)
	}
	service := mockdata.FindCabService(req.ServiceID)
	if service == nil {
		return nil, fmt.Errorf("%w: cab service %s", ErrNotFound, req.ServiceID)
	}

	distance, duration, total := mockdata.EstimateCabFare(req.PickupLocation, req.DropLocation, *service)
	return &models.CabEstimateResponse{
		DistanceKm:        distance,
		EstimatedDuration: duration,
		TotalAmount:       total,
	}, nil
}

// Book confirms a cab ride and advances the ancillary flow to the
// travel package summary.
func (s *CabService) Book(ctx context.Context, sessionID string, req *models.CabBookingRequest) (*models.CabBooking, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, ErrUnauthenticated
	}
	if req.PickupLocation == "" || req.DropLocation == "" {
		return nil, fmt.Errorf("%w: pickup and drop locations are required", ErrValidation)
	}
	if req.PickupDateTime == "" {
		return nil, fmt.Errorf("%w: pickup time is required", ErrValidation)
	}
	service := mockdata.FindCabService(req.ServiceID)
	if service == nil {
		return nil, fmt.Errorf("%w: cab service %s", ErrNotFound, req.ServiceID)
	}
	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}
	if passengers > service.Capacity {
		return nil, fmt.Errorf("%w: %s seats at most %d passengers", ErrValidation, service.Name, service.Capacity)
	}

	distance, duration, total := mockdata.EstimateCabFare(req.PickupLocation, req.DropLocation, *service)
	booking := models.CabBooking{
		ID:                "cab-booking-" + uuid.New().String(),
		Service:           *service,
		PickupLocation:    req.PickupLocation,
		DropLocation:      req.DropLocation,
		PickupDateTime:    req.PickupDateTime,
		DistanceKm:        distance,
		EstimatedDuration: duration,
		TotalAmount:       total,
		Status:            models.StatusConfirmed,
		PassengerName:     req.PassengerName,
		PassengerPhone:    req.PassengerPhone,
		Passengers:        passengers,
		BookingType:       req.BookingType,
	}

	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCabBooking, CabBooking: &booking}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentView, View: store.ViewTravelPackage}); err != nil {
		return nil, err
	}
	return &booking, nil
}
