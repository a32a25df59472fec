package service

import (
	"context"
	"fmt"
	"time"

	"skyways/internal/logger"
	"skyways/internal/metrics"
	"skyways/internal/mockdata"
	"skyways/internal/models"
	"skyways/internal/store"
)

// SearchService validates search input, simulates the network round trip
// and generates listings. Results are regenerated on every search; repeated
// searches for the same inputs produce different listings.
type SearchService struct {
	store *store.Store
	delay time.Duration
}

func NewSearchService(st *store.Store, delay time.Duration) *SearchService {
	return &SearchService{store: st, delay: delay}
}

// Search runs a flight search for the session. Unknown routes yield an
// empty result set, not an error. Infant count exceeding adult count is
// rejected here, at search time; it is not re-validated downstream.
func (s *SearchService) Search(ctx context.Context, sessionID string, req *models.SearchRequest) ([]models.Flight, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, fmt.Errorf("%w: please sign in to search and book flights", ErrUnauthenticated)
	}

	if req.Origin == req.Destination {
		return nil, fmt.Errorf("%w: origin and destination cannot be the same", ErrValidation)
	}
	if req.Passengers < 1 {
		return nil, fmt.Errorf("%w: at least one adult passenger is required", ErrValidation)
	}
	if req.Infants < 0 {
		return nil, fmt.Errorf("%w: infant count cannot be negative", ErrValidation)
	}
	if req.Infants > req.Passengers {
		return nil, fmt.Errorf("%w: number of infants cannot exceed number of adult passengers", ErrValidation)
	}

	departureDate, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: departure date must be YYYY-MM-DD", ErrValidation)
	}

	travelClass := req.TravelClass
	if travelClass == "" {
		travelClass = models.ClassEconomy
	}
	tripType := req.TripType
	if tripType == "" {
		tripType = "one-way"
	}

	filters := models.SearchFilters{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    req.Passengers,
		Infants:       req.Infants,
		TravelClass:   travelClass,
		TripType:      tripType,
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetSearchFilters, SearchFilters: &filters}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetLoading, Loading: true}); err != nil {
		return nil, err
	}

	// Simulated network delay. Deliberately not cancellable: navigating
	// away does not abort the pending result.
	time.Sleep(s.delay)

	flights := mockdata.GenerateFlightsForRoute(req.Origin, req.Destination, departureDate)
	metrics.SearchesTotal.Inc()

	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetSearchResults, SearchResults: flights}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetLoading, Loading: false}); err != nil {
		return nil, err
	}

	if len(flights) > 0 {
		if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentView, View: store.ViewResults}); err != nil {
			return nil, err
		}
	} else {
		logger.Get().Info("No flights generated for route",
			"origin", req.Origin, "destination", req.Destination)
	}

	return flights, nil
}

// SelectFlight picks one listing from the current results and advances the
// flow to seat selection.
func (s *SearchService) SelectFlight(ctx context.Context, sessionID, flightID string) (*models.Flight, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var selected *models.Flight
	for i := range state.SearchResults {
		if state.SearchResults[i].ID == flightID {
			selected = &state.SearchResults[i]
			break
		}
	}
	if selected == nil {
		return nil, fmt.Errorf("%w: flight %s is not in the current results", ErrNotFound, flightID)
	}

	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetSelectedFlight, Flight: selected}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentView, View: store.ViewSeats}); err != nil {
		return nil, err
	}
	return selected, nil
}

// SeatMap regenerates the seat map for the selected flight. Prior
// selections do not survive regeneration.
func (s *SearchService) SeatMap(ctx context.Context, sessionID, flightID string) ([]models.Seat, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.SelectedFlight == nil || state.SelectedFlight.ID != flightID {
		return nil, fmt.Errorf("%w: flight %s is not selected", ErrNotFound, flightID)
	}

	seats := mockdata.GenerateSeats(flightID)
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetSeatMap, Seats: seats}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetSelectedSeats, Seats: nil}); err != nil {
		return nil, err
	}
	return seats, nil
}

// SelectSeats records the chosen seats. One seat per adult passenger is
// required before the flow advances to the booking form.
func (s *SearchService) SelectSeats(ctx context.Context, sessionID string, seatIDs []string) ([]models.Seat, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.SelectedFlight == nil {
		return nil, fmt.Errorf("%w: no flight selected", ErrValidation)
	}
	if len(state.SeatMap) == 0 {
		return nil, fmt.Errorf("%w: seat map not loaded", ErrValidation)
	}
	if len(seatIDs) != state.SearchFilters.Passengers {
		return nil, fmt.Errorf("%w: select exactly %d seat(s)", ErrValidation, state.SearchFilters.Passengers)
	}

	byID := make(map[string]models.Seat, len(state.SeatMap))
	for _, seat := range state.SeatMap {
		byID[seat.ID] = seat
	}

	seen := make(map[string]bool, len(seatIDs))
	selected := make([]models.Seat, 0, len(seatIDs))
	for _, id := range seatIDs {
		seat, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: seat %s is not on this flight", ErrNotFound, id)
		}
		if !seat.IsAvailable {
			return nil, fmt.Errorf("%w: seat %s is not available", ErrValidation, seat.SeatNumber)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: seat %s selected twice", ErrValidation, seat.SeatNumber)
		}
		seen[id] = true
		selected = append(selected, seat)
	}

	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetSelectedSeats, Seats: selected}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentView, View: store.ViewBooking}); err != nil {
		return nil, err
	}
	return selected, nil
}
