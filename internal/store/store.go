// Package store holds the single source of truth for session, search and
// booking state. State changes flow through Dispatch as tagged actions;
// each action produces a new snapshot rather than mutating in place.
// SetUser and AddBooking additionally write through to the durable store,
// and new sessions rehydrate the persisted user and booking history.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"skyways/internal/models"
)

// AppState is one session's snapshot.
type AppState struct {
	User           *models.User         `json:"user"`
	SearchFilters  models.SearchFilters `json:"search_filters"`
	SearchResults  []models.Flight      `json:"search_results"`
	SelectedFlight *models.Flight       `json:"selected_flight"`
	SeatMap        []models.Seat        `json:"seat_map"`
	SelectedSeats  []models.Seat        `json:"selected_seats"`
	CurrentBooking *models.Booking      `json:"current_booking"`
	Bookings       []models.Booking     `json:"bookings"`
	HotelBooking   *models.HotelBooking `json:"hotel_booking"`
	CabBooking     *models.CabBooking   `json:"cab_booking"`
	IsLoading      bool                 `json:"is_loading"`
	CurrentView    View                 `json:"current_view"`
}

// ActionType tags a state transition.
type ActionType string

const (
	SetUser           ActionType = "SET_USER"
	SetSearchFilters  ActionType = "SET_SEARCH_FILTERS"
	SetSearchResults  ActionType = "SET_SEARCH_RESULTS"
	SetSelectedFlight ActionType = "SET_SELECTED_FLIGHT"
	SetSeatMap        ActionType = "SET_SEAT_MAP"
	SetSelectedSeats  ActionType = "SET_SELECTED_SEATS"
	SetCurrentBooking ActionType = "SET_CURRENT_BOOKING"
	AddBooking        ActionType = "ADD_BOOKING"
	SetLoading        ActionType = "SET_LOADING"
	SetCurrentView    ActionType = "SET_CURRENT_VIEW"
	SetHotelBooking   ActionType = "SET_HOTEL_BOOKING"
	SetCabBooking     ActionType = "SET_CAB_BOOKING"
)

// Action carries a type tag plus the payload field that type reads.
type Action struct {
	Type ActionType

	User          *models.User
	SearchFilters *models.SearchFilters
	SearchResults []models.Flight
	Flight        *models.Flight
	Seats         []models.Seat
	Booking       *models.Booking
	HotelBooking  *models.HotelBooking
	CabBooking    *models.CabBooking
	Loading       bool
	View          View
}

// CurrentUserStore persists the last signed-in user.
type CurrentUserStore interface {
	SaveCurrentUser(user models.User) error
	LoadCurrentUser() (*models.User, error)
	ClearCurrentUser() error
}

// BookingStore persists per-user booking history.
type BookingStore interface {
	Append(userID string, booking models.Booking) error
	ListByUser(userID string) ([]models.Booking, error)
}

// Store dispatches actions against session snapshots. Reduction itself is
// pure; persistence happens through the injected collaborators.
type Store struct {
	sessions SessionRepository
	users    CurrentUserStore
	bookings BookingStore
}

func New(sessions SessionRepository, users CurrentUserStore, bookings BookingStore) *Store {
	return &Store{sessions: sessions, users: users, bookings: bookings}
}

// initialState mirrors the untouched search form.
func initialState() AppState {
	return AppState{
		SearchFilters: models.SearchFilters{
			Passengers:  1,
			TravelClass: models.ClassEconomy,
			TripType:    "one-way",
		},
		CurrentView: ViewSearch,
	}
}

// NewSession creates a session and rehydrates the persisted current user
// and that user's booking history, when present.
func (s *Store) NewSession(ctx context.Context) (string, AppState, error) {
	sessionID := uuid.New().String()
	state := initialState()

	user, err := s.users.LoadCurrentUser()
	if err != nil {
		return "", AppState{}, fmt.Errorf("failed to rehydrate user: %w", err)
	}
	if user != nil {
		state.User = user
		bookings, err := s.bookings.ListByUser(user.ID)
		if err != nil {
			return "", AppState{}, fmt.Errorf("failed to rehydrate bookings: %w", err)
		}
		state.Bookings = bookings
	}

	if err := s.sessions.Set(ctx, sessionID, state); err != nil {
		return "", AppState{}, fmt.Errorf("failed to save session: %w", err)
	}
	return sessionID, state, nil
}

// State returns the current snapshot for a session.
func (s *Store) State(ctx context.Context, sessionID string) (AppState, error) {
	return s.sessions.Get(ctx, sessionID)
}

// RehydrateBookings reloads the session user's persisted booking history
// into the snapshot. Used after sign-in, when the durable store may hold
// history for a different user than the one the session started with.
func (s *Store) RehydrateBookings(ctx context.Context, sessionID string) (AppState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return AppState{}, err
	}
	if state.User == nil {
		return state, nil
	}

	bookings, err := s.bookings.ListByUser(state.User.ID)
	if err != nil {
		return state, fmt.Errorf("failed to rehydrate bookings: %w", err)
	}
	state.Bookings = bookings
	if err := s.sessions.Set(ctx, sessionID, state); err != nil {
		return state, fmt.Errorf("failed to save session: %w", err)
	}
	return state, nil
}

// EndSession discards a session's snapshot.
func (s *Store) EndSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Dispatch applies an action to the session's snapshot and saves the
// result. SetUser and AddBooking also write through to the durable store;
// SetCurrentView is guarded by the view's prerequisites.
func (s *Store) Dispatch(ctx context.Context, sessionID string, action Action) (AppState, error) {
	state, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return AppState{}, err
	}

	if action.Type == SetCurrentView {
		if err := checkViewPrerequisites(state, action.View); err != nil {
			return state, err
		}
	}

	next, err := reduce(state, action)
	if err != nil {
		return state, err
	}

	if err := s.applySideEffects(state, action); err != nil {
		return state, err
	}

	if err := s.sessions.Set(ctx, sessionID, next); err != nil {
		return state, fmt.Errorf("failed to save session: %w", err)
	}
	return next, nil
}

// reduce is the pure snapshot-in, snapshot-out transition.
func reduce(state AppState, action Action) (AppState, error) {
	next := state

	switch action.Type {
	case SetUser:
		next.User = action.User
		if action.User == nil {
			next.Bookings = nil
		}
	case SetSearchFilters:
		if action.SearchFilters == nil {
			return state, fmt.Errorf("missing search filters payload")
		}
		next.SearchFilters = *action.SearchFilters
	case SetSearchResults:
		next.SearchResults = action.SearchResults
	case SetSelectedFlight:
		next.SelectedFlight = action.Flight
	case SetSeatMap:
		next.SeatMap = action.Seats
	case SetSelectedSeats:
		next.SelectedSeats = action.Seats
	case SetCurrentBooking:
		next.CurrentBooking = action.Booking
	case AddBooking:
		if action.Booking == nil {
			return state, fmt.Errorf("missing booking payload")
		}
		next.Bookings = append(append([]models.Booking(nil), state.Bookings...), *action.Booking)
	case SetLoading:
		next.IsLoading = action.Loading
	case SetCurrentView:
		next.CurrentView = action.View
	case SetHotelBooking:
		next.HotelBooking = action.HotelBooking
	case SetCabBooking:
		next.CabBooking = action.CabBooking
	default:
		return state, fmt.Errorf("unknown action type %q", action.Type)
	}

	return next, nil
}

// applySideEffects performs the durable writes an action implies.
func (s *Store) applySideEffects(state AppState, action Action) error {
	switch action.Type {
	case SetUser:
		if action.User == nil {
			return s.users.ClearCurrentUser()
		}
		return s.users.SaveCurrentUser(*action.User)
	case AddBooking:
		if state.User == nil {
			// Guest bookings are held in the session only.
			return nil
		}
		return s.bookings.Append(state.User.ID, *action.Booking)
	}
	return nil
}
