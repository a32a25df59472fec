package service

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"skyways/internal/metrics"
	"skyways/internal/models"
	"skyways/internal/repository"
	"skyways/internal/store"
)

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// BookingService creates draft bookings from session state and confirms
// them through the simulated payment step.
type BookingService struct {
	store        *store.Store
	bookings     *repository.BookingRepository
	paymentDelay time.Duration
}

func NewBookingService(st *store.Store, bookings *repository.BookingRepository, paymentDelay time.Duration) *BookingService {
	return &BookingService{store: st, bookings: bookings, paymentDelay: paymentDelay}
}

// Create builds a pending booking from the submitted passenger forms and
// the session's flight and seat selections, then advances to payment.
// Infant-versus-adult counts were validated at search time and are not
// re-checked here.
func (s *BookingService) Create(ctx context.Context, sessionID string, req *models.CreateBookingRequest) (*models.Booking, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, ErrUnauthenticated
	}
	if state.SelectedFlight == nil {
		return nil, fmt.Errorf("%w: no flight selected", ErrValidation)
	}
	if len(state.SelectedSeats) == 0 {
		return nil, fmt.Errorf("%w: no seats selected", ErrValidation)
	}
	if len(req.Passengers) != len(state.SelectedSeats) {
		return nil, fmt.Errorf("%w: booking needs one seat per passenger (%d passengers, %d seats)",
			ErrValidation, len(req.Passengers), len(state.SelectedSeats))
	}

	passengers := make([]models.Passenger, len(req.Passengers))
	for i, p := range req.Passengers {
		passengers[i] = models.Passenger{
			ID:             uuid.New().String(),
			Title:          p.Title,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			DateOfBirth:    p.DateOfBirth,
			PassportNumber: p.PassportNumber,
			Email:          p.Email,
			Phone:          p.Phone,
		}
	}

	infants := make([]models.Infant, len(req.Infants))
	for i, inf := range req.Infants {
		parent := passengers[0]
		if inf.ParentIndex >= 0 && inf.ParentIndex < len(passengers) {
			parent = passengers[inf.ParentIndex]
		}
		infants[i] = models.Infant{
			ID:          uuid.New().String(),
			FirstName:   inf.FirstName,
			LastName:    inf.LastName,
			DateOfBirth: inf.DateOfBirth,
			ParentID:    parent.ID,
		}
	}

	reference, err := s.newReference(state.User.ID)
	if err != nil {
		return nil, err
	}

	booking := models.Booking{
		ID:               "booking-" + uuid.New().String(),
		BookingReference: reference,
		Flight:           *state.SelectedFlight,
		Passengers:       passengers,
		Infants:          infants,
		Seats:            state.SelectedSeats,
		TotalAmount:      totalAmount(state, len(passengers), len(infants)),
		Status:           models.StatusPending,
		CreatedAt:        time.Now(),
	}

	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentBooking, Booking: &booking}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentView, View: store.ViewPayment}); err != nil {
		return nil, err
	}
	return &booking, nil
}

// totalAmount computes class fare per adult, seat fees, and a 10% infant
// fare per infant.
func totalAmount(state store.AppState, adults, infants int) int64 {
	fare := state.SelectedFlight.Price.For(state.SearchFilters.TravelClass)

	var seatFees int64
	for _, seat := range state.SelectedSeats {
		seatFees += seat.Price
	}

	infantFare := fare * int64(infants) / 10
	return fare*int64(adults) + seatFees + infantFare
}

// newReference generates "SW" plus six random alphanumerics, retrying on
// the rare collision within the user's own booking list.
func (s *BookingService) newReference(userID string) (string, error) {
	for {
		b := make([]byte, 6)
		for i := range b {
			b[i] = referenceAlphabet[rand.Intn(len(referenceAlphabet))]
		}
		reference := "SW" + string(b)

		taken, err := s.bookings.HasReference(userID, reference)
		if err != nil {
			return "", err
		}
		if !taken {
			return reference, nil
		}
	}
}

// ProcessPayment validates the payment form, waits out the fixed
// processing delay, and confirms the pending booking. Processing never
// fails; there is no real gateway behind it.
func (s *BookingService) ProcessPayment(ctx context.Context, sessionID string, req *models.PaymentRequest) (*models.Booking, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.CurrentBooking == nil {
		return nil, fmt.Errorf("%w: no booking awaiting payment", ErrValidation)
	}
	if state.CurrentBooking.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: booking %s is already %s",
			ErrValidation, state.CurrentBooking.BookingReference, state.CurrentBooking.Status)
	}

	if err := validatePayment(req); err != nil {
		return nil, err
	}

	start := time.Now()
	// Fixed processing delay, not cancellable mid-flight.
	time.Sleep(s.paymentDelay)
	metrics.PaymentDuration.Observe(time.Since(start).Seconds())

	confirmed := *state.CurrentBooking
	confirmed.Status = models.StatusConfirmed

	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.AddBooking, Booking: &confirmed}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentBooking, Booking: &confirmed}); err != nil {
		return nil, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetCurrentView, View: store.ViewConfirmation}); err != nil {
		return nil, err
	}

	metrics.BookingsConfirmedTotal.Inc()
	return &confirmed, nil
}

// validatePayment checks presence and display format of the fields the
// chosen method requires. Nothing is charged.
func validatePayment(req *models.PaymentRequest) error {
	switch req.Method {
	case "card":
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, req.CardNumber)
		if len(digits) < 13 || len(digits) > 16 {
			return fmt.Errorf("%w: card number must be 13-16 digits", ErrValidation)
		}
		if !expiryPattern.MatchString(req.Expiry) {
			return fmt.Errorf("%w: expiry must be MM/YY", ErrValidation)
		}
		if len(req.CVV) < 3 || len(req.CVV) > 4 {
			return fmt.Errorf("%w: CVV must be 3-4 digits", ErrValidation)
		}
		if strings.TrimSpace(req.CardHolder) == "" {
			return fmt.Errorf("%w: cardholder name is required", ErrValidation)
		}
	case "upi":
		if !strings.Contains(req.UPIID, "@") {
			return fmt.Errorf("%w: UPI id must look like name@bank", ErrValidation)
		}
	case "netbanking":
		if strings.TrimSpace(req.Bank) == "" {
			return fmt.Errorf("%w: bank selection is required", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unsupported payment method %q", ErrValidation, req.Method)
	}
	return nil
}

// List returns the session's booking history.
func (s *BookingService) List(ctx context.Context, sessionID string) ([]models.Booking, error) {
	state, err := s.store.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, ErrUnauthenticated
	}
	return state.Bookings, nil
}

// GetByReference finds a booking in the session's history.
func (s *BookingService) GetByReference(ctx context.Context, sessionID, reference string) (*models.Booking, error) {
	bookings, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].BookingReference == reference {
			return &bookings[i], nil
		}
	}
	return nil, fmt.Errorf("%w: booking %s", ErrNotFound, reference)
}
