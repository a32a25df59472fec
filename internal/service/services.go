package service

import (
	"errors"
	"time"

	"skyways/internal/repository"
	"skyways/internal/store"
)

// Sentinel errors the handlers map onto HTTP status codes.
var (
	// ErrUnauthenticated means the operation needs a signed-in user.
	ErrUnauthenticated = errors.New("sign in required")
	// ErrInvalidCredentials covers failed sign-in attempts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrValidation covers rejected form input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound covers lookups of unknown entities.
	ErrNotFound = errors.New("not found")
)

// Services bundles the application services.
type Services struct {
	Auth     *AuthService
	Search   *SearchService
	Bookings *BookingService
	Hotels   *HotelService
	Cabs     *CabService
	Packages *PackageService
}

// Config carries the simulated-delay knobs. Tests zero them.
type Config struct {
	SearchDelay  time.Duration
	PaymentDelay time.Duration
}

func NewServices(st *store.Store, repos *repository.Repositories, cfg Config) *Services {
	return &Services{
		Auth:     NewAuthService(st, repos.Users),
		Search:   NewSearchService(st, cfg.SearchDelay),
		Bookings: NewBookingService(st, repos.Bookings, cfg.PaymentDelay),
		Hotels:   NewHotelService(st),
		Cabs:     NewCabService(st),
		Packages: NewPackageService(st),
	}
}
