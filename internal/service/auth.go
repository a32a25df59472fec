package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"skyways/internal/logger"
	"skyways/internal/models"
	"skyways/internal/repository"
	"skyways/internal/store"
)

// Fixed demo account seeded at startup.
const (
	DemoEmail    = "demo@skyways.com"
	DemoPassword = "demo123"
	demoUserID   = "demo-user-123"
)

// AuthService handles account registration, sign-in and session lifecycle.
// Passwords are stored as SHA-256 digests; the session user never carries
// the credential record.
type AuthService struct {
	store *store.Store
	users *repository.UserRepository
}

func NewAuthService(st *store.Store, users *repository.UserRepository) *AuthService {
	return &AuthService{store: st, users: users}
}

// HashPassword returns the hex SHA-256 digest used for credential storage.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return fmt.Sprintf("%x", sum)
}

// SeedDemoAccount creates the demo account if it does not exist yet.
func (s *AuthService) SeedDemoAccount() error {
	existing, err := s.users.GetByEmail(DemoEmail)
	if err != nil {
		return fmt.Errorf("failed to check demo account: %w", err)
	}
	if existing != nil {
		return nil
	}

	demo := models.StoredUser{
		User: models.User{
			ID:          demoUserID,
			Email:       DemoEmail,
			FirstName:   "Demo",
			LastName:    "User",
			Phone:       "+91 98765 43210",
			DateOfBirth: "1990-01-01",
		},
		PasswordHash: HashPassword(DemoPassword),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(demo); err != nil {
		return fmt.Errorf("failed to seed demo account: %w", err)
	}

	logger.Get().Info("Seeded demo account", "email", DemoEmail)
	return nil
}

// SignUp registers an account and opens a session for it.
func (s *AuthService) SignUp(ctx context.Context, req *models.SignUpRequest) (string, models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !strings.Contains(email, "@") {
		return "", models.User{}, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len(req.Password) < 6 {
		return "", models.User{}, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if req.Password != req.ConfirmPassword {
		return "", models.User{}, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return "", models.User{}, err
	}
	if existing != nil {
		return "", models.User{}, fmt.Errorf("%w: an account with this email already exists", ErrValidation)
	}

	account := models.StoredUser{
		User: models.User{
			ID:          uuid.New().String(),
			Email:       email,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Phone:       req.Phone,
			DateOfBirth: req.DateOfBirth,
		},
		PasswordHash: HashPassword(req.Password),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(account); err != nil {
		return "", models.User{}, err
	}

	return s.openSession(ctx, account.User)
}

// SignIn authenticates credentials and opens a session.
func (s *AuthService) SignIn(ctx context.Context, req *models.SignInRequest) (string, models.User, error) {
	account, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return "", models.User{}, err
	}
	if account == nil || account.PasswordHash != HashPassword(req.Password) {
		return "", models.User{}, ErrInvalidCredentials
	}

	return s.openSession(ctx, account.User)
}

// SignOut clears the persisted session user and discards the session.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetUser, User: nil}); err != nil {
		return err
	}
	return s.store.EndSession(ctx, sessionID)
}

func (s *AuthService) openSession(ctx context.Context, user models.User) (string, models.User, error) {
	sessionID, _, err := s.store.NewSession(ctx)
	if err != nil {
		return "", models.User{}, err
	}
	if _, err := s.store.Dispatch(ctx, sessionID, store.Action{Type: store.SetUser, User: &user}); err != nil {
		return "", models.User{}, err
	}
	// The persisted booking history belongs to the signing-in user, not
	// whoever the durable store last remembered.
	if _, err := s.store.RehydrateBookings(ctx, sessionID); err != nil {
		return "", models.User{}, err
	}
	return sessionID, user, nil
}
