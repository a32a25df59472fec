package repository

import (
	"fmt"
	"strings"

	"skyways/internal/localstore"
	"skyways/internal/models"
)

// UserRepository manages the account list and the persisted current user.
type UserRepository struct {
	store *localstore.Store
}

func NewUserRepository(store *localstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetByEmail returns the account record for an email, or nil when absent.
// Email comparison is case-insensitive.
func (r *UserRepository) GetByEmail(email string) (*models.StoredUser, error) {
	users, err := r.list()
	if err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	for i := range users {
		if strings.ToLower(users[i].Email) == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create appends an account record to the users list.
func (r *UserRepository) Create(user models.StoredUser) error {
	users, err := r.list()
	if err != nil {
		return err
	}
	users = append(users, user)
	if err := r.store.Set(localstore.KeyUsers, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

// SaveCurrentUser persists the session user (without credentials).
func (r *UserRepository) SaveCurrentUser(user models.User) error {
	return r.store.Set(localstore.KeyCurrentUser, user)
}

// LoadCurrentUser returns the persisted session user, or nil when none.
func (r *UserRepository) LoadCurrentUser() (*models.User, error) {
	var user models.User
	ok, err := r.store.Get(localstore.KeyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// ClearCurrentUser removes the persisted session user.
func (r *UserRepository) ClearCurrentUser() error {
	return r.store.Delete(localstore.KeyCurrentUser)
}

func (r *UserRepository) list() ([]models.StoredUser, error) {
	var users []models.StoredUser
	if _, err := r.store.Get(localstore.KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}
