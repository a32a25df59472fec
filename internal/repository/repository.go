// Package repository implements the durable persistence collaborators over
// the local key-value store. These are the write-through targets of the
// state store's side effects; everything else the application holds is
// session-scoped and ephemeral.
package repository

import "skyways/internal/localstore"

// Repositories bundles the durable stores.
type Repositories struct {
	Users    *UserRepository
	Bookings *BookingRepository
}

func NewRepositories(store *localstore.Store) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(store),
		Bookings: NewBookingRepository(store),
	}
}
