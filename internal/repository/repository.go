// Package repository defines the storage interfaces the services depend on.
// The default backend is in-memory; a MySQL backend can be selected without
// touching any caller.
package repository

import (
	"context"
	"errors"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user already exists")
	ErrTripNotFound  = errors.New("trip not found")
	ErrDuplicateTrip = errors.New("trip already exists")
)

// UserRepository persists user records keyed by full name.
type UserRepository interface {
	// Create stores a new user. Returns ErrDuplicateUser if the full name
	// is already taken.
	Create(ctx context.Context, user *model.User) error
	// GetByName retrieves a user by full name. Returns ErrUserNotFound if
	// absent.
	GetByName(ctx context.Context, fullName string) (*model.User, error)
}

// TripRepository persists trip records keyed by id.
type TripRepository interface {
	Create(ctx context.Context, trip *model.Trip) error
	// GetByID returns ErrTripNotFound if the id is absent. Ownership checks
	// belong to the service layer.
	GetByID(ctx context.Context, id string) (*model.Trip, error)
	// ListByOwner returns all trips owned by owner in insertion order.
	// Order is best-effort across backends.
	ListByOwner(ctx context.Context, owner string) ([]model.Trip, error)
}

// LeadRepository is an append-only collection of vendor referrals.
type LeadRepository interface {
	Add(ctx context.Context, lead *model.Lead) error
	List(ctx context.Context) ([]model.Lead, error)
}
