package repository

import (
	"context"

	"ridehail/internal/domain"
)

// Repository defines the persistence operations shared by every entity.
type Repository[T any] interface {
	// FindAll retrieves every entity ordered by ID.
	FindAll(ctx context.Context) ([]*T, error)

	// FindByID retrieves an entity by ID.
	// Returns nil if no entity exists with the given ID.
	FindByID(ctx context.Context, id int64) (*T, error)

	// Save inserts the entity when it has no ID, otherwise replaces every
	// writable field of the stored row. Returns ErrNotFound when the ID is
	// set but no such row exists.
	Save(ctx context.Context, entity *T) (*T, error)

	// DeleteByID removes the entity. Deleting a missing ID is a no-op.
	DeleteByID(ctx context.Context, id int64) error
}

type (
	// UserRepository defines the persistence operations for users.
	UserRepository = Repository[domain.User]

	// DriverRepository defines the persistence operations for drivers.
	DriverRepository = Repository[domain.Driver]

	// RideRepository defines the persistence operations for rides.
	RideRepository = Repository[domain.Ride]

	// PaymentRepository defines the persistence operations for payments.
	PaymentRepository = Repository[domain.Payment]
)
