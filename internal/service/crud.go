package service

import (
	"context"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// CrudService is the uniform contract exposed for every entity.
type CrudService[T any] interface {
	// FindAll returns every entity.
	FindAll(ctx context.Context) ([]*T, error)

	// FindByID returns the entity, or nil if it does not exist.
	FindByID(ctx context.Context, id int64) (*T, error)

	// Upsert creates the entity when it has no ID, otherwise fully replaces it.
	Upsert(ctx context.Context, entity *T) (*T, error)

	// Delete removes the entity.
	Delete(ctx context.Context, id int64) error
}

// crudService delegates every call to the entity's repository unchanged.
type crudService[T any] struct {
	repo repository.Repository[T]
}

// NewCrudService creates a CrudService backed by repo.
func NewCrudService[T any](repo repository.Repository[T]) CrudService[T] {
	return &crudService[T]{repo: repo}
}

func (s *crudService[T]) FindAll(ctx context.Context) ([]*T, error) {
	return s.repo.FindAll(ctx)
}

func (s *crudService[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *crudService[T]) Upsert(ctx context.Context, entity *T) (*T, error) {
	return s.repo.Save(ctx, entity)
}

func (s *crudService[T]) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}

type (
	// UserService is the CRUD contract for users.
	UserService = CrudService[domain.User]

	// DriverService is the CRUD contract for drivers.
	DriverService = CrudService[domain.Driver]

	// RideService is the CRUD contract for rides.
	RideService = CrudService[domain.Ride]

	// PaymentService is the CRUD contract for payments.
	PaymentService = CrudService[domain.Payment]
)
