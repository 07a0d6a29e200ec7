package app

import (
	"database/sql"
	"fmt"

	"ridehail/internal/config"
	"ridehail/internal/domain"
	"ridehail/internal/repository"
	"ridehail/internal/repository/memory"
	"ridehail/internal/repository/postgres"
)

// Repositories groups the repository of every entity.
type Repositories struct {
	Users    repository.UserRepository
	Drivers  repository.DriverRepository
	Rides    repository.RideRepository
	Payments repository.PaymentRepository
}

// NewPostgresRepositories creates repositories backed by db.
func NewPostgresRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:    postgres.NewUserRepository(db),
		Drivers:  postgres.NewDriverRepository(db),
		Rides:    postgres.NewRideRepository(db),
		Payments: postgres.NewPaymentRepository(db),
	}
}

// NewMemoryRepositories creates empty in-memory repositories.
func NewMemoryRepositories() *Repositories {
	payments := memory.NewPaymentStore()
	return &Repositories{
		Users:    memory.NewStore[domain.User](),
		Drivers:  memory.NewStore[domain.Driver](),
		Rides:    memory.NewRideStore(payments),
		Payments: payments,
	}
}

// ValidateStorage rejects unknown storage drivers.
func ValidateStorage(cfg config.StorageConfig) error {
	switch cfg.Driver {
	case config.StorageDriverPostgres, config.StorageDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
