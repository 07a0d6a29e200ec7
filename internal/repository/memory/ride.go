package memory

import (
	"context"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// RideStore derives Ride.PaymentID from the payment store, the way the
// PostgreSQL repository joins payments.ride_id.
type RideStore struct {
	rides    *Store[domain.Ride, *domain.Ride]
	payments *PaymentStore
}

// NewRideStore creates a ride store reading payment references from payments.
func NewRideStore(payments *PaymentStore) *RideStore {
	return &RideStore{
		rides:    NewStore[domain.Ride](),
		payments: payments,
	}
}

// FindAll returns every ride with its payment reference filled in.
func (s *RideStore) FindAll(ctx context.Context) ([]*domain.Ride, error) {
	rides, err := s.rides.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	paymentByRide := s.payments.paymentByRide(ctx)
	for _, ride := range rides {
		ride.PaymentID = paymentByRide[ride.ID]
	}
	return rides, nil
}

// FindByID returns the ride with its payment reference, or nil if absent.
func (s *RideStore) FindByID(ctx context.Context, id int64) (*domain.Ride, error) {
	ride, err := s.rides.FindByID(ctx, id)
	if err != nil || ride == nil {
		return ride, err
	}
	ride.PaymentID = s.payments.paymentByRide(ctx)[ride.ID]
	return ride, nil
}

// Save stores the ride, ignoring any PaymentID supplied by the caller.
func (s *RideStore) Save(ctx context.Context, ride *domain.Ride) (*domain.Ride, error) {
	row := *ride
	row.PaymentID = 0
	saved, err := s.rides.Save(ctx, &row)
	if err != nil {
		return nil, err
	}
	saved.PaymentID = s.payments.paymentByRide(ctx)[saved.ID]
	return saved, nil
}

// DeleteByID removes the ride and clears the ride reference of its payment.
// Missing IDs are ignored.
func (s *RideStore) DeleteByID(ctx context.Context, id int64) error {
	if err := s.rides.DeleteByID(ctx, id); err != nil {
		return err
	}
	return s.payments.unlinkRide(ctx, id)
}

// Ensure stores implement the repository contracts.
var (
	_ repository.UserRepository    = (*Store[domain.User, *domain.User])(nil)
	_ repository.DriverRepository  = (*Store[domain.Driver, *domain.Driver])(nil)
	_ repository.RideRepository    = (*RideStore)(nil)
	_ repository.PaymentRepository = (*PaymentStore)(nil)
)
