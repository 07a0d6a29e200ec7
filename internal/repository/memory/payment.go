package memory

import (
	"context"
	"fmt"
	"sync"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// PaymentStore keeps payments with the same one-payment-per-ride rule as the
// payments.ride_id UNIQUE constraint.
type PaymentStore struct {
	mu       sync.Mutex
	payments *Store[domain.Payment, *domain.Payment]
}

// NewPaymentStore creates an empty payment store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{payments: NewStore[domain.Payment]()}
}

// FindAll returns every payment ordered by ID.
func (s *PaymentStore) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	return s.payments.FindAll(ctx)
}

// FindByID returns the payment, or nil if absent.
func (s *PaymentStore) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.payments.FindByID(ctx, id)
}

// Save stores the payment. It returns repository.ErrConflict when another
// payment already references the same ride.
func (s *PaymentStore) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payment.RideID != 0 {
		existing, err := s.payments.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, p := range existing {
			if p.RideID == payment.RideID && p.ID != payment.ID {
				return nil, fmt.Errorf("%w: ride %d already has payment %d", repository.ErrConflict, payment.RideID, p.ID)
			}
		}
	}

	return s.payments.Save(ctx, payment)
}

// DeleteByID removes the payment. Missing IDs are ignored.
func (s *PaymentStore) DeleteByID(ctx context.Context, id int64) error {
	return s.payments.DeleteByID(ctx, id)
}

// paymentByRide maps ride IDs to the ID of the payment referencing them.
func (s *PaymentStore) paymentByRide(ctx context.Context) map[int64]int64 {
	payments, _ := s.payments.FindAll(ctx)
	index := make(map[int64]int64, len(payments))
	for _, p := range payments {
		if p.RideID != 0 {
			index[p.RideID] = p.ID
		}
	}
	return index
}

// unlinkRide clears the ride reference of the payment pointing at rideID,
// like ON DELETE SET NULL.
func (s *PaymentStore) unlinkRide(ctx context.Context, rideID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	paymentID, ok := s.paymentByRide(ctx)[rideID]
	if !ok {
		return nil
	}

	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil || payment == nil {
		return err
	}
	payment.RideID = 0
	_, err = s.payments.Save(ctx, payment)
	return err
}
