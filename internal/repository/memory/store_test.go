package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

func TestStore_SaveAssignsIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.Driver]()

	first, err := store.Save(ctx, &domain.Driver{})
	require.NoError(t, err)
	second, err := store.Save(ctx, &domain.Driver{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_SaveDoesNotMutateInput(t *testing.T) {
	store := NewStore[domain.User]()
	input := &domain.User{}

	saved, err := store.Save(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(0), input.ID)
	assert.Equal(t, int64(1), saved.ID)
}

func TestStore_SaveReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.Payment]()

	created, err := store.Save(ctx, &domain.Payment{Price: 12.5, RideID: 3, State: domain.PaymentStatePending})
	require.NoError(t, err)

	_, err = store.Save(ctx, &domain.Payment{ID: created.ID, Price: 20})
	require.NoError(t, err)

	got, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Payment{ID: created.ID, Price: 20}, got)
}

func TestStore_SaveUnknownID(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.User]()

	_, err := store.Save(ctx, &domain.User{ID: 5})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_FindByIDMissing(t *testing.T) {
	store := NewStore[domain.User]()

	got, err := store.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_FindAllOrderedAndEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.User]()

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for i := 0; i < 5; i++ {
		_, err := store.Save(ctx, &domain.User{})
		require.NoError(t, err)
	}
	require.NoError(t, store.DeleteByID(ctx, 3))

	all, err = store.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.User{{ID: 1}, {ID: 2}, {ID: 4}, {ID: 5}}, all)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.Driver]()

	saved, err := store.Save(ctx, &domain.Driver{})
	require.NoError(t, err)

	require.NoError(t, store.DeleteByID(ctx, saved.ID))
	require.NoError(t, store.DeleteByID(ctx, saved.ID))
	require.NoError(t, store.DeleteByID(ctx, 999))

	got, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.User]()

	first, err := store.Save(ctx, &domain.User{})
	require.NoError(t, err)
	require.NoError(t, store.DeleteByID(ctx, first.ID))

	second, err := store.Save(ctx, &domain.User{})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	store := NewStore[domain.User]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Save(ctx, &domain.User{})
		}()
	}
	wg.Wait()

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)
	assert.Equal(t, int64(50), all[49].ID)
}

func TestRideStore_DerivesPaymentReference(t *testing.T) {
	ctx := context.Background()
	payments := NewPaymentStore()
	rides := NewRideStore(payments)

	ride, err := rides.Save(ctx, &domain.Ride{UserID: 1, DriverID: 2, Time: 30, From: "A", To: "B", PaymentID: 77})
	require.NoError(t, err)
	assert.Equal(t, int64(0), ride.PaymentID)

	payment, err := payments.Save(ctx, &domain.Payment{Price: 12.5, RideID: ride.ID})
	require.NoError(t, err)

	got, err := rides.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, payment.ID, got.PaymentID)

	all, err := rides.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, payment.ID, all[0].PaymentID)

	// Replacing the ride keeps the link owned by the payment.
	updated, err := rides.Save(ctx, &domain.Ride{ID: ride.ID, From: "C"})
	require.NoError(t, err)
	assert.Equal(t, payment.ID, updated.PaymentID)
	assert.Equal(t, int64(0), updated.UserID)

	require.NoError(t, payments.DeleteByID(ctx, payment.ID))
	got, err = rides.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.PaymentID)
}

func TestRideStore_FindByIDMissing(t *testing.T) {
	rides := NewRideStore(NewPaymentStore())

	got, err := rides.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPaymentStore_OnePaymentPerRide(t *testing.T) {
	ctx := context.Background()
	payments := NewPaymentStore()
	rides := NewRideStore(payments)

	ride, err := rides.Save(ctx, &domain.Ride{From: "A", To: "B"})
	require.NoError(t, err)

	first, err := payments.Save(ctx, &domain.Payment{Price: 10, RideID: ride.ID})
	require.NoError(t, err)

	_, err = payments.Save(ctx, &domain.Payment{Price: 11, RideID: ride.ID})
	assert.ErrorIs(t, err, repository.ErrConflict)

	// Re-saving the linked payment itself is not a conflict.
	_, err = payments.Save(ctx, &domain.Payment{ID: first.ID, Price: 12, RideID: ride.ID})
	require.NoError(t, err)

	all, err := payments.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got, err := rides.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.PaymentID)
}

func TestPaymentStore_UnlinkedPaymentsDoNotConflict(t *testing.T) {
	ctx := context.Background()
	payments := NewPaymentStore()

	_, err := payments.Save(ctx, &domain.Payment{Price: 1})
	require.NoError(t, err)
	_, err = payments.Save(ctx, &domain.Payment{Price: 2})
	assert.NoError(t, err)
}

func TestRideStore_DeleteClearsPaymentReference(t *testing.T) {
	ctx := context.Background()
	payments := NewPaymentStore()
	rides := NewRideStore(payments)

	ride, err := rides.Save(ctx, &domain.Ride{From: "A", To: "B"})
	require.NoError(t, err)
	payment, err := payments.Save(ctx, &domain.Payment{Price: 8, RideID: ride.ID, State: domain.PaymentStateCompleted})
	require.NoError(t, err)

	require.NoError(t, rides.DeleteByID(ctx, ride.ID))

	got, err := payments.FindByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Payment{ID: payment.ID, Price: 8, State: domain.PaymentStateCompleted}, got)

	// The ride slot is free again for a new payment.
	other, err := rides.Save(ctx, &domain.Ride{})
	require.NoError(t, err)
	_, err = payments.Save(ctx, &domain.Payment{ID: payment.ID, Price: 8, RideID: other.ID})
	assert.NoError(t, err)
}
