package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// PaymentRepository is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentRepository struct {
	q Querier
}

// NewPaymentRepository creates a new PostgreSQL payment repository.
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{q: db}
}

// FindAll retrieves all payments.
func (r *PaymentRepository) FindAll(ctx context.Context) ([]*domain.Payment, error) {
	query := `SELECT id, price, ride_id, state FROM payments ORDER BY id`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

// FindByID retrieves a payment by ID.
// Returns nil if no payment exists with the given ID.
func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	query := `SELECT id, price, ride_id, state FROM payments WHERE id = $1`

	payment, err := scanPayment(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}

// Save inserts a new payment or replaces every column of an existing one.
func (r *PaymentRepository) Save(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	var state sql.NullString
	if payment.State != "" {
		state = sql.NullString{String: string(payment.State), Valid: true}
	}

	saved := *payment

	if payment.ID == 0 {
		query := `
			INSERT INTO payments (price, ride_id, state)
			VALUES ($1, $2, $3)
			RETURNING id
		`

		err := r.q.QueryRowContext(ctx, query, payment.Price, nullID(payment.RideID), state).Scan(&saved.ID)
		if err != nil {
			return nil, translateError(err)
		}
		return &saved, nil
	}

	query := `UPDATE payments SET price = $1, ride_id = $2, state = $3 WHERE id = $4`

	result, err := r.q.ExecContext(ctx, query, payment.Price, nullID(payment.RideID), state, payment.ID)
	if err != nil {
		return nil, translateError(err)
	}
	if err := mustAffect(result); err != nil {
		return nil, err
	}

	return &saved, nil
}

// DeleteByID removes a payment. Missing payments are ignored.
func (r *PaymentRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	return translateError(err)
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var rideID sql.NullInt64
	var state sql.NullString

	if err := row.Scan(&payment.ID, &payment.Price, &rideID, &state); err != nil {
		return nil, err
	}

	if rideID.Valid {
		payment.RideID = rideID.Int64
	}
	if state.Valid {
		payment.State = domain.PaymentState(state.String)
	}

	return &payment, nil
}

// Ensure PaymentRepository implements repository.PaymentRepository.
var _ repository.PaymentRepository = (*PaymentRepository)(nil)
