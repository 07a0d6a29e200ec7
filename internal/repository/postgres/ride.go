package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// The payment reference lives on payments.ride_id, so every read joins it in.
const selectRides = `
	SELECT r.id, r.user_id, r.driver_id, r.time, r.from_location, r.to_location, p.id
	FROM rides r
	LEFT JOIN payments p ON p.ride_id = r.id
`

// RideRepository is a PostgreSQL implementation of repository.RideRepository.
type RideRepository struct {
	q Querier
}

// NewRideRepository creates a new PostgreSQL ride repository.
func NewRideRepository(db *sql.DB) *RideRepository {
	return &RideRepository{q: db}
}

// FindAll retrieves all rides.
func (r *RideRepository) FindAll(ctx context.Context) ([]*domain.Ride, error) {
	rows, err := r.q.QueryContext(ctx, selectRides+` ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rides := make([]*domain.Ride, 0)
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

// FindByID retrieves a ride by ID.
// Returns nil if no ride exists with the given ID.
func (r *RideRepository) FindByID(ctx context.Context, id int64) (*domain.Ride, error) {
	ride, err := scanRide(r.q.QueryRowContext(ctx, selectRides+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ride, nil
}

// Save inserts a new ride or replaces every column of an existing one.
func (r *RideRepository) Save(ctx context.Context, ride *domain.Ride) (*domain.Ride, error) {
	if ride.ID == 0 {
		query := `
			INSERT INTO rides (user_id, driver_id, time, from_location, to_location)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		saved := *ride
		saved.PaymentID = 0
		err := r.q.QueryRowContext(ctx, query,
			nullID(ride.UserID),
			nullID(ride.DriverID),
			ride.Time,
			ride.From,
			ride.To,
		).Scan(&saved.ID)
		if err != nil {
			return nil, translateError(err)
		}
		return &saved, nil
	}

	query := `
		UPDATE rides
		SET user_id = $1, driver_id = $2, time = $3, from_location = $4, to_location = $5
		WHERE id = $6
	`

	result, err := r.q.ExecContext(ctx, query,
		nullID(ride.UserID),
		nullID(ride.DriverID),
		ride.Time,
		ride.From,
		ride.To,
		ride.ID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	if err := mustAffect(result); err != nil {
		return nil, err
	}

	saved, err := r.FindByID(ctx, ride.ID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, repository.ErrNotFound
	}
	return saved, nil
}

// DeleteByID removes a ride. Missing rides are ignored.
func (r *RideRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM rides WHERE id = $1`, id)
	return translateError(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRide(row rowScanner) (*domain.Ride, error) {
	var ride domain.Ride
	var userID, driverID, paymentID sql.NullInt64

	if err := row.Scan(
		&ride.ID,
		&userID,
		&driverID,
		&ride.Time,
		&ride.From,
		&ride.To,
		&paymentID,
	); err != nil {
		return nil, err
	}

	if userID.Valid {
		ride.UserID = userID.Int64
	}
	if driverID.Valid {
		ride.DriverID = driverID.Int64
	}
	if paymentID.Valid {
		ride.PaymentID = paymentID.Int64
	}

	return &ride, nil
}

// Ensure RideRepository implements repository.RideRepository.
var _ repository.RideRepository = (*RideRepository)(nil)
