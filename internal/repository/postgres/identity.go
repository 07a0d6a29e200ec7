package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// identityRepository persists entities that carry nothing but their ID.
type identityRepository[T any, PT domain.Entity[T]] struct {
	q     Querier
	table string
}

// FindAll retrieves every row ordered by ID.
func (r *identityRepository[T, PT]) FindAll(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf(`SELECT id FROM %s ORDER BY id`, r.table)
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entities := make([]*T, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		entity := PT(new(T))
		entity.SetID(id)
		entities = append(entities, (*T)(entity))
	}
	return entities, rows.Err()
}

// FindByID retrieves a row by ID.
// Returns nil if no row exists with the given ID.
func (r *identityRepository[T, PT]) FindByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id = $1`, r.table)

	var found int64
	err := r.q.QueryRowContext(ctx, query, id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	entity := PT(new(T))
	entity.SetID(found)
	return (*T)(entity), nil
}

// Save inserts a new row when the entity has no ID. With an ID there are no
// columns to replace, so Save only confirms the row exists.
func (r *identityRepository[T, PT]) Save(ctx context.Context, entity *T) (*T, error) {
	id := PT(entity).GetID()
	if id != 0 {
		existing, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, repository.ErrNotFound
		}
		return existing, nil
	}

	query := fmt.Sprintf(`INSERT INTO %s DEFAULT VALUES RETURNING id`, r.table)
	if err := r.q.QueryRowContext(ctx, query).Scan(&id); err != nil {
		return nil, translateError(err)
	}

	saved := PT(new(T))
	saved.SetID(id)
	return (*T)(saved), nil
}

// DeleteByID removes a row. Missing rows are ignored.
func (r *identityRepository[T, PT]) DeleteByID(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	_, err := r.q.ExecContext(ctx, query, id)
	return translateError(err)
}
