package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
	"ridehail/internal/repository/postgres"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUserRepository_FindAll(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := postgres.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*domain.User{{ID: 1}, {ID: 2}}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindAll_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := postgres.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserRepository_FindByID_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := postgres.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.FindByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_Insert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := postgres.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users DEFAULT VALUES RETURNING id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	saved, err := repo.Save(context.Background(), &domain.User{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_ExistingID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := postgres.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	saved, err := repo.Save(context.Background(), &domain.User{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Save_UnknownID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := postgres.NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Save(context.Background(), &domain.User{ID: 42})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDriverRepository_DeleteByID_MissingIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := postgres.NewDriverRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM drivers WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverRepository_FindByID_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := postgres.NewDriverRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM drivers WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnError(assert.AnError)

	_, err := repo.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, assert.AnError)
}
