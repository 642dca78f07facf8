// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
	)
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewRepository(sqlx.NewDb(mockDB, "pgx")), mock
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	user := &User{
		Record:       core.Record{ID: "user-1"},
		Email:        "farmer@example.com",
		PasswordHash: "$argon2id$...",
		FullName:     "Test Farmer",
		Role:         "FARMER",
		IsActive:     true,
	}

	err := repo.Create(context.Background(), user)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM users`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdatePasswordNoMatch(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("missing", "new-hash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), "missing", "new-hash")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestStampLastLogin(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE users`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.StampLastLogin(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployeeAlreadyEmployed(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO employees`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	emp := &Employee{
		Record:   core.Record{ID: "emp-1"},
		UserID:   "user-1",
		FarmID:   "farm-1",
		Position: "Herd manager",
	}

	err := repo.CreateEmployee(context.Background(), emp)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}
