// AngelaMos | 2026
// repository_test.go

package farm

import (
	"context"
	"testing"
	"time"

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

func TestCreateFarm(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO farms`).
		WithArgs(
			"farm-1", "owner-1", "Green Acres", nil, "KE", nil, nil,
			// unset json.RawMessage columns arrive as typed nil []byte,
			// not driver nil
			[]byte(nil), []byte(nil), 12.5, "HECTARE", "Africa/Nairobi", nil,
		).
		WillReturnRows(
			sqlmock.NewRows([]string{"created_at", "updated_at", "version"}).
				AddRow(now, now, 1),
		)

	farm := &Farm{
		Record:   core.Record{ID: "farm-1"},
		OwnerID:  "owner-1",
		Name:     "Green Acres",
		Country:  "KE",
		AreaSize: 12.5,
		AreaUnit: AreaUnitHectare,
		TimeZone: "Africa/Nairobi",
	}

	require.NoError(t, repo.Create(context.Background(), farm))
	assert.Equal(t, 1, farm.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFarmUnknownOwner(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO farms`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	farm := &Farm{
		Record:  core.Record{ID: "farm-1"},
		OwnerID: "nobody",
		Name:    "Green Acres",
		Country: "KE",
	}

	err := repo.Create(context.Background(), farm)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestGetFarmByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM farms`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestCreatePlotDuplicateCode(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO plots`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	plot := &Plot{
		Record:   core.Record{ID: "plot-1"},
		FarmID:   "farm-1",
		Name:     "North field",
		PlotCode: "N-01",
	}

	err := repo.CreatePlot(context.Background(), plot)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestSoftDeletePlot(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE plots`).
		WithArgs("plot-1", "actor-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(
		t,
		repo.SoftDeletePlot(context.Background(), "plot-1", "actor-1"),
	)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeletePlotAlreadyGone(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE plots`).
		WithArgs("plot-1", "actor-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDeletePlot(context.Background(), "plot-1", "actor-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
