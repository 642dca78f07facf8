// AngelaMos | 2026
// service_test.go

package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type stubRepository struct {
	farms      FarmStats
	finance    FinanceStats
	tasks      map[string]int
	financeErr error
}

func (s *stubRepository) FarmStats(_ context.Context) (FarmStats, error) {
	return s.farms, nil
}

func (s *stubRepository) ProjectStats(_ context.Context) (ProjectStats, error) {
	return ProjectStats{}, nil
}

func (s *stubRepository) AnimalStats(_ context.Context) (AnimalStats, error) {
	return AnimalStats{HealthDistribution: map[string]int{}}, nil
}

func (s *stubRepository) FinanceStats(_ context.Context) (FinanceStats, error) {
	if s.financeErr != nil {
		return FinanceStats{}, s.financeErr
	}
	return s.finance, nil
}

func (s *stubRepository) SoilStats(_ context.Context) (SoilStats, error) {
	return SoilStats{}, nil
}

func (s *stubRepository) WeatherStats(_ context.Context) (WeatherStats, error) {
	return WeatherStats{}, nil
}

func (s *stubRepository) TaskStatusCounts(
	_ context.Context,
) (map[string]int, error) {
	return s.tasks, nil
}

func (s *stubRepository) UserStats(_ context.Context) (UserStats, error) {
	return UserStats{Roles: map[string]int{}}, nil
}

func (s *stubRepository) EmployeeStats(_ context.Context) (EmployeeStats, error) {
	return EmployeeStats{}, nil
}

func (s *stubRepository) VeterinaryStats(
	_ context.Context,
) (VeterinaryStats, error) {
	return VeterinaryStats{}, nil
}

func TestSnapshotAggregatesSections(t *testing.T) {
	repo := &stubRepository{
		farms:   FarmStats{Count: 3, AvgSize: 10, TotalArea: 30},
		finance: FinanceStats{Transactions: 5, NetBalance: 120},
		tasks:   map[string]int{"Pending": 2},
	}
	svc := NewService(repo)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Farms.Count)
	assert.Equal(t, 120.0, snap.Finance.NetBalance)
	assert.Equal(t, map[string]int{"Pending": 2}, snap.Tasks)
}

func TestSnapshotEmptyDatabaseZeroes(t *testing.T) {
	svc := NewService(&stubRepository{})

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, snap.Farms.Count)
	assert.Zero(t, snap.Finance.NetBalance)
	assert.NotNil(t, snap.Tasks)
	assert.Empty(t, snap.Tasks)
}

func TestSnapshotPropagatesFailure(t *testing.T) {
	repo := &stubRepository{financeErr: errors.New("connection reset")}
	svc := NewService(repo)

	_, err := svc.Snapshot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrDatabase)
}
