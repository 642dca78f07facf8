// AngelaMos | 2026
// service_test.go

package project

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type stubRepository struct {
	projects map[string]*Project
	events   []*PlantingEvent
	plotFarm map[string]string
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		projects: make(map[string]*Project),
		plotFarm: make(map[string]string),
	}
}

func (s *stubRepository) CreateProject(_ context.Context, p *Project) error {
	s.projects[p.ID] = p
	return nil
}

func (s *stubRepository) CreatePlantingDetails(
	_ context.Context,
	_ *PlantingDetails,
) error {
	return nil
}

func (s *stubRepository) CreateAnimalKeepingDetails(
	_ context.Context,
	_ *AnimalKeepingDetails,
) error {
	return nil
}

func (s *stubRepository) GetByID(_ context.Context, id string) (*Project, error) {
	p, ok := s.projects[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return p, nil
}

func (s *stubRepository) ListByFarm(
	_ context.Context,
	_ string,
) ([]Project, error) {
	return nil, nil
}

func (s *stubRepository) ListDetailed(
	_ context.Context,
) ([]ProjectDetailResponse, error) {
	return nil, nil
}

func (s *stubRepository) ResolvePlotFarm(
	_ context.Context,
	plotID string,
) (string, error) {
	farmID, ok := s.plotFarm[plotID]
	if !ok {
		return "", core.ErrNotFound
	}
	return farmID, nil
}

func (s *stubRepository) CreateEvent(
	_ context.Context,
	event *PlantingEvent,
) error {
	s.events = append(s.events, event)
	return nil
}

func (s *stubRepository) ListEventsByProject(
	_ context.Context,
	_ string,
) ([]PlantingEvent, error) {
	return nil, nil
}

func TestBuildBaseProjectRequiresLocation(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := buildBaseProject(
		"owner-1", TypePlanting, nil, nil,
		"Spring maize", nil, start, nil, nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBusinessRule)
}

func TestBuildBaseProjectRejectsInvertedDates(t *testing.T) {
	farmID := "farm-1"
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := buildBaseProject(
		"owner-1", TypePlanting, &farmID, nil,
		"Spring maize", nil, start, &end, nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestBuildBaseProjectDefaults(t *testing.T) {
	farmID := "farm-1"
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	project, err := buildBaseProject(
		"owner-1", TypeAnimalKeeping, &farmID, nil,
		"Dairy herd", nil, start, nil, nil,
	)
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, StatusPlanning, project.Status)
	assert.Equal(t, TypeAnimalKeeping, project.ProjectType)
	require.NotNil(t, project.CreatedByID)
	assert.Equal(t, "owner-1", *project.CreatedByID)
}

func TestCreatePlantingEventRequiresPlantingProject(t *testing.T) {
	repo := newStubRepository()
	repo.projects["proj-1"] = &Project{
		Record:      core.Record{ID: "proj-1"},
		ProjectType: TypeAnimalKeeping,
	}
	svc := NewService(nil, repo)

	_, err := svc.CreatePlantingEvent(
		context.Background(),
		"actor-1",
		CreatePlantingEventRequest{
			ProjectID:    "proj-1",
			PlotID:       "plot-1",
			PlantingDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			AreaSize:     2.5,
		},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBusinessRule)
	assert.Empty(t, repo.events)
}

func TestCreatePlantingEventDefaults(t *testing.T) {
	repo := newStubRepository()
	repo.projects["proj-1"] = &Project{
		Record:      core.Record{ID: "proj-1"},
		ProjectType: TypePlanting,
	}
	svc := NewService(nil, repo)

	event, err := svc.CreatePlantingEvent(
		context.Background(),
		"actor-1",
		CreatePlantingEventRequest{
			ProjectID:    "proj-1",
			PlotID:       "plot-1",
			PlantingDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			AreaSize:     2.5,
		},
	)
	require.NoError(t, err)
	assert.Equal(t, StageSeedling, event.Stage)
	assert.Equal(t, "HECTARE", event.AreaUnit)
	require.Len(t, repo.events, 1)
}

func TestCreatePlantingEventRejectsInvertedDates(t *testing.T) {
	repo := newStubRepository()
	repo.projects["proj-1"] = &Project{
		Record:      core.Record{ID: "proj-1"},
		ProjectType: TypePlanting,
	}
	svc := NewService(nil, repo)

	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreatePlantingEvent(
		context.Background(),
		"actor-1",
		CreatePlantingEventRequest{
			ProjectID:    "proj-1",
			PlotID:       "plot-1",
			PlantingDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			EndDate:      &end,
			AreaSize:     2.5,
		},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestCreatePlantingEventUnknownProject(t *testing.T) {
	svc := NewService(nil, newStubRepository())

	_, err := svc.CreatePlantingEvent(
		context.Background(),
		"actor-1",
		CreatePlantingEventRequest{
			ProjectID:    "missing",
			PlotID:       "plot-1",
			PlantingDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			AreaSize:     1,
		},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
