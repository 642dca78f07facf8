// AngelaMos | 2026
// service.go

package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/DennisRono/chavfana-backend/internal/core"
	"github.com/DennisRono/chavfana-backend/internal/farm"
)

type Service struct {
	db   *sqlx.DB
	repo Repository
}

func NewService(db *sqlx.DB, repo Repository) *Service {
	return &Service{db: db, repo: repo}
}

// CreatePlantingProject writes the base row and the planting extension
// in one transaction. A plot reference without a farm resolves the
// farm through the plot.
func (s *Service) CreatePlantingProject(
	ctx context.Context,
	ownerID string,
	req CreatePlantingProjectRequest,
) (*Project, error) {
	farmID := req.FarmID
	if farmID == nil && req.PlotID != nil {
		resolved, err := s.repo.ResolvePlotFarm(ctx, *req.PlotID)
		if err != nil {
			return nil, err
		}
		farmID = &resolved
	}

	base, err := buildBaseProject(
		ownerID, TypePlanting, farmID, req.PlotID,
		req.Name, req.Status, req.StartDate, req.EndDate, req.Notes,
	)
	if err != nil {
		return nil, err
	}

	err = core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txRepo := NewRepository(tx)

		if err := txRepo.CreateProject(ctx, base); err != nil {
			return err
		}

		return txRepo.CreatePlantingDetails(ctx, &PlantingDetails{
			ProjectID:       base.ID,
			SpeciesID:       req.SpeciesID,
			ExpectedYield:   req.ExpectedYield,
			YieldUnit:       req.YieldUnit,
			ExpectedRevenue: req.ExpectedRevenue,
			IrrigationType:  req.IrrigationType,
			SoilAnalysisID:  req.SoilAnalysisID,
		})
	})
	if err != nil {
		return nil, err
	}

	return base, nil
}

func (s *Service) CreateAnimalKeepingProject(
	ctx context.Context,
	ownerID string,
	req CreateAnimalKeepingProjectRequest,
) (*Project, error) {
	base, err := buildBaseProject(
		ownerID, TypeAnimalKeeping, req.FarmID, req.PlotID,
		req.Name, req.Status, req.StartDate, req.EndDate, req.Notes,
	)
	if err != nil {
		return nil, err
	}

	err = core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		txRepo := NewRepository(tx)

		if err := txRepo.CreateProject(ctx, base); err != nil {
			return err
		}

		return txRepo.CreateAnimalKeepingDetails(ctx, &AnimalKeepingDetails{
			ProjectID:        base.ID,
			HousingType:      req.HousingType,
			PastureInfo:      req.PastureInfo,
			CarryingCapacity: req.CarryingCapacity,
		})
	})
	if err != nil {
		return nil, err
	}

	return base, nil
}

func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListProjects(
	ctx context.Context,
) ([]ProjectDetailResponse, error) {
	return s.repo.ListDetailed(ctx)
}

func (s *Service) ListProjectsByFarm(
	ctx context.Context,
	farmID string,
) ([]Project, error) {
	return s.repo.ListByFarm(ctx, farmID)
}

func (s *Service) CreatePlantingEvent(
	ctx context.Context,
	actorID string,
	req CreatePlantingEventRequest,
) (*PlantingEvent, error) {
	project, err := s.repo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if project.ProjectType != TypePlanting {
		return nil, fmt.Errorf(
			"planting events require a planting project: %w",
			core.ErrBusinessRule,
		)
	}

	if err := core.DateOrdered(
		&req.PlantingDate,
		req.EndDate,
		"planting_date",
		"end_date",
	); err != nil {
		return nil, err
	}

	areaUnit := farm.AreaUnitHectare
	if req.AreaUnit != nil {
		areaUnit = *req.AreaUnit
	}

	stage := StageSeedling
	if req.Stage != nil {
		stage = *req.Stage
	}

	event := &PlantingEvent{
		Record:       core.Record{ID: uuid.New().String()},
		ProjectID:    req.ProjectID,
		PlotID:       req.PlotID,
		PlantingDate: req.PlantingDate,
		EndDate:      req.EndDate,
		AreaSize:     req.AreaSize,
		AreaUnit:     areaUnit,
		Stage:        stage,
		Notes:        req.Notes,
	}

	if req.SpeciesDetails != nil {
		event.SpeciesDetails = *req.SpeciesDetails
	}

	if actorID != "" {
		event.CreatedByID = &actorID
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *Service) ListPlantingEvents(
	ctx context.Context,
	projectID string,
) ([]PlantingEvent, error) {
	return s.repo.ListEventsByProject(ctx, projectID)
}

func buildBaseProject(
	ownerID, projectType string,
	farmID, plotID *string,
	name string,
	status *string,
	startDate time.Time,
	endDate *time.Time,
	notes *string,
) (*Project, error) {
	if farmID == nil && plotID == nil {
		return nil, fmt.Errorf(
			"project requires a farm or a plot: %w",
			core.ErrBusinessRule,
		)
	}

	if err := core.DateOrdered(
		&startDate,
		endDate,
		"start_date",
		"end_date",
	); err != nil {
		return nil, err
	}

	st := StatusPlanning
	if status != nil {
		st = *status
	}

	project := &Project{
		Record:      core.Record{ID: uuid.New().String()},
		FarmID:      farmID,
		PlotID:      plotID,
		OwnerID:     ownerID,
		Name:        name,
		ProjectType: projectType,
		Status:      st,
		StartDate:   startDate,
		EndDate:     endDate,
		Notes:       notes,
	}

	if ownerID != "" {
		project.CreatedByID = &ownerID
	}

	return project, nil
}
