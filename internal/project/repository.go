// AngelaMos | 2026
// repository.go

package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const projectColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       farm_id, plot_id, owner_id, name, project_type, status,
	       start_date, end_date, notes`

const eventColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       project_id, plot_id, planting_date, end_date, area_size,
	       area_unit, stage, notes, species_details`

type Repository interface {
	CreateProject(ctx context.Context, project *Project) error
	CreatePlantingDetails(ctx context.Context, details *PlantingDetails) error
	CreateAnimalKeepingDetails(
		ctx context.Context,
		details *AnimalKeepingDetails,
	) error
	GetByID(ctx context.Context, id string) (*Project, error)
	ListByFarm(ctx context.Context, farmID string) ([]Project, error)
	ListDetailed(ctx context.Context) ([]ProjectDetailResponse, error)
	ResolvePlotFarm(ctx context.Context, plotID string) (string, error)

	CreateEvent(ctx context.Context, event *PlantingEvent) error
	ListEventsByProject(
		ctx context.Context,
		projectID string,
	) ([]PlantingEvent, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProject(
	ctx context.Context,
	project *Project,
) error {
	query := `
		INSERT INTO projects (id, farm_id, plot_id, owner_id, name,
		                      project_type, status, start_date, end_date,
		                      notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, project, query,
		project.ID,
		project.FarmID,
		project.PlotID,
		project.OwnerID,
		project.Name,
		project.ProjectType,
		project.Status,
		project.StartDate,
		project.EndDate,
		project.Notes,
		project.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create project: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

func (r *repository) CreatePlantingDetails(
	ctx context.Context,
	details *PlantingDetails,
) error {
	query := `
		INSERT INTO planting_projects (project_id, species_id, expected_yield,
		                               yield_unit, expected_revenue,
		                               irrigation_type, soil_analysis_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		details.ProjectID,
		details.SpeciesID,
		details.ExpectedYield,
		details.YieldUnit,
		details.ExpectedRevenue,
		details.IrrigationType,
		details.SoilAnalysisID,
	)
	if err != nil {
		return fmt.Errorf("create planting details: %w", err)
	}

	return nil
}

func (r *repository) CreateAnimalKeepingDetails(
	ctx context.Context,
	details *AnimalKeepingDetails,
) error {
	query := `
		INSERT INTO animal_keeping_projects (project_id, housing_type,
		                                     pasture_info, carrying_capacity)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query,
		details.ProjectID,
		details.HousingType,
		details.PastureInfo,
		details.CarryingCapacity,
	)
	if err != nil {
		return fmt.Errorf("create animal keeping details: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE id = $1 AND is_deleted = FALSE`, projectColumns)

	var project Project
	err := r.db.GetContext(ctx, &project, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get project: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

func (r *repository) ListByFarm(
	ctx context.Context,
	farmID string,
) ([]Project, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM projects
		WHERE farm_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC`, projectColumns)

	var projects []Project
	if err := r.db.SelectContext(ctx, &projects, query, farmID); err != nil {
		return nil, fmt.Errorf("list projects by farm: %w", err)
	}

	return projects, nil
}

// detailRow flattens the base row, owner, and both extensions into a
// single scan target. Extension presence is detected by the nullable
// project_id echo columns.
type detailRow struct {
	Project

	OwnerEmail    string `db:"owner_email"`
	OwnerFullName string `db:"owner_full_name"`
	OwnerRole     string `db:"owner_role"`

	PlantingProjectID *string  `db:"pp_project_id"`
	SpeciesID         *string  `db:"pp_species_id"`
	ExpectedYield     *float64 `db:"pp_expected_yield"`
	YieldUnit         *string  `db:"pp_yield_unit"`
	ExpectedRevenue   *float64 `db:"pp_expected_revenue"`
	IrrigationType    *string  `db:"pp_irrigation_type"`
	SoilAnalysisID    *string  `db:"pp_soil_analysis_id"`

	AnimalProjectID  *string  `db:"ak_project_id"`
	HousingType      *string  `db:"ak_housing_type"`
	PastureInfo      *string  `db:"ak_pasture_info"`
	CarryingCapacity *float64 `db:"ak_carrying_capacity"`
}

func (r *repository) ListDetailed(
	ctx context.Context,
) ([]ProjectDetailResponse, error) {
	query := `
		SELECT p.id, p.created_at, p.updated_at, p.created_by_id,
		       p.updated_by_id, p.is_deleted, p.deleted_at, p.deleted_by_id,
		       p.version, p.farm_id, p.plot_id, p.owner_id, p.name,
		       p.project_type, p.status, p.start_date, p.end_date, p.notes,
		       u.email AS owner_email,
		       u.full_name AS owner_full_name,
		       u.role AS owner_role,
		       pp.project_id AS pp_project_id,
		       pp.species_id AS pp_species_id,
		       pp.expected_yield AS pp_expected_yield,
		       pp.yield_unit AS pp_yield_unit,
		       pp.expected_revenue AS pp_expected_revenue,
		       pp.irrigation_type AS pp_irrigation_type,
		       pp.soil_analysis_id AS pp_soil_analysis_id,
		       ak.project_id AS ak_project_id,
		       ak.housing_type AS ak_housing_type,
		       ak.pasture_info AS ak_pasture_info,
		       ak.carrying_capacity AS ak_carrying_capacity
		FROM projects p
		JOIN users u ON u.id = p.owner_id
		LEFT JOIN planting_projects pp ON pp.project_id = p.id
		LEFT JOIN animal_keeping_projects ak ON ak.project_id = p.id
		WHERE p.is_deleted = FALSE
		ORDER BY p.created_at DESC`

	var rows []detailRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	plotsByFarm, err := r.loadPlotsForFarms(ctx, rows)
	if err != nil {
		return nil, err
	}

	details := make([]ProjectDetailResponse, 0, len(rows))
	for i := range rows {
		details = append(details, assembleDetail(&rows[i], plotsByFarm))
	}

	return details, nil
}

func (r *repository) loadPlotsForFarms(
	ctx context.Context,
	rows []detailRow,
) (map[string][]PlotSummary, error) {
	farmIDs := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i := range rows {
		if rows[i].FarmID == nil {
			continue
		}
		if _, ok := seen[*rows[i].FarmID]; ok {
			continue
		}
		seen[*rows[i].FarmID] = struct{}{}
		farmIDs = append(farmIDs, *rows[i].FarmID)
	}

	plotsByFarm := make(map[string][]PlotSummary, len(farmIDs))
	if len(farmIDs) == 0 {
		return plotsByFarm, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, farm_id, name, plot_code, area_size, area_unit
		FROM plots
		WHERE farm_id IN (?) AND is_deleted = FALSE
		ORDER BY plot_code ASC`, farmIDs)
	if err != nil {
		return nil, fmt.Errorf("build plots query: %w", err)
	}

	var plots []PlotSummary
	err = r.db.SelectContext(ctx, &plots, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("load farm plots: %w", err)
	}

	for _, p := range plots {
		plotsByFarm[p.FarmID] = append(plotsByFarm[p.FarmID], p)
	}

	return plotsByFarm, nil
}

func assembleDetail(
	row *detailRow,
	plotsByFarm map[string][]PlotSummary,
) ProjectDetailResponse {
	detail := ProjectDetailResponse{
		ProjectResponse: ToProjectResponse(&row.Project),
		Owner: &OwnerSummary{
			ID:       row.OwnerID,
			Email:    row.OwnerEmail,
			FullName: row.OwnerFullName,
			Role:     row.OwnerRole,
		},
		Plots: []PlotSummary{},
	}

	if row.PlantingProjectID != nil {
		detail.Planting = &PlantingDetailsResponse{
			SpeciesID:       row.SpeciesID,
			ExpectedYield:   row.ExpectedYield,
			YieldUnit:       row.YieldUnit,
			ExpectedRevenue: row.ExpectedRevenue,
			IrrigationType:  row.IrrigationType,
			SoilAnalysisID:  row.SoilAnalysisID,
		}
	}

	if row.AnimalProjectID != nil {
		detail.AnimalKeeping = &AnimalKeepingDetailsResponse{
			HousingType:      row.HousingType,
			PastureInfo:      row.PastureInfo,
			CarryingCapacity: row.CarryingCapacity,
		}
	}

	if row.FarmID != nil {
		if plots, ok := plotsByFarm[*row.FarmID]; ok {
			detail.Plots = plots
		}
	}

	return detail
}

func (r *repository) ResolvePlotFarm(
	ctx context.Context,
	plotID string,
) (string, error) {
	query := `
		SELECT farm_id
		FROM plots
		WHERE id = $1 AND is_deleted = FALSE`

	var farmID string
	err := r.db.GetContext(ctx, &farmID, query, plotID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("resolve plot farm: %w", core.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("resolve plot farm: %w", err)
	}

	return farmID, nil
}

func (r *repository) CreateEvent(
	ctx context.Context,
	event *PlantingEvent,
) error {
	query := `
		INSERT INTO planting_events (id, project_id, plot_id, planting_date,
		                             end_date, area_size, area_unit, stage,
		                             notes, species_details, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, event, query,
		event.ID,
		event.ProjectID,
		event.PlotID,
		event.PlantingDate,
		event.EndDate,
		event.AreaSize,
		event.AreaUnit,
		event.Stage,
		event.Notes,
		event.SpeciesDetails,
		event.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create planting event: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create planting event: %w", err)
	}

	return nil
}

func (r *repository) ListEventsByProject(
	ctx context.Context,
	projectID string,
) ([]PlantingEvent, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM planting_events
		WHERE project_id = $1 AND is_deleted = FALSE
		ORDER BY planting_date DESC`, eventColumns)

	var events []PlantingEvent
	if err := r.db.SelectContext(ctx, &events, query, projectID); err != nil {
		return nil, fmt.Errorf("list planting events: %w", err)
	}

	return events, nil
}
