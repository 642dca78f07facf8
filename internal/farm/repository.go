// AngelaMos | 2026
// repository.go

package farm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const farmColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       owner_id, name, description, country, city, address,
	       geo_coordinate, rectangle_boundary, area_size, area_unit, time_zone`

const plotColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       farm_id, name, plot_code, area_size, area_unit,
	       soil_profile, gps_bounds, current_crop_id`

type Repository interface {
	Create(ctx context.Context, farm *Farm) error
	GetByID(ctx context.Context, id string) (*Farm, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Farm, error)
	Update(ctx context.Context, farm *Farm) error

	CreatePlot(ctx context.Context, plot *Plot) error
	GetPlotByID(ctx context.Context, id string) (*Plot, error)
	ListPlotsByFarm(ctx context.Context, farmID string) ([]Plot, error)
	UpdatePlot(ctx context.Context, plot *Plot) error
	SoftDeletePlot(ctx context.Context, id, actorID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, farm *Farm) error {
	query := `
		INSERT INTO farms (id, owner_id, name, description, country, city,
		                   address, geo_coordinate, rectangle_boundary,
		                   area_size, area_unit, time_zone, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, farm, query,
		farm.ID,
		farm.OwnerID,
		farm.Name,
		farm.Description,
		farm.Country,
		farm.City,
		farm.Address,
		farm.GeoCoordinate,
		farm.RectangleBoundary,
		farm.AreaSize,
		farm.AreaUnit,
		farm.TimeZone,
		farm.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create farm: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create farm: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Farm, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM farms
		WHERE id = $1 AND is_deleted = FALSE`, farmColumns)

	var farm Farm
	err := r.db.GetContext(ctx, &farm, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get farm: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get farm: %w", err)
	}

	return &farm, nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]Farm, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM farms
		WHERE owner_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC`, farmColumns)

	var farms []Farm
	if err := r.db.SelectContext(ctx, &farms, query, ownerID); err != nil {
		return nil, fmt.Errorf("list farms by owner: %w", err)
	}

	return farms, nil
}

func (r *repository) Update(ctx context.Context, farm *Farm) error {
	query := `
		UPDATE farms
		SET name = $2, description = $3, country = $4, city = $5,
		    address = $6, geo_coordinate = $7, rectangle_boundary = $8,
		    area_size = $9, area_unit = $10, time_zone = $11,
		    updated_by_id = $12, updated_at = NOW(), version = version + 1
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING updated_at, version`

	err := r.db.GetContext(ctx, farm, query,
		farm.ID,
		farm.Name,
		farm.Description,
		farm.Country,
		farm.City,
		farm.Address,
		farm.GeoCoordinate,
		farm.RectangleBoundary,
		farm.AreaSize,
		farm.AreaUnit,
		farm.TimeZone,
		farm.UpdatedByID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update farm: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update farm: %w", err)
	}

	return nil
}

func (r *repository) CreatePlot(ctx context.Context, plot *Plot) error {
	query := `
		INSERT INTO plots (id, farm_id, name, plot_code, area_size,
		                   area_unit, soil_profile, gps_bounds,
		                   current_crop_id, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, plot, query,
		plot.ID,
		plot.FarmID,
		plot.Name,
		plot.PlotCode,
		plot.AreaSize,
		plot.AreaUnit,
		plot.SoilProfile,
		plot.GPSBounds,
		plot.CurrentCropID,
		plot.CreatedByID,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create plot: %w", core.ErrDuplicateKey)
		}
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create plot: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create plot: %w", err)
	}

	return nil
}

func (r *repository) GetPlotByID(
	ctx context.Context,
	id string,
) (*Plot, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM plots
		WHERE id = $1 AND is_deleted = FALSE`, plotColumns)

	var plot Plot
	err := r.db.GetContext(ctx, &plot, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get plot: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get plot: %w", err)
	}

	return &plot, nil
}

func (r *repository) ListPlotsByFarm(
	ctx context.Context,
	farmID string,
) ([]Plot, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM plots
		WHERE farm_id = $1 AND is_deleted = FALSE
		ORDER BY plot_code ASC`, plotColumns)

	var plots []Plot
	if err := r.db.SelectContext(ctx, &plots, query, farmID); err != nil {
		return nil, fmt.Errorf("list plots by farm: %w", err)
	}

	return plots, nil
}

func (r *repository) UpdatePlot(ctx context.Context, plot *Plot) error {
	query := `
		UPDATE plots
		SET name = $2, plot_code = $3, area_size = $4, area_unit = $5,
		    soil_profile = $6, gps_bounds = $7, current_crop_id = $8,
		    updated_by_id = $9, updated_at = NOW(), version = version + 1
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING updated_at, version`

	err := r.db.GetContext(ctx, plot, query,
		plot.ID,
		plot.Name,
		plot.PlotCode,
		plot.AreaSize,
		plot.AreaUnit,
		plot.SoilProfile,
		plot.GPSBounds,
		plot.CurrentCropID,
		plot.UpdatedByID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update plot: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("update plot: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update plot: %w", err)
	}

	return nil
}

func (r *repository) SoftDeletePlot(
	ctx context.Context,
	id, actorID string,
) error {
	query := `
		UPDATE plots
		SET is_deleted = TRUE, deleted_at = NOW(), deleted_by_id = $2,
		    updated_at = NOW(), version = version + 1
		WHERE id = $1 AND is_deleted = FALSE`

	var actor *string
	if actorID != "" {
		actor = &actorID
	}

	result, err := r.db.ExecContext(ctx, query, id, actor)
	if err != nil {
		return fmt.Errorf("delete plot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete plot: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete plot: %w", core.ErrNotFound)
	}

	return nil
}
