// AngelaMos | 2026
// repository.go

package observation

import (
	"context"
	"fmt"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const soilColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       plot_id, sample_date, phosphorous, potassium, nitrogen, soil_ph,
	       organic_matter, notes, lab_report_url`

const weatherColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       farm_id, observed_at, temperature, humidity, rainfall_mm,
	       wind_speed, wind_direction, notes`

const seasonColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       farm_id, name, start_date, end_date, notes`

type Repository interface {
	CreateSoilAnalysis(ctx context.Context, analysis *SoilAnalysis) error
	ListSoilAnalysesByPlot(
		ctx context.Context,
		plotID string,
	) ([]SoilAnalysis, error)

	CreateWeatherObservation(
		ctx context.Context,
		observation *WeatherObservation,
	) error
	ListWeatherByFarm(
		ctx context.Context,
		farmID string,
	) ([]WeatherObservation, error)

	CreateSeason(ctx context.Context, season *Season) error
	ListSeasonsByFarm(ctx context.Context, farmID string) ([]Season, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSoilAnalysis(
	ctx context.Context,
	analysis *SoilAnalysis,
) error {
	query := `
		INSERT INTO soil_analyses (id, plot_id, sample_date, phosphorous,
		                           potassium, nitrogen, soil_ph,
		                           organic_matter, notes, lab_report_url,
		                           created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, analysis, query,
		analysis.ID,
		analysis.PlotID,
		analysis.SampleDate,
		analysis.Phosphorous,
		analysis.Potassium,
		analysis.Nitrogen,
		analysis.SoilPH,
		analysis.OrganicMatter,
		analysis.Notes,
		analysis.LabReportURL,
		analysis.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create soil analysis: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create soil analysis: %w", err)
	}

	return nil
}

func (r *repository) ListSoilAnalysesByPlot(
	ctx context.Context,
	plotID string,
) ([]SoilAnalysis, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM soil_analyses
		WHERE plot_id = $1 AND is_deleted = FALSE
		ORDER BY sample_date DESC`, soilColumns)

	var analyses []SoilAnalysis
	if err := r.db.SelectContext(ctx, &analyses, query, plotID); err != nil {
		return nil, fmt.Errorf("list soil analyses: %w", err)
	}

	return analyses, nil
}

func (r *repository) CreateWeatherObservation(
	ctx context.Context,
	observation *WeatherObservation,
) error {
	query := `
		INSERT INTO weather_observations (id, farm_id, observed_at,
		                                  temperature, humidity, rainfall_mm,
		                                  wind_speed, wind_direction, notes,
		                                  created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, observation, query,
		observation.ID,
		observation.FarmID,
		observation.ObservedAt,
		observation.Temperature,
		observation.Humidity,
		observation.RainfallMM,
		observation.WindSpeed,
		observation.WindDirection,
		observation.Notes,
		observation.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf(
				"create weather observation: %w",
				core.ErrInvalidInput,
			)
		}
		return fmt.Errorf("create weather observation: %w", err)
	}

	return nil
}

func (r *repository) ListWeatherByFarm(
	ctx context.Context,
	farmID string,
) ([]WeatherObservation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM weather_observations
		WHERE farm_id = $1 AND is_deleted = FALSE
		ORDER BY observed_at DESC`, weatherColumns)

	var observations []WeatherObservation
	err := r.db.SelectContext(ctx, &observations, query, farmID)
	if err != nil {
		return nil, fmt.Errorf("list weather observations: %w", err)
	}

	return observations, nil
}

func (r *repository) CreateSeason(ctx context.Context, season *Season) error {
	query := `
		INSERT INTO seasons (id, farm_id, name, start_date, end_date, notes,
		                     created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, season, query,
		season.ID,
		season.FarmID,
		season.Name,
		season.StartDate,
		season.EndDate,
		season.Notes,
		season.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create season: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create season: %w", err)
	}

	return nil
}

func (r *repository) ListSeasonsByFarm(
	ctx context.Context,
	farmID string,
) ([]Season, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM seasons
		WHERE farm_id = $1 AND is_deleted = FALSE
		ORDER BY start_date DESC`, seasonColumns)

	var seasons []Season
	if err := r.db.SelectContext(ctx, &seasons, query, farmID); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return seasons, nil
}
