// AngelaMos | 2026
// repository.go

package stats

import (
	"context"
	"fmt"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type Repository interface {
	FarmStats(ctx context.Context) (FarmStats, error)
	ProjectStats(ctx context.Context) (ProjectStats, error)
	AnimalStats(ctx context.Context) (AnimalStats, error)
	FinanceStats(ctx context.Context) (FinanceStats, error)
	SoilStats(ctx context.Context) (SoilStats, error)
	WeatherStats(ctx context.Context) (WeatherStats, error)
	TaskStatusCounts(ctx context.Context) (map[string]int, error)
	UserStats(ctx context.Context) (UserStats, error)
	EmployeeStats(ctx context.Context) (EmployeeStats, error)
	VeterinaryStats(ctx context.Context) (VeterinaryStats, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) FarmStats(ctx context.Context) (FarmStats, error) {
	var out FarmStats
	query := `
		SELECT
			COUNT(*) AS count,
			COALESCE(AVG(area_size), 0) AS avg_size,
			COALESCE(SUM(area_size), 0) AS total_area
		FROM farms
		WHERE is_deleted = FALSE`

	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return out, fmt.Errorf("farm stats: %w", err)
	}
	return out, nil
}

func (r *repository) ProjectStats(ctx context.Context) (ProjectStats, error) {
	var out ProjectStats
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'Active') AS active,
			COUNT(*) FILTER (WHERE status = 'Completed') AS completed,
			COUNT(*) FILTER (WHERE project_type = 'PlantingProject') AS planting_projects
		FROM projects
		WHERE is_deleted = FALSE`

	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return out, fmt.Errorf("project stats: %w", err)
	}

	plantingQuery := `
		SELECT
			(SELECT COALESCE(SUM(area_size), 0)
			 FROM planting_events
			 WHERE is_deleted = FALSE) AS total_planted_area,
			(SELECT COALESCE(AVG(pp.expected_revenue), 0)
			 FROM planting_projects pp
			 JOIN projects p ON p.id = pp.project_id
			 WHERE p.is_deleted = FALSE) AS avg_expected_revenue`

	var planting struct {
		TotalPlantedArea   float64 `db:"total_planted_area"`
		AvgExpectedRevenue float64 `db:"avg_expected_revenue"`
	}
	if err := r.db.GetContext(ctx, &planting, plantingQuery); err != nil {
		return out, fmt.Errorf("planting project stats: %w", err)
	}
	out.TotalPlantedArea = planting.TotalPlantedArea
	out.AvgExpectedRevenue = planting.AvgExpectedRevenue
	return out, nil
}

func (r *repository) AnimalStats(ctx context.Context) (AnimalStats, error) {
	out := AnimalStats{HealthDistribution: make(map[string]int)}
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active = TRUE) AS active,
			COALESCE(AVG(weight), 0) AS avg_weight
		FROM animals
		WHERE is_deleted = FALSE`

	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return out, fmt.Errorf("animal stats: %w", err)
	}

	healthQuery := `
		SELECT health_status, COUNT(*) AS count
		FROM animals
		WHERE is_deleted = FALSE AND health_status IS NOT NULL
		GROUP BY health_status`

	var rows []struct {
		HealthStatus string `db:"health_status"`
		Count        int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, healthQuery); err != nil {
		return out, fmt.Errorf("animal health distribution: %w", err)
	}
	for _, row := range rows {
		out.HealthDistribution[row.HealthStatus] = row.Count
	}
	return out, nil
}

func (r *repository) FinanceStats(ctx context.Context) (FinanceStats, error) {
	var out FinanceStats
	// Expenses and purchases are stored negative, so income is the
	// positive slice and expense the absolute value of the negative one.
	query := `
		SELECT
			COUNT(*) AS transactions,
			COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0) AS income_total,
			COALESCE(ABS(SUM(amount) FILTER (WHERE amount < 0)), 0) AS expense_total,
			COALESCE(SUM(amount), 0) AS net_balance
		FROM transactions
		WHERE is_deleted = FALSE`

	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return out, fmt.Errorf("finance stats: %w", err)
	}
	return out, nil
}

func (r *repository) SoilStats(ctx context.Context) (SoilStats, error) {
	var out SoilStats
	query := `
		SELECT
			COALESCE(AVG(soil_ph), 0) AS avg_ph,
			COALESCE(AVG(nitrogen), 0) AS avg_nitrogen,
			COALESCE(AVG(organic_matter), 0) AS avg_organic_matter
		FROM soil_analyses
		WHERE is_deleted = FALSE`

	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return out, fmt.Errorf("soil stats: %w", err)
	}
	return out, nil
}

func (r *repository) WeatherStats(ctx context.Context) (WeatherStats, error) {
	var out WeatherStats
	query := `
		SELECT
			COALESCE(AVG(temperature), 0) AS avg_temperature,
			COALESCE(AVG(humidity), 0) AS avg_humidity,
			COALESCE(SUM(rainfall_mm), 0) AS total_rainfall_mm
		FROM weather_observations
		WHERE is_deleted = FALSE
		  AND observed_at >= NOW() - INTERVAL '30 days'`

	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return out, fmt.Errorf("weather stats: %w", err)
	}
	return out, nil
}

func (r *repository) TaskStatusCounts(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM tasks
		WHERE is_deleted = FALSE
		GROUP BY status`

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("task status counts: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *repository) UserStats(ctx context.Context) (UserStats, error) {
	out := UserStats{Roles: make(map[string]int)}
	query := `
		SELECT COUNT(*) AS active
		FROM users
		WHERE is_deleted = FALSE AND is_active = TRUE`

	if err := r.db.GetContext(ctx, &out.Active, query); err != nil {
		return out, fmt.Errorf("user stats: %w", err)
	}

	roleQuery := `
		SELECT role, COUNT(*) AS count
		FROM users
		WHERE is_deleted = FALSE
		GROUP BY role`

	var rows []struct {
		Role  string `db:"role"`
		Count int    `db:"count"`
	}
	if err := r.db.SelectContext(ctx, &rows, roleQuery); err != nil {
		return out, fmt.Errorf("user role counts: %w", err)
	}
	for _, row := range rows {
		out.Roles[row.Role] = row.Count
	}
	return out, nil
}

func (r *repository) EmployeeStats(ctx context.Context) (EmployeeStats, error) {
	var out EmployeeStats
	query := `
		SELECT
			COUNT(*) AS count,
			COALESCE(AVG(salary_amount), 0) AS avg_salary
		FROM employees
		WHERE is_deleted = FALSE`

	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return out, fmt.Errorf("employee stats: %w", err)
	}
	return out, nil
}

func (r *repository) VeterinaryStats(ctx context.Context) (VeterinaryStats, error) {
	var out VeterinaryStats
	query := `
		SELECT
			COUNT(*) AS total_visits,
			COALESCE(AVG(cost), 0) AS avg_cost
		FROM veterinary_visits
		WHERE is_deleted = FALSE`

	if err := r.db.GetContext(ctx, &out, query); err != nil {
		return out, fmt.Errorf("veterinary stats: %w", err)
	}
	return out, nil
}
