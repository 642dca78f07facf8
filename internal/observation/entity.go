// AngelaMos | 2026
// entity.go

package observation

import (
	"time"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type SoilAnalysis struct {
	core.Record

	PlotID        string    `db:"plot_id"`
	SampleDate    time.Time `db:"sample_date"`
	Phosphorous   *float64  `db:"phosphorous"`
	Potassium     *float64  `db:"potassium"`
	Nitrogen      *float64  `db:"nitrogen"`
	SoilPH        *float64  `db:"soil_ph"`
	OrganicMatter *float64  `db:"organic_matter"`
	Notes         *string   `db:"notes"`
	LabReportURL  *string   `db:"lab_report_url"`
}

type WeatherObservation struct {
	core.Record

	FarmID        string    `db:"farm_id"`
	ObservedAt    time.Time `db:"observed_at"`
	Temperature   *float64  `db:"temperature"`
	Humidity      *float64  `db:"humidity"`
	RainfallMM    *float64  `db:"rainfall_mm"`
	WindSpeed     *float64  `db:"wind_speed"`
	WindDirection *string   `db:"wind_direction"`
	Notes         *string   `db:"notes"`
}

type Season struct {
	core.Record

	FarmID    string    `db:"farm_id"`
	Name      string    `db:"name"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Notes     *string   `db:"notes"`
}
