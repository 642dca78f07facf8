// AngelaMos | 2026
// dto.go

package observation

import (
	"time"
)

type CreateSoilAnalysisRequest struct {
	PlotID        string    `json:"plot_id"        validate:"required,uuid"`
	SampleDate    time.Time `json:"sample_date"    validate:"required"`
	Phosphorous   *float64  `json:"phosphorous"    validate:"omitempty,gte=0"`
	Potassium     *float64  `json:"potassium"      validate:"omitempty,gte=0"`
	Nitrogen      *float64  `json:"nitrogen"       validate:"omitempty,gte=0"`
	SoilPH        *float64  `json:"soil_ph"        validate:"omitempty,gte=0,lte=14"`
	OrganicMatter *float64  `json:"organic_matter" validate:"omitempty,gte=0"`
	Notes         *string   `json:"notes"          validate:"omitempty,max=2000"`
	LabReportURL  *string   `json:"lab_report_url" validate:"omitempty,url,max=500"`
}

type SoilAnalysisResponse struct {
	ID            string    `json:"id"`
	PlotID        string    `json:"plot_id"`
	SampleDate    time.Time `json:"sample_date"`
	Phosphorous   *float64  `json:"phosphorous,omitempty"`
	Potassium     *float64  `json:"potassium,omitempty"`
	Nitrogen      *float64  `json:"nitrogen,omitempty"`
	SoilPH        *float64  `json:"soil_ph,omitempty"`
	OrganicMatter *float64  `json:"organic_matter,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	LabReportURL  *string   `json:"lab_report_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

type CreateWeatherObservationRequest struct {
	FarmID        string    `json:"farm_id"        validate:"required,uuid"`
	ObservedAt    time.Time `json:"observed_at"    validate:"required"`
	Temperature   *float64  `json:"temperature"`
	Humidity      *float64  `json:"humidity"       validate:"omitempty,gte=0,lte=100"`
	RainfallMM    *float64  `json:"rainfall_mm"    validate:"omitempty,gte=0"`
	WindSpeed     *float64  `json:"wind_speed"     validate:"omitempty,gte=0"`
	WindDirection *string   `json:"wind_direction" validate:"omitempty,max=16"`
	Notes         *string   `json:"notes"          validate:"omitempty,max=2000"`
}

type WeatherObservationResponse struct {
	ID            string    `json:"id"`
	FarmID        string    `json:"farm_id"`
	ObservedAt    time.Time `json:"observed_at"`
	Temperature   *float64  `json:"temperature,omitempty"`
	Humidity      *float64  `json:"humidity,omitempty"`
	RainfallMM    *float64  `json:"rainfall_mm,omitempty"`
	WindSpeed     *float64  `json:"wind_speed,omitempty"`
	WindDirection *string   `json:"wind_direction,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

type CreateSeasonRequest struct {
	FarmID    string    `json:"farm_id"    validate:"required,uuid"`
	Name      string    `json:"name"       validate:"required,min=1,max=100"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
	Notes     *string   `json:"notes"      validate:"omitempty,max=2000"`
}

type SeasonResponse struct {
	ID        string    `json:"id"`
	FarmID    string    `json:"farm_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

func ToSoilAnalysisResponse(a *SoilAnalysis) SoilAnalysisResponse {
	return SoilAnalysisResponse{
		ID:            a.ID,
		PlotID:        a.PlotID,
		SampleDate:    a.SampleDate,
		Phosphorous:   a.Phosphorous,
		Potassium:     a.Potassium,
		Nitrogen:      a.Nitrogen,
		SoilPH:        a.SoilPH,
		OrganicMatter: a.OrganicMatter,
		Notes:         a.Notes,
		LabReportURL:  a.LabReportURL,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		Version:       a.Version,
	}
}

func ToSoilAnalysisResponseList(analyses []SoilAnalysis) []SoilAnalysisResponse {
	responses := make([]SoilAnalysisResponse, 0, len(analyses))
	for i := range analyses {
		responses = append(responses, ToSoilAnalysisResponse(&analyses[i]))
	}
	return responses
}

func ToWeatherObservationResponse(
	o *WeatherObservation,
) WeatherObservationResponse {
	return WeatherObservationResponse{
		ID:            o.ID,
		FarmID:        o.FarmID,
		ObservedAt:    o.ObservedAt,
		Temperature:   o.Temperature,
		Humidity:      o.Humidity,
		RainfallMM:    o.RainfallMM,
		WindSpeed:     o.WindSpeed,
		WindDirection: o.WindDirection,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Version:       o.Version,
	}
}

func ToWeatherObservationResponseList(
	observations []WeatherObservation,
) []WeatherObservationResponse {
	responses := make([]WeatherObservationResponse, 0, len(observations))
	for i := range observations {
		responses = append(
			responses,
			ToWeatherObservationResponse(&observations[i]),
		)
	}
	return responses
}

func ToSeasonResponse(s *Season) SeasonResponse {
	return SeasonResponse{
		ID:        s.ID,
		FarmID:    s.FarmID,
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Version:   s.Version,
	}
}

func ToSeasonResponseList(seasons []Season) []SeasonResponse {
	responses := make([]SeasonResponse, 0, len(seasons))
	for i := range seasons {
		responses = append(responses, ToSeasonResponse(&seasons[i]))
	}
	return responses
}
