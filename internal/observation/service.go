// AngelaMos | 2026
// service.go

package observation

import (
	"context"

	"github.com/google/uuid"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateSoilAnalysis(
	ctx context.Context,
	actorID string,
	req CreateSoilAnalysisRequest,
) (*SoilAnalysis, error) {
	if err := core.InRange(req.SoilPH, 0, 14, "soil_ph"); err != nil {
		return nil, err
	}

	analysis := &SoilAnalysis{
		Record:        core.Record{ID: uuid.New().String()},
		PlotID:        req.PlotID,
		SampleDate:    req.SampleDate,
		Phosphorous:   req.Phosphorous,
		Potassium:     req.Potassium,
		Nitrogen:      req.Nitrogen,
		SoilPH:        req.SoilPH,
		OrganicMatter: req.OrganicMatter,
		Notes:         req.Notes,
		LabReportURL:  req.LabReportURL,
	}

	if actorID != "" {
		analysis.CreatedByID = &actorID
	}

	if err := s.repo.CreateSoilAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

func (s *Service) ListSoilAnalysesByPlot(
	ctx context.Context,
	plotID string,
) ([]SoilAnalysis, error) {
	return s.repo.ListSoilAnalysesByPlot(ctx, plotID)
}

func (s *Service) CreateWeatherObservation(
	ctx context.Context,
	actorID string,
	req CreateWeatherObservationRequest,
) (*WeatherObservation, error) {
	if err := core.InRange(req.Humidity, 0, 100, "humidity"); err != nil {
		return nil, err
	}

	observation := &WeatherObservation{
		Record:        core.Record{ID: uuid.New().String()},
		FarmID:        req.FarmID,
		ObservedAt:    req.ObservedAt,
		Temperature:   req.Temperature,
		Humidity:      req.Humidity,
		RainfallMM:    req.RainfallMM,
		WindSpeed:     req.WindSpeed,
		WindDirection: req.WindDirection,
		Notes:         req.Notes,
	}

	if actorID != "" {
		observation.CreatedByID = &actorID
	}

	if err := s.repo.CreateWeatherObservation(ctx, observation); err != nil {
		return nil, err
	}

	return observation, nil
}

func (s *Service) ListWeatherByFarm(
	ctx context.Context,
	farmID string,
) ([]WeatherObservation, error) {
	return s.repo.ListWeatherByFarm(ctx, farmID)
}

func (s *Service) CreateSeason(
	ctx context.Context,
	actorID string,
	req CreateSeasonRequest,
) (*Season, error) {
	if err := core.DateOrdered(
		&req.StartDate,
		&req.EndDate,
		"start_date",
		"end_date",
	); err != nil {
		return nil, err
	}

	season := &Season{
		Record:    core.Record{ID: uuid.New().String()},
		FarmID:    req.FarmID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}

	if actorID != "" {
		season.CreatedByID = &actorID
	}

	if err := s.repo.CreateSeason(ctx, season); err != nil {
		return nil, err
	}

	return season, nil
}

func (s *Service) ListSeasonsByFarm(
	ctx context.Context,
	farmID string,
) ([]Season, error) {
	return s.repo.ListSeasonsByFarm(ctx, farmID)
}
