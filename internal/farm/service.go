// AngelaMos | 2026
// service.go

package farm

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateFarm(
	ctx context.Context,
	ownerID string,
	req CreateFarmRequest,
) (*Farm, error) {
	areaUnit := AreaUnitHectare
	if req.AreaUnit != nil {
		areaUnit = *req.AreaUnit
	}

	timeZone := "UTC"
	if req.TimeZone != nil {
		timeZone = *req.TimeZone
	}

	farm := &Farm{
		Record:   core.Record{ID: uuid.New().String()},
		OwnerID:  ownerID,
		Name:     req.Name,
		Country:  strings.ToUpper(req.Country),
		AreaSize: req.AreaSize,
		AreaUnit: areaUnit,
		TimeZone: timeZone,
	}

	farm.Description = req.Description
	farm.City = req.City
	farm.Address = req.Address
	if req.GeoCoordinate != nil {
		farm.GeoCoordinate = *req.GeoCoordinate
	}
	if req.RectangleBoundary != nil {
		farm.RectangleBoundary = *req.RectangleBoundary
	}

	if ownerID != "" {
		farm.CreatedByID = &ownerID
	}

	if err := s.repo.Create(ctx, farm); err != nil {
		return nil, err
	}

	return farm, nil
}

func (s *Service) GetFarm(ctx context.Context, id string) (*Farm, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListFarmsByOwner(
	ctx context.Context,
	ownerID string,
) ([]Farm, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// UpdateFarm merges non-nil request fields over the stored row and
// persists the result.
func (s *Service) UpdateFarm(
	ctx context.Context,
	id, actorID string,
	req UpdateFarmRequest,
) (*Farm, error) {
	farm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		farm.Name = *req.Name
	}
	if req.Description != nil {
		farm.Description = req.Description
	}
	if req.Country != nil {
		farm.Country = strings.ToUpper(*req.Country)
	}
	if req.City != nil {
		farm.City = req.City
	}
	if req.Address != nil {
		farm.Address = req.Address
	}
	if req.GeoCoordinate != nil {
		farm.GeoCoordinate = *req.GeoCoordinate
	}
	if req.RectangleBoundary != nil {
		farm.RectangleBoundary = *req.RectangleBoundary
	}
	if req.AreaSize != nil {
		farm.AreaSize = *req.AreaSize
	}
	if req.AreaUnit != nil {
		farm.AreaUnit = *req.AreaUnit
	}
	if req.TimeZone != nil {
		farm.TimeZone = *req.TimeZone
	}

	if actorID != "" {
		farm.UpdatedByID = &actorID
	}

	if err := s.repo.Update(ctx, farm); err != nil {
		return nil, err
	}

	return farm, nil
}

func (s *Service) CreatePlot(
	ctx context.Context,
	actorID string,
	req CreatePlotRequest,
) (*Plot, error) {
	// reject unknown farms up front so the caller sees a clean 400
	// instead of a raw constraint error
	if _, err := s.repo.GetByID(ctx, req.FarmID); err != nil {
		return nil, err
	}

	areaUnit := AreaUnitHectare
	if req.AreaUnit != nil {
		areaUnit = *req.AreaUnit
	}

	plot := &Plot{
		Record:   core.Record{ID: uuid.New().String()},
		FarmID:   req.FarmID,
		Name:     req.Name,
		PlotCode: core.NormalizeCode(req.PlotCode),
		AreaSize: req.AreaSize,
		AreaUnit: areaUnit,
	}

	if req.SoilProfile != nil {
		plot.SoilProfile = *req.SoilProfile
	}
	if req.GPSBounds != nil {
		plot.GPSBounds = *req.GPSBounds
	}

	if actorID != "" {
		plot.CreatedByID = &actorID
	}

	if err := s.repo.CreatePlot(ctx, plot); err != nil {
		return nil, err
	}

	return plot, nil
}

func (s *Service) GetPlot(ctx context.Context, id string) (*Plot, error) {
	return s.repo.GetPlotByID(ctx, id)
}

func (s *Service) ListPlotsByFarm(
	ctx context.Context,
	farmID string,
) ([]Plot, error) {
	return s.repo.ListPlotsByFarm(ctx, farmID)
}

func (s *Service) UpdatePlot(
	ctx context.Context,
	id, actorID string,
	req UpdatePlotRequest,
) (*Plot, error) {
	plot, err := s.repo.GetPlotByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plot.Name = *req.Name
	}
	if req.PlotCode != nil {
		plot.PlotCode = core.NormalizeCode(*req.PlotCode)
	}
	if req.AreaSize != nil {
		plot.AreaSize = *req.AreaSize
	}
	if req.AreaUnit != nil {
		plot.AreaUnit = *req.AreaUnit
	}
	if req.SoilProfile != nil {
		plot.SoilProfile = *req.SoilProfile
	}
	if req.GPSBounds != nil {
		plot.GPSBounds = *req.GPSBounds
	}
	if req.CurrentCropID != nil {
		plot.CurrentCropID = req.CurrentCropID
	}

	if actorID != "" {
		plot.UpdatedByID = &actorID
	}

	if err := s.repo.UpdatePlot(ctx, plot); err != nil {
		return nil, err
	}

	return plot, nil
}

func (s *Service) DeletePlot(ctx context.Context, id, actorID string) error {
	return s.repo.SoftDeletePlot(ctx, id, actorID)
}
