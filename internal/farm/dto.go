// AngelaMos | 2026
// dto.go

package farm

import (
	"encoding/json"
	"time"
)

type CreateFarmRequest struct {
	Name              string           `json:"name"               validate:"required,min=1,max=255"`
	Description       *string          `json:"description"        validate:"omitempty,max=2000"`
	Country           string           `json:"country"            validate:"required,len=2,alpha"`
	City              *string          `json:"city"               validate:"omitempty,max=100"`
	Address           *string          `json:"address"            validate:"omitempty,max=500"`
	GeoCoordinate     *json.RawMessage `json:"geo_coordinate"`
	RectangleBoundary *json.RawMessage `json:"rectangle_boundary"`
	AreaSize          float64          `json:"area_size"          validate:"required,gt=0"`
	AreaUnit          *string          `json:"area_unit"          validate:"omitempty,oneof=HECTARE ACRE SQUARE_METER"`
	TimeZone          *string          `json:"time_zone"          validate:"omitempty,max=64"`
}

type UpdateFarmRequest struct {
	Name              *string          `json:"name"               validate:"omitempty,min=1,max=255"`
	Description       *string          `json:"description"        validate:"omitempty,max=2000"`
	Country           *string          `json:"country"            validate:"omitempty,len=2,alpha"`
	City              *string          `json:"city"               validate:"omitempty,max=100"`
	Address           *string          `json:"address"            validate:"omitempty,max=500"`
	GeoCoordinate     *json.RawMessage `json:"geo_coordinate"`
	RectangleBoundary *json.RawMessage `json:"rectangle_boundary"`
	AreaSize          *float64         `json:"area_size"          validate:"omitempty,gt=0"`
	AreaUnit          *string          `json:"area_unit"          validate:"omitempty,oneof=HECTARE ACRE SQUARE_METER"`
	TimeZone          *string          `json:"time_zone"          validate:"omitempty,max=64"`
}

type FarmResponse struct {
	ID                string          `json:"id"`
	OwnerID           string          `json:"owner_id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description,omitempty"`
	Country           string          `json:"country"`
	City              *string         `json:"city,omitempty"`
	Address           *string         `json:"address,omitempty"`
	GeoCoordinate     json.RawMessage `json:"geo_coordinate,omitempty"`
	RectangleBoundary json.RawMessage `json:"rectangle_boundary,omitempty"`
	AreaSize          float64         `json:"area_size"`
	AreaUnit          string          `json:"area_unit"`
	TimeZone          string          `json:"time_zone"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

type CreatePlotRequest struct {
	FarmID      string           `json:"farm_id"      validate:"required,uuid"`
	Name        string           `json:"name"         validate:"required,min=1,max=255"`
	PlotCode    string           `json:"plot_code"    validate:"required,min=1,max=32"`
	AreaSize    float64          `json:"area_size"    validate:"required,gt=0"`
	AreaUnit    *string          `json:"area_unit"    validate:"omitempty,oneof=HECTARE ACRE SQUARE_METER"`
	SoilProfile *json.RawMessage `json:"soil_profile"`
	GPSBounds   *json.RawMessage `json:"gps_bounds"`
}

type UpdatePlotRequest struct {
	Name          *string          `json:"name"            validate:"omitempty,min=1,max=255"`
	PlotCode      *string          `json:"plot_code"       validate:"omitempty,min=1,max=32"`
	AreaSize      *float64         `json:"area_size"       validate:"omitempty,gt=0"`
	AreaUnit      *string          `json:"area_unit"       validate:"omitempty,oneof=HECTARE ACRE SQUARE_METER"`
	SoilProfile   *json.RawMessage `json:"soil_profile"`
	GPSBounds     *json.RawMessage `json:"gps_bounds"`
	CurrentCropID *string          `json:"current_crop_id" validate:"omitempty,uuid"`
}

type PlotResponse struct {
	ID            string          `json:"id"`
	FarmID        string          `json:"farm_id"`
	Name          string          `json:"name"`
	PlotCode      string          `json:"plot_code"`
	AreaSize      float64         `json:"area_size"`
	AreaUnit      string          `json:"area_unit"`
	SoilProfile   json.RawMessage `json:"soil_profile,omitempty"`
	GPSBounds     json.RawMessage `json:"gps_bounds,omitempty"`
	CurrentCropID *string         `json:"current_crop_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

func ToFarmResponse(f *Farm) FarmResponse {
	return FarmResponse{
		ID:                f.ID,
		OwnerID:           f.OwnerID,
		Name:              f.Name,
		Description:       f.Description,
		Country:           f.Country,
		City:              f.City,
		Address:           f.Address,
		GeoCoordinate:     f.GeoCoordinate,
		RectangleBoundary: f.RectangleBoundary,
		AreaSize:          f.AreaSize,
		AreaUnit:          f.AreaUnit,
		TimeZone:          f.TimeZone,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
		Version:           f.Version,
	}
}

func ToFarmResponseList(farms []Farm) []FarmResponse {
	responses := make([]FarmResponse, 0, len(farms))
	for i := range farms {
		responses = append(responses, ToFarmResponse(&farms[i]))
	}
	return responses
}

func ToPlotResponse(p *Plot) PlotResponse {
	return PlotResponse{
		ID:            p.ID,
		FarmID:        p.FarmID,
		Name:          p.Name,
		PlotCode:      p.PlotCode,
		AreaSize:      p.AreaSize,
		AreaUnit:      p.AreaUnit,
		SoilProfile:   p.SoilProfile,
		GPSBounds:     p.GPSBounds,
		CurrentCropID: p.CurrentCropID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

func ToPlotResponseList(plots []Plot) []PlotResponse {
	responses := make([]PlotResponse, 0, len(plots))
	for i := range plots {
		responses = append(responses, ToPlotResponse(&plots[i]))
	}
	return responses
}
