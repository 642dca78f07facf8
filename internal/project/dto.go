// AngelaMos | 2026
// dto.go

package project

import (
	"encoding/json"
	"time"
)

type CreatePlantingProjectRequest struct {
	FarmID    *string    `json:"farm_id"    validate:"omitempty,uuid"`
	PlotID    *string    `json:"plot_id"    validate:"omitempty,uuid"`
	Name      string     `json:"name"       validate:"required,min=1,max=255"`
	Status    *string    `json:"status"     validate:"omitempty,oneof=Planning Active Completed Archived"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date"`
	Notes     *string    `json:"notes"      validate:"omitempty,max=2000"`

	SpeciesID       *string  `json:"species_id"       validate:"omitempty,uuid"`
	ExpectedYield   *float64 `json:"expected_yield"   validate:"omitempty,gt=0"`
	YieldUnit       *string  `json:"yield_unit"       validate:"omitempty,max=32"`
	ExpectedRevenue *float64 `json:"expected_revenue" validate:"omitempty,gt=0"`
	IrrigationType  *string  `json:"irrigation_type"  validate:"omitempty,max=64"`
	SoilAnalysisID  *string  `json:"soil_analysis_id" validate:"omitempty,uuid"`
}

type CreateAnimalKeepingProjectRequest struct {
	FarmID    *string    `json:"farm_id"    validate:"omitempty,uuid"`
	PlotID    *string    `json:"plot_id"    validate:"omitempty,uuid"`
	Name      string     `json:"name"       validate:"required,min=1,max=255"`
	Status    *string    `json:"status"     validate:"omitempty,oneof=Planning Active Completed Archived"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date"`
	Notes     *string    `json:"notes"      validate:"omitempty,max=2000"`

	HousingType      *string  `json:"housing_type"      validate:"omitempty,max=64"`
	PastureInfo      *string  `json:"pasture_info"      validate:"omitempty,max=2000"`
	CarryingCapacity *float64 `json:"carrying_capacity" validate:"omitempty,gt=0"`
}

type CreatePlantingEventRequest struct {
	ProjectID      string           `json:"project_id"      validate:"required,uuid"`
	PlotID         string           `json:"plot_id"         validate:"required,uuid"`
	PlantingDate   time.Time        `json:"planting_date"   validate:"required"`
	EndDate        *time.Time       `json:"end_date"`
	AreaSize       float64          `json:"area_size"       validate:"required,gt=0"`
	AreaUnit       *string          `json:"area_unit"       validate:"omitempty,oneof=HECTARE ACRE SQUARE_METER"`
	Stage          *string          `json:"stage"           validate:"omitempty,oneof=Seedling Vegetative Flowering Fruiting Mature"`
	Notes          *string          `json:"notes"           validate:"omitempty,max=2000"`
	SpeciesDetails *json.RawMessage `json:"species_details"`
}

type ProjectResponse struct {
	ID          string     `json:"id"`
	FarmID      *string    `json:"farm_id,omitempty"`
	PlotID      *string    `json:"plot_id,omitempty"`
	OwnerID     string     `json:"owner_id"`
	Name        string     `json:"name"`
	ProjectType string     `json:"project_type"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Version     int        `json:"version"`
}

type PlantingDetailsResponse struct {
	SpeciesID       *string  `json:"species_id,omitempty"`
	ExpectedYield   *float64 `json:"expected_yield,omitempty"`
	YieldUnit       *string  `json:"yield_unit,omitempty"`
	ExpectedRevenue *float64 `json:"expected_revenue,omitempty"`
	IrrigationType  *string  `json:"irrigation_type,omitempty"`
	SoilAnalysisID  *string  `json:"soil_analysis_id,omitempty"`
}

type AnimalKeepingDetailsResponse struct {
	HousingType      *string  `json:"housing_type,omitempty"`
	PastureInfo      *string  `json:"pasture_info,omitempty"`
	CarryingCapacity *float64 `json:"carrying_capacity,omitempty"`
}

// ProjectDetailResponse is the polymorphic listing shape: the base
// row, exactly one populated extension, the owner, and the owning
// farm's plots.
type ProjectDetailResponse struct {
	ProjectResponse

	Planting      *PlantingDetailsResponse      `json:"planting,omitempty"`
	AnimalKeeping *AnimalKeepingDetailsResponse `json:"animal_keeping,omitempty"`
	Owner         *OwnerSummary                 `json:"owner,omitempty"`
	Plots         []PlotSummary                 `json:"plots"`
}

type PlantingEventResponse struct {
	ID             string          `json:"id"`
	ProjectID      string          `json:"project_id"`
	PlotID         string          `json:"plot_id"`
	PlantingDate   time.Time       `json:"planting_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	AreaSize       float64         `json:"area_size"`
	AreaUnit       string          `json:"area_unit"`
	Stage          string          `json:"stage"`
	Notes          *string         `json:"notes,omitempty"`
	SpeciesDetails json.RawMessage `json:"species_details,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Version        int             `json:"version"`
}

func ToProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		FarmID:      p.FarmID,
		PlotID:      p.PlotID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		ProjectType: p.ProjectType,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

func ToProjectResponseList(projects []Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, ToProjectResponse(&projects[i]))
	}
	return responses
}

func ToPlantingEventResponse(e *PlantingEvent) PlantingEventResponse {
	return PlantingEventResponse{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		PlotID:         e.PlotID,
		PlantingDate:   e.PlantingDate,
		EndDate:        e.EndDate,
		AreaSize:       e.AreaSize,
		AreaUnit:       e.AreaUnit,
		Stage:          e.Stage,
		Notes:          e.Notes,
		SpeciesDetails: e.SpeciesDetails,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		Version:        e.Version,
	}
}

func ToPlantingEventResponseList(events []PlantingEvent) []PlantingEventResponse {
	responses := make([]PlantingEventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, ToPlantingEventResponse(&events[i]))
	}
	return responses
}
