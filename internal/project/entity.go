// AngelaMos | 2026
// entity.go

package project

import (
	"encoding/json"
	"time"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

// Project type discriminators. The base row carries the tag; the
// matching extension table holds the subtype columns.
const (
	TypePlanting      = "PlantingProject"
	TypeAnimalKeeping = "AnimalKeepingProject"
)

const (
	StatusPlanning  = "Planning"
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusArchived  = "Archived"
)

const (
	StageSeedling   = "Seedling"
	StageVegetative = "Vegetative"
	StageFlowering  = "Flowering"
	StageFruiting   = "Fruiting"
	StageMature     = "Mature"
)

type Project struct {
	core.Record

	FarmID      *string    `db:"farm_id"`
	PlotID      *string    `db:"plot_id"`
	OwnerID     string     `db:"owner_id"`
	Name        string     `db:"name"`
	ProjectType string     `db:"project_type"`
	Status      string     `db:"status"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	Notes       *string    `db:"notes"`
}

type PlantingDetails struct {
	ProjectID       string   `db:"project_id"`
	SpeciesID       *string  `db:"species_id"`
	ExpectedYield   *float64 `db:"expected_yield"`
	YieldUnit       *string  `db:"yield_unit"`
	ExpectedRevenue *float64 `db:"expected_revenue"`
	IrrigationType  *string  `db:"irrigation_type"`
	SoilAnalysisID  *string  `db:"soil_analysis_id"`
}

type AnimalKeepingDetails struct {
	ProjectID        string   `db:"project_id"`
	HousingType      *string  `db:"housing_type"`
	PastureInfo      *string  `db:"pasture_info"`
	CarryingCapacity *float64 `db:"carrying_capacity"`
}

type PlantingEvent struct {
	core.Record

	ProjectID      string          `db:"project_id"`
	PlotID         string          `db:"plot_id"`
	PlantingDate   time.Time       `db:"planting_date"`
	EndDate        *time.Time      `db:"end_date"`
	AreaSize       float64         `db:"area_size"`
	AreaUnit       string          `db:"area_unit"`
	Stage          string          `db:"stage"`
	Notes          *string         `db:"notes"`
	SpeciesDetails json.RawMessage `db:"species_details"`
}

// OwnerSummary is the slim user projection embedded in polymorphic
// project listings.
type OwnerSummary struct {
	ID       string `db:"id"        json:"id"`
	Email    string `db:"email"     json:"email"`
	FullName string `db:"full_name" json:"full_name"`
	Role     string `db:"role"      json:"role"`
}

// PlotSummary is the slim plot projection for the owning farm's plots.
type PlotSummary struct {
	ID       string  `db:"id"        json:"id"`
	FarmID   string  `db:"farm_id"   json:"farm_id"`
	Name     string  `db:"name"      json:"name"`
	PlotCode string  `db:"plot_code" json:"plot_code"`
	AreaSize float64 `db:"area_size" json:"area_size"`
	AreaUnit string  `db:"area_unit" json:"area_unit"`
}
