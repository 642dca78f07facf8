// AngelaMos | 2026
// dto.go

package animal

import (
	"encoding/json"
	"time"
)

type AnimalResponse struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"project_id"`
	GroupID         *string         `json:"group_id,omitempty"`
	Tag             string          `json:"tag"`
	Breed           *string         `json:"breed,omitempty"`
	Name            *string         `json:"name,omitempty"`
	ArrivalDate     time.Time       `json:"arrival_date"`
	Birthday        *time.Time      `json:"birthday,omitempty"`
	AnimalType      string          `json:"animal_type"`
	Gender          string          `json:"gender"`
	Weight          *float64        `json:"weight,omitempty"`
	AgeEstimate     *float64        `json:"age_estimate,omitempty"`
	IsActive        bool            `json:"is_active"`
	HealthStatus    string          `json:"health_status"`
	InsurancePolicy json.RawMessage `json:"insurance_policy,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Version         int             `json:"version"`
}

type AnimalGroupResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	GroupName      string    `json:"group_name"`
	Housing        string    `json:"housing"`
	StartingNumber int       `json:"starting_number"`
	AverageWeight  *float64  `json:"average_weight,omitempty"`
	AverageAge     *float64  `json:"average_age,omitempty"`
	DiseaseAlerts  bool      `json:"disease_alerts"`
	QuarantineInfo *string   `json:"quarantine_info,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Version        int       `json:"version"`
}

type CreateVisitRequest struct {
	AnimalID  string    `json:"animal_id"  validate:"required,uuid"`
	VetID     string    `json:"vet_id"     validate:"required,uuid"`
	VisitDate time.Time `json:"visit_date" validate:"required"`
	Diagnosis *string   `json:"diagnosis"  validate:"omitempty,max=2000"`
	Treatment *string   `json:"treatment"  validate:"omitempty,max=2000"`
	Cost      *float64  `json:"cost"       validate:"omitempty,gte=0"`
	Currency  *string   `json:"currency"   validate:"omitempty,len=3"`
	Notes     *string   `json:"notes"      validate:"omitempty,max=2000"`
}

type VisitResponse struct {
	ID        string    `json:"id"`
	AnimalID  string    `json:"animal_id"`
	VetID     string    `json:"vet_id"`
	VisitDate time.Time `json:"visit_date"`
	Diagnosis *string   `json:"diagnosis,omitempty"`
	Treatment *string   `json:"treatment,omitempty"`
	Cost      *float64  `json:"cost,omitempty"`
	Currency  string    `json:"currency"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

func ToAnimalResponse(a *Animal) AnimalResponse {
	return AnimalResponse{
		ID:              a.ID,
		ProjectID:       a.ProjectID,
		GroupID:         a.GroupID,
		Tag:             a.Tag,
		Breed:           a.Breed,
		Name:            a.Name,
		ArrivalDate:     a.ArrivalDate,
		Birthday:        a.Birthday,
		AnimalType:      a.AnimalType,
		Gender:          a.Gender,
		Weight:          a.Weight,
		AgeEstimate:     a.AgeEstimate,
		IsActive:        a.IsActive,
		HealthStatus:    a.HealthStatus,
		InsurancePolicy: a.InsurancePolicy,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
		Version:         a.Version,
	}
}

func ToAnimalResponseList(animals []Animal) []AnimalResponse {
	responses := make([]AnimalResponse, 0, len(animals))
	for i := range animals {
		responses = append(responses, ToAnimalResponse(&animals[i]))
	}
	return responses
}

func ToGroupResponse(g *AnimalGroup) AnimalGroupResponse {
	return AnimalGroupResponse{
		ID:             g.ID,
		ProjectID:      g.ProjectID,
		GroupName:      g.GroupName,
		Housing:        g.Housing,
		StartingNumber: g.StartingNumber,
		AverageWeight:  g.AverageWeight,
		AverageAge:     g.AverageAge,
		DiseaseAlerts:  g.DiseaseAlerts,
		QuarantineInfo: g.QuarantineInfo,
		Notes:          g.Notes,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
		Version:        g.Version,
	}
}

func ToGroupResponseList(groups []AnimalGroup) []AnimalGroupResponse {
	responses := make([]AnimalGroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, ToGroupResponse(&groups[i]))
	}
	return responses
}

func ToVisitResponse(v *VeterinaryVisit) VisitResponse {
	return VisitResponse{
		ID:        v.ID,
		AnimalID:  v.AnimalID,
		VetID:     v.VetID,
		VisitDate: v.VisitDate,
		Diagnosis: v.Diagnosis,
		Treatment: v.Treatment,
		Cost:      v.Cost,
		Currency:  v.Currency,
		Notes:     v.Notes,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
		Version:   v.Version,
	}
}

func ToVisitResponseList(visits []VeterinaryVisit) []VisitResponse {
	responses := make([]VisitResponse, 0, len(visits))
	for i := range visits {
		responses = append(responses, ToVisitResponse(&visits[i]))
	}
	return responses
}
