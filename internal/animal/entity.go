// AngelaMos | 2026
// entity.go

package animal

import (
	"encoding/json"
	"time"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const (
	HealthHealthy     = "Healthy"
	HealthSick        = "Sick"
	HealthRecovering  = "Recovering"
	HealthQuarantined = "Quarantined"
)

type Animal struct {
	core.Record

	ProjectID       string          `db:"project_id"`
	GroupID         *string         `db:"group_id"`
	Tag             string          `db:"tag"`
	Breed           *string         `db:"breed"`
	Name            *string         `db:"name"`
	ArrivalDate     time.Time       `db:"arrival_date"`
	Birthday        *time.Time      `db:"birthday"`
	AnimalType      string          `db:"animal_type"`
	Gender          string          `db:"gender"`
	Weight          *float64        `db:"weight"`
	AgeEstimate     *float64        `db:"age_estimate"`
	IsActive        bool            `db:"is_active"`
	HealthStatus    string          `db:"health_status"`
	InsurancePolicy json.RawMessage `db:"insurance_policy"`
}

type AnimalGroup struct {
	core.Record

	ProjectID      string   `db:"project_id"`
	GroupName      string   `db:"group_name"`
	Housing        string   `db:"housing"`
	StartingNumber int      `db:"starting_number"`
	AverageWeight  *float64 `db:"average_weight"`
	AverageAge     *float64 `db:"average_age"`
	DiseaseAlerts  bool     `db:"disease_alerts"`
	QuarantineInfo *string  `db:"quarantine_info"`
	Notes          *string  `db:"notes"`
}

type VeterinaryVisit struct {
	core.Record

	AnimalID  string    `db:"animal_id"`
	VetID     string    `db:"vet_id"`
	VisitDate time.Time `db:"visit_date"`
	Diagnosis *string   `db:"diagnosis"`
	Treatment *string   `db:"treatment"`
	Cost      *float64  `db:"cost"`
	Currency  string    `db:"currency"`
	Notes     *string   `db:"notes"`
}
