// AngelaMos | 2026
// repository.go

package animal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const animalColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       project_id, group_id, tag, breed, name, arrival_date, birthday,
	       animal_type, gender, weight, age_estimate, is_active,
	       health_status, insurance_policy`

const groupColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       project_id, group_name, housing, starting_number, average_weight,
	       average_age, disease_alerts, quarantine_info, notes`

const visitColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       animal_id, vet_id, visit_date, diagnosis, treatment, cost,
	       currency, notes`

type Repository interface {
	GetByID(ctx context.Context, id string) (*Animal, error)
	ListByProject(ctx context.Context, projectID string) ([]Animal, error)
	ListGroupsByProject(
		ctx context.Context,
		projectID string,
	) ([]AnimalGroup, error)

	CreateVisit(ctx context.Context, visit *VeterinaryVisit) error
	ListVisitsByAnimal(
		ctx context.Context,
		animalID string,
	) ([]VeterinaryVisit, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Animal, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM animals
		WHERE id = $1 AND is_deleted = FALSE`, animalColumns)

	var animal Animal
	err := r.db.GetContext(ctx, &animal, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get animal: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get animal: %w", err)
	}

	return &animal, nil
}

func (r *repository) ListByProject(
	ctx context.Context,
	projectID string,
) ([]Animal, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM animals
		WHERE project_id = $1 AND is_deleted = FALSE
		ORDER BY arrival_date DESC, tag ASC`, animalColumns)

	var animals []Animal
	if err := r.db.SelectContext(ctx, &animals, query, projectID); err != nil {
		return nil, fmt.Errorf("list animals by project: %w", err)
	}

	return animals, nil
}

func (r *repository) ListGroupsByProject(
	ctx context.Context,
	projectID string,
) ([]AnimalGroup, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM animal_groups
		WHERE project_id = $1 AND is_deleted = FALSE
		ORDER BY group_name ASC`, groupColumns)

	var groups []AnimalGroup
	if err := r.db.SelectContext(ctx, &groups, query, projectID); err != nil {
		return nil, fmt.Errorf("list animal groups: %w", err)
	}

	return groups, nil
}

func (r *repository) CreateVisit(
	ctx context.Context,
	visit *VeterinaryVisit,
) error {
	query := `
		INSERT INTO veterinary_visits (id, animal_id, vet_id, visit_date,
		                               diagnosis, treatment, cost, currency,
		                               notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, visit, query,
		visit.ID,
		visit.AnimalID,
		visit.VetID,
		visit.VisitDate,
		visit.Diagnosis,
		visit.Treatment,
		visit.Cost,
		visit.Currency,
		visit.Notes,
		visit.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create visit: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create visit: %w", err)
	}

	return nil
}

func (r *repository) ListVisitsByAnimal(
	ctx context.Context,
	animalID string,
) ([]VeterinaryVisit, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM veterinary_visits
		WHERE animal_id = $1 AND is_deleted = FALSE
		ORDER BY visit_date DESC`, visitColumns)

	var visits []VeterinaryVisit
	if err := r.db.SelectContext(ctx, &visits, query, animalID); err != nil {
		return nil, fmt.Errorf("list visits by animal: %w", err)
	}

	return visits, nil
}
