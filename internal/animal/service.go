// AngelaMos | 2026
// service.go

package animal

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

func (s *Service) GetAnimal(ctx context.Context, id string) (*Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAnimalsByProject(
	ctx context.Context,
	projectID string,
) ([]Animal, error) {
	return s.repo.ListByProject(ctx, projectID)
}

func (s *Service) ListGroupsByProject(
	ctx context.Context,
	projectID string,
) ([]AnimalGroup, error) {
	return s.repo.ListGroupsByProject(ctx, projectID)
}

func (s *Service) CreateVisit(
	ctx context.Context,
	actorID string,
	req CreateVisitRequest,
) (*VeterinaryVisit, error) {
	// visits must reference a live animal
	if _, err := s.repo.GetByID(ctx, req.AnimalID); err != nil {
		return nil, err
	}

	currency := "USD"
	if req.Currency != nil {
		currency = core.NormalizeCode(*req.Currency)
	}

	visit := &VeterinaryVisit{
		Record:    core.Record{ID: uuid.New().String()},
		AnimalID:  req.AnimalID,
		VetID:     req.VetID,
		VisitDate: req.VisitDate,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Cost:      req.Cost,
		Currency:  currency,
		Notes:     req.Notes,
	}

	if actorID != "" {
		visit.CreatedByID = &actorID
	}

	if err := s.repo.CreateVisit(ctx, visit); err != nil {
		return nil, err
	}

	return visit, nil
}

func (s *Service) ListVisitsByAnimal(
	ctx context.Context,
	animalID string,
) ([]VeterinaryVisit, error) {
	return s.repo.ListVisitsByAnimal(ctx, animalID)
}
