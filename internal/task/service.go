// AngelaMos | 2026
// service.go

package task

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

func (s *Service) CreateTask(
	ctx context.Context,
	actorID string,
	req CreateTaskRequest,
) (*Task, error) {
	status := StatusPending
	if req.Status != nil {
		status = *req.Status
	}

	priority := PriorityMedium
	if req.Priority != nil {
		priority = *req.Priority
	}

	task := &Task{
		Record:       core.Record{ID: uuid.New().String()},
		AssignedToID: req.AssignedToID,
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		Status:       status,
		Priority:     priority,
		Notes:        req.Notes,
	}

	if actorID != "" {
		task.CreatedByID = &actorID
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *Service) ListTasksByUser(
	ctx context.Context,
	userID string,
) ([]Task, error) {
	return s.repo.ListTasksByUser(ctx, userID)
}

func (s *Service) CreateEntry(
	ctx context.Context,
	authorID string,
	req CreateDailyEntryRequest,
) (*DailyEntry, error) {
	currency := "USD"
	if req.Currency != nil {
		currency = core.NormalizeCode(*req.Currency)
	}

	entry := &DailyEntry{
		Record:          core.Record{ID: uuid.New().String()},
		FarmID:          req.FarmID,
		Date:            req.Date,
		AuthorUserID:    authorID,
		ProjectID:       req.ProjectID,
		PlotID:          req.PlotID,
		EntryType:       req.EntryType,
		DurationMinutes: req.DurationMinutes,
		Cost:            req.Cost,
		Currency:        currency,
	}

	if req.Content != nil {
		entry.Content = *req.Content
	}

	if authorID != "" {
		entry.CreatedByID = &authorID
	}

	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) ListEntriesByFarm(
	ctx context.Context,
	farmID string,
) ([]DailyEntry, error) {
	return s.repo.ListEntriesByFarm(ctx, farmID)
}
