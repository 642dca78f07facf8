// AngelaMos | 2026
// repository.go

package task

import (
	"context"
	"fmt"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const taskColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       assigned_to_id, project_id, title, description, due_date,
	       completed_at, status, priority, notes`

const entryColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       farm_id, date, author_user_id, project_id, plot_id, entry_type,
	       content, duration_minutes, cost, currency`

type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	ListTasksByUser(ctx context.Context, userID string) ([]Task, error)

	CreateEntry(ctx context.Context, entry *DailyEntry) error
	ListEntriesByFarm(ctx context.Context, farmID string) ([]DailyEntry, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTask(ctx context.Context, task *Task) error {
	query := `
		INSERT INTO tasks (id, assigned_to_id, project_id, title, description,
		                   due_date, status, priority, notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, task, query,
		task.ID,
		task.AssignedToID,
		task.ProjectID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Status,
		task.Priority,
		task.Notes,
		task.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create task: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *repository) ListTasksByUser(
	ctx context.Context,
	userID string,
) ([]Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE assigned_to_id = $1 AND is_deleted = FALSE
		ORDER BY due_date ASC`, taskColumns)

	var tasks []Task
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("list tasks by user: %w", err)
	}

	return tasks, nil
}

func (r *repository) CreateEntry(
	ctx context.Context,
	entry *DailyEntry,
) error {
	query := `
		INSERT INTO daily_entries (id, farm_id, date, author_user_id,
		                           project_id, plot_id, entry_type, content,
		                           duration_minutes, cost, currency,
		                           created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, entry, query,
		entry.ID,
		entry.FarmID,
		entry.Date,
		entry.AuthorUserID,
		entry.ProjectID,
		entry.PlotID,
		entry.EntryType,
		entry.Content,
		entry.DurationMinutes,
		entry.Cost,
		entry.Currency,
		entry.CreatedByID,
	)
	if err != nil {
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create daily entry: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create daily entry: %w", err)
	}

	return nil
}

func (r *repository) ListEntriesByFarm(
	ctx context.Context,
	farmID string,
) ([]DailyEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM daily_entries
		WHERE farm_id = $1 AND is_deleted = FALSE
		ORDER BY date DESC, created_at DESC`, entryColumns)

	var entries []DailyEntry
	if err := r.db.SelectContext(ctx, &entries, query, farmID); err != nil {
		return nil, fmt.Errorf("list daily entries: %w", err)
	}

	return entries, nil
}
