// AngelaMos | 2026
// entity.go

package task

import (
	"encoding/json"
	"time"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

const (
	EntryActivity    = "Activity"
	EntryNote        = "Note"
	EntryExpense     = "Expense"
	EntryObservation = "Observation"
)

type Task struct {
	core.Record

	AssignedToID string     `db:"assigned_to_id"`
	ProjectID    *string    `db:"project_id"`
	Title        string     `db:"title"`
	Description  *string    `db:"description"`
	DueDate      time.Time  `db:"due_date"`
	CompletedAt  *time.Time `db:"completed_at"`
	Status       string     `db:"status"`
	Priority     string     `db:"priority"`
	Notes        *string    `db:"notes"`
}

type DailyEntry struct {
	core.Record

	FarmID          string          `db:"farm_id"`
	Date            time.Time       `db:"date"`
	AuthorUserID    string          `db:"author_user_id"`
	ProjectID       *string         `db:"project_id"`
	PlotID          *string         `db:"plot_id"`
	EntryType       string          `db:"entry_type"`
	Content         json.RawMessage `db:"content"`
	DurationMinutes *int            `db:"duration_minutes"`
	Cost            *float64        `db:"cost"`
	Currency        string          `db:"currency"`
}
