// AngelaMos | 2026
// dto.go

package task

import (
	"encoding/json"
	"time"
)

type CreateTaskRequest struct {
	AssignedToID string     `json:"assigned_to_id" validate:"required,uuid"`
	ProjectID    *string    `json:"project_id"     validate:"omitempty,uuid"`
	Title        string     `json:"title"          validate:"required,min=1,max=255"`
	Description  *string    `json:"description"    validate:"omitempty,max=2000"`
	DueDate      time.Time  `json:"due_date"       validate:"required"`
	Status       *string    `json:"status"         validate:"omitempty,oneof=Pending 'In Progress' Completed Cancelled"`
	Priority     *string    `json:"priority"       validate:"omitempty,oneof=Low Medium High Critical"`
	Notes        *string    `json:"notes"          validate:"omitempty,max=2000"`
}

type TaskResponse struct {
	ID           string     `json:"id"`
	AssignedToID string     `json:"assigned_to_id"`
	ProjectID    *string    `json:"project_id,omitempty"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	DueDate      time.Time  `json:"due_date"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Version      int        `json:"version"`
}

type CreateDailyEntryRequest struct {
	FarmID          string           `json:"farm_id"          validate:"required,uuid"`
	Date            time.Time        `json:"date"             validate:"required"`
	ProjectID       *string          `json:"project_id"       validate:"omitempty,uuid"`
	PlotID          *string          `json:"plot_id"          validate:"omitempty,uuid"`
	EntryType       string           `json:"entry_type"       validate:"required,oneof=Activity Note Expense Observation"`
	Content         *json.RawMessage `json:"content"`
	DurationMinutes *int             `json:"duration_minutes" validate:"omitempty,gte=0"`
	Cost            *float64         `json:"cost"             validate:"omitempty,gte=0"`
	Currency        *string          `json:"currency"         validate:"omitempty,len=3"`
}

type DailyEntryResponse struct {
	ID              string          `json:"id"`
	FarmID          string          `json:"farm_id"`
	Date            time.Time       `json:"date"`
	AuthorUserID    string          `json:"author_user_id"`
	ProjectID       *string         `json:"project_id,omitempty"`
	PlotID          *string         `json:"plot_id,omitempty"`
	EntryType       string          `json:"entry_type"`
	Content         json.RawMessage `json:"content,omitempty"`
	DurationMinutes *int            `json:"duration_minutes,omitempty"`
	Cost            *float64        `json:"cost,omitempty"`
	Currency        string          `json:"currency"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Version         int             `json:"version"`
}

func ToTaskResponse(t *Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		AssignedToID: t.AssignedToID,
		ProjectID:    t.ProjectID,
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate,
		CompletedAt:  t.CompletedAt,
		Status:       t.Status,
		Priority:     t.Priority,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		Version:      t.Version,
	}
}

func ToTaskResponseList(tasks []Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, ToTaskResponse(&tasks[i]))
	}
	return responses
}

func ToDailyEntryResponse(e *DailyEntry) DailyEntryResponse {
	return DailyEntryResponse{
		ID:              e.ID,
		FarmID:          e.FarmID,
		Date:            e.Date,
		AuthorUserID:    e.AuthorUserID,
		ProjectID:       e.ProjectID,
		PlotID:          e.PlotID,
		EntryType:       e.EntryType,
		Content:         e.Content,
		DurationMinutes: e.DurationMinutes,
		Cost:            e.Cost,
		Currency:        e.Currency,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Version:         e.Version,
	}
}

func ToDailyEntryResponseList(entries []DailyEntry) []DailyEntryResponse {
	responses := make([]DailyEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, ToDailyEntryResponse(&entries[i]))
	}
	return responses
}
