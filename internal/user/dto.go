// AngelaMos | 2026
// dto.go

package user

import (
	"encoding/json"
	"time"
)

type UpdateUserRequest struct {
	Email       *string          `json:"email"        validate:"omitempty,email,max=255"`
	FullName    *string          `json:"full_name"    validate:"omitempty,min=1,max=255"`
	Phone       *string          `json:"phone"        validate:"omitempty,max=32"`
	Role        *string          `json:"role"`
	ProfileData *json.RawMessage `json:"profile_data"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	FullName    string          `json:"full_name"`
	Phone       *string         `json:"phone,omitempty"`
	Role        string          `json:"role"`
	IsActive    bool            `json:"is_active"`
	LastLogin   *time.Time      `json:"last_login,omitempty"`
	ProfileData json.RawMessage `json:"profile_data,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

type CreateEmployeeRequest struct {
	UserID          string     `json:"user_id"          validate:"required,uuid"`
	FarmID          string     `json:"farm_id"          validate:"required,uuid"`
	Position        string     `json:"position"         validate:"required,min=1,max=100"`
	EmploymentStart time.Time  `json:"employment_start" validate:"required"`
	EmploymentEnd   *time.Time `json:"employment_end"`
	SalaryAmount    *float64   `json:"salary_amount"    validate:"omitempty,gt=0"`
	SalaryCurrency  *string    `json:"salary_currency"  validate:"omitempty,len=3"`
}

type UpdateEmployeeRequest struct {
	Position       *string    `json:"position"        validate:"omitempty,min=1,max=100"`
	EmploymentEnd  *time.Time `json:"employment_end"`
	SalaryAmount   *float64   `json:"salary_amount"   validate:"omitempty,gt=0"`
	SalaryCurrency *string    `json:"salary_currency" validate:"omitempty,len=3"`
}

type EmployeeResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	FarmID          string     `json:"farm_id"`
	Position        string     `json:"position"`
	EmploymentStart time.Time  `json:"employment_start"`
	EmploymentEnd   *time.Time `json:"employment_end,omitempty"`
	SalaryAmount    *float64   `json:"salary_amount,omitempty"`
	SalaryCurrency  string     `json:"salary_currency"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	Version         int        `json:"version"`
}

type ListUsersParams struct {
	Page     int
	PageSize int
	Search   string
	Role     string
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Phone:       u.Phone,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLogin:   u.LastLogin,
		ProfileData: u.ProfileData,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		Version:     u.Version,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}

func ToEmployeeResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID,
		UserID:          e.UserID,
		FarmID:          e.FarmID,
		Position:        e.Position,
		EmploymentStart: e.EmploymentStart,
		EmploymentEnd:   e.EmploymentEnd,
		SalaryAmount:    e.SalaryAmount,
		SalaryCurrency:  e.SalaryCurrency,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		Version:         e.Version,
	}
}

func ToEmployeeResponseList(employees []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, ToEmployeeResponse(&employees[i]))
	}
	return responses
}
