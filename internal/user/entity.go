// AngelaMos | 2026
// entity.go

package user

import (
	"encoding/json"
	"time"

	"github.com/DennisRono/chavfana-backend/internal/auth"
	"github.com/DennisRono/chavfana-backend/internal/core"
)

type User struct {
	core.Record

	Email        string          `db:"email"`
	PasswordHash string          `db:"password_hash"`
	FullName     string          `db:"full_name"`
	Phone        *string         `db:"phone"`
	Role         string          `db:"role"`
	IsActive     bool            `db:"is_active"`
	LastLogin    *time.Time      `db:"last_login"`
	ProfileData  json.RawMessage `db:"profile_data"`
}

func (u *User) IsAdmin() bool {
	return u.Role == auth.RoleAdmin
}

type Employee struct {
	core.Record

	UserID          string     `db:"user_id"`
	FarmID          string     `db:"farm_id"`
	Position        string     `db:"position"`
	EmploymentStart time.Time  `db:"employment_start"`
	EmploymentEnd   *time.Time `db:"employment_end"`
	SalaryAmount    *float64   `db:"salary_amount"`
	SalaryCurrency  string     `db:"salary_currency"`
}
