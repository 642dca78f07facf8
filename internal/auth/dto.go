// AngelaMos | 2026
// dto.go

package auth

import (
	"encoding/json"
	"time"
)

type RegisterRequest struct {
	Email       string          `json:"email"        validate:"required,email,max=255"`
	Password    string          `json:"password"     validate:"required,min=8,max=128"`
	FullName    string          `json:"full_name"    validate:"required,min=1,max=255"`
	Phone       *string         `json:"phone"        validate:"omitempty,max=32"`
	Role        *string         `json:"role"         validate:"omitempty,max=32"`
	ProfileData json.RawMessage `json:"profile_data" validate:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
