// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrInvalidInput   = errors.New("invalid input")
	ErrBusinessRule   = errors.New("business rule violation")
	ErrAuthentication = errors.New("authentication failed")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrDatabase       = errors.New("database error")
)

type AppError struct {
	Err     error
	Message string
	Status  int
	Code    string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(err error, message string, status int, code string) *AppError {
	return &AppError{
		Err:     err,
		Message: message,
		Status:  status,
		Code:    code,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// NotFoundError carries the entity type and identifier so the boundary
// layer can surface a 404 naming what was missing.
func NotFoundError(resourceType, id string) *AppError {
	return NewAppError(
		ErrNotFound,
		fmt.Sprintf("%s with id %s not found", resourceType, id),
		http.StatusNotFound,
		"NOT_FOUND",
	)
}

func BusinessError(message string) *AppError {
	return NewAppError(
		ErrBusinessRule,
		message,
		http.StatusBadRequest,
		"BUSINESS_RULE_VIOLATION",
	)
}

func AuthenticationError(message string) *AppError {
	return NewAppError(
		ErrAuthentication,
		message,
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
	)
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return NewAppError(
		ErrUnauthorized,
		message,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
	)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrForbidden, message, http.StatusForbidden, "FORBIDDEN")
}

func DuplicateError(field string) *AppError {
	return NewAppError(
		ErrDuplicateKey,
		fmt.Sprintf("%s already exists", field),
		http.StatusBadRequest,
		"DUPLICATE",
	)
}

func TokenExpiredError() *AppError {
	return NewAppError(
		ErrTokenExpired,
		"token has expired",
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
	)
}

func TokenInvalidError() *AppError {
	return NewAppError(
		ErrTokenInvalid,
		"token is invalid",
		http.StatusUnauthorized,
		"TOKEN_INVALID",
	)
}

// DatabaseError wraps an unexpected storage failure, keeping the original
// error in the cause chain so call sites can still log it.
func DatabaseError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDatabase, err)
}
