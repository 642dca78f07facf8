// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/DennisRono/chavfana-backend/internal/auth"
	"github.com/DennisRono/chavfana-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, core.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	params auth.CreateUserParams,
) (*auth.UserInfo, error) {
	role := params.Role
	if role == "" {
		role = auth.RoleFarmer
	}

	user := &User{
		Record:       core.Record{ID: uuid.New().String()},
		Email:        core.NormalizeEmail(params.Email),
		PasswordHash: params.PasswordHash,
		FullName:     params.FullName,
		Phone:        params.Phone,
		Role:         role,
		IsActive:     true,
		ProfileData:  params.ProfileData,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) StampLastLogin(ctx context.Context, userID string) error {
	return s.repo.StampLastLogin(ctx, userID)
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetUserByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, core.NormalizeEmail(email))
}

// UpdateUser applies a partial merge: only non-nil request fields
// replace the stored values.
func (s *Service) UpdateUser(
	ctx context.Context,
	id, actorID string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = core.NormalizeEmail(*req.Email)
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Role != nil {
		if !auth.IsValidRole(*req.Role) {
			return nil, fmt.Errorf(
				"update user: invalid role %q: %w",
				*req.Role,
				core.ErrInvalidInput,
			)
		}
		user.Role = *req.Role
	}
	if req.ProfileData != nil {
		user.ProfileData = *req.ProfileData
	}

	if actorID != "" {
		user.UpdatedByID = &actorID
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// ChangeUserPassword verifies the current password before storing a
// new hash.
func (s *Service) ChangeUserPassword(
	ctx context.Context,
	id, currentPassword, newPassword string,
) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	valid, err := core.VerifyPasswordTimingSafe(
		currentPassword,
		&user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return fmt.Errorf(
			"change password: %w",
			core.ErrAuthentication,
		)
	}

	newHash, err := core.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.UpdatePassword(ctx, id, newHash)
}

func (s *Service) ActivateUser(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, true)
}

func (s *Service) DeactivateUser(ctx context.Context, id string) error {
	return s.repo.SetActive(ctx, id, false)
}

func (s *Service) ListUsers(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	return s.repo.List(ctx, params)
}

func (s *Service) ListUsersByRole(
	ctx context.Context,
	role string,
) ([]User, error) {
	if !auth.IsValidRole(role) {
		return nil, fmt.Errorf(
			"list users: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	return s.repo.ListByRole(ctx, role)
}

func (s *Service) CreateEmployee(
	ctx context.Context,
	actorID string,
	req CreateEmployeeRequest,
) (*Employee, error) {
	if err := core.DateOrdered(
		&req.EmploymentStart,
		req.EmploymentEnd,
		"employment_start",
		"employment_end",
	); err != nil {
		return nil, err
	}

	// the user must exist and cannot already hold a position
	if _, err := s.repo.GetByID(ctx, req.UserID); err != nil {
		return nil, fmt.Errorf("resolve employee user: %w", err)
	}

	currency := "USD"
	if req.SalaryCurrency != nil {
		currency = core.NormalizeCode(*req.SalaryCurrency)
	}

	employee := &Employee{
		Record:          core.Record{ID: uuid.New().String()},
		UserID:          req.UserID,
		FarmID:          req.FarmID,
		Position:        req.Position,
		EmploymentStart: req.EmploymentStart,
		EmploymentEnd:   req.EmploymentEnd,
		SalaryAmount:    req.SalaryAmount,
		SalaryCurrency:  currency,
	}

	if actorID != "" {
		employee.CreatedByID = &actorID
	}

	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *Service) GetEmployee(
	ctx context.Context,
	id string,
) (*Employee, error) {
	return s.repo.GetEmployeeByID(ctx, id)
}

func (s *Service) ListEmployeesByFarm(
	ctx context.Context,
	farmID string,
) ([]Employee, error) {
	return s.repo.ListEmployeesByFarm(ctx, farmID)
}

func (s *Service) UpdateEmployee(
	ctx context.Context,
	id, actorID string,
	req UpdateEmployeeRequest,
) (*Employee, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.EmploymentEnd != nil {
		employee.EmploymentEnd = req.EmploymentEnd
	}
	if req.SalaryAmount != nil {
		employee.SalaryAmount = req.SalaryAmount
	}
	if req.SalaryCurrency != nil {
		employee.SalaryCurrency = core.NormalizeCode(*req.SalaryCurrency)
	}

	if err := core.DateOrdered(
		&employee.EmploymentStart,
		employee.EmploymentEnd,
		"employment_start",
		"employment_end",
	); err != nil {
		return nil, err
	}

	if actorID != "" {
		employee.UpdatedByID = &actorID
	}

	if err := s.repo.UpdateEmployee(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id, actorID string) error {
	return s.repo.SoftDeleteEmployee(ctx, id, actorID)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Phone:        u.Phone,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
