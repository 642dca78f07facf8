// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

const userColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       email, password_hash, full_name, phone, role, is_active,
	       last_login, profile_data`

const employeeColumns = `id, created_at, updated_at, created_by_id, updated_by_id,
	       is_deleted, deleted_at, deleted_by_id, version,
	       user_id, farm_id, position, employment_start, employment_end,
	       salary_amount, salary_currency`

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	StampLastLogin(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, params ListUsersParams) ([]User, int, error)
	ListByRole(ctx context.Context, role string) ([]User, error)

	CreateEmployee(ctx context.Context, employee *Employee) error
	GetEmployeeByID(ctx context.Context, id string) (*Employee, error)
	ListEmployeesByFarm(ctx context.Context, farmID string) ([]Employee, error)
	UpdateEmployee(ctx context.Context, employee *Employee) error
	SoftDeleteEmployee(ctx context.Context, id, actorID string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, phone,
		                   role, is_active, profile_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Phone,
		user.Role,
		user.IsActive,
		user.ProfileData,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE id = $1 AND is_deleted = FALSE`, userColumns)

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE email = $1 AND is_deleted = FALSE`, userColumns)

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET email = $2, full_name = $3, phone = $4, role = $5,
		    profile_data = $6, updated_by_id = $7,
		    updated_at = NOW(), version = version + 1
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING updated_at, version`

	err := r.db.GetContext(ctx, user, query,
		user.ID,
		user.Email,
		user.FullName,
		user.Phone,
		user.Role,
		user.ProfileData,
		user.UpdatedByID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("update user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW(), version = version + 1
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return requireRowsAffected(result, "update password")
}

func (r *repository) StampLastLogin(ctx context.Context, id string) error {
	query := `
		UPDATE users
		SET last_login = NOW()
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("stamp last login: %w", err)
	}

	return requireRowsAffected(result, "stamp last login")
}

func (r *repository) SetActive(
	ctx context.Context,
	id string,
	active bool,
) error {
	query := `
		UPDATE users
		SET is_active = $2, updated_at = NOW(), version = version + 1
		WHERE id = $1 AND is_deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}

	return requireRowsAffected(result, "set user active")
}

func (r *repository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	params.Normalize()

	conditions := []string{"is_deleted = FALSE"}
	var args []any
	argIdx := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(email ILIKE $%d OR full_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	if params.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, params.Role)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM users WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		userColumns, whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (r *repository) ListByRole(
	ctx context.Context,
	role string,
) ([]User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE role = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC`, userColumns)

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, role); err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	return users, nil
}

func (r *repository) CreateEmployee(
	ctx context.Context,
	employee *Employee,
) error {
	query := `
		INSERT INTO employees (id, user_id, farm_id, position,
		                       employment_start, employment_end,
		                       salary_amount, salary_currency, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at, version`

	err := r.db.GetContext(ctx, employee, query,
		employee.ID,
		employee.UserID,
		employee.FarmID,
		employee.Position,
		employee.EmploymentStart,
		employee.EmploymentEnd,
		employee.SalaryAmount,
		employee.SalaryCurrency,
		employee.CreatedByID,
	)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create employee: %w", core.ErrDuplicateKey)
		}
		if core.IsForeignKeyViolation(err) {
			return fmt.Errorf("create employee: %w", core.ErrInvalidInput)
		}
		return fmt.Errorf("create employee: %w", err)
	}

	return nil
}

func (r *repository) GetEmployeeByID(
	ctx context.Context,
	id string,
) (*Employee, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE id = $1 AND is_deleted = FALSE`, employeeColumns)

	var employee Employee
	err := r.db.GetContext(ctx, &employee, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get employee: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}

	return &employee, nil
}

func (r *repository) ListEmployeesByFarm(
	ctx context.Context,
	farmID string,
) ([]Employee, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		WHERE farm_id = $1 AND is_deleted = FALSE
		ORDER BY employment_start DESC`, employeeColumns)

	var employees []Employee
	if err := r.db.SelectContext(ctx, &employees, query, farmID); err != nil {
		return nil, fmt.Errorf("list employees by farm: %w", err)
	}

	return employees, nil
}

func (r *repository) UpdateEmployee(
	ctx context.Context,
	employee *Employee,
) error {
	query := `
		UPDATE employees
		SET position = $2, employment_end = $3, salary_amount = $4,
		    salary_currency = $5, updated_by_id = $6,
		    updated_at = NOW(), version = version + 1
		WHERE id = $1 AND is_deleted = FALSE
		RETURNING updated_at, version`

	err := r.db.GetContext(ctx, employee, query,
		employee.ID,
		employee.Position,
		employee.EmploymentEnd,
		employee.SalaryAmount,
		employee.SalaryCurrency,
		employee.UpdatedByID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update employee: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}

	return nil
}

func (r *repository) SoftDeleteEmployee(
	ctx context.Context,
	id, actorID string,
) error {
	query := `
		UPDATE employees
		SET is_deleted = TRUE, deleted_at = NOW(), deleted_by_id = $2,
		    updated_at = NOW(), version = version + 1
		WHERE id = $1 AND is_deleted = FALSE`

	var actor *string
	if actorID != "" {
		actor = &actorID
	}

	result, err := r.db.ExecContext(ctx, query, id, actor)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}

	return requireRowsAffected(result, "delete employee")
}

func requireRowsAffected(result sql.Result, op string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
