// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DennisRono/chavfana-backend/internal/core"
)

type stubUserProvider struct {
	usersByEmail map[string]*UserInfo
	usersByID    map[string]*UserInfo
	createErr    error
	lastCreate   CreateUserParams
	lastLoginIDs []string
	newPassword  string
}

func newStubUserProvider() *stubUserProvider {
	return &stubUserProvider{
		usersByEmail: make(map[string]*UserInfo),
		usersByID:    make(map[string]*UserInfo),
	}
}

func (s *stubUserProvider) add(user *UserInfo) {
	s.usersByEmail[user.Email] = user
	s.usersByID[user.ID] = user
}

func (s *stubUserProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	user, ok := s.usersByEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return user, nil
}

func (s *stubUserProvider) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	user, ok := s.usersByID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return user, nil
}

func (s *stubUserProvider) Create(
	_ context.Context,
	params CreateUserParams,
) (*UserInfo, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.lastCreate = params
	user := &UserInfo{
		ID:           "user-1",
		Email:        params.Email,
		FullName:     params.FullName,
		Phone:        params.Phone,
		PasswordHash: params.PasswordHash,
		Role:         params.Role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	s.add(user)
	return user, nil
}

func (s *stubUserProvider) UpdatePassword(
	_ context.Context,
	_, passwordHash string,
) error {
	s.newPassword = passwordHash
	return nil
}

func (s *stubUserProvider) StampLastLogin(_ context.Context, id string) error {
	s.lastLoginIDs = append(s.lastLoginIDs, id)
	return nil
}

func newTestService(t *testing.T) (*Service, *stubUserProvider) {
	t.Helper()
	provider := newStubUserProvider()
	return NewService(newTestJWTManager(t, time.Hour), provider), provider
}

func addUser(t *testing.T, provider *stubUserProvider, password string) *UserInfo {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	user := &UserInfo{
		ID:           "user-1",
		Email:        "farmer@example.com",
		FullName:     "Test Farmer",
		PasswordHash: hash,
		Role:         RoleFarmer,
		IsActive:     true,
	}
	provider.add(user)
	return user
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Farmer@Example.COM",
		Password: "long enough password",
		FullName: "Test Farmer",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "farmer@example.com", resp.User.Email)
	assert.Equal(t, RoleFarmer, resp.User.Role)
}

func TestRegisterWithExplicitRole(t *testing.T) {
	svc, provider := newTestService(t)

	role := RoleVet
	profile := json.RawMessage(`{"clinic":"Nakuru Vet Services"}`)
	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:       "vet@example.com",
		Password:    "long enough password",
		FullName:    "Test Vet",
		Role:        &role,
		ProfileData: profile,
	})
	require.NoError(t, err)
	assert.Equal(t, RoleVet, resp.User.Role)
	assert.Equal(t, RoleVet, provider.lastCreate.Role)
	assert.JSONEq(t, string(profile), string(provider.lastCreate.ProfileData))
}

func TestRegisterUnknownRole(t *testing.T) {
	svc, _ := newTestService(t)

	role := "SUPERUSER"
	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "farmer@example.com",
		Password: "long enough password",
		FullName: "Test Farmer",
		Role:     &role,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, provider := newTestService(t)
	provider.createErr = core.ErrDuplicateKey

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "farmer@example.com",
		Password: "long enough password",
		FullName: "Test Farmer",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginSuccess(t *testing.T) {
	svc, provider := newTestService(t)
	addUser(t, provider, "correct password")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  FARMER@example.com ",
		Password: "correct password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, []string{"user-1"}, provider.lastLoginIDs)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, provider := newTestService(t)
	addUser(t, provider, "correct password")

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "farmer@example.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, provider.lastLoginIDs)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, provider := newTestService(t)
	user := addUser(t, provider, "correct password")
	user.IsActive = false

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "farmer@example.com",
		Password: "correct password",
	})
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestLoginInactiveAccountWrongPassword(t *testing.T) {
	svc, provider := newTestService(t)
	user := addUser(t, provider, "correct password")
	user.IsActive = false

	// the inactive check comes before password verification
	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "farmer@example.com",
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestChangePassword(t *testing.T) {
	svc, provider := newTestService(t)
	addUser(t, provider, "old password")

	err := svc.ChangePassword(
		context.Background(),
		"user-1",
		"old password",
		"new password",
	)
	require.NoError(t, err)
	assert.NotEmpty(t, provider.newPassword)

	valid, err := core.VerifyPassword("new password", provider.newPassword)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, provider := newTestService(t)
	addUser(t, provider, "old password")

	err := svc.ChangePassword(
		context.Background(),
		"user-1",
		"not the old password",
		"new password",
	)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, provider.newPassword)
}
