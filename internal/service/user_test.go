package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports/mocks"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func validSignup() domain.CreateUserInput {
	return domain.CreateUserInput{
		Name:        "Alice Tan",
		Gender:      "Female",
		Birthday:    time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		PhoneNumber: "+60 12-345 6789",
		Email:       "alice@example.com",
		Username:    "alice_90",
		Password:    "Str0ng&Pass",
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice_90" &&
			u.Role == domain.RoleNormal &&
			u.PasswordHash != "" &&
			u.PasswordHash != "Str0ng&Pass"
	})).Return(nil)

	user, err := svc.Signup(context.Background(), validSignup())

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, domain.RoleNormal, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ng&Pass")))
}

func TestUserService_Signup_ForcesNormalRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	input := validSignup()
	input.Role = domain.RoleAdmin

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleNormal
	})).Return(nil)

	user, err := svc.Signup(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleNormal, user.Role)
}

func TestUserService_Signup_ValidationFailures(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	tests := []struct {
		name   string
		mutate func(*domain.CreateUserInput)
	}{
		{"short username", func(in *domain.CreateUserInput) { in.Username = "ab" }},
		{"long username", func(in *domain.CreateUserInput) { in.Username = "averyverylongname" }},
		{"username with symbols", func(in *domain.CreateUserInput) { in.Username = "alice!" }},
		{"short name", func(in *domain.CreateUserInput) { in.Name = "A" }},
		{"name with digits", func(in *domain.CreateUserInput) { in.Name = "Alice 2" }},
		{"short password", func(in *domain.CreateUserInput) { in.Password = "S&0rt" }},
		{"password without uppercase", func(in *domain.CreateUserInput) { in.Password = "weak&pass1" }},
		{"password without special", func(in *domain.CreateUserInput) { in.Password = "Weakpass11" }},
		{"bad email", func(in *domain.CreateUserInput) { in.Email = "not-an-email" }},
		{"short phone", func(in *domain.CreateUserInput) { in.PhoneNumber = "12345" }},
		{"missing birthday", func(in *domain.CreateUserInput) { in.Birthday = time.Time{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := validSignup()
			tc.mutate(&input)

			_, err := svc.Signup(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Signup_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Signup(context.Background(), validSignup())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserService_Create_NonAdminDenied(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}

	_, err := svc.Create(context.Background(), actor, validSignup())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUserService_Create_AdminSetsRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	actor := domain.Actor{ID: "admin", Role: domain.RoleAdmin}
	input := validSignup()
	input.Role = domain.RoleAdmin

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleAdmin
	})).Return(nil)

	user, err := svc.Create(context.Background(), actor, input)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestUserService_Login_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng&Pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(mock.Anything, "alice_90").Return(&domain.User{
		ID:           "u1",
		Username:     "alice_90",
		PasswordHash: string(hash),
		Role:         domain.RoleNormal,
	}, nil)

	user, token, err := svc.Login(context.Background(), "alice_90", "Str0ng&Pass")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng&Pass"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().GetByUsername(mock.Anything, "alice_90").Return(&domain.User{
		ID:           "u1",
		PasswordHash: string(hash),
	}, nil)

	_, _, err = svc.Login(context.Background(), "alice_90", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLogin)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	repo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidLogin)
}

func TestUserService_GetByID_OtherUserDenied(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}

	_, err := svc.GetByID(context.Background(), actor, "u2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUserService_Update_RoleChangeByNonAdminDenied(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	role := domain.RoleAdmin

	_, err := svc.Update(context.Background(), actor, "u1", domain.UpdateUserInput{Role: &role})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUserService_Update_Self(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	actor := domain.Actor{ID: "u1", Role: domain.RoleNormal}
	newName := "Alice Lim"

	repo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Alice Tan"}, nil)
	repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == "Alice Lim"
	})).Return(nil)

	user, err := svc.Update(context.Background(), actor, "u1", domain.UpdateUserInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Alice Lim", user.Name)
}

func TestUserService_Delete_SelfDenied(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	actor := domain.Actor{ID: "admin", Role: domain.RoleAdmin}

	err := svc.Delete(context.Background(), actor, "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Delete_AdminDeletesOther(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, testJWTSecret, time.Hour)

	actor := domain.Actor{ID: "admin", Role: domain.RoleAdmin}

	repo.EXPECT().Delete(mock.Anything, "u1").Return(nil)

	err := svc.Delete(context.Background(), actor, "u1")

	require.NoError(t, err)
}
