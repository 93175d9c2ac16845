package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/umyrahbh/healthassist/internal/auth"
	"github.com/umyrahbh/healthassist/internal/domain"
	"github.com/umyrahbh/healthassist/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo      ports.UserRepo
	jwtSecret string
	jwtTTL    time.Duration
}

func NewUserService(repo ports.UserRepo, jwtSecret string, jwtTTL time.Duration) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

// Signup registers a Normal user. Admin accounts are only created through
// the admin CRUD path.
func (s *UserService) Signup(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	input.Role = domain.RoleNormal
	return s.create(ctx, input)
}

// Create is the admin path: the actor chooses the role.
func (s *UserService) Create(ctx context.Context, actor domain.Actor, input domain.CreateUserInput) (*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	if input.Role == "" {
		input.Role = domain.RoleNormal
	}
	if input.Role != domain.RoleAdmin && input.Role != domain.RoleNormal {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}
	return s.create(ctx, input)
}

func (s *UserService) create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if err := validateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validatePhone(input.PhoneNumber); err != nil {
		return nil, err
	}
	if input.Birthday.IsZero() {
		return nil, fmt.Errorf("%w: birthday is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Gender:       input.Gender,
		Birthday:     input.Birthday,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access token carrying the
// user's id and role.
func (s *UserService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, "", domain.ErrInvalidLogin
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidLogin
	}

	token, err := auth.CreateAccessToken(s.jwtSecret, user.ID, user.Role, s.jwtTTL)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

func (s *UserService) GetByID(ctx context.Context, actor domain.Actor, id string) (*domain.User, error) {
	if !actor.CanAccessUser(id) {
		return nil, domain.ErrPermissionDenied
	}
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}
	return s.repo.List(ctx)
}

func (s *UserService) Update(ctx context.Context, actor domain.Actor, id string, input domain.UpdateUserInput) (*domain.User, error) {
	if !actor.CanAccessUser(id) {
		return nil, domain.ErrPermissionDenied
	}
	if input.Role != nil && !actor.IsAdmin() {
		return nil, domain.ErrPermissionDenied
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
		user.Name = *input.Name
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.Birthday != nil {
		user.Birthday = *input.Birthday
	}
	if input.PhoneNumber != nil {
		if err := validatePhone(*input.PhoneNumber); err != nil {
			return nil, err
		}
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Email != nil {
		if err := validateEmail(*input.Email); err != nil {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		if err := validatePassword(*input.Password); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	if input.Role != nil {
		if *input.Role != domain.RoleAdmin && *input.Role != domain.RoleNormal {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, *input.Role)
		}
		user.Role = *input.Role
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user and, by cascade, every appointment the user owns.
func (s *UserService) Delete(ctx context.Context, actor domain.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrPermissionDenied
	}
	if actor.ID == id {
		return fmt.Errorf("%w: cannot delete your own account", domain.ErrValidation)
	}
	return s.repo.Delete(ctx, id)
}
