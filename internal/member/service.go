package member

import (
	"context"
	"errors"

	"github.com/tgzgondoz/family-fitness-gym/internal/auth"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotAllowed     = errors.New("role not allowed for self-service registration")
	ErrAccountDisabled    = errors.New("account is deactivated")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	CreateStaff(ctx context.Context, managerID int, req CreateStaffRequest) (*User, error)
	RegisterPushToken(ctx context.Context, userID int, token string) error
	Deactivate(ctx context.Context, userID int) error
	ChangeRole(ctx context.Context, userID int, role string) error
	List(ctx context.Context, role string) ([]User, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

// Register creates a client account. Requesting any other role is rejected
// outright; staff and manager accounts go through CreateStaff.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	if req.Role != "" && req.Role != RoleClient {
		return nil, "", "", ErrRoleNotAllowed
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	user, err := s.repo.Create(ctx, req.FullName, req.Email, req.Phone, passwordHash, RoleClient, nil)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.ID,
		user.Email,
		user.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	// Deactivation is the only removal mechanism, so it must close the
	// login door too.
	if !user.Active {
		return nil, "", "", ErrAccountDisabled
	}

	accessToken, refreshToken, err := auth.GenerateTokens(
		user.ID,
		user.Email,
		user.Role,
		s.jwtSecret,
		s.jwtSecret,
	)
	if err != nil {
		return nil, "", "", err
	}

	return user, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}
	if !user.Active {
		return "", nil, ErrAccountDisabled
	}

	newAccessToken, err := auth.GenerateAccessToken(user.ID, user.Email, user.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, user, nil
}

// CreateStaff records the creating manager in added_by.
func (s *service) CreateStaff(ctx context.Context, managerID int, req CreateStaffRequest) (*User, error) {
	if req.Role != RoleStaff && req.Role != RoleManager {
		return nil, ErrRoleNotAllowed
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.FullName, req.Email, req.Phone, passwordHash, req.Role, &managerID)
}

func (s *service) RegisterPushToken(ctx context.Context, userID int, token string) error {
	return s.repo.SetPushToken(ctx, userID, token)
}

func (s *service) Deactivate(ctx context.Context, userID int) error {
	return s.repo.SetActive(ctx, userID, false)
}

func (s *service) ChangeRole(ctx context.Context, userID int, role string) error {
	if !ValidRole(role) {
		return ErrRoleNotAllowed
	}
	return s.repo.UpdateRole(ctx, userID, role)
}

func (s *service) List(ctx context.Context, role string) ([]User, error) {
	return s.repo.List(ctx, role)
}
