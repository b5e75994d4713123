package service

import (
	"context"
	"errors"
	"fmt"

	"eshop_backend/internal/model"
	"eshop_backend/internal/repository"
	"eshop_backend/internal/utils"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// AuthService resolves a login to a role-bearing credential and issues
// tokens for authenticated callers.
type AuthService interface {
	// Resolve loads the user behind a login and derives its role set:
	// always USER, plus ADMIN when the login is configured as an admin.
	Resolve(ctx context.Context, login string) (*model.User, []string, error)
	Login(ctx context.Context, login, password string) (*model.User, []string, string, error)
}

type authService struct {
	userRepo    repository.UserRepository
	jwtUtil     *utils.JWTUtil
	adminLogins map[string]struct{}
}

// NewAuthService creates a new AuthService. adminLogins is the policy set of
// logins granted the ADMIN role; the legacy default is the single literal
// "admin".
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, adminLogins []string) AuthService {
	set := make(map[string]struct{}, len(adminLogins))
	for _, l := range adminLogins {
		set[l] = struct{}{}
	}
	return &authService{
		userRepo:    userRepo,
		jwtUtil:     jwtUtil,
		adminLogins: set,
	}
}

func (s *authService) Resolve(ctx context.Context, login string) (*model.User, []string, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		return nil, nil, fmt.Errorf("error finding user by login: %w", err)
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	roles := []string{model.RoleUser}
	if _, ok := s.adminLogins[user.Login]; ok {
		roles = append(roles, model.RoleAdmin)
	}
	return user, roles, nil
}

// Login authenticates a user and returns its role set and a JWT token
func (s *authService) Login(ctx context.Context, login, password string) (*model.User, []string, string, error) {
	user, roles, err := s.Resolve(ctx, login)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil, "", ErrInvalidCredentials
		}
		return nil, nil, "", err
	}

	if !utils.VerifyPassword(user.Password, password) {
		return nil, nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Login, roles)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, roles, token, nil
}
