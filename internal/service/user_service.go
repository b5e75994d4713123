package service

import (
	"context"
	"fmt"

	"eshop_backend/internal/model"
	"eshop_backend/internal/repository"
)

// UserService wraps the user repository. It adds no logic beyond pass-through
// CRUD; an absent result propagates as (nil, nil).
type UserService interface {
	Save(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	FindByLoginAndPassword(ctx context.Context, login, password string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, user *model.User) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Save(ctx context.Context, user *model.User) (*model.User, error) {
	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user in repo: %w", err)
	}
	return saved, nil
}

func (s *userService) Update(ctx context.Context, user *model.User) (*model.User, error) {
	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user in repo: %w", err)
	}
	return updated, nil
}

func (s *userService) FindByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	user, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by login: %w", err)
	}
	return user, nil
}

func (s *userService) FindByLoginAndPassword(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.repo.FindByLoginAndPassword(ctx, login, password)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by login and password: %w", err)
	}
	return user, nil
}

func (s *userService) FindAll(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users from repo: %w", err)
	}
	return users, nil
}

func (s *userService) Delete(ctx context.Context, user *model.User) error {
	if err := s.repo.Delete(ctx, user); err != nil {
		return fmt.Errorf("failed to delete user in repo: %w", err)
	}
	return nil
}
