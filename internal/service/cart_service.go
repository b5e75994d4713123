package service

import (
	"context"
	"fmt"
	"time"

	"eshop_backend/internal/model"
	"eshop_backend/internal/repository"
)

// CartService wraps the cart repository and adds the status-update semantics.
type CartService interface {
	Save(ctx context.Context, cart *model.Cart) (*model.Cart, error)
	Update(ctx context.Context, cart *model.Cart) (*model.Cart, error)
	FindByID(ctx context.Context, id int) (*model.Cart, error)
	FindAll(ctx context.Context) ([]model.Cart, error)
	Delete(ctx context.Context, cart *model.Cart) error
	GetAllByUserAndPeriod(ctx context.Context, userID int, timeDown, timeUp int64) ([]model.Cart, error)
	GetByUserAndOpenStatus(ctx context.Context, userID int) (*model.Cart, error)
	UpdateStatus(ctx context.Context, cartID, closed int) error
}

type cartService struct {
	repo repository.CartRepository
}

// NewCartService creates a new CartService
func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) Save(ctx context.Context, cart *model.Cart) (*model.Cart, error) {
	if cart.CreationTime == 0 {
		cart.CreationTime = time.Now().UnixMilli()
	}
	saved, err := s.repo.Save(ctx, cart)
	if err != nil {
		return nil, fmt.Errorf("failed to save cart in repo: %w", err)
	}
	return saved, nil
}

func (s *cartService) Update(ctx context.Context, cart *model.Cart) (*model.Cart, error) {
	updated, err := s.repo.Update(ctx, cart)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart in repo: %w", err)
	}
	return updated, nil
}

func (s *cartService) FindByID(ctx context.Context, id int) (*model.Cart, error) {
	cart, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find cart by ID: %w", err)
	}
	return cart, nil
}

func (s *cartService) FindAll(ctx context.Context) ([]model.Cart, error) {
	carts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all carts from repo: %w", err)
	}
	return carts, nil
}

func (s *cartService) Delete(ctx context.Context, cart *model.Cart) error {
	if err := s.repo.Delete(ctx, cart); err != nil {
		return fmt.Errorf("failed to delete cart in repo: %w", err)
	}
	return nil
}

func (s *cartService) GetAllByUserAndPeriod(ctx context.Context, userID int, timeDown, timeUp int64) ([]model.Cart, error) {
	filter := model.CartPeriodFilter{UserID: userID, TimeDown: timeDown, TimeUp: timeUp}
	carts, err := s.repo.FindAllByUserAndPeriod(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get carts by user and period: %w", err)
	}
	return carts, nil
}

func (s *cartService) GetByUserAndOpenStatus(ctx context.Context, userID int) (*model.Cart, error) {
	cart, err := s.repo.FindByUserAndOpenStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get open cart by user: %w", err)
	}
	return cart, nil
}

// UpdateStatus flips the closed flag of the cart. It does not re-validate
// existence; the handler checks that before calling.
func (s *cartService) UpdateStatus(ctx context.Context, cartID, closed int) error {
	if err := s.repo.UpdateStatus(ctx, cartID, closed); err != nil {
		return fmt.Errorf("failed to update cart status in repo: %w", err)
	}
	return nil
}
