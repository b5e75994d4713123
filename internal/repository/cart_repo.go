package repository

import (
	"context"
	"errors"
	"fmt"

	"eshop_backend/internal/model"

	"github.com/jackc/pgx/v5"
)

// CartRepository defines operations for cart data
type CartRepository interface {
	Save(ctx context.Context, cart *model.Cart) (*model.Cart, error)
	Update(ctx context.Context, cart *model.Cart) (*model.Cart, error)
	FindByID(ctx context.Context, id int) (*model.Cart, error)
	FindAll(ctx context.Context) ([]model.Cart, error)
	Delete(ctx context.Context, cart *model.Cart) error
	FindAllByUserAndPeriod(ctx context.Context, filter model.CartPeriodFilter) ([]model.Cart, error)
	FindByUserAndOpenStatus(ctx context.Context, userID int) (*model.Cart, error)
	UpdateStatus(ctx context.Context, cartID, closed int) error
}

type cartRepository struct {
	db DB
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db DB) CartRepository {
	return &cartRepository{db: db}
}

// Save inserts a new cart. A violated foreign key (unknown owner) is an
// absent result, matching the save contract of the user repository.
func (r *cartRepository) Save(ctx context.Context, cart *model.Cart) (*model.Cart, error) {
	sql := `INSERT INTO carts (user_id, creation_time, closed)
            VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, sql, cart.UserID, cart.CreationTime, cart.Closed).Scan(&cart.ID)
	if err != nil {
		if foreignKeyViolation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

// Update modifies an existing cart. A missing row is an absent result.
func (r *cartRepository) Update(ctx context.Context, cart *model.Cart) (*model.Cart, error) {
	sql := `UPDATE carts SET user_id = $1, creation_time = $2, closed = $3 WHERE id = $4`
	cmdTag, err := r.db.Exec(ctx, sql, cart.UserID, cart.CreationTime, cart.Closed, cart.ID)
	if err != nil {
		if foreignKeyViolation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, nil
	}
	return cart, nil
}

// FindByID retrieves a cart by its ID
func (r *cartRepository) FindByID(ctx context.Context, id int) (*model.Cart, error) {
	cart := &model.Cart{}
	sql := `SELECT id, user_id, creation_time, closed FROM carts WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&cart.ID, &cart.UserID, &cart.CreationTime, &cart.Closed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find cart by ID: %w", err)
	}
	return cart, nil
}

// FindAll retrieves every cart ordered by id
func (r *cartRepository) FindAll(ctx context.Context) ([]model.Cart, error) {
	sql := `SELECT id, user_id, creation_time, closed FROM carts ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query all carts: %w", err)
	}
	defer rows.Close()
	return scanCarts(rows)
}

// Delete removes the given cart. Deleting a missing record is a no-op.
func (r *cartRepository) Delete(ctx context.Context, cart *model.Cart) error {
	sql := `DELETE FROM carts WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, cart.ID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// FindAllByUserAndPeriod retrieves the user's carts whose creation time lies
// in the closed interval [TimeDown, TimeUp].
func (r *cartRepository) FindAllByUserAndPeriod(ctx context.Context, filter model.CartPeriodFilter) ([]model.Cart, error) {
	sql := `SELECT id, user_id, creation_time, closed FROM carts
            WHERE user_id = $1 AND creation_time >= $2 AND creation_time <= $3
            ORDER BY creation_time DESC`
	rows, err := r.db.Query(ctx, sql, filter.UserID, filter.TimeDown, filter.TimeUp)
	if err != nil {
		return nil, fmt.Errorf("failed to query carts by user and period: %w", err)
	}
	defer rows.Close()
	return scanCarts(rows)
}

// FindByUserAndOpenStatus retrieves the user's open cart. Nothing enforces a
// single open cart per user, so the most recently created one wins.
func (r *cartRepository) FindByUserAndOpenStatus(ctx context.Context, userID int) (*model.Cart, error) {
	cart := &model.Cart{}
	sql := `SELECT id, user_id, creation_time, closed FROM carts
            WHERE user_id = $1 AND closed = 0
            ORDER BY creation_time DESC LIMIT 1`
	err := r.db.QueryRow(ctx, sql, userID).Scan(&cart.ID, &cart.UserID, &cart.CreationTime, &cart.Closed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No open cart
		}
		return nil, fmt.Errorf("failed to find open cart by user: %w", err)
	}
	return cart, nil
}

// UpdateStatus sets the closed flag of the cart. Existence is the caller's
// concern; a missing row simply affects zero rows.
func (r *cartRepository) UpdateStatus(ctx context.Context, cartID, closed int) error {
	sql := `UPDATE carts SET closed = $1 WHERE id = $2`
	if _, err := r.db.Exec(ctx, sql, closed, cartID); err != nil {
		return fmt.Errorf("failed to update cart status: %w", err)
	}
	return nil
}

func scanCarts(rows pgx.Rows) ([]model.Cart, error) {
	var carts []model.Cart
	for rows.Next() {
		var c model.Cart
		if err := rows.Scan(&c.ID, &c.UserID, &c.CreationTime, &c.Closed); err != nil {
			return nil, fmt.Errorf("failed to scan cart row: %w", err)
		}
		carts = append(carts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart rows: %w", err)
	}
	return carts, nil
}
