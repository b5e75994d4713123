package repository

import (
	"context"
	"errors"
	"fmt"

	"eshop_backend/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data. Lookups that match no
// record return (nil, nil) rather than an error.
type UserRepository interface {
	Save(ctx context.Context, user *model.User) (*model.User, error)
	Update(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	FindByLoginAndPassword(ctx context.Context, login, password string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, user *model.User) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Save inserts a new user. A duplicate login hits the unique constraint and
// is reported as an absent result, not an error.
func (r *userRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	sql := `INSERT INTO users (login, password, first_name, last_name)
            VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Login, user.Password, user.FirstName, user.LastName).Scan(&user.ID)
	if err != nil {
		if uniqueViolation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Update modifies an existing user. A missing row is an absent result.
func (r *userRepository) Update(ctx context.Context, user *model.User) (*model.User, error) {
	sql := `UPDATE users SET login = $1, password = $2, first_name = $3, last_name = $4 WHERE id = $5`
	cmdTag, err := r.db.Exec(ctx, sql, user.Login, user.Password, user.FirstName, user.LastName, user.ID)
	if err != nil {
		if uniqueViolation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, nil
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, login, password, first_name, last_name FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&user.ID, &user.Login, &user.Password, &user.FirstName, &user.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindByLogin retrieves a user by their login
func (r *userRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, login, password, first_name, last_name FROM users WHERE login = $1`
	err := r.db.QueryRow(ctx, sql, login).Scan(&user.ID, &user.Login, &user.Password, &user.FirstName, &user.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by login: %w", err)
	}
	return user, nil
}

// FindByLoginAndPassword matches both columns literally, preserving the
// legacy admin lookup contract.
func (r *userRepository) FindByLoginAndPassword(ctx context.Context, login, password string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT id, login, password, first_name, last_name FROM users WHERE login = $1 AND password = $2`
	err := r.db.QueryRow(ctx, sql, login, password).Scan(&user.ID, &user.Login, &user.Password, &user.FirstName, &user.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by login and password: %w", err)
	}
	return user, nil
}

// FindAll retrieves every user ordered by id
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	sql := `SELECT id, login, password, first_name, last_name FROM users ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query all users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.Password, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// Delete removes the given user. Deleting a missing record is a no-op.
func (r *userRepository) Delete(ctx context.Context, user *model.User) error {
	sql := `DELETE FROM users WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
