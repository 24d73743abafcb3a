package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/emzola/scribe/data"
)

type users interface {
	RegisterUser(ctx context.Context, user *data.User) error
	GetUserByID(ctx context.Context, ID int64) (*data.User, error)
	GetUserByEmail(ctx context.Context, email string) (*data.User, error)
}

// RegisterUser registers a new user.
func (r *repository) RegisterUser(ctx context.Context, user *data.User) error {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version`
	args := []interface{}{user.Name, user.Email, user.Password.Hash}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.CreatedAt,
		&user.Version,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, "users_email_key"):
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// GetUserByID retrieves a user record by its ID.
func (r *repository) GetUserByID(ctx context.Context, ID int64) (*data.User, error) {
	if ID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, created_at, name, email, password_hash, version
		FROM users
		WHERE id = $1`
	return r.getUser(ctx, query, ID)
}

// GetUserByEmail retrieves a user record by its email.
func (r *repository) GetUserByEmail(ctx context.Context, email string) (*data.User, error) {
	query := `
		SELECT id, created_at, name, email, password_hash, version
		FROM users
		WHERE email = $1`
	return r.getUser(ctx, query, email)
}

func (r *repository) getUser(ctx context.Context, query string, arg interface{}) (*data.User, error) {
	var user data.User
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.CreatedAt,
		&user.Name,
		&user.Email,
		&user.Password.Hash,
		&user.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &user, nil
}
