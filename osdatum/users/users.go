// Package users is the user directory: one record per email, provisioned on
// first successful registration exchange.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new user directory repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create provisions a user record with the default free subscription.
// Returns ErrConflict if a record with the same email already exists.
func (r *Repository) Create(ctx context.Context, newUser NewUser) (*User, error) {
	var user User

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		newUser.Email,
		newUser.Name,
		newUser.PictureURL,
		newUser.ProviderSubjectID,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PictureURL,
		&user.ProviderSubjectID,
		&user.SubscriptionType,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		// ON CONFLICT DO NOTHING returns no row when the email is taken
		return nil, ErrConflict
	}

	if err != nil {
		return nil, fmt.Errorf("users: creating user: %w", err)
	}

	return &user, nil
}

// finds a user by email, the directory's unique key
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByEmail, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PictureURL,
		&user.ProviderSubjectID,
		&user.SubscriptionType,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("users: finding user by email: %w", err)
	}

	return &user, nil
}

// finds a user by the identity provider's subject id
func (r *Repository) FindBySubjectID(ctx context.Context, subjectID string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindBySubjectID, subjectID).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PictureURL,
		&user.ProviderSubjectID,
		&user.SubscriptionType,
		&user.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("users: finding user by subject id: %w", err)
	}

	return &user, nil
}
