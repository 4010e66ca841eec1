package users

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// returned when no user matches the lookup key
	ErrNotFound = errors.New("users: user not found")

	// returned when an insert lost the uniqueness race on email
	ErrConflict = errors.New("users: email already registered")
)

// handles user directory database operations
type Repository struct {
	db *pgxpool.Pool
}

// User represents a registered user record. A record is created exactly once,
// at first successful registration, and its display attributes are never
// updated by the exchange flow afterwards.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PictureURL        string    `json:"picture_url"`
	ProviderSubjectID string    `json:"-"` // identity provider's stable subject id, back-reference only
	SubscriptionType  string    `json:"subscription_type"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewUser carries the fields required to provision a user record.
// SubscriptionType and CreatedAt are assigned by the directory.
type NewUser struct {
	Email             string
	Name              string
	PictureURL        string
	ProviderSubjectID string
}
