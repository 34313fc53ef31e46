package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/hubber/internal/pkg/models"
)

// UserStore mirrors authenticated callers into the users table that rides,
// bookings and reviews reference
type UserStore struct {
	db *sqlx.DB
}

// NewUserStore creates a user store over the given handle
func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// EnsureUser inserts the principal when unknown. The token is the source of
// truth for the role, so a stored role that differs is overwritten.
func (s *UserStore) EnsureUser(ctx context.Context, principal models.Principal) error {
	query := `
		INSERT INTO users (id, role)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET role = EXCLUDED.role, updated_at = NOW()
		WHERE users.role IS DISTINCT FROM EXCLUDED.role
	`
	if _, err := s.db.ExecContext(ctx, query, principal.UserID, string(principal.Role)); err != nil {
		return fmt.Errorf("failed to sync user: %w", err)
	}
	return nil
}
