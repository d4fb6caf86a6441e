package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// User is a durable account record. identifier is whatever the gateway's
// authenticate intent carries (a display handle, an email, a provider
// subject) — this spec places no constraints on its shape beyond uniqueness.
type User struct {
	ID          string
	Identifier  string
	DisplayName string
	CreatedAt   time.Time
}

// CreateUser inserts a new user, failing if identifier is already taken.
func (s *Store) CreateUser(ctx context.Context, id, identifier, displayName string) (User, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO users (id, identifier, display_name, created_at) VALUES (?, ?, ?, ?)
`, id, identifier, displayName, now.UnixMilli())
	if err != nil {
		return User{}, fmt.Errorf("sqlite: create user: %w", err)
	}
	return User{ID: id, Identifier: identifier, DisplayName: displayName, CreatedAt: now}, nil
}

// GetUserByIdentifier looks up a user by its unique identifier.
func (s *Store) GetUserByIdentifier(ctx context.Context, identifier string) (User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, identifier, display_name, created_at FROM users WHERE identifier = ?
`, identifier)
	return scanUser(row)
}

// GetUser looks up a user by id.
func (s *Store) GetUser(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, identifier, display_name, created_at FROM users WHERE id = ?
`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (User, error) {
	var u User
	var createdAtMs int64
	err := row.Scan(&u.ID, &u.Identifier, &u.DisplayName, &createdAtMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("sqlite: scan user: %w", err)
	}
	u.CreatedAt = time.UnixMilli(createdAtMs).UTC()
	return u, nil
}
