package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Session is a durable session record backing a signed authtoken (§10): the
// token column stores the opaque token string itself, not a secret, since
// the token's signature is what authenticates it — the row exists so a
// session can be revoked before its natural expiry.
type Session struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
	IsRevoked bool
}

// CreateSession persists a newly issued session token.
func (s *Store) CreateSession(ctx context.Context, id, userID, token string, expiresAt time.Time) (Session, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO sessions (id, user_id, token, created_at, expires_at, is_revoked) VALUES (?, ?, ?, ?, ?, 0)
`, id, userID, token, now.UnixMilli(), expiresAt.UTC().UnixMilli())
	if err != nil {
		return Session{}, fmt.Errorf("sqlite: create session: %w", err)
	}
	return Session{ID: id, UserID: userID, Token: token, CreatedAt: now, ExpiresAt: expiresAt.UTC()}, nil
}

// GetSessionByToken looks up a session by its token string. Callers must
// still check IsRevoked and ExpiresAt: this only reports whether a row
// exists. authtoken.Issuer.Verify checks only the token's signature; the
// token carries no expiry, so this row's ExpiresAt is the only expiry record.
func (s *Store) GetSessionByToken(ctx context.Context, token string) (Session, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, user_id, token, created_at, expires_at, is_revoked FROM sessions WHERE token = ?
`, token)
	var sess Session
	var createdAtMs, expiresAtMs int64
	var revoked int
	err := row.Scan(&sess.ID, &sess.UserID, &sess.Token, &createdAtMs, &expiresAtMs, &revoked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, fmt.Errorf("sqlite: scan session: %w", err)
	}
	sess.CreatedAt = time.UnixMilli(createdAtMs).UTC()
	sess.ExpiresAt = time.UnixMilli(expiresAtMs).UTC()
	sess.IsRevoked = revoked != 0
	return sess, nil
}

// RevokeSession marks a session as revoked; subsequent GetSessionByToken
// calls still return it (the caller decides what to do with IsRevoked) so a
// gateway can distinguish "never existed" from "revoked" when logging.
func (s *Store) RevokeSession(ctx context.Context, token string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE sessions SET is_revoked = 1 WHERE token = ?`, token)
	if err != nil {
		return fmt.Errorf("sqlite: revoke session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
