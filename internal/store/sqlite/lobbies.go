package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btuckerc/traderoads/internal/catan/model"
)

// LobbyStatus mirrors the lobbies.status enum from §3's lobby record.
type LobbyStatus string

const (
	LobbyStatusWaiting LobbyStatus = "waiting"
	LobbyStatusStarted LobbyStatus = "started"
	LobbyStatusClosed  LobbyStatus = "closed"
)

// LobbyMember is one seated (or seating) player, persisted as part of
// lobbies.players_json. Color is empty until the member selects one.
type LobbyMember struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Color       string `json:"color,omitempty"`
	Ready       bool   `json:"ready"`
	Host        bool   `json:"host"`
}

// Lobby is the durable lobby record from §4.11.
type Lobby struct {
	ID                string
	Code              string
	Name              string
	HostUserID        string
	PlayerMode        model.PlayerMode
	UseBeginnerLayout bool
	Members           []LobbyMember
	Status            LobbyStatus
	GameID            *string
	CreatedAt         time.Time
}

// CreateLobby inserts a new waiting lobby. The caller is responsible for
// drawing a collision-free code (§4.11 "on collision, draw again") before
// calling this; a UNIQUE constraint on lobbies.code is the backstop.
func (s *Store) CreateLobby(ctx context.Context, l Lobby) error {
	membersJSON, err := json.Marshal(l.Members)
	if err != nil {
		return fmt.Errorf("sqlite: marshal lobby members: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO lobbies (id, code, name, host_user_id, player_mode, use_beginner_layout, players_json, status, game_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL, ?)
`, l.ID, l.Code, l.Name, l.HostUserID, string(l.PlayerMode), boolToInt(l.UseBeginnerLayout), string(membersJSON), string(LobbyStatusWaiting), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("sqlite: create lobby: %w", err)
	}
	return nil
}

// GetLobby returns a lobby by id.
func (s *Store) GetLobby(ctx context.Context, id string) (Lobby, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, code, name, host_user_id, player_mode, use_beginner_layout, players_json, status, game_id, created_at
FROM lobbies WHERE id = ?
`, id)
	return scanLobby(row)
}

// GetLobbyByCode returns a lobby by its 4-character join code.
func (s *Store) GetLobbyByCode(ctx context.Context, code string) (Lobby, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, code, name, host_user_id, player_mode, use_beginner_layout, players_json, status, game_id, created_at
FROM lobbies WHERE code = ?
`, code)
	return scanLobby(row)
}

// CodeExists reports whether a lobby already holds code, used by the Lobby
// Service's collision-retry loop when drawing a fresh 4-character code.
func (s *Store) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM lobbies WHERE code = ?`, code).Scan(&count); err != nil {
		return false, fmt.Errorf("sqlite: code exists: %w", err)
	}
	return count > 0, nil
}

// UpdateLobby persists the full current state of a lobby (members, status,
// game id). The Lobby Service always reads-then-writes under its own
// in-process mutex per lobby id, so this does not need optimistic
// concurrency control at the store layer.
func (s *Store) UpdateLobby(ctx context.Context, l Lobby) error {
	membersJSON, err := json.Marshal(l.Members)
	if err != nil {
		return fmt.Errorf("sqlite: marshal lobby members: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `
UPDATE lobbies SET name = ?, host_user_id = ?, players_json = ?, status = ?, game_id = ?
WHERE id = ?
`, l.Name, l.HostUserID, string(membersJSON), string(l.Status), l.GameID, l.ID)
	if err != nil {
		return fmt.Errorf("sqlite: update lobby: %w", err)
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

// DeleteLobby removes a lobby record outright, used when the last member
// leaves an empty waiting lobby (§4.11 "leaving an empty lobby deletes it").
func (s *Store) DeleteLobby(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM lobbies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete lobby: %w", err)
	}
	return nil
}

// ListWaitingLobbiesForUser scans lobbies in status waiting for one
// containing userID among its members, the durable resolution of "the
// user's current lobby" (§4.11: "the persisted record is the source of
// truth"). Returns zero or one lobby; a user cannot be seated in two
// waiting lobbies at once because join/create always check this first.
func (s *Store) ListWaitingLobbiesForUser(ctx context.Context, userID string) (Lobby, bool, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, code, name, host_user_id, player_mode, use_beginner_layout, players_json, status, game_id, created_at
FROM lobbies WHERE status = ?
`, string(LobbyStatusWaiting))
	if err != nil {
		return Lobby{}, false, fmt.Errorf("sqlite: list waiting lobbies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLobbyRows(rows)
		if err != nil {
			return Lobby{}, false, err
		}
		for _, m := range l.Members {
			if m.UserID == userID {
				return l, true, nil
			}
		}
	}
	if err := rows.Err(); err != nil {
		return Lobby{}, false, fmt.Errorf("sqlite: iterate lobbies: %w", err)
	}
	return Lobby{}, false, nil
}

func scanLobby(row *sql.Row) (Lobby, error) {
	var l Lobby
	var mode string
	var beginner int
	var membersJSON string
	var status string
	var gameID sql.NullString
	var createdAtMs int64
	err := row.Scan(&l.ID, &l.Code, &l.Name, &l.HostUserID, &mode, &beginner, &membersJSON, &status, &gameID, &createdAtMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lobby{}, ErrNotFound
		}
		return Lobby{}, fmt.Errorf("sqlite: scan lobby: %w", err)
	}
	return finishLobby(l, mode, beginner, membersJSON, status, gameID, createdAtMs)
}

func scanLobbyRows(rows *sql.Rows) (Lobby, error) {
	var l Lobby
	var mode string
	var beginner int
	var membersJSON string
	var status string
	var gameID sql.NullString
	var createdAtMs int64
	err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.HostUserID, &mode, &beginner, &membersJSON, &status, &gameID, &createdAtMs)
	if err != nil {
		return Lobby{}, fmt.Errorf("sqlite: scan lobby row: %w", err)
	}
	return finishLobby(l, mode, beginner, membersJSON, status, gameID, createdAtMs)
}

func finishLobby(l Lobby, mode string, beginner int, membersJSON, status string, gameID sql.NullString, createdAtMs int64) (Lobby, error) {
	l.PlayerMode = model.PlayerMode(mode)
	l.UseBeginnerLayout = beginner != 0
	l.Status = LobbyStatus(status)
	l.CreatedAt = time.UnixMilli(createdAtMs).UTC()
	if gameID.Valid {
		g := gameID.String
		l.GameID = &g
	}
	if err := json.Unmarshal([]byte(membersJSON), &l.Members); err != nil {
		return Lobby{}, fmt.Errorf("sqlite: unmarshal lobby members: %w", err)
	}
	return l, nil
}
