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

// GameStatus mirrors the games.status enum from §3's game record.
type GameStatus string

const (
	GameStatusActive    GameStatus = "active"
	GameStatusCompleted GameStatus = "completed"
	GameStatusAbandoned GameStatus = "abandoned"
)

// GameRoster is one seated player, persisted as part of games.players_json.
type GameRoster struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Color       string `json:"color"`
}

// Game is the durable game record from §3/§6.
type Game struct {
	ID                string
	PlayerMode        model.PlayerMode
	UseBeginnerLayout bool
	BoardSeed         uint64
	Players           []GameRoster
	Status            GameStatus
	WinnerUserID      *string
	EventCount        int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CreateGame inserts a new active game record.
func (s *Store) CreateGame(ctx context.Context, g Game) error {
	playersJSON, err := json.Marshal(g.Players)
	if err != nil {
		return fmt.Errorf("sqlite: marshal players: %w", err)
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
INSERT INTO games (id, player_mode, use_beginner_layout, board_seed, players_json, status, winner_user_id, event_count, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, NULL, 0, ?, ?)
`, g.ID, string(g.PlayerMode), boolToInt(g.UseBeginnerLayout), int64(g.BoardSeed), string(playersJSON), string(GameStatusActive), now.UnixMilli(), now.UnixMilli())
	if err != nil {
		return fmt.Errorf("sqlite: create game: %w", err)
	}
	return nil
}

// GetGame returns a game record by id.
func (s *Store) GetGame(ctx context.Context, id string) (Game, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, player_mode, use_beginner_layout, board_seed, players_json, status, winner_user_id, event_count, created_at, updated_at
FROM games WHERE id = ?
`, id)
	return scanGame(row)
}

// SetGameStatus transitions a game's status, optionally recording a winner.
// Used when the reducer emits playerWon (status=completed) or when the
// server abandons a game with no remaining connections.
func (s *Store) SetGameStatus(ctx context.Context, id string, status GameStatus, winnerUserID *string) error {
	res, err := s.db.ExecContext(ctx, `
UPDATE games SET status = ?, winner_user_id = ?, updated_at = ? WHERE id = ?
`, string(status), winnerUserID, time.Now().UTC().UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("sqlite: set game status: %w", err)
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

// ListActiveGames returns every game record with status=active, used at
// process startup to recover each one's in-memory runtime actor (§4.8
// "Recovery on process restart").
func (s *Store) ListActiveGames(ctx context.Context) ([]Game, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, player_mode, use_beginner_layout, board_seed, players_json, status, winner_user_id, event_count, created_at, updated_at
FROM games WHERE status = ?
`, string(GameStatusActive))
	if err != nil {
		return nil, fmt.Errorf("sqlite: list active games: %w", err)
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		var g Game
		var mode string
		var beginner int
		var seed int64
		var playersJSON string
		var status string
		var winner sql.NullString
		var createdAtMs, updatedAtMs int64
		if err := rows.Scan(&g.ID, &mode, &beginner, &seed, &playersJSON, &status, &winner, &g.EventCount, &createdAtMs, &updatedAtMs); err != nil {
			return nil, fmt.Errorf("sqlite: scan active game: %w", err)
		}
		g.PlayerMode = model.PlayerMode(mode)
		g.UseBeginnerLayout = beginner != 0
		g.BoardSeed = uint64(seed)
		g.Status = GameStatus(status)
		if winner.Valid {
			w := winner.String
			g.WinnerUserID = &w
		}
		g.CreatedAt = time.UnixMilli(createdAtMs).UTC()
		g.UpdatedAt = time.UnixMilli(updatedAtMs).UTC()
		if err := json.Unmarshal([]byte(playersJSON), &g.Players); err != nil {
			return nil, fmt.Errorf("sqlite: unmarshal players: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate active games: %w", err)
	}
	return out, nil
}

func scanGame(row *sql.Row) (Game, error) {
	var g Game
	var mode string
	var beginner int
	var seed int64
	var playersJSON string
	var status string
	var winner sql.NullString
	var createdAtMs, updatedAtMs int64
	err := row.Scan(&g.ID, &mode, &beginner, &seed, &playersJSON, &status, &winner, &g.EventCount, &createdAtMs, &updatedAtMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Game{}, ErrNotFound
		}
		return Game{}, fmt.Errorf("sqlite: scan game: %w", err)
	}
	g.PlayerMode = model.PlayerMode(mode)
	g.UseBeginnerLayout = beginner != 0
	g.BoardSeed = uint64(seed)
	g.Status = GameStatus(status)
	if winner.Valid {
		w := winner.String
		g.WinnerUserID = &w
	}
	g.CreatedAt = time.UnixMilli(createdAtMs).UTC()
	g.UpdatedAt = time.UnixMilli(updatedAtMs).UTC()
	if err := json.Unmarshal([]byte(playersJSON), &g.Players); err != nil {
		return Game{}, fmt.Errorf("sqlite: unmarshal players: %w", err)
	}
	return g, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
