package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/platform/id"
	"github.com/btuckerc/traderoads/internal/store"
)

// PutSnapshot writes a full-state snapshot at the given event index.
func (s *Store) PutSnapshot(ctx context.Context, gameID string, state *model.GameState) error {
	payload, err := store.EncodeSnapshot(state)
	if err != nil {
		return fmt.Errorf("sqlite: encode snapshot: %w", err)
	}
	rowID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("sqlite: new snapshot id: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO snapshots (id, game_id, event_index, state_payload_json, created_at)
VALUES (?, ?, ?, ?, ?)
`, rowID, gameID, state.EventIndex, string(payload), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("sqlite: insert snapshot: %w", err)
	}
	return nil
}

// LatestSnapshot returns the highest-index snapshot for gameID. ok is false
// if the game has no snapshot yet.
func (s *Store) LatestSnapshot(ctx context.Context, gameID string, beginnerLayout bool) (state *model.GameState, ok bool, err error) {
	var payload string
	row := s.db.QueryRowContext(ctx, `
SELECT state_payload_json FROM snapshots WHERE game_id = ? ORDER BY event_index DESC LIMIT 1
`, gameID)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("sqlite: scan snapshot: %w", err)
	}
	st, err := store.DecodeSnapshot([]byte(payload), beginnerLayout)
	if err != nil {
		return nil, false, fmt.Errorf("sqlite: decode snapshot: %w", err)
	}
	return st, true, nil
}
