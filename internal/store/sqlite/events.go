package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/platform/id"
	"github.com/btuckerc/traderoads/internal/store"
	"github.com/btuckerc/traderoads/internal/store/integrity"
)

// HighestEventIndex returns the highest event_index stored for gameID, or 0
// if the game has no events yet.
func (s *Store) HighestEventIndex(ctx context.Context, gameID string) (int, error) {
	var idx sql.NullInt64
	err := s.db.QueryRowContext(ctx, `SELECT MAX(event_index) FROM events WHERE game_id = ?`, gameID).Scan(&idx)
	if err != nil {
		return 0, fmt.Errorf("sqlite: highest event index: %w", err)
	}
	if !idx.Valid {
		return 0, nil
	}
	return int(idx.Int64), nil
}

func lastChainHash(ctx context.Context, tx *sql.Tx, gameID string, highest int) (string, error) {
	if highest == 0 {
		return "", nil
	}
	var hash string
	err := tx.QueryRowContext(ctx, `SELECT hash FROM events WHERE game_id = ? AND event_index = ?`, gameID, highest).Scan(&hash)
	if err != nil {
		return "", fmt.Errorf("sqlite: last chain hash: %w", err)
	}
	return hash, nil
}

// AppendEvents appends events to the store in a single transaction that
// also advances the game record's event_count, so the two updates are
// atomic (§4.8 "Crash safety"). events must start at HighestEventIndex+1
// and be strictly contiguous; any gap returns ErrEventSeqConflict and
// leaves the store untouched. Each event's PrevHash/Hash fields are
// computed here (adapted from internal/store/integrity) and returned in a
// new slice, leaving the caller's slice untouched, so the runtime can
// publish the hash-stamped events without a second read.
func (s *Store) AppendEvents(ctx context.Context, gameID string, events []event.Event) ([]event.Event, error) {
	if len(events) == 0 {
		return nil, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sqlite: begin append events: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var highest sql.NullInt64
	if err := tx.QueryRowContext(ctx, `SELECT MAX(event_index) FROM events WHERE game_id = ?`, gameID).Scan(&highest); err != nil {
		return nil, fmt.Errorf("sqlite: highest event index: %w", err)
	}
	next := 1
	if highest.Valid {
		next = int(highest.Int64) + 1
	}
	if events[0].Index != next {
		return nil, ErrEventSeqConflict
	}

	prevHash, err := lastChainHash(ctx, tx, gameID, next-1)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().UnixMilli()
	out := make([]event.Event, len(events))
	for i, ev := range events {
		if ev.Index != next+i {
			return nil, ErrEventSeqConflict
		}
		payloadJSON, err := json.Marshal(ev.Payload)
		if err != nil {
			return nil, fmt.Errorf("sqlite: marshal event payload: %w", err)
		}
		eventHash, err := integrity.EventHash(gameID, ev.Index, string(ev.Kind), payloadJSON)
		if err != nil {
			return nil, fmt.Errorf("sqlite: hash event: %w", err)
		}
		chainHash := integrity.ChainHash(eventHash, prevHash)
		var signature, keyID string
		if s.keyring != nil {
			signature, keyID, err = s.keyring.Sign(gameID, chainHash)
			if err != nil {
				return nil, fmt.Errorf("sqlite: sign event %d: %w", ev.Index, err)
			}
		}
		rowID, err := id.NewID()
		if err != nil {
			return nil, fmt.Errorf("sqlite: new event id: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
INSERT INTO events (id, game_id, event_index, event_kind, event_payload_json, prev_hash, hash, signature, signing_key_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, rowID, gameID, ev.Index, string(ev.Kind), string(payloadJSON), prevHash, chainHash, signature, keyID, now)
		if err != nil {
			return nil, fmt.Errorf("sqlite: insert event %d: %w", ev.Index, err)
		}
		ev.PrevHash = prevHash
		ev.Hash = chainHash
		out[i] = ev
		prevHash = chainHash
	}

	res, err := tx.ExecContext(ctx, `UPDATE games SET event_count = ?, updated_at = ? WHERE id = ?`, next-1+len(events), now, gameID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: update event count: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, fmt.Errorf("sqlite: rows affected: %w", err)
	} else if n == 0 {
		return nil, ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("sqlite: commit append events: %w", err)
	}
	return out, nil
}

// VerifyChain recomputes every stored event's content hash and signature
// for gameID and reports the first index at which the chain diverges from
// what AppendEvents would have produced, or ok=true if the full chain is
// intact. Used at startup as an optional integrity sweep over recovered
// games; it never blocks normal operation.
func (s *Store) VerifyChain(ctx context.Context, gameID string) (ok bool, brokenAtIndex int, err error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT event_index, event_kind, event_payload_json, prev_hash, hash, signature, signing_key_id
FROM events WHERE game_id = ? ORDER BY event_index ASC
`, gameID)
	if err != nil {
		return false, 0, fmt.Errorf("sqlite: verify chain: %w", err)
	}
	defer rows.Close()

	prevHash := ""
	for rows.Next() {
		var idx int
		var kind, payloadJSON, prevHashCol, hash, signature, keyID string
		if err := rows.Scan(&idx, &kind, &payloadJSON, &prevHashCol, &hash, &signature, &keyID); err != nil {
			return false, 0, fmt.Errorf("sqlite: scan event for verify: %w", err)
		}
		if prevHashCol != prevHash {
			return false, idx, nil
		}
		eventHash, err := integrity.EventHash(gameID, idx, kind, []byte(payloadJSON))
		if err != nil {
			return false, 0, fmt.Errorf("sqlite: hash event %d: %w", idx, err)
		}
		expectedChain := integrity.ChainHash(eventHash, prevHash)
		if expectedChain != hash {
			return false, idx, nil
		}
		if s.keyring != nil && signature != "" {
			if err := s.keyring.Verify(gameID, hash, signature, keyID); err != nil {
				return false, idx, nil
			}
		}
		prevHash = hash
	}
	if err := rows.Err(); err != nil {
		return false, 0, fmt.Errorf("sqlite: iterate events for verify: %w", err)
	}
	return true, 0, nil
}

// EventsAfter returns every event with event_index > afterIndex, ascending,
// the store's half of the reconnection tail query (§4.8).
func (s *Store) EventsAfter(ctx context.Context, gameID string, afterIndex int) ([]event.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT event_index, event_kind, event_payload_json, prev_hash, hash
FROM events WHERE game_id = ? AND event_index > ? ORDER BY event_index ASC
`, gameID, afterIndex)
	if err != nil {
		return nil, fmt.Errorf("sqlite: events after: %w", err)
	}
	defer rows.Close()

	var out []event.Event
	for rows.Next() {
		var idx int
		var kind, payloadJSON, prevHash, hash string
		if err := rows.Scan(&idx, &kind, &payloadJSON, &prevHash, &hash); err != nil {
			return nil, fmt.Errorf("sqlite: scan event: %w", err)
		}
		payload, err := store.DecodePayload(event.Kind(kind), []byte(payloadJSON))
		if err != nil {
			return nil, fmt.Errorf("sqlite: decode event %d: %w", idx, err)
		}
		out = append(out, event.Event{Index: idx, Kind: event.Kind(kind), Payload: payload, PrevHash: prevHash, Hash: hash})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate events: %w", err)
	}
	return out, nil
}
