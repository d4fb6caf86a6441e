// Package runtime implements the Game Runtime (C8): one serialized
// submit(intent) -> result operation per game, event append plus
// game-record update in a single transaction, periodic snapshotting, and
// the reconnection tail query, exactly as §4.8 describes.
package runtime

import (
	"context"

	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// Store is the persistence contract the runtime depends on, satisfied by
// internal/store/sqlite.Store. Defined here rather than referenced as a
// concrete type so the runtime can be tested against a fake, the way
// internal/services/auth depends on its own storage.UserStore interface
// rather than a concrete sqlite type.
type Store interface {
	HighestEventIndex(ctx context.Context, gameID string) (int, error)
	AppendEvents(ctx context.Context, gameID string, events []event.Event) ([]event.Event, error)
	EventsAfter(ctx context.Context, gameID string, afterIndex int) ([]event.Event, error)
	PutSnapshot(ctx context.Context, gameID string, state *model.GameState) error
	LatestSnapshot(ctx context.Context, gameID string, beginnerLayout bool) (*model.GameState, bool, error)
	SetGameStatus(ctx context.Context, id string, status sqlite.GameStatus, winnerUserID *string) error
}
