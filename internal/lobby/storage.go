// Package lobby implements the Lobby Service (C11): create/join/leave/
// select-color/set-ready/start, durable membership, and 4-character join
// codes, exactly as §4.11 describes.
package lobby

import (
	"context"

	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// Store is the persistence contract the Lobby Service depends on,
// satisfied by internal/store/sqlite.Store. Mirrors the
// interface-per-consumer pattern in internal/services/auth/storage.
type Store interface {
	CreateLobby(ctx context.Context, l sqlite.Lobby) error
	GetLobby(ctx context.Context, id string) (sqlite.Lobby, error)
	GetLobbyByCode(ctx context.Context, code string) (sqlite.Lobby, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	UpdateLobby(ctx context.Context, l sqlite.Lobby) error
	DeleteLobby(ctx context.Context, id string) error
	ListWaitingLobbiesForUser(ctx context.Context, userID string) (sqlite.Lobby, bool, error)
	CreateGame(ctx context.Context, g sqlite.Game) error
}
