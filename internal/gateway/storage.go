package gateway

import (
	"context"
	"time"

	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// UserStore is the narrow slice of the persistence layer the gateway needs
// to resolve an authenticate message into a durable account/session and to
// look up a game record for recovery on reconnect, referencing sqlite's
// concrete row types directly rather than depending on the whole
// *sqlite.Store (the interface-per-consumer pattern used throughout, e.g.
// internal/runtime.Store and internal/lobby.Store).
type UserStore interface {
	GetUserByIdentifier(ctx context.Context, identifier string) (sqlite.User, error)
	CreateUser(ctx context.Context, id, identifier, displayName string) (sqlite.User, error)
	CreateSession(ctx context.Context, id, userID, token string, expiresAt time.Time) (sqlite.Session, error)
	GetSessionByToken(ctx context.Context, token string) (sqlite.Session, error)
	GetGame(ctx context.Context, id string) (sqlite.Game, error)
}
