package gateway

import (
	"encoding/json"
	"sync"

	"github.com/btuckerc/traderoads/internal/catan/event"
)

// peer is the minimal write surface a connection needs: one frame at a
// time, synchronously, mirroring wsPeer's direct-write fan-out (adapted
// from internal/services/chat/app/server_room.go) rather than a buffered
// channel — a slow reader blocks its own write, never another connection's.
type peer struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

func newPeer(encoder *json.Encoder) *peer {
	return &peer{encoder: encoder}
}

func (p *peer) send(env OutboundEnvelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.encoder.Encode(env)
}

// connection holds one websocket's authentication and game-subscription
// state. A connection may watch at most one game's event stream at a time,
// matching the spec's one-active-game-per-connection session model.
type connection struct {
	peer *peer

	mu            sync.Mutex
	authenticated bool
	userID        string
	displayName   string

	gameID string
	cancel func()
}

func newConnection(p *peer) *connection {
	return &connection{peer: p}
}

func (c *connection) authenticate(userID, displayName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authenticated = true
	c.userID = userID
	c.displayName = displayName
}

func (c *connection) identity() (userID string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID, c.authenticated
}

func (c *connection) displayNameSnapshot() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayName
}

// watchedGame returns the game id the connection is currently subscribed
// to, so a game-intent message implicitly targets it without repeating the
// game id on every frame.
func (c *connection) watchedGame() (gameID string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gameID, c.gameID != ""
}

// watch replaces the connection's game subscription, cancelling any prior
// one, so a connection reconnecting to a different game never double
// subscribes.
func (c *connection) watch(gameID string, cancel func()) {
	c.mu.Lock()
	prevCancel := c.cancel
	c.gameID = gameID
	c.cancel = cancel
	c.mu.Unlock()
	if prevCancel != nil {
		prevCancel()
	}
}

func (c *connection) stopWatching() {
	c.mu.Lock()
	cancel := c.cancel
	c.gameID = ""
	c.cancel = nil
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Notify implements runtime.Subscriber: it redacts each event for this
// connection's user and forwards the batch as a game_events message. Errors
// writing to a dead peer are swallowed here; the read loop that owns the
// connection's lifecycle detects the closed socket independently.
func (c *connection) Notify(events []event.Event) {
	userID, _ := c.identity()
	c.mu.Lock()
	gameID := c.gameID
	c.mu.Unlock()
	if gameID == "" {
		return
	}
	_ = c.peer.send(broadcast(tagGameEvents, gameEventsPayload{
		GameID: gameID,
		Events: redactEvents(events, userID),
	}))
}
