package gateway

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/event"
)

func newTestConnection() (*connection, *bytes.Buffer) {
	var buf bytes.Buffer
	c := newConnection(newPeer(json.NewEncoder(&buf)))
	return c, &buf
}

func TestConnectionIdentityBeforeAuthenticate(t *testing.T) {
	c, _ := newTestConnection()
	if _, ok := c.identity(); ok {
		t.Fatal("expected unauthenticated connection to report ok=false")
	}
}

func TestConnectionAuthenticate(t *testing.T) {
	c, _ := newTestConnection()
	c.authenticate("user-1", "Alice")
	userID, ok := c.identity()
	if !ok || userID != "user-1" {
		t.Fatalf("expected authenticated user-1, got userID=%q ok=%v", userID, ok)
	}
	if c.displayNameSnapshot() != "Alice" {
		t.Fatalf("expected display name Alice, got %q", c.displayNameSnapshot())
	}
}

func TestConnectionWatchReplacesPriorSubscription(t *testing.T) {
	c, _ := newTestConnection()
	firstCancelled := false
	c.watch("game-1", func() { firstCancelled = true })

	gameID, ok := c.watchedGame()
	if !ok || gameID != "game-1" {
		t.Fatalf("expected to be watching game-1, got %q ok=%v", gameID, ok)
	}

	c.watch("game-2", func() {})
	if !firstCancelled {
		t.Fatal("expected watching a new game to cancel the prior subscription")
	}
	gameID, ok = c.watchedGame()
	if !ok || gameID != "game-2" {
		t.Fatalf("expected to be watching game-2, got %q ok=%v", gameID, ok)
	}
}

func TestConnectionStopWatchingCancelsAndClears(t *testing.T) {
	c, _ := newTestConnection()
	cancelled := false
	c.watch("game-1", func() { cancelled = true })
	c.stopWatching()
	if !cancelled {
		t.Fatal("expected stopWatching to invoke cancel")
	}
	if _, ok := c.watchedGame(); ok {
		t.Fatal("expected no watched game after stopWatching")
	}
}

func TestConnectionNotifyIgnoredWithoutWatchedGame(t *testing.T) {
	c, buf := newTestConnection()
	c.authenticate("user-1", "Alice")
	c.Notify([]event.Event{event.New(1, event.TurnStarted{PlayerID: "user-1", Number: 1})})
	if buf.Len() != 0 {
		t.Fatalf("expected no frame written without a watched game, got %q", buf.String())
	}
}

func TestConnectionNotifySendsRedactedEvents(t *testing.T) {
	c, buf := newTestConnection()
	c.authenticate("bystander", "Bystander")
	c.watch("game-1", func() {})

	c.Notify([]event.Event{event.New(1, event.TurnStarted{PlayerID: "p1", Number: 1})})
	if buf.Len() == 0 {
		t.Fatal("expected a frame to be written")
	}

	var envelope struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal frame: %v", err)
	}
	var message map[string]json.RawMessage
	if err := json.Unmarshal(envelope.Message, &message); err != nil {
		t.Fatalf("unmarshal message: %v", err)
	}
	if _, ok := message[tagGameEvents]; !ok {
		t.Fatalf("expected key %q in message, got %v", tagGameEvents, message)
	}
}
