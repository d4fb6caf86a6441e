package sqlite

import (
	"context"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/event"
)

func createTestGame(t *testing.T, store *Store, gameID string) {
	t.Helper()
	if err := store.CreateGame(context.Background(), testGame(gameID)); err != nil {
		t.Fatalf("create game: %v", err)
	}
}

func TestAppendEventsAndEventsAfter(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	createTestGame(t, store, "game-1")

	events := []event.Event{
		event.New(1, event.TurnStarted{PlayerID: "user-1", Number: 1}),
		event.New(2, event.TurnEnded{PlayerID: "user-1", Number: 1}),
	}
	stamped, err := store.AppendEvents(ctx, "game-1", events)
	if err != nil {
		t.Fatalf("append events: %v", err)
	}
	if len(stamped) != 2 {
		t.Fatalf("expected 2 stamped events, got %d", len(stamped))
	}
	if stamped[0].PrevHash != "" {
		t.Fatalf("expected first event to have empty prev hash, got %q", stamped[0].PrevHash)
	}
	if stamped[0].Hash == "" || stamped[1].Hash == "" {
		t.Fatal("expected non-empty hashes")
	}
	if stamped[1].PrevHash != stamped[0].Hash {
		t.Fatalf("expected chain continuity: event 2 prev hash %q != event 1 hash %q", stamped[1].PrevHash, stamped[0].Hash)
	}

	got, err := store.GetGame(ctx, "game-1")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.EventCount != 2 {
		t.Fatalf("expected event count 2, got %d", got.EventCount)
	}

	after, err := store.EventsAfter(ctx, "game-1", 1)
	if err != nil {
		t.Fatalf("events after: %v", err)
	}
	if len(after) != 1 || after[0].Index != 2 {
		t.Fatalf("expected only event 2, got %+v", after)
	}
}

func TestAppendEventsRejectsGap(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	createTestGame(t, store, "game-1")

	gapped := []event.Event{event.New(2, event.TurnStarted{PlayerID: "user-1", Number: 1})}
	if _, err := store.AppendEvents(ctx, "game-1", gapped); err != ErrEventSeqConflict {
		t.Fatalf("expected ErrEventSeqConflict, got %v", err)
	}
}

func TestVerifyChainIntact(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	createTestGame(t, store, "game-1")

	events := []event.Event{
		event.New(1, event.TurnStarted{PlayerID: "user-1", Number: 1}),
		event.New(2, event.TurnEnded{PlayerID: "user-1", Number: 1}),
		event.New(3, event.TurnStarted{PlayerID: "user-2", Number: 2}),
	}
	if _, err := store.AppendEvents(ctx, "game-1", events); err != nil {
		t.Fatalf("append events: %v", err)
	}

	ok, brokenAt, err := store.VerifyChain(ctx, "game-1")
	if err != nil {
		t.Fatalf("verify chain: %v", err)
	}
	if !ok {
		t.Fatalf("expected chain intact, broke at index %d", brokenAt)
	}
}

func TestHighestEventIndex(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	createTestGame(t, store, "game-1")

	idx, err := store.HighestEventIndex(ctx, "game-1")
	if err != nil {
		t.Fatalf("highest event index: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected 0 for empty game, got %d", idx)
	}

	events := []event.Event{event.New(1, event.TurnStarted{PlayerID: "user-1", Number: 1})}
	if _, err := store.AppendEvents(ctx, "game-1", events); err != nil {
		t.Fatalf("append events: %v", err)
	}

	idx, err = store.HighestEventIndex(ctx, "game-1")
	if err != nil {
		t.Fatalf("highest event index: %v", err)
	}
	if idx != 1 {
		t.Fatalf("expected 1, got %d", idx)
	}
}
