package runtime

import (
	"context"
	"sync"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/game"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// fakeStore is an in-memory Store used to exercise the runtime without a
// real database, following internal/services/auth's pattern of testing
// against the narrow interface rather than a concrete sqlite type.
type fakeStore struct {
	mu        sync.Mutex
	events    []event.Event
	snapshot  *model.GameState
	hasSnap   bool
	status    sqlite.GameStatus
	winnerID  *string
}

func (f *fakeStore) HighestEventIndex(ctx context.Context, gameID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.events) == 0 {
		return 0, nil
	}
	return f.events[len(f.events)-1].Index, nil
}

func (f *fakeStore) AppendEvents(ctx context.Context, gameID string, events []event.Event) ([]event.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]event.Event, len(events))
	for i, ev := range events {
		ev.Hash = "hash"
		out[i] = ev
	}
	f.events = append(f.events, out...)
	return out, nil
}

func (f *fakeStore) EventsAfter(ctx context.Context, gameID string, afterIndex int) ([]event.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []event.Event
	for _, ev := range f.events {
		if ev.Index > afterIndex {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeStore) PutSnapshot(ctx context.Context, gameID string, state *model.GameState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot = state.Clone()
	f.hasSnap = true
	return nil
}

func (f *fakeStore) LatestSnapshot(ctx context.Context, gameID string, beginnerLayout bool) (*model.GameState, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.hasSnap {
		return nil, false, nil
	}
	return f.snapshot.Clone(), true, nil
}

func (f *fakeStore) SetGameStatus(ctx context.Context, id string, status sqlite.GameStatus, winnerUserID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
	f.winnerID = winnerUserID
	return nil
}

func testRoster() []model.PlayerInit {
	return []model.PlayerInit{
		{ID: "p1", DisplayName: "Alice", Color: "red"},
		{ID: "p2", DisplayName: "Bob", Color: "blue"},
		{ID: "p3", DisplayName: "Cara", Color: "green"},
	}
}

type recordingSubscriber struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recordingSubscriber) Notify(events []event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
}

func TestStartRegistersGame(t *testing.T) {
	rt := New(&fakeStore{}, Config{})
	g, err := rt.Start("game-1", game.NewConfig{
		GameID:         "game-1",
		Mode:           model.PlayerMode34,
		BeginnerLayout: true,
		Players:        testRoster(),
		Seed:           1,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if g == nil {
		t.Fatal("expected non-nil game")
	}
	if _, ok := rt.State("game-1"); !ok {
		t.Fatal("expected game-1 to be registered")
	}
}

func TestSubmitValidIntentPublishesAndPersists(t *testing.T) {
	store := &fakeStore{}
	rt := New(store, Config{})
	if _, err := rt.Start("game-1", game.NewConfig{
		GameID:         "game-1",
		Mode:           model.PlayerMode34,
		BeginnerLayout: true,
		Players:        testRoster(),
		Seed:           1,
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	sub := &recordingSubscriber{}
	cancel, err := rt.Subscribe("game-1", "p1", sub)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	defer cancel()

	state, ok := rt.State("game-1")
	if !ok {
		t.Fatal("expected state")
	}
	node := firstNodeForTest(t, state.Board)

	result, err := rt.Submit(context.Background(), "game-1", intent.PlaceSetupSettlement{
		Base:   intent.Base{ActorID: "p1"},
		NodeID: node,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != OutcomeAccepted {
		t.Fatalf("expected accepted, got %s: %v", result.Outcome, result.Violations)
	}
	if len(result.Events) == 0 {
		t.Fatal("expected at least one event")
	}
	if len(store.events) == 0 {
		t.Fatal("expected events to be persisted")
	}
	if len(sub.events) == 0 {
		t.Fatal("expected subscriber to be notified")
	}
}

func TestSubmitInvalidIntentIsRejectedWithoutPersisting(t *testing.T) {
	store := &fakeStore{}
	rt := New(store, Config{})
	if _, err := rt.Start("game-1", game.NewConfig{
		GameID:         "game-1",
		Mode:           model.PlayerMode34,
		BeginnerLayout: true,
		Players:        testRoster(),
		Seed:           1,
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	// p2 acting out of turn during setup should be rejected by the validator.
	result, err := rt.Submit(context.Background(), "game-1", intent.PlaceSetupSettlement{
		Base:   intent.Base{ActorID: "p2"},
		NodeID: "bogus-node",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Outcome != OutcomeRejected {
		t.Fatalf("expected rejected, got %s", result.Outcome)
	}
	if len(result.Violations) == 0 {
		t.Fatal("expected violations")
	}
	if len(store.events) != 0 {
		t.Fatal("expected no events persisted for a rejected intent")
	}
}

func TestSubmitUnknownGameReturnsNotFound(t *testing.T) {
	rt := New(&fakeStore{}, Config{})
	_, err := rt.Submit(context.Background(), "no-such-game", intent.EndTurn{Base: intent.Base{ActorID: "p1"}})
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
}

func TestReconnectReturnsTailWithinThreshold(t *testing.T) {
	store := &fakeStore{}
	rt := New(store, Config{TailThreshold: 50})
	if _, err := rt.Start("game-1", game.NewConfig{
		GameID:         "game-1",
		Mode:           model.PlayerMode34,
		BeginnerLayout: true,
		Players:        testRoster(),
		Seed:           1,
	}); err != nil {
		t.Fatalf("start: %v", err)
	}

	state, _ := rt.State("game-1")
	node := firstNodeForTest(t, state.Board)
	if _, err := rt.Submit(context.Background(), "game-1", intent.PlaceSetupSettlement{
		Base:   intent.Base{ActorID: "p1"},
		NodeID: node,
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	result, err := rt.Reconnect(context.Background(), "game-1", 0)
	if err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	if result.Snapshot != nil {
		t.Fatal("expected no snapshot within threshold")
	}
	if len(result.Events) == 0 {
		t.Fatal("expected events in the tail")
	}
}

func firstNodeForTest(t *testing.T, b *board.Board) board.NodeID {
	t.Helper()
	for id := range b.Nodes {
		return id
	}
	t.Fatal("board has no nodes")
	return ""
}
