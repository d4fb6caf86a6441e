package runtime

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/btuckerc/traderoads/internal/catan/apply"
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/game"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
	platformerrors "github.com/btuckerc/traderoads/internal/platform/errors"
	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// DefaultSnapshotInterval is N from §4.8: "maybe write a snapshot (every N
// events, default N=50)".
const DefaultSnapshotInterval = 50

// DefaultTailThreshold is the reconnection tail query's default threshold,
// set equal to the snapshot interval per §4.8.
const DefaultTailThreshold = DefaultSnapshotInterval

var tracer = otel.Tracer("github.com/btuckerc/traderoads/internal/runtime")

// Outcome is one of submit's three result variants (§4.8).
type Outcome string

const (
	OutcomeAccepted      Outcome = "accepted"
	OutcomeRejected      Outcome = "rejected"
	OutcomeInternalError Outcome = "internal_error"
)

// Result is the return value of Submit.
type Result struct {
	Outcome    Outcome
	Events     []event.Event
	FromIndex  int
	ToIndex    int
	Violations []violation.Violation
	Message    string
}

// Subscriber receives every batch of events a game's submit call publishes.
// The gateway registers one Subscriber per connected player per game and
// performs recipient-specific redaction (§4.10) when it encodes the batch
// as an outbound envelope; the runtime always hands subscribers the full,
// unredacted event.
type Subscriber interface {
	Notify(events []event.Event)
}

// Config tunes the runtime's snapshot cadence and reconnection threshold.
type Config struct {
	SnapshotInterval int
	TailThreshold    int
}

func (c Config) withDefaults() Config {
	if c.SnapshotInterval <= 0 {
		c.SnapshotInterval = DefaultSnapshotInterval
	}
	if c.TailThreshold <= 0 {
		c.TailThreshold = DefaultTailThreshold
	}
	return c
}

// Runtime is the process-wide registry of in-memory game actors. One
// Runtime instance exists per process; it owns no state itself beyond the
// registry, deferring all durable state to Store.
type Runtime struct {
	store Store
	cfg   Config

	mu    sync.RWMutex
	games map[string]*Game
}

// New constructs a Runtime backed by store.
func New(store Store, cfg Config) *Runtime {
	return &Runtime{
		store: store,
		cfg:   cfg.withDefaults(),
		games: make(map[string]*Game),
	}
}

// Start registers a freshly created game (no persisted events yet) as an
// in-memory actor, building its initial state and RNG stream from cfg.
// Callers (the Lobby Service's start operation) must have already written
// the game record to the store before calling this.
func (r *Runtime) Start(gameID string, cfg game.NewConfig) (*Game, error) {
	state, stream, err := game.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("runtime: start game %s: %w", gameID, err)
	}
	g := newGame(gameID, cfg.Mode, cfg.BeginnerLayout, cfg.Seed, state, stream, r.cfg.SnapshotInterval)
	r.register(g)
	return g, nil
}

// Recover rebuilds a game's in-memory actor from durable state: the latest
// snapshot if one exists, else the deterministic initial state, then
// replays every event strictly after that baseline (§4.8 "Recovery on
// process restart"). Used both at process startup for every active game
// and lazily the first time a request touches a game not yet in the
// registry.
func (r *Runtime) Recover(ctx context.Context, gameID string, mode model.PlayerMode, beginnerLayout bool, seed uint64, roster []model.PlayerInit) (*Game, error) {
	if g, ok := r.game(gameID); ok {
		return g, nil
	}

	baseline, hasSnapshot, err := r.store.LatestSnapshot(ctx, gameID, beginnerLayout)
	if err != nil {
		return nil, fmt.Errorf("runtime: load snapshot for %s: %w", gameID, err)
	}
	if !hasSnapshot {
		baseline, _, err = game.New(game.NewConfig{
			GameID:         gameID,
			Mode:           mode,
			BeginnerLayout: beginnerLayout,
			Players:        roster,
			Seed:           seed,
		})
		if err != nil {
			return nil, fmt.Errorf("runtime: rebuild initial state for %s: %w", gameID, err)
		}
	}

	events, err := r.store.EventsAfter(ctx, gameID, baseline.EventIndex)
	if err != nil {
		return nil, fmt.Errorf("runtime: load tail for %s: %w", gameID, err)
	}
	state := baseline
	for _, ev := range events {
		state = apply.Apply(state, ev)
	}

	stream := game.ResumeStream(seed, state.EventIndex)
	g := newGame(gameID, mode, beginnerLayout, seed, state, stream, r.cfg.SnapshotInterval)
	r.register(g)
	return g, nil
}

func (r *Runtime) register(g *Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[g.id] = g
}

func (r *Runtime) game(gameID string) (*Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[gameID]
	return g, ok
}

// Drop removes a game from the registry, used once a game reaches "ended"
// and its connections have all disconnected; durable state remains in the
// store regardless.
func (r *Runtime) Drop(gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, gameID)
}

// Submit is the runtime's single logical operation: validate, reduce,
// persist, fold, snapshot, publish. At most one Submit is in flight per
// game at a time (g.mu serializes it); the rules engine itself never
// suspends, only the store calls below do.
func (r *Runtime) Submit(ctx context.Context, gameID string, in intent.Intent) (Result, error) {
	g, ok := r.game(gameID)
	if !ok {
		return Result{}, platformerrors.New(platformerrors.CodeNotFound, "runtime: no such game")
	}

	ctx, span := tracer.Start(ctx, "game.submit")
	span.SetAttributes(
		attribute.String("game_id", gameID),
		attribute.String("intent_type", string(in.Kind())),
	)
	defer span.End()

	result, err := g.submit(ctx, r.store, in)
	switch {
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("outcome", string(OutcomeInternalError)))
	case result.Outcome == OutcomeAccepted:
		span.SetAttributes(attribute.String("outcome", string(OutcomeAccepted)))
	default:
		span.SetAttributes(attribute.String("outcome", string(result.Outcome)))
	}

	if err == nil && result.Outcome == OutcomeAccepted {
		for _, ev := range result.Events {
			if _, ok := ev.Payload.(event.PlayerWon); ok {
				winner := eventWinnerID(ev.Payload)
				if setErr := r.store.SetGameStatus(ctx, gameID, sqlite.GameStatusCompleted, winner); setErr != nil {
					return result, fmt.Errorf("runtime: mark game completed: %w", setErr)
				}
			}
		}
	}
	return result, err
}

func eventWinnerID(p event.Payload) *string {
	won, ok := p.(event.PlayerWon)
	if !ok {
		return nil
	}
	id := won.PlayerID
	return &id
}

// Subscribe registers sub to receive every future batch of published
// events for gameID. The returned cancel function deregisters it.
func (r *Runtime) Subscribe(gameID string, subscriberID string, sub Subscriber) (cancel func(), err error) {
	g, ok := r.game(gameID)
	if !ok {
		return nil, platformerrors.New(platformerrors.CodeNotFound, "runtime: no such game")
	}
	return g.subscribe(subscriberID, sub), nil
}

// ReconnectResult carries the state a reconnecting client needs to catch
// up: either a pure event tail, or a snapshot plus the events after it.
type ReconnectResult struct {
	Snapshot  *model.GameState
	FromIndex int
	ToIndex   int
	Events    []event.Event
}

// Reconnect implements §4.8's tail query: given the client's last-seen
// index, return either the tail of events since then, or (if the gap
// exceeds the configured threshold) the latest snapshot plus the events
// after it.
func (r *Runtime) Reconnect(ctx context.Context, gameID string, lastSeen int) (ReconnectResult, error) {
	g, ok := r.game(gameID)
	if !ok {
		return ReconnectResult{}, platformerrors.New(platformerrors.CodeNotFound, "runtime: no such game")
	}
	highest := g.eventIndex()

	if highest-lastSeen <= r.cfg.TailThreshold {
		events, err := r.store.EventsAfter(ctx, gameID, lastSeen)
		if err != nil {
			return ReconnectResult{}, fmt.Errorf("runtime: tail query: %w", err)
		}
		return ReconnectResult{FromIndex: lastSeen, ToIndex: highest, Events: events}, nil
	}

	snapshot, ok, err := r.store.LatestSnapshot(ctx, gameID, g.beginnerLayout)
	if err != nil {
		return ReconnectResult{}, fmt.Errorf("runtime: load snapshot: %w", err)
	}
	if !ok {
		events, err := r.store.EventsAfter(ctx, gameID, lastSeen)
		if err != nil {
			return ReconnectResult{}, fmt.Errorf("runtime: tail query fallback: %w", err)
		}
		return ReconnectResult{FromIndex: lastSeen, ToIndex: highest, Events: events}, nil
	}
	events, err := r.store.EventsAfter(ctx, gameID, snapshot.EventIndex)
	if err != nil {
		return ReconnectResult{}, fmt.Errorf("runtime: tail after snapshot: %w", err)
	}
	return ReconnectResult{Snapshot: snapshot, FromIndex: snapshot.EventIndex, ToIndex: highest, Events: events}, nil
}

// State returns the game's current in-memory state, used by the gateway to
// answer get_session_state without a reconnection tail computation.
func (r *Runtime) State(gameID string) (*model.GameState, bool) {
	g, ok := r.game(gameID)
	if !ok {
		return nil, false
	}
	return g.snapshotState(), true
}
