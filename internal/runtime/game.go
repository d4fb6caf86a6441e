package runtime

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/btuckerc/traderoads/internal/catan/apply"
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/reduce"
	"github.com/btuckerc/traderoads/internal/catan/rng"
	"github.com/btuckerc/traderoads/internal/catan/validate"
)

// Game is the per-game actor: the serialized owner of one game's current
// state and RNG stream (§4.8 "at most one submission is in flight at a
// time for a given game"). submit and the state reads (eventIndex,
// snapshotState) lock mu for their duration, so they never interleave; the
// subscriber set is guarded separately by subMu, which subscribe and
// publish hold only while touching the map.
type Game struct {
	id             string
	mode           model.PlayerMode
	beginnerLayout bool
	seed           uint64

	mu     sync.Mutex
	state  *model.GameState
	stream *rng.Stream

	snapshotInterval int

	subMu sync.Mutex
	subs  map[string]Subscriber
}

func newGame(id string, mode model.PlayerMode, beginnerLayout bool, seed uint64, state *model.GameState, stream *rng.Stream, snapshotInterval int) *Game {
	return &Game{
		id:               id,
		mode:             mode,
		beginnerLayout:   beginnerLayout,
		seed:             seed,
		state:            state,
		stream:           stream,
		snapshotInterval: snapshotInterval,
		subs:             make(map[string]Subscriber),
	}
}

func (g *Game) eventIndex() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.EventIndex
}

func (g *Game) snapshotState() *model.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

func (g *Game) subscribe(subscriberID string, sub Subscriber) (cancel func()) {
	g.subMu.Lock()
	g.subs[subscriberID] = sub
	g.subMu.Unlock()
	return func() {
		g.subMu.Lock()
		delete(g.subs, subscriberID)
		g.subMu.Unlock()
	}
}

func (g *Game) publish(events []event.Event) {
	g.subMu.Lock()
	subs := make([]Subscriber, 0, len(g.subs))
	for _, s := range g.subs {
		subs = append(subs, s)
	}
	g.subMu.Unlock()
	for _, s := range subs {
		s.Notify(events)
	}
}

// submit is the serialized core of §4.8: validate against the current
// state, reduce to a list of event payloads (discarding reduce's returned
// state — only the event applier's replay is ever trusted, per
// internal/catan/apply's package doc), append atomically through store,
// fold the store-returned (hash-stamped) events back onto state via
// apply.Apply, maybe snapshot, then publish.
func (g *Game) submit(ctx context.Context, store Store, in intent.Intent) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if violations := validate.Validate(in, g.state); len(violations) > 0 {
		return Result{Outcome: OutcomeRejected, Violations: violations}, nil
	}

	_, payloads := reduce.Reduce(in, g.state, g.stream)
	if len(payloads) == 0 {
		return Result{Outcome: OutcomeAccepted, FromIndex: g.state.EventIndex, ToIndex: g.state.EventIndex}, nil
	}

	base := g.state.EventIndex
	pending := make([]event.Event, len(payloads))
	for i, p := range payloads {
		pending[i] = event.New(base+i+1, p)
	}

	persisted, err := store.AppendEvents(ctx, g.id, pending)
	if err != nil {
		return Result{Outcome: OutcomeInternalError, Message: err.Error()}, fmt.Errorf("runtime: append events for %s: %w", g.id, err)
	}

	for _, ev := range persisted {
		g.state = apply.Apply(g.state, ev)
	}

	if crossesSnapshotBoundary(base, g.state.EventIndex, g.snapshotInterval) {
		if err := store.PutSnapshot(ctx, g.id, g.state); err != nil {
			// A missed snapshot is tolerated by replay (§4.8); log-worthy but
			// not fatal to the submission that already committed.
			log.Printf("runtime: snapshot for %s: %v", g.id, err)
		}
	}

	g.publish(persisted)

	return Result{
		Outcome:   OutcomeAccepted,
		Events:    persisted,
		FromIndex: base,
		ToIndex:   g.state.EventIndex,
	}, nil
}

func crossesSnapshotBoundary(before, after, interval int) bool {
	if interval <= 0 {
		return false
	}
	return before/interval != after/interval
}
