// Package game wires board geometry, the development-card deck, and the
// seeded RNG stream together into the factory described in §3's "Lifecycle":
// a game state is created from {config, player roster, seed}. Every other
// catan subpackage stays pure with respect to this one; only the factory
// and the runtime are allowed to reach for rng.NewSeed.
package game

import (
	"fmt"

	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/rng"
)

// NewConfig is the factory's input: the roster is already ordered by turn
// order (the caller, the Lobby Service, decides seating).
type NewConfig struct {
	GameID         string
	Mode           model.PlayerMode
	BeginnerLayout bool
	Players        []model.PlayerInit
	Seed           uint64
}

// New constructs the initial GameState for a freshly started game: builds
// the board and shuffles the development-card deck from the same seeded
// stream, then hands both to model.NewGameState. The returned stream must
// be retained by the caller (the runtime) and reused for every subsequent
// dice roll, steal, and card draw in the game, so that replaying events
// from the same seed reproduces the same sequence (§4.2).
func New(cfg NewConfig) (*model.GameState, *rng.Stream, error) {
	boardMode := board.ModeStandard
	if cfg.Mode == model.PlayerMode56 {
		boardMode = board.ModeExtended
	}

	stream := rng.New(cfg.Seed)

	b, err := board.New(boardMode, cfg.BeginnerLayout, stream.Shuffle)
	if err != nil {
		return nil, nil, fmt.Errorf("game: build board: %w", err)
	}

	deck := model.StandardDevDeck()
	rng.ShuffleDevDeck(stream, deck)

	state, err := model.NewGameState(model.Config{
		GameID:  cfg.GameID,
		Mode:    cfg.Mode,
		Board:   b,
		Players: cfg.Players,
		DevDeck: deck,
		Seed:    cfg.Seed,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("game: new state: %w", err)
	}
	return state, stream, nil
}

// RebuildBoard reconstructs a game's immutable board deterministically from
// its original creation seed and mode/layout, independent of how far
// gameplay has progressed: board construction is always the first draw
// from a freshly seeded stream. The store's snapshot codec relies on this
// to omit the board from persisted payloads entirely.
func RebuildBoard(mode model.PlayerMode, beginnerLayout bool, seed uint64) (*board.Board, error) {
	boardMode := board.ModeStandard
	if mode == model.PlayerMode56 {
		boardMode = board.ModeExtended
	}
	b, err := board.New(boardMode, beginnerLayout, rng.New(seed).Shuffle)
	if err != nil {
		return nil, fmt.Errorf("game: rebuild board: %w", err)
	}
	return b, nil
}

// ResumeStream returns the stream used to drive gameplay after a process
// restart, seeded via rng.DeriveResumeSeed rather than by replaying the
// original stream's draw history. See that function's doc comment for why.
func ResumeStream(seed uint64, eventIndex int) *rng.Stream {
	return rng.New(rng.DeriveResumeSeed(seed, eventIndex))
}
