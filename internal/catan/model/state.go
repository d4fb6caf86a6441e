package model

import (
	"fmt"

	"github.com/btuckerc/traderoads/internal/catan/board"
)

// PlayerMode selects the player-count variant, which in turn selects board
// size and the paired-turn rule.
type PlayerMode string

const (
	PlayerMode34 PlayerMode = "3_4"
	PlayerMode56 PlayerMode = "5_6"
)

// MinPlayers returns the minimum roster size for the mode.
func (m PlayerMode) MinPlayers() int {
	if m == PlayerMode56 {
		return 5
	}
	return 3
}

// MaxPlayers returns the maximum roster size for the mode.
func (m PlayerMode) MaxPlayers() int {
	if m == PlayerMode56 {
		return 6
	}
	return 4
}

// PlayerInit is the roster entry supplied to NewGameState, already ordered
// by turn order.
type PlayerInit struct {
	ID          string
	DisplayName string
	Color       string
}

// Config is the factory input for a new game. The board and the
// development-card deck must already be constructed/shuffled by the caller
// (internal/catan/rng owns all randomness; this package stays pure).
type Config struct {
	GameID     string
	Mode       PlayerMode
	Board      *board.Board
	Players    []PlayerInit
	DevDeck    []DevCardType
	Seed       uint64
}

// GameState is the complete, self-contained state of one in-progress game.
// It is logically immutable: the reducer and event applier both return a
// new value (via Clone) rather than mutating a state another caller might
// still hold.
type GameState struct {
	GameID string
	Mode   PlayerMode
	Board  *board.Board
	Seed   uint64

	Players []*Player // ordered by turn order

	Bank      Bank
	Buildings Buildings
	Awards    Awards
	Turn      Turn

	RobberHex board.HexID

	// TradeSeq counts every trade proposal ever made in this game, used to
	// derive stable, replay-reproducible trade proposal ids.
	TradeSeq int

	// EventIndex is the index of the last event applied to reach this
	// state; 0 before any event has been applied.
	EventIndex int

	WinnerID *string
}

// NewGameState builds the initial state: setup phase, round 1, forward
// direction, player at turn-order index 0 active, robber on the board's
// desert hex.
func NewGameState(cfg Config) (*GameState, error) {
	if cfg.Board == nil {
		return nil, fmt.Errorf("model: board is required")
	}
	if len(cfg.Players) < cfg.Mode.MinPlayers() || len(cfg.Players) > cfg.Mode.MaxPlayers() {
		return nil, fmt.Errorf("model: player count %d out of range for mode %s", len(cfg.Players), cfg.Mode)
	}

	desert, ok := desertHex(cfg.Board)
	if !ok {
		return nil, fmt.Errorf("model: board has no desert hex")
	}

	players := make([]*Player, len(cfg.Players))
	for i, p := range cfg.Players {
		players[i] = NewPlayer(p.ID, p.DisplayName, p.Color, i)
	}

	state := &GameState{
		GameID:    cfg.GameID,
		Mode:      cfg.Mode,
		Board:     cfg.Board,
		Seed:      cfg.Seed,
		Players:   players,
		Bank:      NewBank(cfg.DevDeck),
		Buildings: NewBuildings(),
		RobberHex: desert,
		Turn: Turn{
			Phase:          PhaseSetup,
			ActivePlayerID: players[0].ID,
			Number:         1,
			DiscardOwed:    make(map[string]int),
			Setup: SetupState{
				Round:     1,
				Index:     0,
				Direction: DirectionForward,
			},
		},
	}
	state.Buildings.Rebuild(state.Players)
	return state, nil
}

func desertHex(b *board.Board) (board.HexID, bool) {
	for _, id := range b.HexIDs() {
		hex, _ := b.Hex(id)
		if hex.Terrain == board.TerrainDesert {
			return id, true
		}
	}
	return "", false
}

// Player returns the player with the given id.
func (s *GameState) Player(id string) (*Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// PlayerAt returns the player at turn-order index i, wrapping modulo the
// roster size.
func (s *GameState) PlayerAt(i int) *Player {
	n := len(s.Players)
	return s.Players[((i%n)+n)%n]
}

// NextOrder returns the turn-order index following i.
func (s *GameState) NextOrder(i int) int {
	return (i + 1) % len(s.Players)
}

// ActivePlayer returns the currently active player.
func (s *GameState) ActivePlayer() (*Player, bool) {
	return s.Player(s.Turn.ActivePlayerID)
}

// LastSetupSettlementNode returns the node of the setup settlement awaiting
// its paired road, if any.
func (s *GameState) LastSetupSettlementNode() (board.NodeID, bool) {
	if !s.Turn.Setup.AwaitingRoad {
		return "", false
	}
	return s.Turn.Setup.PendingSettlementNode, true
}

// Clone returns a deep copy of the entire state. The Board is shared by
// reference: it is immutable for the lifetime of the game.
func (s *GameState) Clone() *GameState {
	out := &GameState{
		GameID:     s.GameID,
		Mode:       s.Mode,
		Board:      s.Board,
		Seed:       s.Seed,
		Bank:       s.Bank.Clone(),
		Buildings:  s.Buildings.Clone(),
		Awards:     s.Awards.Clone(),
		Turn:       s.Turn.Clone(),
		RobberHex:  s.RobberHex,
		TradeSeq:   s.TradeSeq,
		EventIndex: s.EventIndex,
	}
	out.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		out.Players[i] = p.Clone()
	}
	if s.WinnerID != nil {
		id := *s.WinnerID
		out.WinnerID = &id
	}
	return out
}
