package store

import (
	"encoding/json"
	"fmt"

	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/game"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

// snapshotDTO mirrors model.GameState but omits the Board: the board is
// immutable and is always the first deterministic draw from a freshly
// seeded stream (game.RebuildBoard), so storing it on every snapshot would
// duplicate ~54-96 node/edge/hex records for no benefit.
type snapshotDTO struct {
	GameID     string
	Mode       model.PlayerMode
	Seed       uint64
	Players    []*model.Player
	Bank       model.Bank
	Buildings  model.Buildings
	Awards     model.Awards
	Turn       model.Turn
	RobberHex  string
	TradeSeq   int
	EventIndex int
	WinnerID   *string
}

// EncodeSnapshot serializes s (minus its board) to the snapshot payload
// format persisted by the store.
func EncodeSnapshot(s *model.GameState) ([]byte, error) {
	dto := snapshotDTO{
		GameID:     s.GameID,
		Mode:       s.Mode,
		Seed:       s.Seed,
		Players:    s.Players,
		Bank:       s.Bank,
		Buildings:  s.Buildings,
		Awards:     s.Awards,
		Turn:       s.Turn,
		RobberHex:  string(s.RobberHex),
		TradeSeq:   s.TradeSeq,
		EventIndex: s.EventIndex,
		WinnerID:   s.WinnerID,
	}
	out, err := json.Marshal(dto)
	if err != nil {
		return nil, fmt.Errorf("store: marshal snapshot: %w", err)
	}
	return out, nil
}

// DecodeSnapshot reconstructs a GameState from a persisted snapshot
// payload, rebuilding the board from beginnerLayout rather than storing it.
func DecodeSnapshot(raw []byte, beginnerLayout bool) (*model.GameState, error) {
	var dto snapshotDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("store: unmarshal snapshot: %w", err)
	}
	b, err := game.RebuildBoard(dto.Mode, beginnerLayout, dto.Seed)
	if err != nil {
		return nil, fmt.Errorf("store: rebuild board: %w", err)
	}
	return &model.GameState{
		GameID:     dto.GameID,
		Mode:       dto.Mode,
		Board:      b,
		Seed:       dto.Seed,
		Players:    dto.Players,
		Bank:       dto.Bank,
		Buildings:  dto.Buildings,
		Awards:     dto.Awards,
		Turn:       dto.Turn,
		RobberHex:  board.HexID(dto.RobberHex),
		TradeSeq:   dto.TradeSeq,
		EventIndex: dto.EventIndex,
		WinnerID:   dto.WinnerID,
	}, nil
}
