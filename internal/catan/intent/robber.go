package intent

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// RollDice draws the turn's dice and triggers production or the
// seven-rolled discard/robber sequence.
type RollDice struct {
	Base
}

func (RollDice) Kind() Kind { return KindRollDice }

// DiscardResources pays down a player's owed discard after a rolled seven.
type DiscardResources struct {
	Base
	Resources resource.Bundle
}

func (DiscardResources) Kind() Kind { return KindDiscardResources }

// MoveRobber relocates the robber to a new hex.
type MoveRobber struct {
	Base
	HexID board.HexID
}

func (MoveRobber) Kind() Kind { return KindMoveRobber }

// StealResource samples one resource from the named victim, who must be
// among the eligible victims computed when the robber moved.
type StealResource struct {
	Base
	VictimID string
}

func (StealResource) Kind() Kind { return KindStealResource }
