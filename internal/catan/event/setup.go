package event

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// SetupSettlementPlaced records a setup-phase settlement.
type SetupSettlementPlaced struct {
	PlayerID string
	NodeID   board.NodeID
}

func (SetupSettlementPlaced) Kind() Kind { return KindSetupSettlementPlaced }

// SetupResourcesGiven grants one resource per non-desert hex adjacent to a
// round-2 setup settlement.
type SetupResourcesGiven struct {
	PlayerID  string
	Resources resource.Bundle
}

func (SetupResourcesGiven) Kind() Kind { return KindSetupResourcesGiven }

// SetupRoadPlaced records the road paired with the prior setup settlement.
type SetupRoadPlaced struct {
	PlayerID string
	EdgeID   board.EdgeID
}

func (SetupRoadPlaced) Kind() Kind { return KindSetupRoadPlaced }

// SetupTurnAdvanced records the setup cursor moving to the next player
// within a round.
type SetupTurnAdvanced struct {
	NextPlayerID string
	Round        int
	Index        int
	Direction    model.Direction
}

func (SetupTurnAdvanced) Kind() Kind { return KindSetupTurnAdvanced }

// SetupPhaseEnded records the transition out of setup into turn 1's
// pre-roll phase.
type SetupPhaseEnded struct {
	FirstActivePlayerID string
}

func (SetupPhaseEnded) Kind() Kind { return KindSetupPhaseEnded }
