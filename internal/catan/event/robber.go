package event

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// RobberMoved records the robber's new hex and the eligible victims
// computed there. An empty EligibleVictims list means the turn proceeds
// straight to main with no steal.
type RobberMoved struct {
	MovedByPlayerID string
	HexID           board.HexID
	EligibleVictims []string
}

func (RobberMoved) Kind() Kind { return KindRobberMoved }

// ResourceStolen carries the full outcome, including the resource type.
// The gateway is responsible for redacting the resource field to everyone
// except the thief and the victim (see §4.10).
type ResourceStolen struct {
	ThiefID  string
	VictimID string
	Resource resource.Type
}

func (ResourceStolen) Kind() Kind { return KindResourceStolen }
