package reduce

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/rng"
)

// eligibleVictims returns the players, excluding thiefID, who own a
// building adjacent to hexID and hold at least one resource.
func eligibleVictims(s *model.GameState, hexID board.HexID, thiefID string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, nodeID := range s.Board.NodesOfHex(hexID) {
		building, occupied := s.Buildings.Nodes[nodeID]
		if !occupied || building.PlayerID == thiefID || seen[building.PlayerID] {
			continue
		}
		p, ok := s.Player(building.PlayerID)
		if !ok || p.Resources.Total() == 0 {
			continue
		}
		seen[building.PlayerID] = true
		out = append(out, building.PlayerID)
	}
	return out
}

func reduceMoveRobber(s *model.GameState, in intent.MoveRobber) []event.Payload {
	s.RobberHex = in.HexID
	victims := eligibleVictims(s, in.HexID, in.PlayerID())
	s.Turn.StealCandidates = victims

	events := []event.Payload{event.RobberMoved{
		MovedByPlayerID: in.PlayerID(),
		HexID:           in.HexID,
		EligibleVictims: victims,
	}}

	if len(victims) == 0 {
		s.Turn.Phase = model.PhaseMain
	} else {
		s.Turn.Phase = model.PhaseStealing
	}
	return events
}

func reduceSteal(s *model.GameState, in intent.StealResource, stream *rng.Stream) []event.Payload {
	thief, _ := s.Player(in.PlayerID())
	victim, _ := s.Player(in.VictimID)

	taken := rng.SampleSteal(stream, victim.Resources)
	victim.Resources.Add(taken, -1)
	thief.Resources.Add(taken, 1)

	s.Turn.StealCandidates = nil
	s.Turn.Phase = model.PhaseMain

	return []event.Payload{event.ResourceStolen{
		ThiefID:  in.PlayerID(),
		VictimID: in.VictimID,
		Resource: taken,
	}}
}
