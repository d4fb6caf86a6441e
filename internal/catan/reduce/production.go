package reduce

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/rng"
)

func reduceRollDice(s *model.GameState, stream *rng.Stream) []event.Payload {
	roll := rng.RollDice(stream)
	total := roll.Total()
	s.Turn.LastRoll = &roll

	events := []event.Payload{event.DiceRolled{PlayerID: s.Turn.ActivePlayerID, D1: roll.D1, D2: roll.D2, Total: total}}

	if total == 7 {
		events = append(events, event.NoResourcesProduced{DiceTotal: total, Reason: event.ReasonRolledSeven})
		owed := computeDiscardOwed(s)
		if len(owed) > 0 {
			s.Turn.DiscardOwed = owed
			s.Turn.Phase = model.PhaseDiscarding
			events = append(events, event.DiscardRequired{Owed: owed})
		} else {
			s.Turn.Phase = model.PhaseMovingRobber
		}
		return events
	}

	grants, anyProduced := computeProduction(s, total)
	if anyProduced {
		events = append(events, event.ResourcesProduced{DiceTotal: total, Grants: grants})
		applyProduction(s, grants)
	} else {
		events = append(events, event.NoResourcesProduced{DiceTotal: total, Reason: event.ReasonNoMatchingBuildings})
	}
	s.Turn.Phase = model.PhaseMain
	return events
}

// computeDiscardOwed returns, for every player holding more than 7
// resources, the exact amount (floor of hand/2) they must discard.
func computeDiscardOwed(s *model.GameState) map[string]int {
	owed := make(map[string]int)
	for _, p := range s.Players {
		if hand := p.Resources.Total(); hand > 7 {
			owed[p.ID] = hand / 2
		}
	}
	return owed
}

// computeProduction itemizes every hex matching the rolled total (skipping
// the robber's hex), crediting one resource per settlement and two per
// city to each building's owner.
func computeProduction(s *model.GameState, total int) (map[string][]event.ResourceGrant, bool) {
	grants := make(map[string][]event.ResourceGrant)
	any := false
	for _, hexID := range s.Board.HexIDs() {
		hex, _ := s.Board.Hex(hexID)
		if hex.Number == nil || *hex.Number != total {
			continue
		}
		if hexID == s.RobberHex {
			continue
		}
		resType, ok := hex.Terrain.Resource()
		if !ok {
			continue
		}
		for _, nodeID := range s.Board.NodesOfHex(hexID) {
			building, occupied := s.Buildings.Nodes[nodeID]
			if !occupied {
				continue
			}
			count := 1
			if building.Kind == model.BuildingCity {
				count = 2
			}
			grants[building.PlayerID] = append(grants[building.PlayerID], event.ResourceGrant{
				HexID:    hexID,
				Resource: resType,
				Count:    count,
			})
			any = true
		}
	}
	return grants, any
}

func applyProduction(s *model.GameState, grants map[string][]event.ResourceGrant) {
	for playerID, list := range grants {
		p, ok := s.Player(playerID)
		if !ok {
			continue
		}
		for _, g := range list {
			p.Resources.Add(g.Resource, g.Count)
			s.Bank.Resources.Add(g.Resource, -g.Count)
		}
	}
}

func reduceDiscard(s *model.GameState, in intent.DiscardResources) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	for t, n := range in.Resources {
		p.Resources.Add(t, -n)
		s.Bank.Resources.Add(t, n)
	}
	delete(s.Turn.DiscardOwed, in.PlayerID())

	events := []event.Payload{event.ResourcesDiscarded{PlayerID: in.PlayerID(), Discarded: in.Resources.Clone()}}
	if len(s.Turn.DiscardOwed) == 0 {
		s.Turn.Phase = model.PhaseMovingRobber
	}
	return events
}
