package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/longestroad"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// refreshLongestRoadLengths recomputes every player's cached chain length.
// It is pure geometry over the board and buildings, so it always agrees
// with the reducer's own recompute regardless of which events carried the
// resulting award change.
func refreshLongestRoadLengths(s *model.GameState) {
	lengths := longestroad.RecomputeAll(s.Board, s.Buildings, s.Players)
	for _, p := range s.Players {
		p.LongestRoadLength = lengths[p.ID]
	}
}

// pay deducts cost from the player's hand and returns it to the bank. The
// cost itself is a fixed constant, not part of the event payload, so the
// applier reuses the same cost tables as the reducer.
func pay(s *model.GameState, p *model.Player, cost resource.Bundle) {
	for t, n := range cost {
		p.Resources.Add(t, -n)
		s.Bank.Resources.Add(t, n)
	}
}

func applyRoadBuilt(s *model.GameState, p event.RoadBuilt) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	pay(s, player, model.RoadCost)
	player.Roads[p.EdgeID] = true
	s.Buildings.Rebuild(s.Players)
	refreshLongestRoadLengths(s)
}

func applySettlementBuilt(s *model.GameState, p event.SettlementBuilt) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	pay(s, player, model.SettlementCost)
	player.Settlements[p.NodeID] = true
	s.Buildings.Rebuild(s.Players)
	refreshLongestRoadLengths(s)
}

func applyCityBuilt(s *model.GameState, p event.CityBuilt) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	pay(s, player, model.CityCost)
	delete(player.Settlements, p.NodeID)
	player.Cities[p.NodeID] = true
	s.Buildings.Rebuild(s.Players)
}

func applyLongestRoadAwarded(s *model.GameState, p event.LongestRoadAwarded) {
	id := p.NewHolderID
	s.Awards.LongestRoad = model.LongestRoadAward{HolderID: &id, Length: p.Length}
}

func applyLargestArmyAwarded(s *model.GameState, p event.LargestArmyAwarded) {
	id := p.NewHolderID
	s.Awards.LargestArmy = model.LargestArmyAward{HolderID: &id, Knights: p.Knights}
}
