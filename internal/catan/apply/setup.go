package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func applySetupSettlementPlaced(s *model.GameState, p event.SetupSettlementPlaced) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	player.Settlements[p.NodeID] = true
	s.Buildings.Rebuild(s.Players)
	s.Turn.Setup.AwaitingRoad = true
	s.Turn.Setup.PendingSettlementNode = p.NodeID
}

func applySetupResourcesGiven(s *model.GameState, p event.SetupResourcesGiven) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	for t, n := range p.Resources {
		player.Resources.Add(t, n)
		s.Bank.Resources.Add(t, -n)
	}
}

func applySetupRoadPlaced(s *model.GameState, p event.SetupRoadPlaced) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	player.Roads[p.EdgeID] = true
	s.Buildings.Rebuild(s.Players)
	s.Turn.Setup.AwaitingRoad = false
	s.Turn.Setup.PendingSettlementNode = ""
}

func applySetupTurnAdvanced(s *model.GameState, p event.SetupTurnAdvanced) {
	s.Turn.ActivePlayerID = p.NextPlayerID
	s.Turn.Setup.Round = p.Round
	s.Turn.Setup.Index = p.Index
	s.Turn.Setup.Direction = p.Direction
}

func applySetupPhaseEnded(s *model.GameState, p event.SetupPhaseEnded) {
	s.Turn.Phase = model.PhasePreRoll
	s.Turn.ActivePlayerID = p.FirstActivePlayerID
	s.Turn.Number = 1
}
