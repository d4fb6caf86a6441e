package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func applyTurnStarted(s *model.GameState, p event.TurnStarted) {
	s.Turn.ActivePlayerID = p.PlayerID
	s.Turn.Number = p.Number
	s.Turn.Phase = model.PhasePreRoll
	s.Turn.LastRoll = nil
	s.Turn.DiscardOwed = make(map[string]int)
	s.Turn.StealCandidates = nil
	s.Turn.RoadBuildingRoadsRemaining = 0

	active, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	s.Turn.Paired = nextPairedState(s, active)
}

// nextPairedState mirrors the reducer's paired-turn seeding for the 5-6
// player variant: the newly active player holds the marker first, paired
// with the player after them in turn order.
func nextPairedState(s *model.GameState, active *model.Player) *model.PairedState {
	if s.Mode != model.PlayerMode56 {
		return nil
	}
	partner := s.PlayerAt(s.NextOrder(active.Order))
	return &model.PairedState{
		Player1ID:      active.ID,
		Player2ID:      partner.ID,
		MarkerHolderID: active.ID,
	}
}

func applyTurnEnded(s *model.GameState, p event.TurnEnded) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	player.BoughtDevThisTurn = false
	player.PlayedDevThisTurn = false
	for i := range player.DevCards {
		player.DevCards[i].BoughtThisTurn = false
	}
}

func applyPairedMarkerPassed(s *model.GameState, p event.PairedMarkerPassed) {
	if s.Turn.Paired == nil {
		return
	}
	s.Turn.Paired.MarkerHolderID = p.ToPlayerID
}
