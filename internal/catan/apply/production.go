package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func applyDiceRolled(s *model.GameState, p event.DiceRolled) {
	s.Turn.LastRoll = &model.DiceRoll{D1: p.D1, D2: p.D2}
}

func applyResourcesProduced(s *model.GameState, p event.ResourcesProduced) {
	for playerID, grants := range p.Grants {
		player, ok := s.Player(playerID)
		if !ok {
			continue
		}
		for _, g := range grants {
			player.Resources.Add(g.Resource, g.Count)
			s.Bank.Resources.Add(g.Resource, -g.Count)
		}
	}
	s.Turn.Phase = model.PhaseMain
}

func applyNoResourcesProduced(s *model.GameState, p event.NoResourcesProduced) {
	if p.Reason == event.ReasonRolledSeven {
		s.Turn.Phase = model.PhaseMovingRobber
		return
	}
	s.Turn.Phase = model.PhaseMain
}

func applyDiscardRequired(s *model.GameState, p event.DiscardRequired) {
	owed := make(map[string]int, len(p.Owed))
	for k, v := range p.Owed {
		owed[k] = v
	}
	s.Turn.DiscardOwed = owed
	s.Turn.Phase = model.PhaseDiscarding
}

func applyResourcesDiscarded(s *model.GameState, p event.ResourcesDiscarded) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	for t, n := range p.Discarded {
		player.Resources.Add(t, -n)
		s.Bank.Resources.Add(t, n)
	}
	delete(s.Turn.DiscardOwed, p.PlayerID)
	if len(s.Turn.DiscardOwed) == 0 {
		s.Turn.Phase = model.PhaseMovingRobber
	}
}
