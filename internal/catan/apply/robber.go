package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func applyRobberMoved(s *model.GameState, p event.RobberMoved) {
	s.RobberHex = p.HexID
	s.Turn.StealCandidates = append([]string(nil), p.EligibleVictims...)

	// Only the roll-seven path and the knight-card path reach here. With no
	// eligible victim, the roll-seven path moves from PhaseMovingRobber to
	// PhaseMain and the knight-card path, which is only legal in PhaseMain,
	// stays there. A pending steal moves either into PhaseStealing.
	if len(p.EligibleVictims) > 0 {
		s.Turn.Phase = model.PhaseStealing
	} else if s.Turn.Phase == model.PhaseMovingRobber {
		s.Turn.Phase = model.PhaseMain
	}
}

func applyResourceStolen(s *model.GameState, p event.ResourceStolen) {
	victim, ok := s.Player(p.VictimID)
	if !ok {
		return
	}
	thief, ok := s.Player(p.ThiefID)
	if !ok {
		return
	}
	victim.Resources.Add(p.Resource, -1)
	thief.Resources.Add(p.Resource, 1)
	s.Turn.StealCandidates = nil
	if s.Turn.Phase == model.PhaseStealing {
		s.Turn.Phase = model.PhaseMain
	}
}
