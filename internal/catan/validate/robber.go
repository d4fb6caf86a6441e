package validate

import (
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
)

func validateDiscard(in intent.DiscardResources, s *model.GameState) []violation.Violation {
	owed, owes := s.Turn.DiscardOwed[in.PlayerID()]
	if !owes {
		return one(violation.MustDiscardFirst, "this player owes no discard")
	}
	var out []violation.Violation
	if in.Resources.Total() != owed {
		out = append(out, violation.New(violation.InsufficientResources, "discard amount does not match the amount owed"))
	}
	p, _ := s.Player(in.PlayerID())
	if !p.Resources.Contains(in.Resources) {
		out = append(out, violation.New(violation.InsufficientResources, "discard exceeds the player's hand"))
	}
	return out
}

func validateMoveRobber(in intent.MoveRobber, s *model.GameState) []violation.Violation {
	if _, ok := s.Board.Hex(in.HexID); !ok {
		return one(violation.InvalidLocation, "unknown hex")
	}
	if in.HexID == s.RobberHex {
		return one(violation.MustMoveRobberToNewHex, "the robber must move to a different hex")
	}
	return nil
}

func validateSteal(in intent.StealResource, s *model.GameState) []violation.Violation {
	eligible := false
	for _, id := range s.Turn.StealCandidates {
		if id == in.VictimID {
			eligible = true
			break
		}
	}
	if !eligible {
		return one(violation.NoEligibleVictim, "the named victim is not eligible to be stolen from")
	}
	victim, ok := s.Player(in.VictimID)
	if !ok || victim.Resources.Total() == 0 {
		return one(violation.VictimHasNoResources, "the victim has no resources to steal")
	}
	return nil
}
