package validate

import (
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
)

func validatePairedPassMarker(in intent.PairedPassMarker, s *model.GameState) []violation.Violation {
	if s.Turn.Paired == nil {
		return one(violation.InvalidAction, "no paired turn is active")
	}
	if s.Turn.Paired.MarkerHolderID != in.PlayerID() {
		return one(violation.NotYourTurn, "this player does not hold the paired-turn marker")
	}
	return nil
}
