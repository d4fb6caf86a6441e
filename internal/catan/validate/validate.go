// Package validate implements the pure validator: (intent, state) -> list
// of violations. An empty list means the intent is legal to reduce. The
// validator never mutates state and never consults RNG.
package validate

import (
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
)

// Validate returns every reason intent is illegal against state. An empty
// slice means the intent may be passed to the reducer.
func Validate(in intent.Intent, s *model.GameState) []violation.Violation {
	if s.Turn.Phase == model.PhaseEnded {
		return one(violation.GameAlreadyEnded, "the game has already ended")
	}

	if v := checkTurnOwnership(in, s); v != nil {
		return []violation.Violation{*v}
	}
	if v := checkPhase(in, s); v != nil {
		return []violation.Violation{*v}
	}

	switch in := in.(type) {
	case intent.PlaceSetupSettlement:
		return validateSetupSettlement(in, s)
	case intent.PlaceSetupRoad:
		return validateSetupRoad(in, s)
	case intent.RollDice:
		return nil // phase check alone is sufficient
	case intent.DiscardResources:
		return validateDiscard(in, s)
	case intent.MoveRobber:
		return validateMoveRobber(in, s)
	case intent.StealResource:
		return validateSteal(in, s)
	case intent.BuildRoad:
		return validateBuildRoad(in, s)
	case intent.BuildSettlement:
		return validateBuildSettlement(in, s)
	case intent.BuildCity:
		return validateBuildCity(in, s)
	case intent.BuyDevelopmentCard:
		return validateBuyDevCard(in, s)
	case intent.PlayKnight:
		return validatePlayKnight(in, s)
	case intent.PlayRoadBuilding:
		return validatePlayRoadBuilding(in, s)
	case intent.PlaceRoadBuildingRoad:
		return validatePlaceRoadBuildingRoad(in, s)
	case intent.PlayYearOfPlenty:
		return validatePlayYearOfPlenty(in, s)
	case intent.PlayMonopoly:
		return validatePlayMonopoly(in, s)
	case intent.ProposeTrade:
		return validateProposeTrade(in, s)
	case intent.AcceptTrade:
		return validateAcceptTrade(in, s)
	case intent.RejectTrade:
		return validateRejectTrade(in, s)
	case intent.CancelTrade:
		return validateCancelTrade(in, s)
	case intent.ExecuteTrade:
		return validateExecuteTrade(in, s)
	case intent.MaritimeTrade:
		return validateMaritimeTrade(in, s)
	case intent.EndTurn:
		return nil // phase check alone is sufficient
	case intent.PairedPassMarker:
		return validatePairedPassMarker(in, s)
	default:
		return one(violation.InvalidAction, "unrecognized intent")
	}
}

// isActingPlayer reports whether playerID is entitled to act as the
// current turn's principal: the active player, or the paired-turn marker
// holder in the 5-6 variant.
func isActingPlayer(s *model.GameState, playerID string) bool {
	if s.Turn.ActivePlayerID == playerID {
		return true
	}
	if s.Turn.Paired != nil && s.Turn.Paired.MarkerHolderID == playerID {
		return true
	}
	return false
}

// checkTurnOwnership enforces turn ownership for every intent except trade
// responses and discards, which are authorized against their own sets
// (any non-proposer may respond to a trade; any player in the discard set
// may discard) rather than against whose turn it is.
func checkTurnOwnership(in intent.Intent, s *model.GameState) *violation.Violation {
	switch in.(type) {
	case intent.AcceptTrade, intent.RejectTrade, intent.DiscardResources:
		return nil
	}
	if !isActingPlayer(s, in.PlayerID()) {
		v := violation.New(violation.NotYourTurn, "it is not this player's turn")
		return &v
	}
	return nil
}

// checkPhase enforces the phase(s) each intent is legal in, and surfaces
// the phase-specific must-* violations the spec calls for when main-phase
// intents arrive out of order.
func checkPhase(in intent.Intent, s *model.GameState) *violation.Violation {
	phase := s.Turn.Phase
	switch in.(type) {
	case intent.PlaceSetupSettlement, intent.PlaceSetupRoad:
		if phase != model.PhaseSetup {
			return vptr(violation.InvalidAction, "not in setup phase")
		}
	case intent.RollDice:
		if phase != model.PhasePreRoll {
			return vptr(violation.AlreadyRolled, "dice have already been rolled this turn")
		}
	case intent.DiscardResources:
		if phase != model.PhaseDiscarding {
			return vptr(violation.MustDiscardFirst, "no discard is currently owed")
		}
	case intent.MoveRobber:
		if phase != model.PhaseMovingRobber {
			return vptr(violation.MustMoveRobber, "the robber is not awaiting a move")
		}
	case intent.StealResource:
		if phase != model.PhaseStealing {
			return vptr(violation.MustStealFirst, "no steal is currently pending")
		}
	case intent.PairedPassMarker:
		return nil
	default:
		// Every remaining intent (building, trading, dev cards, end turn)
		// is a main-phase action, gated with the phase-specific reason the
		// spec names for why main phase hasn't been reached yet.
		switch phase {
		case model.PhaseMain:
			return nil
		case model.PhasePreRoll:
			return vptr(violation.MustRollFirst, "dice must be rolled before acting")
		case model.PhaseDiscarding:
			return vptr(violation.MustDiscardFirst, "players owing a discard must discard first")
		case model.PhaseMovingRobber:
			return vptr(violation.MustMoveRobber, "the robber must be moved first")
		case model.PhaseStealing:
			return vptr(violation.MustStealFirst, "the pending steal must be resolved first")
		default:
			return vptr(violation.InvalidAction, "not legal in the current phase")
		}
	}
	return nil
}

func one(kind violation.Kind, msg string) []violation.Violation {
	return []violation.Violation{violation.New(kind, msg)}
}

func vptr(kind violation.Kind, msg string) *violation.Violation {
	v := violation.New(kind, msg)
	return &v
}
