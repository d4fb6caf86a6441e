package validate

import (
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
)

// checkPlayable runs the shared dev-card-play preconditions: the card must
// exist, be unplayed, not bought this turn, its type must match, and the
// player must not have already played a dev card this turn.
func checkPlayable(s *model.GameState, playerID, cardID string, want model.DevCardType) *violation.Violation {
	p, _ := s.Player(playerID)
	if p.PlayedDevThisTurn {
		v := violation.New(violation.AlreadyPlayedDevCard, "a development card has already been played this turn")
		return &v
	}
	card, ok := p.DevCard(cardID)
	if !ok {
		v := violation.New(violation.NoDevCardToPlay, "no such development card in hand")
		return &v
	}
	if card.Played {
		v := violation.New(violation.NoDevCardToPlay, "this card has already been played")
		return &v
	}
	if card.BoughtThisTurn {
		v := violation.New(violation.CannotPlayCardBoughtThisTurn, "a card bought this turn cannot be played the same turn")
		return &v
	}
	if card.Type != want {
		v := violation.New(violation.InvalidDevCardType, "card type does not match the intent")
		return &v
	}
	return nil
}

func validatePlayKnight(in intent.PlayKnight, s *model.GameState) []violation.Violation {
	var out []violation.Violation
	if v := checkPlayable(s, in.PlayerID(), in.DevCardID, model.DevCardKnight); v != nil {
		out = append(out, *v)
	}
	if _, ok := s.Board.Hex(in.HexID); !ok {
		out = append(out, violation.New(violation.InvalidLocation, "unknown hex"))
	} else if in.HexID == s.RobberHex {
		out = append(out, violation.New(violation.MustMoveRobberToNewHex, "the robber must move to a different hex"))
	}
	return out
}

func validatePlayRoadBuilding(in intent.PlayRoadBuilding, s *model.GameState) []violation.Violation {
	if v := checkPlayable(s, in.PlayerID(), in.DevCardID, model.DevCardRoadBuilding); v != nil {
		return []violation.Violation{*v}
	}
	return nil
}

func validatePlaceRoadBuildingRoad(in intent.PlaceRoadBuildingRoad, s *model.GameState) []violation.Violation {
	var out []violation.Violation
	if s.Turn.RoadBuildingRoadsRemaining <= 0 {
		return one(violation.InvalidAction, "no free road-building roads remaining")
	}
	if _, ok := s.Board.Edge(in.EdgeID); !ok {
		return one(violation.InvalidLocation, "unknown edge")
	}
	if _, occupied := s.Buildings.Roads[in.EdgeID]; occupied {
		out = append(out, violation.New(violation.LocationOccupied, "edge already has a road"))
	}
	if !roadConnectsFor(s, in.PlayerID(), in.EdgeID) {
		out = append(out, violation.New(violation.NoAdjacentRoad, "road must connect to the player's existing roads or buildings"))
	}
	p, _ := s.Player(in.PlayerID())
	if p.RemainingRoads() <= 0 {
		out = append(out, violation.New(violation.NoSupplyRemaining, "no roads remaining in supply"))
	}
	return out
}

func validatePlayYearOfPlenty(in intent.PlayYearOfPlenty, s *model.GameState) []violation.Violation {
	if v := checkPlayable(s, in.PlayerID(), in.DevCardID, model.DevCardYearOfPlenty); v != nil {
		return []violation.Violation{*v}
	}
	var out []violation.Violation
	if !s.Bank.Resources.Has(in.First, 1) {
		out = append(out, violation.New(violation.NoSupplyRemaining, "the bank has none of the first resource"))
	}
	need := 1
	if in.First == in.Second {
		need = 2
	}
	if !s.Bank.Resources.Has(in.Second, need) {
		out = append(out, violation.New(violation.NoSupplyRemaining, "the bank has none of the second resource"))
	}
	return out
}

func validatePlayMonopoly(in intent.PlayMonopoly, s *model.GameState) []violation.Violation {
	if v := checkPlayable(s, in.PlayerID(), in.DevCardID, model.DevCardMonopoly); v != nil {
		return []violation.Violation{*v}
	}
	return nil
}
