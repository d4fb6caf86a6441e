package validate

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
)

// roadConnectsFor reports whether edgeID has a valid attachment point for
// playerID: an endpoint the player occupies with a settlement/city, or an
// endpoint that touches one of the player's existing roads and is not
// occupied by an opponent's building (which would block the chain).
func roadConnectsFor(s *model.GameState, playerID string, edgeID board.EdgeID) bool {
	e, ok := s.Board.Edge(edgeID)
	if !ok {
		return false
	}
	for _, n := range e.Nodes {
		if building, occ := s.Buildings.Nodes[n]; occ {
			if building.PlayerID == playerID {
				return true
			}
			continue // opponent building blocks the chain through n
		}
		for _, incident := range s.Board.EdgesOfNode(n) {
			if incident == edgeID {
				continue
			}
			if s.Buildings.Roads[incident] == playerID {
				return true
			}
		}
	}
	return false
}

// settlementConnectsFor reports whether nodeID touches at least one of the
// player's existing roads.
func settlementConnectsFor(s *model.GameState, playerID string, nodeID board.NodeID) bool {
	for _, edgeID := range s.Board.EdgesOfNode(nodeID) {
		if s.Buildings.Roads[edgeID] == playerID {
			return true
		}
	}
	return false
}

func validateBuildRoad(in intent.BuildRoad, s *model.GameState) []violation.Violation {
	var out []violation.Violation
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
	if !p.Resources.Contains(model.RoadCost) {
		out = append(out, violation.New(violation.InsufficientResources, "insufficient resources for a road"))
	}
	return out
}

func validateBuildSettlement(in intent.BuildSettlement, s *model.GameState) []violation.Violation {
	var out []violation.Violation
	if _, ok := s.Board.Node(in.NodeID); !ok {
		return one(violation.InvalidLocation, "unknown node")
	}
	if !satisfiesDistanceRule(s, in.NodeID) {
		out = append(out, violation.New(violation.ViolatesDistanceRule, "a neighboring node is already occupied"))
	}
	if !settlementConnectsFor(s, in.PlayerID(), in.NodeID) {
		out = append(out, violation.New(violation.NoAdjacentRoad, "settlement must touch one of the player's roads"))
	}
	p, _ := s.Player(in.PlayerID())
	if p.RemainingSettlements() <= 0 {
		out = append(out, violation.New(violation.NoSupplyRemaining, "no settlements remaining in supply"))
	}
	if !p.Resources.Contains(model.SettlementCost) {
		out = append(out, violation.New(violation.InsufficientResources, "insufficient resources for a settlement"))
	}
	return out
}

func validateBuildCity(in intent.BuildCity, s *model.GameState) []violation.Violation {
	var out []violation.Violation
	p, _ := s.Player(in.PlayerID())
	if !p.Settlements[in.NodeID] {
		out = append(out, violation.New(violation.NoSettlementToUpgrade, "no settlement of this player's at that node"))
	}
	if p.RemainingCities() <= 0 {
		out = append(out, violation.New(violation.NoSupplyRemaining, "no cities remaining in supply"))
	}
	if !p.Resources.Contains(model.CityCost) {
		out = append(out, violation.New(violation.InsufficientResources, "insufficient resources for a city"))
	}
	return out
}

func validateBuyDevCard(in intent.BuyDevelopmentCard, s *model.GameState) []violation.Violation {
	var out []violation.Violation
	if len(s.Bank.DevDeck) == 0 {
		out = append(out, violation.New(violation.NoSupplyRemaining, "the development card deck is empty"))
	}
	p, _ := s.Player(in.PlayerID())
	if !p.Resources.Contains(model.DevCardCost) {
		out = append(out, violation.New(violation.InsufficientResources, "insufficient resources for a development card"))
	}
	return out
}
