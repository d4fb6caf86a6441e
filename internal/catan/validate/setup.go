package validate

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
)

// satisfiesDistanceRule reports whether nodeID and every node directly
// adjacent to it are empty of settlements and cities.
func satisfiesDistanceRule(s *model.GameState, nodeID board.NodeID) bool {
	if _, occupied := s.Buildings.Nodes[nodeID]; occupied {
		return false
	}
	for _, n := range s.Board.NodesAdjacentToNode(nodeID) {
		if _, occupied := s.Buildings.Nodes[n]; occupied {
			return false
		}
	}
	return true
}

func validateSetupSettlement(in intent.PlaceSetupSettlement, s *model.GameState) []violation.Violation {
	if s.Turn.Setup.AwaitingRoad {
		return one(violation.InvalidAction, "the paired road for the previous settlement has not been placed yet")
	}
	if _, ok := s.Board.Node(in.NodeID); !ok {
		return one(violation.InvalidLocation, "unknown node")
	}
	if !satisfiesDistanceRule(s, in.NodeID) {
		return one(violation.ViolatesDistanceRule, "a neighboring node is already occupied")
	}
	p, _ := s.Player(in.PlayerID())
	if p.RemainingSettlements() <= 0 {
		return one(violation.NoSupplyRemaining, "no settlements remaining in supply")
	}
	return nil
}

func validateSetupRoad(in intent.PlaceSetupRoad, s *model.GameState) []violation.Violation {
	if !s.Turn.Setup.AwaitingRoad {
		return one(violation.InvalidAction, "no setup settlement is awaiting its paired road")
	}
	edge, ok := s.Board.Edge(in.EdgeID)
	if !ok {
		return one(violation.InvalidLocation, "unknown edge")
	}
	if _, occupied := s.Buildings.Roads[in.EdgeID]; occupied {
		return one(violation.LocationOccupied, "edge already has a road")
	}
	p, _ := s.Player(in.PlayerID())
	if p.RemainingRoads() <= 0 {
		return one(violation.NoSupplyRemaining, "no roads remaining in supply")
	}
	settlementNode, ok := s.LastSetupSettlementNode()
	if !ok {
		return one(violation.InvalidAction, "no setup settlement recorded to pair this road with")
	}
	if edge.Nodes[0] != settlementNode && edge.Nodes[1] != settlementNode {
		return one(violation.NoAdjacentRoad, "road must touch the just-placed settlement")
	}
	return nil
}
