package reduce

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

func reduceSetupSettlement(s *model.GameState, in intent.PlaceSetupSettlement) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	p.Settlements[in.NodeID] = true
	s.Buildings.Rebuild(s.Players)
	s.Turn.Setup.AwaitingRoad = true
	s.Turn.Setup.PendingSettlementNode = in.NodeID
	return []event.Payload{event.SetupSettlementPlaced{PlayerID: in.PlayerID(), NodeID: in.NodeID}}
}

// setupGrant returns one resource per non-desert hex adjacent to nodeID.
func setupGrant(s *model.GameState, nodeID board.NodeID) resource.Bundle {
	n, ok := s.Board.Node(nodeID)
	if !ok {
		return resource.NewBundle()
	}
	grant := resource.NewBundle()
	for _, hexID := range n.HexIDs {
		hex, ok := s.Board.Hex(hexID)
		if !ok {
			continue
		}
		if t, ok := hex.Terrain.Resource(); ok {
			grant.Add(t, 1)
		}
	}
	return grant
}

func reduceSetupRoad(s *model.GameState, in intent.PlaceSetupRoad) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	p.Roads[in.EdgeID] = true
	s.Buildings.Rebuild(s.Players)

	events := []event.Payload{event.SetupRoadPlaced{PlayerID: in.PlayerID(), EdgeID: in.EdgeID}}

	if s.Turn.Setup.Round == 2 {
		node := s.Turn.Setup.PendingSettlementNode
		grant := setupGrant(s, node)
		for t, n := range grant {
			p.Resources.Add(t, n)
			s.Bank.Resources.Add(t, -n)
		}
		events = append(events, event.SetupResourcesGiven{PlayerID: in.PlayerID(), Resources: grant})
	}

	s.Turn.Setup.AwaitingRoad = false
	s.Turn.Setup.PendingSettlementNode = ""

	nextID, done := advanceSetup(s)
	if done {
		s.Turn.Phase = model.PhasePreRoll
		s.Turn.ActivePlayerID = s.PlayerAt(0).ID
		s.Turn.Number = 1
		s.Turn.Paired = nextPairedState(s, s.PlayerAt(0))
		events = append(events, event.SetupPhaseEnded{FirstActivePlayerID: s.Turn.ActivePlayerID})
		events = append(events, event.TurnStarted{PlayerID: s.Turn.ActivePlayerID, Number: s.Turn.Number})
		return events
	}

	s.Turn.ActivePlayerID = nextID
	events = append(events, event.SetupTurnAdvanced{
		NextPlayerID: nextID,
		Round:        s.Turn.Setup.Round,
		Index:        s.Turn.Setup.Index,
		Direction:    s.Turn.Setup.Direction,
	})
	return events
}

// advanceSetup moves the setup cursor to the next player: forward through
// round 1, reversing at the last player (who plays twice in a row) into
// round 2, then backward to index 0. done is true once round 2's last
// placement (index 0) has completed.
func advanceSetup(s *model.GameState) (nextPlayerID string, done bool) {
	st := &s.Turn.Setup
	n := len(s.Players)

	if st.Round == 1 {
		if st.Index == n-1 {
			st.Round = 2
			st.Direction = model.DirectionBackward
			return s.PlayerAt(st.Index).ID, false
		}
		st.Index++
		return s.PlayerAt(st.Index).ID, false
	}

	if st.Index == 0 {
		return "", true
	}
	st.Index--
	return s.PlayerAt(st.Index).ID, false
}
