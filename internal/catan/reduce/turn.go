package reduce

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func reduceEndTurn(s *model.GameState, in intent.EndTurn) []event.Payload {
	var events []event.Payload
	for _, t := range s.Turn.OpenTrades {
		events = append(events, event.TradeCancelled{TradeID: t.ID, Reason: event.TradeCancelTurnEnded})
	}
	s.Turn.OpenTrades = nil

	events = append(events, event.TurnEnded{PlayerID: s.Turn.ActivePlayerID, Number: s.Turn.Number})

	ending, _ := s.ActivePlayer()
	ending.BoughtDevThisTurn = false
	ending.PlayedDevThisTurn = false
	for i := range ending.DevCards {
		ending.DevCards[i].BoughtThisTurn = false
	}

	next := s.PlayerAt(s.NextOrder(ending.Order))
	s.Turn.ActivePlayerID = next.ID
	s.Turn.Number++
	s.Turn.Phase = model.PhasePreRoll
	s.Turn.LastRoll = nil
	s.Turn.DiscardOwed = make(map[string]int)
	s.Turn.StealCandidates = nil
	s.Turn.RoadBuildingRoadsRemaining = 0
	s.Turn.Paired = nextPairedState(s, next)

	events = append(events, event.TurnStarted{PlayerID: next.ID, Number: s.Turn.Number})
	return events
}

// nextPairedState seeds the paired-turn marker for the 5-6 player variant:
// the newly active player holds the marker first, paired with the player
// after them in turn order. 3-4 player games have no paired state.
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

func reducePairedPassMarker(s *model.GameState, in intent.PairedPassMarker) []event.Payload {
	paired := s.Turn.Paired
	from := paired.MarkerHolderID
	to := paired.Player1ID
	if from == paired.Player1ID {
		to = paired.Player2ID
	}
	paired.MarkerHolderID = to
	return []event.Payload{event.PairedMarkerPassed{FromPlayerID: from, ToPlayerID: to}}
}
