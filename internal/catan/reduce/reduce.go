// Package reduce implements the pure reducer: (intent, state, RNG) ->
// (new state, events). Callers must validate first; the reducer assumes
// the intent is legal and never itself returns a rejection.
package reduce

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/rng"
)

// Reduce applies a validated intent to state, returning a new state (state
// is not mutated) and the ordered list of events the application produced.
func Reduce(in intent.Intent, state *model.GameState, stream *rng.Stream) (*model.GameState, []event.Payload) {
	s := state.Clone()
	var events []event.Payload

	switch in := in.(type) {
	case intent.PlaceSetupSettlement:
		events = reduceSetupSettlement(s, in)
	case intent.PlaceSetupRoad:
		events = reduceSetupRoad(s, in)
	case intent.RollDice:
		events = reduceRollDice(s, stream)
	case intent.DiscardResources:
		events = reduceDiscard(s, in)
	case intent.MoveRobber:
		events = reduceMoveRobber(s, in)
	case intent.StealResource:
		events = reduceSteal(s, in, stream)
	case intent.BuildRoad:
		events = reduceBuildRoad(s, in)
	case intent.BuildSettlement:
		events = reduceBuildSettlement(s, in)
	case intent.BuildCity:
		events = reduceBuildCity(s, in)
	case intent.BuyDevelopmentCard:
		events = reduceBuyDevCard(s, in)
	case intent.PlayKnight:
		events = reducePlayKnight(s, in, stream)
	case intent.PlayRoadBuilding:
		events = reducePlayRoadBuilding(s, in)
	case intent.PlaceRoadBuildingRoad:
		events = reducePlaceRoadBuildingRoad(s, in)
	case intent.PlayYearOfPlenty:
		events = reducePlayYearOfPlenty(s, in)
	case intent.PlayMonopoly:
		events = reducePlayMonopoly(s, in)
	case intent.ProposeTrade:
		events = reduceProposeTrade(s, in)
	case intent.AcceptTrade:
		events = reduceAcceptTrade(s, in)
	case intent.RejectTrade:
		events = reduceRejectTrade(s, in)
	case intent.CancelTrade:
		events = reduceCancelTrade(s, in)
	case intent.ExecuteTrade:
		events = reduceExecuteTrade(s, in)
	case intent.MaritimeTrade:
		events = reduceMaritimeTrade(s, in)
	case intent.EndTurn:
		events = reduceEndTurn(s, in)
	case intent.PairedPassMarker:
		events = reducePairedPassMarker(s, in)
	}

	return s, events
}
