// Package apply implements the pure event applier: replaying a game's
// event log from an empty or snapshotted state reconstructs the exact
// GameState the reducer produced at the time each event was emitted,
// without consulting RNG. This is the normative reconstruction path for
// reconnection and crash recovery; the reducer's return value is never
// trusted directly by the runtime once an event has been appended.
package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

// Apply returns a new state with ev folded in. It never mutates s.
func Apply(s *model.GameState, ev event.Event) *model.GameState {
	out := s.Clone()
	switch p := ev.Payload.(type) {
	case event.SetupSettlementPlaced:
		applySetupSettlementPlaced(out, p)
	case event.SetupResourcesGiven:
		applySetupResourcesGiven(out, p)
	case event.SetupRoadPlaced:
		applySetupRoadPlaced(out, p)
	case event.SetupTurnAdvanced:
		applySetupTurnAdvanced(out, p)
	case event.SetupPhaseEnded:
		applySetupPhaseEnded(out, p)

	case event.TurnStarted:
		applyTurnStarted(out, p)
	case event.TurnEnded:
		applyTurnEnded(out, p)
	case event.PairedMarkerPassed:
		applyPairedMarkerPassed(out, p)

	case event.DiceRolled:
		applyDiceRolled(out, p)
	case event.ResourcesProduced:
		applyResourcesProduced(out, p)
	case event.NoResourcesProduced:
		applyNoResourcesProduced(out, p)
	case event.DiscardRequired:
		applyDiscardRequired(out, p)
	case event.ResourcesDiscarded:
		applyResourcesDiscarded(out, p)

	case event.RobberMoved:
		applyRobberMoved(out, p)
	case event.ResourceStolen:
		applyResourceStolen(out, p)

	case event.RoadBuilt:
		applyRoadBuilt(out, p)
	case event.SettlementBuilt:
		applySettlementBuilt(out, p)
	case event.CityBuilt:
		applyCityBuilt(out, p)
	case event.LongestRoadAwarded:
		applyLongestRoadAwarded(out, p)
	case event.LargestArmyAwarded:
		applyLargestArmyAwarded(out, p)

	case event.DevelopmentCardBought:
		applyDevelopmentCardBought(out, p)
	case event.KnightPlayed:
		applyKnightPlayed(out, p)
	case event.RoadBuildingPlayed:
		applyRoadBuildingPlayed(out, p)
	case event.RoadBuildingRoadPlaced:
		applyRoadBuildingRoadPlaced(out, p)
	case event.YearOfPlentyPlayed:
		applyYearOfPlentyPlayed(out, p)
	case event.MonopolyPlayed:
		applyMonopolyPlayed(out, p)

	case event.TradeProposed:
		applyTradeProposed(out, p)
	case event.TradeAccepted:
		applyTradeAccepted(out, p)
	case event.TradeRejected:
		applyTradeRejected(out, p)
	case event.TradeCancelled:
		applyTradeCancelled(out, p)
	case event.TradeExecuted:
		applyTradeExecuted(out, p)
	case event.MaritimeTradeExecuted:
		applyMaritimeTradeExecuted(out, p)

	case event.VictoryPointRevealed:
		// Informational only; the referenced card's hidden state already
		// counted toward the point total that triggered PlayerWon.
	case event.PlayerWon:
		applyPlayerWon(out, p)
	}

	out.EventIndex = ev.Index
	return out
}

// Replay folds an ordered slice of events into state in sequence, starting
// from s (typically a fresh NewGameState or a loaded snapshot).
func Replay(s *model.GameState, events []event.Event) *model.GameState {
	cur := s
	for _, ev := range events {
		cur = Apply(cur, ev)
	}
	return cur
}
