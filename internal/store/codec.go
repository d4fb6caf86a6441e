package store

import (
	"encoding/json"
	"fmt"

	"github.com/btuckerc/traderoads/internal/catan/event"
)

// DecodePayload unmarshals a stored event payload into its concrete type
// given the event's kind. This is the store's half of the tagged-union
// encoding described in event.Payload's doc comment: the kind column
// selects which concrete Go type the payload JSON is parsed into.
func DecodePayload(kind event.Kind, raw []byte) (event.Payload, error) {
	var payload event.Payload
	switch kind {
	case event.KindSetupSettlementPlaced:
		payload = &event.SetupSettlementPlaced{}
	case event.KindSetupResourcesGiven:
		payload = &event.SetupResourcesGiven{}
	case event.KindSetupRoadPlaced:
		payload = &event.SetupRoadPlaced{}
	case event.KindSetupTurnAdvanced:
		payload = &event.SetupTurnAdvanced{}
	case event.KindSetupPhaseEnded:
		payload = &event.SetupPhaseEnded{}
	case event.KindTurnStarted:
		payload = &event.TurnStarted{}
	case event.KindTurnEnded:
		payload = &event.TurnEnded{}
	case event.KindDiceRolled:
		payload = &event.DiceRolled{}
	case event.KindResourcesProduced:
		payload = &event.ResourcesProduced{}
	case event.KindNoResourcesProduced:
		payload = &event.NoResourcesProduced{}
	case event.KindDiscardRequired:
		payload = &event.DiscardRequired{}
	case event.KindResourcesDiscarded:
		payload = &event.ResourcesDiscarded{}
	case event.KindRobberMoved:
		payload = &event.RobberMoved{}
	case event.KindResourceStolen:
		payload = &event.ResourceStolen{}
	case event.KindRoadBuilt:
		payload = &event.RoadBuilt{}
	case event.KindSettlementBuilt:
		payload = &event.SettlementBuilt{}
	case event.KindCityBuilt:
		payload = &event.CityBuilt{}
	case event.KindLongestRoadAwarded:
		payload = &event.LongestRoadAwarded{}
	case event.KindLargestArmyAwarded:
		payload = &event.LargestArmyAwarded{}
	case event.KindDevelopmentCardBought:
		payload = &event.DevelopmentCardBought{}
	case event.KindKnightPlayed:
		payload = &event.KnightPlayed{}
	case event.KindRoadBuildingPlayed:
		payload = &event.RoadBuildingPlayed{}
	case event.KindRoadBuildingRoadPlaced:
		payload = &event.RoadBuildingRoadPlaced{}
	case event.KindYearOfPlentyPlayed:
		payload = &event.YearOfPlentyPlayed{}
	case event.KindMonopolyPlayed:
		payload = &event.MonopolyPlayed{}
	case event.KindTradeProposed:
		payload = &event.TradeProposed{}
	case event.KindTradeAccepted:
		payload = &event.TradeAccepted{}
	case event.KindTradeRejected:
		payload = &event.TradeRejected{}
	case event.KindTradeCancelled:
		payload = &event.TradeCancelled{}
	case event.KindTradeExecuted:
		payload = &event.TradeExecuted{}
	case event.KindMaritimeTradeExecuted:
		payload = &event.MaritimeTradeExecuted{}
	case event.KindVictoryPointRevealed:
		payload = &event.VictoryPointRevealed{}
	case event.KindPlayerWon:
		payload = &event.PlayerWon{}
	case event.KindPairedMarkerPassed:
		payload = &event.PairedMarkerPassed{}
	default:
		return nil, fmt.Errorf("store: unknown event kind %q", kind)
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("store: unmarshal %s payload: %w", kind, err)
	}
	// Every concrete payload above implements Payload on its value receiver,
	// so deref back to the value form the rest of the codebase expects.
	return derefPayload(payload), nil
}

func derefPayload(p event.Payload) event.Payload {
	switch v := p.(type) {
	case *event.SetupSettlementPlaced:
		return *v
	case *event.SetupResourcesGiven:
		return *v
	case *event.SetupRoadPlaced:
		return *v
	case *event.SetupTurnAdvanced:
		return *v
	case *event.SetupPhaseEnded:
		return *v
	case *event.TurnStarted:
		return *v
	case *event.TurnEnded:
		return *v
	case *event.DiceRolled:
		return *v
	case *event.ResourcesProduced:
		return *v
	case *event.NoResourcesProduced:
		return *v
	case *event.DiscardRequired:
		return *v
	case *event.ResourcesDiscarded:
		return *v
	case *event.RobberMoved:
		return *v
	case *event.ResourceStolen:
		return *v
	case *event.RoadBuilt:
		return *v
	case *event.SettlementBuilt:
		return *v
	case *event.CityBuilt:
		return *v
	case *event.LongestRoadAwarded:
		return *v
	case *event.LargestArmyAwarded:
		return *v
	case *event.DevelopmentCardBought:
		return *v
	case *event.KnightPlayed:
		return *v
	case *event.RoadBuildingPlayed:
		return *v
	case *event.RoadBuildingRoadPlaced:
		return *v
	case *event.YearOfPlentyPlayed:
		return *v
	case *event.MonopolyPlayed:
		return *v
	case *event.TradeProposed:
		return *v
	case *event.TradeAccepted:
		return *v
	case *event.TradeRejected:
		return *v
	case *event.TradeCancelled:
		return *v
	case *event.TradeExecuted:
		return *v
	case *event.MaritimeTradeExecuted:
		return *v
	case *event.VictoryPointRevealed:
		return *v
	case *event.PlayerWon:
		return *v
	case *event.PairedMarkerPassed:
		return *v
	default:
		return p
	}
}
