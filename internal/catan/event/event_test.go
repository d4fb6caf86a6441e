package event

import "testing"

func TestNewDerivesKindFromPayload(t *testing.T) {
	e := New(5, DiceRolled{PlayerID: "p1", D1: 3, D2: 4, Total: 7})
	if e.Index != 5 {
		t.Fatalf("index = %d, want 5", e.Index)
	}
	if e.Kind != KindDiceRolled {
		t.Fatalf("kind = %v, want %v", e.Kind, KindDiceRolled)
	}
	payload, ok := e.Payload.(DiceRolled)
	if !ok {
		t.Fatalf("payload type = %T, want DiceRolled", e.Payload)
	}
	if payload.Total != 7 {
		t.Fatalf("total = %d, want 7", payload.Total)
	}
}

func TestEveryPayloadReportsItsOwnKind(t *testing.T) {
	cases := []Payload{
		SetupSettlementPlaced{},
		SetupResourcesGiven{},
		SetupRoadPlaced{},
		SetupTurnAdvanced{},
		SetupPhaseEnded{},
		TurnStarted{},
		TurnEnded{},
		PairedMarkerPassed{},
		DiceRolled{},
		ResourcesProduced{},
		NoResourcesProduced{},
		DiscardRequired{},
		ResourcesDiscarded{},
		RobberMoved{},
		ResourceStolen{},
		RoadBuilt{},
		SettlementBuilt{},
		CityBuilt{},
		LongestRoadAwarded{},
		LargestArmyAwarded{},
		DevelopmentCardBought{},
		KnightPlayed{},
		RoadBuildingPlayed{},
		RoadBuildingRoadPlaced{},
		YearOfPlentyPlayed{},
		MonopolyPlayed{},
		TradeProposed{},
		TradeAccepted{},
		TradeRejected{},
		TradeCancelled{},
		TradeExecuted{},
		MaritimeTradeExecuted{},
		VictoryPointRevealed{},
		PlayerWon{},
	}
	seen := make(map[Kind]bool, len(cases))
	for _, c := range cases {
		if c.Kind() == "" {
			t.Fatalf("%T reports an empty kind", c)
		}
		if seen[c.Kind()] {
			t.Fatalf("kind %v is reused by more than one payload type", c.Kind())
		}
		seen[c.Kind()] = true
	}
}
