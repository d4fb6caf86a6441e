package reduce

import (
	"fmt"

	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// pay deducts cost from the player's hand and returns it to the bank.
func pay(s *model.GameState, p *model.Player, cost resource.Bundle) {
	for t, n := range cost {
		p.Resources.Add(t, -n)
		s.Bank.Resources.Add(t, n)
	}
}

func reduceBuildRoad(s *model.GameState, in intent.BuildRoad) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	pay(s, p, model.RoadCost)
	p.Roads[in.EdgeID] = true
	s.Buildings.Rebuild(s.Players)

	events := []event.Payload{event.RoadBuilt{PlayerID: in.PlayerID(), EdgeID: in.EdgeID}}
	events = append(events, recomputeLongestRoad(s)...)
	events = append(events, checkVictory(s)...)
	return events
}

func reduceBuildSettlement(s *model.GameState, in intent.BuildSettlement) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	pay(s, p, model.SettlementCost)
	p.Settlements[in.NodeID] = true
	s.Buildings.Rebuild(s.Players)

	events := []event.Payload{event.SettlementBuilt{PlayerID: in.PlayerID(), NodeID: in.NodeID}}
	events = append(events, recomputeLongestRoad(s)...)
	events = append(events, checkVictory(s)...)
	return events
}

func reduceBuildCity(s *model.GameState, in intent.BuildCity) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	pay(s, p, model.CityCost)
	delete(p.Settlements, in.NodeID)
	p.Cities[in.NodeID] = true
	s.Buildings.Rebuild(s.Players)

	events := []event.Payload{event.CityBuilt{PlayerID: in.PlayerID(), NodeID: in.NodeID}}
	events = append(events, checkVictory(s)...)
	return events
}

// nextDevCardID derives a deterministic card-instance id from how many dev
// cards have been drawn so far across the game, so the same event sequence
// always reproduces the same ids on replay.
func nextDevCardID(s *model.GameState) string {
	n := 0
	for _, p := range s.Players {
		n += len(p.DevCards)
	}
	return fmt.Sprintf("dc%d", n)
}

func reduceBuyDevCard(s *model.GameState, in intent.BuyDevelopmentCard) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	pay(s, p, model.DevCardCost)

	cardType, _ := s.Bank.DrawDevCard()
	cardID := nextDevCardID(s)
	p.DevCards = append(p.DevCards, model.DevCard{ID: cardID, Type: cardType, BoughtThisTurn: true})
	p.BoughtDevThisTurn = true

	return []event.Payload{event.DevelopmentCardBought{PlayerID: in.PlayerID(), CardID: cardID, CardType: cardType}}
}
