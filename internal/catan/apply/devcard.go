package apply

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

func applyDevelopmentCardBought(s *model.GameState, p event.DevelopmentCardBought) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	pay(s, player, model.DevCardCost)
	s.Bank.DrawDevCard()
	player.DevCards = append(player.DevCards, model.DevCard{ID: p.CardID, Type: p.CardType, BoughtThisTurn: true})
	player.BoughtDevThisTurn = true
}

func applyKnightPlayed(s *model.GameState, p event.KnightPlayed) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	if card, ok := player.DevCard(p.CardID); ok {
		card.Played = true
	}
	player.PlayedDevThisTurn = true
	player.Knights = p.Knights
}

func applyRoadBuildingPlayed(s *model.GameState, p event.RoadBuildingPlayed) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	if card, ok := player.DevCard(p.CardID); ok {
		card.Played = true
	}
	player.PlayedDevThisTurn = true
	s.Turn.RoadBuildingRoadsRemaining = p.FreeRoadsRemaining
}

func applyRoadBuildingRoadPlaced(s *model.GameState, p event.RoadBuildingRoadPlaced) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	player.Roads[p.EdgeID] = true
	s.Buildings.Rebuild(s.Players)
	refreshLongestRoadLengths(s)
	s.Turn.RoadBuildingRoadsRemaining = p.FreeRoadsRemaining
}

func applyYearOfPlentyPlayed(s *model.GameState, p event.YearOfPlentyPlayed) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	if card, ok := player.DevCard(p.CardID); ok {
		card.Played = true
	}
	player.PlayedDevThisTurn = true
	player.Resources.Add(p.First, 1)
	s.Bank.Resources.Add(p.First, -1)
	player.Resources.Add(p.Second, 1)
	s.Bank.Resources.Add(p.Second, -1)
}

func applyMonopolyPlayed(s *model.GameState, p event.MonopolyPlayed) {
	player, ok := s.Player(p.PlayerID)
	if !ok {
		return
	}
	if card, ok := player.DevCard(p.CardID); ok {
		card.Played = true
	}
	player.PlayedDevThisTurn = true
	for victimID, n := range p.Victims {
		victim, ok := s.Player(victimID)
		if !ok {
			continue
		}
		victim.Resources.Add(p.Resource, -n)
		player.Resources.Add(p.Resource, n)
	}
}
