package reduce

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/rng"
)

func reducePlayKnight(s *model.GameState, in intent.PlayKnight, stream *rng.Stream) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	card, _ := p.DevCard(in.DevCardID)
	card.Played = true
	p.PlayedDevThisTurn = true
	p.Knights++

	events := []event.Payload{event.KnightPlayed{PlayerID: in.PlayerID(), CardID: in.DevCardID, Knights: p.Knights}}
	events = append(events, recomputeLargestArmy(s)...)

	s.RobberHex = in.HexID
	victims := eligibleVictims(s, in.HexID, in.PlayerID())
	s.Turn.StealCandidates = victims
	events = append(events, event.RobberMoved{
		MovedByPlayerID: in.PlayerID(),
		HexID:           in.HexID,
		EligibleVictims: victims,
	})

	stole := false
	if in.VictimID != nil {
		victim, ok := s.Player(*in.VictimID)
		if ok && victim.Resources.Total() > 0 && stealEligible(victims, *in.VictimID) {
			taken := rng.SampleSteal(stream, victim.Resources)
			victim.Resources.Add(taken, -1)
			p.Resources.Add(taken, 1)
			s.Turn.StealCandidates = nil
			stole = true
			events = append(events, event.ResourceStolen{ThiefID: in.PlayerID(), VictimID: *in.VictimID, Resource: taken})
		}
	}

	if !stole && len(victims) > 0 {
		s.Turn.Phase = model.PhaseStealing
	}

	events = append(events, checkVictory(s)...)
	return events
}

func stealEligible(victims []string, id string) bool {
	for _, v := range victims {
		if v == id {
			return true
		}
	}
	return false
}

func reducePlayRoadBuilding(s *model.GameState, in intent.PlayRoadBuilding) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	card, _ := p.DevCard(in.DevCardID)
	card.Played = true
	p.PlayedDevThisTurn = true

	remaining := 2
	if p.RemainingRoads() < remaining {
		remaining = p.RemainingRoads()
	}
	s.Turn.RoadBuildingRoadsRemaining = remaining

	return []event.Payload{event.RoadBuildingPlayed{PlayerID: in.PlayerID(), CardID: in.DevCardID, FreeRoadsRemaining: remaining}}
}

func reducePlaceRoadBuildingRoad(s *model.GameState, in intent.PlaceRoadBuildingRoad) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	p.Roads[in.EdgeID] = true
	s.Buildings.Rebuild(s.Players)
	s.Turn.RoadBuildingRoadsRemaining--

	events := []event.Payload{event.RoadBuildingRoadPlaced{
		PlayerID:           in.PlayerID(),
		EdgeID:             in.EdgeID,
		FreeRoadsRemaining: s.Turn.RoadBuildingRoadsRemaining,
	}}
	events = append(events, recomputeLongestRoad(s)...)
	events = append(events, checkVictory(s)...)
	return events
}

func reducePlayYearOfPlenty(s *model.GameState, in intent.PlayYearOfPlenty) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	card, _ := p.DevCard(in.DevCardID)
	card.Played = true
	p.PlayedDevThisTurn = true

	p.Resources.Add(in.First, 1)
	s.Bank.Resources.Add(in.First, -1)
	p.Resources.Add(in.Second, 1)
	s.Bank.Resources.Add(in.Second, -1)

	return []event.Payload{event.YearOfPlentyPlayed{PlayerID: in.PlayerID(), CardID: in.DevCardID, First: in.First, Second: in.Second}}
}

func reducePlayMonopoly(s *model.GameState, in intent.PlayMonopoly) []event.Payload {
	p, _ := s.Player(in.PlayerID())
	card, _ := p.DevCard(in.DevCardID)
	card.Played = true
	p.PlayedDevThisTurn = true

	victims := make(map[string]int)
	for _, other := range s.Players {
		if other.ID == p.ID {
			continue
		}
		n := other.Resources[in.Resource]
		if n == 0 {
			continue
		}
		other.Resources.Add(in.Resource, -n)
		p.Resources.Add(in.Resource, n)
		victims[other.ID] = n
	}

	return []event.Payload{event.MonopolyPlayed{PlayerID: in.PlayerID(), CardID: in.DevCardID, Resource: in.Resource, Victims: victims}}
}
