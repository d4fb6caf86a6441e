package reduce

import (
	"github.com/btuckerc/traderoads/internal/catan/award"
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/longestroad"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

// recomputeLongestRoad recomputes every player's cached longest-road length
// and re-evaluates the award, emitting LongestRoadAwarded iff the holder or
// length changed. Called after any road or settlement placement, since a
// new settlement can split an opponent's chain.
func recomputeLongestRoad(s *model.GameState) []event.Payload {
	lengths := longestroad.RecomputeAll(s.Board, s.Buildings, s.Players)
	for _, p := range s.Players {
		p.LongestRoadLength = lengths[p.ID]
	}

	prevHolder := s.Awards.LongestRoad.HolderID
	prevLength := s.Awards.LongestRoad.Length
	newHolder, newLength, changed := award.Determine(lengths, model.LongestRoadMinLength, prevHolder, prevLength)
	if !changed {
		return nil
	}
	s.Awards.LongestRoad = model.LongestRoadAward{HolderID: newHolder, Length: newLength}
	return []event.Payload{event.LongestRoadAwarded{
		NewHolderID:      *newHolder,
		PreviousHolderID: prevHolder,
		Length:           newLength,
	}}
}

// recomputeLargestArmy re-evaluates the largest-army award from each
// player's current knight count, emitting LargestArmyAwarded iff changed.
func recomputeLargestArmy(s *model.GameState) []event.Payload {
	knights := make(map[string]int, len(s.Players))
	for _, p := range s.Players {
		knights[p.ID] = p.Knights
	}

	prevHolder := s.Awards.LargestArmy.HolderID
	prevKnights := s.Awards.LargestArmy.Knights
	newHolder, newKnights, changed := award.Determine(knights, model.LargestArmyMinKnights, prevHolder, prevKnights)
	if !changed {
		return nil
	}
	s.Awards.LargestArmy = model.LargestArmyAward{HolderID: newHolder, Knights: newKnights}
	return []event.Payload{event.LargestArmyAwarded{
		NewHolderID:      *newHolder,
		PreviousHolderID: prevHolder,
		Knights:          newKnights,
	}}
}

// victoryPoints returns a player's total points and their per-source
// breakdown for the PlayerWon event.
func victoryPoints(s *model.GameState, p *model.Player) (int, map[string]int) {
	breakdown := map[string]int{
		"settlements": p.SettlementCount(),
		"cities":      2 * p.CityCount(),
	}
	if s.Awards.LongestRoad.HolderID != nil && *s.Awards.LongestRoad.HolderID == p.ID {
		breakdown["longest_road"] = 2
	}
	if s.Awards.LargestArmy.HolderID != nil && *s.Awards.LargestArmy.HolderID == p.ID {
		breakdown["largest_army"] = 2
	}
	if n := p.HiddenVictoryPointCards(); n > 0 {
		breakdown["development_cards"] = n
	}
	total := 0
	for _, v := range breakdown {
		total += v
	}
	return total, breakdown
}

// checkVictory runs only on the active player's turn, after any state
// change that could raise victory points. When total points reach 10 it
// reveals any unplayed victory-point cards, declares the winner, and ends
// the game.
func checkVictory(s *model.GameState) []event.Payload {
	p, ok := s.ActivePlayer()
	if !ok {
		return nil
	}
	total, breakdown := victoryPoints(s, p)
	if total < 10 {
		return nil
	}

	var events []event.Payload
	for i := range p.DevCards {
		c := &p.DevCards[i]
		if c.Type == model.DevCardVictoryPoint && !c.Played {
			events = append(events, event.VictoryPointRevealed{PlayerID: p.ID, CardID: c.ID})
		}
	}
	events = append(events, event.PlayerWon{PlayerID: p.ID, Breakdown: breakdown})
	s.Turn.Phase = model.PhaseEnded
	winner := p.ID
	s.WinnerID = &winner
	return events
}
