package model

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// Piece supply caps per player.
const (
	MaxSettlements = 5
	MaxCities      = 4
	MaxRoads       = 15
)

// Player is one participant's mutable state within a game.
type Player struct {
	ID          string
	DisplayName string
	Color       string
	Order       int

	Resources resource.Bundle
	DevCards  []DevCard

	Settlements map[board.NodeID]bool
	Cities      map[board.NodeID]bool
	Roads       map[board.EdgeID]bool

	Knights           int
	BoughtDevThisTurn bool
	PlayedDevThisTurn bool
	LongestRoadLength int
}

// NewPlayer returns a player with empty holdings at the given turn-order index.
func NewPlayer(id, displayName, color string, order int) *Player {
	return &Player{
		ID:          id,
		DisplayName: displayName,
		Color:       color,
		Order:       order,
		Resources:   resource.NewBundle(),
		Settlements: make(map[board.NodeID]bool),
		Cities:      make(map[board.NodeID]bool),
		Roads:       make(map[board.EdgeID]bool),
	}
}

// Clone returns a deep copy, used by the reducer/applier to avoid mutating
// a state any caller may still hold a reference to.
func (p *Player) Clone() *Player {
	c := &Player{
		ID:                p.ID,
		DisplayName:       p.DisplayName,
		Color:             p.Color,
		Order:             p.Order,
		Resources:         p.Resources.Clone(),
		DevCards:          append([]DevCard(nil), p.DevCards...),
		Settlements:       make(map[board.NodeID]bool, len(p.Settlements)),
		Cities:            make(map[board.NodeID]bool, len(p.Cities)),
		Roads:             make(map[board.EdgeID]bool, len(p.Roads)),
		Knights:           p.Knights,
		BoughtDevThisTurn: p.BoughtDevThisTurn,
		PlayedDevThisTurn: p.PlayedDevThisTurn,
		LongestRoadLength: p.LongestRoadLength,
	}
	for k := range p.Settlements {
		c.Settlements[k] = true
	}
	for k := range p.Cities {
		c.Cities[k] = true
	}
	for k := range p.Roads {
		c.Roads[k] = true
	}
	return c
}

func (p *Player) SettlementCount() int { return len(p.Settlements) }
func (p *Player) CityCount() int       { return len(p.Cities) }
func (p *Player) RoadCount() int       { return len(p.Roads) }

func (p *Player) RemainingSettlements() int { return MaxSettlements - p.SettlementCount() }
func (p *Player) RemainingCities() int      { return MaxCities - p.CityCount() }
func (p *Player) RemainingRoads() int       { return MaxRoads - p.RoadCount() }

// OccupiesNode reports whether the player has a settlement or city at id.
func (p *Player) OccupiesNode(id board.NodeID) bool {
	return p.Settlements[id] || p.Cities[id]
}

// OccupiedNodes returns every node the player holds a settlement or city
// on, used for harbor/maritime-ratio lookups.
func (p *Player) OccupiedNodes() []board.NodeID {
	out := make([]board.NodeID, 0, len(p.Settlements)+len(p.Cities))
	for id := range p.Settlements {
		out = append(out, id)
	}
	for id := range p.Cities {
		out = append(out, id)
	}
	return out
}

// BuildingVictoryPoints returns the points from settlements and cities only.
func (p *Player) BuildingVictoryPoints() int {
	return p.SettlementCount() + 2*p.CityCount()
}

// HiddenVictoryPointCards returns the count of victory-point development
// cards in hand, which count toward victory regardless of played state but
// are not revealed to opponents until the winning check reveals them.
func (p *Player) HiddenVictoryPointCards() int {
	n := 0
	for _, c := range p.DevCards {
		if c.Type == DevCardVictoryPoint {
			n++
		}
	}
	return n
}

// DevCard returns a pointer to the card with the given id, if held.
func (p *Player) DevCard(id string) (*DevCard, bool) {
	for i := range p.DevCards {
		if p.DevCards[i].ID == id {
			return &p.DevCards[i], true
		}
	}
	return nil, false
}

// PlayableDevCards returns cards of kind t that are unplayed and not bought
// this turn, eligible to be played under the one-card-per-turn rule.
func (p *Player) PlayableDevCards(t DevCardType) []DevCard {
	var out []DevCard
	for _, c := range p.DevCards {
		if c.Type == t && !c.Played && !c.BoughtThisTurn {
			out = append(out, c)
		}
	}
	return out
}
