package event

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// DiceRolled records a roll-dice intent's outcome.
type DiceRolled struct {
	PlayerID string
	D1, D2   int
	Total    int
}

func (DiceRolled) Kind() Kind { return KindDiceRolled }

// ResourceGrant is one itemized source within a ResourcesProduced event:
// one hex's production credited to one player.
type ResourceGrant struct {
	HexID    board.HexID
	Resource resource.Type
	Count    int // 1 per settlement, 2 per city
}

// ResourcesProduced carries the full itemization of a non-seven roll's
// production, grouped per recipient.
type ResourcesProduced struct {
	DiceTotal int
	Grants    map[string][]ResourceGrant
}

func (ResourcesProduced) Kind() Kind { return KindResourcesProduced }

// NoResourcesReason distinguishes why a roll produced nothing.
type NoResourcesReason string

const (
	ReasonRolledSeven       NoResourcesReason = "rolled_seven"
	ReasonNoMatchingBuildings NoResourcesReason = "no_matching_buildings"
)

// NoResourcesProduced records a roll that yielded no production.
type NoResourcesProduced struct {
	DiceTotal int
	Reason    NoResourcesReason
}

func (NoResourcesProduced) Kind() Kind { return KindNoResourcesProduced }

// DiscardRequired names every player who must discard and how many cards.
type DiscardRequired struct {
	Owed map[string]int
}

func (DiscardRequired) Kind() Kind { return KindDiscardRequired }

// ResourcesDiscarded records one player's payment toward their owed discard.
type ResourcesDiscarded struct {
	PlayerID  string
	Discarded resource.Bundle
}

func (ResourcesDiscarded) Kind() Kind { return KindResourcesDiscarded }
