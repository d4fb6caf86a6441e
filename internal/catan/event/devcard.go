package event

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// DevelopmentCardBought records a dev-card purchase. The card type is
// faithfully included here; the gateway filters it to the buyer only.
type DevelopmentCardBought struct {
	PlayerID string
	CardID   string
	CardType model.DevCardType
}

func (DevelopmentCardBought) Kind() Kind { return KindDevelopmentCardBought }

// KnightPlayed records a knight card play, prior to (or alongside) the
// RobberMoved/ResourceStolen events the same intent also emits.
type KnightPlayed struct {
	PlayerID string
	CardID   string
	Knights  int
}

func (KnightPlayed) Kind() Kind { return KindKnightPlayed }

// RoadBuildingPlayed records a road-building card play and the number of
// free roads granted (bounded by the player's remaining road supply).
type RoadBuildingPlayed struct {
	PlayerID           string
	CardID             string
	FreeRoadsRemaining int
}

func (RoadBuildingPlayed) Kind() Kind { return KindRoadBuildingPlayed }

// RoadBuildingRoadPlaced records one of the free roads granted by a
// road-building card.
type RoadBuildingRoadPlaced struct {
	PlayerID           string
	EdgeID             board.EdgeID
	FreeRoadsRemaining int
}

func (RoadBuildingRoadPlaced) Kind() Kind { return KindRoadBuildingRoadPlaced }

// YearOfPlentyPlayed records the two resources drawn from the bank.
type YearOfPlentyPlayed struct {
	PlayerID string
	CardID   string
	First    resource.Type
	Second   resource.Type
}

func (YearOfPlentyPlayed) Kind() Kind { return KindYearOfPlentyPlayed }

// MonopolyPlayed records the chosen resource and the itemized amount taken
// from each victim.
type MonopolyPlayed struct {
	PlayerID string
	CardID   string
	Resource resource.Type
	Victims  map[string]int
}

func (MonopolyPlayed) Kind() Kind { return KindMonopolyPlayed }
