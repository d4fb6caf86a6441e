package intent

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// PlayKnight plays a knight card: moves the robber and optionally steals,
// using the same semantics as MoveRobber/StealResource.
type PlayKnight struct {
	Base
	DevCardID string
	HexID     board.HexID
	VictimID  *string // nil if no eligible victim at the chosen hex
}

func (PlayKnight) Kind() Kind { return KindPlayKnight }

// PlayRoadBuilding grants up to two free roads, bounded by road supply.
type PlayRoadBuilding struct {
	Base
	DevCardID string
}

func (PlayRoadBuilding) Kind() Kind { return KindPlayRoadBuilding }

// PlaceRoadBuildingRoad places one of the free roads granted by
// PlayRoadBuilding.
type PlaceRoadBuildingRoad struct {
	Base
	EdgeID board.EdgeID
}

func (PlaceRoadBuildingRoad) Kind() Kind { return KindPlaceRoadBuildingRoad }

// PlayYearOfPlenty transfers two chosen resources from the bank.
type PlayYearOfPlenty struct {
	Base
	DevCardID string
	First     resource.Type
	Second    resource.Type
}

func (PlayYearOfPlenty) Kind() Kind { return KindPlayYearOfPlenty }

// PlayMonopoly transfers every other player's holding of one resource to
// the playing player.
type PlayMonopoly struct {
	Base
	DevCardID string
	Resource  resource.Type
}

func (PlayMonopoly) Kind() Kind { return KindPlayMonopoly }
