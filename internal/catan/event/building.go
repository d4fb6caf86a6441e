package event

import "github.com/btuckerc/traderoads/internal/catan/board"

// RoadBuilt records a main-phase road purchase.
type RoadBuilt struct {
	PlayerID string
	EdgeID   board.EdgeID
}

func (RoadBuilt) Kind() Kind { return KindRoadBuilt }

// SettlementBuilt records a main-phase settlement purchase.
type SettlementBuilt struct {
	PlayerID string
	NodeID   board.NodeID
}

func (SettlementBuilt) Kind() Kind { return KindSettlementBuilt }

// CityBuilt records a city upgrade.
type CityBuilt struct {
	PlayerID string
	NodeID   board.NodeID
}

func (CityBuilt) Kind() Kind { return KindCityBuilt }

// LongestRoadAwarded records a change of longest-road holder.
// PreviousHolderID is nil if the award was previously unclaimed.
type LongestRoadAwarded struct {
	NewHolderID      string
	PreviousHolderID *string
	Length           int
}

func (LongestRoadAwarded) Kind() Kind { return KindLongestRoadAwarded }

// LargestArmyAwarded records a change of largest-army holder.
type LargestArmyAwarded struct {
	NewHolderID      string
	PreviousHolderID *string
	Knights          int
}

func (LargestArmyAwarded) Kind() Kind { return KindLargestArmyAwarded }
