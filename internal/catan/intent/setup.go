package intent

import "github.com/btuckerc/traderoads/internal/catan/board"

// PlaceSetupSettlement places a settlement during the setup phase.
type PlaceSetupSettlement struct {
	Base
	NodeID board.NodeID
}

func (PlaceSetupSettlement) Kind() Kind { return KindPlaceSetupSettlement }

// PlaceSetupRoad places the road paired with the most recent setup
// settlement.
type PlaceSetupRoad struct {
	Base
	EdgeID board.EdgeID
}

func (PlaceSetupRoad) Kind() Kind { return KindPlaceSetupRoad }
