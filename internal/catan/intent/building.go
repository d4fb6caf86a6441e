package intent

import "github.com/btuckerc/traderoads/internal/catan/board"

// BuildRoad places a road during the main phase, paid from the player's hand.
type BuildRoad struct {
	Base
	EdgeID board.EdgeID
}

func (BuildRoad) Kind() Kind { return KindBuildRoad }

// BuildSettlement places a settlement during the main phase.
type BuildSettlement struct {
	Base
	NodeID board.NodeID
}

func (BuildSettlement) Kind() Kind { return KindBuildSettlement }

// BuildCity upgrades an existing settlement to a city.
type BuildCity struct {
	Base
	NodeID board.NodeID
}

func (BuildCity) Kind() Kind { return KindBuildCity }

// BuyDevelopmentCard draws the top card of the bank's dev-card deck.
type BuyDevelopmentCard struct {
	Base
}

func (BuyDevelopmentCard) Kind() Kind { return KindBuyDevelopmentCard }
