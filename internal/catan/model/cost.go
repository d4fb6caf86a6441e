package model

import "github.com/btuckerc/traderoads/internal/catan/resource"

// Costs, shared by the validator (affordability checks) and the reducer
// (deduction), keyed by what the purchase produces.
var (
	RoadCost = resource.Bundle{
		resource.Brick:  1,
		resource.Lumber: 1,
	}
	SettlementCost = resource.Bundle{
		resource.Brick:  1,
		resource.Lumber: 1,
		resource.Grain:  1,
		resource.Wool:   1,
	}
	CityCost = resource.Bundle{
		resource.Grain: 2,
		resource.Ore:   3,
	}
	DevCardCost = resource.Bundle{
		resource.Ore:   1,
		resource.Grain: 1,
		resource.Wool:  1,
	}
)
