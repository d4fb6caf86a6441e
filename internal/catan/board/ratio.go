package board

import "github.com/btuckerc/traderoads/internal/catan/resource"

// HarborsAtNode returns the harbors, if any, granting access from nodeID.
func (b *Board) HarborsAtNode(nodeID NodeID) []Harbor {
	var out []Harbor
	for _, h := range b.Harbors {
		if h.NodeIDs[0] == nodeID || h.NodeIDs[1] == nodeID {
			out = append(out, h)
		}
	}
	return out
}

// DefaultMaritimeRatio is the bank-trade ratio with no qualifying harbor.
const DefaultMaritimeRatio = 4

// BestRatio returns the best (lowest) maritime-trade ratio a player
// qualifies for when trading away want, given the set of nodes they
// occupy with a settlement or city. 4:1 is the default; a generic harbor
// improves it to 3:1; a specific harbor matching want improves it to 2:1.
func (b *Board) BestRatio(occupiedNodes []NodeID, want resource.Type) int {
	best := DefaultMaritimeRatio
	for _, nodeID := range occupiedNodes {
		for _, h := range b.HarborsAtNode(nodeID) {
			switch h.Type {
			case HarborGeneric:
				if 3 < best {
					best = 3
				}
			case HarborSpecific:
				if h.Resource == want && 2 < best {
					best = 2
				}
			}
		}
	}
	return best
}
