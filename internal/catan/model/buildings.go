package model

import "github.com/btuckerc/traderoads/internal/catan/board"

// BuildingKind distinguishes the two settlement-node occupancy states.
type BuildingKind string

const (
	BuildingSettlement BuildingKind = "settlement"
	BuildingCity       BuildingKind = "city"
)

// Building records a single node occupant, denormalized from player state
// for O(1) lookup.
type Building struct {
	Kind     BuildingKind
	PlayerID string
}

// Buildings is a read-through index over the players' settlements, cities,
// and roads, rebuilt from player state whenever it changes.
type Buildings struct {
	Nodes map[board.NodeID]Building
	Roads map[board.EdgeID]string // edge id -> owning player id
}

// NewBuildings returns an empty index.
func NewBuildings() Buildings {
	return Buildings{
		Nodes: make(map[board.NodeID]Building),
		Roads: make(map[board.EdgeID]string),
	}
}

// Clone returns a deep copy.
func (b Buildings) Clone() Buildings {
	out := Buildings{
		Nodes: make(map[board.NodeID]Building, len(b.Nodes)),
		Roads: make(map[board.EdgeID]string, len(b.Roads)),
	}
	for k, v := range b.Nodes {
		out.Nodes[k] = v
	}
	for k, v := range b.Roads {
		out.Roads[k] = v
	}
	return out
}

// Rebuild repopulates the index from the authoritative per-player sets. The
// event applier and reducer call this after any change to player holdings.
func (b *Buildings) Rebuild(players []*Player) {
	b.Nodes = make(map[board.NodeID]Building)
	b.Roads = make(map[board.EdgeID]string)
	for _, p := range players {
		for node := range p.Settlements {
			b.Nodes[node] = Building{Kind: BuildingSettlement, PlayerID: p.ID}
		}
		for node := range p.Cities {
			b.Nodes[node] = Building{Kind: BuildingCity, PlayerID: p.ID}
		}
		for edge := range p.Roads {
			b.Roads[edge] = p.ID
		}
	}
}
