// Package board builds and exposes the static hex/node/edge geometry of a
// game board: identity, adjacency, and harbor placement. A Board is
// immutable once constructed and is shared by reference across the game it
// belongs to.
package board

import "github.com/btuckerc/traderoads/internal/catan/resource"

// Mode selects the board size.
type Mode string

const (
	// ModeStandard is the 19-hex, 3-4 player board.
	ModeStandard Mode = "standard"
	// ModeExtended is the 30-hex, 5-6 player board.
	ModeExtended Mode = "extended"
)

// Terrain identifies a hex's resource-producing type.
type Terrain string

const (
	TerrainHills     Terrain = "hills"
	TerrainForest    Terrain = "forest"
	TerrainMountains Terrain = "mountains"
	TerrainFields    Terrain = "fields"
	TerrainPasture   Terrain = "pasture"
	TerrainDesert    Terrain = "desert"
)

// Resource returns the resource produced by the terrain, or false for desert.
func (t Terrain) Resource() (resource.Type, bool) {
	switch t {
	case TerrainHills:
		return resource.Brick, true
	case TerrainForest:
		return resource.Lumber, true
	case TerrainMountains:
		return resource.Ore, true
	case TerrainFields:
		return resource.Grain, true
	case TerrainPasture:
		return resource.Wool, true
	default:
		return "", false
	}
}

// HarborType identifies a trading-port ratio.
type HarborType string

const (
	// HarborGeneric grants a 3:1 ratio for any resource.
	HarborGeneric HarborType = "generic"
	// HarborSpecific grants a 2:1 ratio for exactly one resource.
	HarborSpecific HarborType = "specific"
)

// HexID, NodeID, and EdgeID are opaque, stable identifiers assigned at
// construction time, in generation order.
type HexID string
type NodeID string
type EdgeID string

// Axial is a cube/axial hex coordinate pair (q, r); s is implied as -q-r.
type Axial struct {
	Q, R int
}

// Hex describes one terrain tile.
type Hex struct {
	ID      HexID
	Terrain Terrain
	Number  *int // nil iff Terrain == TerrainDesert
	Coord   Axial
}

// Node describes a settlement/city location: the point where three (or two,
// on the coast) hexes meet.
type Node struct {
	ID      NodeID
	HexIDs  []HexID
	EdgeIDs []EdgeID
	NodeIDs []NodeID // directly connected nodes (one edge away)
}

// Edge describes a road location between two nodes.
type Edge struct {
	ID      EdgeID
	Nodes   [2]NodeID
	HexIDs  []HexID
}

// Harbor describes a trading port and the nodes with access to it.
type Harbor struct {
	ID       string
	Type     HarborType
	Resource resource.Type // zero value unless Type == HarborSpecific
	NodeIDs  [2]NodeID
}

// Board is the immutable static geometry for one game.
type Board struct {
	Mode    Mode
	Hexes   map[HexID]Hex
	Nodes   map[NodeID]Node
	Edges   map[EdgeID]Edge
	Harbors []Harbor

	order     []HexID // generation order, for deterministic iteration
	byCoord   map[Axial]HexID
}

// Hex returns a hex by id.
func (b *Board) Hex(id HexID) (Hex, bool) {
	h, ok := b.Hexes[id]
	return h, ok
}

// Node returns a node by id.
func (b *Board) Node(id NodeID) (Node, bool) {
	n, ok := b.Nodes[id]
	return n, ok
}

// Edge returns an edge by id.
func (b *Board) Edge(id EdgeID) (Edge, bool) {
	e, ok := b.Edges[id]
	return e, ok
}

// HexByCoordinate looks up a hex by its axial coordinate.
func (b *Board) HexByCoordinate(a Axial) (Hex, bool) {
	id, ok := b.byCoord[a]
	if !ok {
		return Hex{}, false
	}
	return b.Hexes[id], true
}

// HexIDs returns every hex id in deterministic generation order.
func (b *Board) HexIDs() []HexID {
	out := make([]HexID, len(b.order))
	copy(out, b.order)
	return out
}

// NeighborsOfHex returns the hex ids sharing an edge with hex id.
func (b *Board) NeighborsOfHex(id HexID) []HexID {
	hex, ok := b.Hexes[id]
	if !ok {
		return nil
	}
	var out []HexID
	for _, d := range axialDirections {
		n := Axial{Q: hex.Coord.Q + d.Q, R: hex.Coord.R + d.R}
		if nid, ok := b.byCoord[n]; ok {
			out = append(out, nid)
		}
	}
	return out
}

// NodesOfHex returns the (up to 6) node ids at the corners of a hex.
func (b *Board) NodesOfHex(id HexID) []NodeID {
	var out []NodeID
	for nodeID, n := range b.Nodes {
		for _, h := range n.HexIDs {
			if h == id {
				out = append(out, nodeID)
				break
			}
		}
	}
	return out
}

// EdgesOfHex returns the (up to 6) edge ids bordering a hex.
func (b *Board) EdgesOfHex(id HexID) []EdgeID {
	var out []EdgeID
	for edgeID, e := range b.Edges {
		for _, h := range e.HexIDs {
			if h == id {
				out = append(out, edgeID)
				break
			}
		}
	}
	return out
}

// EdgesOfNode returns the edge ids incident to a node.
func (b *Board) EdgesOfNode(id NodeID) []EdgeID {
	n, ok := b.Nodes[id]
	if !ok {
		return nil
	}
	return n.EdgeIDs
}

// NodesAdjacentToNode returns the node ids directly connected by an edge.
func (b *Board) NodesAdjacentToNode(id NodeID) []NodeID {
	n, ok := b.Nodes[id]
	if !ok {
		return nil
	}
	return n.NodeIDs
}

// OtherEndpoint returns the endpoint of edgeID that is not nodeID.
func (b *Board) OtherEndpoint(edgeID EdgeID, nodeID NodeID) (NodeID, bool) {
	e, ok := b.Edges[edgeID]
	if !ok {
		return "", false
	}
	switch nodeID {
	case e.Nodes[0]:
		return e.Nodes[1], true
	case e.Nodes[1]:
		return e.Nodes[0], true
	default:
		return "", false
	}
}
