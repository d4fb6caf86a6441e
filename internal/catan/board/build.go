package board

import "fmt"

// Shuffler permutes a sequence of length n in place via repeated calls to
// swap, matching the signature of math/rand.Shuffle. Callers pass in a
// shuffle bound to their own seeded RNG stream so board generation stays
// deterministic and reproducible from a seed (see internal/catan/rng).
type Shuffler func(n int, swap func(i, j int))

// New constructs a board for the given mode. When beginnerLayout is true,
// terrain and number tokens follow the fixed rulebook order; otherwise they
// are drawn randomly using shuffle.
func New(mode Mode, beginnerLayout bool, shuffle Shuffler) (*Board, error) {
	coords := hexCoordinates(mode)

	terrains, numbers, err := layoutTiles(mode, beginnerLayout, len(coords), shuffle)
	if err != nil {
		return nil, err
	}

	b := &Board{
		Mode:    mode,
		Hexes:   make(map[HexID]Hex, len(coords)),
		Nodes:   make(map[NodeID]Node),
		Edges:   make(map[EdgeID]Edge),
		byCoord: make(map[Axial]HexID, len(coords)),
	}

	for i, coord := range coords {
		id := HexID(fmt.Sprintf("h%d", i))
		hex := Hex{ID: id, Terrain: terrains[i], Coord: coord}
		if terrains[i] != TerrainDesert {
			n := numbers[i]
			hex.Number = &n
		}
		b.Hexes[id] = hex
		b.byCoord[coord] = id
		b.order = append(b.order, id)
	}

	b.buildNodesAndEdges()
	b.Harbors = buildHarbors(b, mode)

	return b, nil
}

// layoutTiles assigns terrain and number tokens to hexCount positions.
// numbers[i] is meaningless where terrains[i] == TerrainDesert.
func layoutTiles(mode Mode, beginnerLayout bool, hexCount int, shuffle Shuffler) ([]Terrain, []int, error) {
	if beginnerLayout {
		if mode != ModeStandard {
			return nil, nil, fmt.Errorf("beginner layout is only defined for the standard board")
		}
		terrains := append([]Terrain(nil), beginnerTerrainOrder...)
		numbers := make([]int, hexCount)
		ni := 0
		for i, t := range terrains {
			if t == TerrainDesert {
				continue
			}
			numbers[i] = beginnerNumberOrder[ni]
			ni++
		}
		return terrains, numbers, nil
	}

	if shuffle == nil {
		return nil, nil, fmt.Errorf("a shuffle function is required for randomized layouts")
	}

	var terrains []Terrain
	switch mode {
	case ModeExtended:
		terrains = extendedTerrainMultiset()
	default:
		terrains = standardTerrainMultiset()
	}
	if len(terrains) != hexCount {
		return nil, nil, fmt.Errorf("terrain multiset size %d does not match hex count %d", len(terrains), hexCount)
	}
	shuffle(len(terrains), func(i, j int) { terrains[i], terrains[j] = terrains[j], terrains[i] })

	pool := append([]int(nil), randomNumberPool...)
	if mode == ModeExtended {
		pool = append(pool, randomNumberPool...)
		pool = pool[:hexCount-countDeserts(terrains)]
	}
	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	numbers := make([]int, hexCount)
	pi := 0
	for i, t := range terrains {
		if t == TerrainDesert {
			continue
		}
		if pi >= len(pool) {
			return nil, nil, fmt.Errorf("number token pool exhausted before terrain assignment completed")
		}
		numbers[i] = pool[pi]
		pi++
	}
	return terrains, numbers, nil
}

func countDeserts(terrains []Terrain) int {
	n := 0
	for _, t := range terrains {
		if t == TerrainDesert {
			n++
		}
	}
	return n
}

// buildNodesAndEdges derives canonical nodes and edges from hex corner
// geometry: a vertex shared by up to three hexes collapses to one Node, and
// an edge shared by up to two hexes collapses to one Edge.
func (b *Board) buildNodesAndEdges() {
	nodeKeyToID := make(map[string]NodeID)
	nodeSeq := 0
	edgeKeyToID := make(map[string]EdgeID)
	edgeSeq := 0

	cornerNode := func(hexID HexID, coord Axial, i int) NodeID {
		x, y := cornerPoint(coord, i)
		key := pointKey(x, y)
		id, ok := nodeKeyToID[key]
		if !ok {
			id = NodeID(fmt.Sprintf("n%d", nodeSeq))
			nodeSeq++
			nodeKeyToID[key] = id
			b.Nodes[id] = Node{ID: id}
		}
		n := b.Nodes[id]
		if !containsHex(n.HexIDs, hexID) {
			n.HexIDs = append(n.HexIDs, hexID)
		}
		b.Nodes[id] = n
		return id
	}

	for _, hexID := range b.order {
		hex := b.Hexes[hexID]
		corners := make([]NodeID, 6)
		for i := 0; i < 6; i++ {
			corners[i] = cornerNode(hexID, hex.Coord, i)
		}
		for i := 0; i < 6; i++ {
			a, c := corners[i], corners[(i+1)%6]
			key := edgeKey(a, c)
			id, ok := edgeKeyToID[key]
			if !ok {
				id = EdgeID(fmt.Sprintf("e%d", edgeSeq))
				edgeSeq++
				edgeKeyToID[key] = id
				ordered := [2]NodeID{a, c}
				if a > c {
					ordered = [2]NodeID{c, a}
				}
				b.Edges[id] = Edge{ID: id, Nodes: ordered}
			}
			e := b.Edges[id]
			if !containsHex(e.HexIDs, hexID) {
				e.HexIDs = append(e.HexIDs, hexID)
			}
			b.Edges[id] = e
		}
	}

	// Second pass: populate each node's EdgeIDs and directly-adjacent NodeIDs.
	for edgeID, e := range b.Edges {
		for _, nid := range e.Nodes {
			n := b.Nodes[nid]
			n.EdgeIDs = append(n.EdgeIDs, edgeID)
			other := e.Nodes[0]
			if other == nid {
				other = e.Nodes[1]
			}
			if !containsNode(n.NodeIDs, other) {
				n.NodeIDs = append(n.NodeIDs, other)
			}
			b.Nodes[nid] = n
		}
	}
}

func containsHex(s []HexID, v HexID) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsNode(s []NodeID, v NodeID) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
