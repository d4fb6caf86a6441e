package board

// axialDirections are the six unit steps between axial-coordinate neighbors.
var axialDirections = []Axial{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// beginnerTerrainOrder is the fixed terrain sequence for the standard
// beginner layout, read outer ring clockwise from the top-left hex inward,
// matching the printed setup in the base game's rulebook.
var beginnerTerrainOrder = []Terrain{
	TerrainMountains, TerrainPasture, TerrainForest,
	TerrainFields, TerrainHills, TerrainPasture, TerrainHills,
	TerrainFields, TerrainForest, TerrainDesert, TerrainForest,
	TerrainMountains, TerrainForest, TerrainMountains,
	TerrainFields, TerrainPasture, TerrainHills, TerrainFields, TerrainPasture,
}

// beginnerNumberOrder is the fixed number-token sequence paired with
// beginnerTerrainOrder, skipping the desert hex.
var beginnerNumberOrder = []int{
	10, 2, 9, 12, 6, 4, 10, 9, 11, 11, 3, 8, 8, 3, 4, 5, 5, 6,
}

// randomNumberPool is the full 18-token pool drawn from for randomized
// layouts, in placement order (skipping desert hexes as they are reached).
var randomNumberPool = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// standardTerrainMultiset is the 19-tile terrain multiset (3 hills, 4
// forest, 3 mountains, 4 fields, 4 pasture, 1 desert) used for randomized
// standard-layout generation.
func standardTerrainMultiset() []Terrain {
	return []Terrain{
		TerrainHills, TerrainHills, TerrainHills,
		TerrainForest, TerrainForest, TerrainForest, TerrainForest,
		TerrainMountains, TerrainMountains, TerrainMountains,
		TerrainFields, TerrainFields, TerrainFields, TerrainFields,
		TerrainPasture, TerrainPasture, TerrainPasture, TerrainPasture,
		TerrainDesert,
	}
}

// extendedTerrainMultiset is the 30-tile terrain multiset for the 5-6
// player extension (5 hills, 6 forest, 5 mountains, 6 fields, 6 pasture,
// 2 desert).
func extendedTerrainMultiset() []Terrain {
	out := make([]Terrain, 0, 30)
	for i := 0; i < 5; i++ {
		out = append(out, TerrainHills, TerrainForest, TerrainMountains, TerrainFields, TerrainPasture)
	}
	out = append(out, TerrainForest, TerrainFields, TerrainPasture)
	out = append(out, TerrainDesert, TerrainDesert)
	return out
}

// hexCoordinates returns the axial coordinates for a mode's hex set, in a
// deterministic row order (top row first, left to right within a row).
func hexCoordinates(mode Mode) []Axial {
	switch mode {
	case ModeExtended:
		return rowCoordinates([]int{3, 4, 5, 6, 5, 4, 3})
	default:
		return rowCoordinates([]int{3, 4, 5, 4, 3})
	}
}

// rowCoordinates lays rows out on axial coordinates, centering each row
// under the widest row.
func rowCoordinates(rowLengths []int) []Axial {
	half := len(rowLengths) / 2
	var out []Axial
	for i, length := range rowLengths {
		r := i - half
		// A hex's horizontal center is q + r/2, so centering a row of
		// length hexes on a shared axis needs qStart = -floor((r+length)/2);
		// r+length is never negative for these layouts.
		qStart := -((r + length) / 2)
		for c := 0; c < length; c++ {
			out = append(out, Axial{Q: qStart + c, R: r})
		}
	}
	return out
}
