package board

import (
	"fmt"

	"github.com/btuckerc/traderoads/internal/catan/resource"
)

// buildHarbors walks the board's coastal perimeter and assigns harbors at
// evenly spaced coastal edges, rather than the "first two nodes" placeholder
// the original source used — every harbor's node pair is a genuine coastal
// edge's endpoints.
func buildHarbors(b *Board, mode Mode) []Harbor {
	perimeter := coastalEdgeCycle(b)
	if len(perimeter) == 0 {
		return nil
	}

	types := harborSequence(mode)
	if len(types) == 0 {
		return nil
	}

	spacing := len(perimeter) / len(types)
	if spacing == 0 {
		spacing = 1
	}

	harbors := make([]Harbor, 0, len(types))
	for i, kind := range types {
		idx := (i * spacing) % len(perimeter)
		edge := b.Edges[perimeter[idx]]
		h := Harbor{
			ID:      fmt.Sprintf("p%d", i),
			NodeIDs: edge.Nodes,
		}
		if kind == "" {
			h.Type = HarborGeneric
		} else {
			h.Type = HarborSpecific
			h.Resource = kind
		}
		harbors = append(harbors, h)
	}
	return harbors
}

// harborSequence returns, in placement order, the resource for each
// specific harbor and an empty string for each generic harbor.
func harborSequence(mode Mode) []resource.Type {
	resources := resource.All()
	switch mode {
	case ModeExtended:
		return []resource.Type{
			"", resources[0], "", resources[1], "", resources[2],
			"", resources[3], "", resources[4], "",
		}
	default:
		return []resource.Type{
			"", resources[0], "", resources[1], "", resources[2], resources[3], "", resources[4],
		}
	}
}

// coastalEdgeCycle returns the board's coastal (single-hex) edges ordered
// by walking the perimeter they form.
func coastalEdgeCycle(b *Board) []EdgeID {
	coastal := make(map[EdgeID]bool)
	for id, e := range b.Edges {
		if len(e.HexIDs) == 1 {
			coastal[id] = true
		}
	}
	if len(coastal) == 0 {
		return nil
	}

	byNode := make(map[NodeID][]EdgeID)
	for id := range coastal {
		e := b.Edges[id]
		byNode[e.Nodes[0]] = append(byNode[e.Nodes[0]], id)
		byNode[e.Nodes[1]] = append(byNode[e.Nodes[1]], id)
	}

	var start EdgeID
	for id := range coastal {
		start = id
		break
	}

	var ordered []EdgeID
	visited := make(map[EdgeID]bool)
	currentEdge := start
	currentNode := b.Edges[start].Nodes[0]
	for {
		ordered = append(ordered, currentEdge)
		visited[currentEdge] = true
		e := b.Edges[currentEdge]
		next := e.Nodes[0]
		if next == currentNode {
			next = e.Nodes[1]
		}
		currentNode = next

		var advanced bool
		for _, candidate := range byNode[currentNode] {
			if !visited[candidate] {
				currentEdge = candidate
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}
	return ordered
}
