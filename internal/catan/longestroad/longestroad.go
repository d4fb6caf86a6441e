// Package longestroad computes a player's longest simple road path, with
// opponent-building blockers removed from adjacency.
package longestroad

import (
	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/model"
)

// Length returns the length (edge count) of the longest simple path in the
// graph formed by a player's roads, where two roads are adjacent iff they
// share an endpoint not occupied by an opponent's settlement or city.
func Length(b *board.Board, buildings model.Buildings, playerID string, roads map[board.EdgeID]bool) int {
	if len(roads) == 0 {
		return 0
	}

	nodeEdges := make(map[board.NodeID][]board.EdgeID)
	for edgeID := range roads {
		e, ok := b.Edge(edgeID)
		if !ok {
			continue
		}
		for _, n := range e.Nodes {
			if blockedFor(buildings, n, playerID) {
				continue
			}
			nodeEdges[n] = append(nodeEdges[n], edgeID)
		}
	}

	best := 0
	for start := range roads {
		visited := make(map[board.EdgeID]bool, len(roads))
		if l := dfs(b, nodeEdges, start, visited); l > best {
			best = l
		}
	}
	return best
}

func blockedFor(buildings model.Buildings, node board.NodeID, playerID string) bool {
	building, ok := buildings.Nodes[node]
	return ok && building.PlayerID != playerID
}

// dfs explores every simple path starting at edgeID, backtracking so every
// starting edge gets a fair chance at the longest path through it.
func dfs(b *board.Board, nodeEdges map[board.NodeID][]board.EdgeID, edgeID board.EdgeID, visited map[board.EdgeID]bool) int {
	visited[edgeID] = true
	defer delete(visited, edgeID)

	e, _ := b.Edge(edgeID)
	best := 0
	for _, n := range e.Nodes {
		for _, next := range nodeEdges[n] {
			if visited[next] {
				continue
			}
			if l := dfs(b, nodeEdges, next, visited); l > best {
				best = l
			}
		}
	}
	return 1 + best
}

// RecomputeAll returns the longest-road length for every player, called
// after any road or settlement placement since a new settlement can split
// an opponent's chain.
func RecomputeAll(b *board.Board, buildings model.Buildings, players []*model.Player) map[string]int {
	out := make(map[string]int, len(players))
	for _, p := range players {
		out[p.ID] = Length(b, buildings, p.ID, p.Roads)
	}
	return out
}
