package apply

import (
	"reflect"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/board"
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/intent"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/reduce"
	"github.com/btuckerc/traderoads/internal/catan/resource"
	"github.com/btuckerc/traderoads/internal/catan/rng"
)

func testState(t *testing.T) *model.GameState {
	t.Helper()
	b, err := board.New(board.ModeStandard, true, nil)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	s, err := model.NewGameState(model.Config{
		GameID: "g1",
		Mode:   model.PlayerMode34,
		Board:  b,
		Players: []model.PlayerInit{
			{ID: "p1", DisplayName: "Alice", Color: "red"},
			{ID: "p2", DisplayName: "Bob", Color: "blue"},
			{ID: "p3", DisplayName: "Cara", Color: "green"},
		},
		DevDeck: model.StandardDevDeck(),
		Seed:    1,
	})
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return s
}

func firstNode(t *testing.T, b *board.Board) board.NodeID {
	t.Helper()
	for id := range b.Nodes {
		return id
	}
	t.Fatal("board has no nodes")
	return ""
}

func edgeAt(t *testing.T, b *board.Board, node board.NodeID) board.EdgeID {
	t.Helper()
	edges := b.EdgesOfNode(node)
	if len(edges) == 0 {
		t.Fatalf("node %s has no edges", node)
	}
	return edges[0]
}

// TestReplayMatchesReducer drives a handful of setup-phase and main-phase
// intents through Reduce and asserts that independently replaying the
// emitted events from the initial state, through Apply, reconstructs an
// identical GameState. This is the property the runtime depends on for
// reconnection and crash recovery.
func TestReplayMatchesReducer(t *testing.T) {
	initial := testState(t)
	stream := rng.New(42)

	node1 := firstNode(t, initial.Board)
	edge1 := edgeAt(t, initial.Board, node1)

	intents := []intent.Intent{
		intent.PlaceSetupSettlement{Base: intent.Base{ActorID: "p1"}, NodeID: node1},
		intent.PlaceSetupRoad{Base: intent.Base{ActorID: "p1"}, EdgeID: edge1},
	}

	cur := initial
	var log []event.Event
	idx := 0
	for _, in := range intents {
		next, payloads := reduce.Reduce(in, cur, stream)
		for _, p := range payloads {
			idx++
			log = append(log, event.New(idx, p))
		}
		cur = next
	}

	replayed := Replay(initial, log)

	if replayed.Turn.ActivePlayerID != cur.Turn.ActivePlayerID {
		t.Fatalf("active player = %s, want %s", replayed.Turn.ActivePlayerID, cur.Turn.ActivePlayerID)
	}
	if replayed.Turn.Setup != cur.Turn.Setup {
		t.Fatalf("setup state = %+v, want %+v", replayed.Turn.Setup, cur.Turn.Setup)
	}

	p1Reduced, _ := cur.Player("p1")
	p1Replayed, _ := replayed.Player("p1")
	if !reflect.DeepEqual(p1Reduced.Settlements, p1Replayed.Settlements) {
		t.Fatalf("settlements = %+v, want %+v", p1Replayed.Settlements, p1Reduced.Settlements)
	}
	if !reflect.DeepEqual(p1Reduced.Roads, p1Replayed.Roads) {
		t.Fatalf("roads = %+v, want %+v", p1Replayed.Roads, p1Reduced.Roads)
	}
	if replayed.EventIndex != idx {
		t.Fatalf("EventIndex = %d, want %d", replayed.EventIndex, idx)
	}
}

func TestApplyRoadBuiltDeductsCostAndGrantsPiece(t *testing.T) {
	s := testState(t)
	p1, _ := s.Player("p1")
	p1.Resources.Add(resource.Brick, 1)
	p1.Resources.Add(resource.Lumber, 1)

	edge := edgeAt(t, s.Board, firstNode(t, s.Board))
	ev := event.New(1, event.RoadBuilt{PlayerID: "p1", EdgeID: edge})

	out := Apply(s, ev)
	p1Out, _ := out.Player("p1")
	if !p1Out.Roads[edge] {
		t.Fatal("road was not recorded")
	}
	if p1Out.Resources.Total() != 0 {
		t.Fatalf("resources after paying = %d, want 0", p1Out.Resources.Total())
	}
	// s itself must be untouched.
	if p1.Roads[edge] {
		t.Fatal("Apply mutated the input state")
	}
}
