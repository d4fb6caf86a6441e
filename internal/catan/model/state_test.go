package model

import (
	"math/rand"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/board"
)

func testBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(board.ModeStandard, true, nil)
	if err != nil {
		t.Fatalf("board.New: %v", err)
	}
	return b
}

func testConfig(t *testing.T) Config {
	return Config{
		GameID: "g1",
		Mode:   PlayerMode34,
		Board:  testBoard(t),
		Players: []PlayerInit{
			{ID: "p1", DisplayName: "Alice", Color: "red"},
			{ID: "p2", DisplayName: "Bob", Color: "blue"},
			{ID: "p3", DisplayName: "Cara", Color: "green"},
		},
		DevDeck: StandardDevDeck(),
		Seed:    1,
	}
}

func TestNewGameStateInitialPhase(t *testing.T) {
	s, err := NewGameState(testConfig(t))
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	if s.Turn.Phase != PhaseSetup {
		t.Fatalf("phase = %v, want setup", s.Turn.Phase)
	}
	if s.Turn.ActivePlayerID != "p1" {
		t.Fatalf("active player = %s, want p1", s.Turn.ActivePlayerID)
	}
	if s.Turn.Setup.Round != 1 || s.Turn.Setup.Direction != DirectionForward {
		t.Fatalf("unexpected setup state: %+v", s.Turn.Setup)
	}
	if _, ok := s.Board.Hex(s.RobberHex); !ok {
		t.Fatal("robber hex is not a valid board hex")
	}
	hex, _ := s.Board.Hex(s.RobberHex)
	if hex.Terrain != board.TerrainDesert {
		t.Fatalf("robber hex terrain = %v, want desert", hex.Terrain)
	}
}

func TestNewGameStateRejectsBadRosterSize(t *testing.T) {
	cfg := testConfig(t)
	cfg.Players = cfg.Players[:2]
	if _, err := NewGameState(cfg); err == nil {
		t.Fatal("expected error for too few players")
	}
}

func TestBankDevDeckConservation(t *testing.T) {
	deck := StandardDevDeck()
	if len(deck) != 25 {
		t.Fatalf("deck size = %d, want 25", len(deck))
	}
	counts := map[DevCardType]int{}
	for _, c := range deck {
		counts[c]++
	}
	want := map[DevCardType]int{
		DevCardKnight:       14,
		DevCardVictoryPoint: 5,
		DevCardRoadBuilding: 2,
		DevCardYearOfPlenty: 2,
		DevCardMonopoly:     2,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Fatalf("count[%s] = %d, want %d", k, counts[k], n)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s, err := NewGameState(testConfig(t))
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	clone := s.Clone()
	p, _ := clone.Player("p1")
	p.Resources.Add("brick", 3)

	orig, _ := s.Player("p1")
	if orig.Resources.Total() != 0 {
		t.Fatalf("mutating the clone affected the original: %+v", orig.Resources)
	}
}

func TestDrawDevCardDepletesDeck(t *testing.T) {
	bank := NewBank([]DevCardType{DevCardKnight, DevCardMonopoly})
	first, ok := bank.DrawDevCard()
	if !ok || first != DevCardKnight {
		t.Fatalf("first draw = %v, %v", first, ok)
	}
	second, ok := bank.DrawDevCard()
	if !ok || second != DevCardMonopoly {
		t.Fatalf("second draw = %v, %v", second, ok)
	}
	if _, ok := bank.DrawDevCard(); ok {
		t.Fatal("expected empty deck")
	}
}

func TestBuildingsRebuildReflectsPlayers(t *testing.T) {
	s, err := NewGameState(testConfig(t))
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	p, _ := s.Player("p1")
	var anyNode board.NodeID
	for id := range s.Board.Nodes {
		anyNode = id
		break
	}
	p.Settlements[anyNode] = true
	s.Buildings.Rebuild(s.Players)

	b, ok := s.Buildings.Nodes[anyNode]
	if !ok || b.PlayerID != "p1" || b.Kind != BuildingSettlement {
		t.Fatalf("buildings index out of sync: %+v", b)
	}
}

func shuffleFromSeed(seed int64) func(n int, swap func(i, j int)) {
	r := rand.New(rand.NewSource(seed))
	return func(n int, swap func(i, j int)) { r.Shuffle(n, swap) }
}
