package sqlite

import (
	"context"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/model"
)

func testGame(id string) Game {
	return Game{
		ID:                id,
		PlayerMode:        model.PlayerMode34,
		UseBeginnerLayout: true,
		BoardSeed:         42,
		Players: []GameRoster{
			{UserID: "user-1", DisplayName: "Alice", Color: "red"},
			{UserID: "user-2", DisplayName: "Bob", Color: "blue"},
		},
	}
}

func TestCreateAndGetGame(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	g := testGame("game-1")
	if err := store.CreateGame(ctx, g); err != nil {
		t.Fatalf("create game: %v", err)
	}

	got, err := store.GetGame(ctx, "game-1")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.Status != GameStatusActive {
		t.Fatalf("expected active status, got %q", got.Status)
	}
	if len(got.Players) != 2 || got.Players[0].UserID != "user-1" {
		t.Fatalf("unexpected players: %+v", got.Players)
	}
	if got.BoardSeed != 42 {
		t.Fatalf("expected board seed 42, got %d", got.BoardSeed)
	}
}

func TestSetGameStatus(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	g := testGame("game-1")
	if err := store.CreateGame(ctx, g); err != nil {
		t.Fatalf("create game: %v", err)
	}

	winner := "user-1"
	if err := store.SetGameStatus(ctx, "game-1", GameStatusCompleted, &winner); err != nil {
		t.Fatalf("set game status: %v", err)
	}

	got, err := store.GetGame(ctx, "game-1")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if got.Status != GameStatusCompleted {
		t.Fatalf("expected completed status, got %q", got.Status)
	}
	if got.WinnerUserID == nil || *got.WinnerUserID != "user-1" {
		t.Fatalf("expected winner user-1, got %+v", got.WinnerUserID)
	}
}

func TestSetGameStatusNotFound(t *testing.T) {
	store := openTempStore(t)
	if err := store.SetGameStatus(context.Background(), "no-such-game", GameStatusCompleted, nil); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListActiveGames(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateGame(ctx, testGame("game-1")); err != nil {
		t.Fatalf("create game 1: %v", err)
	}
	if err := store.CreateGame(ctx, testGame("game-2")); err != nil {
		t.Fatalf("create game 2: %v", err)
	}
	if err := store.SetGameStatus(ctx, "game-2", GameStatusCompleted, nil); err != nil {
		t.Fatalf("set game 2 status: %v", err)
	}

	active, err := store.ListActiveGames(ctx)
	if err != nil {
		t.Fatalf("list active games: %v", err)
	}
	if len(active) != 1 || active[0].ID != "game-1" {
		t.Fatalf("expected only game-1 active, got %+v", active)
	}
}
