package sqlite

import (
	"context"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/model"
)

func testLobby(id, code string) Lobby {
	return Lobby{
		ID:         id,
		Code:       code,
		Name:       "Friday Night Catan",
		HostUserID: "user-1",
		PlayerMode: model.PlayerMode34,
		Members: []LobbyMember{
			{UserID: "user-1", DisplayName: "Alice", Host: true},
		},
	}
}

func TestCreateAndGetLobby(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	l := testLobby("lobby-1", "ABCD")
	if err := store.CreateLobby(ctx, l); err != nil {
		t.Fatalf("create lobby: %v", err)
	}

	got, err := store.GetLobby(ctx, "lobby-1")
	if err != nil {
		t.Fatalf("get lobby: %v", err)
	}
	if got.Status != LobbyStatusWaiting {
		t.Fatalf("expected waiting status, got %q", got.Status)
	}
	if len(got.Members) != 1 || !got.Members[0].Host {
		t.Fatalf("unexpected members: %+v", got.Members)
	}

	byCode, err := store.GetLobbyByCode(ctx, "ABCD")
	if err != nil {
		t.Fatalf("get lobby by code: %v", err)
	}
	if byCode.ID != "lobby-1" {
		t.Fatalf("expected lobby-1, got %q", byCode.ID)
	}
}

func TestCodeExists(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	exists, err := store.CodeExists(ctx, "ABCD")
	if err != nil {
		t.Fatalf("code exists: %v", err)
	}
	if exists {
		t.Fatal("expected code not to exist yet")
	}

	if err := store.CreateLobby(ctx, testLobby("lobby-1", "ABCD")); err != nil {
		t.Fatalf("create lobby: %v", err)
	}

	exists, err = store.CodeExists(ctx, "ABCD")
	if err != nil {
		t.Fatalf("code exists: %v", err)
	}
	if !exists {
		t.Fatal("expected code to exist")
	}
}

func TestUpdateLobby(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	l := testLobby("lobby-1", "ABCD")
	if err := store.CreateLobby(ctx, l); err != nil {
		t.Fatalf("create lobby: %v", err)
	}

	l.Members = append(l.Members, LobbyMember{UserID: "user-2", DisplayName: "Bob"})
	l.Status = LobbyStatusStarted
	gameID := "game-1"
	l.GameID = &gameID
	if err := store.UpdateLobby(ctx, l); err != nil {
		t.Fatalf("update lobby: %v", err)
	}

	got, err := store.GetLobby(ctx, "lobby-1")
	if err != nil {
		t.Fatalf("get lobby: %v", err)
	}
	if got.Status != LobbyStatusStarted {
		t.Fatalf("expected started status, got %q", got.Status)
	}
	if len(got.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(got.Members))
	}
	if got.GameID == nil || *got.GameID != "game-1" {
		t.Fatalf("expected game id game-1, got %+v", got.GameID)
	}
}

func TestUpdateLobbyNotFound(t *testing.T) {
	store := openTempStore(t)
	if err := store.UpdateLobby(context.Background(), testLobby("no-such-lobby", "ZZZZ")); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteLobby(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateLobby(ctx, testLobby("lobby-1", "ABCD")); err != nil {
		t.Fatalf("create lobby: %v", err)
	}
	if err := store.DeleteLobby(ctx, "lobby-1"); err != nil {
		t.Fatalf("delete lobby: %v", err)
	}
	if _, err := store.GetLobby(ctx, "lobby-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListWaitingLobbiesForUser(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateLobby(ctx, testLobby("lobby-1", "ABCD")); err != nil {
		t.Fatalf("create lobby: %v", err)
	}

	got, found, err := store.ListWaitingLobbiesForUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list waiting lobbies: %v", err)
	}
	if !found || got.ID != "lobby-1" {
		t.Fatalf("expected to find lobby-1, got found=%v lobby=%+v", found, got)
	}

	_, found, err = store.ListWaitingLobbiesForUser(ctx, "user-2")
	if err != nil {
		t.Fatalf("list waiting lobbies: %v", err)
	}
	if found {
		t.Fatal("expected no lobby for user-2")
	}
}
