package lobby

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/runtime"
	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lobby.db")
	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	rt := runtime.New(store, runtime.Config{})
	return New(store, rt)
}

func TestCreateAndJoin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, "user-1", "Alice", "Friday Night Catan", model.PlayerMode34, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(l.Code) != 4 {
		t.Fatalf("expected 4-character code, got %q", l.Code)
	}
	if len(l.Members) != 1 || !l.Members[0].Host {
		t.Fatalf("expected host as sole member, got %+v", l.Members)
	}

	joined, err := svc.Join(ctx, l.Code, "user-2", "Bob")
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if len(joined.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(joined.Members))
	}
}

func TestCreateRejectsSecondLobbyForSameHost(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "user-1", "Alice", "Lobby A", model.PlayerMode34, true); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(ctx, "user-1", "Alice", "Lobby B", model.PlayerMode34, true)
	if err == nil {
		t.Fatal("expected error creating a second lobby for the same host")
	}
	lobbyErr, ok := err.(*Error)
	if !ok || lobbyErr.Kind != AlreadyInLobby {
		t.Fatalf("expected AlreadyInLobby, got %v", err)
	}
}

func TestJoinFullLobbyFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, "user-1", "Alice", "Lobby A", model.PlayerMode34, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i, name := range []string{"Bob", "Cara", "Dan"} {
		userID := fmt.Sprintf("user-%d", i+2)
		if _, err := svc.Join(ctx, l.Code, userID, name); err != nil {
			t.Fatalf("join %s: %v", name, err)
		}
	}

	_, err = svc.Join(ctx, l.Code, "user-9", "Eve")
	if err == nil {
		t.Fatal("expected error joining a full lobby")
	}
	lobbyErr, ok := err.(*Error)
	if !ok || lobbyErr.Kind != Full {
		t.Fatalf("expected Full, got %v", err)
	}
}

func TestSelectColorRejectsDuplicate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, "user-1", "Alice", "Lobby A", model.PlayerMode34, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Join(ctx, l.Code, "user-2", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := svc.SelectColor(ctx, l.ID, "user-1", "red"); err != nil {
		t.Fatalf("select color: %v", err)
	}
	_, err = svc.SelectColor(ctx, l.ID, "user-2", "red")
	if err == nil {
		t.Fatal("expected error selecting a taken color")
	}
	lobbyErr, ok := err.(*Error)
	if !ok || lobbyErr.Kind != ColorTaken {
		t.Fatalf("expected ColorTaken, got %v", err)
	}
}

func TestLeaveEmptyLobbyDeletesIt(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, "user-1", "Alice", "Lobby A", model.PlayerMode34, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, deleted, err := svc.Leave(ctx, l.ID, "user-1")
	if err != nil {
		t.Fatalf("leave: %v", err)
	}
	if !deleted {
		t.Fatal("expected lobby to be deleted once empty")
	}
}

func TestLeavePromotesNextHost(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, "user-1", "Alice", "Lobby A", model.PlayerMode34, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Join(ctx, l.Code, "user-2", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	after, deleted, err := svc.Leave(ctx, l.ID, "user-1")
	if err != nil {
		t.Fatalf("leave: %v", err)
	}
	if deleted {
		t.Fatal("did not expect lobby to be deleted")
	}
	if after.HostUserID != "user-2" {
		t.Fatalf("expected user-2 to be promoted to host, got %q", after.HostUserID)
	}
}

func TestStartRequiresReadyAndColor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, "user-1", "Alice", "Lobby A", model.PlayerMode34, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Join(ctx, l.Code, "user-2", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if _, err := svc.Join(ctx, l.Code, "user-3", "Cara"); err != nil {
		t.Fatalf("join: %v", err)
	}

	_, err = svc.Start(ctx, l.ID, "user-1")
	if err == nil {
		t.Fatal("expected error starting before members are ready")
	}
	lobbyErr, ok := err.(*Error)
	if !ok || lobbyErr.Kind != PlayersNotReady {
		t.Fatalf("expected PlayersNotReady, got %v", err)
	}

	for i, userID := range []string{"user-1", "user-2", "user-3"} {
		colors := []string{"red", "blue", "green"}
		if _, err := svc.SelectColor(ctx, l.ID, userID, colors[i]); err != nil {
			t.Fatalf("select color for %s: %v", userID, err)
		}
		if _, err := svc.SetReady(ctx, l.ID, userID, true); err != nil {
			t.Fatalf("set ready for %s: %v", userID, err)
		}
	}

	started, err := svc.Start(ctx, l.ID, "user-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.Status != sqlite.LobbyStatusStarted {
		t.Fatalf("expected started status, got %q", started.Status)
	}
	if started.GameID == nil {
		t.Fatal("expected a game id to be assigned")
	}
}

func TestStartRequiresHost(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	l, err := svc.Create(ctx, "user-1", "Alice", "Lobby A", model.PlayerMode34, true)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Join(ctx, l.Code, "user-2", "Bob"); err != nil {
		t.Fatalf("join: %v", err)
	}

	_, err = svc.Start(ctx, l.ID, "user-2")
	if err == nil {
		t.Fatal("expected error starting as a non-host")
	}
	lobbyErr, ok := err.(*Error)
	if !ok || lobbyErr.Kind != NotHost {
		t.Fatalf("expected NotHost, got %v", err)
	}
}
