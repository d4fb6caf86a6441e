package lobby

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/btuckerc/traderoads/internal/catan/game"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/rng"
	"github.com/btuckerc/traderoads/internal/platform/id"
	"github.com/btuckerc/traderoads/internal/runtime"
	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// Service is the Lobby Service (C11). It resolves "the user's current
// lobby" by scanning the store rather than holding its own membership
// index, per §4.11 ("the persisted record is the source of truth"); an
// in-process per-lobby mutex only serializes concurrent mutations of a
// single lobby's record between its own read and write.
type Service struct {
	store   Store
	runtime *runtime.Runtime

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New constructs a Lobby Service backed by store, creating games through
// runtime when a lobby starts.
func New(store Store, rt *runtime.Runtime) *Service {
	return &Service{store: store, runtime: rt, locks: make(map[string]*sync.Mutex)}
}

func (s *Service) lockFor(lobbyID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[lobbyID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[lobbyID] = l
	}
	return l
}

// Create starts a new waiting lobby with the caller as its sole member and
// host, drawing a collision-free 4-character code.
func (s *Service) Create(ctx context.Context, hostUserID, hostDisplayName, name string, mode model.PlayerMode, beginnerLayout bool) (sqlite.Lobby, error) {
	if _, found, err := s.store.ListWaitingLobbiesForUser(ctx, hostUserID); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: check existing membership: %w", err)
	} else if found {
		return sqlite.Lobby{}, newError(AlreadyInLobby, "already in a waiting lobby")
	}

	code, err := s.drawCode(ctx)
	if err != nil {
		return sqlite.Lobby{}, err
	}
	lobbyID, err := id.NewID()
	if err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: new id: %w", err)
	}

	l := sqlite.Lobby{
		ID:                lobbyID,
		Code:              code,
		Name:              name,
		HostUserID:        hostUserID,
		PlayerMode:        mode,
		UseBeginnerLayout: beginnerLayout,
		Members: []sqlite.LobbyMember{
			{UserID: hostUserID, DisplayName: hostDisplayName, Host: true},
		},
		Status: sqlite.LobbyStatusWaiting,
	}
	if err := s.store.CreateLobby(ctx, l); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: create: %w", err)
	}
	return s.store.GetLobby(ctx, lobbyID)
}

func (s *Service) drawCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		code, err := newCode()
		if err != nil {
			return "", err
		}
		exists, err := s.store.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("lobby: check code collision: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("lobby: exhausted code draw attempts")
}

// Join adds userID to the lobby identified by code.
func (s *Service) Join(ctx context.Context, code, userID, displayName string) (sqlite.Lobby, error) {
	l, err := s.store.GetLobbyByCode(ctx, code)
	if err != nil {
		if isNotFound(err) {
			return sqlite.Lobby{}, newError(NotFound, "no lobby with that code")
		}
		return sqlite.Lobby{}, fmt.Errorf("lobby: lookup by code: %w", err)
	}

	lock := s.lockFor(l.ID)
	lock.Lock()
	defer lock.Unlock()

	l, err = s.store.GetLobby(ctx, l.ID)
	if err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: reload: %w", err)
	}
	if err := guardWritable(l); err != nil {
		return sqlite.Lobby{}, err
	}
	for _, m := range l.Members {
		if m.UserID == userID {
			return sqlite.Lobby{}, newError(AlreadyInLobby, "already a member of this lobby")
		}
	}
	if _, found, err := s.store.ListWaitingLobbiesForUser(ctx, userID); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: check existing membership: %w", err)
	} else if found {
		return sqlite.Lobby{}, newError(AlreadyInLobby, "already in a waiting lobby")
	}
	if len(l.Members) >= l.PlayerMode.MaxPlayers() {
		return sqlite.Lobby{}, newError(Full, "lobby is full")
	}

	l.Members = append(l.Members, sqlite.LobbyMember{UserID: userID, DisplayName: displayName})
	if err := s.store.UpdateLobby(ctx, l); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: update after join: %w", err)
	}
	return l, nil
}

// Leave removes userID from the lobby. Leaving an empty lobby deletes it;
// the host leaving promotes the next member (§4.11).
func (s *Service) Leave(ctx context.Context, lobbyID, userID string) (sqlite.Lobby, bool, error) {
	lock := s.lockFor(lobbyID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.store.GetLobby(ctx, lobbyID)
	if err != nil {
		if isNotFound(err) {
			return sqlite.Lobby{}, false, newError(NotFound, "no such lobby")
		}
		return sqlite.Lobby{}, false, fmt.Errorf("lobby: lookup: %w", err)
	}
	if err := guardWritable(l); err != nil {
		return sqlite.Lobby{}, false, err
	}

	idx := -1
	for i, m := range l.Members {
		if m.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return sqlite.Lobby{}, false, newError(NotFound, "not a member of this lobby")
	}
	wasHost := l.Members[idx].Host
	l.Members = append(l.Members[:idx], l.Members[idx+1:]...)

	if len(l.Members) == 0 {
		if err := s.store.DeleteLobby(ctx, lobbyID); err != nil {
			return sqlite.Lobby{}, false, fmt.Errorf("lobby: delete empty lobby: %w", err)
		}
		return sqlite.Lobby{}, true, nil
	}
	if wasHost {
		l.Members[0].Host = true
		l.HostUserID = l.Members[0].UserID
	}
	if err := s.store.UpdateLobby(ctx, l); err != nil {
		return sqlite.Lobby{}, false, fmt.Errorf("lobby: update after leave: %w", err)
	}
	return l, false, nil
}

// SelectColor sets userID's color, failing if another member already holds
// it.
func (s *Service) SelectColor(ctx context.Context, lobbyID, userID, color string) (sqlite.Lobby, error) {
	lock := s.lockFor(lobbyID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.store.GetLobby(ctx, lobbyID)
	if err != nil {
		if isNotFound(err) {
			return sqlite.Lobby{}, newError(NotFound, "no such lobby")
		}
		return sqlite.Lobby{}, fmt.Errorf("lobby: lookup: %w", err)
	}
	if err := guardWritable(l); err != nil {
		return sqlite.Lobby{}, err
	}

	found := false
	for _, m := range l.Members {
		if m.UserID != userID && m.Color == color {
			return sqlite.Lobby{}, newError(ColorTaken, "color already taken")
		}
		if m.UserID == userID {
			found = true
		}
	}
	if !found {
		return sqlite.Lobby{}, newError(NotFound, "not a member of this lobby")
	}
	for i := range l.Members {
		if l.Members[i].UserID == userID {
			l.Members[i].Color = color
		}
	}
	if err := s.store.UpdateLobby(ctx, l); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: update after select-color: %w", err)
	}
	return l, nil
}

// SetReady toggles userID's ready flag.
func (s *Service) SetReady(ctx context.Context, lobbyID, userID string, ready bool) (sqlite.Lobby, error) {
	lock := s.lockFor(lobbyID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.store.GetLobby(ctx, lobbyID)
	if err != nil {
		if isNotFound(err) {
			return sqlite.Lobby{}, newError(NotFound, "no such lobby")
		}
		return sqlite.Lobby{}, fmt.Errorf("lobby: lookup: %w", err)
	}
	if err := guardWritable(l); err != nil {
		return sqlite.Lobby{}, err
	}

	found := false
	for i := range l.Members {
		if l.Members[i].UserID == userID {
			l.Members[i].Ready = ready
			found = true
		}
	}
	if !found {
		return sqlite.Lobby{}, newError(NotFound, "not a member of this lobby")
	}
	if err := s.store.UpdateLobby(ctx, l); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: update after set-ready: %w", err)
	}
	return l, nil
}

// Start requires the caller be host, member count >= mode minimum, every
// member ready, and every member holding a color; it creates the game
// record and runtime actor and transitions the lobby to started (§4.11).
func (s *Service) Start(ctx context.Context, lobbyID, callerUserID string) (sqlite.Lobby, error) {
	lock := s.lockFor(lobbyID)
	lock.Lock()
	defer lock.Unlock()

	l, err := s.store.GetLobby(ctx, lobbyID)
	if err != nil {
		if isNotFound(err) {
			return sqlite.Lobby{}, newError(NotFound, "no such lobby")
		}
		return sqlite.Lobby{}, fmt.Errorf("lobby: lookup: %w", err)
	}
	if err := guardWritable(l); err != nil {
		return sqlite.Lobby{}, err
	}
	if l.HostUserID != callerUserID {
		return sqlite.Lobby{}, newError(NotHost, "only the host may start the game")
	}
	if len(l.Members) < l.PlayerMode.MinPlayers() {
		return sqlite.Lobby{}, newError(NotEnoughPlayers, "not enough players to start")
	}
	roster := make([]model.PlayerInit, len(l.Members))
	rosterRecords := make([]sqlite.GameRoster, len(l.Members))
	for i, m := range l.Members {
		if !m.Ready {
			return sqlite.Lobby{}, newError(PlayersNotReady, "every member must be ready")
		}
		if m.Color == "" {
			return sqlite.Lobby{}, newError(MissingColor, "every member must choose a color")
		}
		roster[i] = model.PlayerInit{ID: m.UserID, DisplayName: m.DisplayName, Color: m.Color}
		rosterRecords[i] = sqlite.GameRoster{UserID: m.UserID, DisplayName: m.DisplayName, Color: m.Color}
	}

	seed, err := rng.NewSeed()
	if err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: draw game seed: %w", err)
	}
	gameID, err := id.NewID()
	if err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: new game id: %w", err)
	}

	if err := s.store.CreateGame(ctx, sqlite.Game{
		ID:                gameID,
		PlayerMode:        l.PlayerMode,
		UseBeginnerLayout: l.UseBeginnerLayout,
		BoardSeed:         seed,
		Players:           rosterRecords,
	}); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: create game record: %w", err)
	}

	if _, err := s.runtime.Start(gameID, game.NewConfig{
		GameID:         gameID,
		Mode:           l.PlayerMode,
		BeginnerLayout: l.UseBeginnerLayout,
		Players:        roster,
		Seed:           seed,
	}); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: start runtime: %w", err)
	}

	l.Status = sqlite.LobbyStatusStarted
	l.GameID = &gameID
	if err := s.store.UpdateLobby(ctx, l); err != nil {
		return sqlite.Lobby{}, fmt.Errorf("lobby: update after start: %w", err)
	}
	return l, nil
}

// CurrentLobbyFor resolves the user's current waiting lobby, the durable
// source of truth §4.11 describes.
func (s *Service) CurrentLobbyFor(ctx context.Context, userID string) (sqlite.Lobby, bool, error) {
	return s.store.ListWaitingLobbiesForUser(ctx, userID)
}

// guardWritable enforces the session-lock style write gating supplement
// (§12): once a lobby has produced a game id, no further membership
// mutation is accepted.
func guardWritable(l sqlite.Lobby) error {
	if l.Status == sqlite.LobbyStatusStarted || l.GameID != nil {
		return newError(GameAlreadyStarted, "lobby has already started its game")
	}
	return nil
}

func isNotFound(err error) bool {
	return stderrors.Is(err, sqlite.ErrNotFound)
}
