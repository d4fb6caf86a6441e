package gateway

import (
	"context"
	"log"
	"time"

	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/lobby"
	"github.com/btuckerc/traderoads/internal/platform/authtoken"
	"github.com/btuckerc/traderoads/internal/platform/id"
	"github.com/btuckerc/traderoads/internal/runtime"
	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// Handler wires an authenticated connection's inbound messages to the Lobby
// Service and game Runtime, performing the protocol-version gate and
// authentication check that precede every other message per §8.
type Handler struct {
	users   UserStore
	issuer  *authtoken.Issuer
	lobbies *lobby.Service
	runtime *runtime.Runtime
}

// NewHandler constructs a dispatch Handler.
func NewHandler(users UserStore, issuer *authtoken.Issuer, lobbies *lobby.Service, rt *runtime.Runtime) *Handler {
	return &Handler{users: users, issuer: issuer, lobbies: lobbies, runtime: rt}
}

// Dispatch handles one inbound envelope for conn, writing zero or more
// outbound envelopes directly to conn.peer. The protocol version check (§8
// "boundary behavior: protocol version exactly at current and at
// min_supported is accepted") runs before anything else, including before
// authentication, so an old client always gets a legible rejection.
func (h *Handler) Dispatch(ctx context.Context, conn *connection, env InboundEnvelope) {
	if !env.ProtocolVersion.supported() {
		h.sendErr(conn, env.RequestID, ErrUnsupportedVersion, "unsupported protocol version")
		return
	}

	tag := env.Message.Tag
	payload := env.Message.Payload

	if tag == tagAuthenticate {
		h.handleAuthenticate(ctx, conn, env.RequestID, payload)
		return
	}
	if tag == tagPing {
		_ = conn.peer.send(reply(env.RequestID, tagPong, struct{}{}))
		return
	}

	userID, ok := conn.identity()
	if !ok {
		h.sendErr(conn, env.RequestID, ErrUnauthorized, "authenticate before sending this message")
		return
	}

	switch tag {
	case tagCreateLobby, tagJoinLobby, tagLeaveLobby, tagSelectColor, tagSetReady, tagStartGame:
		h.handleLobby(ctx, conn, userID, env.RequestID, tag, payload)
	case tagGetSessionState:
		h.handleGetSessionState(ctx, conn, userID, env.RequestID)
	case tagReconnect:
		h.handleReconnect(ctx, conn, userID, env.RequestID, payload)
	default:
		h.handleGameIntent(ctx, conn, userID, env.RequestID, tag, payload)
	}
}

func (h *Handler) sendErr(conn *connection, requestID string, code ProtocolErrorCode, message string) {
	_ = conn.peer.send(protocolError(requestID, code, message))
}

func (h *Handler) handleAuthenticate(ctx context.Context, conn *connection, requestID string, raw []byte) {
	var p authenticatePayload
	if err := unmarshal(raw, &p); err != nil {
		_ = conn.peer.send(reply(requestID, tagAuthenticationFailed, authenticationFailedPayload{Reason: "malformed payload"}))
		return
	}

	user, err := h.users.GetUserByIdentifier(ctx, p.Identifier)
	if err != nil {
		if !isNotFoundErr(err) {
			log.Printf("gateway: lookup user identifier=%q err=%v", p.Identifier, err)
			_ = conn.peer.send(reply(requestID, tagAuthenticationFailed, authenticationFailedPayload{Reason: "internal error"}))
			return
		}
		newID, idErr := id.NewID()
		if idErr != nil {
			_ = conn.peer.send(reply(requestID, tagAuthenticationFailed, authenticationFailedPayload{Reason: "internal error"}))
			return
		}
		user, err = h.users.CreateUser(ctx, newID, p.Identifier, p.DisplayName)
		if err != nil {
			log.Printf("gateway: create user identifier=%q err=%v", p.Identifier, err)
			_ = conn.peer.send(reply(requestID, tagAuthenticationFailed, authenticationFailedPayload{Reason: "internal error"}))
			return
		}
	}

	token, err := h.issuer.Issue()
	if err != nil {
		_ = conn.peer.send(reply(requestID, tagAuthenticationFailed, authenticationFailedPayload{Reason: "internal error"}))
		return
	}
	sessionID, err := id.NewID()
	if err != nil {
		_ = conn.peer.send(reply(requestID, tagAuthenticationFailed, authenticationFailedPayload{Reason: "internal error"}))
		return
	}
	if _, err := h.users.CreateSession(ctx, sessionID, user.ID, token, time.Now().UTC().Add(authtoken.Lifetime)); err != nil {
		log.Printf("gateway: create session user_id=%s err=%v", user.ID, err)
		_ = conn.peer.send(reply(requestID, tagAuthenticationFailed, authenticationFailedPayload{Reason: "internal error"}))
		return
	}

	conn.authenticate(user.ID, user.DisplayName)
	_ = conn.peer.send(reply(requestID, tagAuthenticated, authenticatedPayload{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Token:       token,
	}))
}

func (h *Handler) handleLobby(ctx context.Context, conn *connection, userID, requestID, tag string, raw []byte) {
	lobbyErr := func(err error) {
		if le, ok := err.(*lobby.Error); ok {
			_ = conn.peer.send(reply(requestID, tagLobbyError, lobbyErrorPayload{Kind: string(le.Kind), Message: le.Message}))
			return
		}
		log.Printf("gateway: lobby op tag=%s user_id=%s err=%v", tag, userID, err)
		h.sendErr(conn, requestID, ErrInternal, "internal error")
	}

	switch tag {
	case tagCreateLobby:
		var p createLobbyPayload
		if err := unmarshal(raw, &p); err != nil {
			h.sendErr(conn, requestID, ErrMalformedMessage, err.Error())
			return
		}
		mode := model.PlayerMode(p.PlayerMode)
		if mode != model.PlayerMode34 && mode != model.PlayerMode56 {
			h.sendErr(conn, requestID, ErrMalformedMessage, "player_mode must be 3_4 or 5_6")
			return
		}
		l, err := h.lobbies.Create(ctx, userID, conn.displayNameSnapshot(), p.Name, mode, p.BeginnerLayout)
		if err != nil {
			lobbyErr(err)
			return
		}
		_ = conn.peer.send(reply(requestID, tagLobbyCreated, toLobbyPayload(l)))

	case tagJoinLobby:
		var p joinLobbyPayload
		if err := unmarshal(raw, &p); err != nil {
			h.sendErr(conn, requestID, ErrMalformedMessage, err.Error())
			return
		}
		l, err := h.lobbies.Join(ctx, p.Code, userID, conn.displayNameSnapshot())
		if err != nil {
			lobbyErr(err)
			return
		}
		_ = conn.peer.send(reply(requestID, tagLobbyJoined, toLobbyPayload(l)))

	case tagLeaveLobby:
		l, _, err := h.lobbies.CurrentLobbyFor(ctx, userID)
		if err != nil {
			lobbyErr(err)
			return
		}
		_, deleted, err := h.lobbies.Leave(ctx, l.ID, userID)
		if err != nil {
			lobbyErr(err)
			return
		}
		_ = conn.peer.send(reply(requestID, tagLobbyLeft, lobbyLeftPayload{LobbyID: l.ID, Deleted: deleted}))

	case tagSelectColor:
		var p selectColorPayload
		if err := unmarshal(raw, &p); err != nil {
			h.sendErr(conn, requestID, ErrMalformedMessage, err.Error())
			return
		}
		l, _, err := h.lobbies.CurrentLobbyFor(ctx, userID)
		if err != nil {
			lobbyErr(err)
			return
		}
		updated, err := h.lobbies.SelectColor(ctx, l.ID, userID, p.Color)
		if err != nil {
			lobbyErr(err)
			return
		}
		_ = conn.peer.send(reply(requestID, tagLobbyUpdated, toLobbyPayload(updated)))

	case tagSetReady:
		var p setReadyPayload
		if err := unmarshal(raw, &p); err != nil {
			h.sendErr(conn, requestID, ErrMalformedMessage, err.Error())
			return
		}
		l, _, err := h.lobbies.CurrentLobbyFor(ctx, userID)
		if err != nil {
			lobbyErr(err)
			return
		}
		updated, err := h.lobbies.SetReady(ctx, l.ID, userID, p.Ready)
		if err != nil {
			lobbyErr(err)
			return
		}
		_ = conn.peer.send(reply(requestID, tagLobbyUpdated, toLobbyPayload(updated)))

	case tagStartGame:
		l, _, err := h.lobbies.CurrentLobbyFor(ctx, userID)
		if err != nil {
			lobbyErr(err)
			return
		}
		started, err := h.lobbies.Start(ctx, l.ID, userID)
		if err != nil {
			lobbyErr(err)
			return
		}
		_ = conn.peer.send(reply(requestID, tagGameStarted, gameStartedPayload{GameID: *started.GameID}))
	}
}

func (h *Handler) handleGetSessionState(ctx context.Context, conn *connection, userID, requestID string) {
	state := sessionStatePayload{UserID: userID}
	if l, found, err := h.lobbies.CurrentLobbyFor(ctx, userID); err == nil && found {
		lp := toLobbyPayload(l)
		state.Lobby = &lp
	}
	_ = conn.peer.send(reply(requestID, tagSessionState, state))
}

func (h *Handler) handleReconnect(ctx context.Context, conn *connection, userID, requestID string, raw []byte) {
	var p reconnectPayload
	if err := unmarshal(raw, &p); err != nil {
		h.sendErr(conn, requestID, ErrMalformedMessage, err.Error())
		return
	}

	if _, ok := h.runtime.State(p.GameID); !ok {
		game, err := h.users.GetGame(ctx, p.GameID)
		if err != nil {
			h.sendErr(conn, requestID, ErrInternal, "no such game")
			return
		}
		roster := make([]model.PlayerInit, len(game.Players))
		for i, m := range game.Players {
			roster[i] = model.PlayerInit{ID: m.UserID, DisplayName: m.DisplayName, Color: m.Color}
		}
		if _, err := h.runtime.Recover(ctx, p.GameID, game.PlayerMode, game.UseBeginnerLayout, game.BoardSeed, roster); err != nil {
			log.Printf("gateway: recover game_id=%s err=%v", p.GameID, err)
			h.sendErr(conn, requestID, ErrInternal, "failed to recover game")
			return
		}
	}

	result, err := h.runtime.Reconnect(ctx, p.GameID, p.LastSeen)
	if err != nil {
		log.Printf("gateway: reconnect game_id=%s err=%v", p.GameID, err)
		h.sendErr(conn, requestID, ErrInternal, "internal error")
		return
	}

	cancel, err := h.runtime.Subscribe(p.GameID, userID, conn)
	if err != nil {
		log.Printf("gateway: subscribe game_id=%s err=%v", p.GameID, err)
	} else {
		conn.watch(p.GameID, cancel)
	}

	if result.Snapshot != nil {
		_ = conn.peer.send(reply(requestID, tagGameSnapshot, gameSnapshotPayload{
			GameID:    p.GameID,
			State:     result.Snapshot,
			FromIndex: result.FromIndex,
			ToIndex:   result.ToIndex,
			Events:    redactEvents(result.Events, userID),
		}))
		return
	}
	_ = conn.peer.send(reply(requestID, tagGameReconnected, gameReconnectedPayload{
		GameID:    p.GameID,
		FromIndex: result.FromIndex,
		ToIndex:   result.ToIndex,
		Events:    redactEvents(result.Events, userID),
	}))
}

func (h *Handler) handleGameIntent(ctx context.Context, conn *connection, userID, requestID, tag string, raw []byte) {
	c, ok := conn.watchedGame()
	if !ok {
		h.sendErr(conn, requestID, ErrMalformedMessage, "not watching a game")
		return
	}
	in, err := decodeIntent(userID, tag, raw)
	if err != nil {
		h.sendErr(conn, requestID, ErrMalformedMessage, err.Error())
		return
	}
	result, err := h.runtime.Submit(ctx, c, in)
	if err != nil {
		log.Printf("gateway: submit game_id=%s tag=%s err=%v", c, tag, err)
		h.sendErr(conn, requestID, ErrInternal, "internal error")
		return
	}
	if result.Outcome == runtime.OutcomeRejected {
		_ = conn.peer.send(reply(requestID, tagIntentRejected, intentRejectedPayload{
			RequestID:  requestID,
			Violations: result.Violations,
		}))
	}
}

func isNotFoundErr(err error) bool {
	return err == sqlite.ErrNotFound
}
