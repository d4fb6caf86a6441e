package gateway

import (
	"github.com/btuckerc/traderoads/internal/catan/event"
	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/catan/violation"
	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// Server message tags (§6 "server message catalog").
const (
	tagAuthenticated        = "authenticated"
	tagAuthenticationFailed = "authentication_failed"
	tagLobbyCreated         = "lobby_created"
	tagLobbyJoined          = "lobby_joined"
	tagLobbyUpdated         = "lobby_updated"
	tagLobbyLeft            = "lobby_left"
	tagLobbyError           = "lobby_error"
	tagGameStarted          = "game_started"
	tagGameEvents           = "game_events"
	tagGameSnapshot         = "game_snapshot"
	tagGameReconnected      = "game_reconnected"
	tagIntentRejected       = "intent_rejected"
	tagGameEnded            = "game_ended"
	tagSessionState         = "session_state"
	tagPong                 = "pong"
	tagServerShutdown       = "server_shutdown"
)

type authenticatedPayload struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Token       string `json:"token"`
}

type authenticationFailedPayload struct {
	Reason string `json:"reason"`
}

type lobbyPayload struct {
	ID                string               `json:"id"`
	Code              string               `json:"code"`
	Name              string               `json:"name"`
	HostUserID        string               `json:"host_user_id"`
	PlayerMode        string               `json:"player_mode"`
	UseBeginnerLayout bool                 `json:"use_beginner_layout"`
	Members           []sqlite.LobbyMember `json:"members"`
	Status            string               `json:"status"`
	GameID            *string              `json:"game_id,omitempty"`
}

func toLobbyPayload(l sqlite.Lobby) lobbyPayload {
	return lobbyPayload{
		ID:                l.ID,
		Code:              l.Code,
		Name:              l.Name,
		HostUserID:        l.HostUserID,
		PlayerMode:        string(l.PlayerMode),
		UseBeginnerLayout: l.UseBeginnerLayout,
		Members:           l.Members,
		Status:            string(l.Status),
		GameID:            l.GameID,
	}
}

type lobbyLeftPayload struct {
	LobbyID string `json:"lobby_id"`
	Deleted bool   `json:"deleted"`
}

type lobbyErrorPayload struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type gameStartedPayload struct {
	GameID string `json:"game_id"`
}

// wireEvent is an event re-encoded for a specific recipient, with the
// redactions §4.10 requires: a resource_stolen event's Resource field is
// cleared unless the recipient is the thief or the victim, and a
// development_card_bought event's CardType is cleared unless the recipient
// is the buyer.
type wireEvent struct {
	Index   int         `json:"index"`
	Kind    event.Kind  `json:"kind"`
	Payload event.Payload `json:"payload"`
}

type gameEventsPayload struct {
	GameID string      `json:"game_id"`
	Events []wireEvent `json:"events"`
}

type gameSnapshotPayload struct {
	GameID    string            `json:"game_id"`
	State     *model.GameState  `json:"state"`
	FromIndex int               `json:"from_index"`
	ToIndex   int               `json:"to_index"`
	Events    []wireEvent       `json:"events"`
}

type gameReconnectedPayload struct {
	GameID    string      `json:"game_id"`
	FromIndex int         `json:"from_index"`
	ToIndex   int         `json:"to_index"`
	Events    []wireEvent `json:"events"`
}

type intentRejectedPayload struct {
	RequestID  string                 `json:"request_id"`
	Violations []violation.Violation `json:"violations"`
}

type gameEndedPayload struct {
	GameID   string  `json:"game_id"`
	WinnerID *string `json:"winner_id,omitempty"`
}

type sessionStatePayload struct {
	UserID string           `json:"user_id"`
	Lobby  *lobbyPayload    `json:"lobby,omitempty"`
	Game   *gameSessionInfo `json:"game,omitempty"`
}

type gameSessionInfo struct {
	GameID     string `json:"game_id"`
	LastIndex  int    `json:"last_index"`
}

type serverShutdownPayload struct {
	Reason string `json:"reason"`
}

// redactForRecipient returns ev's payload as seen by recipientID, clearing
// fields §4.10 restricts to the thief/victim (resource_stolen) or the buyer
// (development_card_bought). Every other event kind passes through
// unchanged: redaction is the exception, not the rule.
func redactForRecipient(ev event.Event, recipientID string) wireEvent {
	switch p := ev.Payload.(type) {
	case event.ResourceStolen:
		if recipientID != p.ThiefID && recipientID != p.VictimID {
			p.Resource = ""
		}
		return wireEvent{Index: ev.Index, Kind: ev.Kind, Payload: p}
	case event.DevelopmentCardBought:
		if recipientID != p.PlayerID {
			p.CardType = ""
		}
		return wireEvent{Index: ev.Index, Kind: ev.Kind, Payload: p}
	default:
		return wireEvent{Index: ev.Index, Kind: ev.Kind, Payload: ev.Payload}
	}
}

func redactEvents(events []event.Event, recipientID string) []wireEvent {
	out := make([]wireEvent, len(events))
	for i, ev := range events {
		out[i] = redactForRecipient(ev, recipientID)
	}
	return out
}
