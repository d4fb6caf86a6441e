package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/net/websocket"
)

const (
	maxFramePayloadBytes   = 64 * 1024
	maxFramesPerSecond     = 40
	maxDecodeErrorsPerConn = 3
)

// NewServeMux builds the gateway's HTTP surface: a single "/ws" upgrade
// endpoint, adapted from internal/services/chat/app/server_transport.go's
// handleWSConn (decode loop, per-connection rate limiting, decode-error
// budget before dropping the connection) but dispatching through Handler
// instead of a chat room.
func NewServeMux(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	wsHandler := websocket.Handler(func(conn *websocket.Conn) {
		handleConn(conn, h)
	})
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		wsHandler.ServeHTTP(w, r)
	})
	return mux
}

func handleConn(wsConn *websocket.Conn, h *Handler) {
	defer func() { _ = wsConn.Close() }()

	decoder := json.NewDecoder(wsConn)
	c := newConnection(newPeer(json.NewEncoder(wsConn)))
	defer c.stopWatching()

	ctx := context.Background()
	if req := wsConn.Request(); req != nil {
		ctx = req.Context()
	}

	windowStart := time.Now()
	framesInWindow := 0
	decodeErrors := 0

	for {
		var env InboundEnvelope
		if err := decoder.Decode(&env); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			decodeErrors++
			_ = c.peer.send(protocolError("", ErrMalformedMessage, "invalid envelope"))
			if decodeErrors >= maxDecodeErrorsPerConn {
				return
			}
			continue
		}
		decodeErrors = 0

		if len(env.Message.Payload) > maxFramePayloadBytes {
			_ = c.peer.send(protocolError(env.RequestID, ErrMalformedMessage, "payload too large"))
			continue
		}

		now := time.Now()
		if now.Sub(windowStart) >= time.Second {
			windowStart = now
			framesInWindow = 0
		}
		framesInWindow++
		if framesInWindow > maxFramesPerSecond {
			_ = c.peer.send(protocolError(env.RequestID, ErrRateLimited, "rate limit exceeded"))
			return
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("gateway: panic dispatching message tag=%s: %v", env.Message.Tag, r)
					_ = c.peer.send(protocolError(env.RequestID, ErrInternal, "internal error"))
				}
			}()
			h.Dispatch(ctx, c, env)
		}()
	}
}
