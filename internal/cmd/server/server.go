// Package server parses the game server's command-line/environment
// configuration and wires together the store, runtime, lobby service, and
// gateway into a running process, following the same ParseConfig/Run split
// every service binary in this codebase uses.
package server

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/btuckerc/traderoads/internal/catan/model"
	"github.com/btuckerc/traderoads/internal/gateway"
	"github.com/btuckerc/traderoads/internal/lobby"
	"github.com/btuckerc/traderoads/internal/platform/authtoken"
	platformcmd "github.com/btuckerc/traderoads/internal/platform/cmd"
	"github.com/btuckerc/traderoads/internal/platform/config"
	"github.com/btuckerc/traderoads/internal/runtime"
	"github.com/btuckerc/traderoads/internal/store/integrity"
	"github.com/btuckerc/traderoads/internal/store/sqlite"
)

// Config holds the game server's configuration.
type Config struct {
	Port           int    `env:"TRADEROADS_SERVER_PORT" envDefault:"8080"`
	Addr           string `env:"TRADEROADS_SERVER_ADDR"`
	DBPath         string `env:"TRADEROADS_SERVER_DB_PATH" envDefault:"traderoads.db"`
	AuthTokenKey   string `env:"TRADEROADS_SERVER_AUTH_TOKEN_KEY"`
	IntegrityKey   string `env:"TRADEROADS_SERVER_INTEGRITY_KEY"`
	IntegrityKeyID string `env:"TRADEROADS_SERVER_INTEGRITY_KEY_ID" envDefault:"v1"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "The game server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The game server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the SQLite database file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) listenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}

// Run opens the store, recovers every active game's in-memory actor, and
// serves the gateway's websocket endpoint until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceGame, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("server: open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("server: close store: %v", err)
		}
	}()

	if cfg.IntegrityKey != "" {
		rootKey, err := decodeKey(cfg.IntegrityKey)
		if err != nil {
			return fmt.Errorf("server: decode integrity key: %w", err)
		}
		keyring, err := integrity.NewKeyring(rootKey, cfg.IntegrityKeyID)
		if err != nil {
			return fmt.Errorf("server: build integrity keyring: %w", err)
		}
		store.SetKeyring(keyring)
	}

	authTokenKey, err := decodeKey(cfg.AuthTokenKey)
	if err != nil {
		return fmt.Errorf("server: decode auth token key: %w", err)
	}
	issuer, err := authtoken.NewIssuer(authTokenKey)
	if err != nil {
		return fmt.Errorf("server: build auth token issuer: %w", err)
	}

	rt := runtime.New(store, runtime.Config{})
	if err := recoverActiveGames(ctx, store, rt); err != nil {
		return fmt.Errorf("server: recover active games: %w", err)
	}

	lobbies := lobby.New(store, rt)
	handler := gateway.NewHandler(store, issuer, lobbies, rt)
	mux := gateway.NewServeMux(handler)

	httpServer := &http.Server{Addr: cfg.listenAddr(), Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening at %s", cfg.listenAddr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

func recoverActiveGames(ctx context.Context, store *sqlite.Store, rt *runtime.Runtime) error {
	active, err := store.ListActiveGames(ctx)
	if err != nil {
		return err
	}
	for _, g := range active {
		roster := make([]model.PlayerInit, len(g.Players))
		for i, m := range g.Players {
			roster[i] = model.PlayerInit{ID: m.UserID, DisplayName: m.DisplayName, Color: m.Color}
		}
		if _, err := rt.Recover(ctx, g.ID, g.PlayerMode, g.UseBeginnerLayout, g.BoardSeed, roster); err != nil {
			return fmt.Errorf("recover game %s: %w", g.ID, err)
		}
		log.Printf("server: recovered game_id=%s event_count=%d", g.ID, g.EventCount)
	}
	return nil
}

func decodeKey(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("key is required (set via environment)")
	}
	if decoded, err := hex.DecodeString(s); err == nil && len(decoded) > 0 {
		return decoded, nil
	}
	return []byte(s), nil
}
