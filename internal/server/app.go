// Package server initializes and runs the authentication server. It wires
// the state store, the protocol service and the gRPC endpoint, and handles
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dpetrovs/zkpauth/internal/chaumpedersen"
	"github.com/dpetrovs/zkpauth/internal/logging"
	"github.com/dpetrovs/zkpauth/internal/server/auth"
	"github.com/dpetrovs/zkpauth/internal/server/config"
	"github.com/dpetrovs/zkpauth/internal/server/store"

	gs "github.com/dpetrovs/zkpauth/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	params      *chaumpedersen.Params
	store       *store.MemoryStore
	authService *auth.Service
}

// NewApp builds the application after checking the startup invariants:
// the group parameters must validate and the session secret must be set.
func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	params := chaumpedersen.Default()
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("group parameters: %w", err)
	}
	if bits := params.P.BitLen(); bits < chaumpedersen.MinGroupBits {
		return nil, fmt.Errorf("group modulus too small: %d bits", bits)
	}
	if c.SessionSecret == "" {
		return nil, errors.New("session secret must not be empty")
	}

	st := store.NewMemoryStore()
	svc := auth.NewService(st, params, c)

	return &App{config: c, logger: logger, params: params, store: st, authService: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService, app.params)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

// startSweeper purges expired challenges and sessions on a fixed ticker
// until the context is cancelled.
func (app *App) startSweeper(ctx context.Context) {

	if app.config.SweepInterval <= 0 {
		return
	}

	ticker := time.NewTicker(app.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := app.store.Sweep(now); removed > 0 {
				regs, challenges, sessions := app.store.Counts()
				app.logger.Debug(ctx, "expired state swept",
					"removed", removed, "registrations", regs, "challenges", challenges, "sessions", sessions)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startSweeper(ctx)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
