// api/cmd/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/grandveggie/internal/bootstrap"
	"github.com/baechuer/grandveggie/internal/logger"
)

// defaultDrain is used when the builder does not report a drain budget.
const defaultDrain = 15 * time.Second

// httpServer is the part of *http.Server that Run drives.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Close() error
	Addr() string
}

type realServer struct{ *http.Server }

func (r realServer) Addr() string { return r.Server.Addr }

// app is what Run needs from a wired server.
type app struct {
	srv     httpServer
	cleanup func()

	// drain bounds graceful shutdown. It covers one pending sign-in delay.
	drain time.Duration

	env   string
	state string
}

type appBuilder func() (app, error)

// Run serves until a signal arrives or the listener fails and returns the
// process exit code. After the first signal in-flight requests get the
// drain budget; a second signal closes every connection at once.
func Run(build appBuilder, sigCh <-chan os.Signal, lg zerolog.Logger) int {
	a, err := build()
	if err != nil {
		lg.Error().Err(err).Msg("bootstrap failed")
		return 1
	}
	if a.cleanup != nil {
		defer a.cleanup()
	}

	lg.Info().
		Str("addr", a.srv.Addr()).
		Str("env", a.env).
		Str("state_driver", a.state).
		Msg("grandveggie listening")

	errCh := make(chan error, 1)
	go func() {
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		lg.Info().Str("signal", sig.String()).Msg("shutdown signal received")

	case err := <-errCh:
		lg.Error().Err(err).Msg("server crashed")
		return 1
	}

	drain := a.drain
	if drain <= 0 {
		drain = defaultDrain
	}
	lg.Info().Dur("drain", drain).Msg("draining in-flight requests")

	ctx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.srv.Shutdown(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			lg.Error().Err(err).Msg("graceful shutdown failed")
			_ = a.srv.Close()
			return 1
		}

	case sig := <-sigCh:
		lg.Warn().Str("signal", sig.String()).Msg("second signal; closing connections")
		_ = a.srv.Close()
		cancel()
		<-done
		return 1
	}

	lg.Info().Msg("shutdown complete")
	return 0
}

func buildFromBootstrap() (app, error) {
	a, err := bootstrap.NewApp()
	if err != nil {
		return app{}, err
	}
	return app{
		srv:     realServer{a.Server},
		cleanup: a.Cleanup,
		drain:   a.Drain,
		env:     a.Env,
		state:   a.StateDriver,
	}, nil
}

func main() {
	logger.Init()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	os.Exit(Run(buildFromBootstrap, sigCh, zlog.Logger))
}
