package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/baechuer/grandveggie/internal/application/catalog"
	"github.com/baechuer/grandveggie/internal/application/session"
	"github.com/baechuer/grandveggie/internal/audit"
	"github.com/baechuer/grandveggie/internal/config"
	"github.com/baechuer/grandveggie/internal/domain"
	"github.com/baechuer/grandveggie/internal/infrastructure/memory"
	rabbitmq_pub "github.com/baechuer/grandveggie/internal/infrastructure/messaging/rabbitmq"
	"github.com/baechuer/grandveggie/internal/infrastructure/redis"
	"github.com/baechuer/grandveggie/internal/infrastructure/sqlite"
	"github.com/baechuer/grandveggie/internal/logger"
	"github.com/baechuer/grandveggie/internal/transport/http/dto"
	http_handlers "github.com/baechuer/grandveggie/internal/transport/http/handlers"
	"github.com/baechuer/grandveggie/internal/transport/http/middleware"
	"github.com/baechuer/grandveggie/internal/transport/http/response"
	"github.com/baechuer/grandveggie/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

// App is a wired server plus what the entrypoint needs to run and stop it.
type App struct {
	Server  *http.Server
	Cleanup func()

	// Drain bounds graceful shutdown: HTTP_SHUTDOWN_TIMEOUT plus one
	// credential-check delay.
	Drain time.Duration

	Env         string
	StateDriver string
}

func NewApp() (*App, error) {
	return newApp(defaultDeps())
}

// NewAppWithDeps allows injecting dependencies for testing
func NewAppWithDeps(deps Deps) (*App, error) {
	return newApp(deps)
}

// NewServerWithDeps is NewAppWithDeps for callers that only serve.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	app, err := newApp(deps)
	if err != nil {
		return nil, nil, err
	}
	return app.Server, app.Cleanup, nil
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	OpenSQLite func(path string) (*sql.DB, error)

	NewRedis func(addr, password string, db int) RedisClient

	NewPublisher func(url, exchange string) (Publisher, error)

	NewRouter func(router.Deps) (http.Handler, error)

	// Clock drives the credential-check delay; nil means wall time.
	Clock session.Clock
}

type RedisClient interface {
	Ping(ctx context.Context) error
	Close() error
}

type Publisher interface {
	session.EventPublisher
}

/*
========================
 Core bootstrap logic
========================
*/

func newApp(deps Deps) (*App, error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, err
	}
	lg := logger.Logger

	var cleanupFns []func()
	fail := func(err error) (*App, error) {
		runCleanup(cleanupFns)
		return nil, err
	}
	checks := map[string]http_handlers.Pinger{}

	// 1) redis (best-effort): backs the redis state driver and the shared limiter
	var redisCli *redis.Client
	wantRedis := cfg.State.Driver == config.StateDriverRedis || cfg.RateLimit.Enabled
	if wantRedis && deps.NewRedis != nil {
		c := deps.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := c.Ping(ctx)
		cancel()

		rc, ok := c.(*redis.Client)
		switch {
		case err != nil:
			lg.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable; falling back to in-process state and limits")
			_ = c.Close()
		case !ok:
			_ = c.Close()
			return fail(errors.New("bootstrap: NewRedis did not return *redis.Client"))
		default:
			lg.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
			redisCli = rc
			cleanupFns = append(cleanupFns, func() { _ = rc.Close() })
			checks["redis"] = rc
		}
	}

	// 2) durable session slot
	var state session.StateStore
	switch cfg.State.Driver {
	case config.StateDriverSQLite:
		db, err := deps.OpenSQLite(cfg.State.SQLitePath)
		if err != nil {
			return fail(domain.ErrStorageUnavailable(err))
		}
		cleanupFns = append(cleanupFns, func() { _ = db.Close() })

		if err := sqlite.Migrate(context.Background(), db); err != nil {
			return fail(err)
		}
		state = sqlite.NewStateStore(db)
		checks["sqlite"] = http_handlers.PingFunc(db.PingContext)

	case config.StateDriverRedis:
		if redisCli != nil {
			state = redis.NewStateStore(redisCli)
		} else {
			lg.Warn().Msg("STATE_DRIVER=redis but redis is unavailable; session will not survive restarts")
			state = memory.NewStateStore()
		}

	default:
		state = memory.NewStateStore()
	}
	lg.Info().Str("driver", cfg.State.Driver).Msg("session state store ready")

	// 3) publisher
	var pub session.EventPublisher
	if cfg.Rabbit.URL == "" {
		lg.Info().Msg("RABBIT_URL not set; session events are only logged")
		pub = memory.NewNoopPublisher(lg)
	} else {
		p, err := deps.NewPublisher(cfg.Rabbit.URL, cfg.Rabbit.Exchange)
		if err != nil {
			if cfg.Env != "dev" {
				return fail(domain.ErrRabbitUnavailable(err))
			}
			lg.Warn().Err(err).Msg("rabbitmq unavailable; using noop publisher")
			pub = memory.NewNoopPublisher(lg)
		} else {
			pub = p
			if c, ok := p.(interface{ Close() error }); ok {
				cleanupFns = append(cleanupFns, func() { _ = c.Close() })
			}
		}
	}

	// 4) session store
	seed := memory.DefaultSeed()
	creds := memory.NewCredentialTable(seed)
	lg.Info().Int("credentials", creds.Len()).Msg("credential table seeded")

	store, err := session.NewStore(context.Background(), session.Deps{
		Credentials: creds,
		State:       state,
		Clock:       deps.Clock,
		Events:      pub,
		Audit:       audit.New(lg),
		Log:         lg.With().Str("component", "session").Logger(),
	}, session.Config{
		Delay: cfg.AuthDelay,
	})
	if err != nil {
		return fail(err)
	}
	store.Subscribe(func(s domain.Session) {
		ev := lg.Debug().Bool("authenticated", s.IsAuthenticated).Bool("loading", s.IsLoading)
		if s.User != nil {
			ev = ev.Str("user_id", s.User.ID).Str("role", string(s.User.Role))
		}
		ev.Msg("session changed")
	})

	// 5) handlers
	svc := catalog.NewService(memory.DefaultCatalog())

	var demo *dto.DemoCredentials
	if cfg.Env == "dev" && len(seed) > 0 {
		demo = &dto.DemoCredentials{Email: seed[0].User.Email, Password: seed[0].Password}
	}

	// 6) rate limit (fail-open); shared across replicas when redis is up
	rl := func(key string) func(http.Handler) http.Handler {
		if !cfg.RateLimit.Enabled {
			return nil
		}
		if redisCli == nil {
			return middleware.LimitByIP(key, cfg.RateLimit.Limit, cfg.RateLimit.Window, response.WriteError)
		}
		return middleware.RateLimitFixedWindow(
			redis.NewFixedWindowLimiter(redisCli),
			middleware.FixedWindowConfig{
				RouteKey: key,
				Limit:    cfg.RateLimit.Limit,
				Window:   cfg.RateLimit.Window,
			},
			response.WriteError,
		)
	}

	// 7) router
	mux, err := deps.NewRouter(router.Deps{
		Health:  http_handlers.NewHealthHandler(checks),
		Session: http_handlers.NewSessionHandler(store),
		Catalog: http_handlers.NewCatalogHandler(svc),
		Pages:   http_handlers.NewPagesHandler(svc, demo),
		Store:   store,

		LoginLimit:    rl("auth.login"),
		RegisterLimit: rl("auth.register"),
	})
	if err != nil {
		return fail(err)
	}

	// 8) server
	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() { runCleanup(cleanupFns) })
	}

	return &App{
		Server:      srv,
		Cleanup:     cleanup,
		Drain:       cfg.HTTP.ShutdownTimeout + cfg.AuthDelay,
		Env:         cfg.Env,
		StateDriver: cfg.State.Driver,
	}, nil
}

/*
========================
 Default deps (prod)
========================
*/

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		OpenSQLite: config.NewSQLite,
		NewRedis: func(addr, password string, db int) RedisClient {
			return redis.New(addr, password, db)
		},
		NewPublisher: func(url, exchange string) (Publisher, error) {
			return rabbitmq_pub.NewPublisher(url, exchange)
		},
		NewRouter: func(d router.Deps) (http.Handler, error) {
			return router.New(d)
		},
	}
}

/*
========================
 helpers
========================
*/

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
