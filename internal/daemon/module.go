package daemon

import (
	"context"

	"github.com/matheus3301/flock/internal/api"
	"github.com/matheus3301/flock/internal/bus"
	"github.com/matheus3301/flock/internal/config"
	"github.com/matheus3301/flock/internal/ingest"
	"github.com/matheus3301/flock/internal/lock"
	"github.com/matheus3301/flock/internal/logging"
	"github.com/matheus3301/flock/internal/metrics"
	"github.com/matheus3301/flock/internal/session"
	"github.com/matheus3301/flock/internal/shepherd"
	"github.com/matheus3301/flock/internal/simulate"
	"github.com/matheus3301/flock/internal/status"
	"github.com/matheus3301/flock/internal/store"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string         // optional override for testing; empty = use default
	Config      *config.Config // optional; nil = load ~/.flock/config.toml
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideGateway,
			provideSimulator,
			provideIngestEngine,
			provideSessionService,
			provideChatService,
			provideMessageService,
			providePrayerService,
			provideNoteService,
			provideLibraryService,
			provideShepherdService,
			provideMetricsServer,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	if p.Config != nil {
		return p.Config, nil
	}
	return config.LoadOrDefault(session.ConfigPath())
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName, cfg.Log.Level)
}

func provideBus() *bus.Bus {
	b := bus.New()
	b.OnDrop(func(bus.Event) { metrics.RecordBusDrop() })
	return b
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName), p.SessionName)
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired", zap.String("path", l.Path()))
	return l, nil
}

// provideStore depends on the lock so the store is only built once this
// process owns the session.
func provideStore(_ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	db, err := store.Open()
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("store seeded", zap.Uint("version", result.Version), zap.Bool("changed", result.Changed))
	return db, nil
}

func provideGateway(cfg *config.Config, logger *zap.Logger) (*shepherd.Gateway, error) {
	completer, err := shepherd.NewCompleter(context.Background(), cfg.AI.APIKey(), cfg.AI.Model)
	if err != nil {
		return nil, err
	}
	gw := shepherd.NewGateway(completer, shepherd.NewLimiter(cfg.AI.RequestsPerMinute, cfg.AI.Burst), logger.Named("shepherd"))
	if !gw.Available() {
		logger.Warn("no AI credential found, shepherd will answer with fallbacks", zap.String("env", cfg.AI.APIKeyEnv))
	}
	return gw, nil
}

func provideSimulator(cfg *config.Config, db *store.DB, b *bus.Bus, logger *zap.Logger) *simulate.Simulator {
	return simulate.New(db, b, simulate.NewRand(cfg.Simulation.Seed), cfg.Simulation.Interval.Duration, logger.Named("simulate"))
}

func provideIngestEngine(db *store.DB, b *bus.Bus, logger *zap.Logger) *ingest.Engine {
	return ingest.NewEngine(db, b, logger.Named("ingest"))
}

func provideSessionService(p Params, cfg *config.Config, m *status.Machine, db *store.DB, gw *shepherd.Gateway, logger *zap.Logger) *api.SessionService {
	return api.NewSessionService(p.SessionName, m, db, gw, cfg.Simulation.Enabled, logger)
}

func provideChatService(p Params, db *store.DB, b *bus.Bus) *api.ChatService {
	return api.NewChatService(db, b, p.SessionName)
}

func provideMessageService(db *store.DB, b *bus.Bus) *api.MessageService {
	return api.NewMessageService(db, b)
}

func providePrayerService(db *store.DB, b *bus.Bus) *api.PrayerService {
	return api.NewPrayerService(db, b)
}

func provideNoteService(db *store.DB, b *bus.Bus) *api.NoteService {
	return api.NewNoteService(db, b)
}

func provideLibraryService(db *store.DB) *api.LibraryService {
	return api.NewLibraryService(db)
}

func provideShepherdService(db *store.DB, gw *shepherd.Gateway) *api.ShepherdService {
	return api.NewShepherdService(db, gw)
}

func provideMetricsServer(cfg *config.Config, logger *zap.Logger) *MetricsServer {
	return NewMetricsServer(cfg.Metrics.Addr, logger)
}

type lifecycleParams struct {
	fx.In

	Config    *config.Config
	Server    *Server
	Metrics   *MetricsServer
	Lock      *lock.Lock
	Store     *store.DB
	Engine    *ingest.Engine
	Simulator *simulate.Simulator
	Gateway   *shepherd.Gateway
	Machine   *status.Machine
	Logger    *zap.Logger
}

func registerLifecycle(lc fx.Lifecycle, p lifecycleParams) {
	logger := p.Logger
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The engine subscribes before the timer can publish.
			p.Engine.Start(context.Background())

			go func() {
				if err := p.Server.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			if err := p.Metrics.Start(); err != nil {
				return err
			}

			if p.Config.Simulation.Enabled {
				p.Simulator.Start(context.Background())
			} else {
				logger.Info("simulation disabled")
			}

			next := status.Ready
			if !p.Gateway.Available() {
				next = status.Degraded
			}
			if err := p.Machine.Transition(next); err != nil {
				logger.Warn("status transition failed", zap.Error(err))
			}
			logger.Info("daemon started", zap.String("status", string(p.Machine.Current())))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = p.Machine.Transition(status.Stopping)
			p.Simulator.Stop()
			p.Engine.Stop()
			p.Server.Stop(ctx)
			p.Metrics.Stop(ctx)
			if err := p.Store.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := p.Lock.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
