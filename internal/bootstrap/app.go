package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/Stashkeeper_Go/internal/command"
	"github.com/osse101/Stashkeeper_Go/internal/config"
	"github.com/osse101/Stashkeeper_Go/internal/database"
	"github.com/osse101/Stashkeeper_Go/internal/database/postgres"
	"github.com/osse101/Stashkeeper_Go/internal/event"
	"github.com/osse101/Stashkeeper_Go/internal/logger"
	"github.com/osse101/Stashkeeper_Go/internal/scheduler"
	"github.com/osse101/Stashkeeper_Go/internal/server"
	"github.com/osse101/Stashkeeper_Go/internal/sse"
	"github.com/osse101/Stashkeeper_Go/internal/state"
	"github.com/osse101/Stashkeeper_Go/internal/worker"
)

// App is the assembled service
type App struct {
	Server    *server.Server
	Service   state.Service
	Store     *StoreComponents
	Publisher *event.ResilientPublisher
	Workers   *worker.Pool
	Scheduler *scheduler.Scheduler
	Reloads   *worker.ReloadQueue

	stopListener context.CancelFunc
	listenerDone chan struct{}
}

// NewApp wires the store, event system, state service, background reloads and HTTP server.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := InitializeStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	_, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		closeStore(store)
		return nil, err
	}

	sseHub := sse.NewHub()
	sseHub.Start()
	wsHub := command.NewHub()
	RegisterEventHandlers(EventHandlerDependencies{EventBus: publisher, SSEHub: sseHub, WSHub: wsHub})

	svc := state.NewService(state.Options{
		Initial:   store.Initial,
		Store:     store.Store,
		Bus:       publisher,
		Media:     store.Media,
		CacheSize: cfg.ViewCacheSize,
		CacheTTL:  cfg.ViewCacheTTL,
	})
	if store.Store != nil {
		if err := svc.Reload(ctx, ReloadSourceStartup); err != nil {
			sseHub.Stop()
			closeStore(store)
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitialReload, err)
		}
	}

	app := &App{
		Service:   svc,
		Store:     store,
		Publisher: publisher,
		Workers:   worker.NewPool(cfg.WorkerCount, ReloadQueueSize),
	}
	app.Workers.Start()
	app.Reloads = worker.NewReloadQueue(app.Workers, svc)

	if store.Pool != nil {
		app.startListener(store)
	}

	app.Scheduler = scheduler.New(app.Workers)
	if cfg.ResyncInterval > 0 {
		app.Scheduler.Schedule(cfg.ResyncInterval, app.Reloads.Job(ReloadSourceSchedule))
		logger.FromContext(ctx).Info(LogMsgResyncScheduled, "interval", cfg.ResyncInterval)
	}

	opts := server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}
	// A nil *pgxpool.Pool must not reach the interface, or readiness would ping it
	var pool database.Pool
	if store.Pool != nil {
		pool = store.Pool
		opts.MediaDir = cfg.MediaDir
		opts.MediaBaseURL = cfg.MediaBaseURL
	}
	app.Server = server.NewServer(opts, pool, svc, sseHub, wsHub)

	return app, nil
}

// startListener forwards change notifications from the store to the reload queue
func (a *App) startListener(store *StoreComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	a.stopListener = cancel
	a.listenerDone = make(chan struct{})

	listener := postgres.NewListener(store.Pool, func(table string) {
		logger.FromContext(ctx).Debug(LogMsgChangeNotification, "table", table)
		a.Reloads.Request(ReloadSourceNotify)
	})
	go func() {
		defer close(a.listenerDone)
		listener.Run(ctx)
	}()
}

func closeStore(store *StoreComponents) {
	if store.Pool != nil {
		store.Pool.Close()
	}
}
