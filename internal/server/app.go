// Package server wires the forum backend together: PostgreSQL repositories,
// S3 media storage, the gRPC API, the monitor endpoint and the housekeeping
// scheduler. It also handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophforum/internal/logging"
	"github.com/dmitrijs2005/gophforum/internal/server/config"
	"github.com/dmitrijs2005/gophforum/internal/server/housekeeping"
	"github.com/dmitrijs2005/gophforum/internal/server/metrics"
	"github.com/dmitrijs2005/gophforum/internal/server/monitor"
	"github.com/dmitrijs2005/gophforum/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophforum/internal/server/services"
	"github.com/dmitrijs2005/gophforum/internal/server/storage"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophforum/internal/server/grpc"
)

// runner is a long-lived component that stops when its context is done.
type runner interface {
	Run(ctx context.Context) error
}

type App struct {
	config       *config.Config
	logger       logging.Logger
	sync         func() error
	db           *sql.DB
	grpc         runner
	monitor      runner
	housekeeping *housekeeping.Scheduler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	zl, err := logging.NewProductionZap(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	zapLogger := logging.NewZapLogger(zl)
	logger := zapLogger.With("module", "app")

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("s3 init error: %w", err)
	}

	m := metrics.New()

	us := services.NewUserService(db, rm, c)
	ts := services.NewThreadService(db, rm)
	ms := services.NewMediaService(store, m)

	hk, err := housekeeping.New(c.HousekeepingSchedule, us, m, zapLogger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:       c,
		logger:       logger,
		sync:         zapLogger.Sync,
		db:           db,
		grpc:         gs.NewGRPCServer(c.EndpointAddrGRPC, zapLogger, us, ts, ms, c.SecretKey, m),
		monitor:      monitor.NewServer(c.MonitorAddr, db, m.Registry, zapLogger),
		housekeeping: hk,
	}, nil
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

// Run serves until a signal arrives or one of the components fails, then
// stops the rest and closes the database.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.grpc.Run(gctx); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := app.monitor.Run(gctx); err != nil {
			return fmt.Errorf("monitor: %w", err)
		}
		return nil
	})

	if app.housekeeping != nil {
		g.Go(func() error {
			app.housekeeping.Run(gctx)
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "app stopped with error", "error", err)
	}

	app.logger.Info(ctx, "App stopped")
	app.close()

	return err
}

func (app *App) close() {
	if app.db != nil {
		_ = app.db.Close()
	}
	if app.sync != nil {
		_ = app.sync()
	}
}
