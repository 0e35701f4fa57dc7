package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/carlosallexandre/gostack-gobarber/internal/config"
	"github.com/carlosallexandre/gostack-gobarber/internal/dispatch"
	"github.com/carlosallexandre/gostack-gobarber/internal/handler"
	"github.com/carlosallexandre/gostack-gobarber/internal/mailer"
	"github.com/carlosallexandre/gostack-gobarber/internal/middleware"
	"github.com/carlosallexandre/gostack-gobarber/internal/notification"
	"github.com/carlosallexandre/gostack-gobarber/internal/repository"
	"github.com/carlosallexandre/gostack-gobarber/internal/router"
	"github.com/carlosallexandre/gostack-gobarber/internal/scheduler"
	"github.com/carlosallexandre/gostack-gobarber/internal/service"
	"github.com/carlosallexandre/gostack-gobarber/internal/worker"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	dispatcher *dispatch.RabbitDispatcher
	worker     *worker.CancellationWorker
	scheduler  *scheduler.Scheduler
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"GoBarber",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	appointmentRepo := repository.NewAppointmentRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	d, err := dispatch.NewRabbitDispatcher(a.cfg.Rabbit.URL, a.log)
	if err != nil {
		return fmt.Errorf("init dispatcher: %w", err)
	}
	a.dispatcher = d

	if a.cfg.Rabbit.URL != "" {
		m := mailer.NewBrevoMailer(
			a.cfg.Mailer.APIKey,
			a.cfg.Mailer.SenderEmail,
			a.cfg.Mailer.SenderName,
			a.log,
		)

		w, err := worker.New(a.cfg.Rabbit.URL, m, a.log)
		if err != nil {
			return fmt.Errorf("init cancellation worker: %w", err)
		}
		a.worker = w
	}

	appointmentService := service.NewAppointmentService(appointmentRepo, userRepo, n, d, a.log)
	userService := service.NewUserService(userRepo)

	a.scheduler = scheduler.New(
		appointmentService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(appointmentService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	if a.worker != nil {
		go func() {
			if err := a.worker.Start(ctx); err != nil {
				a.log.Error("cancellation worker failed",
					logger.String("error", err.Error()),
				)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.worker != nil {
		if err := a.worker.Close(); err != nil {
			a.log.Error("close worker", logger.String("error", err.Error()))
		}
	}

	if err := a.dispatcher.Close(); err != nil {
		a.log.Error("close dispatcher", logger.String("error", err.Error()))
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
