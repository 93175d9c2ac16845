package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/umyrahbh/healthassist/internal/config"
	"github.com/umyrahbh/healthassist/internal/handler"
	"github.com/umyrahbh/healthassist/internal/middleware"
	"github.com/umyrahbh/healthassist/internal/notification"
	"github.com/umyrahbh/healthassist/internal/payment"
	"github.com/umyrahbh/healthassist/internal/repository"
	"github.com/umyrahbh/healthassist/internal/router"
	"github.com/umyrahbh/healthassist/internal/service"
	"github.com/umyrahbh/healthassist/internal/sweeper"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	sweeper    *sweeper.Sweeper
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HealthAssist",
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

	app.initServices()

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

func (a *App) initServices() {
	apptRepo := repository.NewAppointmentRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)
	checkupRepo := repository.NewCheckupRepo(a.db)
	intentRepo := repository.NewIntentRepo(a.db)
	catalogRepo := repository.NewCatalogRepo(a.db)

	notifier := notification.NewEmailNotifier(
		a.cfg.Mail.Host,
		a.cfg.Mail.Port,
		a.cfg.Mail.Username,
		a.cfg.Mail.Password,
		a.cfg.Mail.From,
		a.cfg.Mail.SpoolDir,
		a.log,
	)

	provider := payment.NewStripeProvider(
		a.cfg.Stripe.SecretKey,
		a.cfg.Stripe.Currency,
		a.cfg.Stripe.Domain,
	)

	bookingService := service.NewBookingService(apptRepo, userRepo, notifier, a.log)
	paymentService := service.NewPaymentService(intentRepo, checkupRepo, bookingService, provider, a.log)
	userService := service.NewUserService(userRepo, a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	checkupService := service.NewCheckupService(checkupRepo)
	catalogService := service.NewCatalogService(catalogRepo)

	a.sweeper = sweeper.New(
		intentRepo,
		a.cfg.Sweeper.Interval,
		a.cfg.Sweeper.IntentTTL,
		a.log,
	)

	h := handler.NewHandler(userService, checkupService, bookingService, paymentService, catalogService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		a.cfg.Auth.JWTSecret,
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
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.sweeper.Start(ctx)

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
