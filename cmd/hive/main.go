package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alexanderramin/hive/internal/calendar"
	"github.com/alexanderramin/hive/internal/cli"
	"github.com/alexanderramin/hive/internal/config"
	"github.com/alexanderramin/hive/internal/db"
	"github.com/alexanderramin/hive/internal/httpapi"
	"github.com/alexanderramin/hive/internal/identity"
	"github.com/alexanderramin/hive/internal/metrics"
	"github.com/alexanderramin/hive/internal/repository"
	"github.com/alexanderramin/hive/internal/reward"
	"github.com/alexanderramin/hive/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.IsDevelopment() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}
	return logger
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	log.Logger = logger

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	events, err := calendar.Open(cfg.CalendarFile)
	if err != nil {
		return err
	}

	m := metrics.New()
	observer := service.MultiObserver(service.NewLogUseCaseObserver(logger), m)
	defaults := cfg.PlannerOptions()

	svc := httpapi.Services{
		Tasks:    service.NewTaskService(taskRepo, projectRepo, observer),
		Projects: service.NewProjectService(projectRepo, taskRepo, uow, observer),
		Sessions: service.NewSessionService(sessionRepo, uow, reward.DefaultRules(), observer),
		Plan:     service.NewPlanService(userRepo, taskRepo, events, defaults, observer),
		Stats:    service.NewStatsService(userRepo, sessionRepo, observer),
		Settings: service.NewSettingsService(userRepo, defaults, observer),
	}

	app := &cli.App{
		Users:       service.NewUserService(userRepo, observer),
		Tasks:       svc.Tasks,
		Projects:    svc.Projects,
		Sessions:    svc.Sessions,
		Plan:        svc.Plan,
		Stats:       svc.Stats,
		Settings:    svc.Settings,
		DefaultUser: cfg.User,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
		},
	}

	// Accounts and the API both need a signing secret; the rest of the CLI does not.
	var ids *identity.Local
	if cfg.RequireSessionSecret() == nil {
		ids, err = identity.NewLocal(database, uow, identity.LocalConfig{
			Secret: []byte(cfg.SessionSecret),
			TTL:    cfg.SessionTTL,
			Logger: logger,
		})
		if err != nil {
			return err
		}
		app.Identity = ids
	}

	app.Serve = func(ctx context.Context) error {
		if ids == nil {
			return cfg.RequireSessionSecret()
		}
		srv := httpapi.NewServer(httpapi.Config{
			ListenAddr:  cfg.ListenAddr,
			CORSOrigins: cfg.CORSOriginList(),
			RateLimit: httpapi.RateLimitConfig{
				RPS:   cfg.RateLimitRPS,
				Burst: cfg.RateLimitBurst,
			},
			SecureCookies: !cfg.IsDevelopment(),
		}, svc, ids, m, database.PingContext, logger)

		logger.Info().
			Str("environment", cfg.Environment).
			Str("addr", cfg.ListenAddr).
			Str("db", dbPath).
			Msg("starting hive")

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Listen() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("http server shutdown error")
			return err
		}
		logger.Info().Msg("hive stopped")
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
