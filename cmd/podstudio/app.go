package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/podstudio/internal/config"
	"github.com/nikolayk812/podstudio/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// env is built once per invocation in the app's Before hook.
type env struct {
	cfg    config.Config
	logger *logrus.Logger
}

func newApp() *cli.App {
	e := &env{}

	return &cli.App{
		Name:  "podstudio",
		Usage: "print-on-demand customization studio",
		Description: "Configuration is read from PODSTUDIO_* environment variables, " +
			"e.g. PODSTUDIO_DATABASE_URL and PODSTUDIO_LOG_LEVEL.",
		Before: e.load,
		Commands: []*cli.Command{
			migrateCommand(e),
			seedCommand(e),
			areasCommand(),
			productsCommand(e),
			designsCommand(e),
			customizeCommand(e),
			cartCommand(e),
			checkoutCommand(e),
			threadCommand(e),
			notificationsCommand(e),
		},
	}
}

func (e *env) load(*cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logging.New: %w", err)
	}

	e.cfg = cfg
	e.logger = logger

	return nil
}

func (e *env) connect(ctx context.Context) (*pgxpool.Pool, error) {
	if err := e.cfg.RequireDatabase(); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, e.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}
