// Package app wires configuration, storage, services and the console into one process.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/bakery-pos/internal/auth"
	"github.com/nikolayk812/bakery-pos/internal/config"
	"github.com/nikolayk812/bakery-pos/internal/console"
	"github.com/nikolayk812/bakery-pos/internal/migrations"
	"github.com/nikolayk812/bakery-pos/internal/repository"
	"github.com/nikolayk812/bakery-pos/internal/service"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/crypto/bcrypt"
)

// Run parses args, connects to PostgreSQL and serves the console on stdin and stdout
// until the user exits, stdin is closed or ctx is cancelled.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Parse(args, os.LookupEnv, os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("config.Parse: %w", err)
	}

	if cfg.HashPassword != "" {
		hash, err := auth.Hash(cfg.HashPassword, bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, hash)
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	if cfg.Migrate {
		applied, err := migrations.Apply(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrations.Apply: %w", err)
		}
		logger.Info("migrations applied", zap.Strings("scripts", applied))
	}

	c, err := newConsole(cfg, pool, stdin, stdout, logger)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()

	// a console blocked on stdin does not observe ctx, so do not wait for it
	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down", zap.Error(context.Cause(ctx)))
		return nil
	}
}

func newConsole(cfg config.Config, pool *pgxpool.Pool, stdin io.Reader, stdout io.Writer, logger *zap.Logger) (*console.Console, error) {
	catalog, err := repository.NewCatalog(pool, cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("repository.NewCatalog: %w", err)
	}

	sales, err := repository.NewSales(pool)
	if err != nil {
		return nil, fmt.Errorf("repository.NewSales: %w", err)
	}

	builder, err := service.NewCartBuilder(catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("service.NewCartBuilder: %w", err)
	}

	checkout, err := service.NewCheckout(sales, logger)
	if err != nil {
		return nil, fmt.Errorf("service.NewCheckout: %w", err)
	}

	admin, err := service.NewAdmin(catalog, sales, cfg.Currency, logger)
	if err != nil {
		return nil, fmt.Errorf("service.NewAdmin: %w", err)
	}

	authenticator, err := auth.New(cfg.AdminPasswordHash)
	if err != nil {
		return nil, fmt.Errorf("auth.New: %w", err)
	}
	if !authenticator.Enabled() {
		logger.Warn("admin password hash is not configured, admin login is disabled")
	}

	return console.New(stdin, stdout, console.Services{
		Shop:  builder,
		Till:  checkout,
		Admin: admin,
		Auth:  authenticator,
	}, cfg.ChartPath, logger)
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("zcfg.Build: %w", err)
	}
	return logger, nil
}
