// @title DevHabit API
// @description Read API over tracked habits
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/limbo/devhabit/internal/api"
	"github.com/limbo/devhabit/internal/migrations"
	"github.com/limbo/devhabit/internal/repository"
	"github.com/limbo/devhabit/internal/service"
	"github.com/limbo/devhabit/pkg/cleanup"
	"github.com/limbo/devhabit/pkg/config"
	"github.com/limbo/devhabit/pkg/logger"
)

func main() {
	cfg := config.New()
	log := logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}
	cleanup.CleanUp()
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	repo, migrator, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	serv := api.New(&api.ServicesList{
		HabitsService: service.NewHabitsService(repo),
	}, api.WithRequestTimeout(cfg.RequestTimeout))
	if err = serv.Start(ctx, migrator, log); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.APIAddress), slog.String("store", cfg.StoreDriver))
		errCh <- serv.Run(cfg.APIAddress)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err = serv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return <-errCh
}

// openStore connects the configured store and returns its repository together
// with a migrator bound to the same database.
func openStore(ctx context.Context, cfg *config.Config) (repository.HabitsRepositoryI, migrations.Migrator, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		db, err := repository.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		migrator, err := migrations.NewMigrator(migrations.SQLite, db)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLiteHabitsRepo(db), migrator, nil
	default:
		pool, err := repository.NewPgPool(ctx, &repository.PGCfg{
			Address:  cfg.PostgresAddress,
			Username: cfg.PostgresUser,
			Password: cfg.PostgresPassword,
			DB:       cfg.PostgresDB,
		})
		if err != nil {
			return nil, nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		cleanup.Register(&cleanup.Job{
			Name: "closing migrations db handle",
			F:    db.Close,
		})
		migrator, err := migrations.NewMigrator(migrations.Postgres, db)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewHabitsRepoWithConn(pool), migrator, nil
	}
}
