package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/reversi/internal/config"
	"github.com/rocketscienceinc/reversi/internal/repository"
	"github.com/rocketscienceinc/reversi/internal/repository/storage"
	"github.com/rocketscienceinc/reversi/internal/usecase"
	"github.com/rocketscienceinc/reversi/transport/console"
)

var ErrUnknownStorageDriver = errors.New("unknown storage driver")

// RunApp - runs one console game on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	resultRepo, closer, err := openResultRepository(ctx, conf)
	if err != nil {
		return err
	}

	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Error("could not close storage", "error", err)
			}
		}()
	}

	gameManager := usecase.NewGameManager(logger, resultRepo)

	if err = console.New(logger, gameManager, conf.HistorySize).Run(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("console game failed: %w", err)
	}

	return nil
}

// openResultRepository - connects the configured storage. Both results are nil when history is off.
func openResultRepository(ctx context.Context, conf *config.Config) (repository.ResultRepository, io.Closer, error) {
	switch conf.Storage.Driver {
	case config.StorageNone, "":
		return nil, nil, nil
	case config.StorageRedis:
		redisStorage, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewResultRepository(redisStorage), redisStorage, nil
	case config.StorageSQLite:
		path, err := conf.SQLite.GetPath()
		if err != nil {
			return nil, nil, fmt.Errorf("could not resolve sqlite path: %w", err)
		}

		sqliteStorage, err := storage.NewSQLite(path)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		return repository.NewSQLiteResultRepository(sqliteStorage.Connection), sqliteStorage, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, conf.Storage.Driver)
	}
}
