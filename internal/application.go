package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the console game until the player quits or a signal arrives.
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
			// a pending console read is not interrupted, a second signal kills the process
			signal.Stop(sigs)
		case <-ctx.Done():
		}
	}()

	scoreRepo, closeRepo, err := newScoreRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close score storage", "error", closeErr)
		}
	}()

	seed := conf.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("random source seeded", "seed", seed)

	botService := service.NewBotService(logger, rand.New(rand.NewSource(seed))) //nolint: gosec // game randomness
	scoreService := service.NewScoreService(scoreRepo)
	ui := console.New(os.Stdin, os.Stdout)
	gameController := tictactoe.NewGameController(logger, ui, botService, scoreService)

	if err = gameController.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("game error: %w", err)
	}

	return nil
}

// newScoreRepository picks redis when it is enabled and an in-memory tally otherwise.
func newScoreRepository(ctx context.Context, conf *config.Config) (repository.ScoreRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryScoreRepository(), func() error { return nil }, nil
	}

	if conf.Redis.Host == "" || conf.Redis.Port == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewScoreRepository(redisStorage), redisStorage.Close, nil
}
