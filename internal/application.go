package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/azuree0/Game-of-Ur/internal/config"
	"github.com/azuree0/Game-of-Ur/internal/pkg"
	"github.com/azuree0/Game-of-Ur/internal/repository"
	"github.com/azuree0/Game-of-Ur/internal/repository/storage"
	"github.com/azuree0/Game-of-Ur/internal/ur"
	"github.com/azuree0/Game-of-Ur/internal/usecase"
	"github.com/azuree0/Game-of-Ur/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	dice, err := newDice(conf.Game.DiceSeed)
	if err != nil {
		return fmt.Errorf("could not create dice: %w", err)
	}

	sessionRepo := repository.NewSessionRepository(redisStorage, conf.Game.SessionTTL)
	gameUseCase := usecase.NewGameUseCase(logger, sessionRepo, dice, conf.Game.AutoPass)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "autoPass", conf.Game.AutoPass)

	if err = rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameUseCase)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// newDice - a fixed seed gives a reproducible dice sequence, 0 seeds from crypto/rand.
func newDice(seed uint64) (*ur.Dice, error) {
	if seed == 0 {
		var err error
		if seed, err = pkg.NewSeed(); err != nil {
			return nil, err
		}
	}

	return ur.NewSeededDice(seed), nil
}
