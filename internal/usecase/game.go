package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/azuree0/Game-of-Ur/internal/apperror"
	"github.com/azuree0/Game-of-Ur/internal/entity"
	"github.com/azuree0/Game-of-Ur/internal/pkg"
	"github.com/azuree0/Game-of-Ur/internal/ur"
)

type GameUseCase interface {
	NewGame(ctx context.Context) (*entity.GameView, error)
	GetGame(ctx context.Context, gameID string) (*entity.GameView, error)
	EndGame(ctx context.Context, gameID string) error

	Roll(ctx context.Context, gameID string) (*entity.GameView, error)
	Move(ctx context.Context, gameID string, path int) (*entity.GameView, error)
	Pass(ctx context.Context, gameID string) (*entity.GameView, error)
	Reset(ctx context.Context, gameID string) (*entity.GameView, error)

	PathForSquare(ctx context.Context, gameID string, index int, player ur.Player) (int, bool, error)
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameUseCase struct {
	logger *slog.Logger

	repo     sessionRepo
	dice     ur.Roller
	autoPass bool
	now      func() time.Time

	// one operation at a time: the rules state is single-threaded and every
	// operation is a load-apply-store round trip
	mu sync.Mutex
}

func NewGameUseCase(logger *slog.Logger, repo sessionRepo, dice ur.Roller, autoPass bool) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game"),
		repo:     repo,
		dice:     dice,
		autoPass: autoPass,
		now:      time.Now,
	}
}

func (that *gameUseCase) NewGame(ctx context.Context) (*entity.GameView, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := ur.New(that.dice)
	session := entity.NewSession(gameID, game, that.now())

	if err = that.repo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", gameID)

	return entity.NewGameView(gameID, game), nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, game, err := that.load(ctx, gameID)
	if err != nil {
		return nil, err
	}

	return entity.NewGameView(gameID, game), nil
}

func (that *gameUseCase) EndGame(ctx context.Context, gameID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.repo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

// Roll throws the dice for the current player. With auto-pass enabled a roll
// that leaves no legal move hands the turn over straight away.
func (that *gameUseCase) Roll(ctx context.Context, gameID string) (*entity.GameView, error) {
	log := that.logger.With("method", "Roll", "gameID", gameID)
	passed := false

	view, err := that.update(ctx, gameID, func(game *ur.Game) error {
		player := game.CurrentPlayer()

		value, err := game.RollDice()
		if err != nil {
			return fmt.Errorf("failed to roll dice: %w", err)
		}

		log.Debug("dice rolled", "player", player, "dice", value)

		if !that.autoPass || len(game.ValidMoves()) > 0 {
			return nil
		}

		if err = game.PassTurn(); err != nil {
			return fmt.Errorf("failed to pass turn: %w", err)
		}

		passed = true
		log.Info("no legal move, turn passed", "player", player, "dice", value)

		return nil
	})
	if err != nil {
		return nil, err
	}

	view.Passed = passed

	return view, nil
}

func (that *gameUseCase) Move(ctx context.Context, gameID string, path int) (*entity.GameView, error) {
	log := that.logger.With("method", "Move", "gameID", gameID)

	return that.update(ctx, gameID, func(game *ur.Game) error {
		player, dice := game.CurrentPlayer(), game.DiceValue()

		if err := game.MakeMove(path); err != nil {
			return fmt.Errorf("failed to make move: %w", err)
		}

		log.Debug("piece moved", "player", player, "path", path, "dice", dice)

		if winner, over := game.Winner(); over {
			log.Info("game finished", "winner", winner)
		}

		return nil
	})
}

func (that *gameUseCase) Pass(ctx context.Context, gameID string) (*entity.GameView, error) {
	return that.update(ctx, gameID, func(game *ur.Game) error {
		if err := game.PassTurn(); err != nil {
			return fmt.Errorf("failed to pass turn: %w", err)
		}

		return nil
	})
}

func (that *gameUseCase) Reset(ctx context.Context, gameID string) (*entity.GameView, error) {
	return that.update(ctx, gameID, func(game *ur.Game) error {
		game.Reset()
		that.logger.Info("game reset", "gameID", gameID)

		return nil
	})
}

// PathForSquare maps a board index to player's path position within a session.
// ok is false when the square is not on that player's route.
func (that *gameUseCase) PathForSquare(ctx context.Context, gameID string, index int, player ur.Player) (int, bool, error) {
	if !player.IsValid() {
		return 0, false, fmt.Errorf("%w: unknown player", apperror.ErrInvalidArgument)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	_, game, err := that.load(ctx, gameID)
	if err != nil {
		return 0, false, err
	}

	path, ok := game.BoardIndexToPath(index, player)

	return path, ok, nil
}

// update runs one rules operation against the stored session and saves the
// result. A rejected operation stores nothing.
func (that *gameUseCase) update(ctx context.Context, gameID string, apply func(game *ur.Game) error) (*entity.GameView, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, game, err := that.load(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if err = apply(game); err != nil {
		return nil, classify(err)
	}

	session.Store(game, that.now())

	if err = that.repo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return entity.NewGameView(gameID, game), nil
}

func (that *gameUseCase) load(ctx context.Context, gameID string) (*entity.Session, *ur.Game, error) {
	session, err := that.repo.GetByID(ctx, gameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game: %w", err)
	}

	game, err := session.Restore(that.dice)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to restore game: %w", err)
	}

	return session, game, nil
}

// classify tags rules errors with the host-level error kinds the transport maps.
func classify(err error) error {
	switch {
	case errors.Is(err, ur.ErrGameOver):
		return fmt.Errorf("%w: %w", apperror.ErrGameFinished, err)
	case errors.Is(err, ur.ErrNoRoll), errors.Is(err, ur.ErrRollPending):
		return fmt.Errorf("%w: %w", apperror.ErrWrongPhase, err)
	case errors.Is(err, ur.ErrInvalidPath),
		errors.Is(err, ur.ErrNoReserve),
		errors.Is(err, ur.ErrNotYourPiece),
		errors.Is(err, ur.ErrSelfBlocked),
		errors.Is(err, ur.ErrOffRoute):
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	default:
		return err
	}
}
