package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetLast(ctx context.Context) (*entity.Game, error)
}

type scoreRepo interface {
	Increment(ctx context.Context, marker string) error
	GetAll(ctx context.Context) (map[string]int64, error)
}

// Settings describe every game created by a GameManager.
type Settings struct {
	Width     int
	Height    int
	RunLength int
	Players   entity.Players
}

type GameManager struct {
	logger   *slog.Logger
	settings Settings

	gameRepo  gameRepo
	scoreRepo scoreRepo
}

func NewGameManager(logger *slog.Logger, settings Settings, gameRepo gameRepo, scoreRepo scoreRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		settings: settings,

		gameRepo:  gameRepo,
		scoreRepo: scoreRepo,
	}
}

// NewGame - creates a game from the manager settings. Nothing is stored until the game is finished.
func (that *GameManager) NewGame(_ context.Context) (*entity.Game, error) {
	game, err := entity.NewGame(
		uuid.NewString(),
		that.settings.Width,
		that.settings.Height,
		that.settings.RunLength,
		that.settings.Players,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "gameID", game.ID, "width", game.Board.Width, "height", game.Board.Height,
		"runLength", game.RunLength, "players", game.Players)

	return game, nil
}

// MakeTurn - plays cell for the player whose turn it is and records the result once the game is over.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, cell int) error {
	player := game.Turn

	if err := game.MakeTurn(player, cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	that.logger.Debug("turn made", "gameID", game.ID, "player", player, "cell", cell)

	if game.IsFinished() {
		if err := that.recordResult(ctx, game); err != nil {
			that.logger.Error("failed to record game result", "gameID", game.ID, "error", err)
		}
	}

	return nil
}

// Scoreboard - number of wins per marker, draws are under entity.PlayerTie.
func (that *GameManager) Scoreboard(ctx context.Context) (map[string]int64, error) {
	scores, err := that.scoreRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return scores, nil
}

// LastGame - the most recently finished game, nil when no game was recorded yet.
func (that *GameManager) LastGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameRepo.GetLast(ctx)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get last game: %w", err)
	}

	return game, nil
}

func (that *GameManager) recordResult(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "recordResult", "gameID", game.ID)

	var errs []error

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		errs = append(errs, fmt.Errorf("failed to save game: %w", err))
	}

	if err := that.scoreRepo.Increment(ctx, game.Winner); err != nil {
		errs = append(errs, fmt.Errorf("failed to update scoreboard: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info("game finished", "winner", game.Winner, "moves", game.Moves)

	return nil
}
