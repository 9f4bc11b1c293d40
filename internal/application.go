package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays one game on the console and, when redis is enabled, prints the scoreboard afterwards.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	gameRepo := repository.NewMemoryGameRepository()
	scoreRepo := repository.NewMemoryScoreRepository()

	if conf.Redis.Enabled {
		redisStorage, err := connectRedis(ctx, conf)
		if err != nil {
			return err
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		gameRepo = repository.NewGameRepository(redisStorage)
		scoreRepo = repository.NewScoreRepository(redisStorage)
	}

	gameManager := usecase.NewGameManager(logger, newSettings(conf), gameRepo, scoreRepo)
	gameController := tictactoe.NewGameController(logger, gameManager, in, out)

	if _, err := gameController.Play(ctx); err != nil {
		switch {
		case errors.Is(err, apperror.ErrInputClosed):
			log.Info("input closed before the game was over")
			return nil
		case errors.Is(err, context.Canceled):
			log.Info("game interrupted")
			return nil
		default:
			return fmt.Errorf("game failed: %w", err)
		}
	}

	if !conf.Redis.Enabled {
		return nil
	}

	scores, err := gameManager.Scoreboard(ctx)
	if err != nil {
		log.Error("could not read scoreboard", "error", err)
		return nil
	}

	fmt.Fprintln(out)
	PrintScores(out, scores)

	return nil
}

// ShowScores - prints the scoreboard stored in redis and the last finished game.
func ShowScores(logger *slog.Logger, conf *config.Config, out io.Writer) error {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled {
		return apperror.ErrScoreboardUnavailable
	}

	ctx, cancel := signalContext(log)
	defer cancel()

	redisStorage, err := connectRedis(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameManager := usecase.NewGameManager(logger, newSettings(conf),
		repository.NewGameRepository(redisStorage), repository.NewScoreRepository(redisStorage))

	scores, err := gameManager.Scoreboard(ctx)
	if err != nil {
		return err
	}

	PrintScores(out, scores)

	lastGame, err := gameManager.LastGame(ctx)
	if err != nil {
		return err
	}

	if lastGame != nil {
		fmt.Fprintln(out)
		PrintLastGame(out, lastGame)
	}

	return nil
}

// PrintLastGame - writes the final board of game followed by its result.
func PrintLastGame(out io.Writer, game *entity.Game) {
	fmt.Fprintln(out, "Last game:")
	fmt.Fprintln(out, game.Board)

	if game.IsDraw() {
		fmt.Fprintln(out, "Result: draw")
		return
	}

	fmt.Fprintf(out, "Result: %s won\n", game.Winner)
}

// PrintScores - writes one "<marker>: <wins>" line per marker sorted by marker, then the draws.
func PrintScores(out io.Writer, scores map[string]int64) {
	markers := make([]string, 0, len(scores))
	for marker := range scores {
		if marker != entity.PlayerTie {
			markers = append(markers, marker)
		}
	}

	slices.Sort(markers)

	for _, marker := range markers {
		fmt.Fprintf(out, "%s: %d\n", marker, scores[marker])
	}

	fmt.Fprintf(out, "draws: %d\n", scores[entity.PlayerTie])
}

func newSettings(conf *config.Config) usecase.Settings {
	return usecase.Settings{
		Width:     conf.Board.Width,
		Height:    conf.Board.Height,
		RunLength: conf.Board.RunLength,
		Players:   entity.Players(conf.Players),
	}
}

func connectRedis(ctx context.Context, conf *config.Config) (*redis.Client, error) {
	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return redisStorage, nil
}

func signalContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigs)
		cancel()
	}
}
