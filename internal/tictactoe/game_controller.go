package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type gameManager interface {
	NewGame(ctx context.Context) (*entity.Game, error)
	MakeTurn(ctx context.Context, game *entity.Game, cell int) error
}

type inputLine struct {
	text string
	err  error
}

// GameController - plays one game on a console: renders the board, asks the players for cells and announces the result.
type GameController struct {
	logger  *slog.Logger
	manager gameManager

	in        io.Reader
	out       io.Writer
	lines     chan inputLine
	done      chan struct{}
	stopped   chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

func NewGameController(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *GameController {
	return &GameController{
		logger:  logger.With("component", "game_controller"),
		manager: manager,

		in:      in,
		out:     out,
		lines:   make(chan inputLine),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Play - runs a game until it is won or drawn and returns the finished game.
// On error the game played so far is returned along with it.
// The input is read for one game only, answers left after it are dropped.
func (that *GameController) Play(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "Play")

	defer that.stopReading()

	game, err := that.manager.NewGame(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	log.Info("game started", "gameID", game.ID)

	for game.IsOngoing() {
		fmt.Fprintln(that.out, game.Board)

		cell, err := that.promptCell(ctx, game)
		if err != nil {
			return game, err
		}

		if err = that.manager.MakeTurn(ctx, game, cell); err != nil {
			return game, err
		}
	}

	fmt.Fprintln(that.out, game.Board)

	if game.IsDraw() {
		fmt.Fprintln(that.out, "It's a draw!")
	} else {
		fmt.Fprintf(that.out, "Congratulations %s, you won!\n", game.Winner)
	}

	return game, nil
}

// promptCell - asks the current player for a cell until the answer names a free cell of the board.
func (that *GameController) promptCell(ctx context.Context, game *entity.Game) (int, error) {
	size := game.Board.Size()

	for {
		fmt.Fprintf(that.out, "Player %s, please choose a cell number [1 - %d]: ", game.Turn, size)

		text, err := that.readLine(ctx)
		if err != nil {
			return 0, err
		}

		cell, err := ParseCellChoice(game.Board, text)
		if err == nil {
			return cell, nil
		}

		that.logger.Debug("invalid cell choice", "gameID", game.ID, "player", game.Turn, "input", text, "error", err)

		input := strings.TrimSpace(text)

		switch {
		case errors.Is(err, apperror.ErrNotANumber):
			fmt.Fprintf(that.out, "Sorry, but \"%s\" is not a valid cell number. Please try again.\n", input)
		case errors.Is(err, apperror.ErrCellOutOfRange):
			fmt.Fprintf(that.out, "Sorry, but \"%s\" is out of range [1 - %d]. Please try again.\n", input, size)
		case errors.Is(err, apperror.ErrCellOccupied):
			fmt.Fprintf(that.out, "Sorry, but \"%s\" cell is already taken. Please choose another one.\n", input)
		default:
			return 0, err
		}
	}
}

// readLine - waits for the next input line or for ctx to be done, whichever comes first.
func (that *GameController) readLine(ctx context.Context) (string, error) {
	that.startOnce.Do(func() {
		go that.scanLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		return line.text, line.err
	}
}

func (that *GameController) stopReading() {
	that.stopOnce.Do(func() {
		close(that.done)
	})
}

// scanLines - feeds input lines to readLine until the input ends or the game is over.
// Lines have no length limit, an oversized answer is rejected like any other.
func (that *GameController) scanLines() {
	defer close(that.stopped)
	defer close(that.lines)

	reader := bufio.NewReader(that.in)

	for {
		text, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			that.send(inputLine{err: fmt.Errorf("failed to read input: %w", err)})
			return
		}

		// the last line may come without a line break
		if text != "" && !that.send(inputLine{text: strings.TrimRight(text, "\r\n")}) {
			return
		}

		if err != nil {
			return
		}
	}
}

func (that *GameController) send(line inputLine) bool {
	select {
	case that.lines <- line:
		return true
	case <-that.done:
		return false
	}
}

// ParseCellChoice - converts a console answer into a free cell number of board.
func ParseCellChoice(board *entity.Board, input string) (int, error) {
	input = strings.TrimSpace(input)

	if input == "" || strings.TrimLeft(input, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotANumber, input)
	}

	cell, err := strconv.Atoi(input)
	if err != nil || cell < 1 || cell > board.Size() {
		return 0, fmt.Errorf("%w: %q", apperror.ErrCellOutOfRange, input)
	}

	if !board.IsAvailable(cell) {
		return 0, fmt.Errorf("%w: %d", apperror.ErrCellOccupied, cell)
	}

	return cell, nil
}
