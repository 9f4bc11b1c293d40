package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	game, err := NewGame("123", 3, 3, 3, Players{PlayerX, PlayerO})
	require.NoError(t, err)

	return game
}

func TestNewGame(t *testing.T) {
	t.Run("Creates an ongoing game with the first player to move", func(t *testing.T) {
		// When: a new 3x3 game is created
		game := newTestGame(t)

		// Then: the game is ongoing and X moves first
		assert.Equal(t, "123", game.ID)
		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Empty(t, game.Winner)
		assert.Zero(t, game.Moves)
		assert.Equal(t, 3, game.RunLength)
		assert.Len(t, game.Board.Cells, 9)
	})

	t.Run("Returns ErrInvalidDimension for an empty board", func(t *testing.T) {
		_, err := NewGame("123", 0, 3, 3, Players{PlayerX, PlayerO})

		assert.ErrorIs(t, err, apperror.ErrInvalidDimension)
	})

	t.Run("Returns ErrInvalidRunLength for a zero run length", func(t *testing.T) {
		_, err := NewGame("123", 3, 3, 0, Players{PlayerX, PlayerO})

		assert.ErrorIs(t, err, apperror.ErrInvalidRunLength)
	})

	t.Run("Returns ErrNoPlayers without players", func(t *testing.T) {
		_, err := NewGame("123", 3, 3, 3, nil)

		assert.ErrorIs(t, err, apperror.ErrNoPlayers)
	})
}

func TestGame_NextPlayer(t *testing.T) {
	// Given: a game with three players
	game, err := NewGame("123", 3, 3, 3, Players{"X", "O", "#"})
	require.NoError(t, err)

	// Then: turns follow the list and wrap around
	assert.Equal(t, "O", game.NextPlayer("X"))
	assert.Equal(t, "#", game.NextPlayer("O"))
	assert.Equal(t, "X", game.NextPlayer("#"))
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := newTestGame(t)

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 1)
		require.NoError(t, err)

		// Then: The mark is placed and the turn passes to O
		assert.Equal(t, PlayerX, game.Board.Cells[0])
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, 1, game.Moves)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 1 is occupied by Player X
		game := newTestGame(t)
		require.NoError(t, game.MakeTurn(PlayerX, 1))

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(PlayerO, 1)

		// Then: An ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: The game state should remain unchanged
		assert.Equal(t, PlayerX, game.Board.Cells[0])
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, 1, game.Moves)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := newTestGame(t)

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, 2)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, EmptyCell, game.Board.Cells[1])
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Error on Invalid Cell Number", func(t *testing.T) {
		for _, cell := range []int{0, 10, -1} {
			// Given: A new game
			game := newTestGame(t)

			// When: An invalid cell number is passed
			err := game.MakeTurn(PlayerX, cell)

			// Then: An ErrInvalidCell error should be returned
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		}
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: A game that is already finished
		game := newTestGame(t)
		game.Status = StatusFinished
		game.Winner = PlayerX

		// When: a player tries to move
		err := game.MakeTurn(PlayerX, 5)

		// Then: an ErrGameFinished error should be returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Win is detected right after the third mark", func(t *testing.T) {
		// Given: A new game
		game := newTestGame(t)

		// When: X plays 1, 2, 3 while O plays 4, 5
		for _, move := range []struct {
			mark string
			cell int
		}{{PlayerX, 1}, {PlayerO, 4}, {PlayerX, 2}, {PlayerO, 5}, {PlayerX, 3}} {
			require.NoError(t, game.MakeTurn(move.mark, move.cell))
		}

		// Then: X wins and no one has the turn
		assert.True(t, game.IsFinished())
		assert.Equal(t, PlayerX, game.Winner)
		assert.Empty(t, game.Turn)
		assert.False(t, game.IsDraw())

		// And: no further move is accepted
		assert.ErrorIs(t, game.MakeTurn(PlayerO, 6), apperror.ErrGameFinished)
	})

	t.Run("Winning move on the last free cell is a win", func(t *testing.T) {
		// Given: a board where X completes the right column on the last free cell
		game := newTestGame(t)
		game.Board.Cells = []string{
			PlayerO, PlayerX, PlayerX,
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, EmptyCell,
		}
		game.Turn = PlayerX

		// When: X plays the last cell
		require.NoError(t, game.MakeTurn(PlayerX, 9))

		// Then: X is reported as the winner, not a draw
		assert.Equal(t, PlayerX, game.Winner)
		assert.False(t, game.IsDraw())
	})

	t.Run("Full board without a winner is a draw", func(t *testing.T) {
		// Given: a board one move away from a draw
		game := newTestGame(t)
		game.Board.Cells = []string{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerX,
			PlayerO, PlayerX, EmptyCell,
		}
		game.Turn = PlayerO

		// When: O plays the last cell
		require.NoError(t, game.MakeTurn(PlayerO, 9))

		// Then: the game ends in a tie
		assert.True(t, game.IsDraw())
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, StatusFinished, game.Status)
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Victory is checked only for the player who moved", func(t *testing.T) {
		// Given: a board where O already has a row but X just moved
		game := newTestGame(t)
		game.Board.Cells = []string{
			PlayerO, PlayerO, PlayerO,
			PlayerX, EmptyCell, EmptyCell,
			PlayerX, EmptyCell, EmptyCell,
		}

		// When: updating the state after X's move
		game.UpdateGameState(PlayerX)

		// Then: the game goes on and O has the turn
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Empty(t, game.Winner)
		assert.Equal(t, PlayerO, game.Turn)
	})
}
