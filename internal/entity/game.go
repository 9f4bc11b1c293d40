package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

type Game struct {
	ID        string  `json:"id"`
	Board     *Board  `json:"board"`
	Players   Players `json:"players"`
	RunLength int     `json:"run_length"`
	Turn      string  `json:"player_turn"`
	Winner    string  `json:"winner"`
	Status    string  `json:"status"`
	Moves     int     `json:"moves"`
}

// NewGame - creates a game waiting for the first player's move.
func NewGame(id string, width, height, runLength int, players Players) (*Game, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}

	if runLength < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidRunLength, runLength)
	}

	if err = players.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		ID:        id,
		Board:     board,
		Players:   players,
		RunLength: runLength,
		Turn:      players[0],
		Status:    StatusOngoing,
	}, nil
}

func (that *Game) NextPlayer(current string) string {
	return that.Players.Next(current)
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if cell < 1 || cell > that.Board.Size() {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if !that.Board.IsAvailable(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board.PlaceMark(cell, playerMark)
	that.Moves++

	that.UpdateGameState(playerMark)

	return nil
}

// UpdateGameState - checks victory for the player who just moved before
// checking for a draw, so a winning move on the last free cell is a win.
func (that *Game) UpdateGameState(playerMark string) {
	switch {
	// the player who just moved wins
	case that.Board.CheckVictory(playerMark, that.RunLength):
		that.Winner = playerMark
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case that.Board.IsFull():
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
		that.Turn = that.NextPlayer(playerMark)
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}
