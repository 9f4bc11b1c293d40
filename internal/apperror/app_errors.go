package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already taken")
	ErrInvalidCell  = errors.New("invalid cell number")

	ErrInvalidDimension = errors.New("board width and height must be at least 1")
	ErrInvalidRunLength = errors.New("run length must be at least 1")
	ErrNoPlayers        = errors.New("at least one player is required")
	ErrInvalidMarker    = errors.New("player marker must be a single non-blank character")
	ErrDuplicateMarker  = errors.New("player marker is used more than once")

	ErrNotANumber     = errors.New("not a valid cell number")
	ErrCellOutOfRange = errors.New("cell number is out of range")
	ErrInputClosed    = errors.New("input closed")

	ErrScoreboardUnavailable = errors.New("scoreboard requires redis storage")
)
