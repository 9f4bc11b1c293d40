package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	EmptyCell = " "

	// OutOfBounds is returned by NextCell when a move leaves the grid.
	OutOfBounds = -1
)

// Direction is a (dx, dy) step on the grid.
type Direction struct {
	DX, DY int
}

// Directions scanned by CheckVictory. Together they cover every horizontal,
// vertical and diagonal line without scanning any of them in reverse.
var Directions = []Direction{
	{DX: 1, DY: 0},  // right
	{DX: 1, DY: 1},  // down-right
	{DX: 0, DY: 1},  // down
	{DX: -1, DY: 1}, // down-left
}

// Board is a Width x Height grid stored row by row.
// Cells are addressed by a 1-based cell number, top left = 1.
type Board struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  []string `json:"cells"`
}

// NewBoard - creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimension, width, height)
	}

	cells := make([]string, width*height)
	for i := range cells {
		cells[i] = EmptyCell
	}

	return &Board{
		Width:  width,
		Height: height,
		Cells:  cells,
	}, nil
}

// Size - number of cells on the board.
func (that *Board) Size() int {
	return that.Width * that.Height
}

// String - renders the board with every cell prefixed by its number.
func (that *Board) String() string {
	idxPad := len(strconv.Itoa(that.Size()))

	columns := make([]string, that.Width)
	for i := range columns {
		columns[i] = strings.Repeat("-", 3+idxPad)
	}
	rowSep := "\n" + strings.Join(columns, "-+-") + "\n"

	rows := make([]string, 0, that.Height)
	cells := make([]string, that.Width)
	for r := 0; r < that.Height; r++ {
		for c := 0; c < that.Width; c++ {
			idx := r*that.Width + c
			cells[c] = fmt.Sprintf("%*d: %s", idxPad, idx+1, that.Cells[idx])
		}
		rows = append(rows, strings.Join(cells, " | "))
	}

	return strings.Join(rows, rowSep)
}

// IsFull - true when no more marker can be placed.
func (that *Board) IsFull() bool {
	for _, cell := range that.Cells {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// PlaceMark - puts marker on the given cell. Cells outside the board are ignored.
// Occupancy is not checked here.
func (that *Board) PlaceMark(cell int, marker string) {
	if !that.inRange(cell) {
		return
	}

	that.Cells[cell-1] = marker
}

// IsAvailable - true when the cell is on the board and still empty.
func (that *Board) IsAvailable(cell int) bool {
	return that.HasMarkAt(cell, EmptyCell)
}

// HasMarkAt - true when the cell is on the board and bears marker.
func (that *Board) HasMarkAt(cell int, marker string) bool {
	return that.inRange(cell) && that.Cells[cell-1] == marker
}

// NextCell - cell number reached by moving dx columns and dy rows from cell,
// or OutOfBounds if the move leaves the board.
func (that *Board) NextCell(cell, dx, dy int) int {
	if !that.inRange(cell) {
		return OutOfBounds
	}

	x, y := that.coordinates(cell)
	x += dx
	y += dy

	if x < 0 || x >= that.Width || y < 0 || y >= that.Height {
		return OutOfBounds
	}

	return y*that.Width + x + 1
}

// CheckRun - true when count cells, starting at cell and stepping by (dx, dy),
// all bear marker. A zero count always holds, whatever the cell.
func (that *Board) CheckRun(cell int, marker string, dx, dy, count int) bool {
	if count == 0 {
		return true
	}

	return that.HasMarkAt(cell, marker) && that.CheckRun(that.NextCell(cell, dx, dy), marker, dx, dy, count-1)
}

// CheckVictory - true when marker has runLength consecutive cells on a row,
// a column or a diagonal. Every cell bearing marker is tried as a run start.
func (that *Board) CheckVictory(marker string, runLength int) bool {
	for idx, value := range that.Cells {
		if value != marker {
			continue
		}

		for _, d := range Directions {
			if that.CheckRun(idx+1, marker, d.DX, d.DY, runLength) {
				return true
			}
		}
	}

	return false
}

func (that *Board) inRange(cell int) bool {
	return cell >= 1 && cell <= len(that.Cells)
}

// coordinates - 0-based (x, y) of a valid cell number.
func (that *Board) coordinates(cell int) (int, int) {
	idx := cell - 1
	return idx % that.Width, idx / that.Width
}
