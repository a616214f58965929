package entity

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/reversi/internal/apperror"
)

const renderHeader = "  0 1 2 3 4 5 6 7"

var directions = [8]struct{ dx, dy int }{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board - the 8x8 grid, indexed as cells[y][x].
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// NewBoard - returns a board with the four starting discs in the center.
func NewBoard() *Board {
	board := &Board{}

	board.cells[3][3].Put(Black)
	board.cells[3][4].Put(White)
	board.cells[4][3].Put(White)
	board.cells[4][4].Put(Black)

	return board
}

// IsEmpty - reports whether the cell holds no disc. The coordinate must be valid.
func (that *Board) IsEmpty(coord Coordinate) bool {
	return that.cell(coord).IsEmpty()
}

// ColorAt - returns the disc color at coord, false when the cell is empty or coord is off the board.
func (that *Board) ColorAt(coord Coordinate) (Color, bool) {
	if !coord.IsValid() {
		return 0, false
	}

	return that.cell(coord).Color()
}

// FindCaptures - returns every opposing disc that placing color at origin would flip.
// The board is not modified.
func (that *Board) FindCaptures(color Color, origin Coordinate) []Coordinate {
	if !origin.IsValid() || !that.IsEmpty(origin) {
		return nil
	}

	var captures []Coordinate

	for _, dir := range directions {
		captures = append(captures, that.capturesInDirection(color, origin, dir.dx, dir.dy)...)
	}

	return captures
}

// capturesInDirection - walks from origin by (dx, dy) and returns the run of opposing discs
// closed by an anchor of color, or nil when the run is not closed.
func (that *Board) capturesInDirection(color Color, origin Coordinate, dx, dy int) []Coordinate {
	var run []Coordinate

	current := origin
	for step := 1; step < BoardSize; step++ {
		next, err := NewCoordinate(current.X+dx, current.Y+dy)
		if err != nil {
			return nil
		}

		disc, occupied := that.cell(next).Color()
		switch {
		case !occupied:
			return nil
		case disc == color:
			return run
		default:
			run = append(run, next)
		}

		current = next
	}

	return nil
}

// Place - puts a disc of color at origin and flips the captured discs.
// On error the board is left untouched.
func (that *Board) Place(color Color, origin Coordinate) ([]Coordinate, error) {
	if !origin.IsValid() {
		return nil, apperror.ErrOutOfRange
	}

	if !that.IsEmpty(origin) {
		return nil, apperror.ErrOccupied
	}

	captures := that.FindCaptures(color, origin)
	if len(captures) == 0 {
		return nil, apperror.ErrNoCaptures
	}

	that.cell(origin).Put(color)
	for _, coord := range captures {
		that.cell(coord).Flip()
	}

	return captures, nil
}

// LegalMoves - returns every empty coordinate where color captures at least one disc, row by row.
func (that *Board) LegalMoves(color Color) []Coordinate {
	var moves []Coordinate

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			coord := Coordinate{X: x, Y: y}
			if len(that.FindCaptures(color, coord)) > 0 {
				moves = append(moves, coord)
			}
		}
	}

	return moves
}

func (that *Board) CountColor(color Color) int {
	count := 0

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if disc, occupied := that.cells[y][x].Color(); occupied && disc == color {
				count++
			}
		}
	}

	return count
}

func (that *Board) CountDiscs() int {
	return that.CountColor(Black) + that.CountColor(White)
}

// Render - formats the board as text lines: the column header, then one line per row.
func (that *Board) Render() []string {
	lines := make([]string, 0, BoardSize+1)
	lines = append(lines, renderHeader)

	for y := 0; y < BoardSize; y++ {
		var line strings.Builder

		line.WriteString(strconv.Itoa(y))
		for x := 0; x < BoardSize; x++ {
			line.WriteString("|")
			line.WriteString(that.cells[y][x].Glyph())
		}
		line.WriteString("|")

		lines = append(lines, line.String())
	}

	return lines
}

func (that *Board) cell(coord Coordinate) *Cell {
	return &that.cells[coord.Y][coord.X]
}
