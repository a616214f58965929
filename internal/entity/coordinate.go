package entity

import (
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/apperror"
)

const BoardSize = 8

// Coordinate - a board position, X is the column and Y is the row.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewCoordinate - builds a coordinate, rejecting anything outside the board.
func NewCoordinate(x, y int) (Coordinate, error) {
	coord := Coordinate{X: x, Y: y}
	if !coord.IsValid() {
		return Coordinate{}, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, coord)
	}

	return coord, nil
}

func (that Coordinate) IsValid() bool {
	return that.X >= 0 && that.X < BoardSize && that.Y >= 0 && that.Y < BoardSize
}

func (that Coordinate) String() string {
	return fmt.Sprintf("%d,%d", that.X, that.Y)
}
