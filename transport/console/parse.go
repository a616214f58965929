package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

// ParseCoordinate - parses "column,row" text. Anything malformed or off the board is ErrInvalidInput.
func ParseCoordinate(input string) (entity.Coordinate, error) {
	fields := strings.Split(input, ",")
	if len(fields) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: expected \"column,row\", got %q", apperror.ErrInvalidInput, input)
	}

	x, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	y, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, fields[1])
	}

	coord, err := entity.NewCoordinate(x, y)
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: %w", apperror.ErrInvalidInput, err)
	}

	return coord, nil
}
