package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("coordinate is out of range")
	ErrOccupied     = errors.New("cell is already occupied")
	ErrNoCaptures   = errors.New("placement captures no discs")
	ErrInvalidInput = errors.New("invalid input")

	ErrGameFinished   = errors.New("game is already finished")
	ErrResultNotFound = errors.New("result not found")
)
