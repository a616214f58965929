package reversi

import (
	"fmt"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

const (
	StatusInProgress = "in_progress"
	StatusOver       = "over"
)

// StartingColor - the color that moves first.
const StartingColor = entity.White

// Session - one game: the board, whose turn it is and the bookkeeping needed to end it.
// A session is not safe for concurrent use.
type Session struct {
	id     string
	board  *entity.Board
	turn   entity.Color
	status string

	moves             int
	passes            int
	consecutivePasses int
}

func NewSession(id string) *Session {
	return &Session{
		id:     id,
		board:  entity.NewBoard(),
		turn:   StartingColor,
		status: StatusInProgress,
	}
}

func (that *Session) ID() string {
	return that.id
}

func (that *Session) Turn() entity.Color {
	return that.turn
}

func (that *Session) Status() string {
	return that.status
}

// Board - returns a copy of the current board.
func (that *Session) Board() entity.Board {
	return *that.board
}

// AttemptMove - places a disc for the side to move. The turn advances only on success.
func (that *Session) AttemptMove(coord entity.Coordinate) ([]entity.Coordinate, error) {
	if that.IsOver() {
		return nil, apperror.ErrGameFinished
	}

	captures, err := that.board.Place(that.turn, coord)
	if err != nil {
		return nil, fmt.Errorf("%s at %s: %w", that.turn, coord, err)
	}

	that.moves++
	that.consecutivePasses = 0
	that.switchTurn()

	return captures, nil
}

// Pass - gives the turn to the opponent without touching the board.
func (that *Session) Pass() error {
	if that.IsOver() {
		return apperror.ErrGameFinished
	}

	that.passes++
	that.consecutivePasses++
	that.switchTurn()

	return nil
}

// End - marks the game as over. Calling it again has no effect.
func (that *Session) End() {
	that.status = StatusOver
}

func (that *Session) IsOver() bool {
	return that.status == StatusOver
}

func (that *Session) FinalScore() entity.Score {
	return entity.NewScore(that.board.CountColor(entity.Black), that.board.CountColor(entity.White))
}

// LegalMoves - placements available to the side to move.
func (that *Session) LegalMoves() []entity.Coordinate {
	return that.board.LegalMoves(that.turn)
}

func (that *Session) HasLegalMove(color entity.Color) bool {
	return len(that.board.LegalMoves(color)) > 0
}

// Blocked - reports whether neither side can place a disc.
func (that *Session) Blocked() bool {
	return !that.HasLegalMove(entity.Black) && !that.HasLegalMove(entity.White)
}

func (that *Session) Moves() int {
	return that.moves
}

func (that *Session) Passes() int {
	return that.passes
}

func (that *Session) ConsecutivePasses() int {
	return that.consecutivePasses
}

func (that *Session) switchTurn() {
	that.turn = that.turn.Opposite()
}
