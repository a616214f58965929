package entity

import "time"

const (
	OutcomeBlack = "black"
	OutcomeWhite = "white"
	OutcomeDraw  = "draw"
)

// Score - disc counts at the end of a game.
type Score struct {
	Black  int    `json:"black"`
	White  int    `json:"white"`
	Winner string `json:"winner"`
}

func NewScore(black, white int) Score {
	score := Score{Black: black, White: white}

	switch {
	case black > white:
		score.Winner = OutcomeBlack
	case white > black:
		score.Winner = OutcomeWhite
	default:
		score.Winner = OutcomeDraw
	}

	return score
}

func (that Score) IsDraw() bool {
	return that.Winner == OutcomeDraw
}

// MatchResult - summary of a finished game kept in the history store.
type MatchResult struct {
	ID         string    `json:"id"`
	Score      Score     `json:"score"`
	Moves      int       `json:"moves"`
	Passes     int       `json:"passes"`
	FinishedAt time.Time `json:"finished_at"`
}
