package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/internal/reversi"
	"github.com/rocketscienceinc/reversi/internal/usecase"
)

const (
	commandPass    = "pass"
	commandMoves   = "moves"
	commandHistory = "history"
	commandQuit    = "quit"
)

var usage = []string{
	`Enter the cell as "column,row". Example for the top-left corner: 0,0`,
	`Type "pass" to pass, "moves" to list legal moves, "history" to show finished games.`,
	`Type "quit" or press Ctrl+D to end the game.`,
}

type gameManager interface {
	NewSession() *reversi.Session
	Finish(ctx context.Context, session *reversi.Session) (*entity.MatchResult, error)
	History(ctx context.Context, limit int) ([]*entity.MatchResult, error)
}

type handler func(ctx context.Context, session *reversi.Session, out *printer)

// Console - plays one game over a line-based text stream.
type Console struct {
	logger      *slog.Logger
	manager     gameManager
	historySize int

	handlers map[string]handler
}

func New(logger *slog.Logger, manager gameManager, historySize int) *Console {
	console := &Console{
		logger:      logger.With("component", "console"),
		manager:     manager,
		historySize: historySize,
	}

	console.handlers = map[string]handler{
		commandPass:    console.handlePass,
		commandMoves:   console.handleMoves,
		commandHistory: console.handleHistory,
	}

	return console
}

// Run - plays a game until "quit", end of input or ctx cancellation, then prints and records the score.
func (that *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Run")

	finishCtx := context.WithoutCancel(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := that.manager.NewSession()
	output := &printer{out: out}

	output.lines(usage)
	that.printTurn(session, output)

	lines := that.readLines(ctx, in)

loop:
	for {
		select {
		case <-ctx.Done():
			log.Info("interrupted, finishing game", "game_id", session.ID())
			break loop
		case line, ok := <-lines:
			if !ok {
				break loop
			}

			input := strings.TrimSpace(line)
			if input == commandQuit {
				break loop
			}

			that.handleInput(ctx, session, input, output)
			that.printTurn(session, output)
		}
	}

	result, err := that.manager.Finish(finishCtx, session)
	if result != nil {
		that.printScore(result.Score, output)
	}

	if err != nil {
		output.println("Could not record the result.")
		return fmt.Errorf("failed to finish game: %w", err)
	}

	if output.err != nil {
		return fmt.Errorf("failed to write output: %w", output.err)
	}

	return nil
}

func (that *Console) handleInput(ctx context.Context, session *reversi.Session, input string, out *printer) {
	if handle, ok := that.handlers[input]; ok {
		handle(ctx, session, out)
		return
	}

	that.handlePlace(session, input, out)
}

func (that *Console) handlePlace(session *reversi.Session, input string, out *printer) {
	log := that.logger.With("method", "handlePlace", "game_id", session.ID())

	coord, err := ParseCoordinate(input)
	if err != nil {
		log.Debug("rejected input", "input", input, "error", err)
		out.println("Invalid input.")
		out.println(usage[0])
		return
	}

	color := session.Turn()

	captures, err := session.AttemptMove(coord)
	if err != nil {
		log.Debug("rejected move", "coord", coord.String(), "error", err)
		out.printf("You can't place a disc there (%s).\n", rejectionReason(err))
		return
	}

	log.Debug("disc placed", "color", color.String(), "coord", coord.String(), "flipped", len(captures))
}

func (that *Console) handlePass(_ context.Context, session *reversi.Session, out *printer) {
	if err := session.Pass(); err != nil {
		that.logger.Error("failed to pass", "game_id", session.ID(), "error", err)
		return
	}

	out.println("Passed.")
}

func (that *Console) handleMoves(_ context.Context, session *reversi.Session, out *printer) {
	moves := session.LegalMoves()
	if len(moves) == 0 {
		out.printf("No legal moves for %s. Type %q.\n", session.Turn().Name(), commandPass)
		return
	}

	cells := make([]string, 0, len(moves))
	for _, move := range moves {
		cells = append(cells, move.String())
	}

	out.printf("Legal moves: %s\n", strings.Join(cells, " "))
}

func (that *Console) handleHistory(ctx context.Context, _ *reversi.Session, out *printer) {
	results, err := that.manager.History(ctx, that.historySize)
	if errors.Is(err, usecase.ErrHistoryDisabled) {
		out.println("Match history is disabled.")
		return
	}

	if err != nil {
		that.logger.Error("failed to load history", "error", err)
		out.println("Could not load match history.")
		return
	}

	if len(results) == 0 {
		out.println("No finished games yet.")
		return
	}

	for _, result := range results {
		out.printf("%s #%s Black %d - White %d, %s\n",
			result.FinishedAt.Format(time.DateTime),
			result.ID,
			result.Score.Black,
			result.Score.White,
			outcomeText(result.Score),
		)
	}
}

func (that *Console) printTurn(session *reversi.Session, out *printer) {
	out.printf("[%s's turn]\n", session.Turn().Name())

	board := session.Board()
	out.lines(board.Render())

	switch {
	case session.Blocked():
		out.printf("Neither side can move. Type %q to finish.\n", commandQuit)
	case len(session.LegalMoves()) == 0:
		out.printf("No legal moves for %s. Type %q.\n", session.Turn().Name(), commandPass)
	}
}

func (that *Console) printScore(score entity.Score, out *printer) {
	out.printf("White: %d\n", score.White)
	out.printf("Black: %d\n", score.Black)
	out.println(outcomeText(score))
}

// readLines - feeds input lines to the game loop until input ends or ctx is done.
// Run cancels ctx on return so the goroutine never outlives the game.
func (that *Console) readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, apperror.ErrOutOfRange):
		return "off the board"
	case errors.Is(err, apperror.ErrOccupied):
		return "the cell is taken"
	case errors.Is(err, apperror.ErrNoCaptures):
		return "no discs would be flipped"
	case errors.Is(err, apperror.ErrGameFinished):
		return "the game is over"
	default:
		return err.Error()
	}
}

func outcomeText(score entity.Score) string {
	switch score.Winner {
	case entity.OutcomeBlack:
		return "Black wins."
	case entity.OutcomeWhite:
		return "White wins."
	default:
		return "Draw."
	}
}

// printer - writes lines and keeps the first write error.
type printer struct {
	out io.Writer
	err error
}

func (that *printer) println(a ...any) {
	if that.err != nil {
		return
	}
	_, that.err = fmt.Fprintln(that.out, a...)
}

func (that *printer) printf(format string, a ...any) {
	if that.err != nil {
		return
	}
	_, that.err = fmt.Fprintf(that.out, format, a...)
}

func (that *printer) lines(lines []string) {
	for _, line := range lines {
		that.println(line)
	}
}
