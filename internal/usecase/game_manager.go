package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/internal/pkg"
	"github.com/rocketscienceinc/reversi/internal/reversi"
)

var ErrHistoryDisabled = errors.New("match history is disabled")

type resultRepo interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	List(ctx context.Context, limit int) ([]*entity.MatchResult, error)
}

// GameManager - starts sessions and records finished matches. A nil repository disables history.
type GameManager struct {
	logger     *slog.Logger
	resultRepo resultRepo
	now        func() time.Time
}

func NewGameManager(logger *slog.Logger, resultRepo resultRepo) *GameManager {
	return &GameManager{
		logger:     logger.With("component", "game_manager"),
		resultRepo: resultRepo,
		now:        time.Now,
	}
}

func (that *GameManager) NewSession() *reversi.Session {
	session := reversi.NewSession(pkg.GenerateGameID())

	that.logger.Info("game started", "game_id", session.ID(), "turn", session.Turn().String())

	return session
}

// Finish - ends the session and stores its summary. The summary is returned even when storing fails.
func (that *GameManager) Finish(ctx context.Context, session *reversi.Session) (*entity.MatchResult, error) {
	log := that.logger.With("method", "Finish", "game_id", session.ID())

	session.End()

	result := &entity.MatchResult{
		ID:         session.ID(),
		Score:      session.FinalScore(),
		Moves:      session.Moves(),
		Passes:     session.Passes(),
		FinishedAt: that.now().UTC(),
	}

	log.Info("game finished",
		"black", result.Score.Black,
		"white", result.Score.White,
		"winner", result.Score.Winner,
	)

	if that.resultRepo == nil {
		return result, nil
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
		return result, fmt.Errorf("failed to save result: %w", err)
	}

	return result, nil
}

// History - returns up to limit finished matches, newest first.
func (that *GameManager) History(ctx context.Context, limit int) ([]*entity.MatchResult, error) {
	if that.resultRepo == nil {
		return nil, ErrHistoryDisabled
	}

	results, err := that.resultRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}
