package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

const resultsTable = "results"

var (
	sqlBuilder    = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	resultColumns = []string{"id", "black", "white", "winner", "moves", "passes", "finished_at"}
)

type sqliteResult struct {
	conn *sql.DB
}

func NewSQLiteResultRepository(conn *sql.DB) ResultRepository {
	return &sqliteResult{
		conn: conn,
	}
}

func (that *sqliteResult) Save(ctx context.Context, result *entity.MatchResult) error {
	query, args, err := sqlBuilder.Insert(resultsTable).
		Options("OR REPLACE").
		Columns(resultColumns...).
		Values(
			result.ID,
			result.Score.Black,
			result.Score.White,
			result.Score.Winner,
			result.Moves,
			result.Passes,
			result.FinishedAt.UTC(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("can't build insert: %w", err)
	}

	if _, err = that.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

func (that *sqliteResult) GetByID(ctx context.Context, id string) (*entity.MatchResult, error) {
	query, args, err := sqlBuilder.Select(resultColumns...).
		From(resultsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("can't build select: %w", err)
	}

	result, err := scanResult(that.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find result: %w", err)
	}

	return result, nil
}

func (that *sqliteResult) List(ctx context.Context, limit int) ([]*entity.MatchResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := sqlBuilder.Select(resultColumns...).
		From(resultsTable).
		OrderBy("finished_at DESC", "rowid DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("can't build select: %w", err)
	}

	rows, err := that.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	var results []*entity.MatchResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

func (that *sqliteResult) DeleteByID(ctx context.Context, id string) error {
	query, args, err := sqlBuilder.Delete(resultsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("can't build delete: %w", err)
	}

	res, err := that.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("can't delete result: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't count deleted rows: %w", err)
	}

	if affected == 0 {
		return apperror.ErrResultNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (*entity.MatchResult, error) {
	var result entity.MatchResult

	err := row.Scan(
		&result.ID,
		&result.Score.Black,
		&result.Score.White,
		&result.Score.Winner,
		&result.Moves,
		&result.Passes,
		&result.FinishedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
