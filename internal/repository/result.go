package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	resultsListKey  = "results"

	// MaxStoredResults - older results are evicted past this count.
	MaxStoredResults = 1000
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	GetByID(ctx context.Context, id string) (*entity.MatchResult, error)
	List(ctx context.Context, limit int) ([]*entity.MatchResult, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbResult struct {
	client    *redis.Client
	maxStored int64
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client:    client,
		maxStored: MaxStoredResults,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.MatchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	var evicted *redis.StringSliceCmd

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.LRem(ctx, resultsListKey, 0, result.ID)
		pipe.LPush(ctx, resultsListKey, result.ID)
		evicted = pipe.LRange(ctx, resultsListKey, that.maxStored, -1)
		pipe.LTrim(ctx, resultsListKey, 0, that.maxStored-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	ids := evicted.Val()
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, resultKeyPrefix+id)
	}

	if err = that.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to evict old results: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.MatchResult, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.MatchResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// List - returns up to limit results, most recently saved first.
func (that *dbResult) List(ctx context.Context, limit int) ([]*entity.MatchResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, resultsListKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list result ids: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, resultKeyPrefix+id)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	results := make([]*entity.MatchResult, 0, len(values))
	for _, value := range values {
		// the id list may outlive a deleted key
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var result entity.MatchResult
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}

func (that *dbResult) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, resultKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete result by ID: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrResultNotFound
	}

	if err = that.client.LRem(ctx, resultsListKey, 0, id).Err(); err != nil {
		return fmt.Errorf("failed to remove result from list: %w", err)
	}

	return nil
}
