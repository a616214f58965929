package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResult(id string, black, white int) *entity.MatchResult {
	return &entity.MatchResult{
		ID:         id,
		Score:      entity.NewScore(black, white),
		Moves:      black + white - 4,
		Passes:     1,
		FinishedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestResultRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := NewResultRepository(st.Storage)

	// Given: a finished match
	result := newResult("123", 34, 30)

	// When: Save is called
	err := resultRepo.Save(ctx, result)

	// Then: no error should be returned, and the result is stored
	require.NoError(t, err)
}

func TestResultRepository_SaveEvictsOldest(t *testing.T) {
	ctx, st := suite.New(t)

	resultRepo := &dbResult{client: st.Storage, maxStored: 2}

	// Given: a store that keeps two results
	// When: a third result is saved
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, resultRepo.Save(ctx, newResult(id, 34, 30)))
	}

	// Then: the oldest result is gone from both the list and its key
	_, err := resultRepo.GetByID(ctx, "1")
	require.ErrorIs(t, err, apperror.ErrResultNotFound)

	exists, err := st.Storage.Exists(ctx, resultKeyPrefix+"1").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	results, err := resultRepo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "3", results[0].ID)
	assert.Equal(t, "2", results[1].ID)
}

func TestResultRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: a stored result
		result := newResult("123", 34, 30)
		require.NoError(t, resultRepo.Save(ctx, result))

		// When: GetByID is called with the existing ID
		retrieved, err := resultRepo.GetByID(ctx, result.ID)

		// Then: the retrieved result should match the saved one
		require.NoError(t, err)
		assert.Equal(t, result.ID, retrieved.ID)
		assert.Equal(t, result.Score, retrieved.Score)
		assert.Equal(t, result.Moves, retrieved.Moves)
		assert.True(t, result.FinishedAt.Equal(retrieved.FinishedAt))
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: GetByID is called with a non-existent ID
		retrieved, err := resultRepo.GetByID(ctx, "9999999")

		// Then: an ErrResultNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrResultNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestResultRepository_List(t *testing.T) {
	t.Run("Most recent first", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: three stored results
		for i := 0; i < 3; i++ {
			require.NoError(t, resultRepo.Save(ctx, newResult(fmt.Sprintf("id-%d", i), 30+i, 30)))
		}

		// When: the two latest are listed
		results, err := resultRepo.List(ctx, 2)

		// Then: they come back newest first
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "id-2", results[0].ID)
		assert.Equal(t, "id-1", results[1].ID)
	})

	t.Run("Saving twice keeps one entry", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		result := newResult("123", 34, 30)
		require.NoError(t, resultRepo.Save(ctx, result))
		require.NoError(t, resultRepo.Save(ctx, result))

		results, err := resultRepo.List(ctx, 10)

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("Empty store", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		results, err := resultRepo.List(ctx, 5)

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestResultRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: a stored result
		result := newResult("123", 20, 44)
		require.NoError(t, resultRepo.Save(ctx, result))

		// When: DeleteByID is called with the existing ID
		err := resultRepo.DeleteByID(ctx, result.ID)

		// Then: no error should be returned and the result is gone
		require.NoError(t, err)

		_, err = resultRepo.GetByID(ctx, result.ID)
		require.ErrorIs(t, err, apperror.ErrResultNotFound)

		results, err := resultRepo.List(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: DeleteByID is called with a non-existent ID
		err := resultRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrResultNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrResultNotFound)
	})
}
