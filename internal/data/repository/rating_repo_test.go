package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRatingRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	storeID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		db := &fakeDB{execTag: pgconn.NewCommandTag("INSERT 0 1")}
		repo := NewRatingRepository(db, zap.NewNop())

		err := repo.Upsert(ctx, userID, storeID, 4)
		require.NoError(t, err)

		// Resubmission must replace, not duplicate
		assert.Contains(t, db.lastSQL, "ON CONFLICT (user_id, store_id)")
		assert.Contains(t, db.lastSQL, "DO UPDATE SET rating = EXCLUDED.rating")
		assert.Equal(t, []any{userID, storeID, 4}, db.lastArgs)
	})

	t.Run("UnknownStore", func(t *testing.T) {
		db := &fakeDB{execErr: &pgconn.PgError{Code: "23503", ConstraintName: "ratings_store_id_fkey"}}
		repo := NewRatingRepository(db, zap.NewNop())

		err := repo.Upsert(ctx, userID, storeID, 4)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("OtherDatabaseError", func(t *testing.T) {
		db := &fakeDB{execErr: &pgconn.PgError{Code: "53300"}}
		repo := NewRatingRepository(db, zap.NewNop())

		err := repo.Upsert(ctx, userID, storeID, 4)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRatingRepository_FindRaters(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	now := time.Now()
	db := &fakeDB{rows: [][]any{
		{"Ann", "ann@x.com", 5, now},
		{"Bea", "bea@x.com", 3, now.Add(-time.Hour)},
	}}
	repo := NewRatingRepository(db, zap.NewNop())

	raters, err := repo.FindRaters(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, raters, 2)

	assert.Equal(t, "ann@x.com", raters[0].Email)
	assert.Equal(t, 5, raters[0].Rating)
	assert.Contains(t, db.lastSQL, "ORDER BY r.updated_at DESC")
}

func TestRatingRepository_CountAll(t *testing.T) {
	ctx := context.Background()

	db := &fakeDB{rowValues: []any{int64(31)}}
	repo := NewRatingRepository(db, zap.NewNop())

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(31), count)
}
