package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingRepository interface {
	Upsert(ctx context.Context, userID, storeID uuid.UUID, rating int) error
	FindRaters(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRater, error)
	CountAll(ctx context.Context) (int64, error)
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log,
	}
}

// Upsert inserts the rating or, when this user already rated this store,
// replaces it with the latest value. The (user_id, store_id) primary key makes
// concurrent submissions collapse into a single row; the database resolves the
// race, not this code.
func (rr *ratingRepository) Upsert(ctx context.Context, userID, storeID uuid.UUID, rating int) error {
	query := `
		INSERT INTO ratings (user_id, store_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = now()
	`

	_, err := rr.db.Exec(ctx, query, userID, storeID, rating)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("rate store %s: %w", storeID.String(), ErrNotFound)
		}
		rr.log.Error("Failed to upsert rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID.String()),
		)
		return fmt.Errorf("rate store %s: %w", storeID.String(), err)
	}

	return nil
}

// FindRaters lists everyone who rated the store, newest update first
func (rr *ratingRepository) FindRaters(ctx context.Context, storeID uuid.UUID) ([]*entity.StoreRater, error) {
	query := `
		SELECT u.name, u.email, r.rating, r.updated_at
		FROM ratings r
		JOIN users u ON r.user_id = u.id
		WHERE r.store_id = $1
		ORDER BY r.updated_at DESC
	`

	rows, err := rr.db.Query(ctx, query, storeID)
	if err != nil {
		rr.log.Error("Failed to find raters",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("find raters for store %s: %w", storeID.String(), err)
	}
	defer rows.Close()

	var raters []*entity.StoreRater
	for rows.Next() {
		var rater entity.StoreRater
		err := rows.Scan(
			&rater.Name,
			&rater.Email,
			&rater.Rating,
			&rater.UpdatedAt,
		)
		if err != nil {
			rr.log.Error("Failed to scan rater row", zap.Error(err))
			return nil, fmt.Errorf("scan rater row: %w", err)
		}
		raters = append(raters, &rater)
	}

	if err := rows.Err(); err != nil {
		rr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate rater rows: %w", err)
	}

	return raters, nil
}

func (rr *ratingRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings`

	var count int64
	err := rr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		rr.log.Error("Database error counting ratings", zap.Error(err))
		return 0, fmt.Errorf("count all ratings: %w", err)
	}

	return count, nil
}
