package repository

import (
	"context"
	"fmt"

	"store-rating/internal/data/entity"
	"store-rating/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	FindAllWithRatings(ctx context.Context, userID uuid.UUID, name, address string) ([]*entity.StoreListing, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Store, error)
	AverageRating(ctx context.Context, storeID uuid.UUID) (*float64, error)
	CountAll(ctx context.Context) (int64, error)
}

type storeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoreRepository(db database.PgxIface, log *zap.Logger) StoreRepository {
	return &storeRepository{
		db:  db,
		log: log,
	}
}

func (sr *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, email, address, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		store.ID,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
		store.CreatedAt,
		store.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create store",
			zap.Error(err),
			zap.String("name", store.Name),
			zap.String("owner_id", store.OwnerID.String()),
		)
		return fmt.Errorf("create store %s: %w", store.Name, err)
	}

	return nil
}

// FindAllWithRatings returns the browse view: each store with its average
// rating and the requesting user's own rating. Empty filters match everything.
func (sr *storeRepository) FindAllWithRatings(ctx context.Context, userID uuid.UUID, name, address string) ([]*entity.StoreListing, error) {
	query := `
		SELECT s.id, s.name, s.email, s.address,
		       AVG(r.rating) AS overall_rating,
		       (SELECT rating FROM ratings WHERE user_id = $1 AND store_id = s.id) AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON s.id = r.store_id
		WHERE ($2 = '' OR s.name ILIKE '%' || $2 || '%')
		  AND ($3 = '' OR s.address ILIKE '%' || $3 || '%')
		GROUP BY s.id
		ORDER BY s.name ASC
	`

	rows, err := sr.db.Query(ctx, query, userID, name, address)
	if err != nil {
		sr.log.Error("Failed to list stores",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var listings []*entity.StoreListing
	for rows.Next() {
		var listing entity.StoreListing
		err := rows.Scan(
			&listing.ID,
			&listing.Name,
			&listing.Email,
			&listing.Address,
			&listing.OverallRating,
			&listing.UserRating,
		)
		if err != nil {
			sr.log.Error("Failed to scan store listing row", zap.Error(err))
			return nil, fmt.Errorf("scan store listing row: %w", err)
		}
		listings = append(listings, &listing)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate store rows: %w", err)
	}

	return listings, nil
}

func (sr *storeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at, updated_at
		FROM stores
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := sr.db.Query(ctx, query, ownerID)
	if err != nil {
		sr.log.Error("Failed to find stores by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find stores by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	var stores []*entity.Store
	for rows.Next() {
		var store entity.Store
		err := rows.Scan(
			&store.ID,
			&store.Name,
			&store.Email,
			&store.Address,
			&store.OwnerID,
			&store.CreatedAt,
			&store.UpdatedAt,
		)
		if err != nil {
			sr.log.Error("Failed to scan store row", zap.Error(err))
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		stores = append(stores, &store)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate store rows: %w", err)
	}

	return stores, nil
}

// FindByIDAndOwner enforces ownership at the query level; a store owned by
// someone else looks identical to a missing one.
func (sr *storeRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*entity.Store, error) {
	query := `
		SELECT id, name, email, address, owner_id, created_at, updated_at
		FROM stores
		WHERE id = $1 AND owner_id = $2
	`

	var store entity.Store
	err := sr.db.QueryRow(ctx, query, id, ownerID).Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Address,
		&store.OwnerID,
		&store.CreatedAt,
		&store.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find store by ID and owner",
			zap.Error(err),
			zap.String("store_id", id.String()),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find store %s for owner %s: %w", id.String(), ownerID.String(), err)
	}

	return &store, nil
}

// AverageRating returns nil when the store has no ratings yet.
func (sr *storeRepository) AverageRating(ctx context.Context, storeID uuid.UUID) (*float64, error) {
	query := `SELECT AVG(rating) FROM ratings WHERE store_id = $1`

	var avg *float64
	err := sr.db.QueryRow(ctx, query, storeID).Scan(&avg)
	if err != nil {
		sr.log.Error("Failed to compute average rating",
			zap.Error(err),
			zap.String("store_id", storeID.String()),
		)
		return nil, fmt.Errorf("average rating for store %s: %w", storeID.String(), err)
	}

	return avg, nil
}

func (sr *storeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stores`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Database error counting stores", zap.Error(err))
		return 0, fmt.Errorf("count all stores: %w", err)
	}

	return count, nil
}
