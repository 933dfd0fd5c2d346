package usecase

import (
	"context"
	"errors"
	"fmt"

	"store-rating/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	Submit(ctx context.Context, userID, storeID uuid.UUID, rating int) error
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log,
	}
}

// Submit stores the rating, replacing any earlier rating by the same user for
// the same store. Rating an unknown store is a not-found error.
func (s *ratingService) Submit(ctx context.Context, userID, storeID uuid.UUID, rating int) error {
	if err := s.repo.Rating.Upsert(ctx, userID, storeID, rating); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStoreNotFound
		}
		return fmt.Errorf("submit rating: %w", err)
	}

	s.log.Info("Rating submitted",
		zap.String("user_id", userID.String()),
		zap.String("store_id", storeID.String()),
		zap.Int("rating", rating))

	return nil
}
