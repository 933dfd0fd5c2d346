package usecase

import (
	"store-rating/internal/data/repository"
	"store-rating/pkg/token"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Store  StoreService
	Rating RatingService
	User   UserService
}

func NewService(repo *repository.Repository, tokens *token.Manager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, tokens, log),
		Store:  NewStoreService(repo, log),
		Rating: NewRatingService(repo, log),
		User:   NewUserService(repo, log),
	}
}
