package adaptor

import (
	"errors"
	"net/http"

	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Store  *StoreHandler
	Rating *RatingHandler
	User   *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Store:  NewStoreHandler(service.Store, log),
		Rating: NewRatingHandler(service.Rating, log),
		User:   NewUserHandler(service.User, log),
	}
}

// handleServiceError maps the service error taxonomy to HTTP statuses. The
// sentinel's text is the client-facing message; anything unrecognized is a 500
// with the detail kept server-side.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrEmailExists):
		log.Warn(operation+" failed - duplicate email", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidOwner):
		log.Warn(operation+" failed - invalid owner", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrStoreNotFound),
		errors.Is(err, usecase.ErrStoreNotOwned),
		errors.Is(err, usecase.ErrNoStoresOwned):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
