package adaptor

import (
	"encoding/json"
	"net/http"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log,
	}
}

// Submit handles POST /api/stores/{storeId}/ratings
func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID, err := uuid.Parse(chi.URLParam(r, "storeId"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid store id", nil)
		return
	}

	var req request.SubmitRatingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Rating must be a number between 1 and 5", validationErrors)
		return
	}

	if err := h.service.Submit(r.Context(), userID, storeID, req.Rating); err != nil {
		handleServiceError(w, h.log, err, "submit rating")
		return
	}

	utils.ResponseMessage(w, "Rating submitted successfully")
}
