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

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/stores?name=&address=
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	name := r.URL.Query().Get("name")
	address := r.URL.Query().Get("address")

	stores, err := h.service.List(r.Context(), userID, name, address)
	if err != nil {
		handleServiceError(w, h.log, err, "list stores")
		return
	}

	utils.ResponseSuccess(w, stores)
}

// CreateByOwner handles POST /api/stores/createStoreOwner
func (h *StoreHandler) CreateByOwner(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateStoreOwnerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Please provide name and address for the store", validationErrors)
		return
	}

	if err := h.service.CreateByOwner(r.Context(), userID, email, &req); err != nil {
		handleServiceError(w, h.log, err, "create store")
		return
	}

	utils.ResponseCreated(w, "Store created successfully (by store owner)")
}

// CreateByAdmin handles POST /api/stores/createStoreAdmin
func (h *StoreHandler) CreateByAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Please provide store name, store email, and address", validationErrors)
		return
	}

	if err := h.service.CreateByAdmin(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "create store by admin")
		return
	}

	utils.ResponseCreated(w, "Store created successfully by Admin")
}

// MyStores handles GET /api/stores/my-store
func (h *StoreHandler) MyStores(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	dashboard, err := h.service.OwnerDashboard(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "owner dashboard")
		return
	}

	utils.ResponseSuccess(w, dashboard)
}

// StoreDetails handles GET /api/stores/my-store/{storeId}
func (h *StoreHandler) StoreDetails(w http.ResponseWriter, r *http.Request) {
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

	details, err := h.service.OwnerStoreDetails(r.Context(), userID, storeID)
	if err != nil {
		handleServiceError(w, h.log, err, "store details")
		return
	}

	utils.ResponseSuccess(w, details)
}

// DashboardStats handles GET /api/stores/dashboard-stats
func (h *StoreHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "dashboard stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}
