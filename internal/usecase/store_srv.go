package usecase

import (
	"context"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreService interface {
	List(ctx context.Context, userID uuid.UUID, name, address string) ([]response.StoreResponse, error)
	CreateByOwner(ctx context.Context, ownerID uuid.UUID, ownerEmail string, req *request.CreateStoreOwnerRequest) error
	CreateByAdmin(ctx context.Context, req *request.CreateStoreAdminRequest) error
	OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*response.OwnerDashboardResponse, error)
	OwnerStoreDetails(ctx context.Context, ownerID, storeID uuid.UUID) (*response.StoreDetailsResponse, error)
	DashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error)
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log,
	}
}

// List returns every store with its aggregate rating and the caller's own
// rating, optionally filtered by name and address substrings.
func (s *storeService) List(ctx context.Context, userID uuid.UUID, name, address string) ([]response.StoreResponse, error) {
	listings, err := s.repo.Store.FindAllWithRatings(ctx, userID, name, address)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	stores := make([]response.StoreResponse, 0, len(listings))
	for _, listing := range listings {
		stores = append(stores, response.ListingToResponse(listing))
	}

	return stores, nil
}

// CreateByOwner registers a store owned by the caller; the store's contact
// email is the owner's own email.
func (s *storeService) CreateByOwner(ctx context.Context, ownerID uuid.UUID, ownerEmail string, req *request.CreateStoreOwnerRequest) error {
	store := s.newStore(req.Name, ownerEmail, req.Address, ownerID)

	if err := s.repo.Store.Create(ctx, store); err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	s.log.Info("Store created by owner",
		zap.String("store_id", store.ID.String()),
		zap.String("owner_id", ownerID.String()))

	return nil
}

// CreateByAdmin creates a store for the STORE_OWNER account matching the
// given email.
func (s *storeService) CreateByAdmin(ctx context.Context, req *request.CreateStoreAdminRequest) error {
	// 1. Resolve the owner by email
	owner, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("find owner: %w", err)
	}
	if owner == nil || owner.Role != entity.RoleStoreOwner {
		return ErrInvalidOwner
	}

	// 2. Insert store
	store := s.newStore(req.Name, req.Email, req.Address, owner.ID)

	if err := s.repo.Store.Create(ctx, store); err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	s.log.Info("Store created by admin",
		zap.String("store_id", store.ID.String()),
		zap.String("owner_id", owner.ID.String()))

	return nil
}

// OwnerDashboard returns a card per owned store with its average rating.
func (s *storeService) OwnerDashboard(ctx context.Context, ownerID uuid.UUID) (*response.OwnerDashboardResponse, error) {
	stores, err := s.repo.Store.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find owned stores: %w", err)
	}
	if len(stores) == 0 {
		return nil, ErrNoStoresOwned
	}

	cards := make([]response.OwnerStoreCard, 0, len(stores))
	for _, store := range stores {
		avg, err := s.repo.Store.AverageRating(ctx, store.ID)
		if err != nil {
			return nil, fmt.Errorf("average rating: %w", err)
		}

		cards = append(cards, response.OwnerStoreCard{
			ID:            store.ID.String(),
			StoreName:     store.Name,
			AverageRating: response.FormatRating(avg),
			StoreAddress:  store.Address,
			DateCreated:   store.CreatedAt,
		})
	}

	return &response.OwnerDashboardResponse{Stores: cards}, nil
}

// OwnerStoreDetails returns one owned store with its raters list. A store
// owned by someone else is reported as not found.
func (s *storeService) OwnerStoreDetails(ctx context.Context, ownerID, storeID uuid.UUID) (*response.StoreDetailsResponse, error) {
	store, err := s.repo.Store.FindByIDAndOwner(ctx, storeID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return nil, ErrStoreNotOwned
	}

	avg, err := s.repo.Store.AverageRating(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}

	raters, err := s.repo.Rating.FindRaters(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("find raters: %w", err)
	}

	raterResponses := make([]response.RaterResponse, 0, len(raters))
	for _, rater := range raters {
		raterResponses = append(raterResponses, response.RaterToResponse(rater))
	}

	return &response.StoreDetailsResponse{
		ID:            store.ID.String(),
		StoreName:     store.Name,
		AverageRating: response.FormatRating(avg),
		Raters:        raterResponses,
	}, nil
}

// DashboardStats aggregates the platform counters for the admin dashboard.
func (s *storeService) DashboardStats(ctx context.Context) (*response.DashboardStatsResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalStores, err := s.repo.Store.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stores: %w", err)
	}

	totalRatings, err := s.repo.Rating.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	return &response.DashboardStatsResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

func (s *storeService) newStore(name, email, address string, ownerID uuid.UUID) *entity.Store {
	now := time.Now()
	return &entity.Store{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    name,
		Email:   email,
		Address: address,
		OwnerID: ownerID,
	}
}
