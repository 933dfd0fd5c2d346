package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireStore mounts the store and rating routes. Authentication applies to the
// whole subtree; role checks are layered per route on top of it.
func wireStore(
	r chi.Router,
	storeHandler *adaptor.StoreHandler,
	ratingHandler *adaptor.RatingHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	ownerOnly := middleware.RequireRole(log, string(entity.RoleStoreOwner))
	adminOnly := middleware.RequireRole(log, string(entity.RoleAdmin))

	r.Route("/api/stores", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// Any authenticated user
		r.Get("/", storeHandler.List)
		r.Post("/{storeId}/ratings", ratingHandler.Submit)

		// Store owners
		r.With(ownerOnly).Post("/createStoreOwner", storeHandler.CreateByOwner)
		r.With(ownerOnly).Get("/my-store", storeHandler.MyStores)
		r.With(ownerOnly).Get("/my-store/{storeId}", storeHandler.StoreDetails)

		// Administrators
		r.With(adminOnly).Post("/createStoreAdmin", storeHandler.CreateByAdmin)
		r.With(adminOnly).Get("/dashboard-stats", storeHandler.DashboardStats)
	})
}
