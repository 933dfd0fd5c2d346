package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser mounts user management (admin) and self-service password update.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	authHandler *adaptor.AuthHandler,
	tokens *token.Manager,
	log *zap.Logger,
) {
	adminOnly := middleware.RequireRole(log, string(entity.RoleAdmin))

	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))

		// Any authenticated user may change their own password
		r.Put("/update-password", authHandler.UpdatePassword)

		// Administrators
		r.With(adminOnly).Get("/", userHandler.List)
		r.With(adminOnly).Post("/createUser", userHandler.Create)
	})
}
