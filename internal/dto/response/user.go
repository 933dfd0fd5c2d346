package response

import (
	"time"

	"store-rating/internal/data/entity"
)

// AdminUserResponse is the admin listing row; address is included there but
// not in the login projection.
type AdminUserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

func AdminUserToResponse(user *entity.User) AdminUserResponse {
	return AdminUserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Address:   user.Address,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
