package request

// CreateUserRequest is the admin-only variant of registration; any role,
// including ADMIN, may be assigned here.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=60"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required,max=400"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=USER STORE_OWNER ADMIN"`
}
