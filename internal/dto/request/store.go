package request

// CreateStoreOwnerRequest is used by a store owner creating their own store;
// the owner identity and email come from the authenticated context.
type CreateStoreOwnerRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=60"`
	Address string `json:"address" validate:"required,max=400"`
}

// CreateStoreAdminRequest is used by an admin; email must belong to an
// existing STORE_OWNER account, who becomes the owner.
type CreateStoreAdminRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=60"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
}
