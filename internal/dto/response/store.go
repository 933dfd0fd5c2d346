package response

import (
	"fmt"
	"time"

	"store-rating/internal/data/entity"
)

// StoreResponse is one row of the browse view. OverallRating is a two-decimal
// string or "N/A" when no ratings exist, matching the frontend contract.
type StoreResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Address             string `json:"address"`
	OverallRating       string `json:"overallRating"`
	UserSubmittedRating *int   `json:"userSubmittedRating"`
}

// OwnerStoreCard is one card of the owner dashboard.
type OwnerStoreCard struct {
	ID            string    `json:"id"`
	StoreName     string    `json:"storeName"`
	AverageRating string    `json:"averageRating"`
	StoreAddress  string    `json:"storeAddress"`
	DateCreated   time.Time `json:"dateCreated"`
}

type OwnerDashboardResponse struct {
	Stores []OwnerStoreCard `json:"stores"`
}

type RaterResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StoreDetailsResponse struct {
	ID            string          `json:"id"`
	StoreName     string          `json:"storeName"`
	AverageRating string          `json:"averageRating"`
	Raters        []RaterResponse `json:"raters"`
}

// FormatRating renders an average as the frontend expects
func FormatRating(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *avg)
}

func ListingToResponse(listing *entity.StoreListing) StoreResponse {
	return StoreResponse{
		ID:                  listing.ID.String(),
		Name:                listing.Name,
		Email:               listing.Email,
		Address:             listing.Address,
		OverallRating:       FormatRating(listing.OverallRating),
		UserSubmittedRating: listing.UserRating,
	}
}

func RaterToResponse(rater *entity.StoreRater) RaterResponse {
	return RaterResponse{
		Name:      rater.Name,
		Email:     rater.Email,
		Rating:    rater.Rating,
		UpdatedAt: rater.UpdatedAt,
	}
}
