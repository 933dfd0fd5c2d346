package entity

import (
	"time"

	"github.com/google/uuid"
)

type Store struct {
	Base
	Name    string    `db:"name"`
	Email   string    `db:"email"`
	Address string    `db:"address"`
	OwnerID uuid.UUID `db:"owner_id"`
}

// StoreListing is one row of the store browse view: the store plus its
// aggregate rating and the requesting user's own rating, both nullable.
type StoreListing struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Address       string
	OverallRating *float64
	UserRating    *int
}

// StoreRater is one entry of the owner-facing raters list.
type StoreRater struct {
	Name      string
	Email     string
	Rating    int
	UpdatedAt time.Time
}
