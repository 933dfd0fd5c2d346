package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating is keyed on (user, store); one user holds at most one rating per
// store, enforced by the primary key and the upsert that writes it.
type Rating struct {
	UserID    uuid.UUID `db:"user_id"`
	StoreID   uuid.UUID `db:"store_id"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
