package entity

import (
	"time"

	"github.com/google/uuid"
)

// StationIdentity is the exact-match key finalize uses to resolve or create a
// station within an owner's scope.
type StationIdentity struct {
	Name       string `json:"name"`
	StreetName string `json:"street_name"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// Station represents a fuel station for data transfer between layers.
type Station struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	StationIdentity
	CreatedAt time.Time `json:"created_at"`
}
