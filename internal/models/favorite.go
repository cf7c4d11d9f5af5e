package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a unique (account, property) pair; presence means "favorited".
type Favorite struct {
	AccountID  uuid.UUID `json:"account_id"`
	PropertyID uuid.UUID `json:"property_id"`
	AddedAt    time.Time `json:"added_at"`
}
