package models

import (
	"time"

	"github.com/google/uuid"
)

type Plan struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	SalePrice      *float64  `json:"sale_price,omitempty"`
	MaxListings    int       `json:"max_listings"`
	MaxPhotos      int       `json:"max_photos"`
	DurationDays   int       `json:"duration_days"`
	SearchPriority int       `json:"search_priority"`
	Description    string    `json:"description,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}
