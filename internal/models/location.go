package models

import "github.com/google/uuid"

type Province struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type City struct {
	ID         uuid.UUID `json:"id"`
	ProvinceID uuid.UUID `json:"province_id"`
	Name       string    `json:"name"`
}

// SiteConfig is the single public configuration row (id = 1 in storage).
// AdminWhatsApp is the out-of-band contact number the frontend uses to build
// pre-filled plan-upgrade messages; the backend never sends anything itself.
type SiteConfig struct {
	AdminWhatsApp string `json:"admin_whatsapp"`
}
