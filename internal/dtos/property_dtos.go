package dtos

import "github.com/MathLeoYa/inmobiliaria/internal/models"

// CreatePropertyRequest carries every listing attribute plus the ordered
// photo URL list (the images themselves were already uploaded through the
// uploads endpoint).
type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Operation   string   `json:"operation"`
	Bedrooms    *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	AreaM2      float64  `json:"area_m2" validate:"omitempty,gte=0"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Address     string   `json:"address"`
	Province    string   `json:"province" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Amenities   []string `json:"amenities"`
	Photos      []string `json:"photos" validate:"required,min=1,dive,url"`
}

// UpdatePropertyRequest replaces every mutable attribute; there is no
// partial-update variant.
type UpdatePropertyRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Operation   string   `json:"operation"`
	Bedrooms    *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	AreaM2      float64  `json:"area_m2" validate:"omitempty,gte=0"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Address     string   `json:"address"`
	Province    string   `json:"province" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Amenities   []string `json:"amenities"`
}

type CreatePropertyResponse struct {
	Property *models.Property `json:"property"`
}
