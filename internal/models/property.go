package models

import (
	"time"

	"github.com/google/uuid"
)

type Operation string

const (
	OperationSale Operation = "Sale"
	OperationRent Operation = "Rent"
)

type Category string

const (
	CategoryHouse      Category = "House"
	CategoryApartment  Category = "Apartment"
	CategoryLand       Category = "Land"
	CategoryCommercial Category = "Commercial"
	CategoryCamping    Category = "Camping"
	CategoryFarm       Category = "Farm"
	CategoryOffice     Category = "Office"
)

// roomlessCategories don't require bedroom/bathroom counts.
var roomlessCategories = map[Category]bool{
	CategoryLand:       true,
	CategoryCamping:    true,
	CategoryCommercial: true,
}

// RequiresRooms reports whether bedrooms/bathrooms are mandatory for c.
func (c Category) RequiresRooms() bool {
	return !roomlessCategories[c]
}

type Property struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	Operation   Operation `json:"operation"`
	Bedrooms    *int      `json:"bedrooms"`
	Bathrooms   *int      `json:"bathrooms"`
	AreaM2      float64   `json:"area_m2"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Address     string    `json:"address"`
	Province    string    `json:"province"`
	City        string    `json:"city"`
	Amenities   []string  `json:"amenities"`

	PublishedAt time.Time `json:"published_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Loaded on demand, ordered by position.
	Photos []PropertyPhoto `json:"photos,omitempty"`
}

type PropertyPhoto struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	URL        string    `json:"url"`
	Position   int       `json:"position"`
}

// PropertySummary is a catalog/list row: the property plus the viewer and
// presentation annotations the listing screens need.
type PropertySummary struct {
	Property
	PrimaryPhoto string `json:"primary_photo,omitempty"`
	AgentLogoURL string `json:"agent_logo_url,omitempty"`
	IsFavorited  bool   `json:"is_favorited"`
}

// PropertyDetail adds the publishing agent's contact card.
type PropertyDetail struct {
	Property
	IsFavorited    bool   `json:"is_favorited"`
	AgentName      string `json:"agent_name"`
	AgentPhone     string `json:"agent_phone,omitempty"`
	AgentEmail     string `json:"agent_email"`
	AgentAvatarURL string `json:"agent_avatar_url,omitempty"`
	AgentLogoURL   string `json:"agent_logo_url,omitempty"`
	AgentBio       string `json:"agent_bio,omitempty"`
}
