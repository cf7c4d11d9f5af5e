package dtos

type CreatePlanRequest struct {
	Name           string   `json:"name" validate:"required,max=80"`
	Price          float64  `json:"price" validate:"gte=0"`
	SalePrice      *float64 `json:"sale_price" validate:"omitempty,gte=0"`
	MaxListings    int      `json:"max_listings" validate:"required,gt=0"`
	MaxPhotos      int      `json:"max_photos" validate:"required,gt=0"`
	DurationDays   int      `json:"duration_days" validate:"required,gt=0"`
	SearchPriority int      `json:"search_priority" validate:"gte=0"`
	Description    string   `json:"description" validate:"omitempty,max=1000"`
}

type UpdatePlanRequest struct {
	Name           string   `json:"name" validate:"required,max=80"`
	Price          float64  `json:"price" validate:"gte=0"`
	SalePrice      *float64 `json:"sale_price" validate:"omitempty,gte=0"`
	MaxListings    int      `json:"max_listings" validate:"required,gt=0"`
	MaxPhotos      int      `json:"max_photos" validate:"required,gt=0"`
	DurationDays   int      `json:"duration_days" validate:"required,gt=0"`
	SearchPriority int      `json:"search_priority" validate:"gte=0"`
	Description    string   `json:"description" validate:"omitempty,max=1000"`
	Active         bool     `json:"active"`
}

type AssignSubscriptionRequest struct {
	AccountID        string `json:"account_id" validate:"required,uuid4"`
	PlanID           string `json:"plan_id" validate:"required,uuid4"`
	PaymentReference string `json:"payment_reference" validate:"omitempty,max=200"`
}
