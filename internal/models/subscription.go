package models

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "ACTIVE"
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionExpired   SubscriptionStatus = "EXPIRED"
)

type Subscription struct {
	ID               uuid.UUID          `json:"id"`
	AccountID        uuid.UUID          `json:"account_id"`
	PlanID           uuid.UUID          `json:"plan_id"`
	StartTime        time.Time          `json:"start_time"`
	EndTime          time.Time          `json:"end_time"`
	Status           SubscriptionStatus `json:"status"`
	PaymentReference string             `json:"payment_reference,omitempty"`
}

// ActiveSubscription joins the subscription with the plan fields the quota
// evaluator and the "my plan" screen need.
type ActiveSubscription struct {
	Subscription
	PlanName    string `json:"plan_name"`
	MaxListings int    `json:"max_listings"`
	MaxPhotos   int    `json:"max_photos"`
}
