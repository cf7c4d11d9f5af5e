package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleAgent      Role = "AGENT"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

type AgentStatus string

const (
	AgentNotRequested AgentStatus = "NOT_REQUESTED"
	AgentPending      AgentStatus = "PENDING"
	AgentApproved     AgentStatus = "APPROVED"
	AgentRejected     AgentStatus = "REJECTED"
	AgentSuspended    AgentStatus = "SUSPENDED"
)

type Account struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	AgentStatus  AgentStatus `json:"agent_status"`

	Phone          string  `json:"phone,omitempty"`
	Bio            string  `json:"bio,omitempty"`
	AvatarURL      string  `json:"avatar_url,omitempty"`
	LogoURL        string  `json:"logo_url,omitempty"`
	DocumentNumber *string `json:"document_number,omitempty"`
	Facebook       string  `json:"facebook,omitempty"`
	Instagram      string  `json:"instagram,omitempty"`
	Website        string  `json:"website,omitempty"`
	Province       string  `json:"province,omitempty"`
	City           string  `json:"city,omitempty"`

	// Set when the account was created through an external identity provider.
	ExternalID *string `json:"external_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Standing derives the tagged account standing from the two stored columns.
func (a *Account) Standing() (AccountStanding, error) {
	return StandingFrom(a.Role, a.AgentStatus)
}

// AgentOverview is the admin management row: agent identity plus how many
// listings the agent currently has published.
type AgentOverview struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone,omitempty"`
	AgentStatus   AgentStatus `json:"agent_status"`
	AvatarURL     string      `json:"avatar_url,omitempty"`
	TotalListings int         `json:"total_listings"`
}
