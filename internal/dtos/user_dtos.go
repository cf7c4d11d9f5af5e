package dtos

type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=120"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
	LogoURL   string `json:"logo_url" validate:"omitempty,url"`
	Bio       string `json:"bio" validate:"omitempty,max=2000"`
	Facebook  string `json:"facebook" validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
	Website   string `json:"website" validate:"omitempty,url"`
	Province  string `json:"province"`
	City      string `json:"city"`
}

type AgentRequestRequest struct {
	Phone          string `json:"phone" validate:"required,max=32"`
	Bio            string `json:"bio" validate:"required,max=2000"`
	DocumentNumber string `json:"document_number" validate:"required,len=10,numeric"`
}

// AgentDecisionRequest resolves a PENDING request one way or the other.
type AgentDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

// AgentActivationRequest suspends or reactivates an approved agent. Reason
// is required when suspending and becomes part of the notification text.
type AgentActivationRequest struct {
	Action string `json:"action" validate:"required,oneof=suspend reactivate"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}
