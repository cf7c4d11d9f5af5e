package dtos

import "github.com/MathLeoYa/inmobiliaria/internal/models"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type RegisterResponse struct {
	Account *models.Account `json:"account"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the token plus a sanitized account snapshot. The
// snapshot is a display hint only: the server re-derives role and status
// from storage on every request and never trusts it back.
type LoginResponse struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"account"`
}
