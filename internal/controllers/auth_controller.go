package controllers

import (
	"net/http"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/services"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterHandler -> POST /api/v1/auth/register
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	account, err := c.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dtos.RegisterResponse{Account: account})
}

// LoginHandler -> POST /api/v1/auth/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, account, err := c.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.LoginResponse{
		Token:   token,
		Account: account,
	})
}
