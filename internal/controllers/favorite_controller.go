package controllers

import (
	"net/http"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/middleware"
	"github.com/MathLeoYa/inmobiliaria/internal/services"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type FavoriteController struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteController(favoriteService *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// ToggleHandler -> POST /api/v1/favorites/{id}
func (c *FavoriteController) ToggleHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}
	propertyID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	favorited, err := c.favoriteService.Toggle(r.Context(), account.ID, propertyID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	msg := "Removed from favorites"
	if favorited {
		msg = "Added to favorites"
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ToggleFavoriteResponse{
		Favorited: favorited,
		Message:   msg,
	})
}

// ListHandler -> GET /api/v1/favorites
func (c *FavoriteController) ListHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}

	listings, err := c.favoriteService.ListMine(r.Context(), account.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listings)
}
