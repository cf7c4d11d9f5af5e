package controllers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/middleware"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/services"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type PropertyController struct {
	propertyService *services.PropertyService
}

func NewPropertyController(propertyService *services.PropertyService) *PropertyController {
	return &PropertyController{propertyService: propertyService}
}

// CatalogHandler -> GET /api/v1/properties
//
// Public browse. Runs behind optional auth: a logged-in viewer gets
// is_favorited annotations, everyone else browses anonymously.
func (c *PropertyController) CatalogHandler(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseCatalogFilter(w, r)
	if !ok {
		return
	}
	viewerID := middleware.AccountIDFromContext(r.Context())

	listings, err := c.propertyService.Catalog(r.Context(), filter, viewerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listings)
}

// DetailHandler -> GET /api/v1/properties/{id}
func (c *PropertyController) DetailHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	viewerID := middleware.AccountIDFromContext(r.Context())

	detail, err := c.propertyService.Detail(r.Context(), id, viewerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// CreateHandler -> POST /api/v1/properties
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}

	var req dtos.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	property, err := c.propertyService.Create(r.Context(), account, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreatePropertyResponse{Property: property})
}

// MyListingsHandler -> GET /api/v1/properties/mine
func (c *PropertyController) MyListingsHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}

	listings, err := c.propertyService.MyListings(r.Context(), account.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listings)
}

// UpdateHandler -> PUT /api/v1/properties/{id}
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.UpdatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	property, err := c.propertyService.Update(r.Context(), account, id, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, property)
}

// DeleteHandler -> DELETE /api/v1/properties/{id}
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.propertyService.Delete(r.Context(), account, id); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Listing deleted"})
}

// OwnerListingsHandler -> GET /api/v1/admin/accounts/{id}/properties
func (c *PropertyController) OwnerListingsHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	listings, err := c.propertyService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listings)
}

func parseCatalogFilter(w http.ResponseWriter, r *http.Request) (repositories.CatalogFilter, bool) {
	q := r.URL.Query()
	filter := repositories.CatalogFilter{
		Operation: q.Get("operation"),
		Province:  q.Get("province"),
		City:      q.Get("city"),
		Category:  q.Get("category"),
	}

	for param, dst := range map[string]**float64{
		"min_price": &filter.MinPrice,
		"max_price": &filter.MaxPrice,
	} {
		raw := q.Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
				"Invalid "+param+" value", nil)
			return filter, false
		}
		*dst = &v
	}
	return filter, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid "+name+" in path", nil)
		return uuid.Nil, false
	}
	return id, true
}
