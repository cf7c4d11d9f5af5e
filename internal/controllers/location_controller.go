package controllers

import (
	"net/http"

	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type LocationController struct {
	locationRepo   repositories.LocationRepository
	siteConfigRepo repositories.SiteConfigRepository
}

func NewLocationController(
	locationRepo repositories.LocationRepository,
	siteConfigRepo repositories.SiteConfigRepository,
) *LocationController {
	return &LocationController{
		locationRepo:   locationRepo,
		siteConfigRepo: siteConfigRepo,
	}
}

// ProvincesHandler -> GET /api/v1/locations/provinces
func (c *LocationController) ProvincesHandler(w http.ResponseWriter, r *http.Request) {
	provinces, err := c.locationRepo.ListProvinces(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, provinces)
}

// CitiesHandler -> GET /api/v1/locations/provinces/{id}/cities
func (c *LocationController) CitiesHandler(w http.ResponseWriter, r *http.Request) {
	provinceID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	cities, err := c.locationRepo.ListCities(r.Context(), provinceID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cities)
}

// SiteConfigHandler -> GET /api/v1/site-config
//
// Public read of the contact settings the frontend needs to build the
// out-of-band plan purchase flow.
func (c *LocationController) SiteConfigHandler(w http.ResponseWriter, r *http.Request) {
	cfg, err := c.siteConfigRepo.Get(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if cfg == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Site configuration not set", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cfg)
}
