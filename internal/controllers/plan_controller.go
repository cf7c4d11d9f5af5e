package controllers

import (
	"net/http"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/services"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type PlanController struct {
	planService *services.PlanService
}

func NewPlanController(planService *services.PlanService) *PlanController {
	return &PlanController{planService: planService}
}

// ListHandler -> GET /api/v1/plans
func (c *PlanController) ListHandler(w http.ResponseWriter, r *http.Request) {
	plans, err := c.planService.ListActive(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, plans)
}

// CreateHandler -> POST /api/v1/admin/plans
func (c *PlanController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := c.planService.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, plan)
}

// UpdateHandler -> PUT /api/v1/admin/plans/{id}
func (c *PlanController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.UpdatePlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := c.planService.Update(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, plan)
}
