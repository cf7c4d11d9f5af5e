package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/middleware"
	"github.com/MathLeoYa/inmobiliaria/internal/services"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type SubscriptionController struct {
	subscriptionService *services.SubscriptionService
}

func NewSubscriptionController(subscriptionService *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// AssignHandler -> POST /api/v1/admin/subscriptions
//
// Payment verification happens out of band; this only records the result.
func (c *SubscriptionController) AssignHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.AssignSubscriptionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid account_id", nil)
		return
	}
	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid plan_id", nil)
		return
	}

	sub, err := c.subscriptionService.Assign(r.Context(), accountID, planID, req.PaymentReference)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, sub)
}

// MyPlanHandler -> GET /api/v1/subscriptions/me
//
// Responds 200 with null when the caller has no active plan; absence is a
// normal state, not an error.
func (c *SubscriptionController) MyPlanHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}

	sub, err := c.subscriptionService.MyPlan(r.Context(), account.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sub)
}
