package controllers

import (
	"net/http"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/middleware"
	"github.com/MathLeoYa/inmobiliaria/internal/services"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type UserController struct {
	accountService *services.AccountService
}

func NewUserController(accountService *services.AccountService) *UserController {
	return &UserController{accountService: accountService}
}

// ProfileHandler -> GET /api/v1/users/me
func (c *UserController) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, account)
}

// UpdateProfileHandler -> PUT /api/v1/users/me
func (c *UserController) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}

	var req dtos.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := c.accountService.UpdateProfile(r.Context(), account, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// AgentRequestHandler -> POST /api/v1/users/me/agent-request
func (c *UserController) AgentRequestHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}

	var req dtos.AgentRequestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.accountService.RequestAgent(r.Context(), account, req); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Agent request submitted",
	})
}

// ListAgentRequestsHandler -> GET /api/v1/admin/agent-requests
func (c *UserController) ListAgentRequestsHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := c.accountService.ListAgentRequests(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// DecideAgentRequestHandler -> POST /api/v1/admin/agent-requests/{id}
func (c *UserController) DecideAgentRequestHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.AgentDecisionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.accountService.DecideAgentRequest(r.Context(), accountID, req.Decision == "approve"); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Agent request resolved",
	})
}

// ListAgentsHandler -> GET /api/v1/admin/agents
func (c *UserController) ListAgentsHandler(w http.ResponseWriter, r *http.Request) {
	agents, err := c.accountService.ListAgents(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, agents)
}

// AgentActivationHandler -> POST /api/v1/admin/agents/{id}/activation
func (c *UserController) AgentActivationHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.AgentActivationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var err error
	if req.Action == "suspend" {
		err = c.accountService.SuspendAgent(r.Context(), accountID, req.Reason)
	} else {
		err = c.accountService.ReactivateAgent(r.Context(), accountID)
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Agent status updated",
	})
}

// DeleteAccountHandler -> DELETE /api/v1/admin/accounts/{id}
func (c *UserController) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.accountService.Delete(r.Context(), accountID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Account deleted"})
}
