package controllers

import (
	"net/http"

	"github.com/MathLeoYa/inmobiliaria/internal/middleware"
	"github.com/MathLeoYa/inmobiliaria/internal/services"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type NotificationController struct {
	notificationService *services.NotificationService
}

func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListHandler -> GET /api/v1/notifications
func (c *NotificationController) ListHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}

	notifications, err := c.notificationService.ListMine(r.Context(), account.ID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, notifications)
}

// MarkAllReadHandler -> POST /api/v1/notifications/read
func (c *NotificationController) MarkAllReadHandler(w http.ResponseWriter, r *http.Request) {
	account := middleware.AccountFromContext(r.Context())
	if account == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No account in context", nil)
		return
	}

	if err := c.notificationService.MarkAllRead(r.Context(), account.ID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Notifications marked as read"})
}
