package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

// Notifications are best-effort: a failed insert is logged and never fails
// the operation that produced it.
const notificationPageSize = 20

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	accountRepo      repositories.AccountRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	accountRepo repositories.AccountRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		accountRepo:      accountRepo,
	}
}

// Notify records an in-app notification for one account.
func (s *NotificationService) Notify(ctx context.Context, accountID uuid.UUID, kind models.NotificationKind, message string, link *string) {
	n := &models.Notification{
		ID:        uuid.New(),
		AccountID: accountID,
		Message:   message,
		Kind:      kind,
		Link:      link,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		utils.Logger.WithError(err).WithField("account_id", accountID).
			Warn("Failed to record notification")
	}
}

// NotifyAdmins fans one message out to every administrator account.
func (s *NotificationService) NotifyAdmins(ctx context.Context, kind models.NotificationKind, message string, link *string) {
	ids, err := s.accountRepo.ListAdminIDs(ctx)
	if err != nil {
		utils.Logger.WithError(err).Warn("Failed to list admins for notification")
		return
	}
	for _, id := range ids {
		s.Notify(ctx, id, kind, message, link)
	}
}

func (s *NotificationService) ListMine(ctx context.Context, accountID uuid.UUID) ([]*models.Notification, error) {
	return s.notificationRepo.ListByAccount(ctx, accountID, notificationPageSize)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, accountID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(ctx, accountID)
}
