package services

import (
	"context"
	"time"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

// MaintenanceService hosts the periodic sweeps. Correctness never depends
// on them running: the quota evaluator already ignores past-end
// subscriptions, the sweep only tidies rows and tells the owners.
type MaintenanceService struct {
	subscriptionRepo repositories.SubscriptionRepository
	notifier         *NotificationService
}

func NewMaintenanceService(
	subscriptionRepo repositories.SubscriptionRepository,
	notifier *NotificationService,
) *MaintenanceService {
	return &MaintenanceService{
		subscriptionRepo: subscriptionRepo,
		notifier:         notifier,
	}
}

// ExpireDueSubscriptions flips past-end ACTIVE subscriptions to EXPIRED and
// notifies each affected account.
func (s *MaintenanceService) ExpireDueSubscriptions(ctx context.Context) {
	ids, err := s.subscriptionRepo.ExpireDue(ctx, time.Now())
	if err != nil {
		utils.Logger.WithError(err).Error("Subscription expiry sweep failed")
		return
	}
	for _, id := range ids {
		s.notifier.Notify(ctx, id, models.NotificationWarning,
			"Your subscription has expired. Renew a plan to keep publishing listings.", nil)
	}
	if len(ids) > 0 {
		utils.Logger.WithField("count", len(ids)).Info("Expired due subscriptions")
	}
}
