package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type SubscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	planRepo         repositories.PlanRepository
	accountRepo      repositories.AccountRepository
	notifier         *NotificationService
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	planRepo repositories.PlanRepository,
	accountRepo repositories.AccountRepository,
	notifier *NotificationService,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		planRepo:         planRepo,
		accountRepo:      accountRepo,
		notifier:         notifier,
	}
}

// Assign grants a plan to an account, replacing any currently ACTIVE
// subscription. Payment happens out of band; the admin records the
// reference here after verifying it.
func (s *SubscriptionService) Assign(ctx context.Context, accountID, planID uuid.UUID, paymentReference string) (*models.Subscription, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	now := time.Now()
	sub := &models.Subscription{
		ID:               uuid.New(),
		AccountID:        accountID,
		PlanID:           planID,
		StartTime:        now,
		EndTime:          now.AddDate(0, 0, plan.DurationDays),
		Status:           models.SubscriptionActive,
		PaymentReference: paymentReference,
	}
	if err := s.subscriptionRepo.AssignAtomic(ctx, sub); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, accountID, models.NotificationSuccess,
		fmt.Sprintf("Your %s plan is now active until %s.", plan.Name, sub.EndTime.Format("2006-01-02")), nil)
	utils.Logger.WithFields(map[string]interface{}{
		"account_id": accountID,
		"plan_id":    planID,
	}).Info("Subscription assigned")
	return sub, nil
}

// MyPlan returns the caller's active subscription joined with its plan
// limits, or nil when no plan is active.
func (s *SubscriptionService) MyPlan(ctx context.Context, accountID uuid.UUID) (*models.ActiveSubscription, error) {
	return s.subscriptionRepo.GetActiveWithPlan(ctx, accountID)
}
