package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

func newSubscriptionServiceForTest() (*SubscriptionService, *fakeAccountRepo, *fakePlanRepo, *fakeSubscriptionRepo) {
	accounts := newFakeAccountRepo()
	plans := newFakePlanRepo()
	subs := newFakeSubscriptionRepo(plans)
	notifier := NewNotificationService(&fakeNotificationRepo{}, accounts)
	return NewSubscriptionService(subs, plans, accounts, notifier), accounts, plans, subs
}

func TestAssignSubscription(t *testing.T) {
	svc, accounts, plans, subs := newSubscriptionServiceForTest()
	agent := accounts.add(approvedAgent())

	plan := &models.Plan{ID: uuid.New(), Name: "Basic", MaxListings: 3, MaxPhotos: 5, DurationDays: 30, Active: true}
	plans.plans[plan.ID] = plan

	before := time.Now()
	sub, err := svc.Assign(context.Background(), agent.ID, plan.ID, "transfer-001")
	require.NoError(t, err)
	require.Equal(t, models.SubscriptionActive, sub.Status)

	// End time is start + duration_days.
	wantEnd := sub.StartTime.AddDate(0, 0, 30)
	require.WithinDuration(t, wantEnd, sub.EndTime, time.Second)
	require.True(t, sub.StartTime.After(before.Add(-time.Second)))

	active, err := subs.GetActiveWithPlan(context.Background(), agent.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, 3, active.MaxListings)
}

func TestAssignReplacesActiveSubscription(t *testing.T) {
	svc, accounts, plans, subs := newSubscriptionServiceForTest()
	agent := accounts.add(approvedAgent())

	basic := &models.Plan{ID: uuid.New(), Name: "Basic", MaxListings: 3, MaxPhotos: 5, DurationDays: 30, Active: true}
	premium := &models.Plan{ID: uuid.New(), Name: "Premium", MaxListings: 50, MaxPhotos: 20, DurationDays: 30, Active: true}
	plans.plans[basic.ID] = basic
	plans.plans[premium.ID] = premium

	_, err := svc.Assign(context.Background(), agent.ID, basic.ID, "")
	require.NoError(t, err)
	_, err = svc.Assign(context.Background(), agent.ID, premium.ID, "")
	require.NoError(t, err)

	// Exactly one ACTIVE row survives, and it is the premium one.
	activeCount := 0
	for _, s := range subs.subs {
		if s.Status == models.SubscriptionActive {
			activeCount++
			require.Equal(t, premium.ID, s.PlanID)
		}
	}
	require.Equal(t, 1, activeCount)
}

func TestAssignUnknownPlan(t *testing.T) {
	svc, accounts, _, _ := newSubscriptionServiceForTest()
	agent := accounts.add(approvedAgent())

	_, err := svc.Assign(context.Background(), agent.ID, uuid.New(), "")
	require.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestAssignUnknownAccount(t *testing.T) {
	svc, _, plans, _ := newSubscriptionServiceForTest()
	plan := &models.Plan{ID: uuid.New(), Name: "Basic", DurationDays: 30, Active: true}
	plans.plans[plan.ID] = plan

	_, err := svc.Assign(context.Background(), uuid.New(), plan.ID, "")
	require.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestMyPlanAbsent(t *testing.T) {
	svc, accounts, _, _ := newSubscriptionServiceForTest()
	agent := accounts.add(approvedAgent())

	sub, err := svc.MyPlan(context.Background(), agent.ID)
	require.NoError(t, err)
	require.Nil(t, sub)
}

func TestExpireDueSubscriptions(t *testing.T) {
	accounts := newFakeAccountRepo()
	plans := newFakePlanRepo()
	subs := newFakeSubscriptionRepo(plans)
	notifications := &fakeNotificationRepo{}
	notifier := NewNotificationService(notifications, accounts)
	maintenance := NewMaintenanceService(subs, notifier)

	agent := accounts.add(approvedAgent())
	plan := &models.Plan{ID: uuid.New(), Name: "Basic", DurationDays: 30, Active: true}
	plans.plans[plan.ID] = plan
	subs.subs = append(subs.subs, &models.Subscription{
		ID:        uuid.New(),
		AccountID: agent.ID,
		PlanID:    plan.ID,
		StartTime: time.Now().Add(-48 * time.Hour),
		EndTime:   time.Now().Add(-time.Hour),
		Status:    models.SubscriptionActive,
	})

	maintenance.ExpireDueSubscriptions(context.Background())

	require.Equal(t, models.SubscriptionExpired, subs.subs[0].Status)
	require.Len(t, notifications.created, 1)
	require.Equal(t, agent.ID, notifications.created[0].AccountID)
}
