package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
)

/* ------------------------------------------------------------------
   In-memory fakes for the repository interfaces.
------------------------------------------------------------------ */

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*models.Account)}
}

func (f *fakeAccountRepo) add(a *models.Account) *models.Account {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.accounts[a.ID] = a
	return a
}

func (f *fakeAccountRepo) Create(_ context.Context, a *models.Account) error {
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Account, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateProfile(_ context.Context, a *models.Account) error {
	f.accounts[a.ID] = a
	return nil
}

func (f *fakeAccountRepo) SetAgentRequest(_ context.Context, id uuid.UUID, phone, bio, document string) error {
	a := f.accounts[id]
	a.AgentStatus = models.AgentPending
	a.Phone = phone
	a.Bio = bio
	a.DocumentNumber = &document
	return nil
}

func (f *fakeAccountRepo) SetStanding(_ context.Context, id uuid.UUID, s models.AccountStanding) error {
	a := f.accounts[id]
	a.Role, a.AgentStatus = s.Project()
	return nil
}

func (f *fakeAccountRepo) DocumentInUse(_ context.Context, document string, excludeID uuid.UUID) (bool, error) {
	for _, a := range f.accounts {
		if a.ID != excludeID && a.DocumentNumber != nil && *a.DocumentNumber == document {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccountRepo) ListAgentRequests(_ context.Context) ([]*models.Account, error) {
	var out []*models.Account
	for _, a := range f.accounts {
		if a.AgentStatus != models.AgentNotRequested {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) ListAgents(_ context.Context) ([]*models.AgentOverview, error) {
	var out []*models.AgentOverview
	for _, a := range f.accounts {
		if a.Role == models.RoleAgent {
			out = append(out, &models.AgentOverview{ID: a.ID, Name: a.Name, AgentStatus: a.AgentStatus})
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) ListAdminIDs(_ context.Context) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, a := range f.accounts {
		if a.Role == models.RoleAdmin || a.Role == models.RoleSuperAdmin {
			out = append(out, a.ID)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.accounts, id)
	return nil
}

type fakePropertyRepo struct {
	properties map[uuid.UUID]*models.Property
	photos     map[uuid.UUID][]models.PropertyPhoto
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{
		properties: make(map[uuid.UUID]*models.Property),
		photos:     make(map[uuid.UUID][]models.PropertyPhoto),
	}
}

func (f *fakePropertyRepo) CreateWithPhotos(_ context.Context, p *models.Property, photoURLs []string) error {
	f.properties[p.ID] = p
	for i, url := range photoURLs {
		f.photos[p.ID] = append(f.photos[p.ID], models.PropertyPhoto{
			ID: uuid.New(), PropertyID: p.ID, URL: url, Position: i,
		})
	}
	return nil
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) GetPhotos(_ context.Context, propertyID uuid.UUID) ([]models.PropertyPhoto, error) {
	return f.photos[propertyID], nil
}

func (f *fakePropertyRepo) Catalog(_ context.Context, _ repositories.CatalogFilter, _ *uuid.UUID) ([]*models.PropertySummary, error) {
	return nil, nil
}

func (f *fakePropertyRepo) Detail(_ context.Context, id uuid.UUID, _ *uuid.UUID) (*models.PropertyDetail, error) {
	p := f.properties[id]
	if p == nil {
		return nil, nil
	}
	return &models.PropertyDetail{Property: *p}, nil
}

func (f *fakePropertyRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.PropertySummary, error) {
	var out []*models.PropertySummary
	for _, p := range f.properties {
		if p.OwnerID == ownerID {
			out = append(out, &models.PropertySummary{Property: *p})
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) CountByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	n := 0
	for _, p := range f.properties {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *fakePropertyRepo) Update(_ context.Context, p *models.Property) error {
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.properties, id)
	return nil
}

type fakeSubscriptionRepo struct {
	subs  []*models.Subscription
	plans map[uuid.UUID]*models.Plan
}

func newFakeSubscriptionRepo(plans *fakePlanRepo) *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{plans: plans.plans}
}

func (f *fakeSubscriptionRepo) GetActiveWithPlan(_ context.Context, accountID uuid.UUID) (*models.ActiveSubscription, error) {
	for _, s := range f.subs {
		if s.AccountID == accountID && s.Status == models.SubscriptionActive && s.EndTime.After(time.Now()) {
			plan := f.plans[s.PlanID]
			return &models.ActiveSubscription{
				Subscription: *s,
				PlanName:     plan.Name,
				MaxListings:  plan.MaxListings,
				MaxPhotos:    plan.MaxPhotos,
			}, nil
		}
	}
	return nil, nil
}

func (f *fakeSubscriptionRepo) AssignAtomic(_ context.Context, sub *models.Subscription) error {
	for _, s := range f.subs {
		if s.AccountID == sub.AccountID && s.Status == models.SubscriptionActive {
			s.Status = models.SubscriptionCancelled
		}
	}
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeSubscriptionRepo) ExpireDue(_ context.Context, now time.Time) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, s := range f.subs {
		if s.Status == models.SubscriptionActive && !s.EndTime.After(now) {
			s.Status = models.SubscriptionExpired
			out = append(out, s.AccountID)
		}
	}
	return out, nil
}

type fakePlanRepo struct {
	plans map[uuid.UUID]*models.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[uuid.UUID]*models.Plan)}
}

func (f *fakePlanRepo) Create(_ context.Context, p *models.Plan) error {
	f.plans[p.ID] = p
	return nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Plan, error) {
	return f.plans[id], nil
}

func (f *fakePlanRepo) ListActive(_ context.Context) ([]*models.Plan, error) {
	var out []*models.Plan
	for _, p := range f.plans {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) Update(_ context.Context, p *models.Plan) error {
	f.plans[p.ID] = p
	return nil
}

type fakeFavoriteRepo struct {
	pairs map[[2]uuid.UUID]bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{pairs: make(map[[2]uuid.UUID]bool)}
}

func (f *fakeFavoriteRepo) Exists(_ context.Context, accountID, propertyID uuid.UUID) (bool, error) {
	return f.pairs[[2]uuid.UUID{accountID, propertyID}], nil
}

func (f *fakeFavoriteRepo) Insert(_ context.Context, accountID, propertyID uuid.UUID) error {
	f.pairs[[2]uuid.UUID{accountID, propertyID}] = true
	return nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, accountID, propertyID uuid.UUID) error {
	delete(f.pairs, [2]uuid.UUID{accountID, propertyID})
	return nil
}

func (f *fakeFavoriteRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*models.PropertySummary, error) {
	return nil, nil
}

type fakeNotificationRepo struct {
	created []*models.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) ListByAccount(_ context.Context, accountID uuid.UUID, _ int) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.created {
		if n.AccountID == accountID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, accountID uuid.UUID) error {
	for _, n := range f.created {
		if n.AccountID == accountID {
			n.Read = true
		}
	}
	return nil
}

/* ------------------------------------------------------------------
   Shared fixtures
------------------------------------------------------------------ */

func approvedAgent() *models.Account {
	return &models.Account{
		ID:          uuid.New(),
		Name:        "Agent Test",
		Email:       "agent@example.com",
		Role:        models.RoleAgent,
		AgentStatus: models.AgentApproved,
	}
}

func plainClient() *models.Account {
	return &models.Account{
		ID:          uuid.New(),
		Name:        "Client Test",
		Email:       "client@example.com",
		Role:        models.RoleClient,
		AgentStatus: models.AgentNotRequested,
	}
}

func adminAccount() *models.Account {
	return &models.Account{
		ID:          uuid.New(),
		Name:        "Admin Test",
		Email:       "admin@example.com",
		Role:        models.RoleAdmin,
		AgentStatus: models.AgentNotRequested,
	}
}

func activePlanFor(plans *fakePlanRepo, subs *fakeSubscriptionRepo, accountID uuid.UUID, maxListings, maxPhotos int) {
	plan := &models.Plan{
		ID:           uuid.New(),
		Name:         "Test Plan",
		MaxListings:  maxListings,
		MaxPhotos:    maxPhotos,
		DurationDays: 30,
		Active:       true,
	}
	plans.plans[plan.ID] = plan
	subs.subs = append(subs.subs, &models.Subscription{
		ID:        uuid.New(),
		AccountID: accountID,
		PlanID:    plan.ID,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(24 * time.Hour),
		Status:    models.SubscriptionActive,
	})
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
