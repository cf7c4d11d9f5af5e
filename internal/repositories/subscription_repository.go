package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
)

type SubscriptionRepository interface {
	// GetActiveWithPlan returns the account's ACTIVE, unexpired subscription
	// joined with its plan limits, or nil if the account has none.
	GetActiveWithPlan(ctx context.Context, accountID uuid.UUID) (*models.ActiveSubscription, error)

	// AssignAtomic cancels any prior ACTIVE subscription of the account and
	// inserts the new one in a single transaction.
	AssignAtomic(ctx context.Context, sub *models.Subscription) error

	// ExpireDue flips ACTIVE rows whose end_time has passed to EXPIRED and
	// returns the affected account ids.
	ExpireDue(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

type subscriptionRepo struct {
	db DB
}

func NewSubscriptionRepository(db DB) SubscriptionRepository {
	return &subscriptionRepo{db}
}

func (r *subscriptionRepo) GetActiveWithPlan(ctx context.Context, accountID uuid.UUID) (*models.ActiveSubscription, error) {
	row := r.db.QueryRow(ctx, `
        SELECT s.id, s.account_id, s.plan_id, s.start_time, s.end_time,
               s.status, s.payment_reference,
               p.name, p.max_listings, p.max_photos
        FROM subscriptions s
        JOIN plans p ON s.plan_id = p.id
        WHERE s.account_id = $1 AND s.status = $2 AND s.end_time > NOW()
        ORDER BY s.start_time DESC
        LIMIT 1
    `, accountID, models.SubscriptionActive)

	var a models.ActiveSubscription
	err := row.Scan(
		&a.ID, &a.AccountID, &a.PlanID, &a.StartTime, &a.EndTime,
		&a.Status, &a.PaymentReference,
		&a.PlanName, &a.MaxListings, &a.MaxPhotos,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *subscriptionRepo) AssignAtomic(ctx context.Context, sub *models.Subscription) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
        UPDATE subscriptions SET status=$1
        WHERE account_id=$2 AND status=$3
    `, models.SubscriptionCancelled, sub.AccountID, models.SubscriptionActive)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO subscriptions (
            id, account_id, plan_id, start_time, end_time, status, payment_reference
        ) VALUES ($1,$2,$3,$4,$5,$6,$7)
    `,
		sub.ID, sub.AccountID, sub.PlanID, sub.StartTime, sub.EndTime,
		sub.Status, sub.PaymentReference,
	)
	return err
}

func (r *subscriptionRepo) ExpireDue(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `
        UPDATE subscriptions SET status=$1
        WHERE status=$2 AND end_time <= $3
        RETURNING account_id
    `, models.SubscriptionExpired, models.SubscriptionActive, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
