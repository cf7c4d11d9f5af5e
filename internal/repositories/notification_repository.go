package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*models.Notification, error)
	MarkAllRead(ctx context.Context, accountID uuid.UUID) error
}

type notificationRepo struct {
	db DB
}

func NewNotificationRepository(db DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) Create(ctx context.Context, n *models.Notification) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO notifications (id, account_id, message, kind, link, read, created_at)
        VALUES ($1,$2,$3,$4,$5,false, NOW())
    `, n.ID, n.AccountID, n.Message, n.Kind, n.Link)
	return err
}

func (r *notificationRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*models.Notification, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, account_id, message, kind, link, read, created_at
        FROM notifications
        WHERE account_id=$1
        ORDER BY created_at DESC
        LIMIT $2
    `, accountID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.Message, &n.Kind, &n.Link, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, accountID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        UPDATE notifications SET read=true WHERE account_id=$1
    `, accountID)
	return err
}
