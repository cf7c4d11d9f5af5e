package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
)

type FavoriteRepository interface {
	Exists(ctx context.Context, accountID, propertyID uuid.UUID) (bool, error)
	Insert(ctx context.Context, accountID, propertyID uuid.UUID) error
	Delete(ctx context.Context, accountID, propertyID uuid.UUID) error

	// ListByAccount returns the favorited properties, most recently
	// favorited first, with the catalog-style annotations.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.PropertySummary, error)
}

type favoriteRepo struct {
	db DB
}

func NewFavoriteRepository(db DB) FavoriteRepository {
	return &favoriteRepo{db}
}

func (r *favoriteRepo) Exists(ctx context.Context, accountID, propertyID uuid.UUID) (bool, error) {
	var n int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM favorites WHERE account_id=$1 AND property_id=$2
    `, accountID, propertyID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *favoriteRepo) Insert(ctx context.Context, accountID, propertyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO favorites (account_id, property_id, added_at) VALUES ($1,$2, NOW())
    `, accountID, propertyID)
	return err
}

func (r *favoriteRepo) Delete(ctx context.Context, accountID, propertyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
        DELETE FROM favorites WHERE account_id=$1 AND property_id=$2
    `, accountID, propertyID)
	return err
}

func (r *favoriteRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.PropertySummary, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+summaryColumns()+`
        FROM favorites fav
        JOIN properties p ON p.id = fav.property_id
        JOIN accounts u ON p.owner_id = u.id
        WHERE fav.account_id = $1
        ORDER BY fav.added_at DESC
    `, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.PropertySummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
