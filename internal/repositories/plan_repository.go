package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
)

type PlanRepository interface {
	Create(ctx context.Context, p *models.Plan) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Plan, error)
	ListActive(ctx context.Context) ([]*models.Plan, error)
	Update(ctx context.Context, p *models.Plan) error
}

type planRepo struct {
	db DB
}

func NewPlanRepository(db DB) PlanRepository {
	return &planRepo{db}
}

func (r *planRepo) Create(ctx context.Context, p *models.Plan) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO plans (
            id, name, price, sale_price, max_listings, max_photos,
            duration_days, search_priority, description, active, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, NOW())
    `,
		p.ID, p.Name, p.Price, p.SalePrice, p.MaxListings, p.MaxPhotos,
		p.DurationDays, p.SearchPriority, p.Description, p.Active,
	)
	return err
}

func (r *planRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Plan, error) {
	row := r.db.QueryRow(ctx, baseSelectPlan()+" WHERE id=$1", id)
	return scanPlan(row)
}

func (r *planRepo) ListActive(ctx context.Context) ([]*models.Plan, error) {
	rows, err := r.db.Query(ctx, baseSelectPlan()+" WHERE active = true ORDER BY price ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *planRepo) Update(ctx context.Context, p *models.Plan) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE plans SET
            name=$1, price=$2, sale_price=$3, max_listings=$4, max_photos=$5,
            duration_days=$6, search_priority=$7, description=$8, active=$9
        WHERE id=$10
    `,
		p.Name, p.Price, p.SalePrice, p.MaxListings, p.MaxPhotos,
		p.DurationDays, p.SearchPriority, p.Description, p.Active,
		p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectPlan() string {
	return `
        SELECT
            id, name, price, sale_price, max_listings, max_photos,
            duration_days, search_priority, description, active, created_at
        FROM plans
    `
}

func scanPlan(row pgx.Row) (*models.Plan, error) {
	var p models.Plan
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.SalePrice,
		&p.MaxListings,
		&p.MaxPhotos,
		&p.DurationDays,
		&p.SearchPriority,
		&p.Description,
		&p.Active,
		&p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
