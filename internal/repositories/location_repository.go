package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
)

type LocationRepository interface {
	ListProvinces(ctx context.Context) ([]*models.Province, error)
	ListCities(ctx context.Context, provinceID uuid.UUID) ([]*models.City, error)
}

// SiteConfigRepository reads the single public configuration row.
type SiteConfigRepository interface {
	Get(ctx context.Context) (*models.SiteConfig, error)
}

type locationRepo struct {
	db DB
}

func NewLocationRepository(db DB) LocationRepository {
	return &locationRepo{db}
}

func (r *locationRepo) ListProvinces(ctx context.Context) ([]*models.Province, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM provinces ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Province
	for rows.Next() {
		var p models.Province
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *locationRepo) ListCities(ctx context.Context, provinceID uuid.UUID) ([]*models.City, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, province_id, name FROM cities WHERE province_id=$1 ORDER BY name ASC
    `, provinceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.City
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.ProvinceID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

type siteConfigRepo struct {
	db DB
}

func NewSiteConfigRepository(db DB) SiteConfigRepository {
	return &siteConfigRepo{db}
}

func (r *siteConfigRepo) Get(ctx context.Context) (*models.SiteConfig, error) {
	var c models.SiteConfig
	err := r.db.QueryRow(ctx,
		`SELECT admin_whatsapp FROM site_config WHERE id = 1`,
	).Scan(&c.AdminWhatsApp)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
