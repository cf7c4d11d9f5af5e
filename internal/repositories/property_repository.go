package repositories

import (
	"fmt"
	"strings"

	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// CatalogFilter holds the optional public-browse filters. Zero values mean
// "no constraint"; all present filters are AND-combined.
type CatalogFilter struct {
	Operation string
	Province  string
	City      string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
}

type PropertyRepository interface {
	// CreateWithPhotos inserts the property and its ordered photo set in a
	// single transaction; any failure rolls the whole listing back.
	CreateWithPhotos(ctx context.Context, p *models.Property, photoURLs []string) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	GetPhotos(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyPhoto, error)

	// Catalog is the public browse query. Only listings whose owner is an
	// approved agent (or an admin) are ever returned; viewerID, when
	// non-nil, annotates each row with is_favorited.
	Catalog(ctx context.Context, f CatalogFilter, viewerID *uuid.UUID) ([]*models.PropertySummary, error)
	Detail(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*models.PropertyDetail, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.PropertySummary, error)

	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)

	Update(ctx context.Context, p *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db}
}

func (r *propertyRepo) CreateWithPhotos(ctx context.Context, p *models.Property, photoURLs []string) error {
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
        INSERT INTO properties (
            id, owner_id, title, description, price, category, operation,
            bedrooms, bathrooms, area_m2, latitude, longitude, address,
            province, city, amenities, published_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16, NOW(), NOW())
    `,
		p.ID,
		p.OwnerID,
		p.Title,
		p.Description,
		p.Price,
		p.Category,
		p.Operation,
		p.Bedrooms,
		p.Bathrooms,
		p.AreaM2,
		p.Latitude,
		p.Longitude,
		p.Address,
		p.Province,
		p.City,
		p.Amenities,
	)
	if err != nil {
		return err
	}

	for i, url := range photoURLs {
		_, err = tx.Exec(ctx, `
            INSERT INTO property_photos (id, property_id, url, position)
            VALUES ($1,$2,$3,$4)
        `, uuid.New(), p.ID, url, i)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+" WHERE id=$1", id)
	return scanProperty(row)
}

func (r *propertyRepo) GetPhotos(ctx context.Context, propertyID uuid.UUID) ([]models.PropertyPhoto, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, property_id, url, position
        FROM property_photos
        WHERE property_id=$1
        ORDER BY position ASC
    `, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PropertyPhoto
	for rows.Next() {
		var ph models.PropertyPhoto
		if err := rows.Scan(&ph.ID, &ph.PropertyID, &ph.URL, &ph.Position); err != nil {
			return nil, err
		}
		out = append(out, ph)
	}
	return out, rows.Err()
}

func (r *propertyRepo) Catalog(ctx context.Context, f CatalogFilter, viewerID *uuid.UUID) ([]*models.PropertySummary, error) {
	sql, args := buildCatalogQuery(f, viewerID)
	rows, err := r.db.Query(ctx, sql, args...)
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

// buildCatalogQuery assembles the public browse statement. The owner-standing
// predicate is unconditional: listings of suspended or never-approved owners
// never appear, regardless of filters.
func buildCatalogQuery(f CatalogFilter, viewerID *uuid.UUID) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`
        SELECT ` + summaryColumns() + `
        FROM properties p
        JOIN accounts u ON p.owner_id = u.id
        LEFT JOIN favorites fav ON p.id = fav.property_id AND fav.account_id = $1
    `)

	// viewerID may be nil; the left join then matches nothing.
	args := []interface{}{viewerID}

	where := []string{
		`(u.agent_status = 'APPROVED' OR u.role IN ('ADMIN','SUPER_ADMIN'))`,
	}
	idx := 2
	add := func(clause string, val interface{}) {
		where = append(where, fmt.Sprintf(clause, idx))
		args = append(args, val)
		idx++
	}

	if f.Operation != "" {
		add("p.operation = $%d", f.Operation)
	}
	if f.Province != "" {
		add("p.province = $%d", f.Province)
	}
	if f.City != "" {
		add("p.city = $%d", f.City)
	}
	if f.Category != "" {
		add("p.category = $%d", f.Category)
	}
	if f.MinPrice != nil {
		add("p.price >= $%d", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		add("p.price <= $%d", *f.MaxPrice)
	}

	sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	sb.WriteString(" ORDER BY p.published_at DESC")
	return sb.String(), args
}

func (r *propertyRepo) Detail(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*models.PropertyDetail, error) {
	row := r.db.QueryRow(ctx, `
        SELECT `+propertyColumns("p")+`,
               CASE WHEN fav.account_id IS NOT NULL THEN true ELSE false END AS is_favorited,
               u.name, u.phone, u.email, u.avatar_url, u.logo_url, u.bio
        FROM properties p
        JOIN accounts u ON p.owner_id = u.id
        LEFT JOIN favorites fav ON p.id = fav.property_id AND fav.account_id = $2
        WHERE p.id = $1
    `, id, viewerID)

	var d models.PropertyDetail
	err := scanPropertyInto(row, &d.Property,
		&d.IsFavorited,
		&d.AgentName, &d.AgentPhone, &d.AgentEmail,
		&d.AgentAvatarURL, &d.AgentLogoURL, &d.AgentBio,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *propertyRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.PropertySummary, error) {
	rows, err := r.db.Query(ctx, `
        SELECT `+summaryColumns()+`
        FROM properties p
        JOIN accounts u ON p.owner_id = u.id
        LEFT JOIN favorites fav ON p.id = fav.property_id AND fav.account_id = $1
        WHERE p.owner_id = $1
        ORDER BY p.published_at DESC
    `, ownerID)
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

func (r *propertyRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM properties WHERE owner_id=$1`, ownerID,
	).Scan(&n)
	return n, err
}

func (r *propertyRepo) Update(ctx context.Context, p *models.Property) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE properties SET
            title=$1, description=$2, price=$3, category=$4, operation=$5,
            bedrooms=$6, bathrooms=$7, area_m2=$8, latitude=$9, longitude=$10,
            address=$11, province=$12, city=$13, amenities=$14, updated_at=NOW()
        WHERE id=$15
    `,
		p.Title, p.Description, p.Price, p.Category, p.Operation,
		p.Bedrooms, p.Bathrooms, p.AreaM2, p.Latitude, p.Longitude,
		p.Address, p.Province, p.City, p.Amenities,
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

func (r *propertyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ------------------------------------------------------------------
   Column lists / scanners
------------------------------------------------------------------ */

func propertyColumns(alias string) string {
	cols := []string{
		"id", "owner_id", "title", "description", "price", "category",
		"operation", "bedrooms", "bathrooms", "area_m2", "latitude",
		"longitude", "address", "province", "city", "amenities",
		"published_at", "updated_at",
	}
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func baseSelectProperty() string {
	return "SELECT " + propertyColumns("p") + " FROM properties p"
}

func summaryColumns() string {
	return propertyColumns("p") + `,
               (SELECT ph.url FROM property_photos ph
                 WHERE ph.property_id = p.id
                 ORDER BY ph.position ASC LIMIT 1) AS primary_photo,
               u.logo_url AS agent_logo_url,
               CASE WHEN fav.account_id IS NOT NULL THEN true ELSE false END AS is_favorited`
}

func scanPropertyInto(row pgx.Row, p *models.Property, extra ...interface{}) error {
	dest := []interface{}{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Category,
		&p.Operation,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.AreaM2,
		&p.Latitude,
		&p.Longitude,
		&p.Address,
		&p.Province,
		&p.City,
		&p.Amenities,
		&p.PublishedAt,
		&p.UpdatedAt,
	}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	if err := scanPropertyInto(row, &p); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanSummary(row pgx.Row) (*models.PropertySummary, error) {
	var s models.PropertySummary
	var primary *string
	err := scanPropertyInto(row, &s.Property, &primary, &s.AgentLogoURL, &s.IsFavorited)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if primary != nil {
		s.PrimaryPhoto = *primary
	}
	return &s, nil
}
