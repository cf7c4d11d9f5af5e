package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type AccountRepository interface {
	Create(ctx context.Context, a *models.Account) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	UpdateProfile(ctx context.Context, a *models.Account) error

	// SetAgentRequest flips the account to PENDING and records the
	// contact/bio/document fields the request carried.
	SetAgentRequest(ctx context.Context, id uuid.UUID, phone, bio, document string) error

	// SetStanding projects the tagged standing onto the two stored columns.
	SetStanding(ctx context.Context, id uuid.UUID, s models.AccountStanding) error

	DocumentInUse(ctx context.Context, document string, excludeID uuid.UUID) (bool, error)

	ListAgentRequests(ctx context.Context) ([]*models.Account, error)
	ListAgents(ctx context.Context) ([]*models.AgentOverview, error)
	ListAdminIDs(ctx context.Context) ([]uuid.UUID, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type accountRepo struct {
	db DB
}

func NewAccountRepository(db DB) AccountRepository {
	return &accountRepo{db}
}

func (r *accountRepo) Create(ctx context.Context, a *models.Account) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO accounts (
            id, name, email, password_hash, role, agent_status,
            avatar_url, external_id, created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW())
    `,
		a.ID,
		a.Name,
		a.Email,
		a.PasswordHash,
		a.Role,
		a.AgentStatus,
		a.AvatarURL,
		a.ExternalID,
	)
	return err
}

func (r *accountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	row := r.db.QueryRow(ctx, baseSelectAccount()+" WHERE id=$1", id)
	return scanAccount(row)
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRow(ctx, baseSelectAccount()+" WHERE email=$1", email)
	return scanAccount(row)
}

func (r *accountRepo) UpdateProfile(ctx context.Context, a *models.Account) error {
	_, err := r.db.Exec(ctx, `
        UPDATE accounts SET
            name=$1, phone=$2, avatar_url=$3, bio=$4, logo_url=$5,
            facebook=$6, instagram=$7, website=$8, province=$9, city=$10,
            updated_at=NOW()
        WHERE id=$11
    `,
		a.Name, a.Phone, a.AvatarURL, a.Bio, a.LogoURL,
		a.Facebook, a.Instagram, a.Website, a.Province, a.City,
		a.ID,
	)
	return err
}

func (r *accountRepo) SetAgentRequest(ctx context.Context, id uuid.UUID, phone, bio, document string) error {
	_, err := r.db.Exec(ctx, `
        UPDATE accounts SET
            agent_status=$1, phone=$2, bio=$3, document_number=$4, updated_at=NOW()
        WHERE id=$5
    `, models.AgentPending, phone, bio, document, id)
	return err
}

func (r *accountRepo) SetStanding(ctx context.Context, id uuid.UUID, s models.AccountStanding) error {
	role, status := s.Project()
	tag, err := r.db.Exec(ctx, `
        UPDATE accounts SET role=$1, agent_status=$2, updated_at=NOW() WHERE id=$3
    `, role, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepo) DocumentInUse(ctx context.Context, document string, excludeID uuid.UUID) (bool, error) {
	var n int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*) FROM accounts WHERE document_number=$1 AND id<>$2
    `, document, excludeID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *accountRepo) ListAgentRequests(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.Query(ctx,
		baseSelectAccount()+" WHERE agent_status<>$1 ORDER BY created_at DESC",
		models.AgentNotRequested,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountRepo) ListAgents(ctx context.Context) ([]*models.AgentOverview, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, email, phone, agent_status, avatar_url,
               (SELECT COUNT(*) FROM properties WHERE owner_id = accounts.id) AS total_listings
        FROM accounts
        WHERE role=$1 OR agent_status IN ($2,$3)
        ORDER BY name ASC
    `, models.RoleAgent, models.AgentApproved, models.AgentSuspended)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.AgentOverview
	for rows.Next() {
		var o models.AgentOverview
		if err := rows.Scan(
			&o.ID, &o.Name, &o.Email, &o.Phone, &o.AgentStatus, &o.AvatarURL, &o.TotalListings,
		); err != nil {
			return nil, err
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

func (r *accountRepo) ListAdminIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM accounts WHERE role IN ($1,$2)`,
		models.RoleAdmin, models.RoleSuperAdmin,
	)
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

func (r *accountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectAccount() string {
	return `
        SELECT
            id, name, email, password_hash, role, agent_status,
            phone, bio, avatar_url, logo_url, document_number,
            facebook, instagram, website, province, city,
            external_id, created_at, updated_at
        FROM accounts
    `
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.AgentStatus,
		&a.Phone,
		&a.Bio,
		&a.AvatarURL,
		&a.LogoURL,
		&a.DocumentNumber,
		&a.Facebook,
		&a.Instagram,
		&a.Website,
		&a.Province,
		&a.City,
		&a.ExternalID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
