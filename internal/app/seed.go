package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

// SeedBaseData inserts the rows a fresh installation needs to be usable: a
// default admin, the starter plans, the province/city reference data and
// the site configuration row. Every insert is idempotent.
func SeedBaseData(ctx context.Context, a *App) error {
	if err := seedAdmin(ctx, a); err != nil {
		return err
	}
	if err := seedPlans(ctx, a); err != nil {
		return err
	}
	if err := seedLocations(ctx, a); err != nil {
		return err
	}

	_, err := a.DB.Exec(ctx, `
        INSERT INTO site_config (id, admin_whatsapp)
        VALUES (1, '+593999999999')
        ON CONFLICT (id) DO NOTHING
    `)
	return err
}

func seedAdmin(ctx context.Context, a *App) error {
	hash, err := utils.HashPassword("ChangeMeNow!1")
	if err != nil {
		return err
	}
	_, err = a.DB.Exec(ctx, `
        INSERT INTO accounts (id, name, email, password_hash, role, agent_status, created_at, updated_at)
        VALUES ($1, 'Administrator', 'admin@inmobiliaria.local', $2, $3, $4, NOW(), NOW())
        ON CONFLICT (email) DO NOTHING
    `, uuid.New(), hash, models.RoleAdmin, models.AgentNotRequested)
	return err
}

func seedPlans(ctx context.Context, a *App) error {
	plans := []struct {
		name         string
		price        float64
		maxListings  int
		maxPhotos    int
		durationDays int
		priority     int
	}{
		{"Basic", 9.99, 3, 5, 30, 1},
		{"Professional", 24.99, 15, 10, 30, 2},
		{"Premium", 49.99, 50, 20, 30, 3},
	}
	for _, p := range plans {
		_, err := a.DB.Exec(ctx, `
            INSERT INTO plans (id, name, price, max_listings, max_photos,
                               duration_days, search_priority, description, active, created_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,'',true, NOW())
            ON CONFLICT (name) DO NOTHING
        `, uuid.New(), p.name, p.price, p.maxListings, p.maxPhotos, p.durationDays, p.priority)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedLocations(ctx context.Context, a *App) error {
	// Ecuadorian provinces with a handful of cities each; enough reference
	// data for the filters to work out of the box.
	locations := map[string][]string{
		"Azuay":                          {"Cuenca", "Gualaceo"},
		"Bolívar":                        {"Guaranda"},
		"Cañar":                          {"Azogues"},
		"Carchi":                         {"Tulcán"},
		"Chimborazo":                     {"Riobamba"},
		"Cotopaxi":                       {"Latacunga"},
		"El Oro":                         {"Machala", "Pasaje"},
		"Esmeraldas":                     {"Esmeraldas"},
		"Galápagos":                      {"Puerto Ayora"},
		"Guayas":                         {"Guayaquil", "Durán", "Samborondón"},
		"Imbabura":                       {"Ibarra", "Otavalo"},
		"Loja":                           {"Loja"},
		"Los Ríos":                       {"Babahoyo", "Quevedo"},
		"Manabí":                         {"Portoviejo", "Manta"},
		"Morona Santiago":                {"Macas"},
		"Napo":                           {"Tena"},
		"Orellana":                       {"Francisco de Orellana"},
		"Pastaza":                        {"Puyo"},
		"Pichincha":                      {"Quito", "Cayambe", "Sangolquí"},
		"Santa Elena":                    {"Santa Elena", "Salinas"},
		"Santo Domingo de los Tsáchilas": {"Santo Domingo"},
		"Sucumbíos":                      {"Nueva Loja"},
		"Tungurahua":                     {"Ambato", "Baños"},
		"Zamora Chinchipe":               {"Zamora"},
	}

	for province, cities := range locations {
		provinceID := uuid.New()
		_, err := a.DB.Exec(ctx, `
            INSERT INTO provinces (id, name) VALUES ($1, $2)
            ON CONFLICT (name) DO NOTHING
        `, provinceID, province)
		if err != nil {
			return err
		}

		// Re-read the id in case the row already existed.
		if err := a.DB.QueryRow(ctx,
			`SELECT id FROM provinces WHERE name=$1`, province,
		).Scan(&provinceID); err != nil {
			return err
		}

		for _, city := range cities {
			_, err := a.DB.Exec(ctx, `
                INSERT INTO cities (id, province_id, name) VALUES ($1, $2, $3)
                ON CONFLICT (province_id, name) DO NOTHING
            `, uuid.New(), provinceID, city)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
