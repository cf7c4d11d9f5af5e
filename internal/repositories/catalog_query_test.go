package repositories

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const ownerStandingPredicate = `(u.agent_status = 'APPROVED' OR u.role IN ('ADMIN','SUPER_ADMIN'))`

func TestCatalogQueryAlwaysFiltersOwnerStanding(t *testing.T) {
	sql, args := buildCatalogQuery(CatalogFilter{}, nil)

	require.Contains(t, sql, ownerStandingPredicate)
	require.Contains(t, sql, "ORDER BY p.published_at DESC")

	// Anonymous viewer still binds $1 so the favorites join is well-formed.
	require.Len(t, args, 1)
	require.Nil(t, args[0])
}

func TestCatalogQueryFilters(t *testing.T) {
	min, max := 50000.0, 120000.0
	viewer := uuid.New()
	f := CatalogFilter{
		Operation: "Sale",
		Province:  "Pichincha",
		City:      "Quito",
		Category:  "House",
		MinPrice:  &min,
		MaxPrice:  &max,
	}

	sql, args := buildCatalogQuery(f, &viewer)

	// The standing predicate survives no matter how many filters apply.
	require.Contains(t, sql, ownerStandingPredicate)

	require.Contains(t, sql, "p.operation = $2")
	require.Contains(t, sql, "p.province = $3")
	require.Contains(t, sql, "p.city = $4")
	require.Contains(t, sql, "p.category = $5")
	require.Contains(t, sql, "p.price >= $6")
	require.Contains(t, sql, "p.price <= $7")

	require.Equal(t, []interface{}{&viewer, "Sale", "Pichincha", "Quito", "House", min, max}, args)
}

func TestCatalogQueryPlaceholderNumbering(t *testing.T) {
	// A sparse filter set must still number placeholders contiguously.
	max := 80000.0
	sql, args := buildCatalogQuery(CatalogFilter{City: "Manta", MaxPrice: &max}, nil)

	require.Contains(t, sql, "p.city = $2")
	require.Contains(t, sql, "p.price <= $3")
	require.NotContains(t, sql, "$4")
	require.Len(t, args, 3)

	// Filters are AND-combined in the WHERE clause.
	_, where, found := strings.Cut(sql, " WHERE ")
	require.True(t, found)
	require.Equal(t, 2, strings.Count(where, " AND "))
}
