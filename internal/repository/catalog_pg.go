package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"smart-advisor/internal/domain"
)

// PgCatalogSource loads the catalog from Postgres, with the trait vector
// stored in a pgvector column. Like the CSV source it runs once at
// startup; the engine never writes back.
type PgCatalogSource struct {
	pool *pgxpool.Pool
}

func NewPgCatalogSource(pool *pgxpool.Pool) *PgCatalogSource {
	return &PgCatalogSource{pool: pool}
}

// Load reads the dimension list and programme rows and returns the
// validated, immutable catalog.
func (s *PgCatalogSource) Load(ctx context.Context) (*domain.Catalog, error) {
	const dimQuery = `
		SELECT name
		FROM trait_dimensions
		ORDER BY position
	`
	rows, err := s.pool.Query(ctx, dimQuery)
	if err != nil {
		return nil, fmt.Errorf("query trait dimensions: %w", err)
	}
	defer rows.Close()

	var dims []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan trait dimension: %w", err)
		}
		dims = append(dims, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read trait dimensions: %w", err)
	}

	space, err := domain.NewTraitSpace(dims)
	if err != nil {
		return nil, &domain.CatalogLoadError{Reason: err.Error()}
	}

	const itemQuery = `
		SELECT id, name, faculty, traits
		FROM programmes
		ORDER BY position
	`
	itemRows, err := s.pool.Query(ctx, itemQuery)
	if err != nil {
		return nil, fmt.Errorf("query programmes: %w", err)
	}
	defer itemRows.Close()

	items, err := scanProgrammes(itemRows, space)
	if err != nil {
		return nil, err
	}
	return domain.NewCatalog(space, items)
}

func scanProgrammes(rows pgxRows, space *domain.TraitSpace) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	record := 0
	for rows.Next() {
		record++
		var item domain.CatalogItem
		var traits pgvector.Vector
		if err := rows.Scan(&item.ID, &item.Name, &item.Faculty, &traits); err != nil {
			return nil, &domain.CatalogLoadError{Record: record, Reason: err.Error()}
		}
		raw := traits.Slice()
		if len(raw) != space.Dim() {
			return nil, &domain.CatalogLoadError{
				Record: record,
				Reason: fmt.Sprintf("item %q has %d trait values, want %d", item.ID, len(raw), space.Dim()),
			}
		}
		vector := make(domain.Vector, 0, len(raw))
		for i, v := range raw {
			if v < 0 {
				return nil, &domain.CatalogLoadError{
					Record: record,
					Reason: fmt.Sprintf("item %q has negative trait value at position %d", item.ID, i),
				}
			}
			vector = append(vector, float64(v))
		}
		item.Vector = vector
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read programmes: %w", err)
	}
	return items, nil
}

// pgxRows is a minimal interface to allow scanning from pgx rows and
// simplify testing.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
