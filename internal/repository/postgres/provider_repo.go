package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventplanner/internal/domain"
)

type providerRepository struct {
	DB *sql.DB
}

func NewProviderRepository(db *sql.DB) domain.ProviderRepository {
	return &providerRepository{
		DB: db,
	}
}

const providerSelect = `
	SELECT p.id, p.name, p.category,
		COALESCE(array_agg(a.date::text ORDER BY a.date) FILTER (WHERE a.date IS NOT NULL), '{}') AS dates
	FROM providers p
	LEFT JOIN provider_availability a ON a.provider_id = p.id
`

func scanProvider(row interface{ Scan(...any) error }) (*domain.Provider, error) {
	var id, name, category string
	var dates []string
	if err := row.Scan(&id, &name, &category, pq.Array(&dates)); err != nil {
		return nil, err
	}
	availability, err := domain.ParseDateSet(dates)
	if err != nil {
		return nil, fmt.Errorf("provider %s availability: %w", id, err)
	}
	return domain.NewProvider(id, name, domain.CategoryID(category), availability), nil
}

func (r *providerRepository) ListAll(ctx context.Context) ([]*domain.Provider, error) {
	query := providerSelect + `
	GROUP BY p.id, p.name, p.category
	ORDER BY p.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var providers []*domain.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (r *providerRepository) ListByCategory(ctx context.Context, category domain.CategoryID, params domain.PaginationParams) ([]*domain.Provider, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM providers WHERE category = $1`, string(category)).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := providerSelect + `
	WHERE p.category = $1
	GROUP BY p.id, p.name, p.category
	ORDER BY p.id
	LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, string(category), params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	providers := []*domain.Provider{}
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, 0, err
		}
		providers = append(providers, p)
	}
	return providers, total, rows.Err()
}

func (r *providerRepository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	query := providerSelect + `
	WHERE p.id = $1
	GROUP BY p.id, p.name, p.category
	`
	p, err := scanProvider(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, err
	}
	return p, nil
}
