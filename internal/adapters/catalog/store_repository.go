package catalog

import (
	"context"
	"fmt"

	"eventplanner/internal/domain"
)

// StoreRepository serves ProviderRepository reads from the current snapshot of
// a Store. It backs the catalog endpoints when providers come from a file.
type StoreRepository struct {
	store domain.CatalogProvider
}

func NewStoreRepository(store domain.CatalogProvider) *StoreRepository {
	return &StoreRepository{store: store}
}

// ListAll returns every provider grouped by category in category order.
func (r *StoreRepository) ListAll(ctx context.Context) ([]*domain.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := r.store.Current()
	out := make([]*domain.Provider, 0, c.Len())
	for _, cat := range domain.AllCategories {
		out = append(out, c.Providers(cat)...)
	}
	return out, nil
}

func (r *StoreRepository) ListByCategory(ctx context.Context, category domain.CategoryID, params domain.PaginationParams) ([]*domain.Provider, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	all := r.store.Current().Providers(category)
	start, end := params.Window(len(all))
	page := make([]*domain.Provider, end-start)
	copy(page, all[start:end])
	return page, len(all), nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := r.store.Current().Provider(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotFound, id)
	}
	return p, nil
}
