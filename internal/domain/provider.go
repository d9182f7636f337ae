package domain

import (
	"context"
	"sort"
	"time"
)

// Provider is a bookable entity of one category with the days it is available.
// swagger:model Provider
type Provider struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     CategoryID `json:"category"`
	Availability DateSet    `json:"availability"`
}

// NewProvider returns a Provider. A nil availability becomes an empty set.
func NewProvider(id, name string, category CategoryID, availability DateSet) *Provider {
	if availability == nil {
		availability = DateSet{}
	}
	return &Provider{
		ID:           id,
		Name:         name,
		Category:     category,
		Availability: availability,
	}
}

// IsAvailable reports whether the provider can be booked on d.
func (p *Provider) IsAvailable(d CalendarDate) bool {
	return p.Availability.Has(d)
}

// Catalog is an immutable snapshot of providers grouped by category.
// Regeneration produces a new Catalog; an existing one is never mutated.
type Catalog struct {
	byCategory map[CategoryID][]*Provider
	byID       map[string]*Provider
	loadedAt   time.Time
}

// NewCatalog builds a snapshot. Providers of unknown categories are skipped and
// a later duplicate id replaces an earlier one.
func NewCatalog(providers []*Provider, loadedAt time.Time) *Catalog {
	c := &Catalog{
		byCategory: make(map[CategoryID][]*Provider),
		byID:       make(map[string]*Provider, len(providers)),
		loadedAt:   loadedAt,
	}
	for _, p := range providers {
		if p == nil || !p.Category.Valid() {
			continue
		}
		c.byID[p.ID] = p
	}
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := c.byID[id]
		c.byCategory[p.Category] = append(c.byCategory[p.Category], p)
	}
	return c
}

// Provider returns the provider with the given id.
func (c *Catalog) Provider(id string) (*Provider, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Providers returns the providers of a category ordered by id.
func (c *Catalog) Providers(category CategoryID) []*Provider {
	return c.byCategory[category]
}

// ByCategory exposes the grouping used by availability queries.
func (c *Catalog) ByCategory() map[CategoryID][]*Provider {
	return c.byCategory
}

func (c *Catalog) Len() int { return len(c.byID) }
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// CatalogSource produces catalog snapshots (YAML file, postgres, ...).
type CatalogSource interface {
	Load(ctx context.Context) (*Catalog, error)
}

// CatalogProvider hands out the most recent snapshot.
type CatalogProvider interface {
	Current() *Catalog
}

// ProviderRepository defines storage of providers and their availability.
type ProviderRepository interface {
	ListAll(ctx context.Context) ([]*Provider, error)
	ListByCategory(ctx context.Context, category CategoryID, params PaginationParams) ([]*Provider, int, error)
	GetByID(ctx context.Context, id string) (*Provider, error)
}
