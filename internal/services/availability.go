package services

import (
	"time"

	"eventplanner/internal/domain"
)

// AvailabilityIndex answers eligibility questions against one immutable
// catalog snapshot. It never mutates providers.
type AvailabilityIndex struct {
	catalog *domain.Catalog
}

func NewAvailabilityIndex(catalog *domain.Catalog) *AvailabilityIndex {
	if catalog == nil {
		catalog = domain.NewCatalog(nil, time.Time{})
	}
	return &AvailabilityIndex{catalog: catalog}
}

func (ix *AvailabilityIndex) Catalog() *domain.Catalog {
	return ix.catalog
}

// EligibleProviders returns the providers of category available on at least
// one day of dates. An empty date set yields no providers.
func (ix *AvailabilityIndex) EligibleProviders(category domain.CategoryID, dates domain.DateSet) []*domain.Provider {
	return EligibleProviders(ix.catalog.Providers(category), dates)
}

// CandidateDates returns the days of universe on which every included
// category has at least one available provider.
func (ix *AvailabilityIndex) CandidateDates(included []domain.CategoryID, universe domain.DateSet) domain.DateSet {
	return CandidateDates(ix.catalog.ByCategory(), included, universe)
}

// EligibleProviders filters providers to those whose availability intersects dates.
func EligibleProviders(providers []*domain.Provider, dates domain.DateSet) []*domain.Provider {
	out := []*domain.Provider{}
	if len(dates) == 0 {
		return out
	}
	for _, p := range providers {
		if p.Availability.Intersects(dates) {
			out = append(out, p)
		}
	}
	return out
}

// CandidateDates is a per-day AND across the included categories. One
// membership set is built per category, restricted to universe, and the sets
// are then reduced day by day, so the cost is
// O(categories x providers x min(availability, universe)) + O(categories x universe).
// The result is always a subset of universe.
func CandidateDates(byCategory map[domain.CategoryID][]*domain.Provider, included []domain.CategoryID, universe domain.DateSet) domain.DateSet {
	if len(universe) == 0 {
		return domain.DateSet{}
	}
	memberships := make([]domain.DateSet, 0, len(included))
	for _, c := range included {
		m := categoryMembership(byCategory[c], universe)
		if len(m) == 0 {
			return domain.DateSet{}
		}
		memberships = append(memberships, m)
	}

	out := domain.DateSet{}
	for d := range universe {
		ok := true
		for _, m := range memberships {
			if !m.Has(d) {
				ok = false
				break
			}
		}
		if ok {
			out.Add(d)
		}
	}
	return out
}

// categoryMembership marks the days of universe covered by any provider.
func categoryMembership(providers []*domain.Provider, universe domain.DateSet) domain.DateSet {
	m := domain.DateSet{}
	for _, p := range providers {
		if len(p.Availability) < len(universe) {
			for d := range p.Availability {
				if universe.Has(d) {
					m.Add(d)
				}
			}
			continue
		}
		for d := range universe {
			if p.Availability.Has(d) {
				m.Add(d)
			}
		}
	}
	return m
}
