package catalog

import (
	"context"
	"fmt"
	"time"

	"eventplanner/internal/domain"
)

// RepositorySource builds snapshots from a ProviderRepository.
type RepositorySource struct {
	repo domain.ProviderRepository
	now  func() time.Time
}

func NewRepositorySource(repo domain.ProviderRepository) *RepositorySource {
	return &RepositorySource{repo: repo, now: time.Now}
}

func (s *RepositorySource) Load(ctx context.Context) (*domain.Catalog, error) {
	providers, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return domain.NewCatalog(providers, s.now()), nil
}
