package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"eventplanner/internal/domain"
)

// maxCatalogBytes caps the size of a fetched catalog document.
const maxCatalogBytes = 8 << 20

// HTTPSource fetches the catalog document (same YAML or JSON shape as the
// file source) from a URL.
type HTTPSource struct {
	url         string
	client      *http.Client
	horizonDays int
	now         func() time.Time
}

// NewHTTPSource returns a source that GETs url. A nil client uses http.DefaultClient.
func NewHTTPSource(url string, client *http.Client, horizonDays int) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return &HTTPSource{url: url, client: client, horizonDays: horizonDays, now: time.Now}
}

func (s *HTTPSource) Load(ctx context.Context) (*domain.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/yaml, application/json;q=0.9")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint returned status: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(data) > maxCatalogBytes {
		return nil, fmt.Errorf("catalog exceeds %d bytes", maxCatalogBytes)
	}

	now := s.now()
	providers, err := Parse(data, domain.DateOf(now), s.horizonDays)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return domain.NewCatalog(providers, now), nil
}
