package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"eventplanner/internal/domain"
)

// Refresher regenerates the catalog snapshot from its source. A failed load
// keeps the last good snapshot.
type Refresher struct {
	source  domain.CatalogSource
	store   *Store
	logger  *slog.Logger
	timeout time.Duration
}

func NewRefresher(source domain.CatalogSource, store *Store, logger *slog.Logger, timeout time.Duration) *Refresher {
	return &Refresher{source: source, store: store, logger: logger, timeout: timeout}
}

// Refresh loads a new snapshot and publishes it.
func (r *Refresher) Refresh(ctx context.Context) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	c, err := r.source.Load(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "catalog refresh failed", "err", err)
		return err
	}
	r.store.Replace(c)
	r.logger.InfoContext(ctx, "catalog refreshed", "providers", c.Len())
	return nil
}

// Schedule registers the refresh job on c using a cron spec such as "@every 15m".
func (r *Refresher) Schedule(c *cron.Cron, spec string) (cron.EntryID, error) {
	id, err := c.AddFunc(spec, func() {
		_ = r.Refresh(context.Background())
	})
	if err != nil {
		return 0, fmt.Errorf("schedule catalog refresh %q: %w", spec, err)
	}
	return id, nil
}
