package memory

import (
	"context"
	"sync"

	"eventplanner/internal/domain"
)

// DraftRepository keeps drafts in process memory. It is used when no
// database is configured; drafts do not survive a restart.
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]*domain.EventDraft
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[string]*domain.EventDraft)}
}

func (r *DraftRepository) Save(ctx context.Context, d *domain.EventDraft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := copyDraft(d)
	if prev, ok := r.drafts[d.ID]; ok {
		stored.CreatedAt = prev.CreatedAt
	}
	r.drafts[d.ID] = stored
	return nil
}

func (r *DraftRepository) GetByID(ctx context.Context, id string) (*domain.EventDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drafts[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return copyDraft(d), nil
}

func copyDraft(d *domain.EventDraft) *domain.EventDraft {
	out := *d
	out.Dates = append([]string(nil), d.Dates...)
	out.IncludedCategories = append([]domain.CategoryID(nil), d.IncludedCategories...)
	out.Bookings = make([]domain.DraftBooking, len(d.Bookings))
	for i, b := range d.Bookings {
		b.Dates = append([]string(nil), b.Dates...)
		out.Bookings[i] = b
	}
	return &out
}
