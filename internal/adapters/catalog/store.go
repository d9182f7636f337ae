package catalog

import (
	"sync/atomic"
	"time"

	"eventplanner/internal/domain"
)

// Store hands out the current immutable catalog snapshot. Replacing the
// snapshot never affects sessions already holding the previous one.
type Store struct {
	current atomic.Pointer[domain.Catalog]
}

// NewStore starts with initial, or an empty catalog when initial is nil.
func NewStore(initial *domain.Catalog) *Store {
	s := &Store{}
	if initial == nil {
		initial = domain.NewCatalog(nil, time.Time{})
	}
	s.current.Store(initial)
	return s
}

func (s *Store) Current() *domain.Catalog {
	return s.current.Load()
}

func (s *Store) Replace(c *domain.Catalog) {
	if c != nil {
		s.current.Store(c)
	}
}
