package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventplanner/internal/domain"
)

// sessionEntry guards one Planner. Its mutex makes the session a single
// serialized writer.
type sessionEntry struct {
	mu      sync.Mutex
	planner *Planner
	draftID string
	deleted bool
}

type plannerService struct {
	catalog        domain.CatalogProvider
	drafts         domain.DraftRepository
	emailService   domain.EmailService
	exporter       domain.CalendarExporter
	logger         *slog.Logger
	contextTimeout time.Duration
	sessionTTL     time.Duration
	maxEventDays   int
	now            func() time.Time
	newID          func() string

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewPlannerService returns a PlannerService over the given collaborators.
// emailService may be nil, in which case no notifications are sent.
// maxEventDays caps the days one selection may cover; 0 disables the cap.
func NewPlannerService(
	catalog domain.CatalogProvider,
	drafts domain.DraftRepository,
	emailService domain.EmailService,
	exporter domain.CalendarExporter,
	logger *slog.Logger,
	timeout time.Duration,
	sessionTTL time.Duration,
	maxEventDays int,
) domain.PlannerService {
	return &plannerService{
		catalog:        catalog,
		drafts:         drafts,
		emailService:   emailService,
		exporter:       exporter,
		logger:         logger,
		contextTimeout: timeout,
		sessionTTL:     sessionTTL,
		maxEventDays:   maxEventDays,
		now:            time.Now,
		newID:          uuid.NewString,
		sessions:       make(map[string]*sessionEntry),
	}
}

func (s *plannerService) register(p *Planner, draftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[p.ID] = &sessionEntry{planner: p, draftID: draftID}
}

// checkSpan rejects selections covering more days than the configured cap.
func (s *plannerService) checkSpan(sel domain.DateSelection) error {
	if s.maxEventDays <= 0 {
		return nil
	}
	if n := domain.DayCount(sel); n > s.maxEventDays {
		return fmt.Errorf("%w: selection covers %d days, the limit is %d", domain.ErrInvalidInput, n, s.maxEventDays)
	}
	return nil
}

// withSession runs fn with exclusive access to the session.
func (s *plannerService) withSession(ctx context.Context, sessionID string, fn func(e *sessionEntry) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	e, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return domain.ErrSessionNotFound
	}
	return fn(e)
}

func (s *plannerService) CreateSession(ctx context.Context) (*domain.PlannerSessionView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := NewPlanner(s.newID(), s.catalog.Current(), s.now())
	s.register(p, "")
	s.logger.InfoContext(ctx, "planner session created", "session_id", p.ID, "providers", p.index.Catalog().Len())
	return p.View(), nil
}

func (s *plannerService) GetSession(ctx context.Context, sessionID string) (*domain.PlannerSessionView, error) {
	var view *domain.PlannerSessionView
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		view = e.planner.View()
		return nil
	})
	return view, err
}

func (s *plannerService) DeleteSession(ctx context.Context, sessionID string) error {
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		e.deleted = true
		return nil
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

// PurgeExpired drops sessions idle for longer than the session TTL.
func (s *plannerService) PurgeExpired(ctx context.Context, now time.Time) int {
	if s.sessionTTL <= 0 {
		return 0
	}
	s.mu.Lock()
	entries := make(map[string]*sessionEntry, len(s.sessions))
	for id, e := range s.sessions {
		entries[id] = e
	}
	s.mu.Unlock()

	purged := 0
	for id, e := range entries {
		e.mu.Lock()
		expired := !e.deleted && now.Sub(e.planner.updatedAt) > s.sessionTTL
		if expired {
			e.deleted = true
		}
		e.mu.Unlock()
		if !expired {
			continue
		}
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		purged++
	}
	if purged > 0 {
		s.logger.InfoContext(ctx, "expired planner sessions purged", "count", purged)
	}
	return purged
}

func (s *plannerService) SetMode(ctx context.Context, sessionID string, mode domain.SelectionMode) (*domain.DateChangeResult, error) {
	var res *domain.DateChangeResult
	var notice *domain.BookingsInvalidatedEmailData
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		var err error
		res, err = e.planner.SetMode(mode)
		if err != nil {
			return err
		}
		e.planner.touch(s.now())
		notice = s.afterCascade(ctx, e.planner, res.Cascade)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyInvalidated(ctx, notice)
	return res, nil
}

func (s *plannerService) ClickDate(ctx context.Context, sessionID string, date domain.CalendarDate) (*domain.DateChangeResult, error) {
	var res *domain.DateChangeResult
	var notice *domain.BookingsInvalidatedEmailData
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		if err := s.checkSpan(e.planner.PreviewClick(date)); err != nil {
			return err
		}
		res = e.planner.Click(date)
		e.planner.touch(s.now())
		notice = s.afterCascade(ctx, e.planner, res.Cascade)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.notifyInvalidated(ctx, notice)
	return res, nil
}

// afterCascade logs a non-empty cascade and prepares the notice email when the
// session has a contact address.
func (s *plannerService) afterCascade(ctx context.Context, p *Planner, report domain.CascadeReport) *domain.BookingsInvalidatedEmailData {
	if report.Empty() {
		return nil
	}
	s.logger.InfoContext(ctx, "bookings invalidated by date change",
		"session_id", p.ID,
		"providers", report.AffectedProviderIDs(),
	)
	return s.cascadeNotice(p, report)
}

// cascadeNotice builds the email telling the session's contact which bookings
// a cascade dropped or shrank. It returns nil when there is nobody to tell.
func (s *plannerService) cascadeNotice(p *Planner, report domain.CascadeReport) *domain.BookingsInvalidatedEmailData {
	if report.Empty() {
		return nil
	}
	if p.contactEmail == "" || s.emailService == nil {
		return nil
	}
	catalog := p.index.Catalog()
	data := &domain.BookingsInvalidatedEmailData{
		Email: p.contactEmail,
		Dates: p.EventDates().Strings(),
	}
	for _, c := range report.Changes {
		line := domain.EmailBookingLine{
			ProviderName: providerName(catalog, c.ProviderID),
			Category:     c.Category,
			Dates:        c.Removed.Strings(),
		}
		if c.Deleted {
			data.Dropped = append(data.Dropped, line)
		} else {
			data.Shrunk = append(data.Shrunk, line)
		}
	}
	return data
}

func (s *plannerService) notifyInvalidated(ctx context.Context, data *domain.BookingsInvalidatedEmailData) {
	if data == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.emailService.SendBookingsInvalidated(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "bookings invalidated email failed", "email", data.Email, "err", err)
	}
}

func providerName(catalog *domain.Catalog, id string) string {
	if p, ok := catalog.Provider(id); ok && p.Name != "" {
		return p.Name
	}
	return id
}

func (s *plannerService) SetCategoryIncluded(ctx context.Context, sessionID string, category domain.CategoryID, included bool) ([]domain.Category, error) {
	var out []domain.Category
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		if err := e.planner.SetCategoryIncluded(category, included); err != nil {
			return err
		}
		e.planner.touch(s.now())
		out = e.planner.Categories()
		return nil
	})
	return out, err
}

func (s *plannerService) SetContactEmail(ctx context.Context, sessionID, email string) error {
	return s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		e.planner.contactEmail = email
		e.planner.touch(s.now())
		return nil
	})
}

func (s *plannerService) EligibleProviders(ctx context.Context, sessionID string, category domain.CategoryID) ([]*domain.Provider, error) {
	var out []*domain.Provider
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		var err error
		out, err = e.planner.EligibleProviders(category)
		return err
	})
	return out, err
}

func (s *plannerService) CandidateDates(ctx context.Context, sessionID string) (domain.DateSet, error) {
	var out domain.DateSet
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		out = e.planner.CandidateDates()
		return nil
	})
	return out, err
}

func (s *plannerService) SelectDate(ctx context.Context, sessionID string, in domain.SelectDateInput) (domain.DateSet, error) {
	var out domain.DateSet
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		var err error
		out, err = e.planner.SelectDate(in)
		if err != nil {
			return err
		}
		e.planner.touch(s.now())
		return nil
	})
	return out, err
}

func (s *plannerService) Confirm(ctx context.Context, sessionID, providerID string) (*domain.ProviderBooking, error) {
	var out *domain.ProviderBooking
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		var err error
		out, err = e.planner.Confirm(providerID)
		if err != nil {
			return err
		}
		e.planner.touch(s.now())
		return nil
	})
	return out, err
}

func (s *plannerService) Cancel(ctx context.Context, sessionID, providerID string) error {
	return s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		e.planner.Cancel(providerID)
		e.planner.touch(s.now())
		return nil
	})
}

func (s *plannerService) Booking(ctx context.Context, sessionID, providerID string) (*domain.ProviderBooking, error) {
	var out *domain.ProviderBooking
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		b, ok := e.planner.Booking(providerID)
		if !ok {
			return fmt.Errorf("booking for %s: %w", providerID, domain.ErrNotFound)
		}
		out = b
		return nil
	})
	return out, err
}

func (s *plannerService) Bookings(ctx context.Context, sessionID string) ([]*domain.ProviderBooking, error) {
	var out []*domain.ProviderBooking
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		out = e.planner.Bookings()
		return nil
	})
	return out, err
}

func (s *plannerService) Conflicts(ctx context.Context, sessionID string, date domain.CalendarDate, excludingProviderID string) ([]domain.Conflict, error) {
	var out []domain.Conflict
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		out = e.planner.Conflicts(date, excludingProviderID)
		return nil
	})
	return out, err
}

// SaveDraft persists the session. Repeated saves of a session update the same draft.
func (s *plannerService) SaveDraft(ctx context.Context, sessionID string) (*domain.EventDraft, error) {
	var draft *domain.EventDraft
	var catalog *domain.Catalog
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		now := s.now()
		draft = e.planner.Snapshot(now)
		if e.draftID == "" {
			e.draftID = s.newID()
		}
		draft.ID = e.draftID
		catalog = e.planner.index.Catalog()

		saveCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
		defer cancel()
		if err := s.drafts.Save(saveCtx, draft); err != nil {
			return fmt.Errorf("save draft: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if draft.ContactEmail != "" && s.emailService != nil {
		data := &domain.EventSummaryEmailData{
			Email:   draft.ContactEmail,
			DraftID: draft.ID,
			Mode:    draft.Mode,
			Dates:   draft.Dates,
		}
		for _, b := range draft.Bookings {
			data.Bookings = append(data.Bookings, domain.EmailBookingLine{
				ProviderName: providerName(catalog, b.ProviderID),
				Category:     b.Category,
				Dates:        b.Dates,
			})
		}
		mailCtx, cancel := context.WithTimeout(ctx, s.contextTimeout)
		defer cancel()
		if err := s.emailService.SendEventSummary(mailCtx, data); err != nil {
			s.logger.WarnContext(ctx, "event summary email failed", "draft_id", draft.ID, "err", err)
		}
	}
	return draft, nil
}

// RestoreDraft opens a new session from a saved draft against the current catalog.
func (s *plannerService) RestoreDraft(ctx context.Context, draftID string) (*domain.PlannerSessionView, *domain.CascadeReport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	draft, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrDraftNotFound
		}
		return nil, nil, fmt.Errorf("get draft: %w", err)
	}
	sel, err := draft.Selection()
	if err != nil {
		return nil, nil, fmt.Errorf("restore draft %s: %w", draftID, err)
	}
	if err := s.checkSpan(sel); err != nil {
		return nil, nil, fmt.Errorf("restore draft %s: %w", draftID, err)
	}
	p, report, err := RestorePlanner(s.newID(), draft, s.catalog.Current(), s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("restore draft %s: %w", draftID, err)
	}
	// read the planner before it is shared with other requests
	view := p.View()
	notice := s.cascadeNotice(p, report)
	s.register(p, draft.ID)
	if !report.Empty() {
		s.logger.InfoContext(ctx, "draft restored with invalidated bookings",
			"draft_id", draftID,
			"session_id", p.ID,
			"providers", report.AffectedProviderIDs(),
		)
	}
	s.notifyInvalidated(ctx, notice)
	return view, &report, nil
}

func (s *plannerService) ExportCalendar(ctx context.Context, sessionID string) ([]byte, error) {
	var out []byte
	err := s.withSession(ctx, sessionID, func(e *sessionEntry) error {
		draft := e.planner.Snapshot(s.now())
		draft.ID = e.draftID
		var err error
		out, err = s.exporter.Export(draft, e.planner.index.Catalog())
		if err != nil {
			return fmt.Errorf("export calendar: %w", err)
		}
		return nil
	})
	return out, err
}
