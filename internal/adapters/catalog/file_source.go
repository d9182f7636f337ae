package catalog

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"eventplanner/internal/domain"
)

// DefaultHorizonDays bounds recurrence expansion when none is configured.
const DefaultHorizonDays = 365

type fileDoc struct {
	Providers []fileProvider `yaml:"providers"`
}

type fileRange struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type fileProvider struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Category   string      `yaml:"category"`
	Dates      []string    `yaml:"dates"`
	Ranges     []fileRange `yaml:"ranges"`
	RRule      string      `yaml:"rrule"`
	RRuleStart string      `yaml:"rrule_start"`
	ExDates    []string    `yaml:"exdates"`
}

// FileSource loads the provider catalog from a YAML file. Availability is the
// union of explicit dates, closed ranges and an optional RRULE expanded over
// [today, today+horizon], minus exdates.
type FileSource struct {
	path        string
	horizonDays int
	now         func() time.Time
}

func NewFileSource(path string, horizonDays int) *FileSource {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return &FileSource{path: path, horizonDays: horizonDays, now: time.Now}
}

func (s *FileSource) Load(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	now := s.now()
	providers, err := Parse(data, domain.DateOf(now), s.horizonDays)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", s.path, err)
	}
	return domain.NewCatalog(providers, now), nil
}

// Parse decodes a YAML catalog. from and horizonDays bound RRULE expansion.
func Parse(data []byte, from domain.CalendarDate, horizonDays int) ([]*domain.Provider, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	until := from.AddDays(horizonDays)
	seen := make(map[string]bool, len(doc.Providers))
	out := make([]*domain.Provider, 0, len(doc.Providers))
	for i, fp := range doc.Providers {
		if fp.ID == "" {
			return nil, fmt.Errorf("provider #%d: missing id", i+1)
		}
		if seen[fp.ID] {
			return nil, fmt.Errorf("provider %s: duplicate id", fp.ID)
		}
		seen[fp.ID] = true
		category, err := domain.ParseCategory(fp.Category)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", fp.ID, err)
		}
		availability, err := fp.availability(from, until)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", fp.ID, err)
		}
		name := fp.Name
		if name == "" {
			name = fp.ID
		}
		out = append(out, domain.NewProvider(fp.ID, name, category, availability))
	}
	return out, nil
}

func (fp fileProvider) availability(from, until domain.CalendarDate) (domain.DateSet, error) {
	set, err := domain.ParseDateSet(fp.Dates)
	if err != nil {
		return nil, err
	}
	for _, r := range fp.Ranges {
		start, err := domain.ParseDate(r.From)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseDate(r.To)
		if err != nil {
			return nil, err
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: range %s..%s ends before it starts", domain.ErrInvalidInput, r.From, r.To)
		}
		for d := range domain.DatesBetween(start, end) {
			set.Add(d)
		}
	}
	exdates, err := domain.ParseDateSet(fp.ExDates)
	if err != nil {
		return nil, err
	}
	if fp.RRule != "" {
		var start *domain.CalendarDate
		if fp.RRuleStart != "" {
			d, err := domain.ParseDate(fp.RRuleStart)
			if err != nil {
				return nil, err
			}
			start = &d
		}
		occurrences, err := expandRRule(fp.RRule, start, exdates, from, until)
		if err != nil {
			return nil, err
		}
		for d := range occurrences {
			set.Add(d)
		}
	}
	for d := range exdates {
		set.Remove(d)
	}
	return set, nil
}

// expandRRule returns the days of an all-day recurrence inside [from, until].
// raw is either a single RRULE line, which may carry DTSTART as a rule part,
// or a multi-line block such as "DTSTART:...\nRRULE:...". An explicit start
// overrides the DTSTART of raw; without either the recurrence starts at from.
func expandRRule(raw string, start *domain.CalendarDate, exdates domain.DateSet, from, until domain.CalendarDate) (domain.DateSet, error) {
	set, err := parseRecurrence(strings.TrimSpace(raw), start, from)
	if err != nil {
		return nil, fmt.Errorf("%w: rrule %q: %v", domain.ErrInvalidInput, raw, err)
	}
	for d := range exdates {
		set.ExDate(d.Time())
	}

	out := domain.DateSet{}
	for _, t := range set.Between(from.Time(), until.Time(), true) {
		out.Add(domain.DateOf(t.UTC()))
	}
	return out, nil
}

func parseRecurrence(raw string, start *domain.CalendarDate, from domain.CalendarDate) (*rrule.Set, error) {
	if strings.ContainsAny(raw, "\r\n") {
		set, err := rrule.StrToRRuleSet(strings.ReplaceAll(raw, "\r\n", "\n"))
		if err != nil {
			return nil, err
		}
		switch {
		case start != nil:
			set.DTStart(start.Time())
		case set.GetDTStart().IsZero():
			set.DTStart(from.Time())
		}
		return set, nil
	}

	opt, err := rrule.StrToROption(strings.TrimPrefix(raw, "RRULE:"))
	if err != nil {
		return nil, err
	}
	switch {
	case start != nil:
		opt.Dtstart = start.Time()
	case opt.Dtstart.IsZero():
		opt.Dtstart = from.Time()
	}
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, err
	}
	set := &rrule.Set{}
	set.RRule(r)
	return set, nil
}
