package domain

import "fmt"

// SelectionMode is how the user picks the event's dates.
type SelectionMode string

const (
	ModeSingle   SelectionMode = "single"
	ModeRange    SelectionMode = "range"
	ModeMultiSet SelectionMode = "multi"
)

// ParseSelectionMode validates a mode name.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch m := SelectionMode(s); m {
	case ModeSingle, ModeRange, ModeMultiSet:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown selection mode %q", ErrInvalidInput, s)
}

// DateSelection is the event-level date selection. It is a closed sum type:
// only SingleSelection, RangeSelection and MultiSelection implement it, so a
// selection can never hold the values of two modes at once.
type DateSelection interface {
	Mode() SelectionMode
	// EventDates returns the concrete set of days implied by the selection.
	EventDates() DateSet
	click(d CalendarDate) DateSelection
}

// SingleSelection holds at most one day.
type SingleSelection struct {
	Date *CalendarDate
}

func (SingleSelection) Mode() SelectionMode { return ModeSingle }

func (s SingleSelection) EventDates() DateSet {
	if s.Date == nil {
		return DateSet{}
	}
	return NewDateSet(*s.Date)
}

func (SingleSelection) click(d CalendarDate) DateSelection {
	return SingleSelection{Date: &d}
}

// RangeSelection is a closed interval. When both bounds are set Start <= End.
type RangeSelection struct {
	Start *CalendarDate
	End   *CalendarDate
}

func (RangeSelection) Mode() SelectionMode { return ModeRange }

func (r RangeSelection) EventDates() DateSet {
	if r.Start == nil || r.End == nil {
		return DateSet{}
	}
	return DatesBetween(*r.Start, *r.End)
}

// Complete reports whether both bounds are set.
func (r RangeSelection) Complete() bool {
	return r.Start != nil && r.End != nil
}

func (r RangeSelection) click(d CalendarDate) DateSelection {
	if r.Start == nil || r.Complete() {
		return RangeSelection{Start: &d}
	}
	start := *r.Start
	if d.Before(start) {
		return RangeSelection{Start: &d, End: &start}
	}
	return RangeSelection{Start: &start, End: &d}
}

// MultiSelection is an arbitrary set of days.
type MultiSelection struct {
	dates DateSet
}

// NewMultiSelection returns a selection holding a copy of dates.
func NewMultiSelection(dates DateSet) MultiSelection {
	return MultiSelection{dates: dates.Clone()}
}

func (MultiSelection) Mode() SelectionMode { return ModeMultiSet }

func (m MultiSelection) EventDates() DateSet {
	return m.dates.Clone()
}

func (m MultiSelection) click(d CalendarDate) DateSelection {
	next := m.dates.Clone()
	if next.Has(d) {
		next.Remove(d)
	} else {
		next.Add(d)
	}
	return MultiSelection{dates: next}
}

// emptySelection returns the initial state of a mode.
func emptySelection(m SelectionMode) DateSelection {
	switch m {
	case ModeRange:
		return RangeSelection{}
	case ModeMultiSet:
		return MultiSelection{dates: DateSet{}}
	default:
		return SingleSelection{}
	}
}

// DateSelector is the state machine owning the event-level selection.
// The zero value is not usable; use NewDateSelector.
type DateSelector struct {
	current DateSelection
}

// NewDateSelector starts in Single mode with no date.
func NewDateSelector() *DateSelector {
	return &DateSelector{current: SingleSelection{}}
}

func (s *DateSelector) Mode() SelectionMode {
	return s.current.Mode()
}

// Selection returns the current immutable selection value.
func (s *DateSelector) Selection() DateSelection {
	return s.current
}

// EventDates is recomputed on every call from the current state.
func (s *DateSelector) EventDates() DateSet {
	return s.current.EventDates()
}

// SetMode switches to m and starts it empty. Values of the previous mode are
// discarded rather than converted. Selecting the active mode again is a no-op
// and reports false: re-sending the current mode keeps the selection, so
// callers that want to start over within a mode must switch away and back.
func (s *DateSelector) SetMode(m SelectionMode) (bool, error) {
	if _, err := ParseSelectionMode(string(m)); err != nil {
		return false, err
	}
	if m == s.current.Mode() {
		return false, nil
	}
	s.current = emptySelection(m)
	return true, nil
}

// Preview returns the selection a click on d would produce without applying it.
func (s *DateSelector) Preview(d CalendarDate) DateSelection {
	return s.current.click(d)
}

// Click applies a date click according to the active mode.
func (s *DateSelector) Click(d CalendarDate) {
	s.current = s.current.click(d)
}

// Restore replaces the state wholesale, normalizing an inverted range.
func (s *DateSelector) Restore(sel DateSelection) {
	if r, ok := sel.(RangeSelection); ok && r.Complete() && r.End.Before(*r.Start) {
		sel = RangeSelection{Start: r.End, End: r.Start}
	}
	if sel == nil {
		sel = SingleSelection{}
	}
	s.current = sel
}

// DayCount returns how many event days sel covers without expanding them.
func DayCount(sel DateSelection) int {
	switch t := sel.(type) {
	case SingleSelection:
		if t.Date != nil {
			return 1
		}
	case RangeSelection:
		if t.Complete() {
			n := t.Start.DaysUntil(*t.End)
			if n < 0 {
				n = -n
			}
			return n + 1
		}
	case MultiSelection:
		return len(t.dates)
	}
	return 0
}

// SelectionView is the flat, serializable form of a DateSelection.
// swagger:model SelectionView
type SelectionView struct {
	Mode  SelectionMode `json:"mode"`
	Date  *CalendarDate `json:"date,omitempty"`
	Start *CalendarDate `json:"start,omitempty"`
	End   *CalendarDate `json:"end,omitempty"`
	Dates DateSet       `json:"dates"`
}

// ViewOf flattens a selection. Dates always carries EventDates().
func ViewOf(sel DateSelection) SelectionView {
	v := SelectionView{Mode: sel.Mode(), Dates: sel.EventDates()}
	switch t := sel.(type) {
	case SingleSelection:
		v.Date = t.Date
	case RangeSelection:
		v.Start, v.End = t.Start, t.End
	}
	return v
}

// SelectionFromView rebuilds a selection from its flat form.
func SelectionFromView(v SelectionView) (DateSelection, error) {
	switch v.Mode {
	case ModeSingle:
		return SingleSelection{Date: v.Date}, nil
	case ModeRange:
		if v.Start == nil && v.End != nil {
			return nil, fmt.Errorf("%w: range end without start", ErrInvalidInput)
		}
		r := RangeSelection{Start: v.Start, End: v.End}
		if r.Complete() && r.End.Before(*r.Start) {
			r.Start, r.End = r.End, r.Start
		}
		return r, nil
	case ModeMultiSet:
		if v.Dates == nil {
			return NewMultiSelection(DateSet{}), nil
		}
		return NewMultiSelection(v.Dates), nil
	}
	return nil, fmt.Errorf("%w: unknown selection mode %q", ErrInvalidInput, v.Mode)
}
