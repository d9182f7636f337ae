package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DateLayout is the ISO form used for every serialized CalendarDate.
const DateLayout = "2006-01-02"

// CalendarDate is a time-zone-naive day. Two values are equal iff their
// (year, month, day) triples match, so it is safe as a map key.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the CalendarDate for the given triple. Out-of-range values are
// normalized the same way time.Date normalizes them (e.g. June 31 -> July 1).
func NewDate(year int, month time.Month, day int) CalendarDate {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// ParseDate parses an ISO date (YYYY-MM-DD).
func ParseDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals; it panics on malformed input.
func MustParseDate(s string) CalendarDate {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d CalendarDate) Year() int { return d.year }
func (d CalendarDate) Month() time.Month { return d.month }
func (d CalendarDate) Day() int { return d.day }
func (d CalendarDate) IsZero() bool { return d == CalendarDate{} }
func (d CalendarDate) Before(o CalendarDate) bool { return d.Compare(o) < 0 }
func (d CalendarDate) After(o CalendarDate) bool { return d.Compare(o) > 0 }

// Time returns midnight UTC of the day.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// AddDays returns the date n days later (or earlier for negative n).
func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewDate(d.year, d.month, d.day+n)
}

const secondsPerDay = 24 * 60 * 60

// DaysUntil returns the number of days from d to o (negative if o is earlier).
func (d CalendarDate) DaysUntil(o CalendarDate) int {
	return int((o.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as an ISO string so a DATE column never sees a time zone.
func (d CalendarDate) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan accepts DATE columns as returned by lib/pq (time.Time) as well as text.
func (d *CalendarDate) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into CalendarDate", src)
	}
}

// DateSet is a set of CalendarDates.
type DateSet map[CalendarDate]struct{}

func NewDateSet(dates ...CalendarDate) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// DatesBetween expands the closed interval [start, end] day by day.
// An interval whose end precedes its start is empty.
func DatesBetween(start, end CalendarDate) DateSet {
	s := DateSet{}
	for d := start; !d.After(end); d = d.AddDays(1) {
		s[d] = struct{}{}
	}
	return s
}

func (s DateSet) Add(d CalendarDate) { s[d] = struct{}{} }
func (s DateSet) Remove(d CalendarDate) { delete(s, d) }
func (s DateSet) Len() int { return len(s) }
func (s DateSet) Has(d CalendarDate) bool {
	_, ok := s[d]
	return ok
}

func (s DateSet) Clone() DateSet {
	out := make(DateSet, len(s))
	for d := range s {
		out[d] = struct{}{}
	}
	return out
}

// Sorted returns the dates in ascending order.
func (s DateSet) Sorted() []CalendarDate {
	out := make([]CalendarDate, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (s DateSet) Intersect(o DateSet) DateSet {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := DateSet{}
	for d := range small {
		if large.Has(d) {
			out[d] = struct{}{}
		}
	}
	return out
}

func (s DateSet) Intersects(o DateSet) bool {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	for d := range small {
		if large.Has(d) {
			return true
		}
	}
	return false
}

func (s DateSet) SubsetOf(o DateSet) bool {
	if len(s) > len(o) {
		return false
	}
	for d := range s {
		if !o.Has(d) {
			return false
		}
	}
	return true
}

func (s DateSet) Equal(o DateSet) bool {
	return len(s) == len(o) && s.SubsetOf(o)
}

// Strings returns the sorted ISO representation.
func (s DateSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, d := range sorted {
		out[i] = d.String()
	}
	return out
}

// ParseDateSet parses a list of ISO dates; duplicates collapse.
func ParseDateSet(values []string) (DateSet, error) {
	s := make(DateSet, len(values))
	for _, v := range values {
		d, err := ParseDate(v)
		if err != nil {
			return nil, err
		}
		s[d] = struct{}{}
	}
	return s, nil
}

func (s DateSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

func (s *DateSet) UnmarshalJSON(b []byte) error {
	var values []string
	if err := json.Unmarshal(b, &values); err != nil {
		return err
	}
	parsed, err := ParseDateSet(values)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
