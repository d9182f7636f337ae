package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"eventplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june1 = domain.MustParseDate("2024-06-01")

const sampleCatalog = `
providers:
  - id: venue-1
    name: Old Mill
    category: venue
    dates: ["2024-06-01", "2024-06-02"]
  - id: dj-1
    category: DJ
    ranges:
      - from: "2024-06-10"
        to: "2024-06-12"
    exdates: ["2024-06-11"]
  - id: photo-1
    name: Snap
    category: photography
    rrule: "RRULE:FREQ=DAILY;COUNT=3"
    rrule_start: "2024-06-03"
    exdates: ["2024-06-04"]
`

func TestParse(t *testing.T) {
	providers, err := Parse([]byte(sampleCatalog), june1, 30)
	require.NoError(t, err)
	require.Len(t, providers, 3)

	byID := make(map[string]*domain.Provider)
	for _, p := range providers {
		byID[p.ID] = p
	}

	assert.Equal(t, "Old Mill", byID["venue-1"].Name)
	assert.Equal(t, domain.CategoryVenue, byID["venue-1"].Category)
	assert.Equal(t, []string{"2024-06-01", "2024-06-02"}, byID["venue-1"].Availability.Strings())

	assert.Equal(t, "dj-1", byID["dj-1"].Name, "name defaults to id")
	assert.Equal(t, domain.CategoryDJ, byID["dj-1"].Category)
	assert.Equal(t, []string{"2024-06-10", "2024-06-12"}, byID["dj-1"].Availability.Strings())

	assert.Equal(t, []string{"2024-06-03", "2024-06-05"}, byID["photo-1"].Availability.Strings())
}

func TestParse_RRuleBoundedByHorizon(t *testing.T) {
	doc := `
providers:
  - id: bar-1
    category: barService
    rrule: "FREQ=DAILY"
`
	providers, err := Parse([]byte(doc), june1, 2)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, []string{"2024-06-01", "2024-06-02", "2024-06-03"}, providers[0].Availability.Strings())
}

func TestParse_RRuleStart(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  []string
	}{
		{
			name:  "dtstart rule part",
			entry: `rrule: "DTSTART=20240603T000000Z;FREQ=DAILY;COUNT=3"`,
			want:  []string{"2024-06-03", "2024-06-04", "2024-06-05"},
		},
		{
			name:  "dtstart line",
			entry: `rrule: "DTSTART:20240603T000000Z\nRRULE:FREQ=DAILY;INTERVAL=2;COUNT=3"`,
			want:  []string{"2024-06-03", "2024-06-05", "2024-06-07"},
		},
		{
			name:  "dtstart line with exdate line",
			entry: `rrule: "DTSTART:20240603T000000Z\nRRULE:FREQ=DAILY;COUNT=3\nEXDATE:20240604T000000Z"`,
			want:  []string{"2024-06-03", "2024-06-05"},
		},
		{
			name:  "rrule_start overrides dtstart",
			entry: "rrule: \"DTSTART=20240603T000000Z;FREQ=DAILY;COUNT=2\"\n    rrule_start: \"2024-06-10\"",
			want:  []string{"2024-06-10", "2024-06-11"},
		},
		{
			name:  "no dtstart starts at load day",
			entry: `rrule: "FREQ=WEEKLY;COUNT=2"`,
			want:  []string{"2024-06-01", "2024-06-08"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "providers:\n  - id: photo-1\n    category: photography\n    " + tt.entry + "\n"
			providers, err := Parse([]byte(doc), june1, 30)
			require.NoError(t, err)
			require.Len(t, providers, 1)
			assert.Equal(t, tt.want, providers[0].Availability.Strings())
		})
	}
}

func TestParse_RRuleIsStableAcrossLoadDays(t *testing.T) {
	doc := []byte("providers:\n  - id: dj-1\n    category: dj\n    rrule: \"DTSTART=20240601T000000Z;FREQ=DAILY;INTERVAL=3\"\n")
	first, err := Parse(doc, june1, 10)
	require.NoError(t, err)
	later, err := Parse(doc, june1.AddDays(1), 9)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-06-01", "2024-06-04", "2024-06-07", "2024-06-10"}, first[0].Availability.Strings())
	assert.Equal(t, []string{"2024-06-04", "2024-06-07", "2024-06-10"}, later[0].Availability.Strings())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing id",
			doc:     "providers:\n  - category: venue\n",
			wantErr: "missing id",
		},
		{
			name:    "duplicate id",
			doc:     "providers:\n  - id: a\n    category: venue\n  - id: a\n    category: dj\n",
			wantErr: "duplicate id",
		},
		{
			name:    "unknown category",
			doc:     "providers:\n  - id: a\n    category: clowns\n",
			wantErr: "unknown category",
		},
		{
			name:    "bad date",
			doc:     "providers:\n  - id: a\n    category: venue\n    dates: [\"2024-13-01\"]\n",
			wantErr: "provider a",
		},
		{
			name:    "inverted range",
			doc:     "providers:\n  - id: a\n    category: venue\n    ranges:\n      - from: \"2024-06-05\"\n        to: \"2024-06-01\"\n",
			wantErr: "ends before it starts",
		},
		{
			name:    "bad rrule",
			doc:     "providers:\n  - id: a\n    category: venue\n    rrule: \"FREQ=SOMETIMES\"\n",
			wantErr: "rrule",
		},
		{
			name:    "not yaml",
			doc:     "providers: [",
			wantErr: "yaml",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), june1, 30)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_InvalidInputErrors(t *testing.T) {
	_, err := Parse([]byte("providers:\n  - id: a\n    category: clowns\n"), june1, 30)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	src := NewFileSource(path, 30)
	loadedAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	src.now = func() time.Time { return loadedAt }

	c, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, loadedAt, c.LoadedAt())
	p, ok := c.Provider("venue-1")
	require.True(t, ok)
	assert.True(t, p.IsAvailable(june1))
}

func TestFileSource_LoadErrors(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"), 0).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFileSource("catalog.yaml", 0).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
