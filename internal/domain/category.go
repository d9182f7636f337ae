package domain

import (
	"fmt"
	"strings"
)

// CategoryID identifies one of the fixed service categories of an event.
type CategoryID string

const (
	CategoryVenue         CategoryID = "venue"
	CategoryDJ            CategoryID = "dj"
	CategoryCatering      CategoryID = "catering"
	CategoryEntertainment CategoryID = "entertainment"
	CategoryPhotography   CategoryID = "photography"
	CategoryDecoration    CategoryID = "decoration"
	CategoryAudioVisual   CategoryID = "audioVisual"
	CategoryFurniture     CategoryID = "furniture"
	CategoryBarService    CategoryID = "barService"
	CategorySecurity      CategoryID = "security"
)

// AllCategories lists every category in display order.
var AllCategories = []CategoryID{
	CategoryVenue,
	CategoryDJ,
	CategoryCatering,
	CategoryEntertainment,
	CategoryPhotography,
	CategoryDecoration,
	CategoryAudioVisual,
	CategoryFurniture,
	CategoryBarService,
	CategorySecurity,
}

// RequiredCategory is the only category every event must book.
const RequiredCategory = CategoryVenue

// Required reports whether the category can never be excluded.
func (c CategoryID) Required() bool {
	return c == RequiredCategory
}

func (c CategoryID) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category name case-insensitively
// ("audiovisual" and "audioVisual" are the same category).
func ParseCategory(s string) (CategoryID, error) {
	for _, c := range AllCategories {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidInput, s)
}

// Category is a category together with the user's include toggle.
// swagger:model Category
type Category struct {
	ID       CategoryID `json:"id"`
	Required bool       `json:"required"`
	Included bool       `json:"included"`
}

// CategorySettings holds the include toggles of the optional categories.
// The required category is always included regardless of its entry.
type CategorySettings map[CategoryID]bool

// DefaultCategorySettings includes the required category plus dj and catering,
// the three headline categories of an event.
func DefaultCategorySettings() CategorySettings {
	return CategorySettings{
		CategoryVenue:    true,
		CategoryDJ:       true,
		CategoryCatering: true,
	}
}

func (s CategorySettings) IsIncluded(c CategoryID) bool {
	return c.Required() || s[c]
}

// Set toggles an optional category. Excluding the required category is rejected.
func (s CategorySettings) Set(c CategoryID, included bool) error {
	if !c.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, c)
	}
	if c.Required() && !included {
		return fmt.Errorf("%w: category %q is required", ErrInvalidInput, c)
	}
	s[c] = included
	return nil
}

// Included returns the included categories in display order.
func (s CategorySettings) Included() []CategoryID {
	var out []CategoryID
	for _, c := range AllCategories {
		if s.IsIncluded(c) {
			out = append(out, c)
		}
	}
	return out
}

// Categories returns every category with its flags.
func (s CategorySettings) Categories() []Category {
	out := make([]Category, 0, len(AllCategories))
	for _, c := range AllCategories {
		out = append(out, Category{ID: c, Required: c.Required(), Included: s.IsIncluded(c)})
	}
	return out
}

func (s CategorySettings) Clone() CategorySettings {
	out := make(CategorySettings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
