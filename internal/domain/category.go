package domain

import (
	"fmt"
	"strings"
)

// BuildCategory is the closed set of kinds a build can be.
type BuildCategory string

const (
	CategoryCar     BuildCategory = "car"
	CategoryBike    BuildCategory = "bike"
	CategoryProject BuildCategory = "project"
)

// Categories lists every BuildCategory in display order.
var Categories = []BuildCategory{CategoryCar, CategoryBike, CategoryProject}

// Valid reports whether c is one of the known categories.
func (c BuildCategory) Valid() bool {
	switch c {
	case CategoryCar, CategoryBike, CategoryProject:
		return true
	}
	return false
}

// CategoryFilter selects builds for a feed. It is either FilterAll or one of
// the BuildCategory values.
type CategoryFilter string

// FilterAll matches every build.
const FilterAll CategoryFilter = "all"

// Filters lists every CategoryFilter in tab order.
var Filters = []CategoryFilter{FilterAll, CategoryFilter(CategoryCar), CategoryFilter(CategoryBike), CategoryFilter(CategoryProject)}

// ParseCategoryFilter converts raw query text into a CategoryFilter.
// An empty string means FilterAll. Matching is case-insensitive.
// Returns ErrValidation for anything outside {all, car, bike, project}.
func ParseCategoryFilter(raw string) (CategoryFilter, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" || v == string(FilterAll) {
		return FilterAll, nil
	}
	if BuildCategory(v).Valid() {
		return CategoryFilter(v), nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, raw)
}

// Matches reports whether a build of category c passes the filter.
func (f CategoryFilter) Matches(c BuildCategory) bool {
	return f == FilterAll || BuildCategory(f) == c
}
