package service

import (
	"strings"

	"gorm.io/gorm"
)

// Price tiers accepted by the search endpoint.
const (
	PriceLevelFree = "free"
	PriceLevelPaid = "paid"
)

// SearchFilters is the normalized search/filter input. Empty fields
// match everything.
type SearchFilters struct {
	Query        string
	CategorySlug string
	PriceLevel   string
	SkillLevel   string
}

// NormalizeSearchFilters trims inputs and folds the price tier to the
// known values. Unknown tiers are dropped rather than rejected.
func NormalizeSearchFilters(query, category, priceLevel, skillLevel string) SearchFilters {
	f := SearchFilters{
		Query:        strings.TrimSpace(query),
		CategorySlug: strings.ToLower(strings.TrimSpace(category)),
		SkillLevel:   strings.TrimSpace(skillLevel),
	}
	switch strings.ToLower(strings.TrimSpace(priceLevel)) {
	case PriceLevelFree:
		f.PriceLevel = PriceLevelFree
	case PriceLevelPaid:
		f.PriceLevel = PriceLevelPaid
	}
	return f
}

// IsEmpty reports whether the filter matches all courses.
func (f SearchFilters) IsEmpty() bool {
	return f.Query == "" && f.CategorySlug == "" && f.PriceLevel == "" && f.SkillLevel == ""
}

// Apply narrows a courses query. The free-text group is one AND'd
// OR-group over name, level and price cast to text; the structured
// constraints are plain ANDs. Ordering stays with the caller.
func (f SearchFilters) Apply(q *gorm.DB) *gorm.DB {
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(
			"(course_name ILIKE ? OR course_level ILIKE ? OR CAST(course_price AS TEXT) ILIKE ?)",
			like, like, like,
		)
	}
	if f.CategorySlug != "" {
		q = q.Where(
			"course_part_id IN (SELECT part_id FROM parts WHERE LOWER(part_slug) = ?)",
			f.CategorySlug,
		)
	}
	switch f.PriceLevel {
	case PriceLevelFree:
		q = q.Where("course_price = 0")
	case PriceLevelPaid:
		q = q.Where("course_price > 0")
	}
	if f.SkillLevel != "" {
		q = q.Where("course_level = ?", f.SkillLevel)
	}
	return q
}
