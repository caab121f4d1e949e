package service

import "testing"

func TestNormalizeSearchFilters(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		category   string
		priceLevel string
		skillLevel string
		want       SearchFilters
	}{
		{
			name: "all empty",
			want: SearchFilters{},
		},
		{
			name:  "query trimmed",
			query: "  golang  ",
			want:  SearchFilters{Query: "golang"},
		},
		{
			name:     "category lowercased",
			category: " Web-Dev ",
			want:     SearchFilters{CategorySlug: "web-dev"},
		},
		{
			name:       "price free",
			priceLevel: "Free",
			want:       SearchFilters{PriceLevel: "free"},
		},
		{
			name:       "price paid",
			priceLevel: "PAID",
			want:       SearchFilters{PriceLevel: "paid"},
		},
		{
			name:       "unknown price dropped",
			priceLevel: "cheap",
			want:       SearchFilters{},
		},
		{
			name:       "skill level kept verbatim",
			skillLevel: " Beginner ",
			want:       SearchFilters{SkillLevel: "Beginner"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSearchFilters(tt.query, tt.category, tt.priceLevel, tt.skillLevel)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSearchFiltersIsEmpty(t *testing.T) {
	if !(SearchFilters{}).IsEmpty() {
		t.Error("zero filters should be empty")
	}
	if (SearchFilters{Query: "x"}).IsEmpty() {
		t.Error("query filter should not be empty")
	}
	if (SearchFilters{PriceLevel: PriceLevelFree}).IsEmpty() {
		t.Error("price filter should not be empty")
	}
}
