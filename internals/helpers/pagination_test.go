package helper

import "testing"

func TestClampPage(t *testing.T) {
	cases := []struct {
		name    string
		page    int
		total   int64
		perPage int
		want    int
	}{
		{"first page", 1, 10, 4, 1},
		{"middle page", 2, 10, 4, 2},
		{"last partial page", 3, 10, 4, 3},
		{"past the end clamps to last", 99, 10, 4, 3},
		{"non-integer upstream becomes 1", 1, 10, 4, 1},
		{"zero page becomes 1", 0, 10, 4, 1},
		{"negative page becomes 1", -3, 10, 4, 1},
		{"empty set stays on page 1", 7, 0, 4, 1},
		{"exact multiple", 5, 20, 4, 5},
		{"exact multiple past end", 6, 20, 4, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClampPage(tc.page, tc.total, tc.perPage)
			if got != tc.want {
				t.Errorf("ClampPage(%d, %d, %d) = %d, want %d", tc.page, tc.total, tc.perPage, got, tc.want)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(10, 3, 4)
	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages)
	}
	if p.HasNext {
		t.Error("HasNext should be false on the last page")
	}
	if !p.HasPrev {
		t.Error("HasPrev should be true on page 3")
	}

	empty := BuildPaginationFromPage(0, 1, 4)
	if empty.TotalPages != 1 {
		t.Errorf("empty set TotalPages = %d, want 1", empty.TotalPages)
	}
}
