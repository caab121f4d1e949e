package helper

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Web Development", 0, "web-development"},
		{"  Data   Science!  ", 0, "data-science"},
		{"Crème Brûlée 101", 0, "creme-brulee-101"},
		{"///", 0, "item"},
		{"", 0, "item"},
		{"a-very-long-category-name", 10, "a-very-lon"},
	}

	for _, tc := range cases {
		got := Slugify(tc.in, tc.maxLen)
		if got != tc.want {
			t.Errorf("Slugify(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}
