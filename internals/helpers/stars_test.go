package helper

import "testing"

func TestRenderStars(t *testing.T) {
	cases := []struct {
		name string
		mean float64
		want string
	}{
		{"no ratings", 0, "☆☆☆☆☆"},
		{"mean 4.0", 4.0, "⭐⭐⭐⭐☆"},
		{"mean 4.67 rounds to half", 4.67, "⭐⭐⭐⭐½"},
		{"mean 2.5 exactly half", 2.5, "⭐⭐½☆☆"},
		{"mean 2.49 below half", 2.49, "⭐⭐☆☆☆"},
		{"mean 5.0 full", 5.0, "⭐⭐⭐⭐⭐"},
		{"negative clamps to zero", -1, "☆☆☆☆☆"},
		{"above five clamps", 6.2, "⭐⭐⭐⭐⭐"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RenderStars(tc.mean)
			if got != tc.want {
				t.Errorf("RenderStars(%v) = %q, want %q", tc.mean, got, tc.want)
			}
		})
	}
}

func TestRenderStarsAlwaysFiveGlyphs(t *testing.T) {
	for mean := 0.0; mean <= 5.0; mean += 0.1 {
		got := RenderStars(mean)
		glyphs := []rune(got)
		if len(glyphs) != StarSlots {
			t.Fatalf("RenderStars(%v) = %q has %d glyphs, want %d", mean, got, len(glyphs), StarSlots)
		}
	}
}
