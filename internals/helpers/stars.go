package helper

import "strings"

// Star glyphs used by every rating rendering across the app. Initialized
// once, process-wide; views never rebuild presentation config per request.
const (
	StarFull  = "⭐"
	StarHalf  = "½"
	StarEmpty = "☆"

	StarSlots = 5
)

// RenderStars renders a rating mean as a fixed five-glyph string:
// floor(mean) full stars, one half star when the remainder is >= 0.5,
// the rest empty. Always exactly StarSlots glyphs.
func RenderStars(mean float64) string {
	if mean < 0 {
		mean = 0
	}
	if mean > StarSlots {
		mean = StarSlots
	}

	full := int(mean)
	half := 0
	if mean-float64(full) >= 0.5 {
		half = 1
	}
	empty := StarSlots - full - half

	var b strings.Builder
	b.WriteString(strings.Repeat(StarFull, full))
	b.WriteString(strings.Repeat(StarHalf, half))
	b.WriteString(strings.Repeat(StarEmpty, empty))
	return b.String()
}
