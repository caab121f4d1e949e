package service

import (
	"math"
	"testing"
)

func TestMeanRating(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   float64
	}{
		{"empty", nil, 0.0},
		{"single", []int{5}, 5.0},
		{"mixed", []int{5, 4, 4, 1}, 3.5},
		{"all ones", []int{1, 1, 1}, 1.0},
		{"two thirds", []int{5, 4, 5}, 14.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanRating(tt.values)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MeanRating(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		values    []int
		wantMean  float64
		wantStars string
	}{
		{"empty", nil, 0.0, "☆☆☆☆☆"},
		{"perfect", []int{5, 5}, 5.0, "⭐⭐⭐⭐⭐"},
		{"half", []int{2, 3}, 2.5, "⭐⭐½☆☆"},
		{"rounds down below half", []int{2, 2, 3}, 7.0 / 3.0, "⭐⭐☆☆☆"},
		{"high fraction", []int{5, 5, 4}, 14.0 / 3.0, "⭐⭐⭐⭐½"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if math.Abs(got.Mean-tt.wantMean) > 1e-9 {
				t.Errorf("mean = %v, want %v", got.Mean, tt.wantMean)
			}
			if got.Stars != tt.wantStars {
				t.Errorf("stars = %q, want %q", got.Stars, tt.wantStars)
			}
			if got.Count != int64(len(tt.values)) {
				t.Errorf("count = %d, want %d", got.Count, len(tt.values))
			}
		})
	}
}
