package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	reviewModel "coursehub_backend/internals/features/engagement/reviews/model"
	helper "coursehub_backend/internals/helpers"
)

// RatingSummary is the aggregate shipped with every course detail.
type RatingSummary struct {
	Count int64   `json:"count"`
	Mean  float64 `json:"mean"`
	Stars string  `json:"stars"`
}

// MeanRating averages integer ratings. Empty input yields 0.0.
func MeanRating(values []int) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// Summarize builds the summary for a known set of rating values.
func Summarize(values []int) RatingSummary {
	mean := MeanRating(values)
	return RatingSummary{
		Count: int64(len(values)),
		Mean:  mean,
		Stars: helper.RenderStars(mean),
	}
}

// CourseRatingSummary loads all rating values of one course and
// aggregates them.
func CourseRatingSummary(db *gorm.DB, courseID any) (RatingSummary, error) {
	var values []int
	if err := db.Model(&reviewModel.RatingModel{}).
		Where("rating_course_id = ?", courseID).
		Pluck("rating_value", &values).Error; err != nil {
		return RatingSummary{}, err
	}
	return Summarize(values), nil
}

// CourseRatingSummaries aggregates one page worth of courses in a
// single query. Courses without ratings get the zero summary.
func CourseRatingSummaries(db *gorm.DB, courseIDs []uuid.UUID) (map[uuid.UUID]RatingSummary, error) {
	out := make(map[uuid.UUID]RatingSummary, len(courseIDs))
	for _, id := range courseIDs {
		out[id] = Summarize(nil)
	}
	if len(courseIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		CourseID uuid.UUID
		Value    int
	}
	if err := db.Model(&reviewModel.RatingModel{}).
		Select("rating_course_id AS course_id, rating_value AS value").
		Where("rating_course_id IN ?", courseIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byCourse := make(map[uuid.UUID][]int)
	for _, r := range rows {
		byCourse[r.CourseID] = append(byCourse[r.CourseID], r.Value)
	}
	for id, values := range byCourse {
		out[id] = Summarize(values)
	}
	return out, nil
}
