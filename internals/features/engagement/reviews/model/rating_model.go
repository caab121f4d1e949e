package model

import (
	"github.com/google/uuid"
)

// RatingModel: integer rating 1..5 for a course, optionally tied to a review.
type RatingModel struct {
	RatingID       uuid.UUID  `gorm:"column:rating_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"rating_id"`
	RatingCourseID uuid.UUID  `gorm:"column:rating_course_id;type:uuid;not null;index" json:"rating_course_id"`
	RatingUserID   uuid.UUID  `gorm:"column:rating_user_id;type:uuid;not null" json:"rating_user_id"`
	RatingReviewID *uuid.UUID `gorm:"column:rating_review_id;type:uuid" json:"rating_review_id,omitempty"`
	RatingValue    int        `gorm:"column:rating_value;not null;check:rating_value >= 1 AND rating_value <= 5" json:"rating_value"`
}

func (RatingModel) TableName() string {
	return "ratings"
}
