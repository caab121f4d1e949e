package dto

import (
	"time"

	"github.com/google/uuid"

	reviewModel "coursehub_backend/internals/features/engagement/reviews/model"
)

type CreateReviewRequest struct {
	Body   string `json:"body" validate:"required,min=1,max=2000"`
	Rating *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type ReviewResponse struct {
	ReviewID  uuid.UUID `json:"review_id"`
	CourseID  uuid.UUID `json:"course_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Body      string    `json:"body"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToReviewResponse(m *reviewModel.ReviewModel, userName string, rating *int) ReviewResponse {
	return ReviewResponse{
		ReviewID:  m.ReviewID,
		CourseID:  m.ReviewCourseID,
		UserID:    m.ReviewUserID,
		UserName:  userName,
		Body:      m.ReviewBody,
		Rating:    rating,
		CreatedAt: m.ReviewCreatedAt,
	}
}
