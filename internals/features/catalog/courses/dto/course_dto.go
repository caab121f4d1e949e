package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	reviewService "coursehub_backend/internals/features/engagement/reviews/service"
)

type CreateCourseRequest struct {
	CourseName  string    `json:"course_name" form:"course_name" validate:"required,min=3,max=255"`
	CourseBody  string    `json:"course_body" form:"course_body" validate:"required,min=10"`
	CourseLevel string    `json:"course_level" form:"course_level" validate:"required,max=50"`
	CoursePrice int       `json:"course_price" form:"course_price" validate:"gte=0"`
	PartID      uuid.UUID `json:"part_id" form:"part_id" validate:"required"`
	Tags        []string  `json:"tags" form:"tags" validate:"omitempty,dive,min=1,max=25"`
}

func (r *CreateCourseRequest) ToModel(teacherID uuid.UUID, slug string) *courseModel.CourseModel {
	return &courseModel.CourseModel{
		CourseName:      r.CourseName,
		CourseSlug:      slug,
		CourseBody:      r.CourseBody,
		CourseLevel:     r.CourseLevel,
		CoursePrice:     r.CoursePrice,
		CourseTeacherID: teacherID,
		CoursePartID:    r.PartID,
	}
}

// CourseLiteResponse is the listing card shape.
type CourseLiteResponse struct {
	CourseID    uuid.UUID                   `json:"course_id"`
	CourseName  string                      `json:"course_name"`
	CourseSlug  string                      `json:"course_slug"`
	CourseLevel string                      `json:"course_level"`
	CoursePrice int                         `json:"course_price"`
	IsFree      bool                        `json:"is_free"`
	ImageURL    *string                     `json:"image_url,omitempty"`
	TeacherName string                      `json:"teacher_name,omitempty"`
	PartName    string                      `json:"part_name,omitempty"`
	Rating      reviewService.RatingSummary `json:"rating"`
	CreatedAt   time.Time                   `json:"created_at"`
}

func ToCourseLiteResponse(m *courseModel.CourseModel, teacherName, partName string, rating reviewService.RatingSummary) CourseLiteResponse {
	return CourseLiteResponse{
		CourseID:    m.CourseID,
		CourseName:  m.CourseName,
		CourseSlug:  m.CourseSlug,
		CourseLevel: m.CourseLevel,
		CoursePrice: m.CoursePrice,
		IsFree:      m.IsFree(),
		ImageURL:    m.CourseImageURL,
		TeacherName: teacherName,
		PartName:    partName,
		Rating:      rating,
		CreatedAt:   m.CourseCreatedAt,
	}
}

// CourseDetailResponse is the full course page payload. The engagement
// blocks (reviews, comments, lectures) are attached by the controller.
type CourseDetailResponse struct {
	CourseID    uuid.UUID                   `json:"course_id"`
	CourseName  string                      `json:"course_name"`
	CourseSlug  string                      `json:"course_slug"`
	CourseBody  string                      `json:"course_body"`
	CourseLevel string                      `json:"course_level"`
	CoursePrice int                         `json:"course_price"`
	IsFree      bool                        `json:"is_free"`
	ImageURL    *string                     `json:"image_url,omitempty"`
	VideoURL    *string                     `json:"video_url,omitempty"`
	Gallery     pq.StringArray              `json:"gallery,omitempty"`
	TeacherID   uuid.UUID                   `json:"teacher_id"`
	TeacherName string                      `json:"teacher_name,omitempty"`
	PartID      uuid.UUID                   `json:"part_id"`
	PartName    string                      `json:"part_name,omitempty"`
	Tags        []string                    `json:"tags"`
	Rating      reviewService.RatingSummary `json:"rating"`
	LikeCount   int64                       `json:"like_count"`
	Liked       bool                        `json:"liked"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   *time.Time                  `json:"updated_at,omitempty"`

	Reviews     any `json:"reviews"`
	Comments    any `json:"comments"`
	Lectures    any `json:"lectures"`
	Videos      any `json:"videos"`
	LastWatched any `json:"last_watched,omitempty"`
}
