package dto

import (
	"github.com/google/uuid"

	lectureModel "coursehub_backend/internals/features/lectures/model"
)

type CreateLectureRequest struct {
	LectureName string `json:"lecture_name" form:"lecture_name" validate:"required,min=3,max=255"`
}

func (r *CreateLectureRequest) ToModel(courseID, userID uuid.UUID) *lectureModel.LectureModel {
	return &lectureModel.LectureModel{
		LectureName:     r.LectureName,
		LectureCourseID: courseID,
		LectureUserID:   userID,
	}
}

// AttachVideoRequest covers both upload and attach-by-URL. The optional
// duration comes from the client-side probe; it is stored as metadata
// and simply absent when the probe failed.
type AttachVideoRequest struct {
	VideoName       string  `json:"video_name" form:"video_name" validate:"required,min=1,max=44"`
	VideoFileURL    string  `json:"video_file_url" form:"video_file_url"`
	DurationSeconds float64 `json:"duration_seconds" form:"duration_seconds" validate:"gte=0"`
}
