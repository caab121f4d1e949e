package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LectureModel struct {
	LectureID        uuid.UUID      `gorm:"column:lecture_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"lecture_id"`
	LectureName      string         `gorm:"column:lecture_name;type:varchar(255);not null" json:"lecture_name"`
	LectureCourseID  uuid.UUID      `gorm:"column:lecture_course_id;type:uuid;not null;index" json:"lecture_course_id"`
	LectureUserID    uuid.UUID      `gorm:"column:lecture_user_id;type:uuid;not null" json:"lecture_user_id"`
	LectureCreatedAt time.Time      `gorm:"column:lecture_created_at;autoCreateTime" json:"lecture_created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:lecture_deleted_at" json:"lecture_deleted_at,omitempty"`
}

func (LectureModel) TableName() string {
	return "lectures"
}
