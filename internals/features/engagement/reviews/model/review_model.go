package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewModel: free-text course review. Listed newest-first.
type ReviewModel struct {
	ReviewID        uuid.UUID      `gorm:"column:review_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"review_id"`
	ReviewCourseID  uuid.UUID      `gorm:"column:review_course_id;type:uuid;not null;index" json:"review_course_id"`
	ReviewUserID    uuid.UUID      `gorm:"column:review_user_id;type:uuid;not null" json:"review_user_id"`
	ReviewBody      string         `gorm:"column:review_body;type:text;not null" json:"review_body"`
	ReviewCreatedAt time.Time      `gorm:"column:review_created_at;autoCreateTime" json:"review_created_at"`
	ReviewUpdatedAt *time.Time     `gorm:"column:review_updated_at;autoUpdateTime" json:"review_updated_at,omitempty"`
	DeletedAt       gorm.DeletedAt `gorm:"column:review_deleted_at" json:"review_deleted_at,omitempty"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
