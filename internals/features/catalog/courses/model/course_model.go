package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID          uuid.UUID `gorm:"column:course_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"course_id"`
	CourseName        string    `gorm:"column:course_name;type:varchar(255);not null" json:"course_name"`
	CourseSlug        string    `gorm:"column:course_slug;type:varchar(100);uniqueIndex;not null" json:"course_slug"`
	CourseBody        string    `gorm:"column:course_body;type:text" json:"course_body"`
	CourseLevel       string    `gorm:"column:course_level;type:varchar(50)" json:"course_level"`
	CoursePrice       int       `gorm:"column:course_price;not null;default:0" json:"course_price"`
	CourseTeacherID   uuid.UUID `gorm:"column:course_teacher_id;type:uuid;not null" json:"course_teacher_id"`
	CoursePartID      uuid.UUID `gorm:"column:course_part_id;type:uuid;not null" json:"course_part_id"`

	// Media refs
	CourseImageURL *string        `gorm:"column:course_image_url;type:text" json:"course_image_url,omitempty"`
	CourseVideoURL *string        `gorm:"column:course_video_url;type:text" json:"course_video_url,omitempty"`
	CourseGallery  pq.StringArray `gorm:"column:course_gallery;type:text[]" json:"course_gallery,omitempty"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
	DeletedAt       gorm.DeletedAt `gorm:"column:course_deleted_at" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}

// IsFree reports the price tier; price 0 is the "Free" tier.
func (m *CourseModel) IsFree() bool {
	return m.CoursePrice == 0
}
