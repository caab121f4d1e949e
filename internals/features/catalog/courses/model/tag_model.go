package model

import (
	"github.com/google/uuid"
)

type TagModel struct {
	TagID       uuid.UUID `gorm:"column:tag_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"tag_id"`
	TagName     string    `gorm:"column:tag_name;type:varchar(25);not null;index" json:"tag_name"`
	TagCourseID uuid.UUID `gorm:"column:tag_course_id;type:uuid;not null" json:"tag_course_id"`
}

func (TagModel) TableName() string {
	return "tags"
}
