package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseLikeModel is the user ↔ course "like" relation.
type CourseLikeModel struct {
	LikeUserID    uuid.UUID `gorm:"column:like_user_id;type:uuid;not null;primaryKey" json:"like_user_id"`
	LikeCourseID  uuid.UUID `gorm:"column:like_course_id;type:uuid;not null;primaryKey" json:"like_course_id"`
	LikeCreatedAt time.Time `gorm:"column:like_created_at;autoCreateTime" json:"like_created_at"`
}

func (CourseLikeModel) TableName() string {
	return "course_likes"
}
