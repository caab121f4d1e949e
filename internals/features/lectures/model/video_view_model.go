package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoViewModel tracks "last watched" per user and video. Updated on
// every view; last-write-wins is fine at this scale.
type VideoViewModel struct {
	ViewUserID        uuid.UUID `gorm:"column:view_user_id;type:uuid;not null;primaryKey" json:"view_user_id"`
	ViewVideoID       uuid.UUID `gorm:"column:view_video_id;type:uuid;not null;primaryKey" json:"view_video_id"`
	ViewCourseID      uuid.UUID `gorm:"column:view_course_id;type:uuid;not null;index" json:"view_course_id"`
	ViewLastWatchedAt time.Time `gorm:"column:view_last_watched_at;not null" json:"view_last_watched_at"`
}

func (VideoViewModel) TableName() string {
	return "video_views"
}
