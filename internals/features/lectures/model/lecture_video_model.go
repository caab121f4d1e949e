package model

import (
	"github.com/google/uuid"
)

// LectureVideoModel is the lecture ↔ video relation.
type LectureVideoModel struct {
	LectureVideoLectureID uuid.UUID `gorm:"column:lecture_video_lecture_id;type:uuid;not null;primaryKey" json:"lecture_video_lecture_id"`
	LectureVideoVideoID   uuid.UUID `gorm:"column:lecture_video_video_id;type:uuid;not null;primaryKey" json:"lecture_video_video_id"`
}

func (LectureVideoModel) TableName() string {
	return "lecture_videos"
}
