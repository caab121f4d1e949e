package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VideoModel struct {
	VideoID       uuid.UUID `gorm:"column:video_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"video_id"`
	VideoName     string    `gorm:"column:video_name;type:varchar(44);not null" json:"video_name"`
	VideoFileURL  string    `gorm:"column:video_file_url;type:text;not null" json:"video_file_url"`
	VideoCourseID uuid.UUID `gorm:"column:video_course_id;type:uuid;not null;index" json:"video_course_id"`
	VideoUserID   uuid.UUID `gorm:"column:video_user_id;type:uuid;not null" json:"video_user_id"`

	// Probed metadata (duration etc.). Absent when the probe fails; the
	// probe is best-effort and never fatal.
	VideoMeta datatypes.JSON `gorm:"column:video_meta;type:jsonb" json:"video_meta,omitempty"`

	VideoCreatedAt  time.Time      `gorm:"column:video_created_at;autoCreateTime" json:"video_created_at"`
	VideoUploadedAt time.Time      `gorm:"column:video_uploaded_at;autoCreateTime" json:"video_uploaded_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:video_deleted_at" json:"video_deleted_at,omitempty"`
}

func (VideoModel) TableName() string {
	return "videos"
}
