package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel: threaded course comment. A nil parent means root. Replies
// are looked up by the parent index, never by in-memory back-references, so
// the model permits arbitrarily deep chains.
type CommentModel struct {
	CommentID        uuid.UUID      `gorm:"column:comment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"comment_id"`
	CommentCourseID  uuid.UUID      `gorm:"column:comment_course_id;type:uuid;not null;index" json:"comment_course_id"`
	CommentUserID    uuid.UUID      `gorm:"column:comment_user_id;type:uuid;not null" json:"comment_user_id"`
	CommentBody      string         `gorm:"column:comment_body;type:text;not null" json:"comment_body"`
	CommentParentID  *uuid.UUID     `gorm:"column:comment_parent_id;type:uuid;index" json:"comment_parent_id,omitempty"`
	CommentCreatedAt time.Time      `gorm:"column:comment_created_at;autoCreateTime" json:"comment_created_at"`
	CommentUpdatedAt *time.Time     `gorm:"column:comment_updated_at;autoUpdateTime" json:"comment_updated_at,omitempty"`
	DeletedAt        gorm.DeletedAt `gorm:"column:comment_deleted_at" json:"comment_deleted_at,omitempty"`
}

func (CommentModel) TableName() string {
	return "comments"
}

// IsRoot reports whether this comment starts a thread.
func (m *CommentModel) IsRoot() bool {
	return m.CommentParentID == nil
}
