package model

import (
	"time"

	"github.com/google/uuid"
)

// PartModel is a course category. The slug is the URL key.
type PartModel struct {
	PartID        uuid.UUID `gorm:"column:part_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"part_id"`
	PartName      string    `gorm:"column:part_name;type:varchar(50);not null" json:"part_name"`
	PartSlug      string    `gorm:"column:part_slug;type:varchar(100);uniqueIndex;not null" json:"part_slug"`
	PartCreatedAt time.Time `gorm:"column:part_created_at;autoCreateTime" json:"part_created_at"`
}

func (PartModel) TableName() string {
	return "parts"
}
