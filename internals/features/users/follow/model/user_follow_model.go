package model

import (
	"time"

	"github.com/google/uuid"
)

// UserFollowModel is the follower → followee relation.
type UserFollowModel struct {
	FollowFollowerID uuid.UUID `gorm:"column:follow_follower_id;type:uuid;not null;primaryKey" json:"follow_follower_id"`
	FollowFolloweeID uuid.UUID `gorm:"column:follow_followee_id;type:uuid;not null;primaryKey" json:"follow_followee_id"`
	FollowCreatedAt  time.Time `gorm:"column:follow_created_at;autoCreateTime" json:"follow_created_at"`
}

func (UserFollowModel) TableName() string {
	return "user_follow_users"
}
