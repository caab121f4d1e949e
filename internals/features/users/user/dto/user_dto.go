package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "coursehub_backend/internals/features/users/user/model"
)

type UpdateProfileRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=255"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Address  *string `json:"address" validate:"omitempty,max=255"`
}

type UserProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	Role           string    `json:"role"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    bool      `json:"is_following"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToUserProfileResponse(m *userModel.UserModel, followers, following int64, isFollowing bool) UserProfileResponse {
	return UserProfileResponse{
		ID:             m.ID,
		UserName:       m.UserName,
		Role:           m.Role,
		AvatarURL:      m.AvatarURL,
		FollowerCount:  followers,
		FollowingCount: following,
		IsFollowing:    isFollowing,
		CreatedAt:      m.CreatedAt,
	}
}
