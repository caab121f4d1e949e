package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	followModel "coursehub_backend/internals/features/users/follow/model"
	userModel "coursehub_backend/internals/features/users/user/model"
	helper "coursehub_backend/internals/helpers"
)

type FollowController struct {
	DB *gorm.DB
}

func NewFollowController(db *gorm.DB) *FollowController {
	return &FollowController{DB: db}
}

// POST /api/u/follow/:id
// Idempotent: following someone you already follow is a no-op success.
func (fc *FollowController) Follow(c *fiber.Ctx) error {
	followerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	followeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if followerID == followeeID {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot follow yourself")
	}

	var target userModel.UserModel
	if err := fc.DB.Select("id").First(&target, "id = ?", followeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}

	row := followModel.UserFollowModel{
		FollowFollowerID: followerID,
		FollowFolloweeID: followeeID,
		FollowCreatedAt:  time.Now().UTC(),
	}
	if err := fc.DB.Create(&row).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonOK(c, "Already following", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to follow user")
	}

	return helper.JsonCreated(c, "Now following", fiber.Map{
		"followee_id": followeeID,
	})
}

// DELETE /api/u/follow/:id
func (fc *FollowController) Unfollow(c *fiber.Ctx) error {
	followerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	followeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := fc.DB.
		Where("follow_follower_id = ? AND follow_followee_id = ?", followerID, followeeID).
		Delete(&followModel.UserFollowModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to unfollow user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "You are not following this user")
	}

	return helper.JsonDeleted(c, "Unfollowed", fiber.Map{
		"followee_id": followeeID,
	})
}

// GET /api/u/follow/following
// Users the caller follows, newest first.
func (fc *FollowController) ListFollowing(c *fiber.Ctx) error {
	followerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	type row struct {
		ID        uuid.UUID `json:"id"`
		UserName  string    `json:"user_name"`
		AvatarURL *string   `json:"avatar_url,omitempty"`
		Since     time.Time `json:"since"`
	}
	var rows []row
	if err := fc.DB.
		Table("user_follow_users uf").
		Select("u.id, u.user_name, u.avatar_url, uf.follow_created_at AS since").
		Joins("JOIN users u ON u.id = uf.follow_followee_id AND u.deleted_at IS NULL").
		Where("uf.follow_follower_id = ?", followerID).
		Order("uf.follow_created_at DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load following list")
	}

	return helper.JsonOK(c, "OK", rows)
}
