package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	followModel "coursehub_backend/internals/features/users/follow/model"
	"coursehub_backend/internals/features/users/user/dto"
	userModel "coursehub_backend/internals/features/users/user/model"
	helper "coursehub_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/public/users/:id
// Public profile with follow counts. is_following reflects the caller
// when the request carries a valid token (optional auth).
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", targetID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var followers, following int64
	uc.DB.Model(&followModel.UserFollowModel{}).
		Where("follow_followee_id = ?", targetID).Count(&followers)
	uc.DB.Model(&followModel.UserFollowModel{}).
		Where("follow_follower_id = ?", targetID).Count(&following)

	isFollowing := false
	if viewerID := helper.GetUserIDFromTokenIfAny(c); viewerID != uuid.Nil {
		var n int64
		uc.DB.Model(&followModel.UserFollowModel{}).
			Where("follow_follower_id = ? AND follow_followee_id = ?", viewerID, targetID).
			Count(&n)
		isFollowing = n > 0
	}

	return helper.JsonOK(c, "OK", dto.ToUserProfileResponse(&user, followers, following, isFollowing))
}

// PUT /api/u/users/:id
// Own profile only. Accepts JSON or multipart; a multipart "avatar"
// file is converted to webp and stored under media/avatars.
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if targetID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only update your own profile")
	}

	var user userModel.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.UpdateProfileRequest
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		if v := strings.TrimSpace(c.FormValue("user_name")); v != "" {
			req.UserName = &v
		}
		if v := strings.TrimSpace(c.FormValue("email")); v != "" {
			req.Email = &v
		}
		if v := strings.TrimSpace(c.FormValue("phone")); v != "" {
			req.Phone = &v
		}
		if v := strings.TrimSpace(c.FormValue("address")); v != "" {
			req.Address = &v
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := uc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	updates := map[string]any{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	if fh, err := c.FormFile("avatar"); err == nil && fh != nil {
		url, err := helper.UploadImageAsWebP("avatars", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Failed to process avatar image")
		}
		updates["avatar_url"] = url
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", nil)
	}

	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Username or email already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}
	return helper.JsonUpdated(c, "Profile updated", fiber.Map{
		"id":         user.ID,
		"user_name":  user.UserName,
		"email":      user.Email,
		"phone":      user.Phone,
		"address":    user.Address,
		"avatar_url": user.AvatarURL,
	})
}

// DELETE /api/a/users/:id
// Staff only (gated by route middleware); staff may also delete their
// own account. Soft delete.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	targetID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := uc.DB.Delete(&userModel.UserModel{}, "id = ?", targetID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": targetID})
}
