package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	helper "coursehub_backend/internals/helpers"
)

type LikeController struct {
	DB *gorm.DB
}

func NewLikeController(db *gorm.DB) *LikeController {
	return &LikeController{DB: db}
}

// POST /api/u/courses/:id/like
// Liking twice is a conflict, matching the unique pair constraint.
func (lc *LikeController) Like(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModel.CourseModel
	if err := lc.DB.Select("course_id").First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up course")
	}

	like := courseModel.CourseLikeModel{
		LikeUserID:    userID,
		LikeCourseID:  courseID,
		LikeCreatedAt: time.Now().UTC(),
	}
	if err := lc.DB.Create(&like).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "You already liked this course")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to like course")
	}

	var count int64
	lc.DB.Model(&courseModel.CourseLikeModel{}).Where("like_course_id = ?", courseID).Count(&count)

	return helper.JsonCreated(c, "Course liked", fiber.Map{
		"course_id":  courseID,
		"like_count": count,
	})
}

// DELETE /api/u/courses/:id/like
func (lc *LikeController) Unlike(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	res := lc.DB.
		Where("like_user_id = ? AND like_course_id = ?", userID, courseID).
		Delete(&courseModel.CourseLikeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to unlike course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "You have not liked this course")
	}

	var count int64
	lc.DB.Model(&courseModel.CourseLikeModel{}).Where("like_course_id = ?", courseID).Count(&count)

	return helper.JsonDeleted(c, "Course unliked", fiber.Map{
		"course_id":  courseID,
		"like_count": count,
	})
}
