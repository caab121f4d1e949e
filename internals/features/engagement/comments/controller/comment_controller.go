package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	"coursehub_backend/internals/features/engagement/comments/dto"
	commentModel "coursehub_backend/internals/features/engagement/comments/model"
	commentService "coursehub_backend/internals/features/engagement/comments/service"
	helper "coursehub_backend/internals/helpers"
)

type CommentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db, Validate: validator.New()}
}

// POST /api/u/courses/:id/comments
// parent_id, when present, must reference a comment of the same course.
func (cc *CommentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var course courseModel.CourseModel
	if err := cc.DB.Select("course_id").First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up course")
	}

	if req.ParentID != nil {
		var parent commentModel.CommentModel
		if err := cc.DB.Select("comment_id", "comment_course_id").
			First(&parent, "comment_id = ?", *req.ParentID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parent comment not found")
		}
		if parent.CommentCourseID != courseID {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parent comment belongs to another course")
		}
	}

	comment := req.ToModel(courseID, userID)
	if err := cc.DB.Create(comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create comment")
	}

	return helper.JsonCreated(c, "Comment created", comment)
}

// GET /api/public/courses/:id/comments
// Full thread tree, roots newest-first.
func (cc *CommentController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var comments []commentModel.CommentModel
	if err := cc.DB.
		Where("comment_course_id = ?", courseID).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load comments")
	}

	return helper.JsonOK(c, "OK", commentService.BuildCommentTree(comments))
}
