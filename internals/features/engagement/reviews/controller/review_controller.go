package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	"coursehub_backend/internals/features/engagement/reviews/dto"
	reviewModel "coursehub_backend/internals/features/engagement/reviews/model"
	reviewService "coursehub_backend/internals/features/engagement/reviews/service"
	helper "coursehub_backend/internals/helpers"
)

type ReviewController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db, Validate: validator.New()}
}

// POST /api/u/courses/:id/reviews
// Creates a review, optionally with a 1..5 rating in the same call.
// Review and rating land in one transaction so a bad rating never
// leaves a dangling review.
func (rc *ReviewController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var course courseModel.CourseModel
	if err := rc.DB.Select("course_id").First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up course")
	}

	review := reviewModel.ReviewModel{
		ReviewCourseID: courseID,
		ReviewUserID:   userID,
		ReviewBody:     req.Body,
	}
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		if req.Rating != nil {
			rating := reviewModel.RatingModel{
				RatingCourseID: courseID,
				RatingUserID:   userID,
				RatingReviewID: &review.ReviewID,
				RatingValue:    *req.Rating,
			}
			if err := tx.Create(&rating).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create review")
	}

	return helper.JsonCreated(c, "Review created", dto.ToReviewResponse(&review, "", req.Rating))
}

// GET /api/public/courses/:id/reviews
// Reviews newest-first with the author name and the rating attached to
// each review when one exists.
func (rc *ReviewController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var rows []dto.ReviewResponse
	if err := rc.DB.
		Table("reviews r").
		Select(`r.review_id, r.review_course_id AS course_id, r.review_user_id AS user_id,
			u.user_name, r.review_body AS body, rt.rating_value AS rating,
			r.review_created_at AS created_at`).
		Joins("JOIN users u ON u.id = r.review_user_id").
		Joins("LEFT JOIN ratings rt ON rt.rating_review_id = r.review_id").
		Where("r.review_course_id = ? AND r.review_deleted_at IS NULL", courseID).
		Order("r.review_created_at DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reviews")
	}
	summary, err := reviewService.CourseRatingSummary(rc.DB, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate ratings")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"reviews": rows,
		"rating":  summary,
	})
}
