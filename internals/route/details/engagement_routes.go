package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentController "coursehub_backend/internals/features/engagement/comments/controller"
	reviewController "coursehub_backend/internals/features/engagement/reviews/controller"
)

// Base: /api/public
func EngagementPublicRoutes(public fiber.Router, db *gorm.DB) {
	reviewCtrl := reviewController.NewReviewController(db)
	commentCtrl := commentController.NewCommentController(db)

	public.Get("/courses/:id/reviews", reviewCtrl.ListByCourse)
	public.Get("/courses/:id/comments", commentCtrl.ListByCourse)
}

// Base: /api/u
func EngagementUserRoutes(private fiber.Router, db *gorm.DB) {
	reviewCtrl := reviewController.NewReviewController(db)
	commentCtrl := commentController.NewCommentController(db)

	private.Post("/courses/:id/reviews", reviewCtrl.Create)
	private.Post("/courses/:id/comments", commentCtrl.Create)
}
