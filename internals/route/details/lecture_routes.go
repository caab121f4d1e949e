package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lectureController "coursehub_backend/internals/features/lectures/controller"
	authMiddleware "coursehub_backend/internals/middlewares/auth"
)

// Base: /api/public
func LecturePublicRoutes(public fiber.Router, db *gorm.DB) {
	lectureCtrl := lectureController.NewLectureController(db)

	public.Get("/courses/:id/lectures", lectureCtrl.ListByCourse)
}

// Base: /api/u
func LectureUserRoutes(private fiber.Router, db *gorm.DB) {
	lectureCtrl := lectureController.NewLectureController(db)

	private.Post("/courses/:id/lectures", authMiddleware.OnlyTeachers("create lecture"), lectureCtrl.CreateLecture)
	private.Post("/lectures/:id/videos", authMiddleware.OnlyTeachers("attach video"), lectureCtrl.AttachVideo)
	private.Get("/courses/:id/videos/:video_id", lectureCtrl.VideoDetail)
}
