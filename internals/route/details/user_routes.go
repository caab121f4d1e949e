package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "coursehub_backend/internals/features/catalog/courses/controller"
	followController "coursehub_backend/internals/features/users/follow/controller"
	userController "coursehub_backend/internals/features/users/user/controller"
)

// Base: /api/public
func UserPublicRoutes(public fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	courseCtrl := courseController.NewCourseController(db)

	public.Get("/users/:id", userCtrl.GetProfile)
	public.Get("/users/:id/courses", courseCtrl.ListByTeacher)
}

// Base: /api/u
func UserUserRoutes(private fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	followCtrl := followController.NewFollowController(db)

	private.Put("/users/:id", userCtrl.UpdateProfile)

	private.Post("/users/:id/follow", followCtrl.Follow)
	private.Delete("/users/:id/follow", followCtrl.Unfollow)
	private.Get("/follow/following", followCtrl.ListFollowing)
}

// Base: /api/a
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	admin.Delete("/users/:id", userCtrl.DeleteUser)
}
