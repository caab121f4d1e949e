package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "coursehub_backend/internals/features/catalog/courses/controller"
	partController "coursehub_backend/internals/features/catalog/parts/controller"
	authMiddleware "coursehub_backend/internals/middlewares/auth"
)

// Base: /api/public
func CatalogPublicRoutes(public fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseController(db)
	partCtrl := partController.NewPartController(db)

	public.Get("/home", courseCtrl.Home)

	// Fixed segments before the :slug catch-all.
	public.Get("/courses", courseCtrl.List)
	public.Get("/courses/tag/:name", courseCtrl.ListByTag)
	public.Get("/courses/detail/:id", courseCtrl.Detail)
	public.Get("/courses/by-slug/:slug", courseCtrl.DetailBySlug)
	public.Get("/courses/:slug", courseCtrl.ListByPartSlug)

	public.Get("/search", courseCtrl.Search)
	public.Get("/full-search", courseCtrl.FullSearch)

	public.Get("/parts", partCtrl.List)
}

// Base: /api/u
func CatalogUserRoutes(private fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseController(db)
	likeCtrl := courseController.NewLikeController(db)

	private.Post("/courses", authMiddleware.OnlyTeachers("create course"), courseCtrl.Create)

	private.Post("/courses/:id/like", likeCtrl.Like)
	private.Delete("/courses/:id/like", likeCtrl.Unlike)
}

// Base: /api/a
func CatalogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	courseCtrl := courseController.NewCourseController(db)
	partCtrl := partController.NewPartController(db)

	admin.Delete("/courses/:id", courseCtrl.Delete)
	admin.Post("/parts", partCtrl.Create)
}
