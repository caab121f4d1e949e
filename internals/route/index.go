package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "coursehub_backend/internals/middlewares/auth"
	routeDetails "coursehub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// Gateway webhook lives outside the groups; the auth middleware
	// skip-list lets it through unauthenticated.
	log.Println("[INFO] Setting up webhook route...")
	routeDetails.OrderWebhookRoutes(app, db)

	// PUBLIC → optional JWT (listing pages personalize when a token is present)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", authMiddleware.OptionalAuthMiddleware(db))

	// PRIVATE (USER) → JWT required
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	// ADMIN → JWT + staff flag
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyStaff("admin area"),
	)

	log.Println("[INFO] Mounting Catalog routes...")
	routeDetails.CatalogPublicRoutes(public, db)
	routeDetails.CatalogUserRoutes(private, db)
	routeDetails.CatalogAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Engagement routes...")
	routeDetails.EngagementPublicRoutes(public, db)
	routeDetails.EngagementUserRoutes(private, db)

	log.Println("[INFO] Mounting Lecture routes...")
	routeDetails.LecturePublicRoutes(public, db)
	routeDetails.LectureUserRoutes(private, db)

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserPublicRoutes(public, db)
	routeDetails.UserUserRoutes(private, db)
	routeDetails.UserAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Order routes...")
	routeDetails.OrderUserRoutes(private, db)
}
