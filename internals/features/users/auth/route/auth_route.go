package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "coursehub_backend/internals/features/users/auth/controller"
	rateLimiter "coursehub_backend/internals/middlewares"
	authMiddleware "coursehub_backend/internals/middlewares/auth"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/login-google", rateLimiter.LoginRateLimiter(), authController.LoginGoogle)
	baseAuth.Post("/refresh-token", authController.RefreshToken)
	baseAuth.Post("/logout", authController.Logout)

	protected := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", authController.Me)
	protected.Post("/change-password", authController.ChangePassword)
}
