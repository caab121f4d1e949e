package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "coursehub_backend/internals/features/payment/orders/controller"
)

// Base: /api/u
func OrderUserRoutes(private fiber.Router, db *gorm.DB) {
	orderCtrl := orderController.NewOrderController(db)

	private.Post("/orders", orderCtrl.Create)
	private.Get("/orders", orderCtrl.ListMine)
}

// Midtrans calls this unauthenticated.
func OrderWebhookRoutes(app *fiber.App, db *gorm.DB) {
	orderCtrl := orderController.NewOrderController(db)

	app.Post("/api/orders/notification", orderCtrl.HandleNotification)
}
