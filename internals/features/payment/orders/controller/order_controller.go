package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "coursehub_backend/internals/features/catalog/courses/model"
	"coursehub_backend/internals/features/payment/orders/dto"
	orderModel "coursehub_backend/internals/features/payment/orders/model"
	orderService "coursehub_backend/internals/features/payment/orders/service"
	userModel "coursehub_backend/internals/features/users/user/model"
	helper "coursehub_backend/internals/helpers"
)

type OrderController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Validate: validator.New()}
}

// POST /api/u/orders
// Checkout for a paid course. Free courses have nothing to pay for.
func (oc *OrderController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := oc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var course courseModel.CourseModel
	if err := oc.DB.First(&course, "course_id = ?", req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up course")
	}
	if course.IsFree() {
		return helper.JsonError(c, fiber.StatusBadRequest, "This course is free; no checkout needed")
	}

	var buyer userModel.UserModel
	if err := oc.DB.Select("id", "user_name", "email").First(&buyer, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load buyer")
	}

	order := orderModel.OrderModel{
		OrderUserID:    userID,
		OrderCourseID:  course.CourseID,
		OrderAmount:    course.CoursePrice,
		OrderStatus:    orderModel.OrderStatusPending,
		OrderReference: fmt.Sprintf("course-%s-%d", uuid.NewString()[:8], time.Now().Unix()),
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create order")
	}

	token, redirectURL, err := orderService.GenerateSnapToken(&order, course.CourseName, buyer.UserName, buyer.Email)
	if err != nil {
		log.Printf("[ERROR] Snap token generation failed for order %s: %v", order.OrderReference, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway unavailable")
	}
	if err := oc.DB.Model(&order).Update("order_snap_token", token).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store snap token")
	}
	order.OrderSnapToken = &token

	return helper.JsonCreated(c, "Order created", dto.ToOrderResponse(&order, redirectURL))
}

// GET /api/u/orders
func (oc *OrderController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var orders []orderModel.OrderModel
	if err := oc.DB.
		Where("order_user_id = ?", userID).
		Order("order_created_at DESC").
		Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load orders")
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.ToOrderResponse(&orders[i], ""))
	}
	return helper.JsonOK(c, "OK", out)
}

// POST /api/orders/notification
// Midtrans webhook. Parsing is permissive (JSON or form-urlencoded) and
// the reply is 200 even on processing warnings so the gateway does not
// hammer retries.
func (oc *OrderController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}

	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	if strings.Contains(ct, "application/json") && len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			log.Println("[WARN] webhook JSON parse failed:", err)
		}
	}
	if len(body) == 0 {
		form := map[string]interface{}{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			form[string(k)] = string(v)
		})
		if len(form) > 0 {
			body = form
		}
	}
	if len(body) == 0 {
		log.Printf("[ERROR] webhook body empty. CT=%q", ct)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "empty body"})
	}

	orderRef := getString(body, "order_id")
	txStatus := strings.ToLower(getString(body, "transaction_status"))
	fraud := strings.ToLower(getString(body, "fraud_status"))
	log.Printf("🔔 Webhook received: order_id=%s status=%s fraud=%s", orderRef, txStatus, fraud)

	if err := oc.applyWebhook(body); err != nil {
		log.Println("[ERROR] webhook processing failed:", err)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "processed with warning",
			"error":   err.Error(),
		})
	}

	return helper.JsonOK(c, "Webhook processed", fiber.Map{
		"order_id":   orderRef,
		"app_status": orderService.MapMidtransStatus(txStatus, fraud),
	})
}

func (oc *OrderController) applyWebhook(body map[string]interface{}) error {
	orderRef := getString(body, "order_id")
	txStatus := strings.ToLower(getString(body, "transaction_status"))
	if orderRef == "" || txStatus == "" {
		return fmt.Errorf("invalid payload: order_id or transaction_status missing")
	}

	newStatus := orderService.MapMidtransStatus(txStatus, strings.ToLower(getString(body, "fraud_status")))
	if newStatus == "" {
		log.Printf("[WARN] unrecognized Midtrans status %q (ignored)", txStatus)
		return nil
	}

	var paidAt *time.Time
	if newStatus == orderModel.OrderStatusPaid {
		t := parseMidtransTime(body)
		paidAt = &t
	}

	return oc.DB.Transaction(func(tx *gorm.DB) error {
		var order orderModel.OrderModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_reference = ?", orderRef).
			First(&order).Error; err != nil {
			return fmt.Errorf("order not found for reference %s: %w", orderRef, err)
		}

		updates := map[string]interface{}{}
		if order.OrderStatus != newStatus {
			updates["order_status"] = newStatus
		}
		if paidAt != nil && (order.OrderPaidAt == nil || !order.OrderPaidAt.Equal(*paidAt)) {
			updates["order_paid_at"] = *paidAt
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&order).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update order %s: %w", orderRef, err)
		}
		log.Printf("✅ Order %s updated: %+v", orderRef, updates)
		return nil
	})
}

func getString(body map[string]interface{}, key string) string {
	if v, ok := body[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func parseMidtransTime(body map[string]interface{}) time.Time {
	const layout = "2006-01-02 15:04:05"
	if s := getString(body, "settlement_time"); s != "" {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	if s := getString(body, "transaction_time"); s != "" {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}
