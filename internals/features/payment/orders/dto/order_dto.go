package dto

import (
	"time"

	"github.com/google/uuid"

	orderModel "coursehub_backend/internals/features/payment/orders/model"
)

type CreateOrderRequest struct {
	CourseID uuid.UUID `json:"course_id" validate:"required"`
}

type OrderResponse struct {
	OrderID     uuid.UUID  `json:"order_id"`
	CourseID    uuid.UUID  `json:"course_id"`
	Amount      int        `json:"amount"`
	Status      string     `json:"status"`
	Reference   string     `json:"reference"`
	SnapToken   *string    `json:"snap_token,omitempty"`
	RedirectURL string     `json:"redirect_url,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToOrderResponse(m *orderModel.OrderModel, redirectURL string) OrderResponse {
	return OrderResponse{
		OrderID:     m.OrderID,
		CourseID:    m.OrderCourseID,
		Amount:      m.OrderAmount,
		Status:      m.OrderStatus,
		Reference:   m.OrderReference,
		SnapToken:   m.OrderSnapToken,
		RedirectURL: redirectURL,
		PaidAt:      m.OrderPaidAt,
		CreatedAt:   m.OrderCreatedAt,
	}
}
