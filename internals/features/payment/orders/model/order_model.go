package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusExpired  = "expired"
	OrderStatusCanceled = "canceled"
)

type OrderModel struct {
	OrderID        uuid.UUID  `gorm:"column:order_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"order_id"`
	OrderUserID    uuid.UUID  `gorm:"column:order_user_id;type:uuid;not null;index" json:"order_user_id"`
	OrderCourseID  uuid.UUID  `gorm:"column:order_course_id;type:uuid;not null;index" json:"order_course_id"`
	OrderAmount    int        `gorm:"column:order_amount;not null" json:"order_amount"`
	OrderStatus    string     `gorm:"column:order_status;type:varchar(20);default:'pending'" json:"order_status"`
	OrderReference string     `gorm:"column:order_reference;type:varchar(100);unique;not null" json:"order_reference"`
	OrderSnapToken *string    `gorm:"column:order_snap_token;type:text" json:"order_snap_token,omitempty"`
	OrderPaidAt    *time.Time `gorm:"column:order_paid_at" json:"order_paid_at,omitempty"`
	OrderCreatedAt time.Time  `gorm:"column:order_created_at;autoCreateTime" json:"order_created_at"`
	OrderUpdatedAt time.Time  `gorm:"column:order_updated_at;autoUpdateTime" json:"order_updated_at"`
}

func (OrderModel) TableName() string {
	return "orders"
}
