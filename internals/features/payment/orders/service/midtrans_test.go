package service

import (
	"testing"

	orderModel "coursehub_backend/internals/features/payment/orders/model"
)

func TestMapMidtransStatus(t *testing.T) {
	tests := []struct {
		tx    string
		fraud string
		want  string
	}{
		{"settlement", "", orderModel.OrderStatusPaid},
		{"capture", "accept", orderModel.OrderStatusPaid},
		{"capture", "challenge", orderModel.OrderStatusPending},
		{"pending", "", orderModel.OrderStatusPending},
		{"deny", "", orderModel.OrderStatusCanceled},
		{"cancel", "", orderModel.OrderStatusCanceled},
		{"expire", "", orderModel.OrderStatusExpired},
		{"refund", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		if got := MapMidtransStatus(tt.tx, tt.fraud); got != tt.want {
			t.Errorf("MapMidtransStatus(%q, %q) = %q, want %q", tt.tx, tt.fraud, got, tt.want)
		}
	}
}
