package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	orderModel "coursehub_backend/internals/features/payment/orders/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client at bootstrap (sandbox).
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates the Snap transaction for a course order and
// returns (token, redirect_url).
func GenerateSnapToken(o *orderModel.OrderModel, courseName, buyerName, buyerEmail string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  o.OrderReference,
			GrossAmt: int64(o.OrderAmount),
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    o.OrderCourseID.String(),
				Name:  courseName,
				Price: int64(o.OrderAmount),
				Qty:   1,
			},
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: buyerName,
			Email: buyerEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// MapMidtransStatus folds gateway transaction states onto order states.
// Unknown states map to "" and are ignored by the webhook.
func MapMidtransStatus(txStatus, fraudStatus string) string {
	switch txStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return orderModel.OrderStatusPending
		}
		return orderModel.OrderStatusPaid
	case "settlement":
		return orderModel.OrderStatusPaid
	case "pending":
		return orderModel.OrderStatusPending
	case "deny", "cancel":
		return orderModel.OrderStatusCanceled
	case "expire":
		return orderModel.OrderStatusExpired
	default:
		return ""
	}
}
