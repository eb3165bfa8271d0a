package request

import "encoding/json"

// StartCheckoutRequest opens a server-hosted checkout page.
type StartCheckoutRequest struct {
	Type    string      `json:"type"`
	Amount  json.Number `json:"amount"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	PAN     string      `json:"pan"`
	Address string      `json:"address"`
	Notes   string      `json:"notes"`
	PlanID  string      `json:"plan_id"`
}

// CompleteCheckoutRequest is what the provider checkout hands to its success handler.
type CompleteCheckoutRequest struct {
	PaymentID      string `form:"razorpay_payment_id" json:"razorpay_payment_id" binding:"required"`
	OrderID        string `form:"razorpay_order_id" json:"razorpay_order_id"`
	SubscriptionID string `form:"razorpay_subscription_id" json:"razorpay_subscription_id"`
	Signature      string `form:"razorpay_signature" json:"razorpay_signature" binding:"required"`
}

type FailCheckoutRequest struct {
	Error string `form:"error" json:"error"`
}
