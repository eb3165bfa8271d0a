package request

import (
	"strings"
)

// CreateOrderRequest starts a donation, lifetime membership or subscription.
// Amount is in whole rupees and only read for donations.
type CreateOrderRequest struct {
	Type    string `json:"type" binding:"required"`
	Amount  int64  `json:"amount"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	PAN     string `json:"pan"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
	PlanID  string `json:"plan_id"`
}

// VerifyPaymentRequest accepts both our field names and the raw razorpay_* names
// the checkout handler receives.
type VerifyPaymentRequest struct {
	Type             string `json:"type" binding:"required"`
	PaymentReference string `json:"payment_reference" binding:"required"`
	OrderID          string `json:"order_id"`
	SubscriptionID   string `json:"subscription_id"`
	PaymentID        string `json:"payment_id"`
	Signature        string `json:"signature"`

	RazorpayOrderID        string `json:"razorpay_order_id"`
	RazorpaySubscriptionID string `json:"razorpay_subscription_id"`
	RazorpayPaymentID      string `json:"razorpay_payment_id"`
	RazorpaySignature      string `json:"razorpay_signature"`
}

func (r VerifyPaymentRequest) ResolveOrderID() string {
	return firstNonEmpty(r.OrderID, r.RazorpayOrderID)
}

func (r VerifyPaymentRequest) ResolveSubscriptionID() string {
	return firstNonEmpty(r.SubscriptionID, r.RazorpaySubscriptionID)
}

func (r VerifyPaymentRequest) ResolvePaymentID() string {
	return firstNonEmpty(r.PaymentID, r.RazorpayPaymentID)
}

func (r VerifyPaymentRequest) ResolveSignature() string {
	return firstNonEmpty(r.Signature, r.RazorpaySignature)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
