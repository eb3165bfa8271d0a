package response

import (
	"ngo_portal/internal/usecase"
)

type OrderResponse struct {
	Type             string `json:"type"`
	OrderID          string `json:"order_id,omitempty"`
	SubscriptionID   string `json:"subscription_id,omitempty"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	KeyID            string `json:"key_id"`
	PaymentReference string `json:"payment_reference"`
}

func FromOrderResult(r usecase.OrderResult) OrderResponse {
	return OrderResponse{
		Type:             string(r.Type),
		OrderID:          r.OrderID,
		SubscriptionID:   r.SubscriptionID,
		Amount:           r.Amount,
		Currency:         r.Currency,
		KeyID:            r.KeyID,
		PaymentReference: r.PaymentReference,
	}
}

type VerifyResponse struct {
	Type             string `json:"type"`
	PaymentReference string `json:"payment_reference"`
	Status           string `json:"status"`
}

func FromVerifyResult(r usecase.VerifyResult) VerifyResponse {
	return VerifyResponse{
		Type:             string(r.Type),
		PaymentReference: r.PaymentReference,
		Status:           r.Status,
	}
}

type WebhookResponse struct {
	Event   string `json:"event"`
	Handled bool   `json:"handled"`
}

func FromWebhookResult(r usecase.WebhookResult) WebhookResponse {
	return WebhookResponse{Event: r.Event, Handled: r.Handled}
}
