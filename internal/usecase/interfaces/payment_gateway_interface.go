package interfaces

import "context"

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mock_interfaces

// OrderRequest describes a one-time payment intent. Amount is in minor units.
type OrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
	Payer    Payer
}

type Payer struct {
	Name  string
	Email string
	Phone string
}

type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// SubscriptionRequest describes a recurring mandate against a gateway-side plan.
type SubscriptionRequest struct {
	GatewayPlanID string
	TotalCount    int
	Notes         map[string]string
}

type GatewaySubscription struct {
	ID     string
	Status string
}

// PaymentConfirmation carries the signed fields the hosted checkout returns on success.
type PaymentConfirmation struct {
	Reference      string
	OrderID        string
	SubscriptionID string
	PaymentID      string
	Signature      string
}

// IPaymentGateway abstracts external payment providers (Razorpay, Mercado Pago).
//
// Verify* methods return (false, nil) when the confirmation is not authentic and a
// non-nil error only when the provider could not be consulted.
type IPaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, req OrderRequest) (GatewayOrder, error)
	CreateSubscription(ctx context.Context, req SubscriptionRequest) (GatewaySubscription, error)
	VerifyPayment(ctx context.Context, c PaymentConfirmation) (bool, error)
	VerifySubscriptionPayment(ctx context.Context, c PaymentConfirmation) (bool, error)
	CancelSubscription(ctx context.Context, gatewaySubscriptionID string, atCycleEnd bool) error
	VerifyWebhook(body []byte, signature string) bool
}
