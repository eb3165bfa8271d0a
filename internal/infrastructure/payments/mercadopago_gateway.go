package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ngo_portal/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrSubscriptionsUnsupported = errors.New("recurring memberships are not supported by this payment provider")

const mercadoPagoApproved = "approved"

// MercadoPagoGateway serves one-time donations and lifetime memberships through
// Checkout Pro preferences. Recurring memberships need Razorpay.
type MercadoPagoGateway struct {
	publicKey   string
	preferences preference.Client
	payments    payment.Client
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, publicKey string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mercado pago mock mode enabled")
		return &MercadoPagoGateway{publicKey: publicKey, mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		publicKey:   publicKey,
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func NewMercadoPagoGatewayFromEnv() (*MercadoPagoGateway, error) {
	return NewMercadoPagoGateway(
		strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		strings.TrimSpace(os.Getenv("MERCADOPAGO_PUBLIC_KEY")),
	)
}

func (g *MercadoPagoGateway) KeyID() string {
	if g == nil {
		return ""
	}
	return g.publicKey
}

// CreateOrder creates a Checkout Pro preference; its id plays the role of the order id.
func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, req interfaces.OrderRequest) (interfaces.GatewayOrder, error) {
	if g != nil && g.mockMode {
		id := "pref_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create-order success order_id=%s amount=%d", id, req.Amount)
		return interfaces.GatewayOrder{ID: id, Amount: req.Amount, Currency: req.Currency}, nil
	}
	if g == nil || g.preferences == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayOrder{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create-preference start receipt=%s amount=%d currency=%s", req.Receipt, req.Amount, req.Currency)

	title := "Donation"
	if t := req.Notes["type"]; t != "" && t != "donation" {
		title = "Membership"
	}

	resp, err := g.preferences.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{{
			ID:         req.Receipt,
			Title:      title,
			Quantity:   1,
			CurrencyID: req.Currency,
			UnitPrice:  decimal.NewFromInt(req.Amount).Shift(-2).InexactFloat64(),
		}},
		Payer: &preference.PayerRequest{
			Name:  req.Payer.Name,
			Email: req.Payer.Email,
		},
		ExternalReference: req.Receipt,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create-preference failed receipt=%s err=%v", req.Receipt, err)
		return interfaces.GatewayOrder{}, err
	}
	log.Printf("[payment][gateway] create-preference success preference_id=%s receipt=%s", resp.ID, req.Receipt)

	return interfaces.GatewayOrder{ID: resp.ID, Amount: req.Amount, Currency: req.Currency}, nil
}

func (g *MercadoPagoGateway) CreateSubscription(context.Context, interfaces.SubscriptionRequest) (interfaces.GatewaySubscription, error) {
	return interfaces.GatewaySubscription{}, ErrSubscriptionsUnsupported
}

// VerifyPayment looks the payment up and requires it approved for the same reference.
func (g *MercadoPagoGateway) VerifyPayment(ctx context.Context, c interfaces.PaymentConfirmation) (bool, error) {
	if c.PaymentID == "" {
		return false, nil
	}
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock verify-payment reference=%s payment_id=%s", c.Reference, c.PaymentID)
		return true, nil
	}
	if g == nil || g.payments == nil {
		return false, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(c.PaymentID)
	if err != nil {
		log.Printf("[payment][gateway] invalid payment id payment_id=%q", c.PaymentID)
		return false, nil
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get-payment failed payment_id=%d err=%v", id, err)
		return false, err
	}

	ok := resp.Status == mercadoPagoApproved && resp.ExternalReference == c.Reference
	log.Printf("[payment][gateway] verify-payment payment_id=%d status=%s reference=%s valid=%t", id, resp.Status, c.Reference, ok)
	return ok, nil
}

func (g *MercadoPagoGateway) VerifySubscriptionPayment(context.Context, interfaces.PaymentConfirmation) (bool, error) {
	return false, ErrSubscriptionsUnsupported
}

func (g *MercadoPagoGateway) CancelSubscription(context.Context, string, bool) error {
	return ErrSubscriptionsUnsupported
}

// VerifyWebhook always rejects: provider webhooks are only wired for Razorpay.
func (g *MercadoPagoGateway) VerifyWebhook([]byte, string) bool {
	log.Printf("[payment][gateway] mercado pago webhook rejected")
	return false
}
