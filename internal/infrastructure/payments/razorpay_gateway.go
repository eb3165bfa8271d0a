package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ngo_portal/internal/usecase/interfaces"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

const mockRazorpayKeyID = "rzp_test_mock"

// razorpayOrders and razorpaySubscriptions are the parts of the SDK resources the gateway uses.
type razorpayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type razorpaySubscriptions interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Cancel(subscriptionID string, data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type RazorpayGateway struct {
	keyID         string
	keySecret     string
	webhookSecret string
	orders        razorpayOrders
	subscriptions razorpaySubscriptions
	mockMode      bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret, webhookSecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] razorpay mock mode enabled")
		return &RazorpayGateway{
			keyID:         mockRazorpayKeyID,
			keySecret:     keySecret,
			webhookSecret: webhookSecret,
			mockMode:      true,
		}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
		return nil, ErrMissingRazorpayCredentials
	}
	if webhookSecret == "" {
		log.Printf("[payment][gateway] RAZORPAY_WEBHOOK_SECRET not set, webhooks will be rejected")
	}

	client := razorpay.NewClient(keyID, keySecret)
	log.Printf("[payment][gateway] Razorpay client initialized key_id=%s", keyID)

	return &RazorpayGateway{
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		orders:        client.Order,
		subscriptions: client.Subscription,
	}, nil
}

func NewRazorpayGatewayFromEnv() (*RazorpayGateway, error) {
	return NewRazorpayGateway(
		strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),
		strings.TrimSpace(os.Getenv("RAZORPAY_WEBHOOK_SECRET")),
	)
}

// KeyID is the public key the hosted checkout needs to open the modal.
func (g *RazorpayGateway) KeyID() string {
	if g == nil {
		return ""
	}
	return g.keyID
}

func (g *RazorpayGateway) CreateOrder(_ context.Context, req interfaces.OrderRequest) (interfaces.GatewayOrder, error) {
	if g != nil && g.mockMode {
		id := "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create-order success order_id=%s amount=%d", id, req.Amount)
		return interfaces.GatewayOrder{ID: id, Amount: req.Amount, Currency: req.Currency}, nil
	}
	if g == nil || g.orders == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayOrder{}, ErrRazorpayGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create-order start receipt=%s amount=%d currency=%s", req.Receipt, req.Amount, req.Currency)

	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}
	if len(req.Notes) > 0 {
		data["notes"] = req.Notes
	}

	resp, err := g.orders.Create(data, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk create-order failed receipt=%s err=%v", req.Receipt, err)
		return interfaces.GatewayOrder{}, err
	}

	order := interfaces.GatewayOrder{
		ID:       stringField(resp, "id"),
		Amount:   int64Field(resp, "amount"),
		Currency: stringField(resp, "currency"),
	}
	if order.ID == "" {
		log.Printf("[payment][gateway] create-order response without id receipt=%s", req.Receipt)
		return interfaces.GatewayOrder{}, fmt.Errorf("razorpay order response without id")
	}
	log.Printf("[payment][gateway] create-order success order_id=%s receipt=%s", order.ID, req.Receipt)

	return order, nil
}

func (g *RazorpayGateway) CreateSubscription(_ context.Context, req interfaces.SubscriptionRequest) (interfaces.GatewaySubscription, error) {
	if g != nil && g.mockMode {
		id := "sub_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create-subscription success subscription_id=%s plan_id=%s", id, req.GatewayPlanID)
		return interfaces.GatewaySubscription{ID: id, Status: "created"}, nil
	}
	if g == nil || g.subscriptions == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewaySubscription{}, ErrRazorpayGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create-subscription start plan_id=%s total_count=%d", req.GatewayPlanID, req.TotalCount)

	data := map[string]interface{}{
		"plan_id":         req.GatewayPlanID,
		"total_count":     req.TotalCount,
		"customer_notify": 1,
	}
	if len(req.Notes) > 0 {
		data["notes"] = req.Notes
	}

	resp, err := g.subscriptions.Create(data, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk create-subscription failed plan_id=%s err=%v", req.GatewayPlanID, err)
		return interfaces.GatewaySubscription{}, err
	}

	sub := interfaces.GatewaySubscription{ID: stringField(resp, "id"), Status: stringField(resp, "status")}
	if sub.ID == "" {
		log.Printf("[payment][gateway] create-subscription response without id plan_id=%s", req.GatewayPlanID)
		return interfaces.GatewaySubscription{}, fmt.Errorf("razorpay subscription response without id")
	}
	log.Printf("[payment][gateway] create-subscription success subscription_id=%s status=%s", sub.ID, sub.Status)

	return sub, nil
}

// VerifyPayment checks the checkout signature locally with the key secret.
func (g *RazorpayGateway) VerifyPayment(_ context.Context, c interfaces.PaymentConfirmation) (bool, error) {
	if g == nil {
		return false, ErrRazorpayGatewayNotConfigured
	}
	if c.OrderID == "" || c.PaymentID == "" || c.Signature == "" {
		return false, nil
	}
	if g.mockMode {
		log.Printf("[payment][gateway] mock verify-payment order_id=%s payment_id=%s", c.OrderID, c.PaymentID)
		return true, nil
	}
	ok := utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   c.OrderID,
		"razorpay_payment_id": c.PaymentID,
	}, c.Signature, g.keySecret)
	log.Printf("[payment][gateway] verify-payment order_id=%s payment_id=%s valid=%t", c.OrderID, c.PaymentID, ok)
	return ok, nil
}

func (g *RazorpayGateway) VerifySubscriptionPayment(_ context.Context, c interfaces.PaymentConfirmation) (bool, error) {
	if g == nil {
		return false, ErrRazorpayGatewayNotConfigured
	}
	if c.SubscriptionID == "" || c.PaymentID == "" || c.Signature == "" {
		return false, nil
	}
	if g.mockMode {
		log.Printf("[payment][gateway] mock verify-subscription subscription_id=%s payment_id=%s", c.SubscriptionID, c.PaymentID)
		return true, nil
	}
	ok := utils.VerifySubscriptionSignature(map[string]interface{}{
		"razorpay_subscription_id": c.SubscriptionID,
		"razorpay_payment_id":      c.PaymentID,
	}, c.Signature, g.keySecret)
	log.Printf("[payment][gateway] verify-subscription subscription_id=%s payment_id=%s valid=%t", c.SubscriptionID, c.PaymentID, ok)
	return ok, nil
}

func (g *RazorpayGateway) CancelSubscription(_ context.Context, gatewaySubscriptionID string, atCycleEnd bool) error {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock cancel-subscription subscription_id=%s at_cycle_end=%t", gatewaySubscriptionID, atCycleEnd)
		return nil
	}
	if g == nil || g.subscriptions == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return ErrRazorpayGatewayNotConfigured
	}

	cycleEnd := 0
	if atCycleEnd {
		cycleEnd = 1
	}
	if _, err := g.subscriptions.Cancel(gatewaySubscriptionID, map[string]interface{}{"cancel_at_cycle_end": cycleEnd}, nil); err != nil {
		log.Printf("[payment][gateway] sdk cancel-subscription failed subscription_id=%s err=%v", gatewaySubscriptionID, err)
		return err
	}
	log.Printf("[payment][gateway] cancel-subscription success subscription_id=%s at_cycle_end=%t", gatewaySubscriptionID, atCycleEnd)
	return nil
}

// VerifyWebhook checks X-Razorpay-Signature against the raw request body.
func (g *RazorpayGateway) VerifyWebhook(body []byte, signature string) bool {
	if g == nil || signature == "" {
		return false
	}
	if g.mockMode {
		return true
	}
	if g.webhookSecret == "" {
		log.Printf("[payment][gateway] webhook rejected: RAZORPAY_WEBHOOK_SECRET not set")
		return false
	}
	return utils.VerifyWebhookSignature(string(body), signature, g.webhookSecret)
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// int64Field reads JSON numbers, which the SDK decodes as float64.
func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
