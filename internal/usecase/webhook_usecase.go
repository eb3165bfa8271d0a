package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrInvalidWebhookPayload   = errors.New("invalid webhook payload")
)

const (
	EventSubscriptionActivated = "subscription.activated"
	EventSubscriptionCharged   = "subscription.charged"
	EventSubscriptionCancelled = "subscription.cancelled"
	EventPaymentCaptured       = "payment.captured"
	EventPaymentFailed         = "payment.failed"
)

// WebhookResult tells the caller whether the event changed anything.
type WebhookResult struct {
	Event   string
	Handled bool
}

// IWebhookUseCase applies gateway events to local records.
//
// It is the only automatic confirmation channel: payments captured while the
// verification call was unreachable are settled here.

type IWebhookUseCase interface {
	Handle(ctx context.Context, body []byte, signature string) (WebhookResult, error)
}

type WebhookUseCase struct {
	donations   interfaces.IDonationRepository
	memberships MembershipStores
	gateway     interfaces.IPaymentGateway
	now         func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(donations interfaces.IDonationRepository, memberships MembershipStores, gateway interfaces.IPaymentGateway) *WebhookUseCase {
	return &WebhookUseCase{donations: donations, memberships: memberships, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Subscription *struct {
			Entity webhookSubscription `json:"entity"`
		} `json:"subscription"`
		Payment *struct {
			Entity webhookPayment `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

type webhookSubscription struct {
	ID         string            `json:"id"`
	Status     string            `json:"status"`
	CurrentEnd int64             `json:"current_end"`
	ChargeAt   int64             `json:"charge_at"`
	Notes      map[string]string `json:"notes"`
}

type webhookPayment struct {
	ID      string            `json:"id"`
	OrderID string            `json:"order_id"`
	Status  string            `json:"status"`
	Notes   map[string]string `json:"notes"`
}

func (u *WebhookUseCase) Handle(ctx context.Context, body []byte, signature string) (WebhookResult, error) {
	if u.gateway == nil {
		return WebhookResult{}, ErrPaymentGatewayNotConfigured
	}
	if strings.TrimSpace(signature) == "" || !u.gateway.VerifyWebhook(body, signature) {
		log.Printf("[payment][webhook] signature rejected body_len=%d", len(body))
		return WebhookResult{}, ErrInvalidWebhookSignature
	}

	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Event == "" {
		log.Printf("[payment][webhook] payload unmarshal failed err=%v", err)
		return WebhookResult{}, ErrInvalidWebhookPayload
	}
	log.Printf("[payment][webhook] received event=%s", env.Event)

	res := WebhookResult{Event: env.Event}
	var err error
	switch env.Event {
	case EventSubscriptionActivated, EventSubscriptionCharged:
		if env.Payload.Subscription == nil {
			return res, ErrInvalidWebhookPayload
		}
		res.Handled, err = u.subscriptionCharged(ctx, env.Event, env.Payload.Subscription.Entity)
	case EventSubscriptionCancelled:
		if env.Payload.Subscription == nil {
			return res, ErrInvalidWebhookPayload
		}
		res.Handled, err = u.subscriptionCancelled(ctx, env.Payload.Subscription.Entity)
	case EventPaymentCaptured:
		if env.Payload.Payment == nil {
			return res, ErrInvalidWebhookPayload
		}
		res.Handled, err = u.capturePayment(ctx, env.Payload.Payment.Entity)
	case EventPaymentFailed:
		if env.Payload.Payment == nil {
			return res, ErrInvalidWebhookPayload
		}
		// A failed attempt leaves the order open; the customer may retry it
		// and a later capture still settles the record.
		p := env.Payload.Payment.Entity
		log.Printf("[payment][webhook] payment attempt failed payment_id=%s order_id=%s reference=%s", p.ID, p.OrderID, p.Notes["payment_reference"])
	default:
		log.Printf("[payment][webhook] ignoring event=%s", env.Event)
	}
	if err != nil {
		log.Printf("[payment][webhook] event=%s failed err=%v", env.Event, err)
	}
	return res, err
}

// chargeWindow is how close to the stored period end a charge without
// current_end must arrive to extend the period.
const chargeWindow = 72 * time.Hour

func (u *WebhookUseCase) subscriptionCharged(ctx context.Context, event string, gs webhookSubscription) (bool, error) {
	s, err := u.memberships.Subscriptions.GetByGatewaySubscriptionID(ctx, gs.ID)
	if err != nil {
		return false, err
	}
	if s.ID == "" {
		log.Printf("[payment][webhook] unknown gateway_subscription_id=%s", gs.ID)
		return false, nil
	}
	plan, err := u.memberships.Plans.GetByID(ctx, s.PlanID)
	if err != nil {
		return false, err
	}
	if plan.ID == "" && gs.CurrentEnd == 0 {
		return false, ErrPlanNotFound
	}

	now := u.now()
	switch s.Status {
	case entities.SubscriptionStatusPending:
		end := periodEnd(gs, plan, now)
		activated, err := u.memberships.Subscriptions.Activate(ctx, s.ID, now, end)
		if err != nil {
			return false, err
		}
		log.Printf("[payment][webhook] subscription activated subscription_id=%s applied=%t", s.ID, activated.ID != "")
		return activated.ID != "", nil
	case entities.SubscriptionStatusActive:
		if event == EventSubscriptionActivated {
			log.Printf("[payment][webhook] subscription already active subscription_id=%s", s.ID)
			return false, nil
		}
		end, ok := chargedPeriodEnd(gs, plan, s.EndDate, now)
		if !ok {
			log.Printf("[payment][webhook] charge already applied subscription_id=%s", s.ID)
			return false, nil
		}
		extended, err := u.memberships.Subscriptions.ExtendPeriod(ctx, s.ID, end)
		if err != nil {
			return false, err
		}
		log.Printf("[payment][webhook] subscription period extended subscription_id=%s end=%s", s.ID, end.Format(time.RFC3339))
		return extended.ID != "", nil
	}
	return false, nil
}

// chargedPeriodEnd returns the period end a charge moves the subscription to,
// or false when the charge is a redelivery of one already applied.
func chargedPeriodEnd(gs webhookSubscription, plan entities.MembershipPlan, current *time.Time, now time.Time) (time.Time, bool) {
	if current == nil {
		return periodEnd(gs, plan, now), true
	}
	if gs.CurrentEnd > 0 {
		end := time.Unix(gs.CurrentEnd, 0).UTC()
		return end, end.After(*current)
	}
	if now.Before(current.Add(-chargeWindow)) {
		return time.Time{}, false
	}
	return plan.BillingPeriodEnd(*current), true
}

func (u *WebhookUseCase) subscriptionCancelled(ctx context.Context, gs webhookSubscription) (bool, error) {
	s, err := u.memberships.Subscriptions.GetByGatewaySubscriptionID(ctx, gs.ID)
	if err != nil {
		return false, err
	}
	if s.ID == "" || s.Status != entities.SubscriptionStatusActive {
		return false, nil
	}
	cancelled, err := u.memberships.Subscriptions.MarkCancelled(ctx, s.ID, u.now())
	if err != nil {
		return false, err
	}
	return cancelled.ID != "", nil
}

// capturePayment settles the pending record named by the payment_reference
// note. The type note picks the store; orders without it are matched by the
// reference prefix. Records already settled are left alone.
func (u *WebhookUseCase) capturePayment(ctx context.Context, p webhookPayment) (bool, error) {
	reference := strings.TrimSpace(p.Notes["payment_reference"])
	if reference == "" {
		log.Printf("[payment][webhook] payment without payment_reference payment_id=%s", p.ID)
		return false, nil
	}

	switch paymentKind(p, reference) {
	case entities.PaymentTypeDonation:
		handled, _, err := u.captureDonation(ctx, p, reference)
		return handled, err
	case entities.PaymentTypeLifetime:
		handled, _, err := u.captureMembershipPayment(ctx, p, reference)
		return handled, err
	case "":
		handled, found, err := u.captureDonation(ctx, p, reference)
		if err != nil || found {
			return handled, err
		}
		handled, found, err = u.captureMembershipPayment(ctx, p, reference)
		if err == nil && !found {
			log.Printf("[payment][webhook] no record for reference=%s payment_id=%s", reference, p.ID)
		}
		return handled, err
	}
	return false, nil
}

func paymentKind(p webhookPayment, reference string) entities.PaymentType {
	if t := entities.PaymentType(strings.TrimSpace(p.Notes["type"])); t.Valid() {
		return t
	}
	switch {
	case strings.HasPrefix(reference, referencePrefixDonation+"-"):
		return entities.PaymentTypeDonation
	case strings.HasPrefix(reference, referencePrefixLifetime+"-"):
		return entities.PaymentTypeLifetime
	case strings.HasPrefix(reference, referencePrefixSubscription+"-"):
		return entities.PaymentTypeSubscription
	}
	return ""
}

func (u *WebhookUseCase) captureDonation(ctx context.Context, p webhookPayment, reference string) (handled, found bool, err error) {
	d, err := u.donations.GetByPaymentReference(ctx, reference)
	if err != nil || d.ID == "" {
		return false, false, err
	}
	if d.GatewayOrderID != p.OrderID || d.Status != entities.PaymentStatusPending {
		return false, true, nil
	}
	updated, err := u.donations.TransitionStatus(ctx, d.ID, entities.PaymentStatusPending, entities.PaymentStatusSuccess, p.ID)
	if err != nil {
		return false, true, err
	}
	log.Printf("[payment][webhook] donation captured donation_id=%s applied=%t", d.ID, updated.ID != "")
	return updated.ID != "", true, nil
}

func (u *WebhookUseCase) captureMembershipPayment(ctx context.Context, p webhookPayment, reference string) (handled, found bool, err error) {
	mp, err := u.memberships.Payments.GetByPaymentReference(ctx, reference)
	if err != nil || mp.ID == "" {
		return false, false, err
	}
	if mp.GatewayOrderID != p.OrderID || mp.Status != entities.PaymentStatusPending {
		return false, true, nil
	}
	updated, err := u.memberships.Payments.TransitionStatus(ctx, mp.ID, entities.PaymentStatusPending, entities.PaymentStatusSuccess, p.ID)
	if err != nil {
		return false, true, err
	}
	log.Printf("[payment][webhook] membership payment captured payment_id=%s applied=%t", mp.ID, updated.ID != "")
	return updated.ID != "", true, nil
}

func periodEnd(gs webhookSubscription, plan entities.MembershipPlan, start time.Time) time.Time {
	if gs.CurrentEnd > 0 {
		return time.Unix(gs.CurrentEnd, 0).UTC()
	}
	return plan.BillingPeriodEnd(start)
}
