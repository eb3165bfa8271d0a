package response

import (
	"time"

	"ngo_portal/internal/domain/entities"
)

type PlanResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Price         int64    `json:"price"`
	PriceDisplay  string   `json:"price_display"`
	Currency      string   `json:"currency"`
	Features      []string `json:"features"`
	GatewayPlanID string   `json:"gateway_plan_id,omitempty"`
	Recurring     bool     `json:"recurring"`
	Active        bool     `json:"active"`
}

func FromPlan(p entities.MembershipPlan) PlanResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PlanResponse{
		ID:            p.ID,
		Name:          p.Name,
		Type:          string(p.Type),
		Price:         p.Price,
		PriceDisplay:  entities.FormatMinor(p.Price),
		Currency:      p.Currency,
		Features:      features,
		GatewayPlanID: p.GatewayPlanID,
		Recurring:     p.IsRecurring(),
		Active:        p.Active,
	}
}

func FromPlans(plans []entities.MembershipPlan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, FromPlan(p))
	}
	return out
}

type SubscriptionResponse struct {
	ID                    string     `json:"id"`
	MemberID              string     `json:"member_id"`
	PlanID                string     `json:"plan_id"`
	Status                string     `json:"status"`
	StartDate             *time.Time `json:"start_date,omitempty"`
	EndDate               *time.Time `json:"end_date,omitempty"`
	NextBillingDate       *time.Time `json:"next_billing_date,omitempty"`
	GatewaySubscriptionID string     `json:"gateway_subscription_id"`
	PaymentReference      string     `json:"payment_reference"`
	CancelledAt           *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

func FromSubscription(s entities.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:                    s.ID,
		MemberID:              s.MemberID,
		PlanID:                s.PlanID,
		Status:                string(s.Status),
		StartDate:             s.StartDate,
		EndDate:               s.EndDate,
		NextBillingDate:       s.NextBillingDate,
		GatewaySubscriptionID: s.GatewaySubscriptionID,
		PaymentReference:      s.PaymentReference,
		CancelledAt:           s.CancelledAt,
		CreatedAt:             s.CreatedAt,
	}
}

func FromSubscriptions(subs []entities.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubscription(s))
	}
	return out
}
