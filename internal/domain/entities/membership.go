package entities

import "time"

// PlanType is the billing cadence of a membership plan.
//
// Lifetime plans are paid through a one-time order; monthly and yearly plans
// go through a recurring gateway subscription.

type PlanType string

const (
	PlanTypeMonthly  PlanType = "monthly"
	PlanTypeYearly   PlanType = "yearly"
	PlanTypeLifetime PlanType = "lifetime"
)

// MembershipPlan is read-only from the public site and maintained from the admin console.
//
// Storage model (DynamoDB):
//   - PK: id
type MembershipPlan struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          PlanType  `json:"type"`
	Price         int64     `json:"price"`
	Currency      string    `json:"currency"`
	Features      []string  `json:"features"`
	GatewayPlanID string    `json:"gateway_plan_id,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p MembershipPlan) IsRecurring() bool {
	return p.Type == PlanTypeMonthly || p.Type == PlanTypeYearly
}

// BillingPeriodEnd returns the end of the billing period starting at start.
// Lifetime plans have no period end and return the zero time.
func (p MembershipPlan) BillingPeriodEnd(start time.Time) time.Time {
	switch p.Type {
	case PlanTypeMonthly:
		return start.AddDate(0, 1, 0)
	case PlanTypeYearly:
		return start.AddDate(1, 0, 0)
	}
	return time.Time{}
}

// Member is a person holding (or applying for) a membership.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// Subscription links a Member to a recurring MembershipPlan.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (member_id-index): member_id
//   - GSI2 (payment_reference-index): payment_reference
//
// A subscription that never gets confirmed simply stays pending. Cancelling keeps
// EndDate so the member retains access until the current period is over.
type Subscription struct {
	ID                    string             `json:"id"`
	MemberID              string             `json:"member_id"`
	PlanID                string             `json:"plan_id"`
	Status                SubscriptionStatus `json:"status"`
	StartDate             *time.Time         `json:"start_date,omitempty"`
	EndDate               *time.Time         `json:"end_date,omitempty"`
	NextBillingDate       *time.Time         `json:"next_billing_date,omitempty"`
	GatewaySubscriptionID string             `json:"gateway_subscription_id"`
	PaymentReference      string             `json:"payment_reference"`
	CancelledAt           *time.Time         `json:"cancelled_at,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// EffectiveStatus reports expired once the paid period is over.
func (s Subscription) EffectiveStatus(now time.Time) SubscriptionStatus {
	if s.Status != SubscriptionStatusActive && s.Status != SubscriptionStatusCancelled {
		return s.Status
	}
	if s.EndDate != nil && !now.Before(*s.EndDate) {
		return SubscriptionStatusExpired
	}
	return s.Status
}

// MembershipPayment is the one-time payment of a lifetime plan.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_reference-index): payment_reference
type MembershipPayment struct {
	ID               string        `json:"id"`
	MemberID         string        `json:"member_id"`
	PlanID           string        `json:"plan_id"`
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	Status           PaymentStatus `json:"status"`
	GatewayOrderID   string        `json:"gateway_order_id"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	PaymentReference string        `json:"payment_reference"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
