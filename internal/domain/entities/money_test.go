package entities

import (
	"testing"
	"time"
)

func TestFormatMinor(t *testing.T) {
	cases := map[int64]string{
		0:       "0.00",
		50000:   "500.00",
		12345:   "123.45",
		1000005: "10000.05",
	}
	for in, want := range cases {
		if got := FormatMinor(in); got != want {
			t.Fatalf("FormatMinor(%d): expected %s, got %s", in, want, got)
		}
	}
	if got := RupeesToMinor(500); got != 50000 {
		t.Fatalf("expected 50000, got %d", got)
	}
}

func TestMembershipPlan_BillingPeriodEnd(t *testing.T) {
	start := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	monthly := MembershipPlan{Type: PlanTypeMonthly}
	if got := monthly.BillingPeriodEnd(start); !got.Equal(time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected monthly end: %v", got)
	}
	yearly := MembershipPlan{Type: PlanTypeYearly}
	if got := yearly.BillingPeriodEnd(start); !got.Equal(time.Date(2027, 1, 15, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected yearly end: %v", got)
	}
	lifetime := MembershipPlan{Type: PlanTypeLifetime}
	if !lifetime.BillingPeriodEnd(start).IsZero() || lifetime.IsRecurring() {
		t.Fatalf("lifetime plan must not have a billing period")
	}
}

func TestSubscription_EffectiveStatus(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name string
		sub  Subscription
		want SubscriptionStatus
	}{
		{"pending stays pending", Subscription{Status: SubscriptionStatusPending}, SubscriptionStatusPending},
		{"active within period", Subscription{Status: SubscriptionStatusActive, EndDate: &future}, SubscriptionStatusActive},
		{"active past period", Subscription{Status: SubscriptionStatusActive, EndDate: &past}, SubscriptionStatusExpired},
		{"cancelled keeps current period", Subscription{Status: SubscriptionStatusCancelled, EndDate: &future}, SubscriptionStatusCancelled},
		{"cancelled after period", Subscription{Status: SubscriptionStatusCancelled, EndDate: &past}, SubscriptionStatusExpired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sub.EffectiveStatus(now); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
