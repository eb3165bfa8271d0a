package interfaces

import (
	"context"
	"time"

	"ngo_portal/internal/domain/entities"
)

//go:generate mockgen -source=membership_repository_interface.go -destination=mocks/mock_membership_repository_interface.go -package=mock_interfaces

// IMemberRepository abstracts DynamoDB persistence for Member.
type IMemberRepository interface {
	Create(ctx context.Context, member entities.Member) (entities.Member, error)
	GetByID(ctx context.Context, id string) (entities.Member, error)
	GetByEmail(ctx context.Context, email string) (entities.Member, error)
}

// IMembershipPlanRepository abstracts DynamoDB persistence for MembershipPlan.
type IMembershipPlanRepository interface {
	GetByID(ctx context.Context, id string) (entities.MembershipPlan, error)
	List(ctx context.Context) ([]entities.MembershipPlan, error)
	Put(ctx context.Context, p entities.MembershipPlan) (entities.MembershipPlan, error)
}

// ISubscriptionRepository abstracts DynamoDB persistence for Subscription.
//
// State-changing methods are conditional on the current status:
//   - Activate: pending -> active
//   - ExtendPeriod: active -> active (new period end)
//   - MarkCancelled: active -> cancelled
//
// A failed condition returns a zero Subscription and no error.
type ISubscriptionRepository interface {
	Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error)
	GetByID(ctx context.Context, id string) (entities.Subscription, error)
	GetByPaymentReference(ctx context.Context, reference string) (entities.Subscription, error)
	GetByGatewaySubscriptionID(ctx context.Context, gatewaySubscriptionID string) (entities.Subscription, error)
	ListByMemberID(ctx context.Context, memberID string) ([]entities.Subscription, error)
	Activate(ctx context.Context, id string, start, periodEnd time.Time) (entities.Subscription, error)
	ExtendPeriod(ctx context.Context, id string, periodEnd time.Time) (entities.Subscription, error)
	MarkCancelled(ctx context.Context, id string, cancelledAt time.Time) (entities.Subscription, error)
}

// IMembershipPaymentRepository abstracts DynamoDB persistence for MembershipPayment.
type IMembershipPaymentRepository interface {
	Create(ctx context.Context, p entities.MembershipPayment) (entities.MembershipPayment, error)
	GetByPaymentReference(ctx context.Context, reference string) (entities.MembershipPayment, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.PaymentStatus, gatewayPaymentID string) (entities.MembershipPayment, error)
}
