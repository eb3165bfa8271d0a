package repository

import (
	"context"
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubscriptionsTableName = "subscriptions"
	subscriptionsMemberIDIndex    = "member_id-index"
	gatewaySubscriptionIDIndex    = "gateway_subscription_id-index"
)

type subscriptionItem struct {
	ID                    string `dynamodbav:"id"`
	MemberID              string `dynamodbav:"member_id"`
	PlanID                string `dynamodbav:"plan_id"`
	Status                string `dynamodbav:"status"`
	StartDate             string `dynamodbav:"start_date,omitempty"`
	EndDate               string `dynamodbav:"end_date,omitempty"`
	NextBillingDate       string `dynamodbav:"next_billing_date,omitempty"`
	GatewaySubscriptionID string `dynamodbav:"gateway_subscription_id"`
	PaymentReference      string `dynamodbav:"payment_reference"`
	CancelledAt           string `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// SubscriptionDynamoRepository persists Subscription entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: member_id-index (PK: member_id)
//   - GSI: payment_reference-index (PK: payment_reference)
//   - GSI: gateway_subscription_id-index (PK: gateway_subscription_id)

type SubscriptionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ISubscriptionRepository = (*SubscriptionDynamoRepository)(nil)

func NewSubscriptionDynamoRepository(ddb DynamoAPI) *SubscriptionDynamoRepository {
	return &SubscriptionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBSCRIPTIONS_TABLE", defaultSubscriptionsTableName),
	}
}

func (r *SubscriptionDynamoRepository) Create(ctx context.Context, s entities.Subscription) (entities.Subscription, error) {
	av, err := attributevalue.MarshalMap(toSubscriptionItem(s))
	if err != nil {
		return entities.Subscription{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Subscription{}, err
	}
	return s, nil
}

func (r *SubscriptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Subscription, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Subscription{}, err
	}
	return unmarshalSubscription(raw)
}

func (r *SubscriptionDynamoRepository) GetByPaymentReference(ctx context.Context, reference string) (entities.Subscription, error) {
	return r.getOneByIndex(ctx, paymentReferenceIndex, "payment_reference", reference)
}

func (r *SubscriptionDynamoRepository) GetByGatewaySubscriptionID(ctx context.Context, gatewaySubscriptionID string) (entities.Subscription, error) {
	return r.getOneByIndex(ctx, gatewaySubscriptionIDIndex, "gateway_subscription_id", gatewaySubscriptionID)
}

func (r *SubscriptionDynamoRepository) ListByMemberID(ctx context.Context, memberID string) ([]entities.Subscription, error) {
	raws, err := queryIndex(ctx, r.ddb, r.tableName, subscriptionsMemberIDIndex, "member_id", memberID, 0)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Subscription, 0, len(raws))
	for _, raw := range raws {
		s, err := unmarshalSubscription(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, nil
}

func (r *SubscriptionDynamoRepository) Activate(ctx context.Context, id string, start, periodEnd time.Time) (entities.Subscription, error) {
	return r.update(ctx, id, entities.SubscriptionStatusPending,
		"SET #status = :to, #start_date = :start, #end_date = :end, #next_billing_date = :end, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":to":    &types.AttributeValueMemberS{Value: string(entities.SubscriptionStatusActive)},
			":start": &types.AttributeValueMemberS{Value: formatTime(start)},
			":end":   &types.AttributeValueMemberS{Value: formatTime(periodEnd)},
		},
		map[string]string{
			"#start_date":        "start_date",
			"#end_date":          "end_date",
			"#next_billing_date": "next_billing_date",
		},
	)
}

func (r *SubscriptionDynamoRepository) ExtendPeriod(ctx context.Context, id string, periodEnd time.Time) (entities.Subscription, error) {
	return r.update(ctx, id, entities.SubscriptionStatusActive,
		"SET #end_date = :end, #next_billing_date = :end, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":end": &types.AttributeValueMemberS{Value: formatTime(periodEnd)},
		},
		map[string]string{
			"#end_date":          "end_date",
			"#next_billing_date": "next_billing_date",
		},
	)
}

// MarkCancelled keeps end_date so access lasts until the paid period is over.
func (r *SubscriptionDynamoRepository) MarkCancelled(ctx context.Context, id string, cancelledAt time.Time) (entities.Subscription, error) {
	return r.update(ctx, id, entities.SubscriptionStatusActive,
		"SET #status = :to, #cancelled_at = :cancelled_at, #updated_at = :updated_at REMOVE #next_billing_date",
		map[string]types.AttributeValue{
			":to":           &types.AttributeValueMemberS{Value: string(entities.SubscriptionStatusCancelled)},
			":cancelled_at": &types.AttributeValueMemberS{Value: formatTime(cancelledAt)},
		},
		map[string]string{
			"#cancelled_at":      "cancelled_at",
			"#next_billing_date": "next_billing_date",
		},
	)
}

func (r *SubscriptionDynamoRepository) update(
	ctx context.Context,
	id string,
	from entities.SubscriptionStatus,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Subscription, error) {
	values[":from"] = &types.AttributeValueMemberS{Value: string(from)}
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}
	names = mergeNames(names, map[string]string{"#status": "status", "#updated_at": "updated_at"})

	raw, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, "#status = :from", updateExpr, values, names)
	if err != nil || len(raw) == 0 {
		return entities.Subscription{}, err
	}
	return unmarshalSubscription(raw)
}

func (r *SubscriptionDynamoRepository) getOneByIndex(ctx context.Context, index, attr, value string) (entities.Subscription, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, index, attr, value, 1)
	if err != nil || len(items) == 0 {
		return entities.Subscription{}, err
	}
	return unmarshalSubscription(items[0])
}

func unmarshalSubscription(raw map[string]types.AttributeValue) (entities.Subscription, error) {
	var it subscriptionItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Subscription{}, err
	}
	return fromSubscriptionItem(it), nil
}

func toSubscriptionItem(s entities.Subscription) subscriptionItem {
	return subscriptionItem{
		ID:                    s.ID,
		MemberID:              s.MemberID,
		PlanID:                s.PlanID,
		Status:                string(s.Status),
		StartDate:             formatTimePtr(s.StartDate),
		EndDate:               formatTimePtr(s.EndDate),
		NextBillingDate:       formatTimePtr(s.NextBillingDate),
		GatewaySubscriptionID: s.GatewaySubscriptionID,
		PaymentReference:      s.PaymentReference,
		CancelledAt:           formatTimePtr(s.CancelledAt),
		CreatedAt:             formatTime(s.CreatedAt),
		UpdatedAt:             formatTime(s.UpdatedAt),
	}
}

func fromSubscriptionItem(it subscriptionItem) entities.Subscription {
	return entities.Subscription{
		ID:                    it.ID,
		MemberID:              it.MemberID,
		PlanID:                it.PlanID,
		Status:                entities.SubscriptionStatus(it.Status),
		StartDate:             parseTimePtr(it.StartDate),
		EndDate:               parseTimePtr(it.EndDate),
		NextBillingDate:       parseTimePtr(it.NextBillingDate),
		GatewaySubscriptionID: it.GatewaySubscriptionID,
		PaymentReference:      it.PaymentReference,
		CancelledAt:           parseTimePtr(it.CancelledAt),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
	}
}
