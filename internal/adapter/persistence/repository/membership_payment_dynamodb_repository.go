package repository

import (
	"context"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMembershipPaymentsTableName = "membership_payments"

type membershipPaymentItem struct {
	ID               string `dynamodbav:"id"`
	MemberID         string `dynamodbav:"member_id"`
	PlanID           string `dynamodbav:"plan_id"`
	Amount           int64  `dynamodbav:"amount"`
	Currency         string `dynamodbav:"currency"`
	Status           string `dynamodbav:"status"`
	GatewayOrderID   string `dynamodbav:"gateway_order_id"`
	GatewayPaymentID string `dynamodbav:"gateway_payment_id,omitempty"`
	PaymentReference string `dynamodbav:"payment_reference"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// MembershipPaymentDynamoRepository persists lifetime membership payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_reference-index (PK: payment_reference)

type MembershipPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMembershipPaymentRepository = (*MembershipPaymentDynamoRepository)(nil)

func NewMembershipPaymentDynamoRepository(ddb DynamoAPI) *MembershipPaymentDynamoRepository {
	return &MembershipPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEMBERSHIP_PAYMENTS_TABLE", defaultMembershipPaymentsTableName),
	}
}

func (r *MembershipPaymentDynamoRepository) Create(ctx context.Context, p entities.MembershipPayment) (entities.MembershipPayment, error) {
	av, err := attributevalue.MarshalMap(membershipPaymentItem{
		ID:               p.ID,
		MemberID:         p.MemberID,
		PlanID:           p.PlanID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           string(p.Status),
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		PaymentReference: p.PaymentReference,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	})
	if err != nil {
		return entities.MembershipPayment{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.MembershipPayment{}, err
	}
	return p, nil
}

func (r *MembershipPaymentDynamoRepository) GetByPaymentReference(ctx context.Context, reference string) (entities.MembershipPayment, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, paymentReferenceIndex, "payment_reference", reference, 1)
	if err != nil || len(items) == 0 {
		return entities.MembershipPayment{}, err
	}
	return unmarshalMembershipPayment(items[0])
}

func (r *MembershipPaymentDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.PaymentStatus, gatewayPaymentID string) (entities.MembershipPayment, error) {
	expr, values, names := statusTransitionUpdate(from, to, gatewayPaymentID)
	raw, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, "#status = :from", expr, values, names)
	if err != nil || len(raw) == 0 {
		return entities.MembershipPayment{}, err
	}
	return unmarshalMembershipPayment(raw)
}

func unmarshalMembershipPayment(raw map[string]types.AttributeValue) (entities.MembershipPayment, error) {
	var it membershipPaymentItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.MembershipPayment{}, err
	}
	return entities.MembershipPayment{
		ID:               it.ID,
		MemberID:         it.MemberID,
		PlanID:           it.PlanID,
		Amount:           it.Amount,
		Currency:         it.Currency,
		Status:           entities.PaymentStatus(it.Status),
		GatewayOrderID:   it.GatewayOrderID,
		GatewayPaymentID: it.GatewayPaymentID,
		PaymentReference: it.PaymentReference,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}, nil
}
