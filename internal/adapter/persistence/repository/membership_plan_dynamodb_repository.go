package repository

import (
	"context"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlansTableName = "membership_plans"

type membershipPlanItem struct {
	ID            string   `dynamodbav:"id"`
	Name          string   `dynamodbav:"name"`
	Type          string   `dynamodbav:"type"`
	Price         int64    `dynamodbav:"price"`
	Currency      string   `dynamodbav:"currency"`
	Features      []string `dynamodbav:"features"`
	GatewayPlanID string   `dynamodbav:"gateway_plan_id,omitempty"`
	Active        bool     `dynamodbav:"active"`
	CreatedAt     string   `dynamodbav:"created_at"`
	UpdatedAt     string   `dynamodbav:"updated_at"`
}

// MembershipPlanDynamoRepository persists MembershipPlan entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Features are stored as a list attribute so their order is kept.

type MembershipPlanDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMembershipPlanRepository = (*MembershipPlanDynamoRepository)(nil)

func NewMembershipPlanDynamoRepository(ddb DynamoAPI) *MembershipPlanDynamoRepository {
	return &MembershipPlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLANS_TABLE", defaultPlansTableName),
	}
}

func (r *MembershipPlanDynamoRepository) GetByID(ctx context.Context, id string) (entities.MembershipPlan, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.MembershipPlan{}, err
	}
	return unmarshalPlan(raw)
}

func (r *MembershipPlanDynamoRepository) List(ctx context.Context) ([]entities.MembershipPlan, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MembershipPlan, 0, len(raws))
	for _, raw := range raws {
		p, err := unmarshalPlan(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Put creates or replaces a plan.
func (r *MembershipPlanDynamoRepository) Put(ctx context.Context, p entities.MembershipPlan) (entities.MembershipPlan, error) {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	av, err := attributevalue.MarshalMap(membershipPlanItem{
		ID:            p.ID,
		Name:          p.Name,
		Type:          string(p.Type),
		Price:         p.Price,
		Currency:      p.Currency,
		Features:      features,
		GatewayPlanID: p.GatewayPlanID,
		Active:        p.Active,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	})
	if err != nil {
		return entities.MembershipPlan{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.MembershipPlan{}, err
	}
	return p, nil
}

func unmarshalPlan(raw map[string]types.AttributeValue) (entities.MembershipPlan, error) {
	var it membershipPlanItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.MembershipPlan{}, err
	}
	return entities.MembershipPlan{
		ID:            it.ID,
		Name:          it.Name,
		Type:          entities.PlanType(it.Type),
		Price:         it.Price,
		Currency:      it.Currency,
		Features:      it.Features,
		GatewayPlanID: it.GatewayPlanID,
		Active:        it.Active,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}, nil
}
