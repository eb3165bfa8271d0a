package repository

import (
	"context"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMembersTableName = "members"
	membersEmailIndex       = "email-index"
)

type memberItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// MemberDynamoRepository persists Member entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)

type MemberDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMemberRepository = (*MemberDynamoRepository)(nil)

func NewMemberDynamoRepository(ddb DynamoAPI) *MemberDynamoRepository {
	return &MemberDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEMBERS_TABLE", defaultMembersTableName),
	}
}

func (r *MemberDynamoRepository) Create(ctx context.Context, m entities.Member) (entities.Member, error) {
	av, err := attributevalue.MarshalMap(memberItem{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	})
	if err != nil {
		return entities.Member{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Member{}, err
	}
	return m, nil
}

func (r *MemberDynamoRepository) GetByID(ctx context.Context, id string) (entities.Member, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Member{}, err
	}
	return unmarshalMember(raw)
}

func (r *MemberDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Member, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, membersEmailIndex, "email", email, 1)
	if err != nil || len(items) == 0 {
		return entities.Member{}, err
	}
	return unmarshalMember(items[0])
}

func unmarshalMember(raw map[string]types.AttributeValue) (entities.Member, error) {
	var it memberItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Member{}, err
	}
	return entities.Member{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}
