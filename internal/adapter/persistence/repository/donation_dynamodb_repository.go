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
	defaultDonationsTableName = "donations"
	paymentReferenceIndex     = "payment_reference-index"
)

type donationItem struct {
	ID               string `dynamodbav:"id"`
	DonorName        string `dynamodbav:"donor_name"`
	DonorEmail       string `dynamodbav:"donor_email"`
	DonorPhone       string `dynamodbav:"donor_phone,omitempty"`
	PAN              string `dynamodbav:"pan,omitempty"`
	Address          string `dynamodbav:"address,omitempty"`
	Amount           int64  `dynamodbav:"amount"`
	Currency         string `dynamodbav:"currency"`
	Status           string `dynamodbav:"status"`
	GatewayOrderID   string `dynamodbav:"gateway_order_id"`
	GatewayPaymentID string `dynamodbav:"gateway_payment_id,omitempty"`
	PaymentReference string `dynamodbav:"payment_reference"`
	Notes            string `dynamodbav:"notes,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// DonationDynamoRepository persists Donation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: payment_reference-index (PK: payment_reference)

type DonationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDonationRepository = (*DonationDynamoRepository)(nil)

func NewDonationDynamoRepository(ddb DynamoAPI) *DonationDynamoRepository {
	return &DonationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DONATIONS_TABLE", defaultDonationsTableName),
	}
}

func (r *DonationDynamoRepository) Create(ctx context.Context, d entities.Donation) (entities.Donation, error) {
	av, err := attributevalue.MarshalMap(toDonationItem(d))
	if err != nil {
		return entities.Donation{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Donation{}, err
	}
	return d, nil
}

func (r *DonationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Donation, error) {
	raw, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(raw) == 0 {
		return entities.Donation{}, err
	}
	return unmarshalDonation(raw)
}

func (r *DonationDynamoRepository) GetByPaymentReference(ctx context.Context, reference string) (entities.Donation, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, paymentReferenceIndex, "payment_reference", reference, 1)
	if err != nil || len(items) == 0 {
		return entities.Donation{}, err
	}
	return unmarshalDonation(items[0])
}

func (r *DonationDynamoRepository) List(ctx context.Context) ([]entities.Donation, error) {
	raws, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Donation, 0, len(raws))
	for _, raw := range raws {
		d, err := unmarshalDonation(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *DonationDynamoRepository) TransitionStatus(ctx context.Context, id string, from, to entities.PaymentStatus, gatewayPaymentID string) (entities.Donation, error) {
	expr, values, names := statusTransitionUpdate(from, to, gatewayPaymentID)
	raw, err := conditionalUpdate(ctx, r.ddb, r.tableName, id, "#status = :from", expr, values, names)
	if err != nil || len(raw) == 0 {
		return entities.Donation{}, err
	}
	return unmarshalDonation(raw)
}

// statusTransitionUpdate builds the update shared by donations and membership payments.
func statusTransitionUpdate(from, to entities.PaymentStatus, gatewayPaymentID string) (string, map[string]types.AttributeValue, map[string]string) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if gatewayPaymentID != "" {
		expr += ", #gateway_payment_id = :gateway_payment_id"
		values[":gateway_payment_id"] = &types.AttributeValueMemberS{Value: gatewayPaymentID}
		names["#gateway_payment_id"] = "gateway_payment_id"
	}
	return expr, values, names
}

func unmarshalDonation(raw map[string]types.AttributeValue) (entities.Donation, error) {
	var it donationItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Donation{}, err
	}
	return fromDonationItem(it), nil
}

func toDonationItem(d entities.Donation) donationItem {
	return donationItem{
		ID:               d.ID,
		DonorName:        d.DonorName,
		DonorEmail:       d.DonorEmail,
		DonorPhone:       d.DonorPhone,
		PAN:              d.PAN,
		Address:          d.Address,
		Amount:           d.Amount,
		Currency:         d.Currency,
		Status:           string(d.Status),
		GatewayOrderID:   d.GatewayOrderID,
		GatewayPaymentID: d.GatewayPaymentID,
		PaymentReference: d.PaymentReference,
		Notes:            d.Notes,
		CreatedAt:        formatTime(d.CreatedAt),
		UpdatedAt:        formatTime(d.UpdatedAt),
	}
}

func fromDonationItem(it donationItem) entities.Donation {
	return entities.Donation{
		ID:               it.ID,
		DonorName:        it.DonorName,
		DonorEmail:       it.DonorEmail,
		DonorPhone:       it.DonorPhone,
		PAN:              it.PAN,
		Address:          it.Address,
		Amount:           it.Amount,
		Currency:         it.Currency,
		Status:           entities.PaymentStatus(it.Status),
		GatewayOrderID:   it.GatewayOrderID,
		GatewayPaymentID: it.GatewayPaymentID,
		PaymentReference: it.PaymentReference,
		Notes:            it.Notes,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
