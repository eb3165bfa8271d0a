package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ngo_portal/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo records requests and replays canned responses.
type fakeDynamo struct {
	puts    []*dynamodb.PutItemInput
	gets    []*dynamodb.GetItemInput
	updates []*dynamodb.UpdateItemInput
	queries []*dynamodb.QueryInput
	scans   []*dynamodb.ScanInput

	putErr    error
	getItem   map[string]types.AttributeValue
	updateOut map[string]types.AttributeValue
	updateErr error
	queryOut  []*dynamodb.QueryOutput
	scanOut   []*dynamodb.ScanOutput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.gets = append(f.gets, in)
	return &dynamodb.GetItemOutput{Item: f.getItem}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{Attributes: f.updateOut}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	cp := *in
	f.queries = append(f.queries, &cp)
	if len(f.queryOut) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queryOut[0]
	f.queryOut = f.queryOut[1:]
	return out, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	cp := *in
	f.scans = append(f.scans, &cp)
	if len(f.scanOut) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	out := f.scanOut[0]
	f.scanOut = f.scanOut[1:]
	return out, nil
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestDonationDynamoRepository(t *testing.T) {
	created := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)
	d := entities.Donation{
		ID:               "don-1",
		DonorName:        "Asha",
		DonorEmail:       "asha@test.com",
		Amount:           50000,
		Currency:         "INR",
		Status:           entities.PaymentStatusPending,
		GatewayOrderID:   "order_1",
		PaymentReference: "DON-20260118-ABC123",
		CreatedAt:        created,
		UpdatedAt:        created,
	}

	t.Run("create is conditional on a new id", func(t *testing.T) {
		t.Setenv("DONATIONS_TABLE", "test_donations")
		f := &fakeDynamo{}
		r := NewDonationDynamoRepository(f)

		if _, err := r.Create(context.Background(), d); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(f.puts) != 1 {
			t.Fatalf("expected one put, got %d", len(f.puts))
		}
		in := f.puts[0]
		if aws.ToString(in.TableName) != "test_donations" || aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
			t.Fatalf("unexpected put: %+v", in)
		}
		if n, ok := in.Item["amount"].(*types.AttributeValueMemberN); !ok || n.Value != "50000" {
			t.Fatalf("expected numeric amount, got %#v", in.Item["amount"])
		}
		if _, ok := in.Item["gateway_payment_id"]; ok {
			t.Fatalf("empty gateway_payment_id must be omitted")
		}
	})

	t.Run("create error", func(t *testing.T) {
		f := &fakeDynamo{putErr: errors.New("boom")}
		r := NewDonationDynamoRepository(f)
		if _, err := r.Create(context.Background(), d); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("get by payment reference queries the index", func(t *testing.T) {
		f := &fakeDynamo{queryOut: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{mustMarshal(t, toDonationItem(d))}}}}
		r := NewDonationDynamoRepository(f)

		got, err := r.GetByPaymentReference(context.Background(), "DON-20260118-ABC123")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != "don-1" || got.Amount != 50000 || !got.CreatedAt.Equal(created) {
			t.Fatalf("unexpected donation: %+v", got)
		}
		q := f.queries[0]
		if aws.ToString(q.IndexName) != "payment_reference-index" || q.ExpressionAttributeNames["#k"] != "payment_reference" {
			t.Fatalf("unexpected query: %+v", q)
		}
	})

	t.Run("missing reference returns zero value", func(t *testing.T) {
		r := NewDonationDynamoRepository(&fakeDynamo{})
		got, err := r.GetByPaymentReference(context.Background(), "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero donation, got %+v err=%v", got, err)
		}
	})

	t.Run("list follows pagination", func(t *testing.T) {
		second := d
		second.ID = "don-2"
		f := &fakeDynamo{scanOut: []*dynamodb.ScanOutput{
			{Items: []map[string]types.AttributeValue{mustMarshal(t, toDonationItem(d))}, LastEvaluatedKey: idKey("don-1")},
			{Items: []map[string]types.AttributeValue{mustMarshal(t, toDonationItem(second))}},
		}}
		r := NewDonationDynamoRepository(f)

		items, err := r.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(items) != 2 || len(f.scans) != 2 || f.scans[1].ExclusiveStartKey == nil {
			t.Fatalf("expected two pages, got items=%d scans=%d", len(items), len(f.scans))
		}
	})

	t.Run("transition is conditional on the current status", func(t *testing.T) {
		settled := d
		settled.Status = entities.PaymentStatusSuccess
		settled.GatewayPaymentID = "pay_1"
		f := &fakeDynamo{updateOut: mustMarshal(t, toDonationItem(settled))}
		r := NewDonationDynamoRepository(f)

		got, err := r.TransitionStatus(context.Background(), "don-1", entities.PaymentStatusPending, entities.PaymentStatusSuccess, "pay_1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Status != entities.PaymentStatusSuccess || got.GatewayPaymentID != "pay_1" {
			t.Fatalf("unexpected donation: %+v", got)
		}
		in := f.updates[0]
		if aws.ToString(in.ConditionExpression) != "attribute_exists(#id) AND #status = :from" {
			t.Fatalf("unexpected condition: %s", aws.ToString(in.ConditionExpression))
		}
		if !strings.Contains(aws.ToString(in.UpdateExpression), "#gateway_payment_id = :gateway_payment_id") {
			t.Fatalf("unexpected update: %s", aws.ToString(in.UpdateExpression))
		}
		if v := in.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value; v != "pending" {
			t.Fatalf("unexpected :from %q", v)
		}
	})

	t.Run("failed condition returns zero value", func(t *testing.T) {
		f := &fakeDynamo{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("nope")}}
		r := NewDonationDynamoRepository(f)

		got, err := r.TransitionStatus(context.Background(), "don-1", entities.PaymentStatusPending, entities.PaymentStatusFailed, "")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero donation, got %+v err=%v", got, err)
		}
	})
}

func TestSubscriptionDynamoRepository(t *testing.T) {
	start := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	t.Run("activate sets the period", func(t *testing.T) {
		active := entities.Subscription{ID: "s-1", Status: entities.SubscriptionStatusActive, StartDate: &start, EndDate: &end, NextBillingDate: &end, GatewaySubscriptionID: "sub_1", PaymentReference: "SUB-1"}
		f := &fakeDynamo{updateOut: mustMarshal(t, toSubscriptionItem(active))}
		r := NewSubscriptionDynamoRepository(f)

		got, err := r.Activate(context.Background(), "s-1", start, end)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.EndDate == nil || !got.EndDate.Equal(end) || got.StartDate == nil || !got.StartDate.Equal(start) {
			t.Fatalf("unexpected subscription: %+v", got)
		}
		in := f.updates[0]
		if v := in.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value; v != "pending" {
			t.Fatalf("unexpected :from %q", v)
		}
		if in.ExpressionAttributeNames["#status"] != "status" || in.ExpressionAttributeNames["#id"] != "id" {
			t.Fatalf("unexpected names: %+v", in.ExpressionAttributeNames)
		}
	})

	t.Run("cancel keeps end date and removes next billing", func(t *testing.T) {
		f := &fakeDynamo{}
		r := NewSubscriptionDynamoRepository(f)

		got, err := r.MarkCancelled(context.Background(), "s-1", start)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero subscription without attributes, got %+v err=%v", got, err)
		}
		expr := aws.ToString(f.updates[0].UpdateExpression)
		if !strings.Contains(expr, "REMOVE #next_billing_date") || strings.Contains(expr, "#end_date") {
			t.Fatalf("unexpected update: %s", expr)
		}
		if v := f.updates[0].ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value; v != "active" {
			t.Fatalf("unexpected :from %q", v)
		}
	})

	t.Run("pending subscription round trips without dates", func(t *testing.T) {
		s := entities.Subscription{ID: "s-2", Status: entities.SubscriptionStatusPending, GatewaySubscriptionID: "sub_2", PaymentReference: "SUB-2", CreatedAt: start}
		av := mustMarshal(t, toSubscriptionItem(s))
		if _, ok := av["start_date"]; ok {
			t.Fatalf("empty start_date must be omitted")
		}
		got, err := unmarshalSubscription(av)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.StartDate != nil || got.EndDate != nil || !got.CreatedAt.Equal(start) {
			t.Fatalf("unexpected subscription: %+v", got)
		}
	})
}

func TestMembershipPlanDynamoRepository(t *testing.T) {
	f := &fakeDynamo{}
	r := NewMembershipPlanDynamoRepository(f)

	p := entities.MembershipPlan{ID: "m", Name: "Monthly", Type: entities.PlanTypeMonthly, Price: 50000, Currency: "INR", Features: []string{"Newsletter", "Events", "Annual report"}, Active: true}
	if _, err := r.Put(context.Background(), p); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if f.puts[0].ConditionExpression != nil {
		t.Fatalf("plan put must be unconditional")
	}

	f.getItem = f.puts[0].Item
	got, err := r.GetByID(context.Background(), "m")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Features) != 3 || got.Features[2] != "Annual report" || !got.Active {
		t.Fatalf("unexpected plan: %+v", got)
	}
}
