package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	order     Order
	orderErr  error
	verifyErr error
	cancelErr error

	orders   []OrderRequest
	verifies []VerifyRequest
	cancels  []string
}

func (f *fakeBackend) CreateOrder(_ context.Context, req OrderRequest) (Order, error) {
	f.orders = append(f.orders, req)
	return f.order, f.orderErr
}

func (f *fakeBackend) Verify(_ context.Context, req VerifyRequest) error {
	f.verifies = append(f.verifies, req)
	return f.verifyErr
}

func (f *fakeBackend) CancelSubscription(_ context.Context, id string) error {
	f.cancels = append(f.cancels, id)
	return f.cancelErr
}

type fakeOpener struct {
	notReady bool
	result   Result
	opened   []Options
}

func (f *fakeOpener) Ready() bool { return !f.notReady }

func (f *fakeOpener) Open(_ context.Context, opts Options) Result {
	f.opened = append(f.opened, opts)
	return f.result
}

func validForm() Form {
	return Form{Type: TypeDonation, Name: "Asha Rao", Email: "asha@example.org", Phone: "9876543210"}
}

func TestFlow_SuccessfulDonation(t *testing.T) {
	backend := &fakeBackend{order: Order{
		Type:             TypeDonation,
		OrderID:          "o1",
		Amount:           50000,
		Currency:         "INR",
		KeyID:            "rzp_test_abc",
		PaymentReference: "REF001",
	}}
	opener := &fakeOpener{result: Result{Confirmation: Confirmation{PaymentID: "pay_1", OrderID: "o1", Signature: "sig"}}}

	selector := NewAmountSelector()
	require.True(t, selector.SelectPreset(500))
	flow := NewFlow(selector, backend, opener, WithOrganization("Hope Foundation"))

	p := flow.Submit(context.Background(), validForm())

	assert.Equal(t, StateSuccess, p.State)
	assert.Equal(t, "Thank You!", p.Title)
	assert.Equal(t, "REF001", p.Reference)
	assert.False(t, p.Processing)

	require.Len(t, backend.orders, 1)
	assert.Equal(t, int64(500), backend.orders[0].Amount)
	assert.Equal(t, TypeDonation, backend.orders[0].Type)

	require.Len(t, opener.opened, 1)
	assert.Equal(t, "rzp_test_abc", opener.opened[0].Key)
	assert.Equal(t, "o1", opener.opened[0].OrderID)
	assert.Equal(t, int64(50000), opener.opened[0].Amount)
	assert.Equal(t, "Hope Foundation", opener.opened[0].Name)
	assert.Equal(t, "asha@example.org", opener.opened[0].Prefill.Email)
	assert.Equal(t, map[string]string{"payment_reference": "REF001", "type": TypeDonation}, opener.opened[0].Notes)

	require.Len(t, backend.verifies, 1)
	assert.Equal(t, VerifyRequest{
		Type:             TypeDonation,
		PaymentReference: "REF001",
		OrderID:          "o1",
		PaymentID:        "pay_1",
		Signature:        "sig",
	}, backend.verifies[0])
}

func TestFlow_AmountValidationBlocksSubmit(t *testing.T) {
	backend := &fakeBackend{}
	opener := &fakeOpener{}
	selector := NewAmountSelector()
	selector.SetCustom("50")
	flow := NewFlow(selector, backend, opener)

	p := flow.Submit(context.Background(), validForm())

	assert.Equal(t, StateIdle, p.State)
	assert.Equal(t, "Minimum donation is ₹100", p.FieldErrors["Amount"])
	assert.Empty(t, backend.orders)
	assert.Empty(t, opener.opened)
	assert.True(t, p.FormEditable())

	selector.SetCustom("600000")
	p = flow.Submit(context.Background(), validForm())
	assert.Equal(t, "Maximum donation is ₹500000", p.FieldErrors["Amount"])
	assert.Empty(t, backend.orders)
}

func TestFlow_DonorValidation(t *testing.T) {
	backend := &fakeBackend{}
	selector := NewAmountSelector()
	selector.SelectPreset(1000)
	flow := NewFlow(selector, backend, &fakeOpener{})

	p := flow.Submit(context.Background(), Form{Type: TypeDonation, Email: "not-an-email", Phone: "123"})

	assert.Equal(t, "Name is required", p.FieldErrors["Name"])
	assert.Equal(t, "Please enter a valid email", p.FieldErrors["Email"])
	assert.Equal(t, "Please enter a valid 10-digit phone number", p.FieldErrors["Phone"])
	assert.Empty(t, backend.orders)
}

func TestFlow_MembershipNeedsPlan(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewFlow(NewAmountSelector(), backend, &fakeOpener{})

	p := flow.Submit(context.Background(), Form{Type: TypeLifetime, Name: "Asha", Email: "asha@example.org"})

	assert.Equal(t, "Please select a plan", p.FieldErrors["PlanID"])
	assert.Empty(t, backend.orders)
}

func TestFlow_ScriptNotLoaded(t *testing.T) {
	backend := &fakeBackend{}
	selector := NewAmountSelector()
	selector.SelectPreset(500)
	flow := NewFlow(selector, backend, &fakeOpener{notReady: true})

	p := flow.Submit(context.Background(), validForm())

	assert.Equal(t, StateIdle, p.State)
	assert.Equal(t, "Payment system is loading, please wait", p.Notification)
	assert.Empty(t, backend.orders)
}

func TestFlow_OrderCreationFails(t *testing.T) {
	backend := &fakeBackend{orderErr: errors.New("Failed to create order")}
	opener := &fakeOpener{}
	selector := NewAmountSelector()
	selector.SelectPreset(500)
	flow := NewFlow(selector, backend, opener)

	p := flow.Submit(context.Background(), validForm())

	assert.False(t, p.Processing)
	assert.Equal(t, StateIdle, p.State)
	assert.Equal(t, "Failed to create order", p.Notification)
	assert.True(t, p.FormEditable())
	assert.Empty(t, opener.opened)
	assert.Empty(t, backend.verifies)
}

func TestFlow_CheckoutError(t *testing.T) {
	backend := &fakeBackend{order: Order{Type: TypeDonation, OrderID: "o1", PaymentReference: "REF002"}}
	opener := &fakeOpener{result: Result{Err: fmt.Errorf("%w: %s", ErrCheckoutFailed, "Payment cancelled")}}
	selector := NewAmountSelector()
	selector.SelectPreset(500)
	flow := NewFlow(selector, backend, opener)

	p := flow.Submit(context.Background(), validForm())

	assert.Equal(t, StateCheckoutError, p.State)
	assert.Equal(t, "Payment cancelled", p.Notification)
	assert.NotEqual(t, SuccessTitle, p.Title)
	assert.Empty(t, backend.verifies)
}

func TestFlow_VerificationFails(t *testing.T) {
	backend := &fakeBackend{
		order:     Order{Type: TypeDonation, OrderID: "o1", PaymentReference: "REF003"},
		verifyErr: errors.New("Payment verification failed"),
	}
	opener := &fakeOpener{result: Result{Confirmation: Confirmation{PaymentID: "pay_1", OrderID: "o1", Signature: "bad"}}}
	selector := NewAmountSelector()
	selector.SelectPreset(500)
	flow := NewFlow(selector, backend, opener)

	p := flow.Submit(context.Background(), validForm())

	assert.Equal(t, StateFailed, p.State)
	assert.NotEqual(t, SuccessTitle, p.Title)
	assert.Equal(t, "Payment verification failed", p.Message)
	assert.Equal(t, "REF003", p.Reference)
	assert.False(t, p.Processing)
}

func TestFlow_Subscription(t *testing.T) {
	backend := &fakeBackend{order: Order{
		Type:             TypeSubscription,
		SubscriptionID:   "sub_1",
		KeyID:            "rzp_test_abc",
		PaymentReference: "SUB-20260118-ABCDEF",
	}}
	opener := &fakeOpener{result: Result{Confirmation: Confirmation{PaymentID: "pay_1", SubscriptionID: "sub_1", Signature: "sig"}}}
	flow := NewFlow(NewAmountSelector(), backend, opener)

	p := flow.Submit(context.Background(), Form{Type: TypeSubscription, PlanID: "plan-monthly", Name: "Asha", Email: "asha@example.org"})

	require.Equal(t, StateSuccess, p.State)
	assert.Equal(t, "Welcome! Your membership subscription is now active.", p.Message)
	assert.Equal(t, int64(0), backend.orders[0].Amount)
	assert.Equal(t, "plan-monthly", backend.orders[0].PlanID)
	assert.Equal(t, "sub_1", opener.opened[0].SubscriptionID)
	assert.Equal(t, "Membership", opener.opened[0].Description)
	assert.Equal(t, "sub_1", backend.verifies[0].SubscriptionID)
}

func TestFlow_CancelSubscription(t *testing.T) {
	backend := &fakeBackend{}
	flow := NewFlow(NewAmountSelector(), backend, &fakeOpener{})

	p := flow.CancelSubscription(context.Background(), "sub-1")
	assert.Contains(t, p.Notification, "Subscription cancelled")
	assert.Equal(t, []string{"sub-1"}, backend.cancels)

	backend.cancelErr = errors.New("Only active subscriptions can be cancelled")
	p = flow.CancelSubscription(context.Background(), "sub-1")
	assert.Equal(t, "Only active subscriptions can be cancelled", p.Notification)

	p = flow.CancelSubscription(context.Background(), " ")
	assert.Equal(t, "Subscription not found", p.Notification)
	assert.Len(t, backend.cancels, 2)
}
