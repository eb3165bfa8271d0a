package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"
	mock_interfaces "ngo_portal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestVerificationUseCase(m orderMocks, sender interfaces.IConfirmationSender) *VerificationUseCase {
	uc := NewVerificationUseCase(m.donations, m.stores(), m.gateway, sender)
	uc.now = fixedNow
	uc.detach = func(f func()) { f() }
	return uc
}

func pendingDonation() entities.Donation {
	return entities.Donation{
		ID:               "don-1",
		DonorName:        "Asha",
		DonorEmail:       "asha@test.com",
		Amount:           50000,
		Currency:         "INR",
		Status:           entities.PaymentStatusPending,
		GatewayOrderID:   "order_1",
		PaymentReference: "DON-20260118-ABC123",
	}
}

func donationVerifyInput() VerifyInput {
	return VerifyInput{
		Type:      entities.PaymentTypeDonation,
		Reference: "DON-20260118-ABC123",
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "sig",
	}
}

func TestVerificationUseCase_Verify_Validations(t *testing.T) {
	t.Run("missing signature", func(t *testing.T) {
		uc := NewVerificationUseCase(nil, MembershipStores{}, nil, nil)
		in := donationVerifyInput()
		in.Signature = " "
		_, err := uc.Verify(context.Background(), in)
		if !errors.Is(err, ErrInvalidVerification) {
			t.Fatalf("expected ErrInvalidVerification, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewVerificationUseCase(nil, MembershipStores{}, nil, nil)
		_, err := uc.Verify(context.Background(), donationVerifyInput())
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("subscription without subscription id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		_, err := uc.Verify(context.Background(), VerifyInput{Type: entities.PaymentTypeSubscription, Reference: "SUB-1", PaymentID: "pay_1", Signature: "sig"})
		if !errors.Is(err, ErrInvalidVerification) {
			t.Fatalf("expected ErrInvalidVerification, got %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		in := donationVerifyInput()
		in.Type = "gift"
		_, err := uc.Verify(context.Background(), in)
		if !errors.Is(err, ErrInvalidPaymentType) {
			t.Fatalf("expected ErrInvalidPaymentType, got %v", err)
		}
	})
}

func TestVerificationUseCase_Verify_Donation(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		m.donations.EXPECT().GetByPaymentReference(gomock.Any(), "DON-20260118-ABC123").Return(entities.Donation{}, nil)

		_, err := uc.Verify(context.Background(), donationVerifyInput())
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("order mismatch changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pendingDonation(), nil)

		in := donationVerifyInput()
		in.OrderID = "order_other"
		_, err := uc.Verify(context.Background(), in)
		if !errors.Is(err, ErrPaymentMismatch) {
			t.Fatalf("expected ErrPaymentMismatch, got %v", err)
		}
	})

	t.Run("gateway unreachable leaves pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pendingDonation(), nil)
		m.gateway.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))

		_, err := uc.Verify(context.Background(), donationVerifyInput())
		if err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})

	t.Run("invalid signature marks failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pendingDonation(), nil)
		m.gateway.EXPECT().VerifyPayment(gomock.Any(), interfaces.PaymentConfirmation{
			Reference: "DON-20260118-ABC123",
			OrderID:   "order_1",
			PaymentID: "pay_1",
			Signature: "sig",
		}).Return(false, nil)
		m.donations.EXPECT().TransitionStatus(gomock.Any(), "don-1", entities.PaymentStatusPending, entities.PaymentStatusFailed, "pay_1").Return(entities.Donation{ID: "don-1", Status: entities.PaymentStatusFailed}, nil)

		_, err := uc.Verify(context.Background(), donationVerifyInput())
		if !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("expected ErrSignatureMismatch, got %v", err)
		}
	})

	t.Run("success sends confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		sender := mock_interfaces.NewMockIConfirmationSender(ctrl)
		uc := newTestVerificationUseCase(m, sender)

		settled := pendingDonation()
		settled.Status = entities.PaymentStatusSuccess
		settled.GatewayPaymentID = "pay_1"

		m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pendingDonation(), nil)
		m.gateway.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(true, nil)
		m.donations.EXPECT().TransitionStatus(gomock.Any(), "don-1", entities.PaymentStatusPending, entities.PaymentStatusSuccess, "pay_1").Return(settled, nil)
		sender.EXPECT().SendPaymentConfirmation(gomock.Any(), interfaces.PaymentConfirmationEmail{
			To:        "asha@test.com",
			Name:      "Asha",
			Type:      "donation",
			Reference: "DON-20260118-ABC123",
			Amount:    "500.00",
			Currency:  "INR",
		}).Return(nil)

		res, err := uc.Verify(context.Background(), donationVerifyInput())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status != "success" || res.PaymentReference != "DON-20260118-ABC123" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("email failure does not affect the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		sender := mock_interfaces.NewMockIConfirmationSender(ctrl)
		uc := newTestVerificationUseCase(m, sender)

		settled := pendingDonation()
		settled.Status = entities.PaymentStatusSuccess

		m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pendingDonation(), nil)
		m.gateway.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(true, nil)
		m.donations.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(settled, nil)
		sender.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		if _, err := uc.Verify(context.Background(), donationVerifyInput()); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("replay returns the settled record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		settled := pendingDonation()
		settled.Status = entities.PaymentStatusSuccess
		settled.GatewayPaymentID = "pay_1"
		m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(settled, nil)

		res, err := uc.Verify(context.Background(), donationVerifyInput())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status != "success" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("failed record is final", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		failed := pendingDonation()
		failed.Status = entities.PaymentStatusFailed
		m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(failed, nil)

		_, err := uc.Verify(context.Background(), donationVerifyInput())
		if !errors.Is(err, ErrPaymentAlreadyFinalized) {
			t.Fatalf("expected ErrPaymentAlreadyFinalized, got %v", err)
		}
	})

	t.Run("lost race re-reads the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		settled := pendingDonation()
		settled.Status = entities.PaymentStatusSuccess
		settled.GatewayPaymentID = "pay_1"

		gomock.InOrder(
			m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pendingDonation(), nil),
			m.gateway.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(true, nil),
			m.donations.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Donation{}, nil),
			m.donations.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(settled, nil),
		)

		res, err := uc.Verify(context.Background(), donationVerifyInput())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status != "success" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestVerificationUseCase_Verify_Lifetime(t *testing.T) {
	pending := entities.MembershipPayment{
		ID:               "mp-1",
		MemberID:         "mem-1",
		PlanID:           "plan-life",
		Amount:           1000000,
		Currency:         "INR",
		Status:           entities.PaymentStatusPending,
		GatewayOrderID:   "order_9",
		PaymentReference: "MEM-20260118-ABC123",
	}
	in := VerifyInput{Type: entities.PaymentTypeLifetime, Reference: "MEM-20260118-ABC123", OrderID: "order_9", PaymentID: "pay_9", Signature: "sig"}

	t.Run("success emails the member", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		sender := mock_interfaces.NewMockIConfirmationSender(ctrl)
		uc := newTestVerificationUseCase(m, sender)

		settled := pending
		settled.Status = entities.PaymentStatusSuccess

		m.payments.EXPECT().GetByPaymentReference(gomock.Any(), "MEM-20260118-ABC123").Return(pending, nil)
		m.gateway.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(true, nil)
		m.payments.EXPECT().TransitionStatus(gomock.Any(), "mp-1", entities.PaymentStatusPending, entities.PaymentStatusSuccess, "pay_9").Return(settled, nil)
		m.members.EXPECT().GetByID(gomock.Any(), "mem-1").Return(entities.Member{ID: "mem-1", Name: "Ravi", Email: "ravi@test.com"}, nil)
		sender.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.AssignableToTypeOf(interfaces.PaymentConfirmationEmail{})).DoAndReturn(
			func(_ context.Context, e interfaces.PaymentConfirmationEmail) error {
				if e.To != "ravi@test.com" || e.Type != "lifetime" || e.Amount != "10000.00" {
					t.Fatalf("unexpected email: %+v", e)
				}
				return nil
			},
		)

		res, err := uc.Verify(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Type != entities.PaymentTypeLifetime || res.Status != "success" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("invalid signature marks failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		m.payments.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pending, nil)
		m.gateway.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).Return(false, nil)
		m.payments.EXPECT().TransitionStatus(gomock.Any(), "mp-1", entities.PaymentStatusPending, entities.PaymentStatusFailed, "pay_9").Return(entities.MembershipPayment{ID: "mp-1"}, nil)

		_, err := uc.Verify(context.Background(), in)
		if !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("expected ErrSignatureMismatch, got %v", err)
		}
	})
}

func TestVerificationUseCase_Verify_Subscription(t *testing.T) {
	pending := entities.Subscription{
		ID:                    "s-1",
		MemberID:              "mem-1",
		PlanID:                "plan-m",
		Status:                entities.SubscriptionStatusPending,
		GatewaySubscriptionID: "sub_1",
		PaymentReference:      "SUB-20260118-ABC123",
	}
	plan := entities.MembershipPlan{ID: "plan-m", Type: entities.PlanTypeMonthly, Price: 50000, GatewayPlanID: "plan_rzp", Active: true}
	in := VerifyInput{Type: entities.PaymentTypeSubscription, Reference: "SUB-20260118-ABC123", SubscriptionID: "sub_1", PaymentID: "pay_1", Signature: "sig"}

	t.Run("subscription mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		m.subscriptions.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pending, nil)

		other := in
		other.SubscriptionID = "sub_2"
		_, err := uc.Verify(context.Background(), other)
		if !errors.Is(err, ErrPaymentMismatch) {
			t.Fatalf("expected ErrPaymentMismatch, got %v", err)
		}
	})

	t.Run("invalid signature stays pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		m.subscriptions.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pending, nil)
		m.gateway.EXPECT().VerifySubscriptionPayment(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := uc.Verify(context.Background(), in)
		if !errors.Is(err, ErrSignatureMismatch) {
			t.Fatalf("expected ErrSignatureMismatch, got %v", err)
		}
	})

	t.Run("activates for one billing period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		now := fixedNow()
		end := now.AddDate(0, 1, 0)
		active := pending
		active.Status = entities.SubscriptionStatusActive
		active.StartDate = &now
		active.EndDate = &end

		m.subscriptions.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(pending, nil)
		m.gateway.EXPECT().VerifySubscriptionPayment(gomock.Any(), interfaces.PaymentConfirmation{
			Reference:      "SUB-20260118-ABC123",
			SubscriptionID: "sub_1",
			PaymentID:      "pay_1",
			Signature:      "sig",
		}).Return(true, nil)
		m.plans.EXPECT().GetByID(gomock.Any(), "plan-m").Return(plan, nil)
		m.subscriptions.EXPECT().Activate(gomock.Any(), "s-1", now, end).Return(active, nil)

		res, err := uc.Verify(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status != "active" || res.Type != entities.PaymentTypeSubscription {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("already active is a replay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		active := pending
		active.Status = entities.SubscriptionStatusActive
		m.subscriptions.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(active, nil)

		res, err := uc.Verify(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Status != "active" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("cancelled is final", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newOrderMocks(ctrl)
		uc := newTestVerificationUseCase(m, nil)

		cancelled := pending
		cancelled.Status = entities.SubscriptionStatusCancelled
		m.subscriptions.EXPECT().GetByPaymentReference(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := uc.Verify(context.Background(), in)
		if !errors.Is(err, ErrPaymentAlreadyFinalized) {
			t.Fatalf("expected ErrPaymentAlreadyFinalized, got %v", err)
		}
	})
}

func TestVerificationUseCase_DetachedEmailUsesOwnContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sender := mock_interfaces.NewMockIConfirmationSender(ctrl)
	uc := NewVerificationUseCase(nil, MembershipStores{}, nil, sender)

	done := make(chan struct{})
	sender.EXPECT().SendPaymentConfirmation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ interfaces.PaymentConfirmationEmail) error {
			defer close(done)
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("expected a deadline on the detached context")
			}
			return nil
		},
	)

	uc.sendConfirmationDetached(interfaces.PaymentConfirmationEmail{To: "asha@test.com", Reference: "DON-1"})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("detached email was not sent")
	}
}
