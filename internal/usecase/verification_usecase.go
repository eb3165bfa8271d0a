package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidVerification     = errors.New("invalid verification request")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentMismatch         = errors.New("payment does not match the referenced order")
	ErrSignatureMismatch       = errors.New("payment signature verification failed")
	ErrPaymentAlreadyFinalized = errors.New("payment already finalized")
)

const confirmationEmailTimeout = 15 * time.Second

// VerifyInput carries the signed checkout response plus the payment type tag.
type VerifyInput struct {
	Type           entities.PaymentType
	Reference      string
	OrderID        string
	SubscriptionID string
	PaymentID      string
	Signature      string
}

// VerifyResult reports the settled state of the payment.
type VerifyResult struct {
	Type             entities.PaymentType
	PaymentReference string
	Status           string
}

// IVerificationUseCase settles a checkout completion.
//
// Outcome rules:
//   - authentic signature      => donation/payment success, subscription active
//   - forged/invalid signature => donation/payment failed (subscription stays pending)
//   - provider/storage errors  => nothing changes, the record stays pending for reconciliation

type IVerificationUseCase interface {
	Verify(ctx context.Context, in VerifyInput) (VerifyResult, error)
}

type VerificationUseCase struct {
	donations   interfaces.IDonationRepository
	memberships MembershipStores
	gateway     interfaces.IPaymentGateway
	sender      interfaces.IConfirmationSender
	now         func() time.Time
	detach      func(func())
}

var _ IVerificationUseCase = (*VerificationUseCase)(nil)

func NewVerificationUseCase(donations interfaces.IDonationRepository, memberships MembershipStores, gateway interfaces.IPaymentGateway, sender interfaces.IConfirmationSender) *VerificationUseCase {
	return &VerificationUseCase{
		donations:   donations,
		memberships: memberships,
		gateway:     gateway,
		sender:      sender,
		now:         func() time.Time { return time.Now().UTC() },
		detach:      func(f func()) { go f() },
	}
}

func (u *VerificationUseCase) Verify(ctx context.Context, in VerifyInput) (VerifyResult, error) {
	in = normalizeVerifyInput(in)
	log.Printf("[payment][verify] start type=%s reference=%s order_id=%s subscription_id=%s payment_id=%s", in.Type, in.Reference, in.OrderID, in.SubscriptionID, in.PaymentID)
	if in.Reference == "" || in.PaymentID == "" || in.Signature == "" {
		return VerifyResult{}, ErrInvalidVerification
	}
	if u.gateway == nil {
		return VerifyResult{}, ErrPaymentGatewayNotConfigured
	}

	switch in.Type {
	case entities.PaymentTypeDonation:
		if in.OrderID == "" {
			return VerifyResult{}, ErrInvalidVerification
		}
		return u.verifyDonation(ctx, in)
	case entities.PaymentTypeLifetime:
		if in.OrderID == "" {
			return VerifyResult{}, ErrInvalidVerification
		}
		return u.verifyMembershipPayment(ctx, in)
	case entities.PaymentTypeSubscription:
		if in.SubscriptionID == "" {
			return VerifyResult{}, ErrInvalidVerification
		}
		return u.verifySubscription(ctx, in)
	}
	return VerifyResult{}, ErrInvalidPaymentType
}

// oneTimePayment is the common view of Donation and MembershipPayment during settlement.
type oneTimePayment struct {
	ID        string
	OrderID   string
	PaymentID string
	Status    entities.PaymentStatus
}

type transitionFunc func(ctx context.Context, from, to entities.PaymentStatus, paymentID string) (oneTimePayment, error)

// settleOneTime moves a pending one-time payment to success or failed, once.
func (u *VerificationUseCase) settleOneTime(ctx context.Context, in VerifyInput, current oneTimePayment, transition transitionFunc, reload func(ctx context.Context) (oneTimePayment, error)) (oneTimePayment, error) {
	if current.ID == "" {
		return oneTimePayment{}, ErrPaymentNotFound
	}
	if current.OrderID != in.OrderID {
		log.Printf("[payment][verify] order mismatch reference=%s stored_order_id=%s got=%s", in.Reference, current.OrderID, in.OrderID)
		return oneTimePayment{}, ErrPaymentMismatch
	}
	if current.Status != entities.PaymentStatusPending {
		return replayOneTime(current, in)
	}

	ok, err := u.gateway.VerifyPayment(ctx, interfaces.PaymentConfirmation{
		Reference: in.Reference,
		OrderID:   in.OrderID,
		PaymentID: in.PaymentID,
		Signature: in.Signature,
	})
	if err != nil {
		log.Printf("[payment][verify] gateway verification unavailable reference=%s err=%v", in.Reference, err)
		return oneTimePayment{}, err
	}
	if !ok {
		log.Printf("[payment][verify] signature mismatch reference=%s", in.Reference)
		if _, err := transition(ctx, entities.PaymentStatusPending, entities.PaymentStatusFailed, in.PaymentID); err != nil {
			log.Printf("[payment][verify] failed marking payment failed reference=%s err=%v", in.Reference, err)
		}
		return oneTimePayment{}, ErrSignatureMismatch
	}

	updated, err := transition(ctx, entities.PaymentStatusPending, entities.PaymentStatusSuccess, in.PaymentID)
	if err != nil {
		return oneTimePayment{}, err
	}
	if updated.ID == "" {
		// Lost a race with a concurrent verification or webhook; decide on the stored state.
		latest, err := reload(ctx)
		if err != nil {
			return oneTimePayment{}, err
		}
		return replayOneTime(latest, in)
	}
	return updated, nil
}

func replayOneTime(current oneTimePayment, in VerifyInput) (oneTimePayment, error) {
	if current.Status == entities.PaymentStatusSuccess && current.PaymentID == in.PaymentID {
		return current, nil
	}
	return oneTimePayment{}, ErrPaymentAlreadyFinalized
}

func (u *VerificationUseCase) verifyDonation(ctx context.Context, in VerifyInput) (VerifyResult, error) {
	d, err := u.donations.GetByPaymentReference(ctx, in.Reference)
	if err != nil {
		return VerifyResult{}, err
	}

	transition := func(ctx context.Context, from, to entities.PaymentStatus, paymentID string) (oneTimePayment, error) {
		updated, err := u.donations.TransitionStatus(ctx, d.ID, from, to, paymentID)
		if err != nil {
			return oneTimePayment{}, err
		}
		if updated.ID != "" {
			d = updated
		}
		return donationView(updated), nil
	}
	reload := func(ctx context.Context) (oneTimePayment, error) {
		latest, err := u.donations.GetByPaymentReference(ctx, in.Reference)
		return donationView(latest), err
	}

	settled, err := u.settleOneTime(ctx, in, donationView(d), transition, reload)
	if err != nil {
		return VerifyResult{}, err
	}
	log.Printf("[payment][verify] success type=donation reference=%s payment_id=%s", in.Reference, in.PaymentID)

	u.sendConfirmationDetached(interfaces.PaymentConfirmationEmail{
		To:        d.DonorEmail,
		Name:      d.DonorName,
		Type:      string(entities.PaymentTypeDonation),
		Reference: d.PaymentReference,
		Amount:    entities.FormatMinor(d.Amount),
		Currency:  d.Currency,
	})
	return VerifyResult{Type: entities.PaymentTypeDonation, PaymentReference: in.Reference, Status: string(settled.Status)}, nil
}

func (u *VerificationUseCase) verifyMembershipPayment(ctx context.Context, in VerifyInput) (VerifyResult, error) {
	p, err := u.memberships.Payments.GetByPaymentReference(ctx, in.Reference)
	if err != nil {
		return VerifyResult{}, err
	}

	transition := func(ctx context.Context, from, to entities.PaymentStatus, paymentID string) (oneTimePayment, error) {
		updated, err := u.memberships.Payments.TransitionStatus(ctx, p.ID, from, to, paymentID)
		if err != nil {
			return oneTimePayment{}, err
		}
		return membershipPaymentView(updated), nil
	}
	reload := func(ctx context.Context) (oneTimePayment, error) {
		latest, err := u.memberships.Payments.GetByPaymentReference(ctx, in.Reference)
		return membershipPaymentView(latest), err
	}

	settled, err := u.settleOneTime(ctx, in, membershipPaymentView(p), transition, reload)
	if err != nil {
		return VerifyResult{}, err
	}
	log.Printf("[payment][verify] success type=lifetime reference=%s payment_id=%s", in.Reference, in.PaymentID)

	u.notifyMember(ctx, p.MemberID, interfaces.PaymentConfirmationEmail{
		Type:      string(entities.PaymentTypeLifetime),
		Reference: p.PaymentReference,
		Amount:    entities.FormatMinor(p.Amount),
		Currency:  p.Currency,
	})
	return VerifyResult{Type: entities.PaymentTypeLifetime, PaymentReference: in.Reference, Status: string(settled.Status)}, nil
}

func (u *VerificationUseCase) verifySubscription(ctx context.Context, in VerifyInput) (VerifyResult, error) {
	s, err := u.memberships.Subscriptions.GetByPaymentReference(ctx, in.Reference)
	if err != nil {
		return VerifyResult{}, err
	}
	if s.ID == "" {
		return VerifyResult{}, ErrPaymentNotFound
	}
	if s.GatewaySubscriptionID != in.SubscriptionID {
		log.Printf("[payment][verify] subscription mismatch reference=%s stored=%s got=%s", in.Reference, s.GatewaySubscriptionID, in.SubscriptionID)
		return VerifyResult{}, ErrPaymentMismatch
	}
	if s.Status == entities.SubscriptionStatusActive {
		return subscriptionResult(s), nil
	}
	if s.Status != entities.SubscriptionStatusPending {
		return VerifyResult{}, ErrPaymentAlreadyFinalized
	}

	ok, err := u.gateway.VerifySubscriptionPayment(ctx, interfaces.PaymentConfirmation{
		Reference:      in.Reference,
		SubscriptionID: in.SubscriptionID,
		PaymentID:      in.PaymentID,
		Signature:      in.Signature,
	})
	if err != nil {
		log.Printf("[payment][verify] gateway verification unavailable reference=%s err=%v", in.Reference, err)
		return VerifyResult{}, err
	}
	if !ok {
		log.Printf("[payment][verify] subscription signature mismatch reference=%s", in.Reference)
		return VerifyResult{}, ErrSignatureMismatch
	}

	plan, err := u.memberships.Plans.GetByID(ctx, s.PlanID)
	if err != nil {
		return VerifyResult{}, err
	}
	if plan.ID == "" {
		return VerifyResult{}, ErrPlanNotFound
	}

	now := u.now()
	activated, err := u.memberships.Subscriptions.Activate(ctx, s.ID, now, plan.BillingPeriodEnd(now))
	if err != nil {
		return VerifyResult{}, err
	}
	if activated.ID == "" {
		latest, err := u.memberships.Subscriptions.GetByID(ctx, s.ID)
		if err != nil {
			return VerifyResult{}, err
		}
		if latest.Status != entities.SubscriptionStatusActive {
			return VerifyResult{}, ErrPaymentAlreadyFinalized
		}
		activated = latest
	}
	log.Printf("[payment][verify] success type=subscription reference=%s subscription_id=%s", in.Reference, in.SubscriptionID)

	u.notifyMember(ctx, s.MemberID, interfaces.PaymentConfirmationEmail{
		Type:      string(entities.PaymentTypeSubscription),
		Reference: s.PaymentReference,
		Amount:    entities.FormatMinor(plan.Price),
		Currency:  planCurrency(plan),
	})
	return subscriptionResult(activated), nil
}

func (u *VerificationUseCase) notifyMember(ctx context.Context, memberID string, email interfaces.PaymentConfirmationEmail) {
	if u.sender == nil || u.memberships.Members == nil {
		return
	}
	m, err := u.memberships.Members.GetByID(ctx, memberID)
	if err != nil || m.ID == "" {
		log.Printf("[payment][verify] WARN member lookup for confirmation email failed member_id=%s err=%v", memberID, err)
		return
	}
	email.To = m.Email
	email.Name = m.Name
	u.sendConfirmationDetached(email)
}

// sendConfirmationDetached runs the email send outside the request; failures are only logged.
func (u *VerificationUseCase) sendConfirmationDetached(email interfaces.PaymentConfirmationEmail) {
	if u.sender == nil || email.To == "" {
		return
	}
	sender := u.sender
	u.detach(func() {
		ctx, cancel := context.WithTimeout(context.Background(), confirmationEmailTimeout)
		defer cancel()
		if err := sender.SendPaymentConfirmation(ctx, email); err != nil {
			log.Printf("[payment][verify] WARN confirmation email failed reference=%s err=%v", email.Reference, err)
		}
	})
}

func donationView(d entities.Donation) oneTimePayment {
	return oneTimePayment{ID: d.ID, OrderID: d.GatewayOrderID, PaymentID: d.GatewayPaymentID, Status: d.Status}
}

func membershipPaymentView(p entities.MembershipPayment) oneTimePayment {
	return oneTimePayment{ID: p.ID, OrderID: p.GatewayOrderID, PaymentID: p.GatewayPaymentID, Status: p.Status}
}

func subscriptionResult(s entities.Subscription) VerifyResult {
	return VerifyResult{Type: entities.PaymentTypeSubscription, PaymentReference: s.PaymentReference, Status: string(s.Status)}
}

func normalizeVerifyInput(in VerifyInput) VerifyInput {
	in.Type = entities.PaymentType(strings.ToLower(strings.TrimSpace(string(in.Type))))
	in.Reference = strings.TrimSpace(in.Reference)
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.SubscriptionID = strings.TrimSpace(in.SubscriptionID)
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.Signature = strings.TrimSpace(in.Signature)
	return in
}
