package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentType          = errors.New("invalid payment type")
	ErrAmountBelowMinimum          = errors.New("amount below minimum")
	ErrAmountAboveMaximum          = errors.New("amount above maximum")
	ErrInvalidDonor                = errors.New("invalid donor details")
	ErrPlanNotFound                = errors.New("membership plan not found")
	ErrPlanNotAvailable            = errors.New("membership plan not available for this payment type")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

const (
	defaultMinDonationRupees = 100
	defaultMaxDonationRupees = 500000

	monthlyTotalCount = 120
	yearlyTotalCount  = 10
)

// DonationLimits bounds a donation amount in whole rupees (inclusive).
type DonationLimits struct {
	Min int64
	Max int64
}

// DonationLimitsFromEnv reads DONATION_MIN_RUPEES / DONATION_MAX_RUPEES.
func DonationLimitsFromEnv() DonationLimits {
	return DonationLimits{
		Min: envInt64("DONATION_MIN_RUPEES", defaultMinDonationRupees),
		Max: envInt64("DONATION_MAX_RUPEES", defaultMaxDonationRupees),
	}
}

// MembershipStores groups the repositories of the membership flows.
type MembershipStores struct {
	Members       interfaces.IMemberRepository
	Plans         interfaces.IMembershipPlanRepository
	Subscriptions interfaces.ISubscriptionRepository
	Payments      interfaces.IMembershipPaymentRepository
}

// OrderInput is what the public donation / membership forms submit.
//
// Amount is in whole rupees and only used for donations; membership amounts
// always come from the stored plan.
type OrderInput struct {
	Type    entities.PaymentType
	Amount  int64
	Name    string
	Email   string
	Phone   string
	PAN     string
	Address string
	Notes   string
	PlanID  string
}

// OrderResult is everything the checkout needs to open the hosted payment modal.
type OrderResult struct {
	Type             entities.PaymentType
	OrderID          string
	SubscriptionID   string
	Amount           int64
	Currency         string
	KeyID            string
	PaymentReference string
}

// IOrderUseCase initiates donation, lifetime membership and subscription payments.
//
// Branching:
//   - donation and lifetime plans => gateway order (one-time)
//   - monthly / yearly plans      => gateway subscription (recurring)

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in OrderInput) (OrderResult, error)
}

type OrderUseCase struct {
	donations   interfaces.IDonationRepository
	memberships MembershipStores
	gateway     interfaces.IPaymentGateway
	limits      DonationLimits
	validate    *validator.Validate
	now         func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(donations interfaces.IDonationRepository, memberships MembershipStores, gateway interfaces.IPaymentGateway, limits DonationLimits) *OrderUseCase {
	return &OrderUseCase{
		donations:   donations,
		memberships: memberships,
		gateway:     gateway,
		limits:      limits,
		validate:    validator.New(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in OrderInput) (OrderResult, error) {
	log.Printf("[payment][usecase] create-order start type=%s amount=%d plan_id=%q", in.Type, in.Amount, in.PlanID)
	in = normalizeOrderInput(in)
	if !in.Type.Valid() {
		return OrderResult{}, ErrInvalidPaymentType
	}
	if err := u.validateDonor(in); err != nil {
		log.Printf("[payment][usecase] invalid donor details type=%s err=%v", in.Type, err)
		return OrderResult{}, err
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured type=%s", in.Type)
		return OrderResult{}, ErrPaymentGatewayNotConfigured
	}

	switch in.Type {
	case entities.PaymentTypeDonation:
		return u.createDonationOrder(ctx, in)
	case entities.PaymentTypeLifetime:
		return u.createLifetimeOrder(ctx, in)
	default:
		return u.createSubscription(ctx, in)
	}
}

func (u *OrderUseCase) createDonationOrder(ctx context.Context, in OrderInput) (OrderResult, error) {
	if in.Amount < u.limits.Min {
		return OrderResult{}, ErrAmountBelowMinimum
	}
	if u.limits.Max > 0 && in.Amount > u.limits.Max {
		return OrderResult{}, ErrAmountAboveMaximum
	}

	now := u.now()
	reference := newPaymentReference(referencePrefixDonation, now)
	amount := entities.RupeesToMinor(in.Amount)

	order, err := u.gateway.CreateOrder(ctx, interfaces.OrderRequest{
		Amount:   amount,
		Currency: entities.DefaultCurrency,
		Receipt:  reference,
		Notes: map[string]string{
			"payment_reference": reference,
			"type":              string(entities.PaymentTypeDonation),
			"donor_email":       in.Email,
		},
		Payer: interfaces.Payer{Name: in.Name, Email: in.Email, Phone: in.Phone},
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway create-order failed reference=%s err=%v", reference, err)
		return OrderResult{}, classifyGatewayError(err)
	}

	d := entities.Donation{
		ID:               uuid.NewString(),
		DonorName:        in.Name,
		DonorEmail:       in.Email,
		DonorPhone:       in.Phone,
		PAN:              in.PAN,
		Address:          in.Address,
		Amount:           amount,
		Currency:         entities.DefaultCurrency,
		Status:           entities.PaymentStatusPending,
		GatewayOrderID:   order.ID,
		PaymentReference: reference,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := u.donations.Create(ctx, d); err != nil {
		log.Printf("[payment][usecase] donation create failed reference=%s order_id=%s err=%v", reference, order.ID, err)
		return OrderResult{}, err
	}
	log.Printf("[payment][usecase] create-order success type=donation reference=%s order_id=%s", reference, order.ID)

	return OrderResult{
		Type:             entities.PaymentTypeDonation,
		OrderID:          order.ID,
		Amount:           orderAmount(order, amount),
		Currency:         orderCurrency(order),
		KeyID:            u.gateway.KeyID(),
		PaymentReference: reference,
	}, nil
}

func (u *OrderUseCase) createLifetimeOrder(ctx context.Context, in OrderInput) (OrderResult, error) {
	plan, err := u.loadPlan(ctx, in.PlanID)
	if err != nil {
		return OrderResult{}, err
	}
	if plan.Type != entities.PlanTypeLifetime {
		return OrderResult{}, ErrPlanNotAvailable
	}
	member, err := u.upsertMember(ctx, in)
	if err != nil {
		return OrderResult{}, err
	}

	now := u.now()
	reference := newPaymentReference(referencePrefixLifetime, now)
	currency := planCurrency(plan)

	order, err := u.gateway.CreateOrder(ctx, interfaces.OrderRequest{
		Amount:   plan.Price,
		Currency: currency,
		Receipt:  reference,
		Notes: map[string]string{
			"payment_reference": reference,
			"type":              string(entities.PaymentTypeLifetime),
			"member_id":         member.ID,
			"plan_id":           plan.ID,
		},
		Payer: interfaces.Payer{Name: member.Name, Email: member.Email, Phone: member.Phone},
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway create-order failed reference=%s err=%v", reference, err)
		return OrderResult{}, classifyGatewayError(err)
	}

	p := entities.MembershipPayment{
		ID:               uuid.NewString(),
		MemberID:         member.ID,
		PlanID:           plan.ID,
		Amount:           plan.Price,
		Currency:         currency,
		Status:           entities.PaymentStatusPending,
		GatewayOrderID:   order.ID,
		PaymentReference: reference,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := u.memberships.Payments.Create(ctx, p); err != nil {
		log.Printf("[payment][usecase] membership payment create failed reference=%s err=%v", reference, err)
		return OrderResult{}, err
	}
	log.Printf("[payment][usecase] create-order success type=lifetime reference=%s order_id=%s member_id=%s", reference, order.ID, member.ID)

	return OrderResult{
		Type:             entities.PaymentTypeLifetime,
		OrderID:          order.ID,
		Amount:           orderAmount(order, plan.Price),
		Currency:         orderCurrency(order),
		KeyID:            u.gateway.KeyID(),
		PaymentReference: reference,
	}, nil
}

func (u *OrderUseCase) createSubscription(ctx context.Context, in OrderInput) (OrderResult, error) {
	plan, err := u.loadPlan(ctx, in.PlanID)
	if err != nil {
		return OrderResult{}, err
	}
	if !plan.IsRecurring() || plan.GatewayPlanID == "" {
		return OrderResult{}, ErrPlanNotAvailable
	}
	member, err := u.upsertMember(ctx, in)
	if err != nil {
		return OrderResult{}, err
	}

	now := u.now()
	reference := newPaymentReference(referencePrefixSubscription, now)
	totalCount := monthlyTotalCount
	if plan.Type == entities.PlanTypeYearly {
		totalCount = yearlyTotalCount
	}

	gs, err := u.gateway.CreateSubscription(ctx, interfaces.SubscriptionRequest{
		GatewayPlanID: plan.GatewayPlanID,
		TotalCount:    totalCount,
		Notes: map[string]string{
			"payment_reference": reference,
			"type":              string(entities.PaymentTypeSubscription),
			"member_id":         member.ID,
			"plan_id":           plan.ID,
		},
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway create-subscription failed reference=%s err=%v", reference, err)
		return OrderResult{}, classifyGatewayError(err)
	}

	s := entities.Subscription{
		ID:                    uuid.NewString(),
		MemberID:              member.ID,
		PlanID:                plan.ID,
		Status:                entities.SubscriptionStatusPending,
		GatewaySubscriptionID: gs.ID,
		PaymentReference:      reference,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if _, err := u.memberships.Subscriptions.Create(ctx, s); err != nil {
		log.Printf("[payment][usecase] subscription create failed reference=%s err=%v", reference, err)
		return OrderResult{}, err
	}
	log.Printf("[payment][usecase] create-order success type=subscription reference=%s subscription_id=%s member_id=%s", reference, gs.ID, member.ID)

	return OrderResult{
		Type:             entities.PaymentTypeSubscription,
		SubscriptionID:   gs.ID,
		Amount:           plan.Price,
		Currency:         planCurrency(plan),
		KeyID:            u.gateway.KeyID(),
		PaymentReference: reference,
	}, nil
}

func (u *OrderUseCase) loadPlan(ctx context.Context, planID string) (entities.MembershipPlan, error) {
	if planID == "" {
		return entities.MembershipPlan{}, ErrPlanNotFound
	}
	plan, err := u.memberships.Plans.GetByID(ctx, planID)
	if err != nil {
		return entities.MembershipPlan{}, err
	}
	if plan.ID == "" {
		return entities.MembershipPlan{}, ErrPlanNotFound
	}
	if !plan.Active {
		return entities.MembershipPlan{}, ErrPlanNotAvailable
	}
	return plan, nil
}

func (u *OrderUseCase) upsertMember(ctx context.Context, in OrderInput) (entities.Member, error) {
	existing, err := u.memberships.Members.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.Member{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}
	now := u.now()
	return u.memberships.Members.Create(ctx, entities.Member{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *OrderUseCase) validateDonor(in OrderInput) error {
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDonor)
	}
	if err := u.validate.Var(in.Email, "required,email"); err != nil {
		return fmt.Errorf("%w: a valid email is required", ErrInvalidDonor)
	}
	if in.Phone != "" {
		if err := u.validate.Var(in.Phone, "numeric,min=10,max=13"); err != nil {
			return fmt.Errorf("%w: phone must be 10 to 13 digits", ErrInvalidDonor)
		}
	}
	return nil
}

func normalizeOrderInput(in OrderInput) OrderInput {
	in.Type = entities.PaymentType(strings.ToLower(strings.TrimSpace(string(in.Type))))
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimPrefix(strings.ReplaceAll(strings.TrimSpace(in.Phone), " ", ""), "+")
	in.PAN = strings.ToUpper(strings.TrimSpace(in.PAN))
	in.Address = strings.TrimSpace(in.Address)
	in.Notes = strings.TrimSpace(in.Notes)
	in.PlanID = strings.TrimSpace(in.PlanID)
	return in
}

const (
	referencePrefixDonation     = "DON"
	referencePrefixLifetime     = "MEM"
	referencePrefixSubscription = "SUB"
)

// newPaymentReference builds a human readable reference such as DON-20260118-3FA9C2.
func newPaymentReference(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s-%s", prefix, now.UTC().Format("20060102"), suffix)
}

func orderAmount(order interfaces.GatewayOrder, fallback int64) int64 {
	if order.Amount > 0 {
		return order.Amount
	}
	return fallback
}

func orderCurrency(order interfaces.GatewayOrder) string {
	if order.Currency != "" {
		return order.Currency
	}
	return entities.DefaultCurrency
}

func planCurrency(plan entities.MembershipPlan) string {
	if plan.Currency != "" {
		return plan.Currency
	}
	return entities.DefaultCurrency
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "authentication failed"), strings.Contains(msg, "unauthorized"), strings.Contains(msg, "\"status\":401"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, "bad_request"), strings.Contains(msg, "\"status\":400"), strings.Contains(msg, "not supported"):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}

func envInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
