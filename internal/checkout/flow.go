package checkout

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type State string

const (
	StateIdle             State = "idle"
	StateProcessing       State = "processing"
	StateAwaitingCheckout State = "awaiting-checkout"
	StateVerifying        State = "verifying"
	StateSuccess          State = "success"
	StateFailed           State = "failed"
	StateCheckoutError    State = "checkout-error"
)

const (
	TypeDonation     = "donation"
	TypeLifetime     = "lifetime"
	TypeSubscription = "subscription"

	SuccessTitle = "Thank You!"
	FailureTitle = "Payment Failed"
)

var validate = validator.New()

// Form is the donor or member details entered before paying.
type Form struct {
	Type    string `validate:"omitempty,oneof=donation lifetime subscription"`
	PlanID  string
	Name    string `validate:"required,max=120"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"omitempty,numeric,len=10"`
	PAN     string `validate:"omitempty,alphanum,len=10"`
	Address string
	Notes   string
}

var fieldMessages = map[string]string{
	"Type.oneof":      "Please choose a payment type",
	"Name.required":   "Name is required",
	"Name.max":        "Name is too long",
	"Email.required":  "Email is required",
	"Email.email":     "Please enter a valid email",
	"Phone.numeric":   "Please enter a valid 10-digit phone number",
	"Phone.len":       "Please enter a valid 10-digit phone number",
	"PAN.alphanum":    "Please enter a valid PAN",
	"PAN.len":         "Please enter a valid PAN",
	"PlanID.required": "Please select a plan",
}

// Presentation is what the page shows for the current attempt.
type Presentation struct {
	State        State
	Title        string
	Message      string
	Reference    string
	Notification string
	FieldErrors  map[string]string
	Processing   bool
}

func (p Presentation) FormEditable() bool {
	return !p.Processing && p.State != StateSuccess
}

// Opener is the checkout side of a Flow; *Bridge implements it.
type Opener interface {
	Ready() bool
	Open(ctx context.Context, opts Options) Result
}

type FlowOption func(*Flow)

func WithOrganization(name string) FlowOption {
	return func(f *Flow) { f.organization = name }
}

// Flow drives one payment attempt: validate, create order, checkout, verify.
// Nothing is retried; the user resubmits to start over.
type Flow struct {
	amount       *AmountSelector
	backend      Backend
	checkout     Opener
	organization string

	mu    sync.RWMutex
	state Presentation
}

func NewFlow(amount *AmountSelector, backend Backend, checkout Opener, opts ...FlowOption) *Flow {
	f := &Flow{
		amount:   amount,
		backend:  backend,
		checkout: checkout,
		state:    Presentation{State: StateIdle},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) Amount() *AmountSelector {
	return f.amount
}

func (f *Flow) Presentation() Presentation {
	f.mu.RLock()
	defer f.mu.RUnlock()
	p := f.state
	if p.FieldErrors != nil {
		errs := make(map[string]string, len(p.FieldErrors))
		for k, v := range p.FieldErrors {
			errs[k] = v
		}
		p.FieldErrors = errs
	}
	return p
}

func (f *Flow) set(p Presentation) Presentation {
	f.mu.Lock()
	f.state = p
	f.mu.Unlock()
	return f.Presentation()
}

func (f *Flow) Submit(ctx context.Context, form Form) Presentation {
	form = normalizeForm(form)

	amount, fieldErrors := f.validateForm(form)
	if len(fieldErrors) > 0 {
		return f.set(Presentation{State: StateIdle, FieldErrors: fieldErrors})
	}
	if f.checkout == nil || !f.checkout.Ready() {
		return f.set(Presentation{State: StateIdle, Notification: ErrCheckoutNotReady.Error()})
	}

	f.set(Presentation{State: StateProcessing, Processing: true})
	log.Printf("[checkout][flow] create-order start type=%s amount=%d plan_id=%q", form.Type, amount, form.PlanID)

	order, err := f.backend.CreateOrder(ctx, OrderRequest{
		Type:    form.Type,
		Amount:  amount,
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		PAN:     form.PAN,
		Address: form.Address,
		Notes:   form.Notes,
		PlanID:  form.PlanID,
	})
	if err != nil {
		log.Printf("[checkout][flow] create-order failed type=%s err=%v", form.Type, err)
		return f.set(Presentation{State: StateIdle, Notification: err.Error()})
	}

	f.set(Presentation{State: StateAwaitingCheckout, Processing: true, Reference: order.PaymentReference})

	res := f.checkout.Open(ctx, Options{
		Key:            order.KeyID,
		OrderID:        order.OrderID,
		SubscriptionID: order.SubscriptionID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		Name:           f.organization,
		Description:    describe(order.Type),
		Prefill:        Prefill{Name: form.Name, Email: form.Email, Contact: form.Phone},
		Notes:          map[string]string{"payment_reference": order.PaymentReference, "type": order.Type},
	})
	if !res.OK() {
		log.Printf("[checkout][flow] checkout error reference=%s err=%v", order.PaymentReference, res.Err)
		return f.set(Presentation{State: StateCheckoutError, Notification: checkoutMessage(res.Err)})
	}

	f.set(Presentation{State: StateVerifying, Processing: true, Reference: order.PaymentReference})

	err = f.backend.Verify(ctx, VerifyRequest{
		Type:             order.Type,
		PaymentReference: order.PaymentReference,
		OrderID:          firstNonEmpty(res.Confirmation.OrderID, order.OrderID),
		SubscriptionID:   firstNonEmpty(res.Confirmation.SubscriptionID, order.SubscriptionID),
		PaymentID:        res.Confirmation.PaymentID,
		Signature:        res.Confirmation.Signature,
	})
	if err != nil {
		log.Printf("[checkout][flow] verification failed reference=%s err=%v", order.PaymentReference, err)
		return f.set(Presentation{
			State:        StateFailed,
			Title:        FailureTitle,
			Message:      err.Error(),
			Reference:    order.PaymentReference,
			Notification: err.Error(),
		})
	}

	log.Printf("[checkout][flow] payment verified reference=%s", order.PaymentReference)
	return f.set(Presentation{
		State:     StateSuccess,
		Title:     SuccessTitle,
		Message:   successMessage(order.Type),
		Reference: order.PaymentReference,
	})
}

// CancelSubscription stops renewals; access continues until the paid period ends.
func (f *Flow) CancelSubscription(ctx context.Context, subscriptionID string) Presentation {
	if strings.TrimSpace(subscriptionID) == "" {
		return f.set(Presentation{State: StateIdle, Notification: "Subscription not found"})
	}
	if err := f.backend.CancelSubscription(ctx, subscriptionID); err != nil {
		log.Printf("[checkout][flow] cancel failed subscription_id=%s err=%v", subscriptionID, err)
		return f.set(Presentation{State: StateIdle, Notification: err.Error()})
	}
	return f.set(Presentation{
		State:        StateIdle,
		Notification: "Subscription cancelled. Your membership stays active until the end of the current billing period.",
	})
}

func (f *Flow) validateForm(form Form) (int64, map[string]string) {
	errs := map[string]string{}

	if err := validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if _, seen := errs[fe.Field()]; seen {
					continue
				}
				msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
				if !ok {
					msg = "Invalid value"
				}
				errs[fe.Field()] = msg
			}
		}
	}

	var amount int64
	if form.Type == TypeDonation {
		a, err := f.amount.Amount()
		var fe *FieldError
		if errors.As(err, &fe) {
			errs["Amount"] = fe.Message
		}
		amount = a
	} else if form.PlanID == "" {
		errs["PlanID"] = fieldMessages["PlanID.required"]
	}

	if len(errs) == 0 {
		return amount, nil
	}
	return 0, errs
}

func normalizeForm(form Form) Form {
	form.Type = strings.ToLower(strings.TrimSpace(form.Type))
	if form.Type == "" {
		form.Type = TypeDonation
	}
	form.PlanID = strings.TrimSpace(form.PlanID)
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	form.PAN = strings.ToUpper(strings.TrimSpace(form.PAN))
	form.Address = strings.TrimSpace(form.Address)
	form.Notes = strings.TrimSpace(form.Notes)
	return form
}

func checkoutMessage(err error) string {
	return strings.TrimPrefix(err.Error(), ErrCheckoutFailed.Error()+": ")
}

func describe(paymentType string) string {
	if paymentType == TypeDonation || paymentType == "" {
		return "Donation"
	}
	return "Membership"
}

func successMessage(paymentType string) string {
	switch paymentType {
	case TypeLifetime:
		return "Welcome! Your lifetime membership is now active."
	case TypeSubscription:
		return "Welcome! Your membership subscription is now active."
	}
	return "Your donation has been received. A confirmation email is on its way."
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
