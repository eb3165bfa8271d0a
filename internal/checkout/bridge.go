package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrCheckoutNotReady = errors.New("Payment system is loading, please wait")
	ErrCheckoutFailed   = errors.New("checkout failed")
)

type Prefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// Options configure one checkout modal. Amount is in paise.
type Options struct {
	Key            string            `json:"key"`
	OrderID        string            `json:"order_id,omitempty"`
	SubscriptionID string            `json:"subscription_id,omitempty"`
	Amount         int64             `json:"amount,omitempty"`
	Currency       string            `json:"currency,omitempty"`
	Name           string            `json:"name,omitempty"`
	Description    string            `json:"description,omitempty"`
	Prefill        Prefill           `json:"prefill"`
	Notes          map[string]string `json:"notes,omitempty"`
}

// Confirmation carries the signed fields the provider hands back on success.
type Confirmation struct {
	PaymentID      string
	OrderID        string
	SubscriptionID string
	Signature      string
}

// Modal shows the provider checkout and reports back through exactly one callback.
type Modal interface {
	Show(opts Options, onSuccess func(Confirmation), onError func(message string)) error
}

type ModalFunc func(opts Options, onSuccess func(Confirmation), onError func(message string)) error

func (f ModalFunc) Show(opts Options, onSuccess func(Confirmation), onError func(message string)) error {
	return f(opts, onSuccess, onError)
}

// Result is either a Confirmation or an error.
type Result struct {
	Confirmation Confirmation
	Err          error
}

func (r Result) OK() bool {
	return r.Err == nil
}

type Bridge struct {
	source ScriptSource
	modal  Modal
}

func NewBridge(source ScriptSource, modal Modal) *Bridge {
	return &Bridge{source: source, modal: modal}
}

func (b *Bridge) Ready() bool {
	return b.source != nil && b.source.Ready()
}

// Open blocks until the modal reports back or ctx ends.
func (b *Bridge) Open(ctx context.Context, opts Options) Result {
	if !b.Ready() {
		return Result{Err: ErrCheckoutNotReady}
	}

	done := make(chan Result, 1)
	var once sync.Once
	finish := func(r Result) {
		once.Do(func() { done <- r })
	}

	err := b.modal.Show(opts,
		func(c Confirmation) { finish(Result{Confirmation: c}) },
		func(message string) { finish(Result{Err: fmt.Errorf("%w: %s", ErrCheckoutFailed, message)}) },
	)
	if err != nil {
		return Result{Err: err}
	}

	select {
	case r := <-done:
		return r
	case <-ctx.Done():
		return Result{Err: ctx.Err()}
	}
}
