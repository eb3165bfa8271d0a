package checkout

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"
)

const defaultAttemptTimeout = 45 * time.Minute

// StartRequest opens a hosted checkout. Amount is whole rupees and only used for donations.
type StartRequest struct {
	Form   Form
	Amount string
}

type hostedAttempt struct {
	flow      *Flow
	startedAt time.Time
}

// Host runs payment flows whose checkout happens on a server-hosted session page.
type Host struct {
	source       ScriptSource
	modal        *SessionModal
	backend      Backend
	organization string
	limits       []AmountOption
	timeout      time.Duration

	mu       sync.Mutex
	attempts map[string]hostedAttempt
}

func NewHost(source ScriptSource, modal *SessionModal, backend Backend, organization string, limits ...AmountOption) *Host {
	return &Host{
		source:       source,
		modal:        modal,
		backend:      backend,
		organization: organization,
		limits:       limits,
		timeout:      defaultAttemptTimeout,
		attempts:     map[string]hostedAttempt{},
	}
}

// Start validates and creates the order, then returns the session id once the
// checkout page is ready. On an early failure the id is empty and the
// Presentation says why.
func (h *Host) Start(req StartRequest) (string, Presentation) {
	selector := NewAmountSelector(h.limits...)
	if n, err := strconv.ParseInt(req.Amount, 10, 64); err != nil || !selector.SelectPreset(n) {
		selector.SetCustom(req.Amount)
	}

	opened := make(chan string, 1)
	bridge := NewBridge(h.source, ModalFunc(func(opts Options, onSuccess func(Confirmation), onError func(string)) error {
		id, err := h.modal.Open(opts, onSuccess, onError)
		if err == nil {
			opened <- id
		}
		return err
	}))
	flow := NewFlow(selector, h.backend, bridge, WithOrganization(h.organization))

	done := make(chan Presentation, 1)
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	go func() {
		defer cancel()
		done <- flow.Submit(ctx, req.Form)
	}()

	select {
	case id := <-opened:
		h.mu.Lock()
		h.pruneLocked()
		h.attempts[id] = hostedAttempt{flow: flow, startedAt: time.Now()}
		h.mu.Unlock()
		log.Printf("[checkout][host] attempt started session_id=%s", id)
		return id, flow.Presentation()
	case p := <-done:
		return "", p
	}
}

func (h *Host) Status(sessionID string) (Presentation, bool) {
	h.mu.Lock()
	a, ok := h.attempts[sessionID]
	h.mu.Unlock()
	if !ok {
		return Presentation{}, false
	}
	return a.flow.Presentation(), true
}

func (h *Host) Page(sessionID string) ([]byte, error) {
	return h.modal.Render(sessionID)
}

func (h *Host) Complete(sessionID string, c Confirmation) error {
	return h.modal.Complete(sessionID, c)
}

func (h *Host) Fail(sessionID string, message string) error {
	return h.modal.Fail(sessionID, message)
}

func (h *Host) pruneLocked() {
	cutoff := time.Now().Add(-2 * h.timeout)
	for id, a := range h.attempts {
		if a.startedAt.Before(cutoff) {
			delete(h.attempts, id)
		}
	}
}
