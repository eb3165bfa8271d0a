package checkout

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("checkout session not found")

const (
	defaultSessionTTL     = 30 * time.Minute
	sessionExpiredMessage = "Checkout session expired"
)

var checkoutPage = template.Must(template.New("checkout").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<p id="status">Opening secure checkout...</p>
<script>{{.Script}}</script>
<script>
(function () {
  var status = document.getElementById("status");
  function post(url, fields) {
    var body = new URLSearchParams();
    for (var k in fields) { if (fields[k]) { body.append(k, fields[k]); } }
    return fetch(url, { method: "POST", body: body });
  }
  function fail(message) {
    status.textContent = message;
    post({{.FailURL}}, { error: message });
  }
  var options = {{.Options}};
  options.handler = function (resp) {
    status.textContent = "Verifying payment...";
    post({{.CompleteURL}}, resp).then(function () { status.textContent = "Payment received. You can close this window."; });
  };
  options.modal = { ondismiss: function () { fail("Payment cancelled"); } };
  var rzp = new Razorpay(options);
  rzp.on("payment.failed", function (resp) {
    fail((resp && resp.error && resp.error.description) || "Payment failed");
  });
  rzp.open();
})();
</script>
</body>
</html>
`))

type pageData struct {
	Title       string
	Script      template.JS
	Options     Options
	CompleteURL string
	FailURL     string
}

type session struct {
	opts      Options
	onSuccess func(Confirmation)
	onError   func(string)
	createdAt time.Time
}

// SessionModal is a Modal for server-hosted checkout pages. Each Show opens a
// session whose page runs the provider script; the page posts the outcome back
// to Complete or Fail, and the session is dropped after the first one.
type SessionModal struct {
	source   ScriptSource
	basePath string
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

var _ Modal = (*SessionModal)(nil)

func NewSessionModal(source ScriptSource, basePath string) *SessionModal {
	return &SessionModal{
		source:   source,
		basePath: strings.TrimRight(basePath, "/"),
		ttl:      defaultSessionTTL,
		now:      time.Now,
		sessions: map[string]*session{},
	}
}

func (m *SessionModal) Show(opts Options, onSuccess func(Confirmation), onError func(message string)) error {
	_, err := m.Open(opts, onSuccess, onError)
	return err
}

// Open registers a session and returns its id.
func (m *SessionModal) Open(opts Options, onSuccess func(Confirmation), onError func(message string)) (string, error) {
	if m.source == nil || !m.source.Ready() {
		return "", ErrCheckoutNotReady
	}
	id := uuid.NewString()

	m.mu.Lock()
	expired := m.pruneLocked()
	m.sessions[id] = &session{opts: opts, onSuccess: onSuccess, onError: onError, createdAt: m.now()}
	m.mu.Unlock()

	for _, s := range expired {
		s.onError(sessionExpiredMessage)
	}
	log.Printf("[checkout][session] opened session_id=%s order_id=%s subscription_id=%s", id, opts.OrderID, opts.SubscriptionID)
	return id, nil
}

func (m *SessionModal) Render(id string) ([]byte, error) {
	s, ok := m.lookup(id, false)
	if !ok {
		return nil, ErrSessionNotFound
	}

	title := s.opts.Name
	if title == "" {
		title = "Checkout"
	}
	var buf bytes.Buffer
	err := checkoutPage.Execute(&buf, pageData{
		Title:       title,
		Script:      template.JS(m.source.Script()),
		Options:     s.opts,
		CompleteURL: m.basePath + "/" + id + "/complete",
		FailURL:     m.basePath + "/" + id + "/fail",
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *SessionModal) Complete(id string, c Confirmation) error {
	s, ok := m.lookup(id, true)
	if !ok {
		return ErrSessionNotFound
	}
	log.Printf("[checkout][session] completed session_id=%s payment_id=%s", id, c.PaymentID)
	s.onSuccess(c)
	return nil
}

func (m *SessionModal) Fail(id string, message string) error {
	s, ok := m.lookup(id, true)
	if !ok {
		return ErrSessionNotFound
	}
	if strings.TrimSpace(message) == "" {
		message = "Payment failed"
	}
	log.Printf("[checkout][session] failed session_id=%s message=%q", id, message)
	s.onError(message)
	return nil
}

// lookup returns a live session, removing it when take is set. A session past
// its ttl is dropped and its flow is failed with the expiry message.
func (m *SessionModal) lookup(id string, take bool) (*session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	expired := ok && s.createdAt.Before(m.now().Add(-m.ttl))
	if ok && (take || expired) {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if expired {
		log.Printf("[checkout][session] expired session_id=%s", id)
		s.onError(sessionExpiredMessage)
		return nil, false
	}
	return s, ok
}

func (m *SessionModal) pruneLocked() []*session {
	var expired []*session
	cutoff := m.now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.createdAt.Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	return expired
}
