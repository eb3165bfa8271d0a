package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionModal(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		m := NewSessionModal(staticSource{}, "/v1/checkout/sessions")
		_, err := m.Open(Options{}, func(Confirmation) {}, func(string) {})
		assert.ErrorIs(t, err, ErrCheckoutNotReady)
	})

	t.Run("render and complete once", func(t *testing.T) {
		m := NewSessionModal(readySource(), "/v1/checkout/sessions/")

		var got []Confirmation
		id, err := m.Open(Options{
			Key:     "rzp_test_abc",
			OrderID: "order_1",
			Amount:  50000,
			Name:    "Hope Foundation",
			Prefill: Prefill{Name: "Asha <script>", Email: "asha@example.org"},
		}, func(c Confirmation) { got = append(got, c) }, func(string) { t.Fatalf("unexpected error callback") })
		require.NoError(t, err)
		require.NotEmpty(t, id)

		page, err := m.Render(id)
		require.NoError(t, err)
		html := string(page)
		assert.Contains(t, html, "window.Razorpay = function () {};")
		assert.Contains(t, html, `"order_id":"order_1"`)
		assert.Contains(t, html, id)
		assert.Contains(t, html, "complete")
		assert.Contains(t, html, "<title>Hope Foundation</title>")
		assert.NotContains(t, html, "Asha <script>")

		require.NoError(t, m.Complete(id, Confirmation{PaymentID: "pay_1", OrderID: "order_1", Signature: "sig"}))
		assert.ErrorIs(t, m.Complete(id, Confirmation{PaymentID: "pay_2"}), ErrSessionNotFound)
		assert.ErrorIs(t, m.Fail(id, "late"), ErrSessionNotFound)
		_, err = m.Render(id)
		assert.ErrorIs(t, err, ErrSessionNotFound)

		require.Len(t, got, 1)
		assert.Equal(t, "pay_1", got[0].PaymentID)
	})

	t.Run("fail", func(t *testing.T) {
		m := NewSessionModal(readySource(), "/checkout")
		var msg string
		id, err := m.Open(Options{}, func(Confirmation) {}, func(m string) { msg = m })
		require.NoError(t, err)

		require.NoError(t, m.Fail(id, ""))
		assert.Equal(t, "Payment failed", msg)
	})

	t.Run("expired sessions are failed", func(t *testing.T) {
		m := NewSessionModal(readySource(), "/checkout")
		now := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return now }

		var msg string
		old, err := m.Open(Options{}, func(Confirmation) {}, func(m string) { msg = m })
		require.NoError(t, err)

		now = now.Add(defaultSessionTTL + time.Minute)
		_, err = m.Open(Options{}, func(Confirmation) {}, func(string) {})
		require.NoError(t, err)

		assert.Equal(t, sessionExpiredMessage, msg)
		assert.ErrorIs(t, m.Complete(old, Confirmation{}), ErrSessionNotFound)
	})

	t.Run("expired session cannot be rendered or completed", func(t *testing.T) {
		m := NewSessionModal(readySource(), "/checkout")
		now := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return now }

		var msgs []string
		id, err := m.Open(Options{OrderID: "order_1"}, func(Confirmation) { t.Fatalf("unexpected success callback") }, func(m string) { msgs = append(msgs, m) })
		require.NoError(t, err)

		now = now.Add(defaultSessionTTL + time.Second)
		_, err = m.Render(id)
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.ErrorIs(t, m.Complete(id, Confirmation{PaymentID: "pay_1"}), ErrSessionNotFound)
		assert.ErrorIs(t, m.Fail(id, "late"), ErrSessionNotFound)

		assert.Equal(t, []string{sessionExpiredMessage}, msgs)
	})

	t.Run("complete just before expiry succeeds", func(t *testing.T) {
		m := NewSessionModal(readySource(), "/checkout")
		now := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)
		m.now = func() time.Time { return now }

		var got int
		id, err := m.Open(Options{}, func(Confirmation) { got++ }, func(string) { t.Fatalf("unexpected error callback") })
		require.NoError(t, err)

		now = now.Add(defaultSessionTTL - time.Second)
		require.NoError(t, m.Complete(id, Confirmation{PaymentID: "pay_1"}))
		assert.Equal(t, 1, got)
	})
}
