package payments

import (
	"testing"
)

func clearGatewayEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PAYMENT_PROVIDER", "PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK", "MERCADOPAGO_MOCK",
		"RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET", "RAZORPAY_WEBHOOK_SECRET",
		"MERCADOPAGO_ACCESS_TOKEN", "MERCADOPAGO_PUBLIC_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		clearGatewayEnv(t)
		t.Setenv("PAYMENT_GATEWAY_MOCK", v)
		if !isPaymentGatewayMockEnabled() {
			t.Fatalf("expected mock enabled for %q", v)
		}
	}

	clearGatewayEnv(t)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "0")
	if isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock disabled")
	}
}

func TestNewPaymentGatewayFromEnv(t *testing.T) {
	t.Run("defaults to razorpay", func(t *testing.T) {
		clearGatewayEnv(t)
		t.Setenv("RAZORPAY_KEY_ID", "rzp_test_abc")
		t.Setenv("RAZORPAY_KEY_SECRET", "secret")

		g, err := NewPaymentGatewayFromEnv()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, ok := g.(*RazorpayGateway); !ok {
			t.Fatalf("expected razorpay gateway, got %T", g)
		}
		if g.KeyID() != "rzp_test_abc" {
			t.Fatalf("unexpected key id: %s", g.KeyID())
		}
	})

	t.Run("razorpay missing credentials", func(t *testing.T) {
		clearGatewayEnv(t)
		if _, err := NewPaymentGatewayFromEnv(); err != ErrMissingRazorpayCredentials {
			t.Fatalf("expected ErrMissingRazorpayCredentials, got %v", err)
		}
	})

	t.Run("mercadopago", func(t *testing.T) {
		clearGatewayEnv(t)
		t.Setenv("PAYMENT_PROVIDER", "MercadoPago")
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		t.Setenv("MERCADOPAGO_PUBLIC_KEY", "APP_USR-pub")

		g, err := NewPaymentGatewayFromEnv()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if _, ok := g.(*MercadoPagoGateway); !ok {
			t.Fatalf("expected mercado pago gateway, got %T", g)
		}
		if g.KeyID() != "APP_USR-pub" {
			t.Fatalf("unexpected key id: %s", g.KeyID())
		}
	})

	t.Run("mercadopago missing token", func(t *testing.T) {
		clearGatewayEnv(t)
		t.Setenv("PAYMENT_PROVIDER", "mercadopago")
		if _, err := NewPaymentGatewayFromEnv(); err != ErrMissingMercadoPagoAccessToken {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		clearGatewayEnv(t)
		t.Setenv("PAYMENT_PROVIDER", "paypal")
		if _, err := NewPaymentGatewayFromEnv(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
