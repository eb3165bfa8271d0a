package payments

import (
	"fmt"
	"log"
	"os"
	"strings"

	"ngo_portal/internal/usecase/interfaces"
)

const (
	ProviderRazorpay    = "razorpay"
	ProviderMercadoPago = "mercadopago"
)

// NewPaymentGatewayFromEnv picks the provider from PAYMENT_PROVIDER (default razorpay).
func NewPaymentGatewayFromEnv() (interfaces.IPaymentGateway, error) {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_PROVIDER")))
	if provider == "" {
		provider = ProviderRazorpay
	}
	log.Printf("[payment][gateway] provider=%s", provider)

	switch provider {
	case ProviderRazorpay:
		g, err := NewRazorpayGatewayFromEnv()
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderMercadoPago:
		g, err := NewMercadoPagoGatewayFromEnv()
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown PAYMENT_PROVIDER %q", provider)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
