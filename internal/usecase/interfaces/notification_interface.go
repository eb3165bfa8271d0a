package interfaces

import "context"

//go:generate mockgen -source=notification_interface.go -destination=mocks/mock_notification_interface.go -package=mock_interfaces

// PaymentConfirmationEmail is the payload of the "thank you" email sent after a verified payment.
type PaymentConfirmationEmail struct {
	To        string
	Name      string
	Type      string
	Reference string
	Amount    string
	Currency  string
}

// IConfirmationSender delivers payment confirmation emails.
type IConfirmationSender interface {
	SendPaymentConfirmation(ctx context.Context, email PaymentConfirmationEmail) error
}

// IReportStore keeps exported reports in blob storage and returns their location.
type IReportStore interface {
	Put(ctx context.Context, key string, contentType string, body []byte) (string, error)
}
