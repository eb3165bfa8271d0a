package entities

import "time"

// PaymentStatus represents the outcome of a one-time payment (donation or lifetime membership).
//
// A record is created pending and moves to success or failed exactly once, driven by the
// verification step. Refunds are applied manually by the admin console.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusSuccess  PaymentStatus = "success"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// PaymentType tags which flow an order belongs to.
type PaymentType string

const (
	PaymentTypeDonation     PaymentType = "donation"
	PaymentTypeLifetime     PaymentType = "lifetime"
	PaymentTypeSubscription PaymentType = "subscription"
)

func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeDonation, PaymentTypeLifetime, PaymentTypeSubscription:
		return true
	}
	return false
}

// Donation is a one-time donation persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_reference-index): payment_reference
//
// Amount is kept in minor units (paise).
type Donation struct {
	ID               string        `json:"id"`
	DonorName        string        `json:"donor_name"`
	DonorEmail       string        `json:"donor_email"`
	DonorPhone       string        `json:"donor_phone,omitempty"`
	PAN              string        `json:"pan,omitempty"`
	Address          string        `json:"address,omitempty"`
	Amount           int64         `json:"amount"`
	Currency         string        `json:"currency"`
	Status           PaymentStatus `json:"status"`
	GatewayOrderID   string        `json:"gateway_order_id"`
	GatewayPaymentID string        `json:"gateway_payment_id,omitempty"`
	PaymentReference string        `json:"payment_reference"`
	Notes            string        `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
