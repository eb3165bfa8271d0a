package response

import (
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase"
)

type DonationResponse struct {
	ID               string    `json:"id"`
	DonorName        string    `json:"donor_name"`
	DonorEmail       string    `json:"donor_email"`
	DonorPhone       string    `json:"donor_phone,omitempty"`
	PAN              string    `json:"pan,omitempty"`
	Address          string    `json:"address,omitempty"`
	Amount           int64     `json:"amount"`
	AmountDisplay    string    `json:"amount_display"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	GatewayPaymentID string    `json:"gateway_payment_id,omitempty"`
	PaymentReference string    `json:"payment_reference"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromDonation(d entities.Donation) DonationResponse {
	return DonationResponse{
		ID:               d.ID,
		DonorName:        d.DonorName,
		DonorEmail:       d.DonorEmail,
		DonorPhone:       d.DonorPhone,
		PAN:              d.PAN,
		Address:          d.Address,
		Amount:           d.Amount,
		AmountDisplay:    entities.FormatMinor(d.Amount),
		Currency:         d.Currency,
		Status:           string(d.Status),
		GatewayOrderID:   d.GatewayOrderID,
		GatewayPaymentID: d.GatewayPaymentID,
		PaymentReference: d.PaymentReference,
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type DonationListResponse struct {
	Items []DonationResponse `json:"items"`
	Count int                `json:"count"`
	Total int64              `json:"total_amount"`
}

// FromDonations totals only successful donations.
func FromDonations(items []entities.Donation) DonationListResponse {
	out := DonationListResponse{Items: make([]DonationResponse, 0, len(items)), Count: len(items)}
	for _, d := range items {
		out.Items = append(out.Items, FromDonation(d))
		if d.Status == entities.PaymentStatusSuccess {
			out.Total += d.Amount
		}
	}
	return out
}

type DonationExportResponse struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	Rows     int    `json:"rows"`
}

func FromDonationExport(e usecase.DonationExport) DonationExportResponse {
	return DonationExportResponse{Key: e.Key, Location: e.Location, Rows: e.Rows}
}
