package interfaces

import (
	"context"
	"ngo_portal/internal/domain/entities"
)

//go:generate mockgen -source=donation_repository_interface.go -destination=mocks/mock_donation_repository_interface.go -package=mock_interfaces

// IDonationRepository abstracts DynamoDB persistence for Donation.
//
// Lookups return a zero Donation (ID == "") when nothing matches.
// TransitionStatus only applies when the stored status equals `from`; otherwise it
// returns a zero Donation so callers can re-read and decide.

type IDonationRepository interface {
	Create(ctx context.Context, d entities.Donation) (entities.Donation, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	GetByPaymentReference(ctx context.Context, reference string) (entities.Donation, error)
	List(ctx context.Context) ([]entities.Donation, error)
	TransitionStatus(ctx context.Context, id string, from, to entities.PaymentStatus, gatewayPaymentID string) (entities.Donation, error)
}
