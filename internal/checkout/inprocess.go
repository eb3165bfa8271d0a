package checkout

import (
	"context"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase"
)

// UseCaseBackend serves a Flow from the use cases of this process, without HTTP.
type UseCaseBackend struct {
	orders        usecase.IOrderUseCase
	verifier      usecase.IVerificationUseCase
	subscriptions usecase.ISubscriptionUseCase
}

var _ Backend = (*UseCaseBackend)(nil)

func NewUseCaseBackend(orders usecase.IOrderUseCase, verifier usecase.IVerificationUseCase, subscriptions usecase.ISubscriptionUseCase) *UseCaseBackend {
	return &UseCaseBackend{orders: orders, verifier: verifier, subscriptions: subscriptions}
}

func (b *UseCaseBackend) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	res, err := b.orders.CreateOrder(ctx, usecase.OrderInput{
		Type:    entities.PaymentType(req.Type),
		Amount:  req.Amount,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		PAN:     req.PAN,
		Address: req.Address,
		Notes:   req.Notes,
		PlanID:  req.PlanID,
	})
	if err != nil {
		return Order{}, err
	}
	return Order{
		Type:             string(res.Type),
		OrderID:          res.OrderID,
		SubscriptionID:   res.SubscriptionID,
		Amount:           res.Amount,
		Currency:         res.Currency,
		KeyID:            res.KeyID,
		PaymentReference: res.PaymentReference,
	}, nil
}

func (b *UseCaseBackend) Verify(ctx context.Context, req VerifyRequest) error {
	_, err := b.verifier.Verify(ctx, usecase.VerifyInput{
		Type:           entities.PaymentType(req.Type),
		Reference:      req.PaymentReference,
		OrderID:        req.OrderID,
		SubscriptionID: req.SubscriptionID,
		PaymentID:      req.PaymentID,
		Signature:      req.Signature,
	})
	return err
}

func (b *UseCaseBackend) CancelSubscription(ctx context.Context, subscriptionID string) error {
	_, err := b.subscriptions.Cancel(ctx, subscriptionID)
	return err
}
