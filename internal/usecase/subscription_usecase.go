package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidSubscriptionID   = errors.New("invalid subscription_id")
	ErrInvalidMemberID         = errors.New("invalid member_id")
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrSubscriptionNotActive   = errors.New("only active subscriptions can be cancelled")
	ErrSubscriptionWithoutLink = errors.New("subscription has no gateway subscription")
)

// ISubscriptionUseCase exposes membership subscriptions to members.
//
// Cancellation is non-retroactive: the gateway stops billing at the end of the
// current cycle and the member keeps access until EndDate.

type ISubscriptionUseCase interface {
	Cancel(ctx context.Context, id string) (entities.Subscription, error)
	GetByID(ctx context.Context, id string) (entities.Subscription, error)
	ListByMember(ctx context.Context, memberID string) ([]entities.Subscription, error)
}

type SubscriptionUseCase struct {
	repo    interfaces.ISubscriptionRepository
	gateway interfaces.IPaymentGateway
	now     func() time.Time
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(repo interfaces.ISubscriptionRepository, gateway interfaces.IPaymentGateway) *SubscriptionUseCase {
	return &SubscriptionUseCase{repo: repo, gateway: gateway, now: func() time.Time { return time.Now().UTC() }}
}

func (u *SubscriptionUseCase) Cancel(ctx context.Context, id string) (entities.Subscription, error) {
	id = strings.TrimSpace(id)
	log.Printf("[subscription][usecase] cancel start subscription_id=%q", id)
	if id == "" {
		return entities.Subscription{}, ErrInvalidSubscriptionID
	}
	if u.gateway == nil {
		return entities.Subscription{}, ErrPaymentGatewayNotConfigured
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Subscription{}, err
	}
	if s.ID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	if status := s.EffectiveStatus(u.now()); status != entities.SubscriptionStatusActive {
		log.Printf("[subscription][usecase] cancel rejected subscription_id=%s status=%s", id, status)
		return entities.Subscription{}, ErrSubscriptionNotActive
	}
	if s.GatewaySubscriptionID == "" {
		return entities.Subscription{}, ErrSubscriptionWithoutLink
	}

	if err := u.gateway.CancelSubscription(ctx, s.GatewaySubscriptionID, true); err != nil {
		log.Printf("[subscription][usecase] gateway cancel failed subscription_id=%s gateway_subscription_id=%s err=%v", id, s.GatewaySubscriptionID, err)
		return entities.Subscription{}, classifyGatewayError(err)
	}

	cancelled, err := u.repo.MarkCancelled(ctx, id, u.now())
	if err != nil {
		return entities.Subscription{}, err
	}
	if cancelled.ID == "" {
		// A webhook may have cancelled it between the read and the update.
		latest, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Subscription{}, err
		}
		if latest.Status != entities.SubscriptionStatusCancelled {
			return entities.Subscription{}, ErrSubscriptionNotActive
		}
		cancelled = latest
	}
	log.Printf("[subscription][usecase] cancel success subscription_id=%s", id)
	return cancelled, nil
}

func (u *SubscriptionUseCase) GetByID(ctx context.Context, id string) (entities.Subscription, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Subscription{}, ErrInvalidSubscriptionID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Subscription{}, err
	}
	if s.ID == "" {
		return entities.Subscription{}, ErrSubscriptionNotFound
	}
	s.Status = s.EffectiveStatus(u.now())
	return s, nil
}

func (u *SubscriptionUseCase) ListByMember(ctx context.Context, memberID string) ([]entities.Subscription, error) {
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return nil, ErrInvalidMemberID
	}
	items, err := u.repo.ListByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	for i := range items {
		items[i].Status = items[i].EffectiveStatus(now)
	}
	return items, nil
}
