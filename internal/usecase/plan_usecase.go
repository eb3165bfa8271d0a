package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase/interfaces"
)

var (
	ErrInvalidPlanID = errors.New("invalid plan_id")
	ErrInvalidPlan   = errors.New("invalid membership plan")
)

type IPlanUseCase interface {
	ListPlans(ctx context.Context) ([]entities.MembershipPlan, error)
	GetPlan(ctx context.Context, id string) (entities.MembershipPlan, error)
	UpsertPlan(ctx context.Context, p entities.MembershipPlan) (entities.MembershipPlan, error)
}

type PlanUseCase struct {
	repo interfaces.IMembershipPlanRepository
	now  func() time.Time
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(repo interfaces.IMembershipPlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// ListPlans returns the active plans, cheapest first.
func (u *PlanUseCase) ListPlans(ctx context.Context) ([]entities.MembershipPlan, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MembershipPlan, 0, len(all))
	for _, p := range all {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Price != out[j].Price {
			return out[i].Price < out[j].Price
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (u *PlanUseCase) GetPlan(ctx context.Context, id string) (entities.MembershipPlan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MembershipPlan{}, ErrInvalidPlanID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MembershipPlan{}, err
	}
	if p.ID == "" {
		return entities.MembershipPlan{}, ErrPlanNotFound
	}
	return p, nil
}

func (u *PlanUseCase) UpsertPlan(ctx context.Context, p entities.MembershipPlan) (entities.MembershipPlan, error) {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Type = entities.PlanType(strings.ToLower(strings.TrimSpace(string(p.Type))))
	p.GatewayPlanID = strings.TrimSpace(p.GatewayPlanID)
	if p.ID == "" {
		return entities.MembershipPlan{}, ErrInvalidPlanID
	}
	if err := validatePlan(p); err != nil {
		return entities.MembershipPlan{}, err
	}
	if p.Currency == "" {
		p.Currency = entities.DefaultCurrency
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.MembershipPlan{}, err
	}
	now := u.now()
	p.CreatedAt = now
	if existing.ID != "" && !existing.CreatedAt.IsZero() {
		p.CreatedAt = existing.CreatedAt
	}
	p.UpdatedAt = now

	saved, err := u.repo.Put(ctx, p)
	if err != nil {
		log.Printf("[plan][usecase] put failed plan_id=%s err=%v", p.ID, err)
		return entities.MembershipPlan{}, err
	}
	log.Printf("[plan][usecase] upserted plan_id=%s type=%s price=%d active=%t", saved.ID, saved.Type, saved.Price, saved.Active)
	return saved, nil
}

func validatePlan(p entities.MembershipPlan) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidPlan)
	case p.Type != entities.PlanTypeMonthly && p.Type != entities.PlanTypeYearly && p.Type != entities.PlanTypeLifetime:
		return fmt.Errorf("%w: type must be monthly, yearly or lifetime", ErrInvalidPlan)
	case p.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalidPlan)
	case p.IsRecurring() && p.Active && p.GatewayPlanID == "":
		return fmt.Errorf("%w: active recurring plans need a gateway_plan_id", ErrInvalidPlan)
	}
	return nil
}
