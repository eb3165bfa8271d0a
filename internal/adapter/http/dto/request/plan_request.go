package request

// PlanRequest is the admin payload for creating or replacing a membership plan.
// Price is in paise.
type PlanRequest struct {
	Name          string   `json:"name" binding:"required"`
	Type          string   `json:"type" binding:"required"`
	Price         int64    `json:"price" binding:"required"`
	Currency      string   `json:"currency"`
	Features      []string `json:"features"`
	GatewayPlanID string   `json:"gateway_plan_id"`
	Active        *bool    `json:"active"`
}

func (r PlanRequest) ResolveActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
