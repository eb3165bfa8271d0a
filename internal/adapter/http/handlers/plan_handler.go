package handlers

import (
	"errors"
	"log"
	"net/http"

	request "ngo_portal/internal/adapter/http/dto/request"
	response "ngo_portal/internal/adapter/http/dto/response"
	"ngo_portal/internal/domain/entities"
	"ngo_portal/internal/usecase"
	"ngo_portal/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/plan_usecase.go -destination=mocks/mock_plan_usecase.go -package=mocks

type PlanHandler struct {
	useCase usecase.IPlanUseCase
}

func NewPlanHandler(useCase usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{useCase: useCase}
}

// ListPlans godoc
// @Summary      List membership plans
// @Tags         membership
// @Produce      json
// @Success      200  {array}   response.PlanResponse
// @Router       /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.useCase.ListPlans(c.Request.Context())
	if err != nil {
		log.Printf("[plan][handler] list failed err=%v", err)
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlans(plans))
}

// GetPlan godoc
// @Summary      Get a membership plan
// @Tags         membership
// @Produce      json
// @Param        id   path      string  true  "Plan ID"
// @Success      200  {object}  response.PlanResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.useCase.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

// UpsertPlan godoc
// @Summary      Create or replace a membership plan
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      string               true  "Plan ID"
// @Param        payload  body      request.PlanRequest  true  "Plan"
// @Success      200      {object}  response.PlanResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /admin/plans/{id} [put]
func (h *PlanHandler) UpsertPlan(c *gin.Context) {
	var payload request.PlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[plan][handler] upsert invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	plan, err := h.useCase.UpsertPlan(c.Request.Context(), entities.MembershipPlan{
		ID:            c.Param("id"),
		Name:          payload.Name,
		Type:          entities.PlanType(payload.Type),
		Price:         payload.Price,
		Currency:      payload.Currency,
		Features:      payload.Features,
		GatewayPlanID: payload.GatewayPlanID,
		Active:        payload.ResolveActive(),
	})
	if err != nil {
		log.Printf("[plan][handler] upsert failed plan_id=%s err=%v", c.Param("id"), err)
		appErr := mapPlanError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlan(plan))
}

func mapPlanError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlanID):
		return pkg.NewDomainErrorSimple("INVALID_PLAN_ID", "Invalid plan id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlan):
		return pkg.NewDomainError("INVALID_PLAN", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Membership plan not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
