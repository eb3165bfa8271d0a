package handlers

import (
	"errors"
	"log"
	"net/http"

	response "ngo_portal/internal/adapter/http/dto/response"
	"ngo_portal/internal/usecase"
	"ngo_portal/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=../../../usecase/subscription_usecase.go -destination=mocks/mock_subscription_usecase.go -package=mocks

type SubscriptionHandler struct {
	useCase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(useCase usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{useCase: useCase}
}

// GetSubscription godoc
// @Summary      Get a membership subscription
// @Tags         membership
// @Produce      json
// @Param        id   path      string  true  "Subscription ID"
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /subscriptions/{id} [get]
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	s, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(s))
}

// CancelSubscription godoc
// @Summary      Cancel a membership subscription at the end of the current cycle
// @Tags         membership
// @Produce      json
// @Param        id   path      string  true  "Subscription ID"
// @Success      200  {object}  response.SubscriptionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /subscriptions/{id}/cancel [post]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[subscription][handler] cancel start subscription_id=%s", id)

	s, err := h.useCase.Cancel(c.Request.Context(), id)
	if err != nil {
		log.Printf("[subscription][handler] cancel failed subscription_id=%s err=%v", id, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscription(s))
}

// ListMemberSubscriptions godoc
// @Summary      List a member's subscriptions
// @Tags         membership
// @Produce      json
// @Param        member_id  path      string  true  "Member ID"
// @Success      200        {array}   response.SubscriptionResponse
// @Router       /members/{member_id}/subscriptions [get]
func (h *SubscriptionHandler) ListMemberSubscriptions(c *gin.Context) {
	subs, err := h.useCase.ListByMember(c.Request.Context(), c.Param("member_id"))
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubscriptions(subs))
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubscriptionID):
		return pkg.NewDomainErrorSimple("INVALID_SUBSCRIPTION_ID", "Invalid subscription id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMemberID):
		return pkg.NewDomainErrorSimple("INVALID_MEMBER_ID", "Invalid member id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_FOUND", "Subscription not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubscriptionNotActive):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_ACTIVE", "Only active subscriptions can be cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubscriptionWithoutLink):
		return pkg.NewDomainErrorSimple("SUBSCRIPTION_NOT_LINKED", "Subscription is not linked to the payment provider", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment system is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
