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

//go:generate mockgen -source=../../../usecase/order_usecase.go -destination=mocks/mock_order_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/verification_usecase.go -destination=mocks/mock_verification_usecase.go -package=mocks
//go:generate mockgen -source=../../../usecase/webhook_usecase.go -destination=mocks/mock_webhook_usecase.go -package=mocks

const razorpaySignatureHeader = "X-Razorpay-Signature"

var errInvalidPaymentRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles order creation, checkout verification and provider webhooks.
type PaymentHandler struct {
	orders   usecase.IOrderUseCase
	verifier usecase.IVerificationUseCase
	webhooks usecase.IWebhookUseCase
}

func NewPaymentHandler(orders usecase.IOrderUseCase, verifier usecase.IVerificationUseCase, webhooks usecase.IWebhookUseCase) *PaymentHandler {
	return &PaymentHandler{orders: orders, verifier: verifier, webhooks: webhooks}
}

// CreateOrder godoc
// @Summary      Create a payment order
// @Description  Starts a donation, lifetime membership or membership subscription.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateOrderRequest  true  "Order"
// @Success      201      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /payments/orders [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create-order invalid payload err=%v", err)
		c.JSON(errInvalidPaymentRequest.HTTPStatus, errInvalidPaymentRequest.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order start type=%s plan_id=%q", payload.Type, payload.PlanID)

	res, err := h.orders.CreateOrder(c.Request.Context(), usecase.OrderInput{
		Type:    entities.PaymentType(payload.Type),
		Amount:  payload.Amount,
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		PAN:     payload.PAN,
		Address: payload.Address,
		Notes:   payload.Notes,
		PlanID:  payload.PlanID,
	})
	if err != nil {
		log.Printf("[payment][handler] create-order failed type=%s err=%v", payload.Type, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order success type=%s reference=%s", res.Type, res.PaymentReference)

	c.JSON(http.StatusCreated, response.FromOrderResult(res))
}

// VerifyPayment godoc
// @Summary      Verify a completed checkout
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      request.VerifyPaymentRequest  true  "Signed checkout response"
// @Success      200      {object}  response.VerifyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /payments/verify [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] verify invalid payload err=%v", err)
		c.JSON(errInvalidPaymentRequest.HTTPStatus, errInvalidPaymentRequest.ToHTTPError())
		return
	}

	res, err := h.verifier.Verify(c.Request.Context(), usecase.VerifyInput{
		Type:           entities.PaymentType(payload.Type),
		Reference:      payload.PaymentReference,
		OrderID:        payload.ResolveOrderID(),
		SubscriptionID: payload.ResolveSubscriptionID(),
		PaymentID:      payload.ResolvePaymentID(),
		Signature:      payload.ResolveSignature(),
	})
	if err != nil {
		log.Printf("[payment][handler] verify failed reference=%s err=%v", payload.PaymentReference, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVerifyResult(res))
}

// Webhook godoc
// @Summary      Razorpay webhook
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        X-Razorpay-Signature  header    string  true  "HMAC of the raw body"
// @Success      200                   {object}  response.WebhookResponse
// @Failure      400                   {object}  pkg.HTTPError
// @Router       /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPaymentRequest.HTTPStatus, errInvalidPaymentRequest.ToHTTPError())
		return
	}

	res, err := h.webhooks.Handle(c.Request.Context(), body, c.GetHeader(razorpaySignatureHeader))
	if err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] webhook event=%s handled=%t", res.Event, res.Handled)

	c.JSON(http.StatusOK, response.FromWebhookResult(res))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentType):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_TYPE", "Invalid payment type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountBelowMinimum):
		return pkg.NewDomainErrorSimple("AMOUNT_BELOW_MINIMUM", "Donation amount is below the minimum", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountAboveMaximum):
		return pkg.NewDomainErrorSimple("AMOUNT_ABOVE_MAXIMUM", "Donation amount is above the maximum", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDonor):
		return pkg.NewDomainErrorSimple("INVALID_DONOR", "Please provide a valid name and email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVerification):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Membership plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlanNotAvailable):
		return pkg.NewDomainErrorSimple("PLAN_NOT_AVAILABLE", "Membership plan not available", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_MISMATCH", "Payment does not match this order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureMismatch):
		return pkg.NewDomainErrorSimple("SIGNATURE_MISMATCH", "Payment verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentAlreadyFinalized):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_FINALIZED", "Payment already finalized", http.StatusConflict)
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

// mapWebhookError keeps storage failures at 5xx so the provider retries the delivery.
func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWebhookPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment system is not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
