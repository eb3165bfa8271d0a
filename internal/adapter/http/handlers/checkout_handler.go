package handlers

import (
	"errors"
	"log"
	"net/http"

	request "ngo_portal/internal/adapter/http/dto/request"
	response "ngo_portal/internal/adapter/http/dto/response"
	"ngo_portal/internal/checkout"
	"ngo_portal/pkg"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=checkout_handler.go -destination=mocks/mock_checkout_handler.go -package=mocks

// ICheckoutHost is the server-hosted checkout; *checkout.Host implements it.
type ICheckoutHost interface {
	Start(req checkout.StartRequest) (string, checkout.Presentation)
	Status(sessionID string) (checkout.Presentation, bool)
	Page(sessionID string) ([]byte, error)
	Complete(sessionID string, c checkout.Confirmation) error
	Fail(sessionID string, message string) error
}

var _ ICheckoutHost = (*checkout.Host)(nil)

var errCheckoutSessionNotFound = pkg.NewDomainErrorSimple("CHECKOUT_SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)

type CheckoutHandler struct {
	host     ICheckoutHost
	basePath string
}

// NewCheckoutHandler takes the path the session routes are mounted on, used to build checkout_url.
func NewCheckoutHandler(host ICheckoutHost, basePath string) *CheckoutHandler {
	return &CheckoutHandler{host: host, basePath: basePath}
}

// StartCheckout godoc
// @Summary      Start a hosted checkout
// @Description  Validates the form, creates the order and returns the checkout page for it.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body      request.StartCheckoutRequest  true  "Checkout form"
// @Success      201      {object}  response.CheckoutSessionResponse
// @Failure      422      {object}  response.CheckoutStatusResponse
// @Router       /checkout/sessions [post]
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	var payload request.StartCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] start invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	id, p := h.host.Start(checkout.StartRequest{
		Form: checkout.Form{
			Type:    payload.Type,
			PlanID:  payload.PlanID,
			Name:    payload.Name,
			Email:   payload.Email,
			Phone:   payload.Phone,
			PAN:     payload.PAN,
			Address: payload.Address,
			Notes:   payload.Notes,
		},
		Amount: payload.Amount.String(),
	})
	if id == "" {
		log.Printf("[checkout][handler] start rejected state=%s notification=%q", p.State, p.Notification)
		c.JSON(http.StatusUnprocessableEntity, response.FromPresentation(p))
		return
	}

	c.JSON(http.StatusCreated, response.CheckoutSessionResponse{
		SessionID:   id,
		CheckoutURL: h.basePath + "/" + id,
		Status:      response.FromPresentation(p),
	})
}

// CheckoutPage godoc
// @Summary      Hosted checkout page
// @Tags         checkout
// @Produce      html
// @Param        id   path  string  true  "Session ID"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/sessions/{id} [get]
func (h *CheckoutHandler) CheckoutPage(c *gin.Context) {
	page, err := h.host.Page(c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// CheckoutStatus godoc
// @Summary      Hosted checkout status
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.CheckoutStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/sessions/{id}/status [get]
func (h *CheckoutHandler) CheckoutStatus(c *gin.Context) {
	p, ok := h.host.Status(c.Param("id"))
	if !ok {
		c.JSON(errCheckoutSessionNotFound.HTTPStatus, errCheckoutSessionNotFound.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPresentation(p))
}

// CompleteCheckout godoc
// @Summary      Checkout success callback
// @Tags         checkout
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      202  {object}  response.CheckoutStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/sessions/{id}/complete [post]
func (h *CheckoutHandler) CompleteCheckout(c *gin.Context) {
	id := c.Param("id")
	var payload request.CompleteCheckoutRequest
	if err := c.ShouldBind(&payload); err != nil {
		log.Printf("[checkout][handler] complete invalid payload session_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	err := h.host.Complete(id, checkout.Confirmation{
		PaymentID:      payload.PaymentID,
		OrderID:        payload.OrderID,
		SubscriptionID: payload.SubscriptionID,
		Signature:      payload.Signature,
	})
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] checkout completed session_id=%s payment_id=%s", id, payload.PaymentID)

	h.writeStatus(c, id, http.StatusAccepted)
}

// FailCheckout godoc
// @Summary      Checkout failure callback
// @Tags         checkout
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      202  {object}  response.CheckoutStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /checkout/sessions/{id}/fail [post]
func (h *CheckoutHandler) FailCheckout(c *gin.Context) {
	id := c.Param("id")
	var payload request.FailCheckoutRequest
	_ = c.ShouldBind(&payload)

	if err := h.host.Fail(id, payload.Error); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] checkout failed session_id=%s reason=%q", id, payload.Error)

	h.writeStatus(c, id, http.StatusAccepted)
}

func (h *CheckoutHandler) writeStatus(c *gin.Context, id string, status int) {
	p, ok := h.host.Status(id)
	if !ok {
		c.Status(status)
		return
	}
	c.JSON(status, response.FromPresentation(p))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		return errCheckoutSessionNotFound
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
