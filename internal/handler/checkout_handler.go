package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"steakhouse/storefront/internal/service"
	"steakhouse/storefront/pkg/response"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// PlaceOrder validates the checkout form, submits the session's cart and returns the confirmation.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing session")
		return
	}

	var form service.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	conf, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID, form)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			response.UnprocessableEntity(c, verr.Error(), verr.Fields)
		case errors.Is(err, service.ErrCartEmpty):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrOrderRejected), errors.Is(err, service.ErrOrderUnavailable):
			response.BadGateway(c, "Submission failed: "+err.Error())
		default:
			response.InternalError(c, "failed to place order")
		}
		return
	}
	response.Success(c, conf)
}
