package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"steakhouse/storefront/internal/model"
	"steakhouse/storefront/internal/service"
	"steakhouse/storefront/pkg/response"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type CartView struct {
	Lines  []model.CartLine `json:"lines"`
	Totals model.Totals     `json:"totals"`
}

type AddItemRequest struct {
	ItemID int `json:"item_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func newCartView(lines []model.CartLine) CartView {
	return CartView{Lines: lines, Totals: service.CalculateTotals(lines)}
}

func (h *CartHandler) Get(c *gin.Context) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing session")
		return
	}

	lines, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		response.InternalError(c, "failed to load cart")
		return
	}
	response.Success(c, newCartView(lines))
}

func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing session")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	lines, err := h.cartService.Add(c.Request.Context(), sessionID, req.ItemID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMenuItemNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, service.ErrMaxQuantityReached), errors.Is(err, service.ErrCartFull):
			response.Conflict(c, err.Error(), newCartView(lines))
		default:
			response.InternalError(c, "failed to add item")
		}
		return
	}
	response.Success(c, newCartView(lines))
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing session")
		return
	}

	itemID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	lines, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, itemID, *req.Quantity)
	if err != nil {
		response.InternalError(c, "failed to update item")
		return
	}
	response.Success(c, newCartView(lines))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing session")
		return
	}

	itemID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid item id")
		return
	}

	lines, err := h.cartService.Remove(c.Request.Context(), sessionID, itemID)
	if err != nil {
		response.InternalError(c, "failed to remove item")
		return
	}
	response.Success(c, newCartView(lines))
}

func (h *CartHandler) Clear(c *gin.Context) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "missing session")
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		response.InternalError(c, "failed to clear cart")
		return
	}
	response.Success(c, newCartView([]model.CartLine{}))
}
