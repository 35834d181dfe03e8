package handler

import (
	"github.com/gin-gonic/gin"

	"steakhouse/storefront/internal/service"
	"steakhouse/storefront/pkg/response"
)

type MenuHandler struct {
	menuService service.MenuService
}

func NewMenuHandler(menuService service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns the full menu.
func (h *MenuHandler) List(c *gin.Context) {
	response.Success(c, h.menuService.List(c.Request.Context()))
}

// Get returns one menu item.
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid menu item id")
		return
	}

	item, err := h.menuService.Get(c.Request.Context(), id)
	if err != nil {
		response.NotFound(c, err.Error())
		return
	}
	response.Success(c, item)
}
